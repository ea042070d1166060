package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/linkvault/internal/entities"
)

// CollectionStore defines database operations for collection management.
type CollectionStore interface {
	Create(name, description string) (*entities.Collection, error)
	List() ([]entities.Collection, error)
	Delete(id string) (*entities.Collection, error)
	ListBookmarks(collectionID string) ([]entities.Bookmark, error)
}

type CollectionsController struct {
	store CollectionStore
}

func NewCollectionsController(store CollectionStore) *CollectionsController {
	return &CollectionsController{store: store}
}

// ListCollections returns all collections ordered by name
// GET /api/collections
func (cc *CollectionsController) ListCollections(c *gin.Context) {
	collections, err := cc.store.List()
	if err != nil {
		respondStoreError(c, err, "collections", "list collections")
		return
	}
	c.JSON(http.StatusOK, collections)
}

// CreateCollection creates a new collection
// POST /api/collections
func (cc *CollectionsController) CreateCollection(c *gin.Context) {
	var req struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "name is required")
		return
	}

	collection, err := cc.store.Create(req.Name, req.Description)
	if err != nil {
		respondStoreError(c, err, "collection", "create collection")
		return
	}
	respondCreated(c, collection)
}

// DeleteCollection removes a collection; its bookmark links go with it
// DELETE /api/collections/:id
func (cc *CollectionsController) DeleteCollection(c *gin.Context) {
	collection, err := cc.store.Delete(c.Param("id"))
	if err != nil {
		respondStoreError(c, err, "collection", "delete collection")
		return
	}
	c.JSON(http.StatusOK, collection)
}

// ListCollectionBookmarks returns the bookmarks in a collection, newest first
// GET /api/collections/:id/bookmarks
func (cc *CollectionsController) ListCollectionBookmarks(c *gin.Context) {
	bookmarks, err := cc.store.ListBookmarks(c.Param("id"))
	if err != nil {
		respondStoreError(c, err, "collection", "list bookmarks by collection")
		return
	}
	c.JSON(http.StatusOK, bookmarks)
}
