package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/linkvault/internal/entities"
)

// TagStore defines database operations for tag management.
type TagStore interface {
	Create(name, color string) (*entities.Tag, error)
	List() ([]entities.Tag, error)
	Delete(id string) (*entities.Tag, error)
	ListBookmarks(tagID string) ([]entities.Bookmark, error)
}

type TagsController struct {
	store TagStore
}

func NewTagsController(store TagStore) *TagsController {
	return &TagsController{store: store}
}

// ListTags returns all tags ordered by name
// GET /api/tags
func (tc *TagsController) ListTags(c *gin.Context) {
	tags, err := tc.store.List()
	if err != nil {
		respondStoreError(c, err, "tags", "list tags")
		return
	}
	c.JSON(http.StatusOK, tags)
}

// CreateTag creates a new tag
// POST /api/tags
func (tc *TagsController) CreateTag(c *gin.Context) {
	var req struct {
		Name  string `json:"name" binding:"required"`
		Color string `json:"color"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "name is required")
		return
	}

	tag, err := tc.store.Create(req.Name, req.Color)
	if err != nil {
		respondStoreError(c, err, "tag", "create tag")
		return
	}
	respondCreated(c, tag)
}

// DeleteTag removes a tag; its bookmark links go with it
// DELETE /api/tags/:id
func (tc *TagsController) DeleteTag(c *gin.Context) {
	tag, err := tc.store.Delete(c.Param("id"))
	if err != nil {
		respondStoreError(c, err, "tag", "delete tag")
		return
	}
	c.JSON(http.StatusOK, tag)
}

// ListTagBookmarks returns the bookmarks linked to a tag, newest first
// GET /api/tags/:id/bookmarks
func (tc *TagsController) ListTagBookmarks(c *gin.Context) {
	bookmarks, err := tc.store.ListBookmarks(c.Param("id"))
	if err != nil {
		respondStoreError(c, err, "tag", "list bookmarks by tag")
		return
	}
	c.JSON(http.StatusOK, bookmarks)
}
