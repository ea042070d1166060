package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/linkvault/internal/database/bookmarks"
	"github.com/mrlokans/linkvault/internal/entities"
)

// BookmarkStore defines database operations for bookmark management.
type BookmarkStore interface {
	Create(input bookmarks.CreateInput) (*entities.Bookmark, error)
	GetWithDetails(id string) (*entities.BookmarkWithDetails, error)
	List(filters bookmarks.Filters) ([]entities.Bookmark, error)
	ListWithTags(filters bookmarks.Filters) ([]entities.BookmarkWithTags, error)
	Update(id string, input bookmarks.UpdateInput) (*entities.Bookmark, error)
	Delete(id string) (*entities.Bookmark, error)
}

type BookmarksController struct {
	store   BookmarkStore
	fetcher MetadataFetcher
}

func NewBookmarksController(store BookmarkStore, fetcher MetadataFetcher) *BookmarksController {
	return &BookmarksController{store: store, fetcher: fetcher}
}

// ListBookmarks returns filtered bookmarks with their tags attached
// GET /api/bookmarks?search=&tag_id=&collection_id=&limit=&offset=
func (bc *BookmarksController) ListBookmarks(c *gin.Context) {
	filters, ok := parseFilters(c)
	if !ok {
		return
	}

	result, err := bc.store.ListWithTags(filters)
	if err != nil {
		respondStoreError(c, err, "bookmarks", "list bookmarks")
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetBookmark returns a single bookmark with tags and collections
// GET /api/bookmarks/:id
func (bc *BookmarksController) GetBookmark(c *gin.Context) {
	bookmark, err := bc.store.GetWithDetails(c.Param("id"))
	if err != nil {
		respondStoreError(c, err, "bookmark", "get bookmark")
		return
	}
	c.JSON(http.StatusOK, bookmark)
}

// CreateBookmark creates a new bookmark
// POST /api/bookmarks
func (bc *BookmarksController) CreateBookmark(c *gin.Context) {
	var req struct {
		URL           string   `json:"url" binding:"required"`
		Title         string   `json:"title"`
		Description   string   `json:"description"`
		FaviconURL    string   `json:"favicon_url"`
		TagIDs        []string `json:"tag_ids"`
		CollectionIDs []string `json:"collection_ids"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "url is required")
		return
	}

	// Pre-fill title/favicon from the page when the caller supplied neither.
	// Fetch failures are ignored: the bookmark is created regardless and the
	// title falls back to the URL.
	if req.Title == "" && bc.fetcher != nil {
		if meta, err := bc.fetcher.Fetch(c.Request.Context(), req.URL); err == nil {
			req.Title = meta.Title
			if req.FaviconURL == "" {
				req.FaviconURL = meta.FaviconURL
			}
		}
	}

	bookmark, err := bc.store.Create(bookmarks.CreateInput{
		URL:           req.URL,
		Title:         req.Title,
		Description:   req.Description,
		FaviconURL:    req.FaviconURL,
		TagIDs:        req.TagIDs,
		CollectionIDs: req.CollectionIDs,
	})
	if err != nil {
		respondStoreError(c, err, "bookmark", "create bookmark")
		return
	}

	respondCreated(c, bookmark)
}

// UpdateBookmark applies a partial update
// PUT /api/bookmarks/:id
//
// Omitting tag_ids leaves the existing tag links untouched; sending an empty
// array removes them all. Collections behave the same way.
func (bc *BookmarksController) UpdateBookmark(c *gin.Context) {
	var req struct {
		URL           *string  `json:"url"`
		Title         *string  `json:"title"`
		Description   *string  `json:"description"`
		FaviconURL    *string  `json:"favicon_url"`
		TagIDs        []string `json:"tag_ids"`
		CollectionIDs []string `json:"collection_ids"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid JSON body")
		return
	}

	bookmark, err := bc.store.Update(c.Param("id"), bookmarks.UpdateInput{
		URL:           req.URL,
		Title:         req.Title,
		Description:   req.Description,
		FaviconURL:    req.FaviconURL,
		TagIDs:        req.TagIDs,
		CollectionIDs: req.CollectionIDs,
	})
	if err != nil {
		respondStoreError(c, err, "bookmark", "update bookmark")
		return
	}

	c.JSON(http.StatusOK, bookmark)
}

// DeleteBookmark removes a bookmark and returns the deleted row
// DELETE /api/bookmarks/:id
func (bc *BookmarksController) DeleteBookmark(c *gin.Context) {
	bookmark, err := bc.store.Delete(c.Param("id"))
	if err != nil {
		respondStoreError(c, err, "bookmark", "delete bookmark")
		return
	}
	c.JSON(http.StatusOK, bookmark)
}

// parseFilters reads listing filters from query parameters.
func parseFilters(c *gin.Context) (bookmarks.Filters, bool) {
	filters := bookmarks.Filters{
		Search:       c.Query("search"),
		TagID:        c.Query("tag_id"),
		CollectionID: c.Query("collection_id"),
	}

	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			respondBadRequest(c, "limit must be a positive integer")
			return filters, false
		}
		filters.Limit = limit
	}
	if raw := c.Query("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil || offset < 0 {
			respondBadRequest(c, "offset must be a non-negative integer")
			return filters, false
		}
		filters.Offset = offset
	}

	return filters, true
}
