package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/linkvault/internal/metadata"
)

// MetadataFetcher fetches page metadata for a URL, best-effort.
type MetadataFetcher interface {
	Fetch(ctx context.Context, pageURL string) (*metadata.PageMetadata, error)
}

type MetadataController struct {
	fetcher MetadataFetcher
}

func NewMetadataController(fetcher MetadataFetcher) *MetadataController {
	return &MetadataController{fetcher: fetcher}
}

// FetchMetadata returns the page title and favicon for a URL so the caller
// can pre-fill a bookmark form
// POST /api/bookmarks/metadata
func (mc *MetadataController) FetchMetadata(c *gin.Context) {
	var req struct {
		URL string `json:"url" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "url is required")
		return
	}

	meta, err := mc.fetcher.Fetch(c.Request.Context(), req.URL)
	if err != nil {
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "failed to fetch metadata"})
		return
	}
	c.JSON(http.StatusOK, meta)
}
