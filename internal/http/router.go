package http

import (
	"github.com/gin-gonic/gin"
)

// RouterConfig carries the controllers the router wires up.
type RouterConfig struct {
	Bookmarks   *BookmarksController
	Tags        *TagsController
	Collections *CollectionsController
	Metadata    *MetadataController
	Health      *HealthController
}

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	if cfg.Health != nil {
		router.GET("/health", cfg.Health.Health)
	}

	api := router.Group("/api")
	{
		api.GET("/bookmarks", cfg.Bookmarks.ListBookmarks)
		api.POST("/bookmarks", cfg.Bookmarks.CreateBookmark)
		api.POST("/bookmarks/metadata", cfg.Metadata.FetchMetadata)
		api.GET("/bookmarks/:id", cfg.Bookmarks.GetBookmark)
		api.PUT("/bookmarks/:id", cfg.Bookmarks.UpdateBookmark)
		api.DELETE("/bookmarks/:id", cfg.Bookmarks.DeleteBookmark)

		api.GET("/tags", cfg.Tags.ListTags)
		api.POST("/tags", cfg.Tags.CreateTag)
		api.DELETE("/tags/:id", cfg.Tags.DeleteTag)
		api.GET("/tags/:id/bookmarks", cfg.Tags.ListTagBookmarks)

		api.GET("/collections", cfg.Collections.ListCollections)
		api.POST("/collections", cfg.Collections.CreateCollection)
		api.DELETE("/collections/:id", cfg.Collections.DeleteCollection)
		api.GET("/collections/:id/bookmarks", cfg.Collections.ListCollectionBookmarks)
	}

	return router
}
