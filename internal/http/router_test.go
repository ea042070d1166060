package http

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/linkvault/internal/database"
	"github.com/mrlokans/linkvault/internal/database/bookmarks"
	"github.com/mrlokans/linkvault/internal/database/collections"
	"github.com/mrlokans/linkvault/internal/database/tags"
	"github.com/mrlokans/linkvault/internal/metadata"
)

// stubFetcher stands in for the metadata fetcher so tests never hit the
// network.
type stubFetcher struct {
	meta *metadata.PageMetadata
	err  error
}

func (s *stubFetcher) Fetch(ctx context.Context, pageURL string) (*metadata.PageMetadata, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.meta, nil
}

type testAPI struct {
	db          *database.Database
	router      *gin.Engine
	bookmarks   *bookmarks.Repository
	tags        *tags.Repository
	collections *collections.Repository
	fetcher     *stubFetcher
}

func setupTestAPI(t *testing.T) (*testAPI, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbPath := "./test_http_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := database.NewDatabaseWithOptions(dbPath, database.Options{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	api := &testAPI{
		db:          db,
		bookmarks:   bookmarks.NewRepository(db.DB),
		tags:        tags.NewRepository(db.DB),
		collections: collections.NewRepository(db.DB),
		fetcher:     &stubFetcher{meta: &metadata.PageMetadata{}},
	}

	api.router = NewRouter(RouterConfig{
		Bookmarks:   NewBookmarksController(api.bookmarks, api.fetcher),
		Tags:        NewTagsController(api.tags),
		Collections: NewCollectionsController(api.collections),
		Metadata:    NewMetadataController(api.fetcher),
		Health:      NewHealthController(db, "test"),
	})

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return api, cleanup
}
