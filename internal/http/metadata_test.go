package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/linkvault/internal/metadata"
)

func TestMetadataController_FetchMetadata(t *testing.T) {
	t.Run("returns fetched metadata", func(t *testing.T) {
		api, cleanup := setupTestAPI(t)
		defer cleanup()

		api.fetcher.meta = &metadata.PageMetadata{
			Title:      "Go Blog",
			FaviconURL: "https://go.dev/favicon.ico",
		}

		w := doJSON(t, api, "POST", "/api/bookmarks/metadata", `{"url": "https://go.dev/blog"}`)
		require.Equal(t, http.StatusOK, w.Code)

		var meta metadata.PageMetadata
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &meta))
		assert.Equal(t, "Go Blog", meta.Title)
		assert.Equal(t, "https://go.dev/favicon.ico", meta.FaviconURL)
	})

	t.Run("missing url is rejected", func(t *testing.T) {
		api, cleanup := setupTestAPI(t)
		defer cleanup()

		w := doJSON(t, api, "POST", "/api/bookmarks/metadata", `{}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("fetch failure is a bad gateway", func(t *testing.T) {
		api, cleanup := setupTestAPI(t)
		defer cleanup()

		api.fetcher.err = errors.New("connection refused")

		w := doJSON(t, api, "POST", "/api/bookmarks/metadata", `{"url": "https://go.dev"}`)
		assert.Equal(t, http.StatusBadGateway, w.Code)
	})
}
