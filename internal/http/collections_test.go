package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/linkvault/internal/database/bookmarks"
	"github.com/mrlokans/linkvault/internal/entities"
)

func TestCollectionsController_Create(t *testing.T) {
	t.Run("creates collection", func(t *testing.T) {
		api, cleanup := setupTestAPI(t)
		defer cleanup()

		w := doJSON(t, api, "POST", "/api/collections",
			`{"name": "Reading", "description": "to read later"}`)

		require.Equal(t, http.StatusCreated, w.Code)

		var created entities.Collection
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
		assert.Equal(t, "Reading", created.Name)
		assert.Equal(t, "to read later", created.Description)
	})

	t.Run("missing name is rejected", func(t *testing.T) {
		api, cleanup := setupTestAPI(t)
		defer cleanup()

		w := doJSON(t, api, "POST", "/api/collections", `{"description": "nameless"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("duplicate names are allowed", func(t *testing.T) {
		api, cleanup := setupTestAPI(t)
		defer cleanup()

		w := doJSON(t, api, "POST", "/api/collections", `{"name": "Reading"}`)
		require.Equal(t, http.StatusCreated, w.Code)

		w = doJSON(t, api, "POST", "/api/collections", `{"name": "Reading"}`)
		assert.Equal(t, http.StatusCreated, w.Code)
	})
}

func TestCollectionsController_List(t *testing.T) {
	api, cleanup := setupTestAPI(t)
	defer cleanup()

	for _, name := range []string{"Work", "Archive"} {
		_, err := api.collections.Create(name, "")
		require.NoError(t, err)
	}

	w := doJSON(t, api, "GET", "/api/collections", "")
	require.Equal(t, http.StatusOK, w.Code)

	var listed []entities.Collection
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed, 2)
	assert.Equal(t, "Archive", listed[0].Name)
	assert.Equal(t, "Work", listed[1].Name)
}

func TestCollectionsController_Delete(t *testing.T) {
	t.Run("deletes collection", func(t *testing.T) {
		api, cleanup := setupTestAPI(t)
		defer cleanup()

		collection, err := api.collections.Create("Reading", "")
		require.NoError(t, err)

		w := doJSON(t, api, "DELETE", "/api/collections/"+collection.ID, "")
		require.Equal(t, http.StatusOK, w.Code)

		_, err = api.collections.GetByID(collection.ID)
		assert.Error(t, err)
	})

	t.Run("unknown id is 404", func(t *testing.T) {
		api, cleanup := setupTestAPI(t)
		defer cleanup()

		w := doJSON(t, api, "DELETE", "/api/collections/missing", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCollectionsController_ListBookmarks(t *testing.T) {
	api, cleanup := setupTestAPI(t)
	defer cleanup()

	collection, err := api.collections.Create("Reading", "")
	require.NoError(t, err)
	bookmark, err := api.bookmarks.Create(bookmarks.CreateInput{
		URL:           "https://go.dev",
		CollectionIDs: []string{collection.ID},
	})
	require.NoError(t, err)

	w := doJSON(t, api, "GET", "/api/collections/"+collection.ID+"/bookmarks", "")
	require.Equal(t, http.StatusOK, w.Code)

	var listed []entities.Bookmark
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, bookmark.ID, listed[0].ID)
}
