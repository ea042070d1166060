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

func TestTagsController_Create(t *testing.T) {
	t.Run("creates tag with default color", func(t *testing.T) {
		api, cleanup := setupTestAPI(t)
		defer cleanup()

		w := doJSON(t, api, "POST", "/api/tags", `{"name": "golang"}`)

		require.Equal(t, http.StatusCreated, w.Code)

		var created entities.Tag
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
		assert.Equal(t, "golang", created.Name)
		assert.Equal(t, entities.DefaultTagColor, created.Color)
	})

	t.Run("missing name is rejected", func(t *testing.T) {
		api, cleanup := setupTestAPI(t)
		defer cleanup()

		w := doJSON(t, api, "POST", "/api/tags", `{"color": "#ff0000"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("invalid color is rejected", func(t *testing.T) {
		api, cleanup := setupTestAPI(t)
		defer cleanup()

		w := doJSON(t, api, "POST", "/api/tags", `{"name": "golang", "color": "red"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("duplicate name conflicts", func(t *testing.T) {
		api, cleanup := setupTestAPI(t)
		defer cleanup()

		w := doJSON(t, api, "POST", "/api/tags", `{"name": "golang"}`)
		require.Equal(t, http.StatusCreated, w.Code)

		w = doJSON(t, api, "POST", "/api/tags", `{"name": "golang"}`)
		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestTagsController_List(t *testing.T) {
	api, cleanup := setupTestAPI(t)
	defer cleanup()

	for _, name := range []string{"zebra", "alpha"} {
		_, err := api.tags.Create(name, "")
		require.NoError(t, err)
	}

	w := doJSON(t, api, "GET", "/api/tags", "")
	require.Equal(t, http.StatusOK, w.Code)

	var listed []entities.Tag
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed, 2)
	assert.Equal(t, "alpha", listed[0].Name)
	assert.Equal(t, "zebra", listed[1].Name)
}

func TestTagsController_Delete(t *testing.T) {
	t.Run("deletes tag", func(t *testing.T) {
		api, cleanup := setupTestAPI(t)
		defer cleanup()

		tag, err := api.tags.Create("golang", "")
		require.NoError(t, err)

		w := doJSON(t, api, "DELETE", "/api/tags/"+tag.ID, "")
		require.Equal(t, http.StatusOK, w.Code)

		_, err = api.tags.GetByID(tag.ID)
		assert.Error(t, err)
	})

	t.Run("unknown id is 404", func(t *testing.T) {
		api, cleanup := setupTestAPI(t)
		defer cleanup()

		w := doJSON(t, api, "DELETE", "/api/tags/missing", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestTagsController_ListBookmarks(t *testing.T) {
	t.Run("returns linked bookmarks", func(t *testing.T) {
		api, cleanup := setupTestAPI(t)
		defer cleanup()

		tag, err := api.tags.Create("golang", "")
		require.NoError(t, err)
		bookmark, err := api.bookmarks.Create(bookmarks.CreateInput{
			URL:    "https://go.dev",
			TagIDs: []string{tag.ID},
		})
		require.NoError(t, err)

		w := doJSON(t, api, "GET", "/api/tags/"+tag.ID+"/bookmarks", "")
		require.Equal(t, http.StatusOK, w.Code)

		var listed []entities.Bookmark
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
		require.Len(t, listed, 1)
		assert.Equal(t, bookmark.ID, listed[0].ID)
	})

	t.Run("unknown tag is 404", func(t *testing.T) {
		api, cleanup := setupTestAPI(t)
		defer cleanup()

		w := doJSON(t, api, "GET", "/api/tags/missing/bookmarks", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
