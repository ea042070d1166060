package collections

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/linkvault/internal/database"
	"github.com/mrlokans/linkvault/internal/entities"
)

func setupTestDB(t *testing.T) (*gorm.DB, *Repository, func()) {
	dbPath := "./test_collections_" + t.Name() + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath+"?_foreign_keys=on"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&entities.Bookmark{},
		&entities.Tag{},
		&entities.Collection{},
		&entities.BookmarkTag{},
		&entities.BookmarkCollection{},
	)
	require.NoError(t, err)

	repo := NewRepository(db)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return db, repo, cleanup
}

func TestRepository_Create(t *testing.T) {
	_, repo, cleanup := setupTestDB(t)
	defer cleanup()

	collection, err := repo.Create("Reading", "articles to get to eventually")

	require.NoError(t, err)
	assert.NotEmpty(t, collection.ID)
	assert.Equal(t, "Reading", collection.Name)
	assert.Equal(t, "articles to get to eventually", collection.Description)
}

func TestRepository_Create_EmptyName(t *testing.T) {
	_, repo, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.Create("  ", "")

	assert.ErrorIs(t, err, database.ErrValidation)
}

func TestRepository_Create_DuplicateNamesAllowed(t *testing.T) {
	_, repo, cleanup := setupTestDB(t)
	defer cleanup()

	first, err := repo.Create("Reading", "")
	require.NoError(t, err)

	second, err := repo.Create("Reading", "")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestRepository_GetOrCreateByName(t *testing.T) {
	_, repo, cleanup := setupTestDB(t)
	defer cleanup()

	created, err := repo.GetOrCreateByName("Reading")
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	found, err := repo.GetOrCreateByName("Reading")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
}

func TestRepository_List_OrderedByName(t *testing.T) {
	_, repo, cleanup := setupTestDB(t)
	defer cleanup()

	for _, name := range []string{"Work", "Archive", "Reading"} {
		_, err := repo.Create(name, "")
		require.NoError(t, err)
	}

	collections, err := repo.List()
	require.NoError(t, err)
	require.Len(t, collections, 3)
	assert.Equal(t, "Archive", collections[0].Name)
	assert.Equal(t, "Reading", collections[1].Name)
	assert.Equal(t, "Work", collections[2].Name)
}

func TestRepository_Delete(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	collection, err := repo.Create("Reading", "")
	require.NoError(t, err)

	bookmark := &entities.Bookmark{URL: "https://go.dev", Title: "Go"}
	require.NoError(t, db.Create(bookmark).Error)
	require.NoError(t, db.Create(&entities.BookmarkCollection{
		BookmarkID:   bookmark.ID,
		CollectionID: collection.ID,
	}).Error)

	deleted, err := repo.Delete(collection.ID)
	require.NoError(t, err)
	assert.Equal(t, collection.ID, deleted.ID)

	var linkCount int64
	require.NoError(t, db.Model(&entities.BookmarkCollection{}).Count(&linkCount).Error)
	assert.Zero(t, linkCount)

	var bookmarkCount int64
	require.NoError(t, db.Model(&entities.Bookmark{}).Count(&bookmarkCount).Error)
	assert.EqualValues(t, 1, bookmarkCount)
}

func TestRepository_Delete_NotFound(t *testing.T) {
	_, repo, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.Delete("missing")

	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestRepository_ListBookmarks_UnknownCollection(t *testing.T) {
	_, repo, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.ListBookmarks("missing")

	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestRepository_ListBookmarks(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	collection, err := repo.Create("Reading", "")
	require.NoError(t, err)

	inside := &entities.Bookmark{URL: "https://go.dev", Title: "Go"}
	require.NoError(t, db.Create(inside).Error)
	outside := &entities.Bookmark{URL: "https://example.com", Title: "Example"}
	require.NoError(t, db.Create(outside).Error)
	require.NoError(t, db.Create(&entities.BookmarkCollection{
		BookmarkID:   inside.ID,
		CollectionID: collection.ID,
	}).Error)

	bookmarks, err := repo.ListBookmarks(collection.ID)
	require.NoError(t, err)
	require.Len(t, bookmarks, 1)
	assert.Equal(t, inside.ID, bookmarks[0].ID)
}
