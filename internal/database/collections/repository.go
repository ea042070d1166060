// Package collections provides database operations for collection management.
//
// Unlike tags, collection names are not unique: two collections may share a
// name. Deleting a collection removes its bookmark links but never the
// bookmarks themselves.
package collections

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/mrlokans/linkvault/internal/database"
	"github.com/mrlokans/linkvault/internal/entities"
)

// Repository handles all collection database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new collections repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create creates a new collection.
func (r *Repository) Create(name, description string) (*entities.Collection, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, database.ErrValidation
	}

	collection := &entities.Collection{Name: name, Description: description}
	if err := r.db.Create(collection).Error; err != nil {
		return nil, database.TranslateError(err)
	}
	return collection, nil
}

// GetOrCreateByName returns the first collection with the given name,
// creating one when none exists. Names are not unique, so this is a
// convenience for CLI-style callers, not an upsert.
func (r *Repository) GetOrCreateByName(name string) (*entities.Collection, error) {
	var collection entities.Collection
	err := r.db.Where("name = ?", name).Order("id ASC").First(&collection).Error
	if err == nil {
		return &collection, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, database.TranslateError(err)
	}
	return r.Create(name, "")
}

// GetByID retrieves a collection by id.
func (r *Repository) GetByID(id string) (*entities.Collection, error) {
	var collection entities.Collection
	if err := r.db.Where("id = ?", id).First(&collection).Error; err != nil {
		return nil, database.TranslateError(err)
	}
	return &collection, nil
}

// List returns all collections ordered by name.
func (r *Repository) List() ([]entities.Collection, error) {
	var collections []entities.Collection
	if err := r.db.Order("name ASC").Find(&collections).Error; err != nil {
		return nil, database.TranslateError(err)
	}
	return collections, nil
}

// Delete removes a collection and returns the deleted row. Bookmark links
// cascade.
func (r *Repository) Delete(id string) (*entities.Collection, error) {
	var collection entities.Collection
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&collection).Error; err != nil {
			return err
		}
		return tx.Delete(&entities.Collection{}, "id = ?", id).Error
	})
	if err != nil {
		return nil, database.TranslateError(err)
	}
	return &collection, nil
}

// ListBookmarks returns the bookmarks in a collection, newest first.
func (r *Repository) ListBookmarks(collectionID string) ([]entities.Bookmark, error) {
	if _, err := r.GetByID(collectionID); err != nil {
		return nil, err
	}

	var bookmarks []entities.Bookmark
	err := r.db.Model(&entities.Bookmark{}).
		Joins("INNER JOIN bookmark_collections ON bookmark_collections.bookmark_id = bookmarks.id").
		Where("bookmark_collections.collection_id = ?", collectionID).
		Order("bookmarks.created_at DESC, bookmarks.id DESC").
		Find(&bookmarks).Error
	if err != nil {
		return nil, database.TranslateError(err)
	}
	return bookmarks, nil
}
