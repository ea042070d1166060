// Package tags provides database operations for tag management.
//
// Tag names are globally unique and case-sensitive. Deleting a tag removes
// its bookmark links (via the cascading foreign key) but never the bookmarks.
//
// # Usage
//
//	repo := tags.NewRepository(db)
//	tag, err := repo.GetOrCreate("golang")
package tags

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/mrlokans/linkvault/internal/database"
	"github.com/mrlokans/linkvault/internal/entities"
	"github.com/mrlokans/linkvault/internal/utils"
)

// Repository handles all tag database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new tags repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create creates a new tag. An empty color defaults to
// entities.DefaultTagColor; a malformed one is rejected before touching
// storage. A duplicate name surfaces as database.ErrDuplicate.
func (r *Repository) Create(name, color string) (*entities.Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, database.ErrValidation
	}

	if color == "" {
		color = entities.DefaultTagColor
	} else {
		normalized, err := utils.NormalizeHexColor(color)
		if err != nil {
			return nil, database.ErrValidation
		}
		color = normalized
	}

	tag := &entities.Tag{Name: name, Color: color}
	if err := r.db.Create(tag).Error; err != nil {
		return nil, database.TranslateError(err)
	}
	return tag, nil
}

// GetOrCreate resolves a tag by name, creating it when absent. Two concurrent
// callers may both miss the lookup and race on the insert; the loser of that
// race re-queries and returns the winner's row instead of failing.
func (r *Repository) GetOrCreate(name string) (*entities.Tag, error) {
	var tag entities.Tag
	err := r.db.Where("name = ?", name).First(&tag).Error
	if err == nil {
		return &tag, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, database.TranslateError(err)
	}

	created, err := r.Create(name, "")
	if err == nil {
		return created, nil
	}
	if !errors.Is(err, database.ErrDuplicate) {
		return nil, err
	}

	if err := r.db.Where("name = ?", name).First(&tag).Error; err != nil {
		return nil, database.TranslateError(err)
	}
	return &tag, nil
}

// GetByID retrieves a tag by id.
func (r *Repository) GetByID(id string) (*entities.Tag, error) {
	var tag entities.Tag
	if err := r.db.Where("id = ?", id).First(&tag).Error; err != nil {
		return nil, database.TranslateError(err)
	}
	return &tag, nil
}

// List returns all tags ordered by name.
func (r *Repository) List() ([]entities.Tag, error) {
	var tags []entities.Tag
	if err := r.db.Order("name ASC").Find(&tags).Error; err != nil {
		return nil, database.TranslateError(err)
	}
	return tags, nil
}

// Delete removes a tag and returns the deleted row. Bookmark links cascade.
func (r *Repository) Delete(id string) (*entities.Tag, error) {
	var tag entities.Tag
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&tag).Error; err != nil {
			return err
		}
		return tx.Delete(&entities.Tag{}, "id = ?", id).Error
	})
	if err != nil {
		return nil, database.TranslateError(err)
	}
	return &tag, nil
}

// ListBookmarks returns the bookmarks linked to a tag, newest first.
func (r *Repository) ListBookmarks(tagID string) ([]entities.Bookmark, error) {
	if _, err := r.GetByID(tagID); err != nil {
		return nil, err
	}

	var bookmarks []entities.Bookmark
	err := r.db.Model(&entities.Bookmark{}).
		Joins("INNER JOIN bookmark_tags ON bookmark_tags.bookmark_id = bookmarks.id").
		Where("bookmark_tags.tag_id = ?", tagID).
		Order("bookmarks.created_at DESC, bookmarks.id DESC").
		Find(&bookmarks).Error
	if err != nil {
		return nil, database.TranslateError(err)
	}
	return bookmarks, nil
}
