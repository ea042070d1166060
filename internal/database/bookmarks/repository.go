// Package bookmarks provides database operations for bookmark management.
//
// Create and Update run as single transactions covering the bookmark row and
// its tag/collection links, so a failed link write rolls back the row write.
//
// # Usage
//
//	repo := bookmarks.NewRepository(db)
//	bookmark, err := repo.Create(bookmarks.CreateInput{URL: "https://go.dev"})
package bookmarks

import (
	"strings"

	"gorm.io/gorm"

	"github.com/mrlokans/linkvault/internal/database"
	"github.com/mrlokans/linkvault/internal/database/links"
	"github.com/mrlokans/linkvault/internal/entities"
)

// DefaultLimit caps listings when the caller does not specify one.
const DefaultLimit = 50

// Repository handles all bookmark database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new bookmarks repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateInput holds the fields for creating a bookmark. Title defaults to the
// URL when empty. TagIDs and CollectionIDs, when supplied, must reference
// existing rows; a dangling id fails the whole transaction.
type CreateInput struct {
	URL           string
	Title         string
	Description   string
	FaviconURL    string
	TagIDs        []string
	CollectionIDs []string
}

// UpdateInput is a partial update. Nil scalar fields are left untouched.
// Nil TagIDs/CollectionIDs leave the existing links alone; a non-nil slice,
// including an empty one, replaces the link set entirely. That absent-vs-empty
// distinction is deliberate and callers rely on it.
type UpdateInput struct {
	URL           *string
	Title         *string
	Description   *string
	FaviconURL    *string
	TagIDs        []string
	CollectionIDs []string
}

// Filters narrows and pages bookmark listings. All fields are optional and
// combine with AND.
type Filters struct {
	// Search matches case-insensitively as a substring of url, title, or
	// description.
	Search string

	// TagID keeps only bookmarks linked to this tag.
	TagID string

	// CollectionID keeps only bookmarks linked to this collection.
	CollectionID string

	// Limit defaults to DefaultLimit; Offset defaults to 0. Both apply after
	// filtering, before relation attachment.
	Limit  int
	Offset int
}

// Create inserts a bookmark and its initial links in one transaction.
func (r *Repository) Create(input CreateInput) (*entities.Bookmark, error) {
	input.URL = strings.TrimSpace(input.URL)
	if input.URL == "" {
		return nil, database.ErrValidation
	}
	if strings.TrimSpace(input.Title) == "" {
		input.Title = input.URL
	}

	bookmark := &entities.Bookmark{
		URL:         input.URL,
		Title:       input.Title,
		Description: input.Description,
		FaviconURL:  input.FaviconURL,
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(bookmark).Error; err != nil {
			return err
		}
		if len(input.TagIDs) > 0 {
			if err := links.SetBookmarkTags(tx, bookmark.ID, input.TagIDs); err != nil {
				return err
			}
		}
		if len(input.CollectionIDs) > 0 {
			if err := links.SetBookmarkCollections(tx, bookmark.ID, input.CollectionIDs); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, database.TranslateError(err)
	}

	return bookmark, nil
}

// GetByID retrieves a bookmark without its relations.
func (r *Repository) GetByID(id string) (*entities.Bookmark, error) {
	var bookmark entities.Bookmark
	err := r.db.Where("id = ?", id).First(&bookmark).Error
	if err != nil {
		return nil, database.TranslateError(err)
	}
	return &bookmark, nil
}

// GetWithDetails retrieves a bookmark together with its tags and collections.
func (r *Repository) GetWithDetails(id string) (*entities.BookmarkWithDetails, error) {
	bookmark, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}

	tags, err := links.TagsForBookmark(r.db, id)
	if err != nil {
		return nil, database.TranslateError(err)
	}
	collections, err := links.CollectionsForBookmark(r.db, id)
	if err != nil {
		return nil, database.TranslateError(err)
	}

	return &entities.BookmarkWithDetails{
		Bookmark:    *bookmark,
		Tags:        tags,
		Collections: collections,
	}, nil
}

// List returns bookmarks matching the filters, newest first. Ties on
// created_at break by id so paging stays deterministic. Joining through the
// association tables for filtering never yields a bookmark twice.
func (r *Repository) List(filters Filters) ([]entities.Bookmark, error) {
	var bookmarks []entities.Bookmark
	err := r.listQuery(filters).Find(&bookmarks).Error
	if err != nil {
		return nil, database.TranslateError(err)
	}
	return bookmarks, nil
}

// ListWithTags returns the filtered listing with each bookmark's tags
// attached. Tags for the whole page are resolved with a single join query.
func (r *Repository) ListWithTags(filters Filters) ([]entities.BookmarkWithTags, error) {
	bookmarks, err := r.List(filters)
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(bookmarks))
	for i, b := range bookmarks {
		ids[i] = b.ID
	}

	tagsByBookmark, err := links.TagsForBookmarks(r.db, ids)
	if err != nil {
		return nil, database.TranslateError(err)
	}

	result := make([]entities.BookmarkWithTags, len(bookmarks))
	for i, b := range bookmarks {
		tags := tagsByBookmark[b.ID]
		if tags == nil {
			tags = []entities.Tag{}
		}
		result[i] = entities.BookmarkWithTags{Bookmark: b, Tags: tags}
	}
	return result, nil
}

// Update applies a partial update and reconciles links in one transaction.
func (r *Repository) Update(id string, input UpdateInput) (*entities.Bookmark, error) {
	fields := map[string]interface{}{}
	if input.URL != nil {
		url := strings.TrimSpace(*input.URL)
		if url == "" {
			return nil, database.ErrValidation
		}
		fields["url"] = url
	}
	if input.Title != nil {
		if strings.TrimSpace(*input.Title) == "" {
			return nil, database.ErrValidation
		}
		fields["title"] = *input.Title
	}
	if input.Description != nil {
		fields["description"] = *input.Description
	}
	if input.FaviconURL != nil {
		fields["favicon_url"] = *input.FaviconURL
	}

	var bookmark entities.Bookmark
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&bookmark).Error; err != nil {
			return err
		}

		// updated_at refreshes on every successful update, link-only
		// updates included.
		if len(fields) == 0 {
			fields["updated_at"] = tx.NowFunc()
		}
		if err := tx.Model(&bookmark).Updates(fields).Error; err != nil {
			return err
		}

		if input.TagIDs != nil {
			if err := links.SetBookmarkTags(tx, id, input.TagIDs); err != nil {
				return err
			}
		}
		if input.CollectionIDs != nil {
			if err := links.SetBookmarkCollections(tx, id, input.CollectionIDs); err != nil {
				return err
			}
		}

		return tx.Where("id = ?", id).First(&bookmark).Error
	})
	if err != nil {
		return nil, database.TranslateError(err)
	}

	return &bookmark, nil
}

// Delete removes a bookmark and returns the deleted row. The foreign keys on
// the join tables cascade, so no tag or collection link survives it.
func (r *Repository) Delete(id string) (*entities.Bookmark, error) {
	var bookmark entities.Bookmark
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&bookmark).Error; err != nil {
			return err
		}
		return tx.Delete(&entities.Bookmark{}, "id = ?", id).Error
	})
	if err != nil {
		return nil, database.TranslateError(err)
	}
	return &bookmark, nil
}

// ListMissingMetadata returns bookmarks whose title is still the URL
// placeholder or whose favicon is empty. The background enrichment sweep
// uses this to pick candidates.
func (r *Repository) ListMissingMetadata() ([]entities.Bookmark, error) {
	var bookmarks []entities.Bookmark
	err := r.db.Where("title = url OR favicon_url = ''").Find(&bookmarks).Error
	if err != nil {
		return nil, database.TranslateError(err)
	}
	return bookmarks, nil
}

func (r *Repository) listQuery(filters Filters) *gorm.DB {
	query := r.db.Model(&entities.Bookmark{}).Distinct("bookmarks.*")

	if filters.TagID != "" {
		query = query.
			Joins("INNER JOIN bookmark_tags ON bookmark_tags.bookmark_id = bookmarks.id").
			Where("bookmark_tags.tag_id = ?", filters.TagID)
	}

	if filters.CollectionID != "" {
		query = query.
			Joins("INNER JOIN bookmark_collections ON bookmark_collections.bookmark_id = bookmarks.id").
			Where("bookmark_collections.collection_id = ?", filters.CollectionID)
	}

	if filters.Search != "" {
		pattern := "%" + filters.Search + "%"
		query = query.Where(
			"LOWER(bookmarks.url) LIKE LOWER(?) OR LOWER(bookmarks.title) LIKE LOWER(?) OR LOWER(bookmarks.description) LIKE LOWER(?)",
			pattern, pattern, pattern,
		)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	return query.
		Order("bookmarks.created_at DESC, bookmarks.id DESC").
		Limit(limit).
		Offset(offset)
}
