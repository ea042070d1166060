package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultTagColor is applied when a tag is created without an explicit color.
const DefaultTagColor = "#6366f1"

type Bookmark struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	URL         string    `gorm:"uniqueIndex;not null;size:2048" json:"url"`
	Title       string    `gorm:"not null;size:512" json:"title"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	FaviconURL  string    `gorm:"size:2048" json:"favicon_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Tag struct {
	ID    string `gorm:"primaryKey;size:36" json:"id"`
	Name  string `gorm:"uniqueIndex;not null;size:100" json:"name"`
	Color string `gorm:"not null;size:9;default:'#6366f1'" json:"color"`
}

// Collection names are intentionally not unique: two collections may share a
// name, unlike tag names and bookmark URLs.
type Collection struct {
	ID          string `gorm:"primaryKey;size:36" json:"id"`
	Name        string `gorm:"not null;size:256;index" json:"name"`
	Description string `gorm:"type:text" json:"description,omitempty"`
}

// BookmarkTag is a composite-key join row linking a bookmark to a tag.
// Both foreign keys cascade-delete with their parent.
type BookmarkTag struct {
	BookmarkID string   `gorm:"primaryKey;size:36" json:"bookmark_id"`
	TagID      string   `gorm:"primaryKey;size:36" json:"tag_id"`
	Bookmark   Bookmark `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Tag        Tag      `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

// BookmarkCollection is a composite-key join row linking a bookmark to a collection.
type BookmarkCollection struct {
	BookmarkID   string     `gorm:"primaryKey;size:36" json:"bookmark_id"`
	CollectionID string     `gorm:"primaryKey;size:36" json:"collection_id"`
	Bookmark     Bookmark   `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Collection   Collection `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

// BookmarkWithTags is a bookmark listing row with its tags attached.
type BookmarkWithTags struct {
	Bookmark
	Tags []Tag `json:"tags"`
}

// BookmarkWithDetails is a single-bookmark view with tags and collections.
type BookmarkWithDetails struct {
	Bookmark
	Tags        []Tag        `json:"tags"`
	Collections []Collection `json:"collections"`
}

func (b *Bookmark) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

func (t *Tag) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

func (c *Collection) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

func (Bookmark) TableName() string {
	return "bookmarks"
}

func (Tag) TableName() string {
	return "tags"
}

func (Collection) TableName() string {
	return "collections"
}

func (BookmarkTag) TableName() string {
	return "bookmark_tags"
}

func (BookmarkCollection) TableName() string {
	return "bookmark_collections"
}
