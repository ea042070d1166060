// Package links maintains the bookmark_tags and bookmark_collections join
// tables. All membership changes go through here: callers state the desired
// link set and the package reconciles the stored rows against it.
//
// Every function accepts the gorm handle to run against, which may be a
// transaction. The bookmark repository passes its transaction handle so link
// changes commit or roll back together with the bookmark row.
package links

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/mrlokans/linkvault/internal/entities"
)

// SetBookmarkTags replaces the bookmark's tag links with exactly tagIDs.
// Links not in tagIDs are deleted, missing ones are inserted; calling it
// twice with the same set is a no-op the second time. An empty slice clears
// all tag links for the bookmark.
func SetBookmarkTags(db *gorm.DB, bookmarkID string, tagIDs []string) error {
	var current []string
	err := db.Model(&entities.BookmarkTag{}).
		Where("bookmark_id = ?", bookmarkID).
		Pluck("tag_id", &current).Error
	if err != nil {
		return fmt.Errorf("load tag links: %w", err)
	}

	toRemove, toAdd := diffLinks(current, tagIDs)

	if len(toRemove) > 0 {
		err = db.Where("bookmark_id = ? AND tag_id IN ?", bookmarkID, toRemove).
			Delete(&entities.BookmarkTag{}).Error
		if err != nil {
			return fmt.Errorf("remove tag links: %w", err)
		}
	}

	if len(toAdd) > 0 {
		rows := make([]entities.BookmarkTag, 0, len(toAdd))
		for _, tagID := range toAdd {
			rows = append(rows, entities.BookmarkTag{BookmarkID: bookmarkID, TagID: tagID})
		}
		if err := db.Create(&rows).Error; err != nil {
			return fmt.Errorf("add tag links: %w", err)
		}
	}

	return nil
}

// SetBookmarkCollections replaces the bookmark's collection links with
// exactly collectionIDs. Same reconciliation semantics as SetBookmarkTags.
func SetBookmarkCollections(db *gorm.DB, bookmarkID string, collectionIDs []string) error {
	var current []string
	err := db.Model(&entities.BookmarkCollection{}).
		Where("bookmark_id = ?", bookmarkID).
		Pluck("collection_id", &current).Error
	if err != nil {
		return fmt.Errorf("load collection links: %w", err)
	}

	toRemove, toAdd := diffLinks(current, collectionIDs)

	if len(toRemove) > 0 {
		err = db.Where("bookmark_id = ? AND collection_id IN ?", bookmarkID, toRemove).
			Delete(&entities.BookmarkCollection{}).Error
		if err != nil {
			return fmt.Errorf("remove collection links: %w", err)
		}
	}

	if len(toAdd) > 0 {
		rows := make([]entities.BookmarkCollection, 0, len(toAdd))
		for _, collectionID := range toAdd {
			rows = append(rows, entities.BookmarkCollection{BookmarkID: bookmarkID, CollectionID: collectionID})
		}
		if err := db.Create(&rows).Error; err != nil {
			return fmt.Errorf("add collection links: %w", err)
		}
	}

	return nil
}

// TagsForBookmark returns the bookmark's tags ordered by name.
func TagsForBookmark(db *gorm.DB, bookmarkID string) ([]entities.Tag, error) {
	var tags []entities.Tag
	err := db.Model(&entities.Tag{}).
		Joins("INNER JOIN bookmark_tags ON bookmark_tags.tag_id = tags.id").
		Where("bookmark_tags.bookmark_id = ?", bookmarkID).
		Order("tags.name ASC").
		Find(&tags).Error
	return tags, err
}

// CollectionsForBookmark returns the bookmark's collections ordered by name.
func CollectionsForBookmark(db *gorm.DB, bookmarkID string) ([]entities.Collection, error) {
	var collections []entities.Collection
	err := db.Model(&entities.Collection{}).
		Joins("INNER JOIN bookmark_collections ON bookmark_collections.collection_id = collections.id").
		Where("bookmark_collections.bookmark_id = ?", bookmarkID).
		Order("collections.name ASC").
		Find(&collections).Error
	return collections, err
}

// TagsForBookmarks resolves tags for a whole result page with a single join
// query and returns them keyed by bookmark id. Bookmarks without tags have
// no entry in the map.
func TagsForBookmarks(db *gorm.DB, bookmarkIDs []string) (map[string][]entities.Tag, error) {
	result := make(map[string][]entities.Tag)
	if len(bookmarkIDs) == 0 {
		return result, nil
	}

	type taggedRow struct {
		BookmarkID string `gorm:"column:bookmark_id"`
		ID         string `gorm:"column:id"`
		Name       string `gorm:"column:name"`
		Color      string `gorm:"column:color"`
	}

	var rows []taggedRow
	err := db.Table("bookmark_tags").
		Select("bookmark_tags.bookmark_id, tags.id, tags.name, tags.color").
		Joins("INNER JOIN tags ON tags.id = bookmark_tags.tag_id").
		Where("bookmark_tags.bookmark_id IN ?", bookmarkIDs).
		Order("tags.name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("load tags for bookmarks: %w", err)
	}

	for _, row := range rows {
		result[row.BookmarkID] = append(result[row.BookmarkID], entities.Tag{
			ID:    row.ID,
			Name:  row.Name,
			Color: row.Color,
		})
	}
	return result, nil
}

// diffLinks computes the symmetric difference between the current and desired
// id sets. Duplicate ids in desired are collapsed.
func diffLinks(current, desired []string) (toRemove, toAdd []string) {
	desiredSet := make(map[string]bool, len(desired))
	for _, id := range desired {
		desiredSet[id] = true
	}

	currentSet := make(map[string]bool, len(current))
	for _, id := range current {
		currentSet[id] = true
		if !desiredSet[id] {
			toRemove = append(toRemove, id)
		}
	}

	for _, id := range desired {
		if currentSet[id] {
			continue
		}
		currentSet[id] = true
		toAdd = append(toAdd, id)
	}

	return toRemove, toAdd
}
