package tasks

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mikestefanello/backlite"

	"github.com/mrlokans/linkvault/internal/database/bookmarks"
	"github.com/mrlokans/linkvault/internal/entities"
	"github.com/mrlokans/linkvault/internal/metadata"
)

// BookmarkStore is the slice of the bookmark repository the enrichment task
// needs.
type BookmarkStore interface {
	GetByID(id string) (*entities.Bookmark, error)
	Update(id string, input bookmarks.UpdateInput) (*entities.Bookmark, error)
}

// EnrichBookmarkTask re-fetches page metadata for a bookmark and fills in a
// missing title or favicon. Fields the user already has are never overwritten.
type EnrichBookmarkTask struct {
	BookmarkID string `json:"bookmark_id"`
}

// Config returns the queue configuration for bookmark enrichment tasks.
func (t EnrichBookmarkTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        "enrich_bookmark",
		MaxAttempts: 3,
		Backoff:     30 * time.Second,
		Timeout:     2 * time.Minute,
		Retention: &backlite.Retention{
			Duration:   24 * time.Hour,
			OnlyFailed: false,
			Data:       &backlite.RetainData{OnlyFailed: true},
		},
	}
}

// EnrichBookmarkProcessor creates a processor function for EnrichBookmarkTask.
func EnrichBookmarkProcessor(fetcher *metadata.Fetcher, store BookmarkStore) backlite.QueueProcessor[EnrichBookmarkTask] {
	return func(ctx context.Context, task EnrichBookmarkTask) error {
		if fetcher == nil || store == nil {
			return fmt.Errorf("enrichment dependencies not configured")
		}

		bookmark, err := store.GetByID(task.BookmarkID)
		if err != nil {
			return fmt.Errorf("get bookmark %s: %w", task.BookmarkID, err)
		}

		// A title equal to the URL means metadata fetching failed at
		// creation time and the URL was used as a placeholder.
		missingTitle := bookmark.Title == bookmark.URL
		missingFavicon := bookmark.FaviconURL == ""
		if !missingTitle && !missingFavicon {
			return nil
		}

		meta, err := fetcher.Fetch(ctx, bookmark.URL)
		if err != nil {
			return fmt.Errorf("fetch metadata for %s: %w", bookmark.URL, err)
		}

		var input bookmarks.UpdateInput
		var updated []string
		if missingTitle && meta.Title != "" {
			input.Title = &meta.Title
			updated = append(updated, "title")
		}
		if missingFavicon && meta.FaviconURL != "" {
			input.FaviconURL = &meta.FaviconURL
			updated = append(updated, "favicon_url")
		}
		if len(updated) == 0 {
			log.Printf("[TASK] Bookmark %s (%s): no metadata found", bookmark.ID, bookmark.URL)
			return nil
		}

		if _, err := store.Update(bookmark.ID, input); err != nil {
			return fmt.Errorf("update bookmark %s: %w", bookmark.ID, err)
		}

		log.Printf("[TASK] Enriched bookmark %s (%s): updated %v", bookmark.ID, bookmark.URL, updated)
		return nil
	}
}

// NewEnrichBookmarkQueue creates a backlite queue for enrichment tasks.
func NewEnrichBookmarkQueue(fetcher *metadata.Fetcher, store BookmarkStore) backlite.Queue {
	return backlite.NewQueue(EnrichBookmarkProcessor(fetcher, store))
}
