// Package scheduler runs periodic maintenance jobs on cron schedules.
package scheduler

import (
	"fmt"
	"log"
	"sync"

	"github.com/mikestefanello/backlite"
	"github.com/robfig/cron/v3"

	"github.com/mrlokans/linkvault/internal/entities"
	"github.com/mrlokans/linkvault/internal/tasks"
)

// MissingMetadataLister lists bookmarks that still need metadata.
type MissingMetadataLister interface {
	ListMissingMetadata() ([]entities.Bookmark, error)
}

// TaskEnqueuer enqueues background tasks.
type TaskEnqueuer interface {
	Add(tasks ...backlite.Task) *backlite.TaskAddOp
}

// MetadataRefreshScheduler periodically enqueues enrichment tasks for
// bookmarks that are still missing a title or favicon.
type MetadataRefreshScheduler struct {
	store    MissingMetadataLister
	enqueuer TaskEnqueuer
	schedule string

	cron      *cron.Cron
	mu        sync.Mutex
	isRunning bool
}

// NewMetadataRefreshScheduler creates a new scheduler instance.
func NewMetadataRefreshScheduler(store MissingMetadataLister, enqueuer TaskEnqueuer, schedule string) *MetadataRefreshScheduler {
	return &MetadataRefreshScheduler{
		store:    store,
		enqueuer: enqueuer,
		schedule: schedule,
		cron:     cron.New(cron.WithParser(cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow))),
	}
}

// Start begins the scheduler.
func (s *MetadataRefreshScheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	if _, err := s.cron.AddFunc(s.schedule, s.runSweep); err != nil {
		return fmt.Errorf("failed to schedule metadata refresh '%s': %w", s.schedule, err)
	}

	s.cron.Start()
	s.isRunning = true
	log.Printf("Metadata refresh scheduler: started with schedule '%s'", s.schedule)
	return nil
}

// Stop halts the scheduler. Already-enqueued tasks keep running on the queue.
func (s *MetadataRefreshScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}
	s.cron.Stop()
	s.isRunning = false
	log.Printf("Metadata refresh scheduler: stopped")
}

func (s *MetadataRefreshScheduler) runSweep() {
	bookmarks, err := s.store.ListMissingMetadata()
	if err != nil {
		log.Printf("Metadata refresh sweep failed: %v", err)
		return
	}
	if len(bookmarks) == 0 {
		return
	}

	enqueued := 0
	for _, bookmark := range bookmarks {
		task := tasks.EnrichBookmarkTask{BookmarkID: bookmark.ID}
		if _, err := s.enqueuer.Add(task).Save(); err != nil {
			log.Printf("Failed to enqueue enrichment for bookmark %s: %v", bookmark.ID, err)
			continue
		}
		enqueued++
	}
	log.Printf("Metadata refresh sweep: enqueued %d of %d candidates", enqueued, len(bookmarks))
}
