package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/linkvault/internal/config"
	"github.com/mrlokans/linkvault/internal/database"
	"github.com/mrlokans/linkvault/internal/database/bookmarks"
	"github.com/mrlokans/linkvault/internal/database/collections"
	"github.com/mrlokans/linkvault/internal/database/tags"
	http_controllers "github.com/mrlokans/linkvault/internal/http"
	"github.com/mrlokans/linkvault/internal/metadata"
	"github.com/mrlokans/linkvault/internal/scheduler"
	"github.com/mrlokans/linkvault/internal/tasks"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

// Serve runs the HTTP server until SIGINT/SIGTERM, then shuts down within
// the configured timeout.
func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		log.Printf("Starting server at %s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Stop background machinery before the listener so in-flight requests
	// can still reach the store.
	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

// Run wires the storage layer, background tasks, and HTTP shell together and
// serves until shutdown.
func Run(cfg *config.Config, version string) {
	log.Printf("Starting LinkVault v%s", version)

	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	bookmarksRepo := bookmarks.NewRepository(db.DB)
	tagsRepo := tags.NewRepository(db.DB)
	collectionsRepo := collections.NewRepository(db.DB)
	fetcher := metadata.NewFetcher()

	var taskClient *tasks.Client
	var refreshScheduler *scheduler.MetadataRefreshScheduler

	if cfg.Tasks.Enabled {
		taskClient, err = tasks.NewClient(cfg.Database.Path, tasks.Config{
			Workers:           cfg.Tasks.Workers,
			MaxRetries:        cfg.Tasks.MaxRetries,
			RetryDelay:        cfg.Tasks.RetryDelay,
			TaskTimeout:       cfg.Tasks.TaskTimeout,
			ReleaseAfter:      cfg.Tasks.ReleaseAfter,
			CleanupInterval:   cfg.Tasks.CleanupInterval,
			RetentionDuration: cfg.Tasks.RetentionDuration,
		})
		if err != nil {
			log.Fatalf("Failed to initialize task queue: %v", err)
		}

		taskClient.Register(tasks.NewEnrichBookmarkQueue(fetcher, bookmarksRepo))
		go taskClient.Start(context.Background())

		if cfg.MetadataRefresh.Enabled {
			refreshScheduler = scheduler.NewMetadataRefreshScheduler(
				bookmarksRepo, taskClient, cfg.MetadataRefresh.Schedule)
			if err := refreshScheduler.Start(); err != nil {
				log.Fatalf("Failed to start metadata refresh scheduler: %v", err)
			}
		}
	} else {
		log.Printf("Task queue disabled; bookmark metadata enrichment is off")
	}

	router := http_controllers.NewRouter(http_controllers.RouterConfig{
		Bookmarks:   http_controllers.NewBookmarksController(bookmarksRepo, fetcher),
		Tags:        http_controllers.NewTagsController(tagsRepo),
		Collections: http_controllers.NewCollectionsController(collectionsRepo),
		Metadata:    http_controllers.NewMetadataController(fetcher),
		Health:      http_controllers.NewHealthController(db, version),
	})

	Serve(router, cfg, func(ctx context.Context) {
		if refreshScheduler != nil {
			refreshScheduler.Stop()
		}
		if taskClient != nil {
			taskClient.Stop(ctx)
			if err := taskClient.Close(); err != nil {
				log.Printf("Failed to close task queue: %v", err)
			}
		}
		if err := db.Close(); err != nil {
			log.Printf("Failed to close database: %v", err)
		}
	})
}
