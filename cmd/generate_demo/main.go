// Command generate_demo creates a demo database with sample bookmarks.
// Usage: go run cmd/generate_demo/main.go [-db path/to/demo.db]
package main

import (
	"flag"
	"log"
	"os"

	"github.com/mrlokans/linkvault/internal/database"
	"github.com/mrlokans/linkvault/internal/database/bookmarks"
	"github.com/mrlokans/linkvault/internal/database/collections"
	"github.com/mrlokans/linkvault/internal/database/tags"
	"github.com/mrlokans/linkvault/internal/entities"
)

const defaultDemoDatabasePath = "./demo/demo.db"

type demoBookmark struct {
	URL         string
	Title       string
	Description string
	TagNames    []string
	Collections []string
}

func main() {
	dbPath := flag.String("db", defaultDemoDatabasePath, "path to the demo database file")
	flag.Parse()

	log.Printf("Generating demo database at %s...", *dbPath)

	// Delete existing demo database to start fresh
	if err := os.Remove(*dbPath); err != nil && !os.IsNotExist(err) {
		log.Fatalf("Failed to remove existing demo database: %v", err)
	}

	db, err := database.NewDatabase(*dbPath)
	if err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}
	defer db.Close()

	tagRepo := tags.NewRepository(db.DB)
	collectionRepo := collections.NewRepository(db.DB)
	bookmarkRepo := bookmarks.NewRepository(db.DB)

	demoTags := createTags(tagRepo)
	demoCollections := createCollections(collectionRepo)

	for _, item := range getDemoBookmarks() {
		input := bookmarks.CreateInput{
			URL:         item.URL,
			Title:       item.Title,
			Description: item.Description,
		}
		for _, name := range item.TagNames {
			if tag, ok := demoTags[name]; ok {
				input.TagIDs = append(input.TagIDs, tag.ID)
			}
		}
		for _, name := range item.Collections {
			if collection, ok := demoCollections[name]; ok {
				input.CollectionIDs = append(input.CollectionIDs, collection.ID)
			}
		}

		if _, err := bookmarkRepo.Create(input); err != nil {
			log.Printf("Failed to save bookmark %s: %v", item.URL, err)
			continue
		}
		log.Printf("Saved: %s (%s)", item.Title, item.URL)
	}

	log.Println("Demo database generated successfully!")
}

func createTags(repo *tags.Repository) map[string]entities.Tag {
	colors := map[string]string{
		"golang":        "#00add8",
		"databases":     "#e76f51",
		"web":           "#2a9d8f",
		"documentation": "#6366f1",
	}

	result := make(map[string]entities.Tag)
	for name, color := range colors {
		tag, err := repo.Create(name, color)
		if err != nil {
			log.Printf("Failed to create tag %s: %v", name, err)
			continue
		}
		result[name] = *tag
	}
	return result
}

func createCollections(repo *collections.Repository) map[string]entities.Collection {
	descriptions := map[string]string{
		"Reading List": "Articles queued up for later",
		"Reference":    "Docs worth keeping at hand",
	}

	result := make(map[string]entities.Collection)
	for name, description := range descriptions {
		collection, err := repo.Create(name, description)
		if err != nil {
			log.Printf("Failed to create collection %s: %v", name, err)
			continue
		}
		result[name] = *collection
	}
	return result
}

func getDemoBookmarks() []demoBookmark {
	return []demoBookmark{
		{
			URL:         "https://go.dev",
			Title:       "The Go Programming Language",
			Description: "Official Go website with downloads, documentation, and the blog",
			TagNames:    []string{"golang", "documentation"},
			Collections: []string{"Reference"},
		},
		{
			URL:         "https://go.dev/blog/pipelines",
			Title:       "Go Concurrency Patterns: Pipelines and cancellation",
			Description: "How to build streaming data pipelines with goroutines and channels",
			TagNames:    []string{"golang"},
			Collections: []string{"Reading List"},
		},
		{
			URL:         "https://www.sqlite.org/wal.html",
			Title:       "Write-Ahead Logging",
			Description: "SQLite WAL mode documentation",
			TagNames:    []string{"databases", "documentation"},
			Collections: []string{"Reference"},
		},
		{
			URL:         "https://gorm.io/docs/",
			Title:       "GORM Guides",
			Description: "The fantastic ORM library for Golang",
			TagNames:    []string{"golang", "databases", "documentation"},
			Collections: []string{"Reference"},
		},
		{
			URL:         "https://developer.mozilla.org/en-US/docs/Web/HTTP/Status",
			Title:       "HTTP response status codes",
			TagNames:    []string{"web", "documentation"},
			Collections: []string{"Reference"},
		},
		{
			URL:         "https://12factor.net",
			Title:       "The Twelve-Factor App",
			Description: "A methodology for building software-as-a-service apps",
			TagNames:    []string{"web"},
			Collections: []string{"Reading List"},
		},
	}
}
