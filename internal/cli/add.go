package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/mrlokans/linkvault/internal/config"
	"github.com/mrlokans/linkvault/internal/database/bookmarks"
	"github.com/mrlokans/linkvault/internal/database/collections"
	"github.com/mrlokans/linkvault/internal/database/tags"
	"github.com/mrlokans/linkvault/internal/metadata"
)

// AddCommand saves a URL as a bookmark, pre-filling title and favicon from
// the page and resolving tag/collection names to links.
type AddCommand struct {
	URL          string
	Title        string
	Description  string
	DatabasePath string
	TagNames     stringSliceFlag
	Collections  stringSliceFlag
}

func NewAddCommand() *AddCommand {
	return &AddCommand{}
}

func (cmd *AddCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("add", flag.ExitOnError)

	fs.StringVar(&cmd.Title, "title", "", "Bookmark title (fetched from the page if omitted)")
	fs.StringVar(&cmd.Description, "description", "", "Bookmark description")
	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the database file")
	fs.Var(&cmd.TagNames, "tag", "Tag name to attach (repeatable, created on demand)")
	fs.Var(&cmd.Collections, "collection", "Collection name to attach (repeatable, created on demand)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s add <url> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Save a URL as a bookmark. Title and favicon are fetched from the page\n")
		fmt.Fprintf(os.Stderr, "unless provided; a fetch failure falls back to the URL as the title.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s add https://go.dev -tag golang -tag docs\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s add https://go.dev -title \"The Go site\" -collection Reading\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	cmd.URL = fs.Arg(0)
	if cmd.URL == "" {
		return fmt.Errorf("url argument is required")
	}

	return nil
}

func (cmd *AddCommand) Run() error {
	db, err := openDatabase(cmd.DatabasePath)
	if err != nil {
		return err
	}
	defer db.Close()

	bookmarksRepo := bookmarks.NewRepository(db.DB)
	tagsRepo := tags.NewRepository(db.DB)
	collectionsRepo := collections.NewRepository(db.DB)

	title := cmd.Title
	faviconURL := ""
	if title == "" {
		fmt.Print("Fetching metadata... ")
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		meta, err := metadata.NewFetcher().Fetch(ctx, cmd.URL)
		if err != nil {
			fmt.Println("(failed, using URL as title)")
		} else {
			title = meta.Title
			faviconURL = meta.FaviconURL
			fmt.Printf("%q\n", title)
		}
	}

	var tagIDs []string
	for _, name := range cmd.TagNames {
		tag, err := tagsRepo.GetOrCreate(name)
		if err != nil {
			return fmt.Errorf("resolve tag %q: %w", name, err)
		}
		tagIDs = append(tagIDs, tag.ID)
	}

	var collectionIDs []string
	for _, name := range cmd.Collections {
		collection, err := collectionsRepo.GetOrCreateByName(name)
		if err != nil {
			return fmt.Errorf("resolve collection %q: %w", name, err)
		}
		collectionIDs = append(collectionIDs, collection.ID)
	}

	bookmark, err := bookmarksRepo.Create(bookmarks.CreateInput{
		URL:           cmd.URL,
		Title:         title,
		Description:   cmd.Description,
		FaviconURL:    faviconURL,
		TagIDs:        tagIDs,
		CollectionIDs: collectionIDs,
	})
	if err != nil {
		return fmt.Errorf("create bookmark: %w", err)
	}

	fmt.Printf("Saved: %s (%s)\n", bookmark.Title, bookmark.ID)
	return nil
}
