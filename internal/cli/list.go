package cli

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/mrlokans/linkvault/internal/config"
	"github.com/mrlokans/linkvault/internal/database/bookmarks"
	"github.com/mrlokans/linkvault/internal/database/tags"
	"github.com/mrlokans/linkvault/internal/entities"
)

// ListCommand prints bookmarks, newest first, with optional filtering.
type ListCommand struct {
	Search       string
	TagName      string
	Limit        int
	Offset       int
	DatabasePath string
}

func NewListCommand() *ListCommand {
	return &ListCommand{}
}

func (cmd *ListCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)

	fs.StringVar(&cmd.Search, "search", "", "Filter by substring of url, title, or description")
	fs.StringVar(&cmd.TagName, "tag", "", "Filter by tag name")
	fs.IntVar(&cmd.Limit, "limit", bookmarks.DefaultLimit, "Maximum number of bookmarks to show")
	fs.IntVar(&cmd.Offset, "offset", 0, "Number of bookmarks to skip")
	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the database file")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s list [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "List bookmarks, newest first.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

func (cmd *ListCommand) Run() error {
	db, err := openDatabase(cmd.DatabasePath)
	if err != nil {
		return err
	}
	defer db.Close()

	filters := bookmarks.Filters{
		Search: cmd.Search,
		Limit:  cmd.Limit,
		Offset: cmd.Offset,
	}

	if cmd.TagName != "" {
		tagsRepo := tags.NewRepository(db.DB)
		all, err := tagsRepo.List()
		if err != nil {
			return fmt.Errorf("list tags: %w", err)
		}
		for _, tag := range all {
			if tag.Name == cmd.TagName {
				filters.TagID = tag.ID
				break
			}
		}
		if filters.TagID == "" {
			return fmt.Errorf("tag %q not found", cmd.TagName)
		}
	}

	result, err := bookmarks.NewRepository(db.DB).ListWithTags(filters)
	if err != nil {
		return fmt.Errorf("list bookmarks: %w", err)
	}

	if len(result) == 0 {
		fmt.Println("No bookmarks found.")
		return nil
	}

	for _, bookmark := range result {
		fmt.Printf("%s  %-40s  %s%s\n",
			bookmark.CreatedAt.Format("2006-01-02"),
			truncate(bookmark.Title, 40),
			truncate(bookmark.URL, 60),
			formatTagNames(bookmark.Tags),
		)
	}
	fmt.Printf("\n%d bookmark(s)\n", len(result))
	return nil
}

func formatTagNames(tagList []entities.Tag) string {
	if len(tagList) == 0 {
		return ""
	}
	names := make([]string, len(tagList))
	for i, tag := range tagList {
		names[i] = tag.Name
	}
	return "  [" + strings.Join(names, ", ") + "]"
}
