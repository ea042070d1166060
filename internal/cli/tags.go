package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/mrlokans/linkvault/internal/config"
	"github.com/mrlokans/linkvault/internal/database/tags"
)

// TagsCommand lists all tags or creates a new one.
type TagsCommand struct {
	Create       string
	Color        string
	DatabasePath string
}

func NewTagsCommand() *TagsCommand {
	return &TagsCommand{}
}

func (cmd *TagsCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("tags", flag.ExitOnError)

	fs.StringVar(&cmd.Create, "create", "", "Create a tag with this name instead of listing")
	fs.StringVar(&cmd.Color, "color", "", "Hex color for the created tag, e.g. #ff0000")
	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the database file")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s tags [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "List tags ordered by name, or create one with -create.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

func (cmd *TagsCommand) Run() error {
	db, err := openDatabase(cmd.DatabasePath)
	if err != nil {
		return err
	}
	defer db.Close()

	repo := tags.NewRepository(db.DB)

	if cmd.Create != "" {
		tag, err := repo.Create(cmd.Create, cmd.Color)
		if err != nil {
			return fmt.Errorf("create tag: %w", err)
		}
		fmt.Printf("Created tag: %s %s (%s)\n", tag.Name, tag.Color, tag.ID)
		return nil
	}

	all, err := repo.List()
	if err != nil {
		return fmt.Errorf("list tags: %w", err)
	}
	if len(all) == 0 {
		fmt.Println("No tags yet.")
		return nil
	}
	for _, tag := range all {
		fmt.Printf("%-30s  %s  %s\n", tag.Name, tag.Color, tag.ID)
	}
	return nil
}
