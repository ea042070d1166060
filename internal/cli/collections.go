package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/mrlokans/linkvault/internal/config"
	"github.com/mrlokans/linkvault/internal/database/collections"
)

// CollectionsCommand lists all collections or creates a new one.
type CollectionsCommand struct {
	Create       string
	Description  string
	DatabasePath string
}

func NewCollectionsCommand() *CollectionsCommand {
	return &CollectionsCommand{}
}

func (cmd *CollectionsCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("collections", flag.ExitOnError)

	fs.StringVar(&cmd.Create, "create", "", "Create a collection with this name instead of listing")
	fs.StringVar(&cmd.Description, "description", "", "Description for the created collection")
	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the database file")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s collections [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "List collections ordered by name, or create one with -create.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

func (cmd *CollectionsCommand) Run() error {
	db, err := openDatabase(cmd.DatabasePath)
	if err != nil {
		return err
	}
	defer db.Close()

	repo := collections.NewRepository(db.DB)

	if cmd.Create != "" {
		collection, err := repo.Create(cmd.Create, cmd.Description)
		if err != nil {
			return fmt.Errorf("create collection: %w", err)
		}
		fmt.Printf("Created collection: %s (%s)\n", collection.Name, collection.ID)
		return nil
	}

	all, err := repo.List()
	if err != nil {
		return fmt.Errorf("list collections: %w", err)
	}
	if len(all) == 0 {
		fmt.Println("No collections yet.")
		return nil
	}
	for _, collection := range all {
		fmt.Printf("%-30s  %s  %s\n", collection.Name, truncate(collection.Description, 50), collection.ID)
	}
	return nil
}
