// Package cli implements the command-line commands: add, list, tags, and
// collections. Each command opens its own database handle and closes it on
// exit.
package cli

import (
	"fmt"
	"strings"

	"gorm.io/gorm/logger"

	"github.com/mrlokans/linkvault/internal/database"
)

// openDatabase opens the database with quiet logging suitable for CLI output.
func openDatabase(dbPath string) (*database.Database, error) {
	db, err := database.NewDatabaseWithOptions(dbPath, database.Options{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open database at %s: %w", dbPath, err)
	}
	return db, nil
}

// stringSliceFlag collects repeated flag values, e.g. -tag dev -tag go.
type stringSliceFlag []string

func (s *stringSliceFlag) String() string {
	return strings.Join(*s, ", ")
}

func (s *stringSliceFlag) Set(value string) error {
	*s = append(*s, value)
	return nil
}

// truncate shortens a string for table display.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
