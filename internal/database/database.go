package database

import (
	"fmt"
	"log"
	"strings"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/linkvault/internal/entities"
)

// Database wraps the shared gorm handle. It is constructed once at startup
// and closed on shutdown; repositories receive the inner *gorm.DB.
type Database struct {
	DB *gorm.DB
}

// Options customizes the database handle. The zero value is production-ready.
type Options struct {
	// NowFunc supplies timestamps for created_at/updated_at. Defaults to
	// time.Now. Tests inject a fixed clock here.
	NowFunc func() time.Time

	// Logger overrides the gorm logger. Defaults to info-level logging.
	Logger logger.Interface
}

func NewDatabase(dbPath string) (*Database, error) {
	return NewDatabaseWithOptions(dbPath, Options{})
}

func NewDatabaseWithOptions(dbPath string, opts Options) (*Database, error) {
	gormLogger := opts.Logger
	if gormLogger == nil {
		gormLogger = logger.Default.LogMode(logger.Info)
	}

	db, err := gorm.Open(sqlite.Open(dsn(dbPath)), &gorm.Config{
		Logger:  gormLogger,
		NowFunc: opts.NowFunc,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = db.AutoMigrate(
		&entities.Bookmark{},
		&entities.Tag{},
		&entities.Collection{},
		&entities.BookmarkTag{},
		&entities.BookmarkCollection{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Printf("Database initialized successfully at %s", dbPath)

	return &Database{DB: db}, nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// dsn enables foreign key enforcement so that deleting a bookmark, tag, or
// collection cascades through the join tables inside the engine itself.
func dsn(dbPath string) string {
	if strings.Contains(dbPath, "?") {
		return dbPath + "&_foreign_keys=on&_busy_timeout=5000"
	}
	return dbPath + "?_foreign_keys=on&_busy_timeout=5000"
}
