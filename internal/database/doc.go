// Package database provides the data access layer for the application.
//
// # Architecture
//
// The database layer is organized into domain-specific sub-packages:
//
//	database/
//	├── database.go      # Connection setup, migrations
//	├── errors.go        # Error kinds and driver error translation
//	├── bookmarks/       # Bookmark CRUD, filtered listing, transactional updates
//	├── tags/            # Tag management
//	├── collections/     # Collection management
//	└── links/           # Bookmark<->tag and bookmark<->collection associations
//
// # Using Sub-packages
//
// Each sub-package provides a Repository type with domain-specific operations:
//
//	// Initialize database connection
//	db, err := database.NewDatabase("./linkvault.db")
//
//	// Create domain-specific repositories
//	bookmarksRepo := bookmarks.NewRepository(db.DB)
//	tagsRepo := tags.NewRepository(db.DB)
//	collectionsRepo := collections.NewRepository(db.DB)
//
//	// Use repositories
//	bookmark, err := bookmarksRepo.GetByID(id)
//	allTags, err := tagsRepo.List()
//
// The links package is different: it exposes package-level functions that
// accept a *gorm.DB so repositories can call them inside transactions.
//
// # Error Handling
//
// Repositories return errors wrapping one of the package sentinels
// (ErrNotFound, ErrDuplicate, ErrValidation, ErrUnavailable). Callers
// branch with errors.Is rather than inspecting driver errors directly;
// TranslateError does the driver-specific mapping in one place.
//
// # Adding a New Domain
//
// To add a new domain (e.g., archives):
//
//  1. Create a new sub-package: internal/database/archives/
//  2. Define a Repository struct with a *gorm.DB field
//  3. Add NewRepository(db *gorm.DB) constructor
//  4. Translate driver errors through database.TranslateError
package database
