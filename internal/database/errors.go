package database

import (
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

// Error kinds surfaced by the storage layer. Callers branch on these with
// errors.Is; the HTTP shell maps them onto status codes.
var (
	// ErrNotFound means the operation targeted a nonexistent id.
	ErrNotFound = errors.New("not found")

	// ErrDuplicate means a uniqueness constraint (bookmark URL or tag name)
	// was breached.
	ErrDuplicate = errors.New("already exists")

	// ErrValidation means the input was rejected before or by the storage
	// engine (empty url/title, malformed color, link to a nonexistent row).
	ErrValidation = errors.New("invalid input")

	// ErrUnavailable wraps transport or engine failures that are not the
	// caller's fault.
	ErrUnavailable = errors.New("storage unavailable")
)

// TranslateError maps raw gorm/sqlite errors onto the storage error kinds.
// Errors that already carry a kind pass through unchanged.
func TranslateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrDuplicate) ||
		errors.Is(err, ErrValidation) || errors.Is(err, ErrUnavailable) {
		return err
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return fmt.Errorf("%w: %v", ErrDuplicate, err)
		case sqlite3.ErrConstraintForeignKey:
			// A link referenced a bookmark/tag/collection that does not
			// exist; the whole transaction has been rolled back.
			return fmt.Errorf("%w: %v", ErrValidation, err)
		}
	}

	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}
