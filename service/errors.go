package service

import (
	"errors"
	"fmt"

	"github.com/ariebrainware/clinic-api/validation"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Error taxonomy of the access layer. Callers match with errors.Is; field
// violations are returned as validation.Errors.
var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
)

func notFound(resource string, id uint) error {
	return fmt.Errorf("%w: %s %d", ErrNotFound, resource, id)
}

// translateWriteError maps driver constraint failures onto the taxonomy and
// passes everything else through unchanged.
func translateWriteError(err error) error {
	var verrs validation.Errors
	switch {
	case err == nil:
		return nil
	case errors.As(err, &verrs), errors.Is(err, ErrNotFound), errors.Is(err, ErrConflict):
		return err
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", ErrConflict, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: %v", ErrConflict, err)
	default:
		return err
	}
}

// lockRow adds a row lock to the next query. SQLite has no row-level locks;
// its writers are serialized by the database file lock instead.
func lockRow(tx *gorm.DB, strength string) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: strength})
}
