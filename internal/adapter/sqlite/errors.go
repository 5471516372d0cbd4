package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/Ramon-Molinero/pokedex/internal/domain"
	"github.com/Ramon-Molinero/pokedex/internal/store"
)

// uniqueMessage matches "UNIQUE constraint failed: pokemon.name".
var uniqueMessage = regexp.MustCompile(`UNIQUE constraint failed: \w+\.(\w+)`)

// mapError converts database/sql and sqlite errors to domain and store errors.
// lookup resolves the offending value of a duplicate column, when known.
func mapError(err error, entity string, key any, lookup func(field string) string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %v: %w", entity, key, err)
	}

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s %v: %w", entity, key, domain.ErrNotFound)
	}

	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			dup := &store.DuplicateKeyError{}
			if m := uniqueMessage.FindStringSubmatch(sqliteErr.Error()); m != nil {
				dup.Field = m[1]
				if lookup != nil {
					dup.Value = lookup(dup.Field)
				}
			}
			return dup
		case sqlite3.SQLITE_CONSTRAINT_CHECK:
			return fmt.Errorf("%s %v: %w", entity, key, domain.ErrValidation)
		}
	}

	return fmt.Errorf("%s %v: %w", entity, key, err)
}
