package postgres

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Ramon-Molinero/pokedex/internal/domain"
	"github.com/Ramon-Molinero/pokedex/internal/store"
)

// PostgreSQL error codes handled by MapError.
const (
	codeUniqueViolation = "23505"
	codeCheckViolation  = "23514"
)

// MapError converts pgx/pgconn errors to domain and store errors.
// key identifies the record in the wrapped message (an id, no or name).
// context.DeadlineExceeded and context.Canceled are NOT mapped; they pass through.
func MapError(err error, entity string, key any) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %v: %w", entity, key, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %v: %w", entity, key, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return duplicateKey(pgErr)
		case codeCheckViolation:
			return fmt.Errorf("%s %v: %s: %w", entity, key, pgErr.ConstraintName, domain.ErrValidation)
		}
	}

	return fmt.Errorf("%s %v: %w", entity, key, err)
}

// uniqueDetail matches the DETAIL line of a unique_violation, e.g.
// `Key (name)=(pikachu) already exists.`
var uniqueDetail = regexp.MustCompile(`^Key \(([^)]+)\)=\((.*)\) already exists\.?$`)

// duplicateKey extracts the offending column and value from a unique
// violation. It falls back to the constraint name (<table>_<column>_key)
// when the detail is missing or redacted.
func duplicateKey(pgErr *pgconn.PgError) *store.DuplicateKeyError {
	if m := uniqueDetail.FindStringSubmatch(pgErr.Detail); m != nil {
		return &store.DuplicateKeyError{Field: m[1], Value: m[2]}
	}

	field := strings.TrimSuffix(pgErr.ConstraintName, "_key")
	if pgErr.TableName != "" {
		field = strings.TrimPrefix(field, pgErr.TableName+"_")
	}
	if field == pgErr.ConstraintName {
		field = ""
	}
	return &store.DuplicateKeyError{Field: field}
}
