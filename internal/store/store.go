// Package store defines the record store contract shared by all backends
// (postgres, sqlite, memory) and the error types they report.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/Ramon-Molinero/pokedex/internal/domain"
)

// Store is the record store gateway implemented by every backend.
// Lookups return domain.ErrNotFound (wrapped) when nothing matches.
type Store interface {
	GetByNo(ctx context.Context, no int) (*domain.Pokemon, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Pokemon, error)
	GetByName(ctx context.Context, name string) (*domain.Pokemon, error)
	List(ctx context.Context, filter domain.PokemonFilter) ([]domain.Pokemon, error)

	Create(ctx context.Context, p *domain.Pokemon) (*domain.Pokemon, error)
	// InsertMany attempts every record (unordered). Per-record failures are
	// reported in BulkResult.WriteErrors; the returned error is set only when
	// the batch as a whole could not run.
	InsertMany(ctx context.Context, records []domain.Pokemon) (BulkResult, error)
	Update(ctx context.Context, id uuid.UUID, patch domain.PokemonPatch) (*domain.Pokemon, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)

	Ping(ctx context.Context) error
	Close() error
}

// BulkResult is the outcome of an unordered bulk insert.
type BulkResult struct {
	InsertedCount int
	WriteErrors   []WriteError
}

// WriteError is a single record failure inside a bulk insert.
type WriteError struct {
	Index int
	Err   error
}

func (e WriteError) Error() string {
	return fmt.Sprintf("record %d: %v", e.Index, e.Err)
}

func (e WriteError) Unwrap() error { return e.Err }

// DuplicateKeyError reports a uniqueness-constraint violation. Field and Value
// name the offending key when the backend can tell; either may be empty.
type DuplicateKeyError struct {
	Field string
	Value string
}

func (e *DuplicateKeyError) Error() string {
	if e.Field == "" {
		return "duplicate key"
	}
	return fmt.Sprintf("duplicate key: %s=%s", e.Field, e.Value)
}

// IsDuplicateKey reports whether err is (or wraps) a DuplicateKeyError.
func IsDuplicateKey(err error) bool {
	var dup *DuplicateKeyError
	return errors.As(err, &dup)
}
