// Package seed rebuilds the pokemon collection from the external source.
package seed

import (
	"context"
	"log/slog"
	"time"

	"github.com/Ramon-Molinero/pokedex/internal/config"
	"github.com/Ramon-Molinero/pokedex/internal/domain"
	"github.com/Ramon-Molinero/pokedex/internal/provider"
	"github.com/Ramon-Molinero/pokedex/internal/store"
)

type pokemonStore interface {
	DeleteAll(ctx context.Context) (int64, error)
	InsertMany(ctx context.Context, records []domain.Pokemon) (store.BulkResult, error)
}

type listSource interface {
	FetchList(ctx context.Context, limit int) ([]provider.ListItem, error)
}

type reseedObserver interface {
	ObserveReseed(outcome string, inserted, duplicates, invalid int, d time.Duration)
}

// Reseed outcomes reported to the observer.
const (
	OutcomeSuccess           = "success"
	OutcomeSourceUnavailable = "source_unavailable"
	OutcomeImportFailed      = "import_failed"
	OutcomeError             = "error"
)

// Summary is the outcome of a successful reseed.
type Summary struct {
	Cleared           int64
	Fetched           int
	Inserted          int
	DuplicatesSkipped int
	InvalidSkipped    int
	Duration          time.Duration
}

// Service wipes and repopulates the collection.
type Service struct {
	store      pokemonStore
	source     listSource
	observer   reseedObserver
	pageSize   int
	fetchFirst bool
	log        *slog.Logger
}

// NewService creates a new seed service. observer may be nil.
func NewService(
	log *slog.Logger,
	st pokemonStore,
	source listSource,
	observer reseedObserver,
	cfg config.SeedConfig,
) *Service {
	if observer == nil {
		observer = nopObserver{}
	}
	return &Service{
		store:      st,
		source:     source,
		observer:   observer,
		pageSize:   cfg.PageSize,
		fetchFirst: cfg.FetchFirst,
		log:        log.With("service", "seed"),
	}
}

type nopObserver struct{}

func (nopObserver) ObserveReseed(string, int, int, int, time.Duration) {}
