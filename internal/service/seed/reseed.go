package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Ramon-Molinero/pokedex/internal/domain"
	"github.com/Ramon-Molinero/pokedex/internal/provider"
	"github.com/Ramon-Molinero/pokedex/internal/service/pokemon"
	"github.com/Ramon-Molinero/pokedex/internal/store"
)

// Reseed clears the collection, fetches one page from the source and bulk
// inserts it. Duplicate keys inside the page are skipped and counted;
// any other rejected record fails the reseed with domain.ErrImportFailed.
//
// By default the collection is cleared before fetching, so a source failure
// leaves it empty. With fetch_first the fetch runs first and the collection
// is only cleared once a page is in hand.
//
// Steps after the clear ignore caller cancellation so a dropped request
// does not leave the collection half-built.
func (s *Service) Reseed(ctx context.Context) (*Summary, error) {
	start := time.Now()

	sum, err := s.reseed(ctx)

	elapsed := time.Since(start)
	outcome := outcomeOf(err)
	if sum == nil {
		s.observer.ObserveReseed(outcome, 0, 0, 0, elapsed)
	} else {
		sum.Duration = elapsed
		s.observer.ObserveReseed(outcome, sum.Inserted, sum.DuplicatesSkipped, sum.InvalidSkipped, elapsed)
	}

	if err != nil {
		s.log.ErrorContext(ctx, "reseed failed",
			slog.String("outcome", outcome),
			slog.String("error", err.Error()),
			slog.Duration("duration", elapsed),
		)
		return nil, err
	}

	s.log.InfoContext(ctx, "reseed completed",
		slog.Int64("cleared", sum.Cleared),
		slog.Int("fetched", sum.Fetched),
		slog.Int("inserted", sum.Inserted),
		slog.Int("duplicates_skipped", sum.DuplicatesSkipped),
		slog.Int("invalid_skipped", sum.InvalidSkipped),
		slog.Duration("duration", elapsed),
	)
	return sum, nil
}

func (s *Service) reseed(ctx context.Context) (*Summary, error) {
	sum := &Summary{}

	var (
		items []provider.ListItem
		err   error
	)

	if s.fetchFirst {
		if items, err = s.fetch(ctx); err != nil {
			return nil, err
		}
		ctx = context.WithoutCancel(ctx)
		if sum.Cleared, err = s.clear(ctx); err != nil {
			return nil, err
		}
	} else {
		if sum.Cleared, err = s.clear(ctx); err != nil {
			return nil, err
		}
		ctx = context.WithoutCancel(ctx)
		if items, err = s.fetch(ctx); err != nil {
			return nil, err
		}
	}
	sum.Fetched = len(items)

	batch, invalid := transform(items)
	sum.InvalidSkipped = len(invalid)
	for _, item := range invalid {
		s.log.WarnContext(ctx, "skipping entry without numeric id",
			slog.String("name", item.Name),
			slog.String("url", item.URL),
		)
	}

	if len(batch) == 0 {
		return sum, nil
	}

	res, err := s.store.InsertMany(ctx, batch)
	if err != nil {
		return nil, &domain.ImportFailedError{Failed: len(batch), Message: err.Error()}
	}

	var rejected []store.WriteError
	for _, we := range res.WriteErrors {
		if store.IsDuplicateKey(we) {
			sum.DuplicatesSkipped++
			s.log.DebugContext(ctx, "duplicate skipped",
				slog.String("name", batch[we.Index].Name),
				slog.Int("no", batch[we.Index].No),
				slog.String("error", we.Err.Error()),
			)
			continue
		}
		rejected = append(rejected, we)
	}
	if len(rejected) > 0 {
		return nil, &domain.ImportFailedError{Failed: len(rejected), Message: rejected[0].Error()}
	}

	sum.Inserted = res.InsertedCount
	return sum, nil
}

func (s *Service) clear(ctx context.Context) (int64, error) {
	n, err := s.store.DeleteAll(ctx)
	if err != nil {
		return 0, pokemon.Classify(err, "reseed: clear")
	}
	return n, nil
}

func (s *Service) fetch(ctx context.Context) ([]provider.ListItem, error) {
	items, err := s.source.FetchList(ctx, s.pageSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSourceUnavailable, err)
	}
	return items, nil
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, domain.ErrSourceUnavailable):
		return OutcomeSourceUnavailable
	case errors.Is(err, domain.ErrImportFailed):
		return OutcomeImportFailed
	default:
		return OutcomeError
	}
}
