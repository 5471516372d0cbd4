package pokemon

import (
	"context"
	"log/slog"

	"github.com/Ramon-Molinero/pokedex/internal/domain"
)

// Update resolves term with FindOne and applies a partial update to the
// match. The name, when present, is normalized before it is stored.
// Returns the record as stored after the update.
func (s *Service) Update(ctx context.Context, term string, input UpdateInput) (*domain.Pokemon, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	current, err := s.FindOne(ctx, term)
	if err != nil {
		return nil, err
	}

	patch := domain.PokemonPatch{No: input.No}
	if input.Name != nil {
		name := domain.NormalizeName(*input.Name)
		patch.Name = &name
	}

	updated, err := s.repo.Update(ctx, current.ID, patch)
	if err != nil {
		return nil, s.fail(ctx, "update pokemon", err)
	}

	s.log.InfoContext(ctx, "pokemon updated",
		slog.String("id", updated.ID.String()),
		slog.Int("no", updated.No),
		slog.String("name", updated.Name),
	)

	return updated, nil
}
