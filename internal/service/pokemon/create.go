package pokemon

import (
	"context"
	"log/slog"

	"github.com/Ramon-Molinero/pokedex/internal/domain"
)

// Create validates input, normalizes the name and stores a new pokemon.
// A duplicate no or name yields *domain.ConflictError.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Pokemon, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &domain.Pokemon{
		No:   input.No,
		Name: domain.NormalizeName(input.Name),
	})
	if err != nil {
		return nil, s.fail(ctx, "create pokemon", err)
	}

	s.log.InfoContext(ctx, "pokemon created",
		slog.String("id", created.ID.String()),
		slog.Int("no", created.No),
		slog.String("name", created.Name),
	)

	return created, nil
}
