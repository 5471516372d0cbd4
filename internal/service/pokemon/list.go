package pokemon

import (
	"context"

	"github.com/Ramon-Molinero/pokedex/internal/domain"
)

// List returns a page of pokemon ordered by no. A zero limit selects the
// configured default; limits above the maximum are clamped.
func (s *Service) List(ctx context.Context, input ListInput) ([]domain.Pokemon, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	items, err := s.repo.List(ctx, s.filter(input))
	if err != nil {
		return nil, s.fail(ctx, "list pokemon", err)
	}
	return items, nil
}

func (s *Service) filter(input ListInput) domain.PokemonFilter {
	limit := input.Limit
	if limit == 0 {
		limit = s.defaultLimit
	}
	if s.maxLimit > 0 && limit > s.maxLimit {
		limit = s.maxLimit
	}
	return domain.PokemonFilter{
		Limit:  limit,
		Offset: max(input.Offset, 0),
	}
}
