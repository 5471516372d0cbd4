package pokemon

import (
	"context"
	"errors"
	"strconv"

	"github.com/google/uuid"

	"github.com/Ramon-Molinero/pokedex/internal/domain"
)

// FindOne resolves term to a single pokemon. Strategies run in order and the
// first hit wins:
//  1. term is a decimal integer no larger than domain.MaxNo: match on no
//  2. term is an id token: match on id
//  3. match on the normalized name
//
// A miss in one strategy falls through to the next; any other store error
// stops resolution. When nothing matches, *domain.NotFoundError is returned.
func (s *Service) FindOne(ctx context.Context, term string) (*domain.Pokemon, error) {
	if no, err := strconv.Atoi(term); err == nil && no <= domain.MaxNo {
		p, err := s.repo.GetByNo(ctx, no)
		if found, err := s.hit(ctx, p, err); found || err != nil {
			return p, err
		}
	}

	if domain.IsIDToken(term) {
		if id, err := uuid.Parse(term); err == nil {
			p, err := s.repo.GetByID(ctx, id)
			if found, err := s.hit(ctx, p, err); found || err != nil {
				return p, err
			}
		}
	}

	p, err := s.repo.GetByName(ctx, domain.NormalizeName(term))
	if found, err := s.hit(ctx, p, err); found || err != nil {
		return p, err
	}

	return nil, &domain.NotFoundError{Term: term}
}

// hit reports whether a lookup found a record. Not-found is a miss; any
// other failure is classified and returned.
func (s *Service) hit(ctx context.Context, p *domain.Pokemon, err error) (bool, error) {
	switch {
	case err == nil:
		return p != nil, nil
	case errors.Is(err, domain.ErrNotFound):
		return false, nil
	default:
		return false, s.fail(ctx, "find pokemon", err)
	}
}
