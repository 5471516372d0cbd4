package pokemon

import (
	"context"
	"log/slog"

	"github.com/Ramon-Molinero/pokedex/internal/domain"
)

// Delete removes the pokemon with the given id token. A malformed token is a
// validation error; an id that matches nothing is *domain.NotFoundError.
func (s *Service) Delete(ctx context.Context, idToken string) error {
	id, err := domain.ParseIDToken("id", idToken)
	if err != nil {
		return err
	}

	n, err := s.repo.Delete(ctx, id)
	if err != nil {
		return s.fail(ctx, "delete pokemon", err)
	}
	if n == 0 {
		return &domain.NotFoundError{Term: idToken}
	}

	s.log.InfoContext(ctx, "pokemon deleted", slog.String("id", id.String()))
	return nil
}
