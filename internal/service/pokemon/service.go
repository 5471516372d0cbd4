package pokemon

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Ramon-Molinero/pokedex/internal/config"
	"github.com/Ramon-Molinero/pokedex/internal/domain"
)

type pokemonRepo interface {
	GetByNo(ctx context.Context, no int) (*domain.Pokemon, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Pokemon, error)
	GetByName(ctx context.Context, name string) (*domain.Pokemon, error)
	List(ctx context.Context, filter domain.PokemonFilter) ([]domain.Pokemon, error)
	Create(ctx context.Context, p *domain.Pokemon) (*domain.Pokemon, error)
	Update(ctx context.Context, id uuid.UUID, patch domain.PokemonPatch) (*domain.Pokemon, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

// Service provides pokemon CRUD and term resolution.
type Service struct {
	repo         pokemonRepo
	defaultLimit int
	maxLimit     int
	log          *slog.Logger
}

// NewService creates a new Pokemon service.
func NewService(log *slog.Logger, repo pokemonRepo, cfg config.PokemonConfig) *Service {
	return &Service{
		repo:         repo,
		defaultLimit: cfg.DefaultLimit,
		maxLimit:     cfg.MaxLimit,
		log:          log.With("service", "pokemon"),
	}
}

// fail classifies err and logs it when it is not the caller's fault.
func (s *Service) fail(ctx context.Context, op string, err error) error {
	classified := Classify(err, op)
	if errors.Is(classified, domain.ErrUnexpected) {
		s.log.ErrorContext(ctx, "store operation failed",
			slog.String("op", op),
			slog.String("error", err.Error()),
		)
	}
	return classified
}
