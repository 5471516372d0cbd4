package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Ramon-Molinero/pokedex/internal/adapter/postgres"
	pgpokemon "github.com/Ramon-Molinero/pokedex/internal/adapter/postgres/pokemon"
	"github.com/Ramon-Molinero/pokedex/internal/adapter/sqlite"
	"github.com/Ramon-Molinero/pokedex/internal/config"
	"github.com/Ramon-Molinero/pokedex/internal/store"
	"github.com/Ramon-Molinero/pokedex/internal/store/memory"
)

// OpenStore opens the backend selected by cfg.Driver and, for SQL backends,
// applies pending migrations when cfg.AutoMigrate is set.
func OpenStore(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (store.Store, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg)
		if err != nil {
			return nil, err
		}
		if cfg.AutoMigrate {
			if err := postgres.Migrate(ctx, pool, logger); err != nil {
				pool.Close()
				return nil, err
			}
		}
		return pgpokemon.New(pool), nil

	case config.DriverSQLite:
		st, err := sqlite.New(ctx, cfg.DSN)
		if err != nil {
			return nil, err
		}
		if cfg.AutoMigrate {
			if err := st.Migrate(ctx, logger); err != nil {
				_ = st.Close()
				return nil, err
			}
		}
		return st, nil

	case config.DriverMemory:
		return memory.New(), nil

	default:
		return nil, fmt.Errorf("open store: unknown driver %q", cfg.Driver)
	}
}
