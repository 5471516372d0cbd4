// Package app wires configuration, the record store, services and the HTTP
// server together.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/Ramon-Molinero/pokedex/internal/adapter/provider/pokeapi"
	"github.com/Ramon-Molinero/pokedex/internal/config"
	"github.com/Ramon-Molinero/pokedex/internal/metrics"
	"github.com/Ramon-Molinero/pokedex/internal/service/pokemon"
	"github.com/Ramon-Molinero/pokedex/internal/service/seed"
	"github.com/Ramon-Molinero/pokedex/internal/store"
	"github.com/Ramon-Molinero/pokedex/internal/transport/middleware"
	"github.com/Ramon-Molinero/pokedex/internal/transport/rest"
)

// App holds the long-lived components of one process.
type App struct {
	cfg     *config.Config
	log     *slog.Logger
	store   store.Store
	metrics *metrics.Metrics

	Pokemon *pokemon.Service
	Seed    *seed.Service
}

// New opens the configured store and builds the services on top of it.
// The caller owns the returned App and must Close it.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	st, err := OpenStore(ctx, cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}
	logger.Info("store opened", slog.String("driver", cfg.Database.Driver))

	return newApp(cfg, logger, st, pokeapi.NewProvider(cfg.Seed, logger)), nil
}

func newApp(cfg *config.Config, logger *slog.Logger, st store.Store, source *pokeapi.Provider) *App {
	m := metrics.New()
	return &App{
		cfg:     cfg,
		log:     logger,
		store:   st,
		metrics: m,
		Pokemon: pokemon.NewService(logger, st, cfg.Pokemon),
		Seed:    seed.NewService(logger, st, source, m, cfg.Seed),
	}
}

// Handler returns the full HTTP handler with middleware applied.
func (a *App) Handler() http.Handler {
	routes := rest.Routes{
		Pokemon: rest.NewPokemonHandler(a.Pokemon, a.log),
		Seed:    rest.NewSeedHandler(a.Seed, a.log),
		Health:  rest.NewHealthHandler(a.store, a.cfg.Database.Driver, BuildVersion()),
		Metrics: a.metrics.Handler(),
	}
	if a.cfg.Static.Enabled {
		routes.Static = http.FileServer(http.Dir(a.cfg.Static.Dir))
	}

	mux := http.NewServeMux()
	rest.Register(mux, routes)

	return middleware.Chain(
		middleware.Recovery(a.log),
		middleware.RequestID,
		middleware.Logger(a.log),
		middleware.Metrics(a.metrics),
		middleware.CORS(a.cfg.CORS),
	)(mux)
}

// Run listens on the configured address and serves until ctx is cancelled,
// then shuts the server down gracefully.
func (a *App) Run(ctx context.Context) error {
	addr := net.JoinHostPort(a.cfg.Server.Host, strconv.Itoa(a.cfg.Server.Port))
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("app: listen %s: %w", addr, err)
	}
	return a.serve(ctx, ln)
}

func (a *App) serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:      a.Handler(),
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(a.log.Handler(), slog.LevelError),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.log.Info("http server started",
			slog.String("addr", ln.Addr().String()),
			slog.String("version", BuildVersion()),
		)
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("app: serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		a.log.Info("http server shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), a.cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("app: shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// Close releases the store.
func (a *App) Close() error {
	return a.store.Close()
}
