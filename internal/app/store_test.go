package app

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ramon-Molinero/pokedex/internal/adapter/sqlite"
	"github.com/Ramon-Molinero/pokedex/internal/config"
	"github.com/Ramon-Molinero/pokedex/internal/domain"
	"github.com/Ramon-Molinero/pokedex/internal/store/memory"
)

func TestOpenStore_Memory(t *testing.T) {
	st, err := OpenStore(context.Background(), config.DatabaseConfig{Driver: config.DriverMemory}, slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	assert.IsType(t, &memory.Store{}, st)
}

func TestOpenStore_SQLiteMigrates(t *testing.T) {
	ctx := context.Background()
	st, err := OpenStore(ctx, config.DatabaseConfig{
		Driver:      config.DriverSQLite,
		DSN:         "sqlite://:memory:",
		AutoMigrate: true,
	}, slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	assert.IsType(t, &sqlite.Store{}, st)

	_, err = st.Create(ctx, &domain.Pokemon{No: 1, Name: "bulbasaur"})
	require.NoError(t, err)
}

func TestOpenStore_UnknownDriver(t *testing.T) {
	_, err := OpenStore(context.Background(), config.DatabaseConfig{Driver: "mongo"}, slog.New(slog.DiscardHandler))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mongo")
}
