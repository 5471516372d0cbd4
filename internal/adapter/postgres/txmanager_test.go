package postgres_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Ramon-Molinero/pokedex/internal/adapter/postgres"
	"github.com/Ramon-Molinero/pokedex/internal/adapter/postgres/testhelper"
)

func pokemonExists(t *testing.T, pool *pgxpool.Pool, no int) bool {
	t.Helper()
	var exists bool
	err := pool.QueryRow(context.Background(),
		`SELECT EXISTS(SELECT 1 FROM pokemon WHERE no = $1)`, no,
	).Scan(&exists)
	if err != nil {
		t.Fatalf("pokemonExists query: %v", err)
	}
	return exists
}

func insertPokemon(ctx context.Context, q postgres.Querier, no int, name string) error {
	_, err := q.Exec(ctx, `INSERT INTO pokemon (no, name) VALUES ($1, $2)`, no, name)
	return err
}

func TestRunInTx_Commit(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	tm := postgres.NewTxManager(pool)

	err := tm.RunInTx(context.Background(), func(ctx context.Context) error {
		return insertPokemon(ctx, postgres.QuerierFromCtx(ctx, pool), 9001, "tx-commit")
	})
	if err != nil {
		t.Fatalf("RunInTx returned error: %v", err)
	}

	if !pokemonExists(t, pool, 9001) {
		t.Fatal("expected row to exist after committed transaction")
	}
}

func TestRunInTx_RollbackOnError(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	tm := postgres.NewTxManager(pool)
	sentinel := errors.New("business logic error")

	err := tm.RunInTx(context.Background(), func(ctx context.Context) error {
		if err := insertPokemon(ctx, postgres.QuerierFromCtx(ctx, pool), 9002, "tx-rollback"); err != nil {
			return err
		}
		return sentinel
	})
	if !errors.Is(err, sentinel) {
		t.Fatalf("RunInTx error = %v, want sentinel", err)
	}

	if pokemonExists(t, pool, 9002) {
		t.Fatal("expected row to be rolled back")
	}
}

func TestRunInTx_RollbackOnPanic(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	tm := postgres.NewTxManager(pool)

	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic to propagate")
		}
		if pokemonExists(t, pool, 9003) {
			t.Fatal("expected row to be rolled back after panic")
		}
	}()

	_ = tm.RunInTx(context.Background(), func(ctx context.Context) error {
		_ = insertPokemon(ctx, postgres.QuerierFromCtx(ctx, pool), 9003, "tx-panic")
		panic("boom")
	})
}

func TestQuerierFromCtx_WithoutTx(t *testing.T) {
	pool := testhelper.SetupTestDB(t)

	if q := postgres.QuerierFromCtx(context.Background(), pool); q != postgres.Querier(pool) {
		t.Fatal("QuerierFromCtx without tx should return the pool")
	}
	if _, ok := postgres.TxFromCtx(context.Background()); ok {
		t.Fatal("TxFromCtx on a bare context should report false")
	}
}
