// Package sqlite implements the record store gateway on an embedded SQLite
// database (modernc.org/sqlite, no cgo).
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/sqlscan"
	"github.com/google/uuid"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // pure go sqlite driver

	"github.com/Ramon-Molinero/pokedex/internal/domain"
	"github.com/Ramon-Molinero/pokedex/internal/store"
	"github.com/Ramon-Molinero/pokedex/migrations"
)

const (
	table  = "pokemon"
	entity = "pokemon"
)

var columns = []string{"id", "no", "name", "created_at", "updated_at"}

var _ store.Store = (*Store)(nil)

// Store persists records in a single SQLite file (or in memory).
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// New opens the database behind a sqlite:// DSN, applies pragmas and
// returns a ready Store. Call Migrate before first use on a fresh file.
func New(ctx context.Context, dsn string) (*Store, error) {
	driverDSN, err := parseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parsing sqlite DSN: %w", err)
	}

	db, err := sql.Open("sqlite", driverDSN)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}
	// One connection: SQLite has a single writer and every :memory:
	// connection would otherwise see its own empty database.
	db.SetMaxOpenConns(1)

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging sqlite: %w", err)
	}

	pragmas := []string{
		"PRAGMA busy_timeout = 30000;",
		"PRAGMA journal_mode = WAL;",
	}
	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("setting pragma %q: %w", pragma, err)
		}
	}

	return &Store{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}, nil
}

// Migrate applies the embedded SQLite schema migrations.
func (s *Store) Migrate(ctx context.Context, logger *slog.Logger) error {
	provider, err := goose.NewProvider(goose.DialectSQLite3, s.db, migrations.SQLite())
	if err != nil {
		return fmt.Errorf("goose new provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	for _, r := range results {
		logger.InfoContext(ctx, "migration applied",
			slog.Int64("version", r.Source.Version),
			slog.Duration("duration", r.Duration),
		)
	}
	return nil
}

// GetByNo returns the record with the given no, or domain.ErrNotFound.
func (s *Store) GetByNo(ctx context.Context, no int) (*domain.Pokemon, error) {
	return s.getOne(ctx, no, squirrel.Eq{"no": no})
}

// GetByID returns the record with the given id, or domain.ErrNotFound.
func (s *Store) GetByID(ctx context.Context, id uuid.UUID) (*domain.Pokemon, error) {
	return s.getOne(ctx, id, squirrel.Eq{"id": id.String()})
}

// GetByName returns the record whose stored name equals name exactly.
func (s *Store) GetByName(ctx context.Context, name string) (*domain.Pokemon, error) {
	return s.getOne(ctx, name, squirrel.Eq{"name": name})
}

func (s *Store) getOne(ctx context.Context, key any, where squirrel.Sqlizer) (*domain.Pokemon, error) {
	query, args, err := squirrel.Select(columns...).From(table).Where(where).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	var p domain.Pokemon
	if err := sqlscan.Get(ctx, s.db, &p, query, args...); err != nil {
		return nil, mapError(err, entity, key, nil)
	}
	return &p, nil
}

// List returns records ordered by no. A non-positive limit means no limit.
func (s *Store) List(ctx context.Context, filter domain.PokemonFilter) ([]domain.Pokemon, error) {
	b := squirrel.Select(columns...).From(table).OrderBy("no ASC")
	switch {
	case filter.Limit > 0:
		b = b.Limit(uint64(filter.Limit))
	case filter.Offset > 0:
		// SQLite accepts OFFSET only after a LIMIT.
		b = b.Limit(math.MaxInt64)
	}
	if filter.Offset > 0 {
		b = b.Offset(uint64(filter.Offset))
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list: %w", err)
	}

	out := []domain.Pokemon{}
	if err := sqlscan.Select(ctx, s.db, &out, query, args...); err != nil {
		return nil, fmt.Errorf("list pokemon: %w", err)
	}
	return out, nil
}

// Create inserts a record and returns it as stored.
func (s *Store) Create(ctx context.Context, p *domain.Pokemon) (*domain.Pokemon, error) {
	rec := s.prepare(*p)

	query, args, err := insertQuery(rec).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return nil, mapError(err, entity, rec.Name, recordValue(rec))
	}
	return &rec, nil
}

// InsertMany inserts every record inside one transaction. A constraint
// failure aborts only its own statement, so the remaining rows still land.
func (s *Store) InsertMany(ctx context.Context, records []domain.Pokemon) (store.BulkResult, error) {
	var res store.BulkResult
	if len(records) == 0 {
		return res, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return res, fmt.Errorf("insert many: begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for i, p := range records {
		rec := s.prepare(p)
		query, args, err := insertQuery(rec).ToSql()
		if err != nil {
			return store.BulkResult{}, fmt.Errorf("insert many: build insert: %w", err)
		}

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return store.BulkResult{}, fmt.Errorf("insert many: %w", ctxErr)
			}
			res.WriteErrors = append(res.WriteErrors, store.WriteError{
				Index: i,
				Err:   mapError(err, entity, rec.No, recordValue(rec)),
			})
			continue
		}
		res.InsertedCount++
	}

	if err := tx.Commit(); err != nil {
		return store.BulkResult{}, fmt.Errorf("insert many: commit: %w", err)
	}
	return res, nil
}

func (s *Store) prepare(p domain.Pokemon) domain.Pokemon {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	now := s.now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
	return p
}

func insertQuery(p domain.Pokemon) squirrel.InsertBuilder {
	return squirrel.Insert(table).
		Columns(columns...).
		Values(p.ID.String(), p.No, p.Name, p.CreatedAt, p.UpdatedAt)
}

func recordValue(p domain.Pokemon) func(string) string {
	return func(field string) string {
		switch field {
		case "no":
			return strconv.Itoa(p.No)
		case "name":
			return p.Name
		case "id":
			return p.ID.String()
		}
		return ""
	}
}

// Update applies the non-nil patch fields and bumps updated_at.
func (s *Store) Update(ctx context.Context, id uuid.UUID, patch domain.PokemonPatch) (*domain.Pokemon, error) {
	if patch.IsEmpty() {
		return nil, errors.New("update pokemon: empty patch")
	}

	b := squirrel.Update(table)
	if patch.No != nil {
		b = b.Set("no", *patch.No)
	}
	if patch.Name != nil {
		b = b.Set("name", *patch.Name)
	}
	b = b.Set("updated_at", s.now()).Where(squirrel.Eq{"id": id.String()})

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update: %w", err)
	}

	lookup := func(field string) string {
		switch {
		case field == "no" && patch.No != nil:
			return strconv.Itoa(*patch.No)
		case field == "name" && patch.Name != nil:
			return *patch.Name
		}
		return ""
	}

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, mapError(err, entity, id, lookup)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return nil, fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	return s.GetByID(ctx, id)
}

// Delete removes the record with the given id and returns the number of
// rows removed.
func (s *Store) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	query, args, err := squirrel.Delete(table).Where(squirrel.Eq{"id": id.String()}).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete: %w", err)
	}
	return s.exec(ctx, query, args...)
}

// DeleteAll removes every record.
func (s *Store) DeleteAll(ctx context.Context) (int64, error) {
	query, args, err := squirrel.Delete(table).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete all: %w", err)
	}
	return s.exec(ctx, query, args...)
}

func (s *Store) exec(ctx context.Context, query string, args ...any) (int64, error) {
	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("delete pokemon: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return n, nil
}

// Ping checks the database handle.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}
