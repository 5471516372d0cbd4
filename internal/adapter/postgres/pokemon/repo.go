// Package pokemon implements the record store gateway on PostgreSQL.
package pokemon

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/Ramon-Molinero/pokedex/internal/adapter/postgres"
	"github.com/Ramon-Molinero/pokedex/internal/domain"
	"github.com/Ramon-Molinero/pokedex/internal/store"
)

const (
	table  = "pokemon"
	entity = "pokemon"
)

var (
	columns   = []string{"id", "no", "name", "created_at", "updated_at"}
	returning = "RETURNING " + strings.Join(columns, ", ")
	psql      = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
)

var _ store.Store = (*Repo)(nil)

// Repo provides pokemon persistence backed by PostgreSQL.
type Repo struct {
	db  postgres.DB
	txm *postgres.TxManager
}

// New creates a new pokemon repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db, txm: postgres.NewTxManager(db)}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByNo returns the record with the given no, or domain.ErrNotFound.
func (r *Repo) GetByNo(ctx context.Context, no int) (*domain.Pokemon, error) {
	return r.getOne(ctx, no, squirrel.Eq{"no": no})
}

// GetByID returns the record with the given id, or domain.ErrNotFound.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Pokemon, error) {
	return r.getOne(ctx, id, squirrel.Eq{"id": id})
}

// GetByName returns the record whose stored name equals name exactly.
func (r *Repo) GetByName(ctx context.Context, name string) (*domain.Pokemon, error) {
	return r.getOne(ctx, name, squirrel.Eq{"name": name})
}

func (r *Repo) getOne(ctx context.Context, key any, where squirrel.Sqlizer) (*domain.Pokemon, error) {
	query, args, err := psql.Select(columns...).From(table).Where(where).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	var p domain.Pokemon
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &p, query, args...); err != nil {
		return nil, postgres.MapError(err, entity, key)
	}
	return &p, nil
}

// List returns records ordered by no. A non-positive limit means no limit.
func (r *Repo) List(ctx context.Context, filter domain.PokemonFilter) ([]domain.Pokemon, error) {
	b := psql.Select(columns...).From(table).OrderBy("no ASC")
	if filter.Limit > 0 {
		b = b.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		b = b.Offset(uint64(filter.Offset))
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list: %w", err)
	}

	out := []domain.Pokemon{}
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		return nil, fmt.Errorf("list pokemon: %w", err)
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a record and returns it with the stored timestamps.
func (r *Repo) Create(ctx context.Context, p *domain.Pokemon) (*domain.Pokemon, error) {
	query, args, err := insertQuery(*p).Suffix(returning).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert: %w", err)
	}

	var created domain.Pokemon
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &created, query, args...); err != nil {
		return nil, postgres.MapError(err, entity, p.Name)
	}
	return &created, nil
}

// InsertMany inserts every record inside one transaction, each behind its own
// savepoint, so a failing row is rolled back alone and the rest still land.
// Per-record failures are reported in the result; the returned error is set
// only when the transaction itself fails.
func (r *Repo) InsertMany(ctx context.Context, records []domain.Pokemon) (store.BulkResult, error) {
	var res store.BulkResult
	if len(records) == 0 {
		return res, nil
	}

	err := r.txm.RunInTx(ctx, func(txCtx context.Context) error {
		res = store.BulkResult{}
		tx, _ := postgres.TxFromCtx(txCtx)

		for i, p := range records {
			query, args, err := insertQuery(p).ToSql()
			if err != nil {
				return fmt.Errorf("build insert: %w", err)
			}

			sp, err := tx.Begin(txCtx)
			if err != nil {
				return fmt.Errorf("savepoint: %w", err)
			}

			if _, execErr := sp.Exec(txCtx, query, args...); execErr != nil {
				if rbErr := sp.Rollback(txCtx); rbErr != nil {
					return fmt.Errorf("rollback savepoint: %w", rbErr)
				}
				if ctxErr := txCtx.Err(); ctxErr != nil {
					return ctxErr
				}
				res.WriteErrors = append(res.WriteErrors, store.WriteError{
					Index: i,
					Err:   postgres.MapError(execErr, entity, p.No),
				})
				continue
			}

			if err := sp.Commit(txCtx); err != nil {
				return fmt.Errorf("release savepoint: %w", err)
			}
			res.InsertedCount++
		}
		return nil
	})
	if err != nil {
		return store.BulkResult{}, fmt.Errorf("insert many: %w", err)
	}

	return res, nil
}

func insertQuery(p domain.Pokemon) squirrel.InsertBuilder {
	id := p.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	return psql.Insert(table).
		Columns("id", "no", "name").
		Values(id, p.No, p.Name)
}

// Update applies the non-nil patch fields and bumps updated_at.
// Returns domain.ErrNotFound when no record has the given id.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, patch domain.PokemonPatch) (*domain.Pokemon, error) {
	if patch.IsEmpty() {
		return nil, errors.New("update pokemon: empty patch")
	}

	b := psql.Update(table)
	if patch.No != nil {
		b = b.Set("no", *patch.No)
	}
	if patch.Name != nil {
		b = b.Set("name", *patch.Name)
	}
	b = b.Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix(returning)

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update: %w", err)
	}

	var updated domain.Pokemon
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &updated, query, args...); err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	return &updated, nil
}

// Delete removes the record with the given id and returns the number of
// rows removed.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	query, args, err := psql.Delete(table).Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, entity, id)
	}
	return tag.RowsAffected(), nil
}

// DeleteAll removes every record.
func (r *Repo) DeleteAll(ctx context.Context) (int64, error) {
	query, args, err := psql.Delete(table).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete all: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("delete all pokemon: %w", err)
	}
	return tag.RowsAffected(), nil
}

// Ping checks the database connection.
func (r *Repo) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}

// Close releases the connection pool.
func (r *Repo) Close() error {
	r.db.Close()
	return nil
}
