// Package memory provides an in-memory implementation of the record store used
// for tests and ephemeral environments. Unique indexes on no and name mirror the
// constraints of the SQL backends.
package memory

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Ramon-Molinero/pokedex/internal/domain"
	"github.com/Ramon-Molinero/pokedex/internal/store"
)

var _ store.Store = (*Store)(nil)

// Store keeps records in maps guarded by a RWMutex.
type Store struct {
	mu     sync.RWMutex
	byID   map[uuid.UUID]domain.Pokemon
	byNo   map[int]uuid.UUID
	byName map[string]uuid.UUID
	now    func() time.Time
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		byID:   make(map[uuid.UUID]domain.Pokemon),
		byNo:   make(map[int]uuid.UUID),
		byName: make(map[string]uuid.UUID),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func notFound(key string, value any) error {
	return fmt.Errorf("pokemon %s=%v: %w", key, value, domain.ErrNotFound)
}

// GetByNo returns the record with the given no.
func (s *Store) GetByNo(_ context.Context, no int) (*domain.Pokemon, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byNo[no]
	if !ok {
		return nil, notFound("no", no)
	}
	p := s.byID[id]
	return &p, nil
}

// GetByID returns the record with the given identity.
func (s *Store) GetByID(_ context.Context, id uuid.UUID) (*domain.Pokemon, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.byID[id]
	if !ok {
		return nil, notFound("id", id)
	}
	return &p, nil
}

// GetByName returns the record whose stored name equals name exactly.
func (s *Store) GetByName(_ context.Context, name string) (*domain.Pokemon, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byName[name]
	if !ok {
		return nil, notFound("name", name)
	}
	p := s.byID[id]
	return &p, nil
}

// List returns records ordered by no, windowed by the filter.
// A non-positive limit returns everything after the offset.
func (s *Store) List(_ context.Context, filter domain.PokemonFilter) ([]domain.Pokemon, error) {
	s.mu.RLock()
	all := make([]domain.Pokemon, 0, len(s.byID))
	for _, p := range s.byID {
		all = append(all, p)
	}
	s.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool { return all[i].No < all[j].No })

	offset := max(filter.Offset, 0)
	if offset >= len(all) {
		return []domain.Pokemon{}, nil
	}
	all = all[offset:]
	if filter.Limit > 0 && filter.Limit < len(all) {
		all = all[:filter.Limit]
	}
	return all, nil
}

// Create inserts a single record, assigning an identity when none is set.
func (s *Store) Create(_ context.Context, p *domain.Pokemon) (*domain.Pokemon, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	created, err := s.insertLocked(*p)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// InsertMany attempts every record; duplicates are reported per record and do
// not stop the remaining inserts.
func (s *Store) InsertMany(_ context.Context, records []domain.Pokemon) (store.BulkResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var res store.BulkResult
	for i, p := range records {
		if _, err := s.insertLocked(p); err != nil {
			res.WriteErrors = append(res.WriteErrors, store.WriteError{Index: i, Err: err})
			continue
		}
		res.InsertedCount++
	}
	return res, nil
}

func (s *Store) insertLocked(p domain.Pokemon) (domain.Pokemon, error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if _, ok := s.byID[p.ID]; ok {
		return domain.Pokemon{}, &store.DuplicateKeyError{Field: "id", Value: p.ID.String()}
	}
	if _, ok := s.byNo[p.No]; ok {
		return domain.Pokemon{}, &store.DuplicateKeyError{Field: "no", Value: strconv.Itoa(p.No)}
	}
	if _, ok := s.byName[p.Name]; ok {
		return domain.Pokemon{}, &store.DuplicateKeyError{Field: "name", Value: p.Name}
	}

	now := s.now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now

	s.byID[p.ID] = p
	s.byNo[p.No] = p.ID
	s.byName[p.Name] = p.ID
	return p, nil
}

// Update applies patch to the record with the given identity.
func (s *Store) Update(_ context.Context, id uuid.UUID, patch domain.PokemonPatch) (*domain.Pokemon, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	old, ok := s.byID[id]
	if !ok {
		return nil, notFound("id", id)
	}
	updated := patch.Apply(old)

	if owner, ok := s.byNo[updated.No]; ok && owner != id {
		return nil, &store.DuplicateKeyError{Field: "no", Value: strconv.Itoa(updated.No)}
	}
	if owner, ok := s.byName[updated.Name]; ok && owner != id {
		return nil, &store.DuplicateKeyError{Field: "name", Value: updated.Name}
	}

	delete(s.byNo, old.No)
	delete(s.byName, old.Name)
	updated.UpdatedAt = s.now()
	s.byID[id] = updated
	s.byNo[updated.No] = id
	s.byName[updated.Name] = id
	return &updated, nil
}

// Delete removes the record with the given identity and reports how many
// records were removed (0 or 1).
func (s *Store) Delete(_ context.Context, id uuid.UUID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.byID[id]
	if !ok {
		return 0, nil
	}
	delete(s.byID, id)
	delete(s.byNo, p.No)
	delete(s.byName, p.Name)
	return 1, nil
}

// DeleteAll empties the store.
func (s *Store) DeleteAll(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := int64(len(s.byID))
	s.byID = make(map[uuid.UUID]domain.Pokemon)
	s.byNo = make(map[int]uuid.UUID)
	s.byName = make(map[string]uuid.UUID)
	return n, nil
}

// Ping always succeeds.
func (s *Store) Ping(context.Context) error { return nil }

// Close is a no-op.
func (s *Store) Close() error { return nil }
