package pokemon

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/Ramon-Molinero/pokedex/internal/domain"
)

var _ pokemonRepo = &pokemonRepoMock{}

type pokemonRepoMock struct {
	GetByNoFunc   func(ctx context.Context, no int) (*domain.Pokemon, error)
	GetByIDFunc   func(ctx context.Context, id uuid.UUID) (*domain.Pokemon, error)
	GetByNameFunc func(ctx context.Context, name string) (*domain.Pokemon, error)
	ListFunc      func(ctx context.Context, filter domain.PokemonFilter) ([]domain.Pokemon, error)
	CreateFunc    func(ctx context.Context, p *domain.Pokemon) (*domain.Pokemon, error)
	UpdateFunc    func(ctx context.Context, id uuid.UUID, patch domain.PokemonPatch) (*domain.Pokemon, error)
	DeleteFunc    func(ctx context.Context, id uuid.UUID) (int64, error)

	calls struct {
		GetByNo   []struct{ No int }
		GetByID   []struct{ ID uuid.UUID }
		GetByName []struct{ Name string }
		List      []struct{ Filter domain.PokemonFilter }
		Create    []struct{ P *domain.Pokemon }
		Update    []struct {
			ID    uuid.UUID
			Patch domain.PokemonPatch
		}
		Delete []struct{ ID uuid.UUID }
	}
	lock sync.RWMutex
}

func (mock *pokemonRepoMock) GetByNo(ctx context.Context, no int) (*domain.Pokemon, error) {
	if mock.GetByNoFunc == nil {
		panic("pokemonRepoMock.GetByNoFunc: method is nil but pokemonRepo.GetByNo was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByNo = append(mock.calls.GetByNo, struct{ No int }{No: no})
	mock.lock.Unlock()
	return mock.GetByNoFunc(ctx, no)
}

func (mock *pokemonRepoMock) GetByNoCalls() []struct{ No int } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetByNo
}

func (mock *pokemonRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Pokemon, error) {
	if mock.GetByIDFunc == nil {
		panic("pokemonRepoMock.GetByIDFunc: method is nil but pokemonRepo.GetByID was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct{ ID uuid.UUID }{ID: id})
	mock.lock.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *pokemonRepoMock) GetByIDCalls() []struct{ ID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetByID
}

func (mock *pokemonRepoMock) GetByName(ctx context.Context, name string) (*domain.Pokemon, error) {
	if mock.GetByNameFunc == nil {
		panic("pokemonRepoMock.GetByNameFunc: method is nil but pokemonRepo.GetByName was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByName = append(mock.calls.GetByName, struct{ Name string }{Name: name})
	mock.lock.Unlock()
	return mock.GetByNameFunc(ctx, name)
}

func (mock *pokemonRepoMock) GetByNameCalls() []struct{ Name string } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetByName
}

func (mock *pokemonRepoMock) List(ctx context.Context, filter domain.PokemonFilter) ([]domain.Pokemon, error) {
	if mock.ListFunc == nil {
		panic("pokemonRepoMock.ListFunc: method is nil but pokemonRepo.List was just called")
	}
	mock.lock.Lock()
	mock.calls.List = append(mock.calls.List, struct{ Filter domain.PokemonFilter }{Filter: filter})
	mock.lock.Unlock()
	return mock.ListFunc(ctx, filter)
}

func (mock *pokemonRepoMock) ListCalls() []struct{ Filter domain.PokemonFilter } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.List
}

func (mock *pokemonRepoMock) Create(ctx context.Context, p *domain.Pokemon) (*domain.Pokemon, error) {
	if mock.CreateFunc == nil {
		panic("pokemonRepoMock.CreateFunc: method is nil but pokemonRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ P *domain.Pokemon }{P: p})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, p)
}

func (mock *pokemonRepoMock) CreateCalls() []struct{ P *domain.Pokemon } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

func (mock *pokemonRepoMock) Update(ctx context.Context, id uuid.UUID, patch domain.PokemonPatch) (*domain.Pokemon, error) {
	if mock.UpdateFunc == nil {
		panic("pokemonRepoMock.UpdateFunc: method is nil but pokemonRepo.Update was just called")
	}
	mock.lock.Lock()
	mock.calls.Update = append(mock.calls.Update, struct {
		ID    uuid.UUID
		Patch domain.PokemonPatch
	}{ID: id, Patch: patch})
	mock.lock.Unlock()
	return mock.UpdateFunc(ctx, id, patch)
}

func (mock *pokemonRepoMock) UpdateCalls() []struct {
	ID    uuid.UUID
	Patch domain.PokemonPatch
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Update
}

func (mock *pokemonRepoMock) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	if mock.DeleteFunc == nil {
		panic("pokemonRepoMock.DeleteFunc: method is nil but pokemonRepo.Delete was just called")
	}
	mock.lock.Lock()
	mock.calls.Delete = append(mock.calls.Delete, struct{ ID uuid.UUID }{ID: id})
	mock.lock.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *pokemonRepoMock) DeleteCalls() []struct{ ID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Delete
}
