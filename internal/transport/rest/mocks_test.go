package rest

import (
	"context"
	"sync"

	"github.com/Ramon-Molinero/pokedex/internal/domain"
	"github.com/Ramon-Molinero/pokedex/internal/service/pokemon"
	"github.com/Ramon-Molinero/pokedex/internal/service/seed"
)

var _ pokemonService = &pokemonServiceMock{}

type pokemonServiceMock struct {
	CreateFunc  func(ctx context.Context, input pokemon.CreateInput) (*domain.Pokemon, error)
	ListFunc    func(ctx context.Context, input pokemon.ListInput) ([]domain.Pokemon, error)
	FindOneFunc func(ctx context.Context, term string) (*domain.Pokemon, error)
	UpdateFunc  func(ctx context.Context, term string, input pokemon.UpdateInput) (*domain.Pokemon, error)
	DeleteFunc  func(ctx context.Context, idToken string) error

	calls struct {
		Create  []struct{ Input pokemon.CreateInput }
		List    []struct{ Input pokemon.ListInput }
		FindOne []struct{ Term string }
		Update  []struct {
			Term  string
			Input pokemon.UpdateInput
		}
		Delete []struct{ IDToken string }
	}
	lockCreate  sync.RWMutex
	lockList    sync.RWMutex
	lockFindOne sync.RWMutex
	lockUpdate  sync.RWMutex
	lockDelete  sync.RWMutex
}

func (mock *pokemonServiceMock) Create(ctx context.Context, input pokemon.CreateInput) (*domain.Pokemon, error) {
	if mock.CreateFunc == nil {
		panic("pokemonServiceMock.CreateFunc: method is nil but pokemonService.Create was just called")
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ Input pokemon.CreateInput }{Input: input})
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *pokemonServiceMock) CreateCalls() []struct{ Input pokemon.CreateInput } {
	mock.lockCreate.RLock()
	defer mock.lockCreate.RUnlock()
	return mock.calls.Create
}

func (mock *pokemonServiceMock) List(ctx context.Context, input pokemon.ListInput) ([]domain.Pokemon, error) {
	if mock.ListFunc == nil {
		panic("pokemonServiceMock.ListFunc: method is nil but pokemonService.List was just called")
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, struct{ Input pokemon.ListInput }{Input: input})
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, input)
}

func (mock *pokemonServiceMock) ListCalls() []struct{ Input pokemon.ListInput } {
	mock.lockList.RLock()
	defer mock.lockList.RUnlock()
	return mock.calls.List
}

func (mock *pokemonServiceMock) FindOne(ctx context.Context, term string) (*domain.Pokemon, error) {
	if mock.FindOneFunc == nil {
		panic("pokemonServiceMock.FindOneFunc: method is nil but pokemonService.FindOne was just called")
	}
	mock.lockFindOne.Lock()
	mock.calls.FindOne = append(mock.calls.FindOne, struct{ Term string }{Term: term})
	mock.lockFindOne.Unlock()
	return mock.FindOneFunc(ctx, term)
}

func (mock *pokemonServiceMock) FindOneCalls() []struct{ Term string } {
	mock.lockFindOne.RLock()
	defer mock.lockFindOne.RUnlock()
	return mock.calls.FindOne
}

func (mock *pokemonServiceMock) Update(ctx context.Context, term string, input pokemon.UpdateInput) (*domain.Pokemon, error) {
	if mock.UpdateFunc == nil {
		panic("pokemonServiceMock.UpdateFunc: method is nil but pokemonService.Update was just called")
	}
	callInfo := struct {
		Term  string
		Input pokemon.UpdateInput
	}{Term: term, Input: input}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, term, input)
}

func (mock *pokemonServiceMock) UpdateCalls() []struct {
	Term  string
	Input pokemon.UpdateInput
} {
	mock.lockUpdate.RLock()
	defer mock.lockUpdate.RUnlock()
	return mock.calls.Update
}

func (mock *pokemonServiceMock) Delete(ctx context.Context, idToken string) error {
	if mock.DeleteFunc == nil {
		panic("pokemonServiceMock.DeleteFunc: method is nil but pokemonService.Delete was just called")
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, struct{ IDToken string }{IDToken: idToken})
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, idToken)
}

func (mock *pokemonServiceMock) DeleteCalls() []struct{ IDToken string } {
	mock.lockDelete.RLock()
	defer mock.lockDelete.RUnlock()
	return mock.calls.Delete
}

var _ seedService = &seedServiceMock{}

type seedServiceMock struct {
	ReseedFunc func(ctx context.Context) (*seed.Summary, error)

	calls struct {
		Reseed []struct{}
	}
	lockReseed sync.RWMutex
}

func (mock *seedServiceMock) Reseed(ctx context.Context) (*seed.Summary, error) {
	if mock.ReseedFunc == nil {
		panic("seedServiceMock.ReseedFunc: method is nil but seedService.Reseed was just called")
	}
	mock.lockReseed.Lock()
	mock.calls.Reseed = append(mock.calls.Reseed, struct{}{})
	mock.lockReseed.Unlock()
	return mock.ReseedFunc(ctx)
}

func (mock *seedServiceMock) ReseedCalls() []struct{} {
	mock.lockReseed.RLock()
	defer mock.lockReseed.RUnlock()
	return mock.calls.Reseed
}
