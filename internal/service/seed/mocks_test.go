package seed

import (
	"context"
	"sync"

	"github.com/Ramon-Molinero/pokedex/internal/domain"
	"github.com/Ramon-Molinero/pokedex/internal/provider"
	"github.com/Ramon-Molinero/pokedex/internal/store"
)

var (
	_ pokemonStore = &pokemonStoreMock{}
	_ listSource   = &listSourceMock{}
)

type pokemonStoreMock struct {
	DeleteAllFunc  func(ctx context.Context) (int64, error)
	InsertManyFunc func(ctx context.Context, records []domain.Pokemon) (store.BulkResult, error)

	calls struct {
		DeleteAll  []struct{}
		InsertMany []struct{ Records []domain.Pokemon }
	}
	lock sync.RWMutex
}

func (mock *pokemonStoreMock) DeleteAll(ctx context.Context) (int64, error) {
	if mock.DeleteAllFunc == nil {
		panic("pokemonStoreMock.DeleteAllFunc: method is nil but pokemonStore.DeleteAll was just called")
	}
	mock.lock.Lock()
	mock.calls.DeleteAll = append(mock.calls.DeleteAll, struct{}{})
	mock.lock.Unlock()
	return mock.DeleteAllFunc(ctx)
}

func (mock *pokemonStoreMock) DeleteAllCalls() []struct{} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.DeleteAll
}

func (mock *pokemonStoreMock) InsertMany(ctx context.Context, records []domain.Pokemon) (store.BulkResult, error) {
	if mock.InsertManyFunc == nil {
		panic("pokemonStoreMock.InsertManyFunc: method is nil but pokemonStore.InsertMany was just called")
	}
	mock.lock.Lock()
	mock.calls.InsertMany = append(mock.calls.InsertMany, struct{ Records []domain.Pokemon }{Records: records})
	mock.lock.Unlock()
	return mock.InsertManyFunc(ctx, records)
}

func (mock *pokemonStoreMock) InsertManyCalls() []struct{ Records []domain.Pokemon } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.InsertMany
}

type listSourceMock struct {
	FetchListFunc func(ctx context.Context, limit int) ([]provider.ListItem, error)

	calls struct {
		FetchList []struct{ Limit int }
	}
	lock sync.RWMutex
}

func (mock *listSourceMock) FetchList(ctx context.Context, limit int) ([]provider.ListItem, error) {
	if mock.FetchListFunc == nil {
		panic("listSourceMock.FetchListFunc: method is nil but listSource.FetchList was just called")
	}
	mock.lock.Lock()
	mock.calls.FetchList = append(mock.calls.FetchList, struct{ Limit int }{Limit: limit})
	mock.lock.Unlock()
	return mock.FetchListFunc(ctx, limit)
}

func (mock *listSourceMock) FetchListCalls() []struct{ Limit int } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.FetchList
}
