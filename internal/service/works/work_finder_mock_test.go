package works

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/libra-works/internal/domain"
)

var _ workFinder = &workFinderMock{}

type workFinderMock struct {
	FetchFunc func(ctx context.Context, filter domain.WorkFilter, start int, limit int) ([]domain.Work, error)
	GetFunc   func(ctx context.Context, id uuid.UUID) (*domain.Work, error)

	calls struct {
		Fetch []struct {
			Ctx    context.Context
			Filter domain.WorkFilter
			Start  int
			Limit  int
		}
		Get []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockFetch sync.RWMutex
	lockGet   sync.RWMutex
}

func (mock *workFinderMock) Fetch(ctx context.Context, filter domain.WorkFilter, start int, limit int) ([]domain.Work, error) {
	if mock.FetchFunc == nil {
		panic("workFinderMock.FetchFunc: method is nil but workFinder.Fetch was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.WorkFilter
		Start  int
		Limit  int
	}{Ctx: ctx, Filter: filter, Start: start, Limit: limit}
	mock.lockFetch.Lock()
	mock.calls.Fetch = append(mock.calls.Fetch, callInfo)
	mock.lockFetch.Unlock()
	return mock.FetchFunc(ctx, filter, start, limit)
}

func (mock *workFinderMock) FetchCalls() []struct {
	Ctx    context.Context
	Filter domain.WorkFilter
	Start  int
	Limit  int
} {
	mock.lockFetch.RLock()
	calls := mock.calls.Fetch
	mock.lockFetch.RUnlock()
	return calls
}

func (mock *workFinderMock) Get(ctx context.Context, id uuid.UUID) (*domain.Work, error) {
	if mock.GetFunc == nil {
		panic("workFinderMock.GetFunc: method is nil but workFinder.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *workFinderMock) GetCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}
