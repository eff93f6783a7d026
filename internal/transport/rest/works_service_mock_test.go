package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/libra-works/internal/domain"
	"github.com/heartmarshall/libra-works/internal/service/works"
)

var _ worksService = &worksServiceMock{}

type worksServiceMock struct {
	ListFunc       func(ctx context.Context, start int, limit int) ([]domain.Work, error)
	SearchFunc     func(ctx context.Context, in works.SearchInput) ([]domain.Work, error)
	GetFunc        func(ctx context.Context, id uuid.UUID) (*domain.Work, error)
	HistoryFunc    func(ctx context.Context, id uuid.UUID, limit int) ([]domain.AuditEntry, error)
	UpdateWorkFunc func(ctx context.Context, id uuid.UUID, patch works.Patch) (*domain.Work, error)
	DeleteWorkFunc func(ctx context.Context, id uuid.UUID) error

	calls struct {
		List []struct {
			Start int
			Limit int
		}
		Search []struct {
			In works.SearchInput
		}
		UpdateWork []struct {
			ID    uuid.UUID
			Patch works.Patch
		}
		DeleteWork []struct {
			ID uuid.UUID
		}
	}
	lock sync.RWMutex
}

func (mock *worksServiceMock) List(ctx context.Context, start int, limit int) ([]domain.Work, error) {
	if mock.ListFunc == nil {
		panic("worksServiceMock.ListFunc: method is nil but worksService.List was just called")
	}
	mock.lock.Lock()
	mock.calls.List = append(mock.calls.List, struct {
		Start int
		Limit int
	}{Start: start, Limit: limit})
	mock.lock.Unlock()
	return mock.ListFunc(ctx, start, limit)
}

func (mock *worksServiceMock) ListCalls() []struct {
	Start int
	Limit int
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.List
}

func (mock *worksServiceMock) Search(ctx context.Context, in works.SearchInput) ([]domain.Work, error) {
	if mock.SearchFunc == nil {
		panic("worksServiceMock.SearchFunc: method is nil but worksService.Search was just called")
	}
	mock.lock.Lock()
	mock.calls.Search = append(mock.calls.Search, struct {
		In works.SearchInput
	}{In: in})
	mock.lock.Unlock()
	return mock.SearchFunc(ctx, in)
}

func (mock *worksServiceMock) SearchCalls() []struct {
	In works.SearchInput
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Search
}

func (mock *worksServiceMock) Get(ctx context.Context, id uuid.UUID) (*domain.Work, error) {
	if mock.GetFunc == nil {
		panic("worksServiceMock.GetFunc: method is nil but worksService.Get was just called")
	}
	return mock.GetFunc(ctx, id)
}

func (mock *worksServiceMock) History(ctx context.Context, id uuid.UUID, limit int) ([]domain.AuditEntry, error) {
	if mock.HistoryFunc == nil {
		panic("worksServiceMock.HistoryFunc: method is nil but worksService.History was just called")
	}
	return mock.HistoryFunc(ctx, id, limit)
}

func (mock *worksServiceMock) UpdateWork(ctx context.Context, id uuid.UUID, patch works.Patch) (*domain.Work, error) {
	if mock.UpdateWorkFunc == nil {
		panic("worksServiceMock.UpdateWorkFunc: method is nil but worksService.UpdateWork was just called")
	}
	mock.lock.Lock()
	mock.calls.UpdateWork = append(mock.calls.UpdateWork, struct {
		ID    uuid.UUID
		Patch works.Patch
	}{ID: id, Patch: patch})
	mock.lock.Unlock()
	return mock.UpdateWorkFunc(ctx, id, patch)
}

func (mock *worksServiceMock) UpdateWorkCalls() []struct {
	ID    uuid.UUID
	Patch works.Patch
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.UpdateWork
}

func (mock *worksServiceMock) DeleteWork(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteWorkFunc == nil {
		panic("worksServiceMock.DeleteWorkFunc: method is nil but worksService.DeleteWork was just called")
	}
	mock.lock.Lock()
	mock.calls.DeleteWork = append(mock.calls.DeleteWork, struct {
		ID uuid.UUID
	}{ID: id})
	mock.lock.Unlock()
	return mock.DeleteWorkFunc(ctx, id)
}

func (mock *worksServiceMock) DeleteWorkCalls() []struct {
	ID uuid.UUID
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.DeleteWork
}
