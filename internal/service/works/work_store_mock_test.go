package works

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/libra-works/internal/domain"
)

var _ workStore = &workStoreMock{}

type workStoreMock struct {
	SaveFunc   func(ctx context.Context, w *domain.Work) error
	DeleteFunc func(ctx context.Context, id uuid.UUID) error

	calls struct {
		Save []struct {
			Ctx context.Context
			W   *domain.Work
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockSave   sync.RWMutex
	lockDelete sync.RWMutex
}

func (mock *workStoreMock) Save(ctx context.Context, w *domain.Work) error {
	if mock.SaveFunc == nil {
		panic("workStoreMock.SaveFunc: method is nil but workStore.Save was just called")
	}
	callInfo := struct {
		Ctx context.Context
		W   *domain.Work
	}{Ctx: ctx, W: w}
	mock.lockSave.Lock()
	mock.calls.Save = append(mock.calls.Save, callInfo)
	mock.lockSave.Unlock()
	return mock.SaveFunc(ctx, w)
}

func (mock *workStoreMock) SaveCalls() []struct {
	Ctx context.Context
	W   *domain.Work
} {
	mock.lockSave.RLock()
	calls := mock.calls.Save
	mock.lockSave.RUnlock()
	return calls
}

func (mock *workStoreMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("workStoreMock.DeleteFunc: method is nil but workStore.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *workStoreMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
