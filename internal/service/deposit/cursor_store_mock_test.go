package deposit

import (
	"context"
	"sync"
)

var _ cursorStore = &cursorStoreMock{}

type cursorStoreMock struct {
	GetFunc func(ctx context.Context) (int64, error)
	SetFunc func(ctx context.Context, cursor int64) error

	calls struct {
		Get []struct {
			Ctx context.Context
		}
		Set []struct {
			Ctx    context.Context
			Cursor int64
		}
	}
	lockGet sync.RWMutex
	lockSet sync.RWMutex
}

func (mock *cursorStoreMock) Get(ctx context.Context) (int64, error) {
	if mock.GetFunc == nil {
		panic("cursorStoreMock.GetFunc: method is nil but cursorStore.Get was just called")
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, struct {
		Ctx context.Context
	}{Ctx: ctx})
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx)
}

func (mock *cursorStoreMock) Set(ctx context.Context, cursor int64) error {
	if mock.SetFunc == nil {
		panic("cursorStoreMock.SetFunc: method is nil but cursorStore.Set was just called")
	}
	mock.lockSet.Lock()
	mock.calls.Set = append(mock.calls.Set, struct {
		Ctx    context.Context
		Cursor int64
	}{Ctx: ctx, Cursor: cursor})
	mock.lockSet.Unlock()
	return mock.SetFunc(ctx, cursor)
}

func (mock *cursorStoreMock) SetCalls() []struct {
	Ctx    context.Context
	Cursor int64
} {
	mock.lockSet.RLock()
	calls := mock.calls.Set
	mock.lockSet.RUnlock()
	return calls
}
