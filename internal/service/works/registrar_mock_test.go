package works

import (
	"context"
	"sync"

	"github.com/heartmarshall/libra-works/internal/domain"
)

var _ registrar = &registrarMock{}

type registrarMock struct {
	ResyncFunc func(ctx context.Context, w *domain.Work) int

	calls struct {
		Resync []struct {
			Ctx context.Context
			W   *domain.Work
		}
	}
	lockResync sync.RWMutex
}

func (mock *registrarMock) Resync(ctx context.Context, w *domain.Work) int {
	if mock.ResyncFunc == nil {
		panic("registrarMock.ResyncFunc: method is nil but registrar.Resync was just called")
	}
	callInfo := struct {
		Ctx context.Context
		W   *domain.Work
	}{Ctx: ctx, W: w}
	mock.lockResync.Lock()
	mock.calls.Resync = append(mock.calls.Resync, callInfo)
	mock.lockResync.Unlock()
	return mock.ResyncFunc(ctx, w)
}

func (mock *registrarMock) ResyncCalls() []struct {
	Ctx context.Context
	W   *domain.Work
} {
	mock.lockResync.RLock()
	calls := mock.calls.Resync
	mock.lockResync.RUnlock()
	return calls
}
