package deposit

import (
	"context"
	"sync"

	"github.com/heartmarshall/libra-works/internal/domain"
)

var _ requestTracker = &requestTrackerMock{}

type requestTrackerMock struct {
	ListSinceFunc     func(ctx context.Context, cursor int64) (int, []domain.DepositRequest)
	MarkFulfilledFunc func(ctx context.Context, w *domain.Work) int

	calls struct {
		ListSince []struct {
			Ctx    context.Context
			Cursor int64
		}
		MarkFulfilled []struct {
			Ctx context.Context
			W   *domain.Work
		}
	}
	lockListSince     sync.RWMutex
	lockMarkFulfilled sync.RWMutex
}

func (mock *requestTrackerMock) ListSince(ctx context.Context, cursor int64) (int, []domain.DepositRequest) {
	if mock.ListSinceFunc == nil {
		panic("requestTrackerMock.ListSinceFunc: method is nil but requestTracker.ListSince was just called")
	}
	mock.lockListSince.Lock()
	mock.calls.ListSince = append(mock.calls.ListSince, struct {
		Ctx    context.Context
		Cursor int64
	}{Ctx: ctx, Cursor: cursor})
	mock.lockListSince.Unlock()
	return mock.ListSinceFunc(ctx, cursor)
}

func (mock *requestTrackerMock) ListSinceCalls() []struct {
	Ctx    context.Context
	Cursor int64
} {
	mock.lockListSince.RLock()
	calls := mock.calls.ListSince
	mock.lockListSince.RUnlock()
	return calls
}

func (mock *requestTrackerMock) MarkFulfilled(ctx context.Context, w *domain.Work) int {
	if mock.MarkFulfilledFunc == nil {
		panic("requestTrackerMock.MarkFulfilledFunc: method is nil but requestTracker.MarkFulfilled was just called")
	}
	mock.lockMarkFulfilled.Lock()
	mock.calls.MarkFulfilled = append(mock.calls.MarkFulfilled, struct {
		Ctx context.Context
		W   *domain.Work
	}{Ctx: ctx, W: w})
	mock.lockMarkFulfilled.Unlock()
	return mock.MarkFulfilledFunc(ctx, w)
}

func (mock *requestTrackerMock) MarkFulfilledCalls() []struct {
	Ctx context.Context
	W   *domain.Work
} {
	mock.lockMarkFulfilled.RLock()
	calls := mock.calls.MarkFulfilled
	mock.lockMarkFulfilled.RUnlock()
	return calls
}
