package search

import (
	"context"
	"sync"

	"github.com/heartmarshall/libra-works/internal/domain"
)

var _ workIndex = &workIndexMock{}

type workIndexMock struct {
	QueryFunc func(ctx context.Context, filter domain.WorkFilter, offset int, rows int) ([]domain.Work, error)

	calls struct {
		Query []struct {
			Ctx    context.Context
			Filter domain.WorkFilter
			Offset int
			Rows   int
		}
	}
	lockQuery sync.RWMutex
}

func (mock *workIndexMock) Query(ctx context.Context, filter domain.WorkFilter, offset int, rows int) ([]domain.Work, error) {
	if mock.QueryFunc == nil {
		panic("workIndexMock.QueryFunc: method is nil but workIndex.Query was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.WorkFilter
		Offset int
		Rows   int
	}{Ctx: ctx, Filter: filter, Offset: offset, Rows: rows}
	mock.lockQuery.Lock()
	mock.calls.Query = append(mock.calls.Query, callInfo)
	mock.lockQuery.Unlock()
	return mock.QueryFunc(ctx, filter, offset, rows)
}

func (mock *workIndexMock) QueryCalls() []struct {
	Ctx    context.Context
	Filter domain.WorkFilter
	Offset int
	Rows   int
} {
	mock.lockQuery.RLock()
	calls := mock.calls.Query
	mock.lockQuery.RUnlock()
	return calls
}
