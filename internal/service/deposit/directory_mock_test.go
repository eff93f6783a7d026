package deposit

import (
	"context"
	"sync"

	"github.com/heartmarshall/libra-works/internal/domain"
)

var _ directory = &directoryMock{}

type directoryMock struct {
	LookupFunc func(ctx context.Context, personID string) (int, *domain.DirectoryRecord)

	calls struct {
		Lookup []struct {
			Ctx      context.Context
			PersonID string
		}
	}
	lockLookup sync.RWMutex
}

func (mock *directoryMock) Lookup(ctx context.Context, personID string) (int, *domain.DirectoryRecord) {
	if mock.LookupFunc == nil {
		panic("directoryMock.LookupFunc: method is nil but directory.Lookup was just called")
	}
	mock.lockLookup.Lock()
	mock.calls.Lookup = append(mock.calls.Lookup, struct {
		Ctx      context.Context
		PersonID string
	}{Ctx: ctx, PersonID: personID})
	mock.lockLookup.Unlock()
	return mock.LookupFunc(ctx, personID)
}

func (mock *directoryMock) LookupCalls() []struct {
	Ctx      context.Context
	PersonID string
} {
	mock.lockLookup.RLock()
	calls := mock.calls.Lookup
	mock.lockLookup.RUnlock()
	return calls
}
