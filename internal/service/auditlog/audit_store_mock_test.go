package auditlog

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/libra-works/internal/domain"
)

var _ auditStore = &auditStoreMock{}

type auditStoreMock struct {
	AppendFunc     func(ctx context.Context, entry domain.AuditEntry) error
	ListByWorkFunc func(ctx context.Context, workID uuid.UUID, limit int) ([]domain.AuditEntry, error)

	calls struct {
		Append []struct {
			Ctx   context.Context
			Entry domain.AuditEntry
		}
		ListByWork []struct {
			Ctx    context.Context
			WorkID uuid.UUID
			Limit  int
		}
	}
	lockAppend     sync.RWMutex
	lockListByWork sync.RWMutex
}

func (mock *auditStoreMock) Append(ctx context.Context, entry domain.AuditEntry) error {
	if mock.AppendFunc == nil {
		panic("auditStoreMock.AppendFunc: method is nil but auditStore.Append was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Entry domain.AuditEntry
	}{Ctx: ctx, Entry: entry}
	mock.lockAppend.Lock()
	mock.calls.Append = append(mock.calls.Append, callInfo)
	mock.lockAppend.Unlock()
	return mock.AppendFunc(ctx, entry)
}

func (mock *auditStoreMock) AppendCalls() []struct {
	Ctx   context.Context
	Entry domain.AuditEntry
} {
	mock.lockAppend.RLock()
	calls := mock.calls.Append
	mock.lockAppend.RUnlock()
	return calls
}

func (mock *auditStoreMock) ListByWork(ctx context.Context, workID uuid.UUID, limit int) ([]domain.AuditEntry, error) {
	if mock.ListByWorkFunc == nil {
		panic("auditStoreMock.ListByWorkFunc: method is nil but auditStore.ListByWork was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		WorkID uuid.UUID
		Limit  int
	}{Ctx: ctx, WorkID: workID, Limit: limit}
	mock.lockListByWork.Lock()
	mock.calls.ListByWork = append(mock.calls.ListByWork, callInfo)
	mock.lockListByWork.Unlock()
	return mock.ListByWorkFunc(ctx, workID, limit)
}

func (mock *auditStoreMock) ListByWorkCalls() []struct {
	Ctx    context.Context
	WorkID uuid.UUID
	Limit  int
} {
	mock.lockListByWork.RLock()
	calls := mock.calls.ListByWork
	mock.lockListByWork.RUnlock()
	return calls
}
