package works

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/libra-works/internal/domain"
)

var _ auditRecorder = &auditRecorderMock{}

type auditRecorderMock struct {
	RecordFunc  func(ctx context.Context, entry domain.AuditEntry)
	HistoryFunc func(ctx context.Context, workID uuid.UUID, limit int) ([]domain.AuditEntry, error)

	calls struct {
		Record []struct {
			Ctx   context.Context
			Entry domain.AuditEntry
		}
		History []struct {
			Ctx    context.Context
			WorkID uuid.UUID
			Limit  int
		}
	}
	lockRecord  sync.RWMutex
	lockHistory sync.RWMutex
}

func (mock *auditRecorderMock) Record(ctx context.Context, entry domain.AuditEntry) {
	if mock.RecordFunc == nil {
		panic("auditRecorderMock.RecordFunc: method is nil but auditRecorder.Record was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Entry domain.AuditEntry
	}{Ctx: ctx, Entry: entry}
	mock.lockRecord.Lock()
	mock.calls.Record = append(mock.calls.Record, callInfo)
	mock.lockRecord.Unlock()
	mock.RecordFunc(ctx, entry)
}

func (mock *auditRecorderMock) RecordCalls() []struct {
	Ctx   context.Context
	Entry domain.AuditEntry
} {
	mock.lockRecord.RLock()
	calls := mock.calls.Record
	mock.lockRecord.RUnlock()
	return calls
}

func (mock *auditRecorderMock) History(ctx context.Context, workID uuid.UUID, limit int) ([]domain.AuditEntry, error) {
	if mock.HistoryFunc == nil {
		panic("auditRecorderMock.HistoryFunc: method is nil but auditRecorder.History was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		WorkID uuid.UUID
		Limit  int
	}{Ctx: ctx, WorkID: workID, Limit: limit}
	mock.lockHistory.Lock()
	mock.calls.History = append(mock.calls.History, callInfo)
	mock.lockHistory.Unlock()
	return mock.HistoryFunc(ctx, workID, limit)
}

func (mock *auditRecorderMock) HistoryCalls() []struct {
	Ctx    context.Context
	WorkID uuid.UUID
	Limit  int
} {
	mock.lockHistory.RLock()
	calls := mock.calls.History
	mock.lockHistory.RUnlock()
	return calls
}
