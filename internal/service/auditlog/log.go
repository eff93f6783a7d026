// Package auditlog records field-level changes made to works.
package auditlog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/libra-works/internal/domain"
)

// DefaultHistoryLimit caps History when the caller passes no limit.
const DefaultHistoryLimit = 100

type auditStore interface {
	Append(ctx context.Context, entry domain.AuditEntry) error
	ListByWork(ctx context.Context, workID uuid.UUID, limit int) ([]domain.AuditEntry, error)
}

// auditObserver is implemented by the metrics registry.
type auditObserver interface {
	ObserveAudit(action string, stored bool)
}

// Log writes audit entries to the structured log and to the audit store.
type Log struct {
	log      *slog.Logger
	store    auditStore
	observer auditObserver
}

// Option configures a Log.
type Option func(*Log)

// WithObserver reports every recorded entry to o.
func WithObserver(o auditObserver) Option {
	return func(l *Log) { l.observer = o }
}

// New creates a Log.
func New(logger *slog.Logger, store auditStore, opts ...Option) *Log {
	l := &Log{
		log:   logger.With("service", "auditlog"),
		store: store,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Record emits the entry and appends it to the store. A failing store is
// logged and otherwise ignored: the change the entry describes has already
// been committed.
func (l *Log) Record(ctx context.Context, entry domain.AuditEntry) {
	l.log.InfoContext(ctx, "audit",
		slog.String("work_id", entry.WorkID.String()),
		slog.String("identifier", entry.WorkIdentifier),
		slog.String("field", entry.Field),
		slog.String("action", entry.Action.String()),
		slog.String("actor", entry.Actor),
		slog.String("message", entry.Message()),
	)

	err := l.store.Append(ctx, entry)
	if err != nil {
		l.log.ErrorContext(ctx, "audit append failed",
			slog.String("work_id", entry.WorkID.String()),
			slog.String("field", entry.Field),
			slog.String("error", err.Error()),
		)
	}
	if l.observer != nil {
		l.observer.ObserveAudit(entry.Action.String(), err == nil)
	}
}

// History returns the recorded entries of a work, newest first.
func (l *Log) History(ctx context.Context, workID uuid.UUID, limit int) ([]domain.AuditEntry, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	entries, err := l.store.ListByWork(ctx, workID, limit)
	if err != nil {
		return nil, fmt.Errorf("audit history of %s: %w", workID, err)
	}
	return entries, nil
}
