// Package works lists, searches, updates and deletes deposited works.
package works

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/libra-works/internal/domain"
)

// workFinder reads works through the search index.
type workFinder interface {
	Fetch(ctx context.Context, filter domain.WorkFilter, start, limit int) ([]domain.Work, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Work, error)
}

// workStore writes works to the document store.
type workStore interface {
	Save(ctx context.Context, w *domain.Work) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type auditRecorder interface {
	Record(ctx context.Context, entry domain.AuditEntry)
	History(ctx context.Context, workID uuid.UUID, limit int) ([]domain.AuditEntry, error)
}

// registrar pushes metadata of published works to the identifier service.
type registrar interface {
	Resync(ctx context.Context, w *domain.Work) int
}

// Limits bounds the size of a listing window.
type Limits struct {
	Default int
	Max     int
}

// Service implements the works API operations.
type Service struct {
	log       *slog.Logger
	finder    workFinder
	store     workStore
	audit     auditRecorder
	registrar registrar
	limits    Limits
	now       func() time.Time
}

// NewService creates a new works service.
func NewService(
	logger *slog.Logger,
	finder workFinder,
	store workStore,
	audit auditRecorder,
	registrar registrar,
	limits Limits,
) *Service {
	if limits.Default <= 0 {
		limits.Default = 100
	}
	if limits.Max < limits.Default {
		limits.Max = limits.Default
	}
	return &Service{
		log:       logger.With("service", "works"),
		finder:    finder,
		store:     store,
		audit:     audit,
		registrar: registrar,
		limits:    limits,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// window normalizes a caller-supplied start and limit.
func (s *Service) window(start, limit int) (int, int) {
	if start < 0 {
		start = 0
	}
	if limit <= 0 {
		limit = s.limits.Default
	}
	return start, min(limit, s.limits.Max)
}

func succeeded(status int) bool {
	return status >= 200 && status < 300
}
