package works

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/libra-works/internal/domain"
)

// List returns a window over all works in index order.
func (s *Service) List(ctx context.Context, start, limit int) ([]domain.Work, error) {
	start, limit = s.window(start, limit)
	works, err := s.finder.Fetch(ctx, domain.WorkFilter{}, start, limit)
	if err != nil {
		return nil, fmt.Errorf("list works: %w", err)
	}
	return works, nil
}

// Search returns a window over the works matching the input filters.
func (s *Service) Search(ctx context.Context, in SearchInput) ([]domain.Work, error) {
	filter, err := in.Filter()
	if err != nil {
		return nil, err
	}
	start, limit := s.window(in.Start, in.Limit)
	works, err := s.finder.Fetch(ctx, filter, start, limit)
	if err != nil {
		return nil, fmt.Errorf("search works: %w", err)
	}
	return works, nil
}

// Get returns a single work.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Work, error) {
	w, err := s.finder.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get work: %w", err)
	}
	return w, nil
}

// History returns the audit entries of a work, newest first. Entries of
// deleted works remain readable.
func (s *Service) History(ctx context.Context, id uuid.UUID, limit int) ([]domain.AuditEntry, error) {
	return s.audit.History(ctx, id, limit)
}
