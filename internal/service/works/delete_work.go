package works

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/libra-works/internal/domain"
	"github.com/heartmarshall/libra-works/pkg/ctxutil"
)

// DeleteWork removes a work and records who deleted it.
func (s *Service) DeleteWork(ctx context.Context, id uuid.UUID) error {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	w, err := s.finder.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("delete work: %w", err)
	}

	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete work: %w", err)
	}

	s.audit.Record(ctx, domain.AuditEntry{
		WorkID:         w.ID,
		WorkIdentifier: w.Identifier,
		Action:         domain.AuditActionDeleted,
		Actor:          actorName(actor),
		CreatedAt:      s.now(),
	})
	s.log.InfoContext(ctx, "work deleted", slog.String("work_id", id.String()))
	return nil
}
