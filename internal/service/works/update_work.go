package works

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/libra-works/internal/domain"
	"github.com/heartmarshall/libra-works/pkg/ctxutil"
)

// UpdateWork applies a patch to a work. An unknown work is reported before
// an invalid patch. The changed record is saved once,
// then one audit entry per changed field is recorded. A published work whose
// title changed is resynced with the identifier registrar; a failed resync is
// logged and does not fail the update.
func (s *Service) UpdateWork(ctx context.Context, id uuid.UUID, patch Patch) (*domain.Work, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	current, err := s.finder.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("update work: %w", err)
	}
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	res := Diff(*current, patch, actor, s.now())
	if err := checkEmbargo(res); err != nil {
		return nil, err
	}
	if len(res.Entries) == 0 {
		s.log.DebugContext(ctx, "work unchanged", slog.String("work_id", id.String()))
		return current, nil
	}

	next := res.Next
	if err := s.store.Save(ctx, &next); err != nil {
		return nil, fmt.Errorf("save work: %w", err)
	}

	for _, e := range res.Entries {
		s.audit.Record(ctx, e)
	}

	if res.Resync && !next.Draft {
		if status := s.registrar.Resync(ctx, &next); !succeeded(status) {
			s.log.ErrorContext(ctx, "identifier metadata resync failed",
				slog.String("work_id", next.ID.String()),
				slog.String("identifier", next.Identifier),
				slog.Int("status", status),
			)
		}
	}

	s.log.InfoContext(ctx, "work updated",
		slog.String("work_id", next.ID.String()),
		slog.Int("changes", len(res.Entries)),
	)
	return &next, nil
}
