package deposit

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/heartmarshall/libra-works/internal/domain"
)

// PollResult summarizes one polling run.
type PollResult struct {
	Found   int
	Created int
	Cursor  int64
}

// Poll creates works for the deposit requests issued after the stored
// cursor. Requests are handled in ascending id order and the cursor advances
// after every created work. The run stops at the first failure so that the
// failed request is retried next time.
func (s *Service) Poll(ctx context.Context) (PollResult, error) {
	cursor, err := s.cursor.Get(ctx)
	if err != nil {
		return PollResult{}, fmt.Errorf("read poll cursor: %w", err)
	}
	res := PollResult{Cursor: cursor}

	status, requests := s.requests.ListSince(ctx, cursor)
	if !succeeded(status) {
		return res, fmt.Errorf("list deposit requests: %w", &domain.ServiceError{Service: "depositauth", Status: status})
	}
	res.Found = len(requests)

	slices.SortFunc(requests, func(a, b domain.DepositRequest) int {
		return cmp.Compare(a.ID, b.ID)
	})

	for _, req := range requests {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if req.ID <= res.Cursor {
			continue
		}
		if _, err := s.CreateFromRequest(ctx, req); err != nil {
			return res, fmt.Errorf("deposit request %d: %w", req.ID, err)
		}
		if err := s.cursor.Set(ctx, req.ID); err != nil {
			return res, fmt.Errorf("store poll cursor: %w", err)
		}
		res.Cursor = req.ID
		res.Created++
	}

	s.log.InfoContext(ctx, "deposit poll complete",
		slog.Int("found", res.Found),
		slog.Int("created", res.Created),
		slog.Int64("cursor", res.Cursor),
	)
	return res, nil
}
