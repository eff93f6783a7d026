// Package search reads windows of works from the search index in pages.
package search

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/libra-works/internal/domain"
)

// DefaultPageSize is used when the configured page size is not positive.
const DefaultPageSize = 100

// workIndex is the search index as seen by the batcher.
type workIndex interface {
	Query(ctx context.Context, filter domain.WorkFilter, offset, rows int) ([]domain.Work, error)
}

// Batcher returns arbitrary windows of index results while asking the index
// for at most pageSize rows per request.
type Batcher struct {
	log      *slog.Logger
	index    workIndex
	pageSize int
}

// NewBatcher creates a Batcher.
func NewBatcher(logger *slog.Logger, index workIndex, pageSize int) *Batcher {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Batcher{
		log:      logger.With("service", "search"),
		index:    index,
		pageSize: pageSize,
	}
}

// Fetch returns the works at positions [start, start+limit) of the filtered
// index, in index order. A negative start counts as 0. The result is never
// nil; index errors are returned, not treated as an empty result.
func (b *Batcher) Fetch(ctx context.Context, filter domain.WorkFilter, start, limit int) ([]domain.Work, error) {
	start = max(start, 0)
	out := make([]domain.Work, 0, min(max(limit, 0), b.pageSize))
	if limit <= 0 {
		return out, nil
	}

	offset, remaining := start, limit
	for remaining > 0 {
		rows := min(b.pageSize, remaining)

		page, err := b.index.Query(ctx, filter, offset, rows)
		if err != nil {
			return nil, fmt.Errorf("search works at offset %d: %w", offset, err)
		}
		if len(page) > rows {
			page = page[:rows]
		}
		out = append(out, page...)

		if len(page) < rows {
			break
		}
		offset += rows
		remaining -= rows
	}

	b.log.DebugContext(ctx, "search window fetched",
		slog.Int("start", start),
		slog.Int("limit", limit),
		slog.Int("found", len(out)),
	)
	return out, nil
}

// Get returns the single work with the given id.
func (b *Batcher) Get(ctx context.Context, id uuid.UUID) (*domain.Work, error) {
	works, err := b.Fetch(ctx, domain.WorkFilter{ID: &id}, 0, 1)
	if err != nil {
		return nil, err
	}
	if len(works) == 0 {
		return nil, fmt.Errorf("work %s: %w", id, domain.ErrNotFound)
	}
	return &works[0], nil
}
