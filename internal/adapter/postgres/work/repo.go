// Package work stores works in PostgreSQL and serves as the search index.
package work

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/libra-works/internal/adapter/postgres"
	"github.com/heartmarshall/libra-works/internal/domain"
)

const table = "works"

// Repo provides work persistence and index queries backed by PostgreSQL.
type Repo struct {
	db  postgres.Querier
	now func() time.Time
}

// New creates a new work repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db, now: time.Now}
}

// ---------------------------------------------------------------------------
// Index
// ---------------------------------------------------------------------------

// Query returns up to rows works matching filter, starting at offset, in the
// index order (created_at, id).
func (r *Repo) Query(ctx context.Context, filter domain.WorkFilter, offset, rows int) ([]domain.Work, error) {
	q := postgres.Builder.
		Select(columns...).
		From(table).
		Where(conditions(filter)).
		OrderBy("created_at ASC", "id ASC").
		Limit(uint64(rows)).
		Offset(uint64(offset))

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build works query: %w", err)
	}

	var found []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &found, sql, args...); err != nil {
		return nil, fmt.Errorf("query works: %w", err)
	}

	works := make([]domain.Work, 0, len(found))
	for _, fr := range found {
		w, err := toDomain(fr)
		if err != nil {
			return nil, err
		}
		works = append(works, w)
	}
	return works, nil
}

func conditions(f domain.WorkFilter) squirrel.And {
	and := squirrel.And{}
	if f.ID != nil {
		and = append(and, squirrel.Eq{"id": *f.ID})
	}
	if f.Draft != nil {
		and = append(and, squirrel.Eq{"draft": *f.Draft})
	}
	if f.AuthorEmail != nil {
		and = append(and, squirrel.Eq{"author_email": *f.AuthorEmail})
	}
	if f.CreatedOn != nil {
		and = append(and, squirrel.Eq{"date_created": *f.CreatedOn})
	}
	return and
}

// ---------------------------------------------------------------------------
// Document store
// ---------------------------------------------------------------------------

// Save inserts or replaces the work. A stored identifier is never replaced.
// CreatedAt and UpdatedAt are set on w.
func (r *Repo) Save(ctx context.Context, w *domain.Work) error {
	now := r.now().UTC()
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	if w.CreatedAt.IsZero() {
		w.CreatedAt = now
	}
	if w.DateCreated.IsZero() {
		w.DateCreated = now.Truncate(24 * time.Hour)
	}
	w.UpdatedAt = now

	rw, err := toRow(w)
	if err != nil {
		return err
	}

	sql, args, err := postgres.Builder.
		Insert(table).
		Columns(columns...).
		Values(rw.ID, rw.Identifier, rw.Draft, rw.AuthorEmail, rw.Depositor,
			rw.DateCreated, rw.Document, rw.CreatedAt, rw.UpdatedAt).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			identifier = COALESCE(works.identifier, EXCLUDED.identifier),
			draft = EXCLUDED.draft,
			author_email = EXCLUDED.author_email,
			depositor = EXCLUDED.depositor,
			document = EXCLUDED.document,
			updated_at = EXCLUDED.updated_at`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build work upsert: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "work", w.ID)
	}
	return nil
}

// Delete removes the work. Returns domain.ErrNotFound if no row matched.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := postgres.Builder.
		Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build work delete: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "work", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("work %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
