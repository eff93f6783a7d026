// Package audit implements the append-only audit store using PostgreSQL.
package audit

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

const table = "audit_entries"

var columns = []string{
	"id", "work_id", "work_identifier", "field", "action",
	"old_value", "new_value", "actor", "created_at",
}

type row struct {
	ID             uuid.UUID `db:"id"`
	WorkID         uuid.UUID `db:"work_id"`
	WorkIdentifier string    `db:"work_identifier"`
	Field          string    `db:"field"`
	Action         string    `db:"action"`
	OldValue       string    `db:"old_value"`
	NewValue       string    `db:"new_value"`
	Actor          string    `db:"actor"`
	CreatedAt      time.Time `db:"created_at"`
}

// Repo provides audit entry persistence. There is no update or delete path.
type Repo struct {
	db postgres.Querier
}

// New creates a new audit repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Append stores entry. A missing ID or timestamp is filled in.
func (r *Repo) Append(ctx context.Context, entry domain.AuditEntry) error {
	if !entry.Action.IsValid() {
		return domain.NewValidationError("action", fmt.Sprintf("unknown audit action %q", entry.Action))
	}
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	sql, args, err := postgres.Builder.
		Insert(table).
		Columns(columns...).
		Values(entry.ID, entry.WorkID, entry.WorkIdentifier, entry.Field, string(entry.Action),
			entry.OldValue, entry.NewValue, entry.Actor, entry.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build audit insert: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "audit_entry", entry.ID)
	}
	return nil
}

// ListByWork returns the newest limit entries of a work, newest first.
func (r *Repo) ListByWork(ctx context.Context, workID uuid.UUID, limit int) ([]domain.AuditEntry, error) {
	sql, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"work_id": workID}).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build audit query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list audit entries of work %s: %w", workID, err)
	}

	entries := make([]domain.AuditEntry, len(rows))
	for i, rw := range rows {
		entries[i] = domain.AuditEntry{
			ID:             rw.ID,
			WorkID:         rw.WorkID,
			WorkIdentifier: rw.WorkIdentifier,
			Field:          rw.Field,
			Action:         domain.AuditAction(rw.Action),
			OldValue:       rw.OldValue,
			NewValue:       rw.NewValue,
			Actor:          rw.Actor,
			CreatedAt:      rw.CreatedAt,
		}
	}
	return entries, nil
}
