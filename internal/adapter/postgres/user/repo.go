// Package user implements the local account repository using PostgreSQL.
package user

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

const table = "users"

var columns = []string{
	"id", "email", "password_hash", "display_name", "department",
	"office", "telephone", "title", "created_at",
}

type row struct {
	ID           uuid.UUID `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	DisplayName  string    `db:"display_name"`
	Department   string    `db:"department"`
	Office       string    `db:"office"`
	Telephone    string    `db:"telephone"`
	Title        string    `db:"title"`
	CreatedAt    time.Time `db:"created_at"`
}

// Repo provides local account persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByEmail returns the account registered under email.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	sql, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"email": email}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build user query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "user", email)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("user %s: %w", email, domain.ErrNotFound)
	}

	u := toDomain(rows[0])
	return &u, nil
}

// Create inserts a new account. Returns domain.ErrAlreadyExists when the
// email is taken.
func (r *Repo) Create(ctx context.Context, u *domain.User) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}

	sql, args, err := postgres.Builder.
		Insert(table).
		Columns(columns...).
		Values(u.ID, u.Email, u.PasswordHash, u.DisplayName, u.Department,
			u.Office, u.Telephone, u.Title, u.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build user insert: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "user", u.Email)
	}
	return nil
}

func toDomain(r row) domain.User {
	return domain.User{
		ID:           r.ID,
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
		DisplayName:  r.DisplayName,
		Department:   r.Department,
		Office:       r.Office,
		Telephone:    r.Telephone,
		Title:        r.Title,
		CreatedAt:    r.CreatedAt,
	}
}
