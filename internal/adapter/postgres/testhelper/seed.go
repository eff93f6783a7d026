//go:build integration

package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/libra-works/internal/adapter/postgres/work"
	"github.com/heartmarshall/libra-works/internal/domain"
)

func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedWork stores a draft thesis owned by a unique depositor and returns it.
func SeedWork(t *testing.T, pool *pgxpool.Pool, mutate ...func(w *domain.Work)) domain.Work {
	t.Helper()

	email := "depositor-" + uniqueSuffix() + "@example.edu"
	w := domain.Work{
		ID:           uuid.New(),
		Title:        "Seeded thesis",
		AuthorEmail:  email,
		Depositor:    email,
		Creator:      email,
		EditUsers:    []string{email},
		Draft:        true,
		EmbargoState: domain.EmbargoOpen,
		Visibility:   domain.VisibilityPrivate,
		WorkType:     domain.WorkTypeThesis,
		Publisher:    domain.DefaultPublisher,
		DateCreated:  time.Now().UTC().Truncate(24 * time.Hour),
	}
	for _, m := range mutate {
		m(&w)
	}

	if err := work.New(pool).Save(context.Background(), &w); err != nil {
		t.Fatalf("testhelper: SeedWork: %v", err)
	}
	return w
}
