package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/libra-works/internal/adapter/postgres"
	auditrepo "github.com/heartmarshall/libra-works/internal/adapter/postgres/audit"
	workrepo "github.com/heartmarshall/libra-works/internal/adapter/postgres/work"
	"github.com/heartmarshall/libra-works/internal/config"
	"github.com/heartmarshall/libra-works/internal/metrics"
	"github.com/heartmarshall/libra-works/internal/service/auditlog"
	"github.com/heartmarshall/libra-works/internal/service/search"
	"github.com/heartmarshall/libra-works/internal/service/works"
	"github.com/heartmarshall/libra-works/internal/transport/middleware"
	"github.com/heartmarshall/libra-works/internal/transport/rest"
)

// Run is the API entry point. It loads configuration, connects to the
// database, wires the services and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	m := metrics.New()

	pool, err := openDatabase(ctx, cfg.Database, logger)
	if err != nil {
		return err
	}
	defer pool.Close()

	clients, err := NewClients(cfg.Services, logger, m)
	if err != nil {
		return err
	}

	workRepo := workrepo.New(pool)
	audit := auditlog.New(logger, auditrepo.New(pool), auditlog.WithObserver(m))
	batcher := search.NewBatcher(logger, workRepo, cfg.Search.PageSize)
	svc := works.NewService(logger, batcher, workRepo, audit, clients.EntityID,
		works.Limits{Default: cfg.Search.DefaultLimit, Max: cfg.Search.MaxLimit})

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	mux := http.NewServeMux()
	rest.NewHealthHandler(BuildVersion(), rest.Check{Name: "database", Ping: pool.Ping}).Register(mux)
	mux.Handle("GET /metrics", m.Handler())
	rest.NewWorksHandler(svc, logger).Register(mux,
		middleware.APIAuth(clients.AuthToken, cfg.Services.AuthService, cfg.Services.AuthScope))

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.Metrics(m),
		limiter.Limit(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst),
	)(mux)

	return serve(ctx, newServer(cfg.Server, handler), cfg.Server, logger)
}

// openDatabase connects the pool and applies migrations when enabled.
func openDatabase(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*pgxpool.Pool, error) {
	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if cfg.AutoMigrate {
		if err := postgres.Migrate(ctx, pool, logger); err != nil {
			pool.Close()
			return nil, err
		}
	}
	return pool, nil
}
