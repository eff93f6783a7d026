package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/libra-works/internal/adapter/postgres"
	auditrepo "github.com/heartmarshall/libra-works/internal/adapter/postgres/audit"
	userrepo "github.com/heartmarshall/libra-works/internal/adapter/postgres/user"
	workrepo "github.com/heartmarshall/libra-works/internal/adapter/postgres/work"
	"github.com/heartmarshall/libra-works/internal/adapter/redis"
	"github.com/heartmarshall/libra-works/internal/config"
	"github.com/heartmarshall/libra-works/internal/metrics"
	"github.com/heartmarshall/libra-works/internal/service/auditlog"
	"github.com/heartmarshall/libra-works/internal/service/deposit"
)

// RunDepositPoll performs one poll of the deposit authorization service,
// creating a draft work for every new request.
func RunDepositPoll(ctx context.Context, cfg *config.Config, logger *slog.Logger) (deposit.PollResult, error) {
	m := metrics.New()

	pool, err := openDatabase(ctx, cfg.Database, logger)
	if err != nil {
		return deposit.PollResult{}, err
	}
	defer pool.Close()

	rdb, err := redis.NewClient(ctx, cfg.Redis)
	if err != nil {
		return deposit.PollResult{}, fmt.Errorf("connect to redis: %w", err)
	}
	defer rdb.Close()

	clients, err := NewClients(cfg.Services, logger, m)
	if err != nil {
		return deposit.PollResult{}, err
	}

	svc := deposit.NewService(logger, deposit.Config{
		DefaultEmailDomain: cfg.Deposit.DefaultEmailDomain,
		DefaultPassword:    cfg.Deposit.DefaultPassword,
	}, deposit.Deps{
		Directory: clients.UserInfo,
		Minter:    clients.EntityID,
		Requests:  clients.DepositAuth,
		Users:     userrepo.New(pool),
		Works:     workrepo.New(pool),
		Audit:     auditlog.New(logger, auditrepo.New(pool), auditlog.WithObserver(m)),
		Cursor:    redis.NewCursorStore(rdb, cfg.Redis.CursorKey),
		Tx:        postgres.NewTxManager(pool),
		Observer:  m,
	})

	return svc.Poll(ctx)
}
