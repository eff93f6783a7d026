// Command deposit-poll creates draft works for deposit authorizations
// issued since the last run. It is intended to be invoked by an external
// cron job.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/heartmarshall/libra-works/internal/app"
	"github.com/heartmarshall/libra-works/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, 10*time.Minute)
	defer cancel()

	res, err := app.RunDepositPoll(ctx, cfg, logger)
	if err != nil {
		logger.Error("deposit poll failed",
			slog.String("error", err.Error()),
			slog.Int("created", res.Created),
			slog.Int64("cursor", res.Cursor),
		)
		cancel()
		stop()
		os.Exit(1)
	}

	logger.Info("deposit poll completed",
		slog.Int("found", res.Found),
		slog.Int("created", res.Created),
		slog.Int64("cursor", res.Cursor),
	)
}
