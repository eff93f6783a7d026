// Package redis keeps the deposit poll cursor in Redis.
package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/libra-works/internal/config"
)

// NewClient creates a Redis client and pings it.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis %s: %w", cfg.Addr, err)
	}
	return rdb, nil
}

// CursorStore persists the id of the last processed deposit request.
type CursorStore struct {
	client redis.Cmdable
	key    string
}

// NewCursorStore creates a CursorStore under key.
func NewCursorStore(client redis.Cmdable, key string) *CursorStore {
	return &CursorStore{client: client, key: key}
}

// Get returns the stored cursor, or 0 when none was stored yet.
func (s *CursorStore) Get(ctx context.Context) (int64, error) {
	raw, err := s.client.Get(ctx, s.key).Result()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("get cursor %s: %w", s.key, err)
	}
	return parseCursor(raw)
}

// Set stores the cursor without expiry.
func (s *CursorStore) Set(ctx context.Context, cursor int64) error {
	if err := s.client.Set(ctx, s.key, strconv.FormatInt(cursor, 10), 0).Err(); err != nil {
		return fmt.Errorf("set cursor %s: %w", s.key, err)
	}
	return nil
}

func parseCursor(raw string) (int64, error) {
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("invalid cursor value %q", raw)
	}
	return v, nil
}
