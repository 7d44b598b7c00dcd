// Package store persists session snapshots under a game ID.
package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/lgbarn/chess-go/internal/config"
	"github.com/lgbarn/chess-go/internal/errors"
	"github.com/lgbarn/chess-go/internal/session"
)

// Store saves and loads snapshots by game ID.
type Store interface {
	Save(ctx context.Context, id string, snap session.Snapshot) error
	Load(ctx context.Context, id string) (session.Snapshot, error)
	List(ctx context.Context) ([]string, error)
	Delete(ctx context.Context, id string) error
}

// New opens the store selected by cfg.
func New(cfg config.StoreConfig) (Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	switch cfg.Backend {
	case config.BackendRedis:
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, DB: cfg.RedisDB})
		return NewRedisStore(rdb, cfg.KeyPrefix, cfg.TTL), nil
	default:
		return NewFileStore(cfg.Dir)
	}
}

// checkID rejects IDs that could escape a directory or a key namespace.
func checkID(id string) error {
	if id == "" || strings.ContainsAny(id, `/\: `) || strings.Contains(id, "..") {
		return fmt.Errorf("invalid game id %q: %w", id, errors.ErrNotFound)
	}
	return nil
}
