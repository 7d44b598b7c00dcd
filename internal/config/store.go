package config

import (
	"fmt"
	"time"

	"github.com/lgbarn/chess-go/internal/errors"
)

// Store backends.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
)

// StoreConfig holds settings for saved games.
type StoreConfig struct {
	// Backend selects the file or redis store
	Backend string `yaml:"backend"`

	// Dir is the directory of the file store
	Dir string `yaml:"dir"`

	// RedisAddr is the host:port of the redis server
	RedisAddr string `yaml:"redis_addr"`

	// RedisDB selects the redis database
	RedisDB int `yaml:"redis_db"`

	// KeyPrefix namespaces redis keys
	KeyPrefix string `yaml:"key_prefix"`

	// TTL expires saved games in redis; zero keeps them forever
	TTL time.Duration `yaml:"ttl"`
}

// NewStoreConfig creates a StoreConfig with default values.
func NewStoreConfig() *StoreConfig {
	return &StoreConfig{
		Backend:   BackendFile,
		Dir:       "saves",
		RedisAddr: "localhost:6379",
		KeyPrefix: "chess",
		TTL:       7 * 24 * time.Hour,
	}
}

// Validate checks that the store configuration is valid.
func (s *StoreConfig) Validate() error {
	switch s.Backend {
	case BackendFile:
		if s.Dir == "" {
			return fmt.Errorf("file store needs a directory: %w", errors.ErrInvalidConfig)
		}
	case BackendRedis:
		if s.RedisAddr == "" {
			return fmt.Errorf("redis store needs an address: %w", errors.ErrInvalidConfig)
		}
		if s.RedisDB < 0 {
			return fmt.Errorf("redis db %d: %w", s.RedisDB, errors.ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("unknown store backend %q: %w", s.Backend, errors.ErrInvalidConfig)
	}
	if s.TTL < 0 {
		return fmt.Errorf("negative store TTL: %w", errors.ErrInvalidConfig)
	}
	return nil
}
