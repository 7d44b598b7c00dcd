// Package config provides configuration for the chess program.
package config

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lgbarn/chess-go/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	Log     LogConfig     `yaml:"log"`
	Store   StoreConfig   `yaml:"store"`
	Network NetworkConfig `yaml:"network"`
	Replay  ReplayConfig  `yaml:"replay"`
	Display DisplayConfig `yaml:"display"`

	// Output receives rendered boards and prompts.
	Output io.Writer `yaml:"-"`
}

// GlobalConfig is the global configuration instance.
var GlobalConfig *Config

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Log:     *NewLogConfig(),
		Store:   *NewStoreConfig(),
		Network: *NewNetworkConfig(),
		Replay:  *NewReplayConfig(),
		Display: *NewDisplayConfig(),
		Output:  os.Stdout,
	}
}

// Init initializes the global configuration.
func Init() {
	GlobalConfig = NewConfig()
}

func init() {
	Init()
}

// LoadFile reads a YAML configuration file on top of the defaults.
// Keys missing from the file keep their default values.
func LoadFile(path string) (*Config, error) {
	cfg := NewConfig()
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %v: %w", path, err, errors.ErrInvalidConfig)
	}
	return cfg, nil
}

// ApplyEnv overrides settings from CHESS_* environment variables.
func (c *Config) ApplyEnv() error {
	setString(&c.Log.Level, "CHESS_LOG_LEVEL")
	setString(&c.Log.Format, "CHESS_LOG_FORMAT")
	setString(&c.Log.File, "CHESS_LOG_FILE")
	setString(&c.Store.Backend, "CHESS_STORE_BACKEND")
	setString(&c.Store.Dir, "CHESS_STORE_DIR")
	setString(&c.Store.RedisAddr, "CHESS_REDIS_ADDR")
	setString(&c.Store.KeyPrefix, "CHESS_REDIS_PREFIX")
	setString(&c.Network.Listen, "CHESS_LISTEN")

	if v := getenv("CHESS_LOG_CONSOLE"); v != "" {
		c.Log.Console = strings.EqualFold(v, "true")
	}
	if v := getenv("CHESS_UNICODE"); v != "" {
		c.Display.Unicode = strings.EqualFold(v, "true")
	}
	if v := getenv("CHESS_REDIS_DB"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("CHESS_REDIS_DB=%q: %w", v, errors.ErrInvalidConfig)
		}
		c.Store.RedisDB = n
	}
	if v := getenv("CHESS_STORE_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("CHESS_STORE_TTL=%q: %w", v, errors.ErrInvalidConfig)
		}
		c.Store.TTL = d
	}
	if v := getenv("CHESS_REPLAY_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("CHESS_REPLAY_WORKERS=%q: %w", v, errors.ErrInvalidConfig)
		}
		c.Replay.Workers = n
	}
	return nil
}

// Validate checks every section of the configuration.
func (c *Config) Validate() error {
	if err := c.Log.Validate(); err != nil {
		return err
	}
	if err := c.Store.Validate(); err != nil {
		return err
	}
	if err := c.Network.Validate(); err != nil {
		return err
	}
	return c.Replay.Validate()
}

func getenv(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func setString(dst *string, key string) {
	if v := getenv(key); v != "" {
		*dst = v
	}
}
