package config

import (
	"io"
	"time"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithLogLevel sets the log level.
func (b *ConfigBuilder) WithLogLevel(level string) *ConfigBuilder {
	b.cfg.Log.Level = level
	return b
}

// WithLogFile enables logging to a file.
func (b *ConfigBuilder) WithLogFile(path string) *ConfigBuilder {
	b.cfg.Log.File = path
	return b
}

// WithFileStore selects the file store rooted at dir.
func (b *ConfigBuilder) WithFileStore(dir string) *ConfigBuilder {
	b.cfg.Store.Backend = BackendFile
	b.cfg.Store.Dir = dir
	return b
}

// WithRedisStore selects the redis store.
func (b *ConfigBuilder) WithRedisStore(addr string, db int, ttl time.Duration) *ConfigBuilder {
	b.cfg.Store.Backend = BackendRedis
	b.cfg.Store.RedisAddr = addr
	b.cfg.Store.RedisDB = db
	b.cfg.Store.TTL = ttl
	return b
}

// WithListen sets the address network games are hosted on.
func (b *ConfigBuilder) WithListen(addr string) *ConfigBuilder {
	b.cfg.Network.Listen = addr
	return b
}

// WithWorkers sets the number of batch replay workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Replay.Workers = n
	return b
}

// WithUnicode enables chess glyphs in board output.
func (b *ConfigBuilder) WithUnicode(enabled bool) *ConfigBuilder {
	b.cfg.Display.Unicode = enabled
	return b
}

// WithJSONOutput enables JSON output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	b.cfg.Display.JSON = enabled
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.Output = w
	return b
}
