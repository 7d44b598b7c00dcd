package config

import (
	"fmt"

	"github.com/lgbarn/chess-go/internal/errors"
)

// LogConfig holds settings for the structured logger.
type LogConfig struct {
	// Level is one of debug, info, warn or error
	Level string `yaml:"level"`

	// Format is legacy, json or console
	Format string `yaml:"format"`

	// Console enables logging to stderr
	Console bool `yaml:"console"`

	// File is an optional log file path; empty disables file logging
	File string `yaml:"file"`

	// Caller adds the calling file and line to each entry
	Caller bool `yaml:"caller"`
}

// NewLogConfig creates a LogConfig with default values.
// Logging is quiet by default: warnings and errors only, on the console.
func NewLogConfig() *LogConfig {
	return &LogConfig{
		Level:   "warn",
		Format:  "console",
		Console: true,
	}
}

// Validate checks that the log configuration is valid.
func (l *LogConfig) Validate() error {
	switch l.Format {
	case "legacy", "json", "console":
	default:
		return fmt.Errorf("unknown log format %q: %w", l.Format, errors.ErrInvalidConfig)
	}
	switch l.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown log level %q: %w", l.Level, errors.ErrInvalidConfig)
	}
	return nil
}
