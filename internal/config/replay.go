package config

import (
	"fmt"

	"github.com/lgbarn/chess-go/internal/errors"
)

// ReplayConfig holds settings for batch replays.
type ReplayConfig struct {
	// Workers is the number of replay workers; zero uses one per CPU
	Workers int `yaml:"workers"`

	// BufferSize is the capacity of the work and result queues
	BufferSize int `yaml:"buffer_size"`
}

// NewReplayConfig creates a ReplayConfig with default values.
func NewReplayConfig() *ReplayConfig {
	return &ReplayConfig{BufferSize: 16}
}

// Validate checks that the replay configuration is valid.
func (r *ReplayConfig) Validate() error {
	if r.Workers < 0 || r.BufferSize < 0 {
		return fmt.Errorf("replay workers %d, buffer %d: %w", r.Workers, r.BufferSize, errors.ErrInvalidConfig)
	}
	return nil
}
