package config

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-go/internal/errors"
)

// NetworkConfig holds settings for network play.
type NetworkConfig struct {
	// Listen is the address the host serves on
	Listen string `yaml:"listen"`

	// Path is the websocket route for the peer connection
	Path string `yaml:"path"`
}

// NewNetworkConfig creates a NetworkConfig with default values.
func NewNetworkConfig() *NetworkConfig {
	return &NetworkConfig{
		Listen: ":8080",
		Path:   "/play",
	}
}

// Validate checks that the network configuration is valid.
func (n *NetworkConfig) Validate() error {
	if !strings.HasPrefix(n.Path, "/") {
		return fmt.Errorf("websocket path %q must start with '/': %w", n.Path, errors.ErrInvalidConfig)
	}
	return nil
}
