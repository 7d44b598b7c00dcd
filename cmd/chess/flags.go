// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"

	"github.com/lgbarn/chess-go/internal/config"
)

var (
	// Game sources
	loadGame   = flag.String("load", "", "Resume a saved game by ID or snapshot file path")
	replayFile = flag.String("replay", "", "Replay a .pgn or .raw file, then keep playing if it is unfinished")
	startFEN   = flag.String("fen", "", "Start from a FEN position")
	batchMode  = flag.Bool("batch", false, "Replay every file argument in parallel and report the results")

	// Network play
	hostAddr = flag.String("host", "", "Host a game on this address, e.g. :8080")
	joinURL  = flag.String("join", "", "Join a hosted game, e.g. ws://localhost:8080/play")

	// Configuration
	configFile = flag.String("config", "", "YAML configuration file")
	storeDir   = flag.String("store", "", "Directory for saved games")
	unicode    = flag.Bool("unicode", false, "Draw pieces with Unicode glyphs")
	jsonOutput = flag.Bool("json", false, "Write batch results as JSON")
	workers    = flag.Int("workers", 0, "Batch replay workers (0 = one per CPU)")
	logLevel   = flag.String("loglevel", "", "Log level: debug, info, warn, error")

	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// loadConfig builds the configuration from the -config file or the
// defaults, then CHESS_* variables, then flags.
func loadConfig() (*config.Config, error) {
	cfg := config.NewConfig()
	if *configFile != "" {
		var err error
		if cfg, err = config.LoadFile(*configFile); err != nil {
			return nil, err
		}
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration: %w", err)
	}
	return cfg, nil
}

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	if *storeDir != "" {
		cfg.Store.Backend = config.BackendFile
		cfg.Store.Dir = *storeDir
	}
	if *hostAddr != "" {
		cfg.Network.Listen = *hostAddr
	}
	if *unicode {
		cfg.Display.Unicode = true
	}
	if *jsonOutput {
		cfg.Display.JSON = true
	}
	if *workers > 0 {
		cfg.Replay.Workers = *workers
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
}
