// chess is a two-player chess game for the terminal. It plays locally,
// resumes saved games, replays PGN and raw move files, and plays over a
// websocket between two machines.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"github.com/lgbarn/chess-go/internal/config"
	"github.com/lgbarn/chess-go/internal/engine"
	"github.com/lgbarn/chess-go/internal/errors"
	"github.com/lgbarn/chess-go/internal/obslog"
	"github.com/lgbarn/chess-go/internal/output"
	"github.com/lgbarn/chess-go/internal/session"
	"github.com/lgbarn/chess-go/internal/store"
	"github.com/lgbarn/chess-go/internal/transport"
	"github.com/lgbarn/chess-go/internal/worker"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess-go version %s\n", programVersion)
		os.Exit(0)
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := obslog.Init(cfg.Log); err != nil {
		fmt.Fprintf(os.Stderr, "Error setting up logging: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = obslog.L().Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, flag.Args(), os.Stdin); err != nil {
		obslog.L().Error("exit", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// run dispatches to the mode the flags select.
func run(ctx context.Context, cfg *config.Config, args []string, in io.Reader) error {
	if *batchMode {
		return runBatch(cfg, args)
	}
	if *joinURL != "" {
		return runJoin(ctx, cfg, *joinURL, in)
	}

	s, err := startSession(ctx, cfg)
	if err != nil {
		return err
	}
	g := newGame(cfg, s, in)

	if *hostAddr != "" {
		ln, err := net.Listen("tcp", cfg.Network.Listen)
		if err != nil {
			return fmt.Errorf("listening on %s: %w", cfg.Network.Listen, err)
		}
		return runHost(ctx, g, ln)
	}
	return g.loop(ctx)
}

// startSession creates the session the flags ask for: from a FEN, from a
// saved game, after a replay, or from the standard position.
func startSession(ctx context.Context, cfg *config.Config) (*session.Session, error) {
	switch {
	case *startFEN != "":
		board, setup, err := engine.NewBoardFromFEN(*startFEN)
		if err != nil {
			return nil, err
		}
		return session.New(session.WithBoard(board, setup))

	case *loadGame != "":
		snap, id, err := loadSnapshot(ctx, cfg, nil, *loadGame)
		if err != nil {
			return nil, err
		}
		s, err := session.New(session.WithID(id))
		if err != nil {
			return nil, err
		}
		if err := s.Restore(snap); err != nil {
			return nil, err
		}
		return s, nil

	case *replayFile != "":
		s, err := session.New()
		if err != nil {
			return nil, err
		}
		result, err := s.ReplayFile(*replayFile)
		if errors.Is(err, errors.ErrReplayTruncated) {
			fmt.Fprintf(cfg.Output, "Replayed %d moves; the game continues.\n", len(result.Moves))
			return s, nil
		}
		if err != nil {
			return nil, err
		}
		fmt.Fprintf(cfg.Output, "Replayed %d moves.\n", len(result.Moves))
		return s, nil
	}
	return session.New()
}

// loadSnapshot reads a saved game. ref is a snapshot file path when such a
// file exists, and a game ID in the configured store otherwise. The
// returned ID names the game for later saves.
func loadSnapshot(ctx context.Context, cfg *config.Config, st store.Store, ref string) (session.Snapshot, string, error) {
	if info, err := os.Stat(ref); err == nil && !info.IsDir() {
		snap, err := store.LoadFile(ref)
		return snap, trimExt(ref), err
	}
	if st == nil {
		var err error
		if st, err = store.New(cfg.Store); err != nil {
			return session.Snapshot{}, "", err
		}
	}
	snap, err := st.Load(ctx, ref)
	return snap, ref, err
}

// runBatch replays every file in args and writes one result per file.
func runBatch(cfg *config.Config, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("-batch needs at least one file")
	}
	results := worker.ReplayAll(cfg.Replay, args)

	w := output.NewResultWriter(cfg.Output, cfg.Display)
	failed := 0
	for _, r := range results {
		if r.Error != nil {
			failed++
		}
		if err := w.WriteResult(r); err != nil {
			return err
		}
	}
	if err := w.Close(); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d replays failed", failed, len(results))
	}
	return nil
}

// runHost serves the game on ln, waits for one opponent and plays White.
func runHost(ctx context.Context, g *game, ln net.Listener) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	srv := transport.NewServer(g.cfg.Network)
	serveErr := make(chan error, 1)
	go func() { serveErr <- srv.Serve(ctx, ln) }()

	g.server = srv
	g.publish()
	fmt.Fprintf(g.out, "Waiting for an opponent on %s%s\n", ln.Addr(), g.cfg.Network.Path)

	peer, err := srv.Accept(ctx)
	if err != nil {
		return err
	}
	defer peer.Close()
	g.peer = peer
	fmt.Fprintln(g.out, "Opponent joined. You play White.")

	if err := g.loop(ctx); err != nil {
		return err
	}
	cancel()
	return <-serveErr
}

// runJoin connects to a hosted game and plays Black.
func runJoin(ctx context.Context, cfg *config.Config, url string, in io.Reader) error {
	peer, err := transport.Dial(ctx, url)
	if err != nil {
		return err
	}
	defer peer.Close()

	s, err := session.New()
	if err != nil {
		return err
	}
	g := newGame(cfg, s, in)
	g.peer = peer
	fmt.Fprintf(g.out, "Joined. You play %s.\n", peer.Colour())
	return g.loop(ctx)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess [options] [files...]\n\n")
	fmt.Fprintf(os.Stderr, "A two-player chess game for the terminal.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nDuring a game, type:\n")
	fmt.Fprint(os.Stderr, helpText)
}
