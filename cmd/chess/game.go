package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/lgbarn/chess-go/internal/chess"
	"github.com/lgbarn/chess-go/internal/config"
	"github.com/lgbarn/chess-go/internal/errors"
	"github.com/lgbarn/chess-go/internal/obslog"
	"github.com/lgbarn/chess-go/internal/output"
	"github.com/lgbarn/chess-go/internal/session"
	"github.com/lgbarn/chess-go/internal/store"
	"github.com/lgbarn/chess-go/internal/transport"
)

const helpText = `  e2          select the piece on e2, or move the selected piece to e2
  e2 e4       move the piece on e2 to e4
  q r b n     choose the promotion piece
  clear       drop the current selection
  save [id]   save the game
  load [id]   load a saved game by ID or file path
  ff, quit    forfeit the game
  ?, help     show this help
`

// game drives a session from typed lines, rendering after every change.
// With a peer, the opponent's moves arrive over the network instead.
type game struct {
	cfg *config.Config
	s   *session.Session
	in  *bufio.Scanner
	out io.Writer

	store  store.Store
	peer   *transport.Peer
	server *transport.Server
}

func newGame(cfg *config.Config, s *session.Session, in io.Reader) *game {
	return &game{
		cfg: cfg,
		s:   s,
		in:  bufio.NewScanner(in),
		out: cfg.Output,
	}
}

// loop plays until the game ends or the input runs out.
func (g *game) loop(ctx context.Context) error {
	g.publish()
	g.render()

	for !g.s.Status().Over() {
		if err := ctx.Err(); err != nil {
			return err
		}

		var err error
		if g.peer != nil && g.s.Turn() != g.peer.Colour() {
			err = g.remoteTurn(ctx)
		} else {
			err = g.localTurn(ctx)
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}

	fmt.Fprintln(g.out)
	snap := g.s.Snapshot()
	output.WriteHistory(g.out, snap.History, startTurn(snap) == chess.Black, 80)
	return nil
}

// localTurn reads and performs one typed line. Mistakes are reported to
// the player and do not end the game.
func (g *game) localTurn(ctx context.Context) error {
	fmt.Fprint(g.out, prompt(g.s))
	line, ok := g.readLine()
	if !ok {
		if g.peer == nil {
			return io.EOF
		}
		// Leaving a network game forfeits it.
		line = "ff"
	}

	before := len(g.s.History())
	cmd, err := g.s.ApplyLine(line)
	if err != nil {
		fmt.Fprintf(g.out, "%v\n", err)
		return nil
	}

	switch cmd.Type {
	case session.CmdHelp:
		fmt.Fprint(g.out, helpText)
		return nil
	case session.CmdSave:
		g.save(ctx, cmd.Arg)
		return nil
	case session.CmdLoad:
		g.load(ctx, cmd.Arg)
		return nil
	}

	if err := g.sendSince(ctx, before); err != nil {
		return err
	}
	g.publish()
	g.render()
	if !ok {
		return io.EOF
	}
	return nil
}

func (g *game) readLine() (string, bool) {
	if !g.in.Scan() {
		if err := g.in.Err(); err != nil {
			obslog.L().Warn("input_failed", zap.Error(err))
		}
		return "", false
	}
	return g.in.Text(), true
}

// remoteTurn applies one line from the opponent.
func (g *game) remoteTurn(ctx context.Context) error {
	line, err := g.peer.Receive(ctx)
	if errors.Is(err, errors.ErrPeerClosed) {
		fmt.Fprintln(g.out, "Your opponent left the game.")
		g.s.Resign(g.peer.Colour())
		g.publish()
		return nil
	}
	if err != nil {
		return err
	}
	if _, err := g.s.ApplyLine(line); err != nil {
		return fmt.Errorf("opponent sent %q: %w", line, err)
	}
	g.publish()
	g.render()
	return nil
}

// sendSince sends the opponent every history entry from index from.
func (g *game) sendSince(ctx context.Context, from int) error {
	if g.peer == nil {
		return nil
	}
	for _, entry := range g.s.History()[from:] {
		if err := g.peer.Send(ctx, entry); err != nil {
			return err
		}
	}
	return nil
}

func (g *game) publish() {
	if g.server != nil {
		g.server.Publish(g.s.Snapshot())
	}
}

func (g *game) render() {
	if err := output.RenderBoard(g.out, g.s.Snapshot(), g.cfg.Display); err != nil {
		obslog.L().Warn("render_failed", zap.Error(err))
	}
}

func (g *game) openStore() (store.Store, error) {
	if g.store == nil {
		st, err := store.New(g.cfg.Store)
		if err != nil {
			return nil, err
		}
		g.store = st
	}
	return g.store, nil
}

func (g *game) save(ctx context.Context, id string) {
	if id == "" {
		id = g.s.ID
	}
	st, err := g.openStore()
	if err == nil {
		err = st.Save(ctx, id, g.s.Snapshot())
	}
	if err != nil {
		fmt.Fprintf(g.out, "Save failed: %v\n", err)
		return
	}
	fmt.Fprintf(g.out, "Saved game %s\n", id)
}

func (g *game) load(ctx context.Context, ref string) {
	if g.peer != nil {
		fmt.Fprintln(g.out, "Games cannot be loaded during a network game.")
		return
	}
	if ref == "" {
		ref = g.s.ID
	}
	st, err := g.openStore()
	if err != nil {
		fmt.Fprintf(g.out, "Load failed: %v\n", err)
		return
	}
	snap, _, err := loadSnapshot(ctx, g.cfg, st, ref)
	if err != nil {
		fmt.Fprintf(g.out, "Load failed: %v\n", err)
		return
	}
	if err := g.s.Restore(snap); err != nil {
		fmt.Fprintf(g.out, "Load failed: %v\n", err)
		return
	}
	fmt.Fprintf(g.out, "Loaded game %s\n", ref)
	g.render()
}

func prompt(s *session.Session) string {
	if s.Mode() == session.PromotionMode {
		return "promote (q/r/b/n)> "
	}
	return strings.ToLower(s.Turn().String()) + "> "
}

// startTurn works out who moved first from the number of moves in the
// history.
func startTurn(snap session.Snapshot) chess.Colour {
	moves := 0
	for _, entry := range snap.History {
		if strings.Contains(entry, " ") {
			moves++
		}
	}
	if moves%2 == 0 {
		return snap.Turn
	}
	return snap.Turn.Opposite()
}

func trimExt(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
