package parser

import (
	"testing"

	"github.com/lgbarn/chess-go/internal/chess"
	"github.com/lgbarn/chess-go/internal/engine"
)

// testGame is a minimal Position that plays the events it is given.
type testGame struct {
	board      *chess.Board
	turn       chess.Colour
	moveCount  uint
	checkCount uint
}

func newTestGame() *testGame {
	return &testGame{board: chess.StandardBoard()}
}

func newTestGameFromFEN(t *testing.T, fen string) *testGame {
	t.Helper()
	board, setup, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("NewBoardFromFEN(%q) failed: %v", fen, err)
	}
	g := &testGame{board: board, turn: setup.Turn, moveCount: setup.MoveCount}
	g.checkCount, _ = engine.CheckCount(board, g.turn, g.moveCount)
	return g
}

func (g *testGame) Board() *chess.Board { return g.board }
func (g *testGame) Turn() chess.Colour  { return g.turn }
func (g *testGame) MoveCount() uint     { return g.moveCount }
func (g *testGame) CheckCount() uint    { return g.checkCount }

// play applies a MoveCoordinates event with both squares set.
func (g *testGame) play(t testing.TB, e Event) {
	t.Helper()
	kind := engine.ApplyMove(g.board, g.moveCount, e.Origin, e.Target, g.checkCount)
	if kind == chess.Illegal {
		t.Fatalf("line %d: %s (%v-%v) is illegal", e.Line, e.Text, e.Origin, e.Target)
	}
	if kind == chess.Promotion {
		promo := e.Promotion
		if promo == chess.None {
			promo = chess.Queen
		}
		if err := engine.Promote(g.board, e.Target, promo); err != nil {
			t.Fatalf("line %d: %v", e.Line, err)
		}
	}
	g.moveCount++
	g.turn = g.turn.Opposite()
	n, err := engine.CheckCount(g.board, g.turn, g.moveCount)
	if err != nil {
		t.Fatalf("line %d: %v", e.Line, err)
	}
	g.checkCount = n
}

// replay plays every move event and returns the event that ended the game
// along with the move texts played.
func replay(t testing.TB, r MoveReader, g *testGame) (Event, []string) {
	t.Helper()
	var played []string
	for i := 0; i < 1000; i++ {
		e := r.ReadNextMove(g)
		switch e.Type {
		case Comment:
			continue
		case MoveCoordinates:
			g.play(t, e)
			played = append(played, e.Text)
		default:
			return e, played
		}
	}
	t.Fatal("replay did not terminate")
	return Event{}, nil
}
