package engine

import (
	"testing"

	"github.com/lgbarn/chess-go/internal/chess"
)

// sq converts a coordinate such as "e2" to a Square, failing the test on error.
func sq(t *testing.T, s string) chess.Square {
	t.Helper()
	square, err := chess.ParseSquare(s)
	if err != nil {
		t.Fatalf("ParseSquare(%q) failed: %v", s, err)
	}
	return square
}

// mustFEN builds a board from a FEN string, failing the test on error.
func mustFEN(t *testing.T, fen string) (*chess.Board, Setup) {
	t.Helper()
	board, setup, err := NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("NewBoardFromFEN(%q) failed: %v", fen, err)
	}
	return board, setup
}

// targets lists the target squares of moves as coordinates.
func targets(moves []chess.MoveRecord) []string {
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		out = append(out, m.Target.String())
	}
	return out
}
