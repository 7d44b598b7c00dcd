package testutil

import (
	"strings"
	"testing"

	"github.com/lgbarn/chess-go/internal/chess"
	"github.com/lgbarn/chess-go/internal/engine"
)

// MustSquare parses a coordinate such as "e4".
// It calls t.Fatal if the coordinate is invalid.
func MustSquare(t *testing.T, s string) chess.Square {
	t.Helper()
	sq, err := chess.ParseSquare(s)
	if err != nil {
		t.Fatalf("invalid square %q: %v", s, err)
	}
	return sq
}

// MustFEN builds a board from a FEN string.
// It calls t.Fatal if the FEN is invalid.
func MustFEN(t *testing.T, fen string) (*chess.Board, engine.Setup) {
	t.Helper()
	board, setup, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("invalid FEN %q: %v", fen, err)
	}
	return board, setup
}

// PlayMoves plays coordinate moves such as "e2e4" or "e7e8q" on board,
// starting at moveCount, and returns the move count after the last one.
// Every move must be legal and keep the mover's king safe; otherwise the
// test fails.
func PlayMoves(t *testing.T, board *chess.Board, moveCount uint, moves string) uint {
	t.Helper()
	var scratch chess.Board
	for _, m := range strings.Fields(moves) {
		if len(m) != 4 && len(m) != 5 {
			t.Fatalf("malformed move %q", m)
		}
		origin, target := MustSquare(t, m[0:2]), MustSquare(t, m[2:4])
		colour := board.Get(origin).Colour
		checkCount, err := engine.CheckCount(board, colour, moveCount)
		if err != nil {
			t.Fatalf("move %q: %v", m, err)
		}
		if _, err := engine.TryMove(board, &scratch, origin, target, moveCount, checkCount); err != nil {
			t.Fatalf("move %q: %v", m, err)
		}
		kind := engine.ApplyMove(board, moveCount, origin, target, checkCount)
		if kind == chess.Promotion {
			promo := chess.Queen
			if len(m) == 5 {
				promo = chess.KindFromLetter(m[4])
			}
			if err := engine.Promote(board, target, promo); err != nil {
				t.Fatalf("move %q: %v", m, err)
			}
		}
		moveCount++
	}
	return moveCount
}
