package engine

import (
	"fmt"

	"github.com/lgbarn/chess-go/internal/chess"
	"github.com/lgbarn/chess-go/internal/errors"
)

// FindKing finds the king of the given colour on the board.
func FindKing(board *chess.Board, colour chess.Colour) (chess.Square, error) {
	sq := board.Find(colour, chess.King)
	if sq == chess.NoSquare {
		return chess.NoSquare, fmt.Errorf("%s: %w", colour, errors.ErrMissingKing)
	}
	return sq, nil
}

// CheckKings verifies that each colour has exactly one king.
func CheckKings(board *chess.Board) error {
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		switch n := board.Count(colour, chess.King); {
		case n == 0:
			return fmt.Errorf("%s: %w", colour, errors.ErrMissingKing)
		case n > 1:
			return fmt.Errorf("%s has %d kings: %w", colour, n, errors.ErrExtraKing)
		}
	}
	return nil
}

// CheckCount returns how many opposing pieces attack the colour's king.
// Zero means the king is not in check. A board without that king is a
// caller error and reported as ErrMissingKing.
func CheckCount(board *chess.Board, colour chess.Colour, moveCount uint) (uint, error) {
	king, err := FindKing(board, colour)
	if err != nil {
		return 0, err
	}
	return attackers(board, king, colour.Opposite(), moveCount), nil
}

// IsInCheck returns true if the given colour's king is in check.
func IsInCheck(board *chess.Board, colour chess.Colour, moveCount uint) (bool, error) {
	n, err := CheckCount(board, colour, moveCount)
	return n > 0, err
}

// attackers counts the pieces of byColour that have a generated move onto sq.
func attackers(board *chess.Board, sq chess.Square, byColour chess.Colour, moveCount uint) uint {
	var count uint
	for _, origin := range board.Squares(byColour) {
		if _, ok := FindTarget(LegalMovesFrom(board, origin, moveCount, 0), sq); ok {
			count++
		}
	}
	return count
}
