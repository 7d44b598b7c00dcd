package engine

import (
	"github.com/lgbarn/chess-go/internal/chess"
	"github.com/lgbarn/chess-go/internal/errors"
)

// State is the position's status for the side to move.
type State int

const (
	Ongoing State = iota
	Check
	Checkmate
	Stalemate
)

// String returns the name of the state.
func (s State) String() string {
	switch s {
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	}
	return "ongoing"
}

// HasEscape reports whether any move of the colour leaves its king unattacked.
// Each trial starts from a fresh copy of board on scratch, so trials never
// see each other's changes.
func HasEscape(board, scratch *chess.Board, colour chess.Colour, moveCount, checkCount uint) (bool, error) {
	for _, origin := range board.Squares(colour) {
		for _, m := range LegalMovesFrom(board, origin, moveCount, checkCount) {
			_, err := TryMove(board, scratch, origin, m.Target, moveCount, checkCount)
			if err == nil {
				return true, nil
			}
			if !errors.Is(err, errors.ErrSelfCheck) {
				return false, err
			}
		}
	}
	return false, nil
}

// IsStalemate reports whether the colour has no move that keeps its king
// safe. Whether the colour is in check is the caller's concern; see
// StalemateFor.
func IsStalemate(board *chess.Board, colour chess.Colour, moveCount uint) (bool, error) {
	var scratch chess.Board
	return isStalemate(board, &scratch, colour, moveCount)
}

func isStalemate(board, scratch *chess.Board, colour chess.Colour, moveCount uint) (bool, error) {
	escape, err := HasEscape(board, scratch, colour, moveCount, 0)
	return !escape, err
}

// StalemateFor returns true if the colour is not in check and has no move
// that keeps its king safe.
func StalemateFor(board, scratch *chess.Board, colour chess.Colour, moveCount uint) (bool, error) {
	checkCount, err := CheckCount(board, colour, moveCount)
	if err != nil || checkCount > 0 {
		return false, err
	}
	return isStalemate(board, scratch, colour, moveCount)
}

// IsCheckmate returns true if the colour is in check with no escape.
func IsCheckmate(board, scratch *chess.Board, colour chess.Colour, moveCount uint) (bool, error) {
	checkCount, err := CheckCount(board, colour, moveCount)
	if err != nil || checkCount == 0 {
		return false, err
	}
	escape, err := HasEscape(board, scratch, colour, moveCount, checkCount)
	return !escape, err
}

// Evaluate returns the state of the position for the colour to move along
// with the current check count.
func Evaluate(board, scratch *chess.Board, colour chess.Colour, moveCount uint) (State, uint, error) {
	checkCount, err := CheckCount(board, colour, moveCount)
	if err != nil {
		return Ongoing, 0, err
	}

	if checkCount == 0 {
		stalemate, err := isStalemate(board, scratch, colour, moveCount)
		if err != nil || !stalemate {
			return Ongoing, 0, err
		}
		return Stalemate, 0, nil
	}

	escape, err := HasEscape(board, scratch, colour, moveCount, checkCount)
	if err != nil {
		return Ongoing, checkCount, err
	}
	if !escape {
		return Checkmate, checkCount, nil
	}
	return Check, checkCount, nil
}
