// Package engine provides chess move generation, validation and board manipulation.
package engine

import (
	"fmt"

	"github.com/lgbarn/chess-go/internal/chess"
	"github.com/lgbarn/chess-go/internal/errors"
)

// ApplyMove classifies the move from origin to target and, unless it is
// Illegal, performs it on the board. The moved piece (and the rook when
// castling) records moveCount as its LastMoveIndex. Promotion leaves the pawn
// on target; the caller substitutes the new piece with Promote.
func ApplyMove(board *chess.Board, moveCount uint, origin, target chess.Square, checkCount uint) chess.MoveKind {
	kind := Classify(board, origin, target, moveCount, checkCount)

	switch kind {
	case chess.Illegal:
		return kind

	case chess.Castle:
		rookFrom, rookTo, _ := castleRook(board, origin, target, checkCount)
		relocate(board, rookFrom, rookTo, moveCount)

	case chess.EnPassant:
		board.Clear(enPassantVictim(board.Get(origin).Colour, target))
	}

	relocate(board, origin, target, moveCount)
	return kind
}

// relocate moves the piece on from to to, updating its move counters.
func relocate(board *chess.Board, from, to chess.Square, moveCount uint) {
	piece := board.Get(from)
	piece.MoveCount++
	piece.LastMoveIndex = moveCount
	board.Clear(from)
	board.Set(to, piece)
}

// Promote replaces the pawn on sq with a piece of the given kind.
func Promote(board *chess.Board, sq chess.Square, kind chess.Kind) error {
	switch kind {
	case chess.Queen, chess.Rook, chess.Bishop, chess.Knight:
	default:
		return fmt.Errorf("%s: %w", kind, errors.ErrInvalidPromotion)
	}
	pawn := board.Get(sq)
	if pawn.Kind != chess.Pawn {
		return fmt.Errorf("no pawn on %s: %w", sq, errors.ErrInvalidPromotion)
	}
	pawn.Kind = kind
	board.Set(sq, pawn)
	return nil
}

// TryMove plays the move on scratch, after re-syncing scratch from board, and
// reports its kind. A move that leaves the mover's king attacked, or castles
// across an attacked square, fails with ErrSelfCheck. board is never changed.
func TryMove(board, scratch *chess.Board, origin, target chess.Square, moveCount, checkCount uint) (chess.MoveKind, error) {
	colour := board.Get(origin).Colour
	kind := Classify(board, origin, target, moveCount, checkCount)
	if kind == chess.Illegal {
		return kind, fmt.Errorf("%s %s: %w", origin, target, errors.ErrIllegalMove)
	}

	if kind == chess.Castle {
		transit := castleTransit(origin, target)
		*scratch = *board
		relocate(scratch, origin, transit, moveCount)
		if err := ensureKingSafe(scratch, colour, moveCount+1); err != nil {
			return kind, errors.Wrapf(err, "castling through %s", transit)
		}
	}

	*scratch = *board
	ApplyMove(scratch, moveCount, origin, target, checkCount)
	if err := ensureKingSafe(scratch, colour, moveCount+1); err != nil {
		return kind, errors.Wrapf(err, "%s %s", origin, target)
	}
	return kind, nil
}

// ensureKingSafe fails with ErrSelfCheck when the colour's king is attacked.
func ensureKingSafe(board *chess.Board, colour chess.Colour, moveCount uint) error {
	n, err := CheckCount(board, colour, moveCount)
	if err != nil {
		return err
	}
	if n > 0 {
		return errors.ErrSelfCheck
	}
	return nil
}
