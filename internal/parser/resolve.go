package parser

import (
	"github.com/lgbarn/chess-go/internal/chess"
	"github.com/lgbarn/chess-go/internal/engine"
)

// ResolveOrigin finds the square the SAN move starts from. Squares are
// scanned in index order for the stated piece of colour that satisfies the
// move's origin constraint and has a generated move to the destination. A
// candidate whose move keeps its own king safe wins over one that does not,
// so a pinned piece never takes the move from a free one.
func ResolveOrigin(board *chess.Board, move SanMove, colour chess.Colour, moveCount, checkCount uint) (chess.Square, bool) {
	target := move.Destination(colour)
	if !target.Valid() {
		return chess.NoSquare, false
	}

	var scratch chess.Board
	fallback := chess.NoSquare
	for _, sq := range board.Squares(colour) {
		if board.Get(sq).Kind != move.Piece || !move.matchesOrigin(sq) {
			continue
		}
		m, ok := engine.FindTarget(engine.LegalMovesFrom(board, sq, moveCount, checkCount), target)
		if !ok || (move.Castle != NoCastle && m.Kind != chess.Castle) {
			continue
		}
		if _, err := engine.TryMove(board, &scratch, sq, target, moveCount, checkCount); err == nil {
			return sq, true
		}
		if fallback == chess.NoSquare {
			fallback = sq
		}
	}
	return fallback, fallback != chess.NoSquare
}
