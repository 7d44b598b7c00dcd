package engine

import "github.com/lgbarn/chess-go/internal/chess"

// Offset tables for the stepping pieces, as {file, rank} deltas.
var (
	pawnOffsets = [][2]int{
		{-1, 1}, {0, 1}, {1, 1}, {0, 2},
		{-1, -1}, {0, -1}, {1, -1}, {0, -2},
	}
	knightOffsets = [][2]int{
		{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1},
	}
	kingOffsets = [][2]int{
		{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1},
		{2, 0}, {-2, 0},
	}
)

// LegalMovesFrom generates every move the piece on origin can make. Moves are
// classified by the piece's rules only; whether a move exposes the mover's
// own king is decided later by TryMove.
func LegalMovesFrom(board *chess.Board, origin chess.Square, moveCount, checkCount uint) []chess.MoveRecord {
	piece := board.Get(origin)
	classifier := MovesFor(piece.Kind)

	switch piece.Kind {
	case chess.Pawn:
		return offsetMoves(board, origin, classifier, pawnOffsets, moveCount, checkCount)
	case chess.Knight:
		return offsetMoves(board, origin, classifier, knightOffsets, moveCount, checkCount)
	case chess.King:
		return offsetMoves(board, origin, classifier, kingOffsets, moveCount, checkCount)
	case chess.Rook:
		return rayMoves(board, origin, classifier, chess.StraightDirections[:], moveCount, checkCount)
	case chess.Bishop:
		return rayMoves(board, origin, classifier, chess.DiagonalDirections[:], moveCount, checkCount)
	case chess.Queen:
		moves := rayMoves(board, origin, classifier, chess.StraightDirections[:], moveCount, checkCount)
		return append(moves, rayMoves(board, origin, classifier, chess.DiagonalDirections[:], moveCount, checkCount)...)
	}
	return nil
}

// offsetMoves tries one step per table entry, skipping off-board targets.
func offsetMoves(board *chess.Board, origin chess.Square, classifier Classifier, offsets [][2]int, moveCount, checkCount uint) []chess.MoveRecord {
	var moves []chess.MoveRecord
	for _, offset := range offsets {
		target := chess.SquareAt(origin.File()+offset[0], origin.Rank()+offset[1])
		if target == chess.NoSquare {
			continue
		}
		if kind := classifier.Classify(board, origin, target, moveCount, checkCount); kind != chess.Illegal {
			moves = append(moves, chess.MoveRecord{Kind: kind, Target: target})
		}
	}
	return moves
}

// rayMoves walks each direction until the first illegal square, keeping a
// capture as the ray's last move.
func rayMoves(board *chess.Board, origin chess.Square, classifier Classifier, dirs []chess.Direction, moveCount, checkCount uint) []chess.MoveRecord {
	var moves []chess.MoveRecord
	for _, dir := range dirs {
		df, dr := dir.Step()
		file, rank := origin.File()+df, origin.Rank()+dr
		for chess.OnBoard(file, rank) {
			target := chess.SquareAt(file, rank)
			kind := classifier.Classify(board, origin, target, moveCount, checkCount)
			if kind == chess.Illegal {
				break
			}
			moves = append(moves, chess.MoveRecord{Kind: kind, Target: target})
			if kind == chess.Capture {
				break // Blocked
			}
			file += df
			rank += dr
		}
	}
	return moves
}

// MovesForColour generates the moves of every piece of a colour, keyed by origin.
func MovesForColour(board *chess.Board, colour chess.Colour, moveCount, checkCount uint) map[chess.Square][]chess.MoveRecord {
	all := make(map[chess.Square][]chess.MoveRecord)
	for _, sq := range board.Squares(colour) {
		if moves := LegalMovesFrom(board, sq, moveCount, checkCount); len(moves) > 0 {
			all[sq] = moves
		}
	}
	return all
}

// FindTarget returns the move to target, if moves contains one.
func FindTarget(moves []chess.MoveRecord, target chess.Square) (chess.MoveRecord, bool) {
	for _, m := range moves {
		if m.Target == target {
			return m, true
		}
	}
	return chess.MoveRecord{}, false
}
