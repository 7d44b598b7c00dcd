package engine

import "github.com/lgbarn/chess-go/internal/chess"

// canOccupy checks that both squares are on the board, origin holds a piece
// and target is either empty or holds an opposing piece.
func canOccupy(board *chess.Board, origin, target chess.Square) bool {
	if !origin.Valid() || !target.Valid() || origin == target {
		return false
	}
	mover := board.Get(origin)
	if mover.IsEmpty() {
		return false
	}
	occupant := board.Get(target)
	return occupant.IsEmpty() || occupant.Colour != mover.Colour
}

// isPathClear checks that every square strictly between origin and the
// target described by g is empty. g must be a line or an exact diagonal.
func isPathClear(board *chess.Board, origin chess.Square, g chess.MoveGeometry) bool {
	df, dr := g.Direction.Step()
	steps := g.FileDistance
	if g.RankDistance > steps {
		steps = g.RankDistance
	}

	file, rank := origin.File(), origin.Rank()
	for i := 1; i < steps; i++ {
		if !board.IsEmpty(chess.SquareAt(file+i*df, rank+i*dr)) {
			return false
		}
	}
	return true
}

// isRankClear checks that every square strictly between two files on one
// rank is empty.
func isRankClear(board *chess.Board, rank, fromFile, toFile int) bool {
	step := sign(toFile - fromFile)
	for file := fromFile + step; file != toFile; file += step {
		if !board.IsEmpty(chess.SquareAt(file, rank)) {
			return false
		}
	}
	return true
}
