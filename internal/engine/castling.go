package engine

import "github.com/lgbarn/chess-go/internal/chess"

func (kingMoves) Classify(board *chess.Board, origin, target chess.Square, _, checkCount uint) chess.MoveKind {
	if !origin.Valid() || !target.Valid() {
		return chess.Illegal
	}
	if _, _, ok := castleRook(board, origin, target, checkCount); ok {
		return chess.Castle
	}

	if !canOccupy(board, origin, target) {
		return chess.Illegal
	}
	g := chess.Geometry(origin, target)
	if g.FileDistance > 1 || g.RankDistance > 1 {
		return chess.Illegal
	}
	return occupancyKind(board, target)
}

// castleRook checks whether the king on origin may castle to target and, if
// so, returns the rook's current square and the square it moves to.
// Kingside the rook stands one file beyond target, queenside two files.
func castleRook(board *chess.Board, origin, target chess.Square, checkCount uint) (from, to chess.Square, ok bool) {
	king := board.Get(origin)
	if king.Kind != chess.King || checkCount != 0 || king.MoveCount != 0 {
		return chess.NoSquare, chess.NoSquare, false
	}
	g := chess.Geometry(origin, target)
	if g.FileDistance != 2 || g.RankDistance != 0 {
		return chess.NoSquare, chess.NoSquare, false
	}

	rookFile, step := g.TargetFile+1, -1
	if g.Direction == chess.West {
		rookFile, step = g.TargetFile-2, 1
	}
	from = chess.SquareAt(rookFile, g.OriginRank)
	if from == chess.NoSquare {
		return chess.NoSquare, chess.NoSquare, false
	}
	rook := board.Get(from)
	if !rook.Is(king.Colour, chess.Rook) || rook.MoveCount != 0 {
		return chess.NoSquare, chess.NoSquare, false
	}
	if !isRankClear(board, g.OriginRank, g.OriginFile, rookFile) {
		return chess.NoSquare, chess.NoSquare, false
	}
	return from, chess.SquareAt(g.TargetFile+step, g.OriginRank), true
}

// castleTransit returns the square the king crosses on its way to target.
func castleTransit(origin, target chess.Square) chess.Square {
	return chess.SquareAt((origin.File()+target.File())/2, origin.Rank())
}
