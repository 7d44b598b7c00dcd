package engine

import "github.com/lgbarn/chess-go/internal/chess"

// Classifier decides what kind of move, if any, a piece on origin may make
// to target. moveCount is the global move counter and checkCount the number
// of pieces currently attacking the mover's king.
type Classifier interface {
	Classify(board *chess.Board, origin, target chess.Square, moveCount, checkCount uint) chess.MoveKind
}

type (
	noMoves     struct{}
	pawnMoves   struct{}
	knightMoves struct{}
	rookMoves   struct{}
	bishopMoves struct{}
	queenMoves  struct{}
	kingMoves   struct{}
)

// MovesFor returns the classifier for a piece kind.
func MovesFor(kind chess.Kind) Classifier {
	switch kind {
	case chess.Pawn:
		return pawnMoves{}
	case chess.Knight:
		return knightMoves{}
	case chess.Rook:
		return rookMoves{}
	case chess.Bishop:
		return bishopMoves{}
	case chess.Queen:
		return queenMoves{}
	case chess.King:
		return kingMoves{}
	}
	return noMoves{}
}

// Classify classifies a move of whatever piece stands on origin.
func Classify(board *chess.Board, origin, target chess.Square, moveCount, checkCount uint) chess.MoveKind {
	return MovesFor(board.Get(origin).Kind).Classify(board, origin, target, moveCount, checkCount)
}

func (noMoves) Classify(*chess.Board, chess.Square, chess.Square, uint, uint) chess.MoveKind {
	return chess.Illegal
}

func (knightMoves) Classify(board *chess.Board, origin, target chess.Square, _, _ uint) chess.MoveKind {
	if !canOccupy(board, origin, target) {
		return chess.Illegal
	}
	g := chess.Geometry(origin, target)
	if !((g.FileDistance == 1 && g.RankDistance == 2) || (g.FileDistance == 2 && g.RankDistance == 1)) {
		return chess.Illegal
	}
	return occupancyKind(board, target)
}

func (rookMoves) Classify(board *chess.Board, origin, target chess.Square, _, _ uint) chess.MoveKind {
	if !canOccupy(board, origin, target) {
		return chess.Illegal
	}
	g := chess.Geometry(origin, target)
	if !g.IsLine() || !isPathClear(board, origin, g) {
		return chess.Illegal
	}
	return occupancyKind(board, target)
}

func (bishopMoves) Classify(board *chess.Board, origin, target chess.Square, _, _ uint) chess.MoveKind {
	if !canOccupy(board, origin, target) {
		return chess.Illegal
	}
	g := chess.Geometry(origin, target)
	if !g.IsDiagonal() || !isPathClear(board, origin, g) {
		return chess.Illegal
	}
	return occupancyKind(board, target)
}

func (queenMoves) Classify(board *chess.Board, origin, target chess.Square, moveCount, checkCount uint) chess.MoveKind {
	if kind := (rookMoves{}).Classify(board, origin, target, moveCount, checkCount); kind != chess.Illegal {
		return kind
	}
	return bishopMoves{}.Classify(board, origin, target, moveCount, checkCount)
}

// occupancyKind returns Capture when target holds a piece and Normal otherwise.
// canOccupy has already ruled out a friendly piece.
func occupancyKind(board *chess.Board, target chess.Square) chess.MoveKind {
	if board.IsEmpty(target) {
		return chess.Normal
	}
	return chess.Capture
}
