package engine

import "github.com/lgbarn/chess-go/internal/chess"

func (pawnMoves) Classify(board *chess.Board, origin, target chess.Square, moveCount, _ uint) chess.MoveKind {
	if !canOccupy(board, origin, target) {
		return chess.Illegal
	}
	pawn := board.Get(origin)
	g := chess.Geometry(origin, target)

	// Can only move forward.
	if sign(g.TargetRank-g.OriginRank) != pawn.Colour.Forward() {
		return chess.Illegal
	}

	switch g.RankDistance {
	case 2:
		if pawn.MoveCount != 0 || g.FileDistance != 0 {
			return chess.Illegal
		}
		between := chess.SquareAt(g.OriginFile, g.OriginRank+pawn.Colour.Forward())
		if !board.IsEmpty(target) || !board.IsEmpty(between) {
			return chess.Illegal
		}
		return chess.PawnDoubleStep

	case 1:
		switch g.FileDistance {
		case 0:
			if !board.IsEmpty(target) {
				return chess.Illegal
			}
			if g.TargetRank == pawn.Colour.LastRank() {
				return chess.Promotion
			}
			return chess.Normal
		case 1:
			if !board.IsEmpty(target) {
				if g.TargetRank == pawn.Colour.LastRank() {
					return chess.Promotion
				}
				return chess.Capture
			}
			if isEnPassant(board, pawn, g, moveCount) {
				return chess.EnPassant
			}
		}
	}
	return chess.Illegal
}

// isEnPassant checks the square beside the origin, on the target file, for an
// opposing pawn that double-stepped on the previous move.
func isEnPassant(board *chess.Board, pawn chess.Piece, g chess.MoveGeometry, moveCount uint) bool {
	if moveCount == 0 {
		return false
	}
	passed := board.Get(chess.SquareAt(g.TargetFile, g.OriginRank))
	opponent := pawn.Colour.Opposite()
	return passed.Is(opponent, chess.Pawn) &&
		passed.LastMoveIndex == moveCount-1 &&
		passed.MoveCount == 1 &&
		g.OriginRank == doubleStepRank(opponent)
}

// pawnStartRank returns the rank index the colour's pawns start on.
func pawnStartRank(colour chess.Colour) int {
	return colour.HomeRank() + colour.Forward()
}

// doubleStepRank returns the rank index a pawn lands on after its double-step.
func doubleStepRank(colour chess.Colour) int {
	return pawnStartRank(colour) + 2*colour.Forward()
}

// enPassantVictim returns the square of the pawn removed when a pawn of the
// given colour captures en passant on target.
func enPassantVictim(colour chess.Colour, target chess.Square) chess.Square {
	return chess.SquareAt(target.File(), target.Rank()-colour.Forward())
}
