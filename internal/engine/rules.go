package engine

import (
	"github.com/lgbarn/chess-go/internal/chess"
)

// HasInsufficientMaterial returns true if neither side can possibly
// deliver checkmate.
//
// Insufficient material includes:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B vs K+B (same color bishops)
func HasInsufficientMaterial(board *chess.Board) bool {
	var whitePieces, blackPieces []chess.Kind
	var whiteBishopOnLight, blackBishopOnLight bool

	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		piece := board[sq]
		switch piece.Kind {
		case chess.None, chess.King:
			continue
		case chess.Pawn, chess.Rook, chess.Queen:
			return false
		}

		if piece.Colour == chess.White {
			whitePieces = append(whitePieces, piece.Kind)
			if piece.Kind == chess.Bishop {
				whiteBishopOnLight = isLightSquare(sq)
			}
		} else {
			blackPieces = append(blackPieces, piece.Kind)
			if piece.Kind == chess.Bishop {
				blackBishopOnLight = isLightSquare(sq)
			}
		}
	}

	switch {
	case len(whitePieces) == 0 && len(blackPieces) == 0:
		return true
	case len(whitePieces)+len(blackPieces) == 1:
		// A lone minor piece.
		return true
	case len(whitePieces) == 1 && len(blackPieces) == 1:
		return whitePieces[0] == chess.Bishop && blackPieces[0] == chess.Bishop &&
			whiteBishopOnLight == blackBishopOnLight
	}
	return false
}

// isLightSquare returns true if the given square is a light square.
func isLightSquare(sq chess.Square) bool {
	return (sq.File()+sq.Rank())%2 == 1
}

// HasStandardMaterial reports whether both sides have exactly the
// material of the starting position.
func HasStandardMaterial(board *chess.Board) bool {
	expected := map[chess.Kind]int{
		chess.Pawn:   8,
		chess.Rook:   2,
		chess.Knight: 2,
		chess.Bishop: 2,
		chess.Queen:  1,
		chess.King:   1,
	}
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		for kind, n := range expected {
			if board.Count(colour, kind) != n {
				return false
			}
		}
	}
	return true
}
