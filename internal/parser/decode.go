package parser

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-go/internal/chess"
	"github.com/lgbarn/chess-go/internal/errors"
)

// Castling sides, named by the number of O's in the notation.
const (
	NoCastle        = 0
	KingsideCastle  = 2
	QueensideCastle = 3
)

// SanMove is a decoded SAN move. Only the destination is always known; the
// origin is constrained by OriginFile and OriginRank when the notation
// disambiguates, and otherwise found by ResolveOrigin.
type SanMove struct {
	Text       string
	Piece      chess.Kind
	OriginFile int // -1 when not given
	OriginRank int // -1 when not given
	Target     chess.Square
	Capture    bool
	Promotion  chess.Kind
	Castle     int
	Check      bool
}

// isCol returns true if c is a valid column (file) character.
func isCol(c byte) bool {
	return c >= chess.ColBase && c < chess.ColBase+chess.BoardSize
}

// isRank returns true if c is a valid rank character.
func isRank(c byte) bool {
	return c >= chess.RankBase && c < chess.RankBase+chess.BoardSize
}

// isPiece returns the piece named by an upper-case SAN letter.
// Lower-case letters are files, so 'b' is never a bishop.
func isPiece(c byte) chess.Kind {
	switch c {
	case 'K':
		return chess.King
	case 'Q':
		return chess.Queen
	case 'R':
		return chess.Rook
	case 'N':
		return chess.Knight
	case 'B':
		return chess.Bishop
	}
	return chess.None
}

// isCapture returns true if c is a capture or separator character.
func isCapture(c byte) bool {
	return c == 'x' || c == 'X' || c == ':' || c == '-'
}

// isCastlingChar returns true if c is a castling character.
func isCastlingChar(c byte) bool {
	return c == 'O' || c == '0' || c == 'o'
}

// isCheck returns true if c is a check indicator.
func isCheck(c byte) bool {
	return c == '+' || c == '#'
}

// isCastling reports whether text is castling notation such as O-O or 0-0-0.
func isCastling(text string) bool {
	return castleSide(text) != NoCastle
}

// castleSide counts the O's of castling notation, returning NoCastle for
// anything else.
func castleSide(text string) int {
	count := 0
	for i := 0; i < len(text); i++ {
		switch {
		case isCastlingChar(text[i]):
			count++
		case text[i] == '-':
		default:
			return NoCastle
		}
	}
	if count == KingsideCastle || count == QueensideCastle {
		return count
	}
	return NoCastle
}

// DecodeSAN parses a SAN move such as "e4", "Nbd7", "exd8=Q+" or "O-O".
func DecodeSAN(text string) (SanMove, error) {
	move := SanMove{Text: text, Piece: chess.Pawn, OriginFile: -1, OriginRank: -1, Target: chess.NoSquare}
	invalid := func(reason string) (SanMove, error) {
		return SanMove{}, fmt.Errorf("%q: %s: %w", text, reason, errors.ErrInvalidNotation)
	}

	s := text
	for len(s) > 0 && isCheck(s[len(s)-1]) {
		move.Check = true
		s = s[:len(s)-1]
	}
	if s == "" {
		return invalid("empty move")
	}

	if side := castleSide(s); side != NoCastle {
		move.Piece = chess.King
		move.Castle = side
		return move, nil
	}

	if kind := isPiece(s[0]); kind != chess.None {
		move.Piece = kind
		s = s[1:]
	}

	// Promotion, as "=Q" or a bare piece letter after the destination
	if i := strings.IndexByte(s, '='); i >= 0 {
		if i != len(s)-2 {
			return invalid("malformed promotion")
		}
		move.Promotion = isPiece(s[i+1])
		s = s[:i]
	} else if n := len(s); n > 0 && isPiece(s[n-1]) != chess.None {
		move.Promotion = isPiece(s[n-1])
		s = s[:n-1]
	}
	if move.Promotion == chess.King || (move.Promotion != chess.None && move.Piece != chess.Pawn) {
		return invalid("bad promotion piece")
	}

	// What remains is coordinates with an optional capture marker
	coords := make([]byte, 0, 4)
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case isCol(c) || isRank(c):
			coords = append(coords, c)
		case isCapture(c):
			if c != '-' {
				move.Capture = true
			}
		default:
			return invalid(fmt.Sprintf("unexpected %q", c))
		}
	}

	n := len(coords)
	if n < 2 || n > 4 || !isCol(coords[n-2]) || !isRank(coords[n-1]) {
		return invalid("no destination square")
	}
	move.Target = chess.SquareAt(int(coords[n-2]-chess.ColBase), int(coords[n-1]-chess.RankBase))

	for _, c := range coords[:n-2] {
		switch {
		case isCol(c) && move.OriginFile < 0 && move.OriginRank < 0:
			move.OriginFile = int(c - chess.ColBase)
		case isRank(c) && move.OriginRank < 0:
			move.OriginRank = int(c - chess.RankBase)
		default:
			return invalid("malformed origin")
		}
	}

	lastRank := move.Target.Rank() == 0 || move.Target.Rank() == chess.BoardSize-1
	if move.Promotion != chess.None && !lastRank {
		return invalid("promotion before the last rank")
	}
	return move, nil
}

// Destination returns the square the move lands on. For castling it is the
// king's destination on the colour's home rank.
func (m SanMove) Destination(colour chess.Colour) chess.Square {
	switch m.Castle {
	case KingsideCastle:
		return chess.SquareAt(6, colour.HomeRank())
	case QueensideCastle:
		return chess.SquareAt(2, colour.HomeRank())
	}
	return m.Target
}

// matchesOrigin reports whether sq satisfies the move's origin constraint.
func (m SanMove) matchesOrigin(sq chess.Square) bool {
	return (m.OriginFile < 0 || sq.File() == m.OriginFile) &&
		(m.OriginRank < 0 || sq.Rank() == m.OriginRank)
}
