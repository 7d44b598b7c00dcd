package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-go/internal/errors"
)

// Square is a board index 0..63 where file = index % 8 and rank = index / 8.
type Square int

// NoSquare marks an absent square (no selection, unknown origin).
const NoSquare Square = -1

// SquareAt returns the square for a file and rank index (0-7).
// It returns NoSquare when either coordinate is off the board.
func SquareAt(file, rank int) Square {
	if !OnBoard(file, rank) {
		return NoSquare
	}
	return Square(rank*BoardSize + file)
}

// OnBoard reports whether a file and rank index pair is on the board.
func OnBoard(file, rank int) bool {
	return file >= 0 && file < BoardSize && rank >= 0 && rank < BoardSize
}

// Valid reports whether the square is on the board.
func (sq Square) Valid() bool {
	return sq >= 0 && sq < NumSquares
}

// File returns the file index (0 = a).
func (sq Square) File() int {
	return int(sq) % BoardSize
}

// Rank returns the rank index (0 = rank 1).
func (sq Square) Rank() int {
	return int(sq) / BoardSize
}

// String returns the coordinate name of the square, e.g. "e2".
func (sq Square) String() string {
	if !sq.Valid() {
		return "-"
	}
	return string([]byte{byte(ColBase + sq.File()), byte(RankBase + sq.Rank())})
}

// IsFileChar reports whether c is a file letter a-h (either case).
func IsFileChar(c byte) bool {
	c = toLower(c)
	return c >= ColBase && c < ColBase+BoardSize
}

// IsRankChar reports whether c is a rank digit 1-8.
func IsRankChar(c byte) bool {
	return c >= RankBase && c < RankBase+BoardSize
}

// ParseSquare converts a two-character coordinate such as "e2" to a Square.
func ParseSquare(s string) (Square, error) {
	s = strings.TrimSpace(s)
	if len(s) != 2 || !IsFileChar(s[0]) || !IsRankChar(s[1]) {
		return NoSquare, fmt.Errorf("square %q: %w", s, errors.ErrInvalidNotation)
	}
	return SquareAt(int(toLower(s[0])-ColBase), int(s[1]-RankBase)), nil
}

func toLower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}
