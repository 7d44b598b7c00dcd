package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-go/internal/errors"
)

// symbols is the 13-symbol alphabet of the text board: empty plus
// six piece kinds in each colour.
const symbols = ".PNRBQKpnrbqk"

// PieceFromSymbol converts a text board symbol to an unmoved piece.
func PieceFromSymbol(c byte) (Piece, bool) {
	if c == EmptySymbol {
		return Piece{}, true
	}
	if strings.IndexByte(symbols, c) < 0 {
		return Piece{}, false
	}
	colour := White
	if c >= 'a' && c <= 'z' {
		colour = Black
	}
	return NewPiece(colour, KindFromLetter(c)), true
}

// Grid renders the board as 8 lines of 8 symbols, rank 8 first.
// Move counters are not part of the grid.
func (b *Board) Grid() string {
	var sb strings.Builder
	for rank := BoardSize - 1; rank >= 0; rank-- {
		for file := 0; file < BoardSize; file++ {
			sb.WriteByte(b[SquareAt(file, rank)].Symbol())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ParseGrid reads 8 lines of 8 symbols, rank 8 first, into a board.
// Blank lines are ignored.
func ParseGrid(text string) (*Board, error) {
	var rows []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			rows = append(rows, line)
		}
	}
	if len(rows) != BoardSize {
		return nil, fmt.Errorf("grid has %d rows: %w", len(rows), errors.ErrInvalidSnapshot)
	}

	b := NewBoard()
	for i, row := range rows {
		if len(row) != BoardSize {
			return nil, fmt.Errorf("grid row %d has %d symbols: %w", i+1, len(row), errors.ErrInvalidSnapshot)
		}
		rank := BoardSize - 1 - i
		for file := 0; file < BoardSize; file++ {
			p, ok := PieceFromSymbol(row[file])
			if !ok {
				return nil, fmt.Errorf("invalid symbol %q: %w", row[file], errors.ErrInvalidSnapshot)
			}
			b[SquareAt(file, rank)] = p
		}
	}
	return b, nil
}

// Placement returns the piece placement field of a FEN string.
func (b *Board) Placement() string {
	var sb strings.Builder
	for rank := BoardSize - 1; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < BoardSize; file++ {
			p := b[SquareAt(file, rank)]
			if p.Kind == None {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(p.Symbol())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}

// ParsePlacement builds a board from the piece placement field of a FEN string.
// Every piece is unmoved.
func ParsePlacement(placement string) (*Board, error) {
	b := NewBoard()
	rank, file := BoardSize-1, 0

	for i := 0; i < len(placement); i++ {
		c := placement[i]
		switch {
		case c == '/':
			if file != BoardSize {
				return nil, fmt.Errorf("rank %d is short: %w", rank+1, errors.ErrInvalidFEN)
			}
			rank--
			file = 0
		case c >= '1' && c <= '8':
			file += int(c - '0')
		default:
			p, ok := PieceFromSymbol(c)
			if !ok || p.Kind == None {
				return nil, fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			}
			if file >= BoardSize || rank < 0 {
				return nil, fmt.Errorf("position out of bounds: %w", errors.ErrInvalidFEN)
			}
			b[SquareAt(file, rank)] = p
			file++
		}
		if file > BoardSize {
			return nil, fmt.Errorf("rank %d is too long: %w", rank+1, errors.ErrInvalidFEN)
		}
	}
	if rank != 0 || file != BoardSize {
		return nil, fmt.Errorf("placement %q is incomplete: %w", placement, errors.ErrInvalidFEN)
	}
	return b, nil
}
