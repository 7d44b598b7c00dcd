// Package chess provides core chess types and operations.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Forward returns +1 for White, -1 for Black (the pawn rank direction).
func (c Colour) Forward() int {
	if c == White {
		return 1
	}
	return -1
}

// HomeRank returns the back rank index (0-7) of the colour.
func (c Colour) HomeRank() int {
	if c == White {
		return 0
	}
	return BoardSize - 1
}

// LastRank returns the rank index on which the colour's pawns promote.
func (c Colour) LastRank() int {
	return c.Opposite().HomeRank()
}

// Kind represents a chess piece type.
type Kind int

const (
	None Kind = iota
	Pawn
	Knight
	Rook
	Bishop
	Queen
	King
)

// String returns the string representation of a piece kind.
func (k Kind) String() string {
	names := []string{"None", "Pawn", "Knight", "Rook", "Bishop", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the SAN letter of a piece kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'R', 'B', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// KindFromLetter converts a piece letter, either case, to a Kind.
// It returns None for anything that is not a piece letter.
func KindFromLetter(c byte) Kind {
	switch c {
	case 'P', 'p':
		return Pawn
	case 'N', 'n':
		return Knight
	case 'R', 'r':
		return Rook
	case 'B', 'b':
		return Bishop
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	}
	return None
}

// Piece is the content of one board square. MoveCount and LastMoveIndex
// follow the piece from square to square as it moves.
type Piece struct {
	Kind   Kind
	Colour Colour

	// MoveCount is how many times this piece has moved.
	MoveCount uint

	// LastMoveIndex is the global move number at which the piece last moved.
	LastMoveIndex uint
}

// NewPiece creates an unmoved piece.
func NewPiece(colour Colour, kind Kind) Piece {
	if kind == None {
		return Piece{}
	}
	return Piece{Kind: kind, Colour: colour}
}

// W creates an unmoved white piece.
func W(kind Kind) Piece {
	return NewPiece(White, kind)
}

// B creates an unmoved black piece.
func B(kind Kind) Piece {
	return NewPiece(Black, kind)
}

// IsEmpty reports whether the square holding p is empty.
func (p Piece) IsEmpty() bool {
	return p.Kind == None
}

// Is reports whether p is a piece of the given colour and kind.
func (p Piece) Is(colour Colour, kind Kind) bool {
	return p.Kind == kind && p.Kind != None && p.Colour == colour
}

// Symbol returns the FEN letter of the piece: uppercase for White,
// lowercase for Black and '.' for an empty square.
func (p Piece) Symbol() byte {
	if p.Kind == None {
		return EmptySymbol
	}
	letter := p.Kind.Letter()
	if p.Colour == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// MoveKind classifies a candidate move.
type MoveKind int

const (
	Illegal MoveKind = iota
	Normal
	Capture
	PawnDoubleStep
	EnPassant
	Promotion
	Castle
)

var moveKindNames = []string{"Illegal", "Normal", "Capture", "PawnDoubleStep", "EnPassant", "Promotion", "Castle"}

// String returns the name of the move kind.
func (k MoveKind) String() string {
	if k >= 0 && int(k) < len(moveKindNames) {
		return moveKindNames[k]
	}
	return "Unknown"
}

// ParseMoveKind converts a name produced by String back to a MoveKind.
func ParseMoveKind(s string) (MoveKind, bool) {
	for i, name := range moveKindNames {
		if name == s {
			return MoveKind(i), true
		}
	}
	return Illegal, false
}

// MoveRecord is one generated move from a known origin.
type MoveRecord struct {
	Kind   MoveKind
	Target Square
}

// Constants for board dimensions and text symbols.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize

	ColBase  = 'a'
	RankBase = '1'

	EmptySymbol = '.'
)
