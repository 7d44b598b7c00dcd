package chess

// Board is the 64-square playing surface, indexed by Square.
// Boards have value semantics: assignment copies every square.
type Board [NumSquares]Piece

// backRank is the standard piece order from the a-file to the h-file.
var backRank = [BoardSize]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// StandardBoard creates a board set up in the standard starting position.
func StandardBoard() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	*b = Board{}
	for file := 0; file < BoardSize; file++ {
		b[SquareAt(file, 0)] = W(backRank[file])
		b[SquareAt(file, 1)] = W(Pawn)
		b[SquareAt(file, 6)] = B(Pawn)
		b[SquareAt(file, 7)] = B(backRank[file])
	}
}

// Get returns the piece on sq, or an empty piece for an off-board square.
func (b *Board) Get(sq Square) Piece {
	if !sq.Valid() {
		return Piece{}
	}
	return b[sq]
}

// Set places a piece on sq. Placing a None kind clears the square.
func (b *Board) Set(sq Square, p Piece) {
	if !sq.Valid() {
		return
	}
	if p.Kind == None {
		b[sq] = Piece{}
		return
	}
	b[sq] = p
}

// Clear resets sq to the canonical empty value.
func (b *Board) Clear(sq Square) {
	if sq.Valid() {
		b[sq] = Piece{}
	}
}

// IsEmpty reports whether sq is on the board and empty.
func (b *Board) IsEmpty(sq Square) bool {
	return sq.Valid() && b[sq].Kind == None
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := *b
	return &newBoard
}

// Find returns the first square, in index order, holding the given piece.
func (b *Board) Find(colour Colour, kind Kind) Square {
	for sq := Square(0); sq < NumSquares; sq++ {
		if b[sq].Is(colour, kind) {
			return sq
		}
	}
	return NoSquare
}

// Count returns how many pieces of the given colour and kind are on the board.
func (b *Board) Count(colour Colour, kind Kind) int {
	n := 0
	for _, p := range b {
		if p.Is(colour, kind) {
			n++
		}
	}
	return n
}

// Squares returns the occupied squares of a colour in index order.
func (b *Board) Squares(colour Colour) []Square {
	var squares []Square
	for sq := Square(0); sq < NumSquares; sq++ {
		if b[sq].Kind != None && b[sq].Colour == colour {
			squares = append(squares, sq)
		}
	}
	return squares
}
