package chess

import (
	"testing"
)

func TestNewBoard(t *testing.T) {
	b := NewBoard()
	for sq := Square(0); sq < NumSquares; sq++ {
		if !b.IsEmpty(sq) {
			t.Errorf("IsEmpty(%v) = false; want true", sq)
		}
	}
}

func TestSetupInitialPosition(t *testing.T) {
	b := StandardBoard()

	tests := []struct {
		name  string
		sq    string
		piece Piece
	}{
		// White back rank
		{"white rook a1", "a1", W(Rook)},
		{"white knight b1", "b1", W(Knight)},
		{"white bishop c1", "c1", W(Bishop)},
		{"white queen d1", "d1", W(Queen)},
		{"white king e1", "e1", W(King)},
		{"white bishop f1", "f1", W(Bishop)},
		{"white knight g1", "g1", W(Knight)},
		{"white rook h1", "h1", W(Rook)},
		// Pawns
		{"white pawn a2", "a2", W(Pawn)},
		{"white pawn h2", "h2", W(Pawn)},
		{"black pawn a7", "a7", B(Pawn)},
		{"black pawn h7", "h7", B(Pawn)},
		// Black back rank
		{"black rook a8", "a8", B(Rook)},
		{"black queen d8", "d8", B(Queen)},
		{"black king e8", "e8", B(King)},
		// Empty middle
		{"empty e4", "e4", Piece{}},
		{"empty d5", "d5", Piece{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sq, err := ParseSquare(tt.sq)
			if err != nil {
				t.Fatalf("ParseSquare(%q) failed: %v", tt.sq, err)
			}
			if got := b.Get(sq); got != tt.piece {
				t.Errorf("Get(%s) = %+v; want %+v", tt.sq, got, tt.piece)
			}
		})
	}

	if n := b.Count(White, King); n != 1 {
		t.Errorf("Count(White, King) = %d; want 1", n)
	}
	if n := b.Count(Black, Pawn); n != 8 {
		t.Errorf("Count(Black, Pawn) = %d; want 8", n)
	}
}

func TestBoardCopy(t *testing.T) {
	b := StandardBoard()
	c := b.Copy()
	c.Clear(SquareAt(4, 1))

	if b.IsEmpty(SquareAt(4, 1)) {
		t.Error("modifying the copy changed the original")
	}
	if !c.IsEmpty(SquareAt(4, 1)) {
		t.Error("Clear did not empty the copy")
	}
}

func TestBoardSetCanonicalEmpty(t *testing.T) {
	b := NewBoard()
	sq := SquareAt(3, 3)
	b.Set(sq, Piece{Kind: None, Colour: Black, MoveCount: 4, LastMoveIndex: 9})

	if got := b.Get(sq); got != (Piece{}) {
		t.Errorf("Set(None) stored %+v; want the empty piece", got)
	}
}

func TestBoardFind(t *testing.T) {
	b := StandardBoard()

	if got := b.Find(White, King); got != SquareAt(4, 0) {
		t.Errorf("Find(White, King) = %v; want e1", got)
	}
	if got := b.Find(Black, King); got != SquareAt(4, 7) {
		t.Errorf("Find(Black, King) = %v; want e8", got)
	}

	b.Clear(SquareAt(4, 7))
	if got := b.Find(Black, King); got != NoSquare {
		t.Errorf("Find(Black, King) on kingless board = %v; want NoSquare", got)
	}
}

func TestBoardSquares(t *testing.T) {
	b := StandardBoard()

	white := b.Squares(White)
	if len(white) != 16 {
		t.Fatalf("len(Squares(White)) = %d; want 16", len(white))
	}
	if white[0] != 0 || white[15] != 15 {
		t.Errorf("Squares(White) = %v; want a1..h2 in index order", white)
	}
}

func TestSquareCoordinates(t *testing.T) {
	tests := []struct {
		in       string
		want     Square
		file     int
		rank     int
		wantFail bool
	}{
		{in: "a1", want: 0, file: 0, rank: 0},
		{in: "h1", want: 7, file: 7, rank: 0},
		{in: "e2", want: 12, file: 4, rank: 1},
		{in: "E4", want: 28, file: 4, rank: 3},
		{in: "h8", want: 63, file: 7, rank: 7},
		{in: "i1", wantFail: true},
		{in: "a9", wantFail: true},
		{in: "a0", wantFail: true},
		{in: "e", wantFail: true},
		{in: "e22", wantFail: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSquare(tt.in)
			if tt.wantFail {
				if err == nil {
					t.Errorf("ParseSquare(%q) = %v; want error", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSquare(%q) failed: %v", tt.in, err)
			}
			if got != tt.want || got.File() != tt.file || got.Rank() != tt.rank {
				t.Errorf("ParseSquare(%q) = %d (file %d rank %d); want %d (file %d rank %d)",
					tt.in, got, got.File(), got.Rank(), tt.want, tt.file, tt.rank)
			}
		})
	}

	if s := Square(12).String(); s != "e2" {
		t.Errorf("Square(12).String() = %q; want e2", s)
	}
	if s := NoSquare.String(); s != "-" {
		t.Errorf("NoSquare.String() = %q; want -", s)
	}
}

func TestColourHelpers(t *testing.T) {
	if White.Opposite() != Black || Black.Opposite() != White {
		t.Error("Opposite() is not symmetric")
	}
	if White.Forward() != 1 || Black.Forward() != -1 {
		t.Error("Forward() has the wrong sign")
	}
	if White.LastRank() != 7 || Black.LastRank() != 0 {
		t.Errorf("LastRank() = %d, %d; want 7, 0", White.LastRank(), Black.LastRank())
	}
}

func TestMoveKindNames(t *testing.T) {
	for k := Illegal; k <= Castle; k++ {
		got, ok := ParseMoveKind(k.String())
		if !ok || got != k {
			t.Errorf("ParseMoveKind(%q) = %v, %v; want %v", k.String(), got, ok, k)
		}
	}
	if _, ok := ParseMoveKind("Teleport"); ok {
		t.Error("ParseMoveKind(Teleport) succeeded")
	}
}
