package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/lgbarn/chess-go/internal/chess"
	"github.com/lgbarn/chess-go/internal/errors"
)

func TestDecodeSAN(t *testing.T) {
	sq := func(file, rank int) chess.Square { return chess.SquareAt(file, rank) }

	tests := []struct {
		text string
		want SanMove
	}{
		{"e4", SanMove{Piece: chess.Pawn, OriginFile: -1, OriginRank: -1, Target: sq(4, 3)}},
		{"Nf3", SanMove{Piece: chess.Knight, OriginFile: -1, OriginRank: -1, Target: sq(5, 2)}},
		{"exd5", SanMove{Piece: chess.Pawn, OriginFile: 4, OriginRank: -1, Target: sq(3, 4), Capture: true}},
		{"Nbd7", SanMove{Piece: chess.Knight, OriginFile: 1, OriginRank: -1, Target: sq(3, 6)}},
		{"R1a3", SanMove{Piece: chess.Rook, OriginFile: -1, OriginRank: 0, Target: sq(0, 2)}},
		{"Qh4xe1", SanMove{Piece: chess.Queen, OriginFile: 7, OriginRank: 3, Target: sq(4, 0), Capture: true}},
		{"Bb5+", SanMove{Piece: chess.Bishop, OriginFile: -1, OriginRank: -1, Target: sq(1, 4), Check: true}},
		{"Qf7#", SanMove{Piece: chess.Queen, OriginFile: -1, OriginRank: -1, Target: sq(5, 6), Check: true}},
		{"e8=Q", SanMove{Piece: chess.Pawn, OriginFile: -1, OriginRank: -1, Target: sq(4, 7), Promotion: chess.Queen}},
		{"e8Q", SanMove{Piece: chess.Pawn, OriginFile: -1, OriginRank: -1, Target: sq(4, 7), Promotion: chess.Queen}},
		{"bxa1=N+", SanMove{Piece: chess.Pawn, OriginFile: 1, OriginRank: -1, Target: sq(0, 0), Capture: true, Promotion: chess.Knight, Check: true}},
		{"e2-e4", SanMove{Piece: chess.Pawn, OriginFile: 4, OriginRank: 1, Target: sq(4, 3)}},
		{"O-O", SanMove{Piece: chess.King, OriginFile: -1, OriginRank: -1, Target: chess.NoSquare, Castle: KingsideCastle}},
		{"O-O-O+", SanMove{Piece: chess.King, OriginFile: -1, OriginRank: -1, Target: chess.NoSquare, Castle: QueensideCastle, Check: true}},
		{"0-0", SanMove{Piece: chess.King, OriginFile: -1, OriginRank: -1, Target: chess.NoSquare, Castle: KingsideCastle}},
		{"0-0-0", SanMove{Piece: chess.King, OriginFile: -1, OriginRank: -1, Target: chess.NoSquare, Castle: QueensideCastle}},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := DecodeSAN(tt.text)
			if err != nil {
				t.Fatalf("DecodeSAN(%q) failed: %v", tt.text, err)
			}
			tt.want.Text = tt.text
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("DecodeSAN(%q) mismatch (-want +got):\n%s", tt.text, diff)
			}
		})
	}
}

func TestDecodeSAN_Invalid(t *testing.T) {
	tests := []string{
		"",
		"+",
		"e9",
		"i4",
		"N",
		"Nf",
		"e4e5e6",
		"O",
		"O-O-O-O",
		"e8=K",
		"e5=Q",
		"Ne8=Q",
		"e8=",
		"Zf3",
		"e4f",
	}

	for _, text := range tests {
		t.Run(text, func(t *testing.T) {
			if _, err := DecodeSAN(text); !errors.Is(err, errors.ErrInvalidNotation) {
				t.Errorf("DecodeSAN(%q) error = %v, want ErrInvalidNotation", text, err)
			}
		})
	}
}

func TestSanMoveDestination(t *testing.T) {
	tests := []struct {
		text   string
		colour chess.Colour
		want   string
	}{
		{"O-O", chess.White, "g1"},
		{"O-O-O", chess.White, "c1"},
		{"O-O", chess.Black, "g8"},
		{"O-O-O", chess.Black, "c8"},
		{"Nf3", chess.Black, "f3"},
	}

	for _, tt := range tests {
		move, err := DecodeSAN(tt.text)
		if err != nil {
			t.Fatalf("DecodeSAN(%q) failed: %v", tt.text, err)
		}
		if got := move.Destination(tt.colour).String(); got != tt.want {
			t.Errorf("%s for %v: Destination() = %s, want %s", tt.text, tt.colour, got, tt.want)
		}
	}
}
