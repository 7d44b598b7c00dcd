package engine

import (
	"testing"

	"github.com/lgbarn/chess-go/internal/chess"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		fen        string
		from, to   string
		checkCount uint
		want       chess.MoveKind
	}{
		// Pawns
		{name: "pawn single step", fen: InitialFEN, from: "e2", to: "e3", want: chess.Normal},
		{name: "pawn double step", fen: InitialFEN, from: "e2", to: "e4", want: chess.PawnDoubleStep},
		{name: "pawn triple step", fen: InitialFEN, from: "e2", to: "e5", want: chess.Illegal},
		{name: "black pawn double step", fen: "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1", from: "d7", to: "d5", want: chess.PawnDoubleStep},
		{name: "pawn backwards", fen: "4k3/8/8/8/4P3/8/8/4K3 w - - 0 1", from: "e4", to: "e3", want: chess.Illegal},
		{name: "moved pawn double step", fen: "4k3/8/8/8/8/4P3/8/4K3 w - - 0 1", from: "e3", to: "e5", want: chess.Illegal},
		{name: "double step jumps piece", fen: "4k3/8/8/8/8/4n3/4P3/4K3 w - - 0 1", from: "e2", to: "e4", want: chess.Illegal},
		{name: "pawn blocked", fen: "4k3/8/8/8/4p3/4P3/8/4K3 w - - 0 1", from: "e3", to: "e4", want: chess.Illegal},
		{name: "pawn capture", fen: "4k3/8/8/8/3p4/4P3/8/4K3 w - - 0 1", from: "e3", to: "d4", want: chess.Capture},
		{name: "pawn diagonal to empty", fen: "4k3/8/8/8/8/4P3/8/4K3 w - - 0 1", from: "e3", to: "d4", want: chess.Illegal},
		{name: "pawn promotion", fen: "4k3/P7/8/8/8/8/8/4K3 w - - 0 1", from: "a7", to: "a8", want: chess.Promotion},
		{name: "pawn capture promotion", fen: "1r2k3/P7/8/8/8/8/8/4K3 w - - 0 1", from: "a7", to: "b8", want: chess.Promotion},
		{name: "black promotion", fen: "4k3/8/8/8/8/8/7p/K7 b - - 0 1", from: "h2", to: "h1", want: chess.Promotion},
		{name: "en passant", fen: "4k3/8/8/8/3Pp3/8/8/4K3 b - d3 0 1", from: "e4", to: "d3", want: chess.EnPassant},
		{name: "en passant white", fen: "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 2", from: "e5", to: "d6", want: chess.EnPassant},
		{name: "en passant expired", fen: "4k3/8/8/8/3Pp3/8/8/4K3 b - - 0 3", from: "e4", to: "d3", want: chess.Illegal},

		// Knights
		{name: "knight", fen: InitialFEN, from: "g1", to: "f3", want: chess.Normal},
		{name: "knight onto own piece", fen: InitialFEN, from: "g1", to: "e2", want: chess.Illegal},
		{name: "knight capture", fen: "4k3/8/8/3p4/8/4N3/8/4K3 w - - 0 1", from: "e3", to: "d5", want: chess.Capture},
		{name: "knight straight", fen: InitialFEN, from: "g1", to: "g3", want: chess.Illegal},

		// Sliders
		{name: "rook blocked", fen: InitialFEN, from: "a1", to: "a3", want: chess.Illegal},
		{name: "rook open file", fen: "4k3/8/8/8/8/8/8/R3K3 w - - 0 1", from: "a1", to: "a8", want: chess.Normal},
		{name: "rook diagonal", fen: "4k3/8/8/8/8/8/8/R3K3 w - - 0 1", from: "a1", to: "b2", want: chess.Illegal},
		{name: "rook capture", fen: "4k3/8/8/8/r7/8/8/R3K3 w - - 0 1", from: "a1", to: "a4", want: chess.Capture},
		{name: "rook through piece", fen: "4k3/8/8/8/r7/8/8/R3K3 w - - 0 1", from: "a1", to: "a5", want: chess.Illegal},
		{name: "bishop diagonal", fen: "4k3/8/8/8/8/8/8/2B1K3 w - - 0 1", from: "c1", to: "h6", want: chess.Normal},
		{name: "bishop not diagonal", fen: "4k3/8/8/8/8/8/8/2B1K3 w - - 0 1", from: "c1", to: "e2", want: chess.Illegal},
		{name: "bishop blocked", fen: InitialFEN, from: "c1", to: "e3", want: chess.Illegal},
		{name: "queen line", fen: "4k3/8/8/8/8/8/8/3QK3 w - - 0 1", from: "d1", to: "d8", want: chess.Normal},
		{name: "queen diagonal", fen: "4k3/8/8/8/8/8/8/3QK3 w - - 0 1", from: "d1", to: "h5", want: chess.Normal},
		{name: "queen knight shape", fen: "4k3/8/8/8/8/8/8/3QK3 w - - 0 1", from: "d1", to: "e3", want: chess.Illegal},

		// Kings
		{name: "king step", fen: "4k3/8/8/8/8/8/8/4K3 w - - 0 1", from: "e1", to: "e2", want: chess.Normal},
		{name: "king two steps", fen: "4k3/8/8/8/8/8/8/4K3 w - - 0 1", from: "e1", to: "e3", want: chess.Illegal},
		{name: "king capture", fen: "4k3/8/8/8/8/8/4r3/4K3 w - - 0 1", from: "e1", to: "e2", want: chess.Capture},
		{name: "kingside castle", fen: "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", from: "e1", to: "g1", want: chess.Castle},
		{name: "queenside castle", fen: "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", from: "e1", to: "c1", want: chess.Castle},
		{name: "black kingside castle", fen: "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", from: "e8", to: "g8", want: chess.Castle},
		{name: "black queenside castle", fen: "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", from: "e8", to: "c8", want: chess.Castle},
		{name: "castle blocked by knight on b1", fen: "r3k2r/8/8/8/8/8/8/RN2K2R w KQkq - 0 1", from: "e1", to: "c1", want: chess.Illegal},
		{name: "castle blocked kingside", fen: "r3k2r/8/8/8/8/8/8/R3KB1R w KQkq - 0 1", from: "e1", to: "g1", want: chess.Illegal},
		{name: "castle in check", fen: "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", from: "e1", to: "g1", checkCount: 1, want: chess.Illegal},
		{name: "castle without rights", fen: "r3k2r/8/8/8/8/8/8/R3K2R w Qkq - 0 1", from: "e1", to: "g1", want: chess.Illegal},
		{name: "castle moved king", fen: "r3k2r/8/8/8/8/8/8/R3K2R w - - 0 1", from: "e1", to: "c1", want: chess.Illegal},

		// Empty origin
		{name: "empty origin", fen: InitialFEN, from: "e4", to: "e5", want: chess.Illegal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, setup := mustFEN(t, tt.fen)
			got := Classify(board, sq(t, tt.from), sq(t, tt.to), setup.MoveCount, tt.checkCount)
			if got != tt.want {
				t.Errorf("Classify(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestMovesForDispatch(t *testing.T) {
	tests := []struct {
		kind chess.Kind
		want Classifier
	}{
		{chess.None, noMoves{}},
		{chess.Pawn, pawnMoves{}},
		{chess.Knight, knightMoves{}},
		{chess.Rook, rookMoves{}},
		{chess.Bishop, bishopMoves{}},
		{chess.Queen, queenMoves{}},
		{chess.King, kingMoves{}},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			if got := MovesFor(tt.kind); got != tt.want {
				t.Errorf("MovesFor(%v) = %T, want %T", tt.kind, got, tt.want)
			}
		})
	}
}

func TestCanOccupy(t *testing.T) {
	board := chess.StandardBoard()

	tests := []struct {
		name     string
		from, to chess.Square
		want     bool
	}{
		{"empty target", 12, 28, true},
		{"own piece", 0, 1, false},
		{"enemy piece", 12, 52, true},
		{"empty origin", 28, 36, false},
		{"off board", 0, 64, false},
		{"no square", chess.NoSquare, 0, false},
		{"same square", 12, 12, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := canOccupy(board, tt.from, tt.to); got != tt.want {
				t.Errorf("canOccupy(%v, %v) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}
