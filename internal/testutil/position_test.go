package testutil

import (
	"testing"

	"github.com/lgbarn/chess-go/internal/chess"
	"github.com/lgbarn/chess-go/internal/engine"
)

func TestMustSquare(t *testing.T) {
	AssertEqual(t, MustSquare(t, "a1"), chess.Square(0))
	AssertEqual(t, MustSquare(t, "h8"), chess.Square(63))
	AssertEqual(t, MustSquare(t, "E4"), chess.SquareAt(4, 3))
}

func TestMustFEN(t *testing.T) {
	board, setup := MustFEN(t, engine.InitialFEN)
	AssertEqual(t, *board, *chess.StandardBoard())
	AssertEqual(t, setup, engine.Setup{Turn: chess.White})
}

func TestPlayMoves(t *testing.T) {
	tests := []struct {
		name      string
		moves     string
		wantFEN   string
		wantCount uint
	}{
		{
			name:      "no moves",
			moves:     "",
			wantFEN:   engine.InitialFEN,
			wantCount: 0,
		},
		{
			name:      "open game",
			moves:     "e2e4 e7e5 g1f3",
			wantFEN:   "rnbqkbnr/pppp1ppp/8/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 0 2",
			wantCount: 3,
		},
		{
			name:      "castling",
			moves:     "e2e4 e7e5 g1f3 b8c6 f1c4 g8f6 e1g1",
			wantFEN:   "r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQ1RK1 b kq - 0 4",
			wantCount: 7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := chess.StandardBoard()
			n := PlayMoves(t, board, 0, tt.moves)
			AssertEqual(t, n, tt.wantCount)
			turn := chess.White
			if n%2 == 1 {
				turn = chess.Black
			}
			AssertEqual(t, engine.BoardToFEN(board, engine.Setup{Turn: turn, MoveCount: n}), tt.wantFEN)
		})
	}
}

func TestPlayMoves_Underpromotion(t *testing.T) {
	board, setup := MustFEN(t, "4k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	PlayMoves(t, board, setup.MoveCount, "a7a8n")
	AssertTrue(t, board.Get(MustSquare(t, "a8")).Is(chess.White, chess.Knight), "a8 should hold a knight")
}
