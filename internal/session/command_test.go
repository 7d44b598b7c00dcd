package session

import (
	"testing"

	"github.com/lgbarn/chess-go/internal/chess"
	"github.com/lgbarn/chess-go/internal/errors"
	"github.com/lgbarn/chess-go/internal/testutil"
)

func TestParseCommand(t *testing.T) {
	sq := func(s string) chess.Square { return testutil.MustSquare(t, s) }

	tests := []struct {
		name string
		line string
		mode Mode
		want Command
	}{
		{"quit", "quit", MoveMode, Command{Type: CmdQuit}},
		{"exit", " EXIT ", MoveMode, Command{Type: CmdQuit}},
		{"forfeit", "ff", MoveMode, Command{Type: CmdQuit}},
		{"forfeit while promoting", "ff", PromotionMode, Command{Type: CmdQuit}},
		{"help", "?", MoveMode, Command{Type: CmdHelp}},
		{"help word", "help", PromotionMode, Command{Type: CmdHelp}},
		{"save", "save", MoveMode, Command{Type: CmdSave}},
		{"save path", "save Games/Opera.chess", MoveMode, Command{Type: CmdSave, Arg: "Games/Opera.chess"}},
		{"load id", "load 3f2a", MoveMode, Command{Type: CmdLoad, Arg: "3f2a"}},
		{"clear", "clear", MoveMode, Command{Type: CmdClear}},
		{"square", "e2", MoveMode, Command{Type: CmdSquare, Square: sq("e2")}},
		{"upper-case square", "E2", MoveMode, Command{Type: CmdSquare, Square: sq("e2")}},
		{"quick move", "e2 e4", MoveMode, Command{Type: CmdQuickMove, Square: sq("e2"), Target: sq("e4")}},
		{"queen", "q", PromotionMode, Command{Type: CmdPromote, Promotion: chess.Queen}},
		{"knight", "N", PromotionMode, Command{Type: CmdPromote, Promotion: chess.Knight}},
		{"rook", "r", PromotionMode, Command{Type: CmdPromote, Promotion: chess.Rook}},
		{"bishop", "b", PromotionMode, Command{Type: CmdPromote, Promotion: chess.Bishop}},

		{"empty", "", MoveMode, Command{}},
		{"off board", "e9", MoveMode, Command{}},
		{"three squares", "e2 e4 e5", MoveMode, Command{}},
		{"quit with argument", "quit now", MoveMode, Command{}},
		{"save with two paths", "save a b", MoveMode, Command{}},
		{"promotion in move mode", "q", MoveMode, Command{}},
		{"king promotion", "k", PromotionMode, Command{}},
		{"square while promoting", "e2", PromotionMode, Command{}},
		{"clear while promoting", "clear", PromotionMode, Command{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseCommand(tt.line, tt.mode)

			want := tt.want
			if want.Square == 0 && want.Type != CmdSquare && want.Type != CmdQuickMove {
				want.Square = chess.NoSquare
			}
			if want.Target == 0 && want.Type != CmdQuickMove {
				want.Target = chess.NoSquare
			}
			got.Text = ""
			testutil.AssertEqual(t, got, want)
		})
	}
}

func TestParseCommand_KeepsText(t *testing.T) {
	got := ParseCommand("  Save My.chess \n", MoveMode)
	testutil.AssertEqual(t, got.Text, "Save My.chess")
	testutil.AssertEqual(t, got.Arg, "My.chess")
}

func TestCommandTypeString(t *testing.T) {
	testutil.AssertEqual(t, CmdQuickMove.String(), "move")
	testutil.AssertEqual(t, CmdPromote.String(), "promote")
	testutil.AssertEqual(t, CommandType(99).String(), "unknown")
}

func TestApplyLine(t *testing.T) {
	s := newSession(t)

	cmd, err := s.ApplyLine("nonsense")
	testutil.AssertErrorIs(t, err, errors.ErrInvalidNotation)
	testutil.AssertEqual(t, cmd.Type, CmdInvalid)

	cmd, err = s.ApplyLine("help")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, cmd.Type, CmdHelp)

	cmd, err = s.ApplyLine("save")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, cmd.Type, CmdSave)
	testutil.AssertEqual(t, s.MoveCount(), uint(0), "save leaves the game alone")

	_, err = s.ApplyLine("e7")
	testutil.AssertErrorIs(t, err, errors.ErrNotYourPiece)

	_, err = s.ApplyLine("e2 e5")
	testutil.AssertErrorIs(t, err, errors.ErrIllegalMove)

	applyLines(t, s, "e2", "e4", "e7 e5")
	testutil.AssertEqual(t, s.History(), []string{"e2 e4", "e7 e5"})
	testutil.AssertEqual(t, s.Turn(), chess.White)
}

func TestApplyLine_PromotionMode(t *testing.T) {
	s := fromFEN(t, "4k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	applyLines(t, s, "a7 a8")

	_, err := s.ApplyLine("e1")
	testutil.AssertErrorIs(t, err, errors.ErrInvalidNotation)
	testutil.AssertEqual(t, s.Status(), Promoting)

	cmd, err := s.ApplyLine("r")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, cmd.Type, CmdPromote)
	testutil.AssertTrue(t, s.Board().Get(testutil.MustSquare(t, "a8")).Is(chess.White, chess.Rook))
	testutil.AssertEqual(t, s.Turn(), chess.Black)
}

// TestApplyLine_HistoryReplays checks that the history lines reproduce the
// game when applied to a fresh session, as a peer receiving them would.
func TestApplyLine_HistoryReplays(t *testing.T) {
	s := fromFEN(t, "4k3/P7/8/8/8/8/7p/4K3 w - - 0 1")
	applyLines(t, s, "a7 a8", "b", "h2 h1", "n", "e1 e2", "ff")

	peer := fromFEN(t, "4k3/P7/8/8/8/8/7p/4K3 w - - 0 1")
	applyLines(t, peer, s.History()...)

	if diffSnap := peer.Snapshot(); diffSnap.Board != s.Snapshot().Board {
		t.Errorf("peer board differs:\n%s\nwant\n%s", diffSnap.Board.Grid(), s.Board().Grid())
	}
	testutil.AssertEqual(t, peer.Status(), Forfeit)
	winner, _ := peer.Winner()
	testutil.AssertEqual(t, winner, chess.White)
}
