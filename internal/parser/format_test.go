package parser

import (
	"strings"
	"testing"

	"github.com/lgbarn/chess-go/internal/errors"
	"github.com/lgbarn/chess-go/internal/testutil"
)

func TestDetectFormat(t *testing.T) {
	tests := map[string]Format{
		"game.pgn":         FormatPGN,
		"/tmp/GAME.PGN":    FormatPGN,
		"opening.san":      FormatPGN,
		"moves.raw":        FormatRaw,
		"saves/replay.txt": FormatRaw,
		"notes.md":         FormatUnknown,
		"no-extension":     FormatUnknown,
	}
	for path, want := range tests {
		testutil.AssertEqual(t, DetectFormat(path), want, path)
	}
}

func TestNewReader(t *testing.T) {
	r, err := NewReader(FormatRaw, strings.NewReader(""))
	testutil.AssertNoError(t, err)
	_, ok := r.(*RawReader)
	testutil.AssertTrue(t, ok, "raw format should give a RawReader")

	r, err = NewReader(FormatPGN, strings.NewReader(""))
	testutil.AssertNoError(t, err)
	_, ok = r.(*PGNReader)
	testutil.AssertTrue(t, ok, "pgn format should give a PGNReader")

	_, err = NewReader(FormatUnknown, strings.NewReader(""))
	testutil.AssertErrorIs(t, err, errors.ErrInvalidNotation)
}

func TestFormatString(t *testing.T) {
	testutil.AssertEqual(t, FormatRaw.String(), "raw")
	testutil.AssertEqual(t, FormatPGN.String(), "pgn")
	testutil.AssertEqual(t, FormatUnknown.String(), "unknown")
}

func TestEventTypeString(t *testing.T) {
	testutil.AssertEqual(t, MoveCoordinates.String(), "MoveCoordinates")
	testutil.AssertEqual(t, EventType(42).String(), "Unknown")
	testutil.AssertTrue(t, WinBlack.IsResult())
	testutil.AssertFalse(t, Invalid.IsResult())
}
