package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors_Are verifies that sentinel errors are properly defined
// and can be checked with errors.Is()
func TestSentinelErrors_Are(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"ErrIllegalMove", ErrIllegalMove, ErrIllegalMove},
		{"ErrSelfCheck", ErrSelfCheck, ErrSelfCheck},
		{"ErrMissingKing", ErrMissingKing, ErrMissingKing},
		{"ErrExtraKing", ErrExtraKing, ErrExtraKing},
		{"ErrInvalidFEN", ErrInvalidFEN, ErrInvalidFEN},
		{"ErrInvalidSnapshot", ErrInvalidSnapshot, ErrInvalidSnapshot},
		{"ErrInvalidNotation", ErrInvalidNotation, ErrInvalidNotation},
		{"ErrUnresolvedOrigin", ErrUnresolvedOrigin, ErrUnresolvedOrigin},
		{"ErrInvalidConfig", ErrInvalidConfig, ErrInvalidConfig},
		{"ErrNotFound", ErrNotFound, ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.sentinel)
			}
		})
	}
}

func TestSentinelErrors_Distinct(t *testing.T) {
	if errors.Is(ErrIllegalMove, ErrSelfCheck) {
		t.Error("ErrIllegalMove should not match ErrSelfCheck")
	}
}

// TestMoveError_Error verifies the error message format
func TestMoveError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *MoveError
		contains []string
	}{
		{
			name: "full context",
			err: &MoveError{
				Err:    ErrSelfCheck,
				Ply:    12,
				Colour: "White",
				Move:   "e1 f1",
			},
			contains: []string{"ply 12", "White", "e1 f1", "king in check"},
		},
		{
			name:     "minimal context",
			err:      &MoveError{Err: ErrIllegalMove},
			contains: []string{"ply 0", "illegal move"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !containsIgnoreCase(msg, s) {
					t.Errorf("MoveError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

// TestMoveError_As verifies that errors.As works with MoveError
func TestMoveError_As(t *testing.T) {
	moveErr := &MoveError{Err: ErrIllegalMove, Ply: 24, Move: "a1 h8"}
	wrapped := fmt.Errorf("session: %w", moveErr)

	var extracted *MoveError
	if !errors.As(wrapped, &extracted) {
		t.Fatal("errors.As() could not extract MoveError")
	}
	if extracted.Ply != 24 {
		t.Errorf("extracted.Ply = %d, want 24", extracted.Ply)
	}
	if !errors.Is(wrapped, ErrIllegalMove) {
		t.Error("errors.Is(wrapped, ErrIllegalMove) = false, want true")
	}
}

// TestParseError_Error verifies ParseError formatting
func TestParseError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ParseError
		want string
	}{
		{
			name: "location and expectation",
			err: &ParseError{
				Err:      ErrInvalidSnapshot,
				File:     "game.chess",
				Line:     3,
				Column:   5,
				Expected: "symbol",
				Got:      "'x'",
			},
			want: "game.chess:3:5: expected symbol, got 'x': invalid snapshot",
		},
		{
			name: "only got",
			err:  &ParseError{Got: "EOF"},
			want: "unexpected EOF",
		},
		{
			name: "nothing",
			err:  &ParseError{},
			want: "parse error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReplayError_Error(t *testing.T) {
	err := &ReplayError{
		Err:   ErrUnresolvedOrigin,
		File:  "game.pgn",
		Line:  7,
		Event: "Invalid",
		Text:  "Nf6",
	}

	msg := err.Error()
	for _, s := range []string{"game.pgn:7", "Invalid", "Nf6", "unresolved origin"} {
		if !strings.Contains(msg, s) {
			t.Errorf("ReplayError.Error() = %q, should contain %q", msg, s)
		}
	}
	if !errors.Is(err, ErrUnresolvedOrigin) {
		t.Error("errors.Is(err, ErrUnresolvedOrigin) = false, want true")
	}

	if got := (&ReplayError{}).Error(); got != "replay failed" {
		t.Errorf("empty ReplayError.Error() = %q, want %q", got, "replay failed")
	}
}

// TestWrap verifies the Wrap helper function
func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrInvalidFEN, "loading fixture")

	if !errors.Is(wrapped, ErrInvalidFEN) {
		t.Error("Wrap should preserve the underlying error")
	}
	if !containsIgnoreCase(wrapped.Error(), "loading fixture") {
		t.Errorf("Wrap should include context, got %q", wrapped.Error())
	}
	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

// TestWrapf verifies the Wrapf helper function
func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrIllegalMove, "ply %d", 15)

	if !Is(wrapped, ErrIllegalMove) {
		t.Error("Wrapf should preserve the underlying error")
	}
	if !containsIgnoreCase(wrapped.Error(), "ply 15") {
		t.Errorf("Wrapf should include formatted context, got %q", wrapped.Error())
	}
}

// containsIgnoreCase checks if s contains substr (case-insensitive).
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
