// Package errors provides sentinel errors and error types for the chess engine.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrIllegalMove indicates a move that violates chess rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrSelfCheck indicates a move that would leave the mover's king attacked.
	ErrSelfCheck = errors.New("move leaves king in check")

	// ErrNoPiece indicates a selected square holds no piece.
	ErrNoPiece = errors.New("no piece on square")

	// ErrNotYourPiece indicates a selected piece belongs to the other player.
	ErrNotYourPiece = errors.New("piece belongs to the opponent")

	// ErrNoSelection indicates a move was attempted with no piece selected.
	ErrNoSelection = errors.New("no piece selected")

	// ErrGameOver indicates the game has already reached a terminal state.
	ErrGameOver = errors.New("game is over")

	// ErrAwaitingPromotion indicates a promotion choice is pending.
	ErrAwaitingPromotion = errors.New("awaiting promotion choice")

	// ErrInvalidPromotion indicates an unusable promotion piece.
	ErrInvalidPromotion = errors.New("invalid promotion piece")

	// ErrExtraKing indicates a board with more than one king of a colour.
	ErrExtraKing = errors.New("more than one king")

	// ErrMissingKing indicates a board without the king being evaluated.
	ErrMissingKing = errors.New("king not found")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidSnapshot indicates a malformed saved game.
	ErrInvalidSnapshot = errors.New("invalid snapshot")

	// ErrInvalidNotation indicates a move record that cannot be decoded.
	ErrInvalidNotation = errors.New("invalid notation")

	// ErrUnresolvedOrigin indicates a SAN move with no matching origin square.
	ErrUnresolvedOrigin = errors.New("unresolved origin square")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrNotFound indicates a saved game that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrReplayTruncated indicates a recorded game ended before its result.
	ErrReplayTruncated = errors.New("replay ended without a result")

	// ErrPeerClosed indicates the remote player went away.
	ErrPeerClosed = errors.New("peer closed connection")
)

// MoveError wraps errors with move context: ply, mover and move text.
// It implements the error interface and supports unwrapping via
// errors.Is() and errors.As().
type MoveError struct {
	Err    error  // The underlying error
	Ply    uint   // Global move counter when the move was attempted
	Colour string // Mover's colour (if known)
	Move   string // The move text that caused the error (if applicable)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	parts := []string{fmt.Sprintf("ply %d", e.Ply)}

	if e.Colour != "" {
		parts = append(parts, e.Colour)
	}
	if e.Move != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.Move))
	}

	context := strings.Join(parts, ", ")
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// ParseError represents a parsing error with file location context.
// It's used for snapshot, FEN and notation parsing errors.
type ParseError struct {
	Err      error  // The underlying error
	File     string // Source file name
	Line     int    // Line number (1-based)
	Column   int    // Column number (1-based)
	Expected string // What was expected (for syntax errors)
	Got      string // What was found instead
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	if loc := location(e.File, e.Line, e.Column); loc != "" {
		parts = append(parts, loc)
	}

	// Add expected/got context
	if e.Expected != "" && e.Got != "" {
		parts = append(parts, fmt.Sprintf("expected %s, got %s", e.Expected, e.Got))
	} else if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	} else if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %s", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// ReplayError reports why a replay stopped before the recorded result.
type ReplayError struct {
	Err   error  // The underlying error
	File  string // Replay source name (if known)
	Line  int    // Line of the offending event (if known)
	Event string // Name of the event that stopped the replay
	Text  string // Raw text of the offending record
}

// Error returns a formatted error message with the replay position.
func (e *ReplayError) Error() string {
	var parts []string
	if loc := location(e.File, e.Line, 0); loc != "" {
		parts = append(parts, loc)
	}
	if e.Event != "" {
		parts = append(parts, e.Event)
	}
	if e.Text != "" {
		parts = append(parts, fmt.Sprintf("%q", e.Text))
	}

	context := strings.Join(parts, ", ")
	switch {
	case e.Err != nil && context != "":
		return fmt.Sprintf("replay %s: %v", context, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("replay: %v", e.Err)
	case context != "":
		return "replay " + context
	}
	return "replay failed"
}

// Unwrap returns the underlying error.
func (e *ReplayError) Unwrap() error {
	return e.Err
}

// location formats file:line:column, omitting unknown parts.
func location(file string, line, column int) string {
	if file == "" && line == 0 {
		return ""
	}
	loc := file
	if line > 0 {
		if loc != "" {
			loc += ":"
		}
		loc += fmt.Sprintf("%d", line)
		if column > 0 {
			loc += fmt.Sprintf(":%d", column)
		}
	}
	return loc
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Is reports whether any error in err's tree matches target.
// It forwards to the standard library so callers need only this package.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
