package parser

import "github.com/lgbarn/chess-go/internal/chess"

// EventType classifies what a reader found next in a recorded game.
type EventType int

const (
	Comment EventType = iota
	MoveCoordinates
	Draw
	WinWhite
	WinBlack
	ReplayOver
	EOF
	Invalid
)

var eventTypeNames = [...]string{
	Comment:         "Comment",
	MoveCoordinates: "MoveCoordinates",
	Draw:            "Draw",
	WinWhite:        "WinWhite",
	WinBlack:        "WinBlack",
	ReplayOver:      "ReplayOver",
	EOF:             "EOF",
	Invalid:         "Invalid",
}

// String returns the name of the event type.
func (t EventType) String() string {
	if t >= 0 && int(t) < len(eventTypeNames) {
		return eventTypeNames[t]
	}
	return "Unknown"
}

// IsResult reports whether the event ends the game with a recorded result.
func (t EventType) IsResult() bool {
	return t == Draw || t == WinWhite || t == WinBlack || t == ReplayOver
}

// Event is one step of a recorded game.
//
// For MoveCoordinates, Target is always set. Origin is NoSquare when the
// source names a single square, which the caller treats as a selection
// or as the destination of the current selection.
type Event struct {
	Type      EventType
	Origin    chess.Square
	Target    chess.Square
	Promotion chess.Kind
	Text      string
	Line      int
}

// newEvent returns an event of type t with no squares.
func newEvent(t EventType, text string, line int) Event {
	return Event{Type: t, Origin: chess.NoSquare, Target: chess.NoSquare, Text: text, Line: line}
}

// Position is the read-only view of a game a reader needs to resolve moves.
type Position interface {
	Board() *chess.Board
	Turn() chess.Colour
	MoveCount() uint
	CheckCount() uint
}

// MoveReader yields the events of a recorded game one at a time. Readers
// never close their source.
type MoveReader interface {
	ReadNextMove(pos Position) Event
}
