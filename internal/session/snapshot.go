package session

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/lgbarn/chess-go/internal/chess"
	"github.com/lgbarn/chess-go/internal/engine"
	"github.com/lgbarn/chess-go/internal/errors"
)

// Snapshot is everything needed to render a session or rebuild it exactly.
type Snapshot struct {
	Board      chess.Board
	Turn       chess.Colour
	MoveCount  uint
	CheckCount uint
	State      State
	Winner     chess.Colour
	Selected   chess.Square
	LegalMoves []chess.MoveRecord
	History    []string
}

// Snapshot captures the session state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Board:      s.board,
		Turn:       s.turn,
		MoveCount:  s.moveCount,
		CheckCount: s.checkCount,
		State:      s.state,
		Winner:     s.winner,
		Selected:   s.selected,
	}
	if len(s.legalMoves) > 0 {
		snap.LegalMoves = append([]chess.MoveRecord(nil), s.legalMoves...)
	}
	if len(s.history) > 0 {
		snap.History = append([]string(nil), s.history...)
	}
	return snap
}

// Restore replaces the session state with snap. The session ID is kept.
// A snapshot whose board lacks a king, or has two of a colour, is refused
// and leaves the session unchanged.
func (s *Session) Restore(snap Snapshot) error {
	if err := engine.CheckKings(&snap.Board); err != nil {
		return fmt.Errorf("restoring snapshot: %w", err)
	}
	s.board = snap.Board
	s.scratch = snap.Board
	s.turn = snap.Turn
	s.moveCount = snap.MoveCount
	s.checkCount = snap.CheckCount
	s.state = snap.State
	s.winner = snap.Winner
	s.selected = snap.Selected
	s.legalMoves = append([]chess.MoveRecord(nil), snap.LegalMoves...)
	s.history = append([]string(nil), snap.History...)
	s.logger.Debug("restore", zap.Uint("ply", s.moveCount), zap.Stringer("state", s.state))
	return nil
}

// MarshalText writes the snapshot in its line-oriented text form:
//
//	turn white moves 4 check 0 state playing
//	rnbqkbnr         (8 board lines, rank 8 first)
//	...
//	meta e4:1:2 e5:1:3
//	selected -
//	legal Normal@e3 PawnDoubleStep@e4
//	history e2 e4,e7 e5
//
// The header carries "winner <colour>" when the game was forfeited. The meta
// line lists the move counters of every occupied square that has moved.
func (snap Snapshot) MarshalText() ([]byte, error) {
	var sb strings.Builder

	fmt.Fprintf(&sb, "turn %s moves %d check %d state %s",
		colourName(snap.Turn), snap.MoveCount, snap.CheckCount, snap.State)
	if snap.State == Forfeit {
		fmt.Fprintf(&sb, " winner %s", colourName(snap.Winner))
	}
	sb.WriteByte('\n')
	sb.WriteString(snap.Board.Grid())

	sb.WriteString("meta")
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		p := snap.Board.Get(sq)
		if p.IsEmpty() || (p.MoveCount == 0 && p.LastMoveIndex == 0) {
			continue
		}
		fmt.Fprintf(&sb, " %s:%d:%d", sq, p.MoveCount, p.LastMoveIndex)
	}

	fmt.Fprintf(&sb, "\nselected %s\nlegal", snap.Selected)
	for _, m := range snap.LegalMoves {
		fmt.Fprintf(&sb, " %s@%s", m.Kind, m.Target)
	}

	sb.WriteString("\nhistory")
	if len(snap.History) > 0 {
		sb.WriteByte(' ')
		sb.WriteString(strings.Join(snap.History, ","))
	}
	sb.WriteByte('\n')
	return []byte(sb.String()), nil
}

// snapshotLines is the number of lines in a snapshot: header, board, meta,
// selected, legal and history.
const snapshotLines = 1 + chess.BoardSize + 4

// UnmarshalText parses the form written by MarshalText.
func (snap *Snapshot) UnmarshalText(text []byte) error {
	lines := strings.Split(strings.TrimRight(string(text), "\n"), "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], "\r")
	}
	if len(lines) != snapshotLines {
		return &errors.ParseError{
			Err:      errors.ErrInvalidSnapshot,
			Expected: fmt.Sprintf("%d lines", snapshotLines),
			Got:      strconv.Itoa(len(lines)),
		}
	}

	var out Snapshot
	if err := out.parseHeader(lines[0]); err != nil {
		return err
	}

	board, err := chess.ParseGrid(strings.Join(lines[1:1+chess.BoardSize], "\n"))
	if err != nil {
		return &errors.ParseError{Err: err, Line: 2}
	}
	out.Board = *board

	rest := lines[1+chess.BoardSize:]
	if err := out.parseMeta(rest[0], 10); err != nil {
		return err
	}
	if err := out.parseSelected(rest[1], 11); err != nil {
		return err
	}
	if err := out.parseLegal(rest[2], 12); err != nil {
		return err
	}
	if err := out.parseHistory(rest[3], 13); err != nil {
		return err
	}

	*snap = out
	return nil
}

func (snap *Snapshot) parseHeader(line string) error {
	fields := strings.Fields(line)
	if len(fields)%2 != 0 {
		return snapshotError(1, "key/value pairs", line)
	}

	seen := make(map[string]bool)
	for i := 0; i < len(fields); i += 2 {
		key, value := fields[i], fields[i+1]
		seen[key] = true
		var ok bool
		switch key {
		case "turn":
			snap.Turn, ok = parseColour(value)
		case "winner":
			snap.Winner, ok = parseColour(value)
		case "moves":
			snap.MoveCount, ok = parseUint(value)
		case "check":
			snap.CheckCount, ok = parseUint(value)
		case "state":
			snap.State, ok = ParseState(value)
		}
		if !ok {
			return snapshotError(1, "valid "+key, value)
		}
	}

	for _, key := range []string{"turn", "moves", "check", "state"} {
		if !seen[key] {
			return snapshotError(1, key, line)
		}
	}
	if snap.State == Forfeit && !seen["winner"] {
		return snapshotError(1, "winner", line)
	}
	return nil
}

func (snap *Snapshot) parseMeta(line string, lineNo int) error {
	fields, err := keyword(line, "meta", lineNo)
	if err != nil {
		return err
	}
	for _, f := range fields {
		parts := strings.Split(f, ":")
		if len(parts) != 3 {
			return snapshotError(lineNo, "sq:moves:last", f)
		}
		sq, err := chess.ParseSquare(parts[0])
		mc, okMC := parseUint(parts[1])
		lm, okLM := parseUint(parts[2])
		if err != nil || !okMC || !okLM || snap.Board.IsEmpty(sq) {
			return snapshotError(lineNo, "counters of an occupied square", f)
		}
		p := snap.Board.Get(sq)
		p.MoveCount = mc
		p.LastMoveIndex = lm
		snap.Board.Set(sq, p)
	}
	return nil
}

func (snap *Snapshot) parseSelected(line string, lineNo int) error {
	fields, err := keyword(line, "selected", lineNo)
	if err != nil {
		return err
	}
	if len(fields) != 1 {
		return snapshotError(lineNo, "one square", line)
	}
	snap.Selected = chess.NoSquare
	if fields[0] == "-" {
		return nil
	}
	sq, err := chess.ParseSquare(fields[0])
	if err != nil {
		return snapshotError(lineNo, "square", fields[0])
	}
	snap.Selected = sq
	return nil
}

func (snap *Snapshot) parseLegal(line string, lineNo int) error {
	fields, err := keyword(line, "legal", lineNo)
	if err != nil {
		return err
	}
	for _, f := range fields {
		name, target, found := strings.Cut(f, "@")
		kind, ok := chess.ParseMoveKind(name)
		sq, err := chess.ParseSquare(target)
		if !found || !ok || err != nil {
			return snapshotError(lineNo, "kind@square", f)
		}
		snap.LegalMoves = append(snap.LegalMoves, chess.MoveRecord{Kind: kind, Target: sq})
	}
	return nil
}

func (snap *Snapshot) parseHistory(line string, lineNo int) error {
	if _, err := keyword(line, "history", lineNo); err != nil {
		return err
	}
	rest := strings.TrimSpace(strings.TrimPrefix(line, "history"))
	if rest != "" {
		snap.History = strings.Split(rest, ",")
	}
	return nil
}

// keyword checks that line starts with word and returns the other fields.
func keyword(line, word string, lineNo int) ([]string, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 || fields[0] != word {
		return nil, snapshotError(lineNo, word, line)
	}
	return fields[1:], nil
}

func snapshotError(line int, expected, got string) error {
	return &errors.ParseError{Err: errors.ErrInvalidSnapshot, Line: line, Expected: expected, Got: strconv.Quote(got)}
}

func colourName(c chess.Colour) string {
	return strings.ToLower(c.String())
}

func parseColour(s string) (chess.Colour, bool) {
	switch s {
	case "white":
		return chess.White, true
	case "black":
		return chess.Black, true
	}
	return chess.White, false
}

func parseUint(s string) (uint, bool) {
	n, err := strconv.ParseUint(s, 10, 32)
	return uint(n), err == nil
}
