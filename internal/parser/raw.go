package parser

import (
	"bufio"
	"io"
	"strings"

	"github.com/lgbarn/chess-go/internal/chess"
)

// RawReader reads the raw coordinate format: one event per line.
//
//	# a comment
//	e2        select e2, or move the selection to e2
//	e2 e4     select and move in one line
//	e7 e8 q   the same, promoting to the given piece
//	ff        the side to move resigns
type RawReader struct {
	reader *bufio.Reader
	line   int
	eof    bool
	err    error
}

// NewRawReader creates a raw reader over r.
func NewRawReader(r io.Reader) *RawReader {
	return &RawReader{reader: bufio.NewReader(r)}
}

// Err returns the first read error other than io.EOF.
func (r *RawReader) Err() error {
	return r.err
}

// readLine returns the next line without its line ending.
func (r *RawReader) readLine() (string, bool) {
	if r.eof {
		return "", false
	}
	line, err := r.reader.ReadString('\n')
	if err != nil {
		r.eof = true
		if err != io.EOF {
			r.err = err
		}
		if line == "" {
			return "", false
		}
	}
	r.line++
	return strings.TrimRight(line, "\r\n"), true
}

// ReadNextMove returns the next event. Blank lines are skipped.
func (r *RawReader) ReadNextMove(pos Position) Event {
	for {
		raw, ok := r.readLine()
		if !ok {
			return newEvent(EOF, "", r.line)
		}
		text := strings.TrimSpace(raw)

		switch {
		case text == "":
			continue
		case strings.HasPrefix(text, "#"):
			return newEvent(Comment, strings.TrimSpace(text[1:]), r.line)
		case text == "ff":
			if pos.Turn() == chess.White {
				return newEvent(WinBlack, text, r.line)
			}
			return newEvent(WinWhite, text, r.line)
		}
		return r.coordinates(text)
	}
}

// coordinates decodes a line of one or two squares and an optional
// promotion letter.
func (r *RawReader) coordinates(text string) Event {
	fields := strings.Fields(text)
	event := newEvent(MoveCoordinates, text, r.line)

	switch len(fields) {
	case 1:
		target, err := chess.ParseSquare(fields[0])
		if err != nil {
			return newEvent(Invalid, text, r.line)
		}
		event.Target = target
		return event

	case 2, 3:
		origin, err1 := chess.ParseSquare(fields[0])
		target, err2 := chess.ParseSquare(fields[1])
		if err1 != nil || err2 != nil {
			return newEvent(Invalid, text, r.line)
		}
		event.Origin, event.Target = origin, target
		if len(fields) == 3 {
			event.Promotion = promotionLetter(fields[2])
			if event.Promotion == chess.None {
				return newEvent(Invalid, text, r.line)
			}
		}
		return event
	}
	return newEvent(Invalid, text, r.line)
}

// promotionLetter returns the piece a one-letter promotion choice names,
// or None.
func promotionLetter(s string) chess.Kind {
	if len(s) != 1 {
		return chess.None
	}
	switch kind := chess.KindFromLetter(s[0]); kind {
	case chess.Queen, chess.Rook, chess.Bishop, chess.Knight:
		return kind
	}
	return chess.None
}
