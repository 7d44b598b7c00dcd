// Package output renders positions and game records as text and writes
// batch replay results as text or JSON.
package output

import (
	"fmt"
	"io"
	"strings"
)

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a word, preceded by a space or a line break as the line
// length allows.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}
	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine ends the current line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// WriteHistory writes a session history as numbered moves, for example
// "1. e2-e4 e7-e5 2. a7-a8=N", wrapping at maxLineLength. Promotion
// choices are attached to the move that made them. blackFirst numbers a
// game that starts with Black to move.
func WriteHistory(w io.Writer, history []string, blackFirst bool, maxLineLength int) {
	if len(history) == 0 {
		return
	}
	ow := NewOutputWriter(w, maxLineLength)

	ply := 0
	if blackFirst {
		ow.Write("1...")
		ply = 1
	}
	for i := 0; i < len(history); i++ {
		entry := history[i]
		if entry == "ff" {
			ow.Write("forfeit")
			continue
		}
		text := strings.Replace(entry, " ", "-", 1)
		if i+1 < len(history) && isPromotionChoice(history[i+1]) {
			text += "=" + strings.ToUpper(history[i+1])
			i++
		}
		if ply%2 == 0 {
			ow.Write(fmt.Sprintf("%d.", ply/2+1))
		}
		ow.Write(text)
		ply++
	}
	ow.NewLine()
}

func isPromotionChoice(entry string) bool {
	return len(entry) == 1 && strings.Contains("qrbn", entry)
}
