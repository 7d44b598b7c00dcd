package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lgbarn/chess-go/internal/config"
	"github.com/lgbarn/chess-go/internal/worker"
)

// ResultWriter is the interface for writing batch replay results.
type ResultWriter interface {
	// WriteResult writes one replay result.
	WriteResult(r worker.ProcessResult) error

	// Flush writes any buffered results.
	Flush() error

	// Close flushes and releases the writer.
	Close() error
}

// NewResultWriter returns the writer cfg selects.
func NewResultWriter(w io.Writer, cfg config.DisplayConfig) ResultWriter {
	if cfg.JSON {
		return NewJSONWriter(w)
	}
	return NewTextWriter(w)
}

// TextWriter writes one line per result as it arrives.
type TextWriter struct {
	w io.Writer
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: w}
}

// WriteResult writes a line such as "fools.pgn: checkmate, black wins, 4 plies".
func (tw *TextWriter) WriteResult(r worker.ProcessResult) error {
	jg := ResultToJSON(r)
	line := fmt.Sprintf("%s: %s", jg.File, jg.State)
	if jg.Error != "" {
		line = fmt.Sprintf("%s: failed after %d plies: %s", jg.File, jg.Plies, jg.Error)
	} else {
		if jg.Winner != "" {
			line += fmt.Sprintf(", %s wins", jg.Winner)
		}
		line += fmt.Sprintf(", %d plies", jg.Plies)
	}
	if jg.DuplicateOf != "" {
		line += fmt.Sprintf(" (same final position as %s)", jg.DuplicateOf)
	}
	_, err := fmt.Fprintln(tw.w, line)
	return err
}

// Flush is a no-op; lines are written immediately.
func (tw *TextWriter) Flush() error { return nil }

// Close closes the text writer.
func (tw *TextWriter) Close() error { return nil }

// JSONWriter buffers results and writes them with a summary on Flush.
type JSONWriter struct {
	w     io.Writer
	games []*JSONGame
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// WriteResult buffers a result.
func (jw *JSONWriter) WriteResult(r worker.ProcessResult) error {
	jw.games = append(jw.games, ResultToJSON(r))
	return nil
}

// Flush writes the buffered results as one JSON document.
func (jw *JSONWriter) Flush() error {
	if len(jw.games) == 0 {
		return nil
	}
	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(&JSONOutput{Games: jw.games, Summary: Summarize(jw.games)})
	jw.games = jw.games[:0]
	return err
}

// Close flushes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
