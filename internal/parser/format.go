package parser

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/lgbarn/chess-go/internal/errors"
)

// Format identifies a recorded-game file format.
type Format int

const (
	FormatUnknown Format = iota
	FormatRaw
	FormatPGN
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatRaw:
		return "raw"
	case FormatPGN:
		return "pgn"
	}
	return "unknown"
}

// DetectFormat picks the format from a file name's extension.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".raw", ".txt":
		return FormatRaw
	case ".pgn", ".san":
		return FormatPGN
	}
	return FormatUnknown
}

// NewReader creates the reader for format over r.
func NewReader(format Format, r io.Reader) (MoveReader, error) {
	switch format {
	case FormatRaw:
		return NewRawReader(r), nil
	case FormatPGN:
		return NewPGNReader(r), nil
	}
	return nil, fmt.Errorf("unknown replay format: %w", errors.ErrInvalidNotation)
}
