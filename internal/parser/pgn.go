package parser

import (
	"io"

	"go.uber.org/zap"

	"github.com/lgbarn/chess-go/internal/obslog"
)

// PGNReader reads SAN move text, one half-move per call.
//
// A move number introduces a pair of half-moves. The first is resolved and
// returned at once; the second token is held in the reader and resolved on
// the following call, against the position the caller has updated by then.
type PGNReader struct {
	lexer   *Lexer
	pending *Token
}

// NewPGNReader creates a PGN reader over r.
func NewPGNReader(r io.Reader) *PGNReader {
	return &PGNReader{lexer: NewLexer(r)}
}

// Err returns the first read error other than io.EOF.
func (r *PGNReader) Err() error {
	return r.lexer.Err()
}

// ReadNextMove returns the next event.
func (r *PGNReader) ReadNextMove(pos Position) Event {
	for {
		tok := r.pending
		r.pending = nil
		if tok == nil {
			tok = r.lexer.NextToken()
		}

		switch tok.Type {
		case CommentToken:
			return newEvent(Comment, tok.Text, tok.Line)

		case NAGToken:
			continue

		case MoveNumber:
			first := r.nextSignificant()
			if first.Type == MoveToken && !tok.Continuation {
				r.pending = r.nextSignificant()
			}
			if first.Type == MoveNumber {
				return newEvent(Invalid, first.Text+".", first.Line)
			}
			return r.tokenEvent(pos, first)
		}
		return r.tokenEvent(pos, tok)
	}
}

// nextSignificant returns the next token that is not a comment or NAG.
// Comments inside move text are logged and dropped.
func (r *PGNReader) nextSignificant() *Token {
	for {
		tok := r.lexer.NextToken()
		switch tok.Type {
		case CommentToken:
			obslog.L().Debug("pgn_comment", zap.Int("line", tok.Line), zap.String("text", tok.Text))
		case NAGToken:
		default:
			return tok
		}
	}
}

// tokenEvent converts a move, result or end token into an event.
func (r *PGNReader) tokenEvent(pos Position, tok *Token) Event {
	switch tok.Type {
	case EOFToken:
		return newEvent(EOF, "", tok.Line)

	case TerminatingResult:
		switch tok.Text {
		case "1-0":
			return newEvent(WinWhite, tok.Text, tok.Line)
		case "0-1":
			return newEvent(WinBlack, tok.Text, tok.Line)
		case "1/2-1/2":
			return newEvent(Draw, tok.Text, tok.Line)
		}
		return newEvent(ReplayOver, tok.Text, tok.Line)

	case MoveToken:
		return resolveEvent(pos, tok)
	}
	return newEvent(Invalid, tok.Text, tok.Line)
}

// resolveEvent decodes a SAN token and resolves its origin against pos.
func resolveEvent(pos Position, tok *Token) Event {
	move, err := DecodeSAN(tok.Text)
	if err != nil {
		obslog.L().Debug("pgn_bad_move", zap.Int("line", tok.Line), zap.Error(err))
		return newEvent(Invalid, tok.Text, tok.Line)
	}

	colour := pos.Turn()
	origin, ok := ResolveOrigin(pos.Board(), move, colour, pos.MoveCount(), pos.CheckCount())
	if !ok {
		obslog.L().Debug("pgn_unresolved_origin", zap.Int("line", tok.Line), zap.String("move", tok.Text))
		return newEvent(Invalid, tok.Text, tok.Line)
	}

	event := newEvent(MoveCoordinates, tok.Text, tok.Line)
	event.Origin = origin
	event.Target = move.Destination(colour)
	event.Promotion = move.Promotion
	return event
}
