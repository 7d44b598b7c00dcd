// Package parser reads recorded games, in raw coordinate or SAN/PGN form,
// one move event at a time.
package parser

// TokenType represents the type of a lexical token.
type TokenType int

const (
	// Tokens returned to the reader
	EOFToken TokenType = iota
	CommentToken
	NAGToken
	MoveNumber
	MoveToken
	TerminatingResult
	ErrorToken

	// Internal tokens used for identification
	Whitespace
	TagStart
	CommentStart
	CommentEnd
	LineComment
	Annotate
	CheckSymbol
	Dot
	RAVStart
	RAVEnd
	Percent
	Alpha
	Digit
	Star
	NoToken
)

// tokenTypeNames maps token types to their string representations.
var tokenTypeNames = [...]string{
	EOFToken:          "EOF",
	CommentToken:      "COMMENT",
	NAGToken:          "NAG",
	MoveNumber:        "MOVE_NUMBER",
	MoveToken:         "MOVE",
	TerminatingResult: "TERMINATING_RESULT",
	ErrorToken:        "ERROR_TOKEN",
	Whitespace:        "WHITESPACE",
	TagStart:          "TAG_START",
	CommentStart:      "COMMENT_START",
	CommentEnd:        "COMMENT_END",
	LineComment:       "LINE_COMMENT",
	Annotate:          "ANNOTATE",
	CheckSymbol:       "CHECK_SYMBOL",
	Dot:               "DOT",
	RAVStart:          "RAV_START",
	RAVEnd:            "RAV_END",
	Percent:           "PERCENT",
	Alpha:             "ALPHA",
	Digit:             "DIGIT",
	Star:              "STAR",
	NoToken:           "NO_TOKEN",
}

// String returns the string representation of a token type.
func (t TokenType) String() string {
	if int(t) < len(tokenTypeNames) {
		return tokenTypeNames[t]
	}
	return "UNKNOWN"
}

// Token represents a lexical token with its value.
type Token struct {
	Type TokenType

	// Text is the token's source text: move, result, NAG or comment body
	Text string

	// MoveNum holds move numbers
	MoveNum uint

	// Continuation is set on a move number written with "...", which
	// introduces Black's half-move on its own
	Continuation bool

	// Line for error reporting
	Line int
}
