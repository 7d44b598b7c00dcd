package parser

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/lgbarn/chess-go/internal/obslog"
)

// Lexer tokenizes PGN move text.
type Lexer struct {
	reader  *bufio.Reader
	line    string
	pos     int
	lineNum int
	eof     bool
	err     error
}

// Character classification table
var chTab [256]TokenType

// Move character classification table
var moveChars [256]bool

func init() {
	initLexTables()
}

// initLexTables initializes the character classification tables.
func initLexTables() {
	for i := range chTab {
		chTab[i] = ErrorToken
	}

	for _, c := range []byte{' ', '\t', '\r', '\n'} {
		chTab[c] = Whitespace
	}

	chTab['['] = TagStart
	chTab['{'] = CommentStart
	chTab['}'] = CommentEnd
	chTab[';'] = LineComment
	chTab['$'] = NAGToken
	chTab['!'] = Annotate
	chTab['?'] = Annotate
	chTab['+'] = CheckSymbol
	chTab['#'] = CheckSymbol
	chTab['.'] = Dot
	chTab['('] = RAVStart
	chTab[')'] = RAVEnd
	chTab['%'] = Percent
	chTab['*'] = Star

	for c := byte('0'); c <= '9'; c++ {
		chTab[c] = Digit
	}
	for c := byte('A'); c <= 'Z'; c++ {
		chTab[c] = Alpha
		chTab[c+32] = Alpha
	}

	initMoveChars()
}

// initMoveChars initializes the move character classification table.
func initMoveChars() {
	for c := byte('a'); c <= 'h'; c++ {
		moveChars[c] = true
	}
	for c := byte('1'); c <= '8'; c++ {
		moveChars[c] = true
	}
	for _, c := range []byte{'K', 'Q', 'R', 'N', 'B', 'x', 'X', ':', '-', '=', 'O', 'o', '0', '+', '#'} {
		moveChars[c] = true
	}
}

// NewLexer creates a new lexer for the given reader.
func NewLexer(r io.Reader) *Lexer {
	return &Lexer{reader: bufio.NewReader(r)}
}

// readLine reads the next line from input.
func (l *Lexer) readLine() bool {
	if l.eof {
		return false
	}
	line, err := l.reader.ReadString('\n')
	if err != nil {
		l.eof = true
		if err != io.EOF {
			l.err = err
		}
		if len(line) == 0 {
			return false
		}
	}
	l.line = line
	l.pos = 0
	l.lineNum++
	return true
}

// currentChar returns the current character or 0 if at end of line.
func (l *Lexer) currentChar() byte {
	if l.pos >= len(l.line) {
		return 0
	}
	return l.line[l.pos]
}

// advance moves to the next character.
func (l *Lexer) advance() {
	if l.pos < len(l.line) {
		l.pos++
	}
}

// skipWhile advances past characters of the given class.
func (l *Lexer) skipWhile(class TokenType) {
	for l.pos < len(l.line) && chTab[l.currentChar()] == class {
		l.advance()
	}
}

// NextToken returns the next token from the input.
func (l *Lexer) NextToken() *Token {
	for {
		token := l.getNextSymbol()
		if token.Type != NoToken {
			if token.Line == 0 {
				token.Line = l.lineNum
			}
			return token
		}
	}
}

// Err returns the first read error other than io.EOF.
func (l *Lexer) Err() error {
	return l.err
}

// LineNumber returns the current line number.
func (l *Lexer) LineNumber() int {
	return l.lineNum
}

// getNextSymbol identifies the next symbol.
func (l *Lexer) getNextSymbol() *Token {
	if l.pos >= len(l.line) {
		if !l.readLine() {
			return &Token{Type: EOFToken}
		}
		return &Token{Type: NoToken}
	}

	ch := l.currentChar()
	symbolStart := l.pos
	l.advance()

	switch chTab[ch] {
	case Whitespace:
		l.skipWhile(Whitespace)
		return &Token{Type: NoToken}

	case TagStart:
		// Tag pairs are reported whole, as comments
		text := strings.TrimSpace(l.line[symbolStart:])
		l.pos = len(l.line)
		return &Token{Type: CommentToken, Text: text}

	case CommentStart:
		return l.gatherComment()

	case CommentEnd:
		obslog.L().Debug("pgn_unmatched_comment_end", zap.Int("line", l.lineNum))
		return &Token{Type: NoToken}

	case LineComment:
		text := strings.TrimSpace(l.line[l.pos:])
		l.pos = len(l.line)
		return &Token{Type: CommentToken, Text: text}

	case Percent:
		// Escape mechanism: the rest of a line starting with % is ignored
		if symbolStart == 0 {
			l.pos = len(l.line)
			return &Token{Type: NoToken}
		}
		return l.errorToken(symbolStart)

	case NAGToken:
		start := l.pos
		l.skipWhile(Digit)
		return &Token{Type: NAGToken, Text: "$" + l.line[start:l.pos]}

	case Annotate:
		l.skipWhile(Annotate)
		return &Token{Type: NAGToken, Text: l.line[symbolStart:l.pos]}

	case CheckSymbol:
		// A stray check marker after whitespace
		l.skipWhile(CheckSymbol)
		return &Token{Type: NoToken}

	case Dot:
		l.skipWhile(Dot)
		return &Token{Type: NoToken}

	case RAVStart:
		l.skipVariation()
		return &Token{Type: NoToken}

	case RAVEnd:
		obslog.L().Debug("pgn_unmatched_variation_end", zap.Int("line", l.lineNum))
		return &Token{Type: NoToken}

	case Star:
		return &Token{Type: TerminatingResult, Text: "*"}

	case Digit:
		return l.gatherNumeric(symbolStart)

	case Alpha:
		return l.gatherMove(symbolStart)
	}
	return l.errorToken(symbolStart)
}

// errorToken consumes the rest of the current word as an ErrorToken.
func (l *Lexer) errorToken(symbolStart int) *Token {
	for l.pos < len(l.line) && chTab[l.currentChar()] != Whitespace {
		l.advance()
	}
	return &Token{Type: ErrorToken, Text: l.line[symbolStart:l.pos]}
}

// gatherComment gathers a brace comment, which may span lines.
func (l *Lexer) gatherComment() *Token {
	var sb strings.Builder
	startLine := l.lineNum

	for {
		for l.pos < len(l.line) {
			ch := l.currentChar()
			l.advance()
			if ch == '}' {
				return &Token{Type: CommentToken, Text: strings.TrimSpace(sb.String()), Line: startLine}
			}
			sb.WriteByte(ch)
		}
		if !l.readLine() {
			break
		}
	}

	obslog.L().Debug("pgn_missing_comment_end", zap.Int("line", startLine))
	return &Token{Type: CommentToken, Text: strings.TrimSpace(sb.String()), Line: startLine}
}

// skipVariation skips a recursive annotation variation, including any
// nested variations and comments inside it.
func (l *Lexer) skipVariation() {
	depth := 1
	for depth > 0 {
		for l.pos < len(l.line) && depth > 0 {
			switch l.currentChar() {
			case '(':
				depth++
			case ')':
				depth--
			case '{':
				l.advance()
				l.gatherComment()
				continue
			}
			l.advance()
		}
		if depth > 0 && !l.readLine() {
			return
		}
	}
}

// gatherMove gathers a SAN move token. Trailing annotation symbols are left
// for the next token.
func (l *Lexer) gatherMove(symbolStart int) *Token {
	for l.pos < len(l.line) && moveChars[l.currentChar()] {
		l.advance()
	}
	text := l.line[symbolStart:l.pos]
	if !moveChars[text[0]] {
		return l.errorToken(symbolStart)
	}
	return &Token{Type: MoveToken, Text: text}
}

// gatherNumeric handles tokens starting with a digit: move numbers, results
// and castling written with zeros.
func (l *Lexer) gatherNumeric(symbolStart int) *Token {
	for l.pos < len(l.line) {
		c := l.currentChar()
		if chTab[c] != Digit && c != '-' && c != '/' && c != '+' && c != '#' {
			break
		}
		l.advance()
	}
	text := l.line[symbolStart:l.pos]

	switch text {
	case "1-0", "0-1", "1/2-1/2":
		return &Token{Type: TerminatingResult, Text: text}
	}
	if isCastling(strings.TrimRight(text, "+#")) {
		return &Token{Type: MoveToken, Text: text}
	}

	n, err := strconv.ParseUint(text, 10, 32)
	if err != nil || l.currentChar() != '.' {
		return l.errorToken(symbolStart)
	}
	dots := l.pos
	l.skipWhile(Dot)
	return &Token{Type: MoveNumber, MoveNum: uint(n), Text: text, Continuation: l.pos-dots >= 3}
}
