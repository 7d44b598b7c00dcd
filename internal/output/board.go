package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-go/internal/chess"
	"github.com/lgbarn/chess-go/internal/config"
	"github.com/lgbarn/chess-go/internal/session"
)

const fileLabels = "   a  b  c  d  e  f  g  h\n"

var unicodeGlyphs = map[byte]string{
	'K': "♔", 'Q': "♕", 'R': "♖", 'B': "♗", 'N': "♘", 'P': "♙",
	'k': "♚", 'q': "♛", 'r': "♜", 'b': "♝", 'n': "♞", 'p': "♟",
	'.': "·",
}

// RenderBoard draws the position in snap from White's side, rank 8 first,
// followed by a status line. With highlighting on, the selected square is
// shown in brackets and its legal targets in parentheses.
func RenderBoard(w io.Writer, snap session.Snapshot, cfg config.DisplayConfig) error {
	targets := make(map[chess.Square]bool, len(snap.LegalMoves))
	if cfg.Highlight {
		for _, m := range snap.LegalMoves {
			targets[m.Target] = true
		}
	}

	var b strings.Builder
	b.WriteString(fileLabels)
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		fmt.Fprintf(&b, "%d ", rank+1)
		for file := 0; file < chess.BoardSize; file++ {
			sq := chess.SquareAt(file, rank)
			glyph := pieceGlyph(snap.Board.Get(sq), cfg.Unicode)
			switch {
			case cfg.Highlight && sq == snap.Selected:
				fmt.Fprintf(&b, "[%s]", glyph)
			case targets[sq]:
				fmt.Fprintf(&b, "(%s)", glyph)
			default:
				fmt.Fprintf(&b, " %s ", glyph)
			}
		}
		fmt.Fprintf(&b, " %d\n", rank+1)
	}
	b.WriteString(fileLabels)
	b.WriteString(Status(snap))
	b.WriteByte('\n')

	_, err := io.WriteString(w, b.String())
	return err
}

func pieceGlyph(p chess.Piece, unicode bool) string {
	sym := p.Symbol()
	if unicode {
		return unicodeGlyphs[sym]
	}
	return string(sym)
}

// Status describes whose turn it is or how the game ended.
func Status(snap session.Snapshot) string {
	mover := snap.Turn.String()
	switch snap.State {
	case session.Promoting:
		return fmt.Sprintf("%s promotes on %s: q, r, b or n", mover, snap.Selected)
	case session.Checkmate:
		return fmt.Sprintf("Checkmate. %s wins.", snap.Turn.Opposite())
	case session.Stalemate:
		return "Stalemate."
	case session.Forfeit:
		return fmt.Sprintf("%s wins by forfeit.", snap.Winner)
	case session.Drawn:
		return "Draw."
	}

	switch {
	case snap.CheckCount > 1:
		return fmt.Sprintf("%s to move, in double check", mover)
	case snap.CheckCount == 1:
		return fmt.Sprintf("%s to move, in check", mover)
	}
	return mover + " to move"
}
