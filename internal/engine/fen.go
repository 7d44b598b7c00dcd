package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/chess-go/internal/chess"
	"github.com/lgbarn/chess-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Setup is the game state a FEN string carries besides the board.
type Setup struct {
	Turn      chess.Colour
	MoveCount uint
}

// NewBoardFromFEN creates a board from a FEN string. Castling rights and the
// en passant square are expressed through the pieces' move counters: a king
// or rook without castling rights counts as moved, and the pawn that can be
// taken en passant is marked as having double-stepped on the previous move.
func NewBoardFromFEN(fen string) (*chess.Board, Setup, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, Setup{}, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	board, err := chess.ParsePlacement(parts[0])
	if err != nil {
		return nil, Setup{}, err
	}

	setup := Setup{Turn: chess.White}
	if len(parts) >= 2 {
		switch parts[1] {
		case "w":
		case "b":
			setup.Turn = chess.Black
		default:
			return nil, Setup{}, fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
		}
	}

	fullMove := uint(1)
	if len(parts) >= 6 {
		n, err := strconv.ParseUint(parts[5], 10, 32)
		if err != nil || n == 0 {
			return nil, Setup{}, fmt.Errorf("invalid move number: %s: %w", parts[5], errors.ErrInvalidFEN)
		}
		fullMove = uint(n)
	}
	setup.MoveCount = 2 * (fullMove - 1)
	if setup.Turn == chess.Black {
		setup.MoveCount++
	}

	markMovedPawns(board)

	rights := "KQkq"
	if len(parts) >= 3 {
		rights = parts[2]
	}
	if err := applyCastlingRights(board, rights); err != nil {
		return nil, Setup{}, err
	}

	if len(parts) >= 4 && parts[3] != "-" {
		if err := applyEnPassant(board, parts[3], setup); err != nil {
			return nil, Setup{}, err
		}
	}
	return board, setup, nil
}

// markMovedPawns counts every pawn off its starting rank as moved. A pawn
// already on its double-step rank is counted as having arrived in two moves,
// so only the pawn named by the en passant field can be taken en passant.
func markMovedPawns(board *chess.Board) {
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		p := board.Get(sq)
		if p.Kind != chess.Pawn || sq.Rank() == pawnStartRank(p.Colour) {
			continue
		}
		p.MoveCount = 1
		if sq.Rank() == doubleStepRank(p.Colour) {
			p.MoveCount = 2
		}
		board.Set(sq, p)
	}
}

// castlingCorners maps each FEN castling letter to its king and rook squares.
var castlingCorners = map[byte]struct {
	colour chess.Colour
	king   chess.Square
	rook   chess.Square
}{
	'K': {chess.White, chess.SquareAt(4, 0), chess.SquareAt(7, 0)},
	'Q': {chess.White, chess.SquareAt(4, 0), chess.SquareAt(0, 0)},
	'k': {chess.Black, chess.SquareAt(4, 7), chess.SquareAt(7, 7)},
	'q': {chess.Black, chess.SquareAt(4, 7), chess.SquareAt(0, 7)},
}

// applyCastlingRights marks kings and rooks without castling rights as moved.
func applyCastlingRights(board *chess.Board, rights string) error {
	granted := make(map[chess.Square]bool)
	if rights != "-" {
		for i := 0; i < len(rights); i++ {
			corner, ok := castlingCorners[rights[i]]
			if !ok {
				return fmt.Errorf("invalid castling rights: %s: %w", rights, errors.ErrInvalidFEN)
			}
			if board.Get(corner.king).Is(corner.colour, chess.King) && board.Get(corner.rook).Is(corner.colour, chess.Rook) {
				granted[corner.king] = true
				granted[corner.rook] = true
			}
		}
	}

	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		p := board.Get(sq)
		if (p.Kind == chess.King || p.Kind == chess.Rook) && !granted[sq] {
			p.MoveCount = 1
			board.Set(sq, p)
		}
	}
	return nil
}

// applyEnPassant marks the pawn in front of the en passant square as having
// double-stepped on the move before setup.MoveCount.
func applyEnPassant(board *chess.Board, field string, setup Setup) error {
	sq, err := chess.ParseSquare(field)
	if err != nil || setup.MoveCount == 0 {
		return fmt.Errorf("invalid en passant square: %s: %w", field, errors.ErrInvalidFEN)
	}
	mover := setup.Turn.Opposite()
	pawnSq := chess.SquareAt(sq.File(), sq.Rank()+mover.Forward())
	pawn := board.Get(pawnSq)
	if !pawn.Is(mover, chess.Pawn) || pawnSq.Rank() != doubleStepRank(mover) {
		return fmt.Errorf("no pawn to capture en passant on %s: %w", field, errors.ErrInvalidFEN)
	}
	pawn.MoveCount = 1
	pawn.LastMoveIndex = setup.MoveCount - 1
	board.Set(pawnSq, pawn)
	return nil
}

// BoardToFEN converts a board and its setup to a FEN string. The halfmove
// clock is not tracked and is always written as 0.
func BoardToFEN(board *chess.Board, setup Setup) string {
	var sb strings.Builder

	sb.WriteString(board.Placement())
	if setup.Turn == chess.White {
		sb.WriteString(" w ")
	} else {
		sb.WriteString(" b ")
	}
	writeCastlingRights(&sb, board)
	sb.WriteByte(' ')
	writeEnPassant(&sb, board, setup)
	fmt.Fprintf(&sb, " 0 %d", setup.MoveCount/2+1)

	return sb.String()
}

// writeCastlingRights writes the castling availability to the builder.
func writeCastlingRights(sb *strings.Builder, board *chess.Board) {
	hasCastling := false
	for _, letter := range []byte("KQkq") {
		corner := castlingCorners[letter]
		king, rook := board.Get(corner.king), board.Get(corner.rook)
		if king.Is(corner.colour, chess.King) && king.MoveCount == 0 &&
			rook.Is(corner.colour, chess.Rook) && rook.MoveCount == 0 {
			sb.WriteByte(letter)
			hasCastling = true
		}
	}
	if !hasCastling {
		sb.WriteByte('-')
	}
}

// writeEnPassant writes the en passant target square to the builder.
func writeEnPassant(sb *strings.Builder, board *chess.Board, setup Setup) {
	if setup.MoveCount > 0 {
		mover := setup.Turn.Opposite()
		rank := doubleStepRank(mover)
		for file := 0; file < chess.BoardSize; file++ {
			p := board.Get(chess.SquareAt(file, rank))
			if p.Is(mover, chess.Pawn) && p.MoveCount == 1 && p.LastMoveIndex == setup.MoveCount-1 {
				sb.WriteString(chess.SquareAt(file, rank-mover.Forward()).String())
				return
			}
		}
	}
	sb.WriteByte('-')
}

// MustBoardFromFEN is like NewBoardFromFEN but panics on error.
// It is intended for fixed positions known to be valid.
func MustBoardFromFEN(fen string) (*chess.Board, Setup) {
	board, setup, err := NewBoardFromFEN(fen)
	if err != nil {
		panic(err)
	}
	return board, setup
}
