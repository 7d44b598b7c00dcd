// Package session coordinates one game: it owns the live and scratch boards,
// the turn and the counters, and routes selections, moves and promotions
// through the engine.
package session

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lgbarn/chess-go/internal/chess"
	"github.com/lgbarn/chess-go/internal/engine"
	"github.com/lgbarn/chess-go/internal/errors"
	"github.com/lgbarn/chess-go/internal/obslog"
)

// State is the lifecycle state of a session.
type State int

const (
	Playing State = iota
	Promoting
	Checkmate
	Stalemate
	Forfeit
	Drawn
)

var stateNames = []string{"playing", "promoting", "checkmate", "stalemate", "forfeit", "draw"}

// String returns the name of the state.
func (s State) String() string {
	if s >= 0 && int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "unknown"
}

// ParseState converts a name produced by String back to a State.
func ParseState(name string) (State, bool) {
	for i, n := range stateNames {
		if n == name {
			return State(i), true
		}
	}
	return Playing, false
}

// Over reports whether the game has ended.
func (s State) Over() bool {
	return s == Checkmate || s == Stalemate || s == Forfeit || s == Drawn
}

// Session is a single game in progress. It is not safe for concurrent use.
type Session struct {
	ID string

	board      chess.Board
	scratch    chess.Board
	turn       chess.Colour
	moveCount  uint
	checkCount uint
	selected   chess.Square
	legalMoves []chess.MoveRecord
	state      State
	winner     chess.Colour
	history    []string

	observe func(board *chess.Board, turn chess.Colour)
	logger  *zap.Logger
}

// Option configures a new Session.
type Option func(*Session)

// WithLogger sets the logger. The global obslog logger is used otherwise.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithID sets the session ID instead of a generated one.
func WithID(id string) Option {
	return func(s *Session) { s.ID = id }
}

// WithPositionObserver calls fn with every position the game reaches,
// starting with the initial one. A promotion is observed once the piece is
// chosen.
func WithPositionObserver(fn func(board *chess.Board, turn chess.Colour)) Option {
	return func(s *Session) { s.observe = fn }
}

// WithBoard starts the game from board with the given side to move and
// move counter instead of the standard position.
// New refuses a board that does not hold exactly one king per colour.
func WithBoard(board *chess.Board, setup engine.Setup) Option {
	return func(s *Session) {
		s.board = *board
		s.turn = setup.Turn
		s.moveCount = setup.MoveCount
	}
}

// New creates a session. Without options it starts from the standard
// position with White to move.
func New(opts ...Option) (*Session, error) {
	s := &Session{
		ID:       uuid.NewString(),
		board:    *chess.StandardBoard(),
		turn:     chess.White,
		selected: chess.NoSquare,
		logger:   obslog.L(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.scratch = s.board
	s.logger = s.logger.With(zap.String("session", s.ID))

	if err := engine.CheckKings(&s.board); err != nil {
		return nil, s.moveError(err, "")
	}
	if err := s.evaluate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Board returns the live board. Callers must not modify it.
func (s *Session) Board() *chess.Board { return &s.board }

// Turn returns the colour to move.
func (s *Session) Turn() chess.Colour { return s.turn }

// MoveCount returns the number of half-moves played.
func (s *Session) MoveCount() uint { return s.moveCount }

// CheckCount returns the number of pieces attacking the mover's king.
func (s *Session) CheckCount() uint { return s.checkCount }

// Status returns the lifecycle state.
func (s *Session) Status() State { return s.state }

// Selected returns the selected square, or NoSquare.
func (s *Session) Selected() chess.Square { return s.selected }

// LegalMoves returns the moves generated for the selected piece.
func (s *Session) LegalMoves() []chess.MoveRecord { return s.legalMoves }

// History returns the move lines played so far, in the form a user types
// them ("e2 e4", "q", "ff").
func (s *Session) History() []string { return s.history }

// Winner returns the winning colour once the game has been decided.
func (s *Session) Winner() (chess.Colour, bool) {
	switch s.state {
	case Checkmate:
		return s.turn.Opposite(), true
	case Forfeit:
		return s.winner, true
	}
	return chess.White, false
}

// ready fails when the session cannot take a selection or a move.
func (s *Session) ready() error {
	switch {
	case s.state.Over():
		return errors.ErrGameOver
	case s.state == Promoting:
		return errors.ErrAwaitingPromotion
	}
	return nil
}

// Select picks the mover's piece on sq and returns its generated moves.
func (s *Session) Select(sq chess.Square) ([]chess.MoveRecord, error) {
	if err := s.ready(); err != nil {
		return nil, s.moveError(err, sq.String())
	}
	piece := s.board.Get(sq)
	if piece.IsEmpty() {
		return nil, s.moveError(errors.ErrNoPiece, sq.String())
	}
	if piece.Colour != s.turn {
		return nil, s.moveError(errors.ErrNotYourPiece, sq.String())
	}

	s.selected = sq
	s.legalMoves = engine.LegalMovesFrom(&s.board, sq, s.moveCount, s.checkCount)
	s.logger.Debug("select",
		zap.Stringer("square", sq),
		zap.Stringer("piece", piece.Kind),
		zap.Int("moves", len(s.legalMoves)))
	return s.legalMoves, nil
}

// ClearSelection drops the current selection.
func (s *Session) ClearSelection() {
	if s.state == Promoting {
		return
	}
	s.selected = chess.NoSquare
	s.legalMoves = nil
}

// Move plays the selected piece to target. The move is tried on the scratch
// board first and only committed when the mover's king is left safe. A
// promotion leaves the session in the Promoting state until Promote is
// called.
func (s *Session) Move(target chess.Square) (chess.MoveKind, error) {
	if err := s.ready(); err != nil {
		return chess.Illegal, s.moveError(err, target.String())
	}
	if s.selected == chess.NoSquare {
		return chess.Illegal, s.moveError(errors.ErrNoSelection, target.String())
	}

	origin := s.selected
	line := origin.String() + " " + target.String()
	if _, ok := engine.FindTarget(s.legalMoves, target); !ok {
		s.logger.Debug("reject", zap.String("move", line), zap.String("reason", "not generated"))
		return chess.Illegal, s.moveError(errors.ErrIllegalMove, line)
	}

	kind, err := engine.TryMove(&s.board, &s.scratch, origin, target, s.moveCount, s.checkCount)
	if err != nil {
		s.scratch = s.board
		s.logger.Debug("reject", zap.String("move", line), zap.Error(err))
		return chess.Illegal, s.moveError(err, line)
	}

	undo := *s
	s.board = s.scratch
	s.history = append(s.history, line)
	s.logger.Info("move",
		zap.Uint("ply", s.moveCount),
		zap.Stringer("colour", s.turn),
		zap.String("move", line),
		zap.Stringer("kind", kind))

	if kind == chess.Promotion {
		s.state = Promoting
		s.selected = target
		s.legalMoves = nil
		return kind, nil
	}
	if err := s.advance(); err != nil {
		s.rollback(undo, line, err)
		return chess.Illegal, err
	}
	return kind, nil
}

// MoveCoordinates selects origin and moves it to target in one step.
func (s *Session) MoveCoordinates(origin, target chess.Square) (chess.MoveKind, error) {
	if _, err := s.Select(origin); err != nil {
		return chess.Illegal, err
	}
	kind, err := s.Move(target)
	if err != nil {
		s.ClearSelection()
	}
	return kind, err
}

// Promote replaces the pawn that just reached the last rank and finishes
// the turn.
func (s *Session) Promote(kind chess.Kind) error {
	if s.state != Promoting {
		return s.moveError(fmt.Errorf("no pawn awaiting promotion: %w", errors.ErrInvalidPromotion), string(kind.Letter()))
	}
	undo := *s
	if err := engine.Promote(&s.board, s.selected, kind); err != nil {
		return s.moveError(err, string(kind.Letter()))
	}
	s.history = append(s.history, string(toLower(kind.Letter())))
	s.logger.Info("promote", zap.Stringer("square", s.selected), zap.Stringer("piece", kind))
	s.state = Playing
	if err := s.advance(); err != nil {
		s.rollback(undo, string(kind.Letter()), err)
		return err
	}
	return nil
}

// Forfeit ends the game with a loss for the side to move.
func (s *Session) Forfeit() error {
	if s.state.Over() {
		return s.moveError(errors.ErrGameOver, "ff")
	}
	s.state = Forfeit
	s.winner = s.turn.Opposite()
	s.selected = chess.NoSquare
	s.legalMoves = nil
	s.history = append(s.history, "ff")
	s.logger.Info("forfeit", zap.Stringer("loser", s.turn), zap.Stringer("winner", s.winner))
	return nil
}

// Resign records a decided game in favour of winner, unless the board has
// already decided it.
func (s *Session) Resign(winner chess.Colour) {
	if s.state.Over() {
		return
	}
	s.state = Forfeit
	s.winner = winner
	s.selected = chess.NoSquare
	s.legalMoves = nil
	s.logger.Info("result", zap.Stringer("winner", winner))
}

// Draw records an agreed or recorded draw.
func (s *Session) Draw() {
	if s.state.Over() {
		return
	}
	s.state = Drawn
	s.selected = chess.NoSquare
	s.legalMoves = nil
	s.logger.Info("result", zap.String("outcome", "draw"))
}

// advance hands the turn to the opponent and evaluates the new position.
func (s *Session) advance() error {
	s.moveCount++
	s.turn = s.turn.Opposite()
	s.selected = chess.NoSquare
	s.legalMoves = nil
	return s.evaluate()
}

// rollback puts back the state saved before a move whose resulting
// position could not be evaluated.
func (s *Session) rollback(undo Session, move string, err error) {
	*s = undo
	s.scratch = s.board
	s.logger.Error("rollback", zap.String("move", move), zap.Error(err))
}

// evaluate recomputes the check count and terminal state for the mover.
func (s *Session) evaluate() error {
	state, checkCount, err := engine.Evaluate(&s.board, &s.scratch, s.turn, s.moveCount)
	s.scratch = s.board
	if err != nil {
		return s.moveError(err, "")
	}
	s.checkCount = checkCount
	if s.observe != nil {
		s.observe(&s.board, s.turn)
	}

	switch state {
	case engine.Checkmate:
		s.state = Checkmate
		s.logger.Info("checkmate", zap.Stringer("loser", s.turn), zap.Uint("ply", s.moveCount))
	case engine.Stalemate:
		s.state = Stalemate
		s.logger.Info("stalemate", zap.Uint("ply", s.moveCount))
	case engine.Check:
		s.logger.Info("check", zap.Stringer("colour", s.turn), zap.Uint("attackers", checkCount))
	}
	return nil
}

func (s *Session) moveError(err error, move string) error {
	return &errors.MoveError{
		Err:    err,
		Ply:    s.moveCount,
		Colour: s.turn.String(),
		Move:   move,
	}
}

func toLower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}
