package session

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/lgbarn/chess-go/internal/chess"
	"github.com/lgbarn/chess-go/internal/errors"
	"github.com/lgbarn/chess-go/internal/parser"
)

// PlayedMove is one move made during a replay.
type PlayedMove struct {
	Text      string
	Origin    chess.Square
	Target    chess.Square
	Kind      chess.MoveKind
	Promotion chess.Kind
	Check     uint // attackers on the opponent's king afterwards
}

// ReplayResult describes a completed replay.
type ReplayResult struct {
	Moves []PlayedMove
	End   parser.Event // the event that ended the replay
	State State
}

// Replay plays the events of r until the recorded result. Comments are
// logged, moves are selected and played, and a missing promotion piece
// becomes a Queen. A result event settles the game as recorded unless the
// board has already decided it.
//
// Invalid notation, an illegal move, or the end of input before a result
// stops the replay with a *errors.ReplayError. The end of input is accepted
// when the game is already over on the board.
func (s *Session) Replay(r parser.MoveReader) (ReplayResult, error) {
	var result ReplayResult

	for {
		e := r.ReadNextMove(s)
		switch {
		case e.Type == parser.Comment:
			s.logger.Debug("replay comment", zap.Int("line", e.Line), zap.String("text", e.Text))

		case e.Type == parser.MoveCoordinates:
			played, err := s.playEvent(e)
			if err != nil {
				return result, replayError(e, err)
			}
			if played.Kind != chess.Illegal {
				result.Moves = append(result.Moves, played)
			}

		case e.Type.IsResult():
			s.settle(e.Type)
			result.End = e
			result.State = s.state
			s.logger.Info("replay finished",
				zap.Stringer("result", e.Type),
				zap.Int("moves", len(result.Moves)),
				zap.Stringer("state", s.state))
			return result, nil

		case e.Type == parser.EOF && s.state.Over():
			result.End = e
			result.State = s.state
			return result, nil

		case e.Type == parser.EOF:
			result.End = e
			result.State = s.state
			return result, replayError(e, errors.ErrReplayTruncated)

		default:
			result.End = e
			result.State = s.state
			return result, replayError(e, errors.ErrInvalidNotation)
		}
	}
}

// playEvent performs one MoveCoordinates event. An event without an origin
// behaves like a typed square: it selects, or moves the selected piece.
// The returned move has Kind Illegal when the event only made a selection.
func (s *Session) playEvent(e parser.Event) (PlayedMove, error) {
	played := PlayedMove{Text: e.Text, Origin: e.Origin, Target: e.Target}

	var err error
	if e.Origin == chess.NoSquare {
		played.Origin = s.selected
		played.Kind, err = s.SelectOrMove(e.Target)
	} else {
		played.Kind, err = s.MoveCoordinates(e.Origin, e.Target)
	}
	if err != nil || played.Kind == chess.Illegal {
		return played, err
	}

	if played.Kind == chess.Promotion {
		played.Promotion = e.Promotion
		if played.Promotion == chess.None {
			played.Promotion = chess.Queen
		}
		if err := s.Promote(played.Promotion); err != nil {
			return played, err
		}
	}
	played.Check = s.checkCount
	return played, nil
}

// settle applies a recorded result.
func (s *Session) settle(result parser.EventType) {
	switch result {
	case parser.WinWhite:
		s.Resign(chess.White)
	case parser.WinBlack:
		s.Resign(chess.Black)
	case parser.Draw:
		s.Draw()
	}
}

func replayError(e parser.Event, err error) error {
	return &errors.ReplayError{
		Err:   err,
		Line:  e.Line,
		Event: e.Type.String(),
		Text:  e.Text,
	}
}

// ReplayFile opens path, picks the reader from its extension and replays
// it. The file is closed on every return path.
func (s *Session) ReplayFile(path string) (ReplayResult, error) {
	format := parser.DetectFormat(path)
	f, err := os.Open(path)
	if err != nil {
		return ReplayResult{}, fmt.Errorf("opening replay: %w", err)
	}
	defer f.Close()

	r, err := parser.NewReader(format, f)
	if err != nil {
		return ReplayResult{}, &errors.ReplayError{Err: err, File: path}
	}

	s.logger.Info("replay", zap.String("file", path), zap.Stringer("format", format))
	result, err := s.Replay(r)
	var replayErr *errors.ReplayError
	if errors.As(err, &replayErr) {
		replayErr.File = path
	}
	return result, err
}
