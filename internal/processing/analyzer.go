// Package processing replays recorded games and summarises what happened
// in them.
package processing

import (
	"strings"

	"go.uber.org/zap"

	"github.com/lgbarn/chess-go/internal/chess"
	"github.com/lgbarn/chess-go/internal/engine"
	"github.com/lgbarn/chess-go/internal/hashing"
	"github.com/lgbarn/chess-go/internal/obslog"
	"github.com/lgbarn/chess-go/internal/session"
)

// GameAnalysis holds statistics gathered from replaying a game.
type GameAnalysis struct {
	Plies        int
	Captures     int
	EnPassant    int
	Castles      int
	Promotions   int
	Checks       int
	DoubleChecks int

	HasUnderpromotion bool
	// HasRepetition is set when some position occurred three times. The
	// game is not drawn by it.
	HasRepetition bool
	MaxRepeats    int
	// InsufficientMaterial is set when neither side can mate in the final
	// position.
	InsufficientMaterial bool
	// MaterialOdds is set when the game started without the standard
	// material.
	MaterialOdds bool

	State  session.State
	Winner string // "white", "black" or empty
	End    string // the event that ended the replay
}

// UnderpromotionFound returns true if any pawn promoted to non-queen.
func (ga *GameAnalysis) UnderpromotionFound() bool {
	return ga.HasUnderpromotion
}

// RepetitionDetected returns true if a position occurred three times.
func (ga *GameAnalysis) RepetitionDetected() bool {
	return ga.HasRepetition
}

// Report is the outcome of replaying one file.
type Report struct {
	Path     string
	Replay   session.ReplayResult
	Final    session.Snapshot
	Analysis *GameAnalysis
}

// AnalyzeGame summarises a replay played on s. repeats may be nil when
// positions were not tracked.
func AnalyzeGame(result session.ReplayResult, s *session.Session, repeats *hashing.RepetitionCounter) *GameAnalysis {
	ga := &GameAnalysis{
		Plies: len(result.Moves),
		State: s.Status(),
		End:   result.End.Type.String(),

		InsufficientMaterial: engine.HasInsufficientMaterial(s.Board()),
	}
	if winner, ok := s.Winner(); ok {
		ga.Winner = strings.ToLower(winner.String())
	}

	for _, m := range result.Moves {
		switch m.Kind {
		case chess.Capture:
			ga.Captures++
		case chess.EnPassant:
			ga.Captures++
			ga.EnPassant++
		case chess.Castle:
			ga.Castles++
		case chess.Promotion:
			ga.Promotions++
			if m.Origin.File() != m.Target.File() {
				ga.Captures++
			}
			if m.Promotion != chess.Queen {
				ga.HasUnderpromotion = true
			}
		}
		if m.Check > 0 {
			ga.Checks++
		}
		if m.Check > 1 {
			ga.DoubleChecks++
		}
	}

	if repeats != nil {
		ga.MaxRepeats = repeats.MaxRepeats()
		ga.HasRepetition = ga.MaxRepeats >= 3
	}
	return ga
}

// ReplayFile replays the game stored at path in a new session, tracking
// repeated positions along the way. A failed replay still yields a report
// describing the moves made before the failure.
func ReplayFile(path string, opts ...session.Option) (*Report, error) {
	repeats := hashing.NewRepetitionCounter()
	var start *chess.Board
	observe := func(board *chess.Board, turn chess.Colour) {
		if start == nil {
			start = board.Copy()
		}
		repeats.Record(board, turn)
	}
	s, err := session.New(append([]session.Option{session.WithPositionObserver(observe)}, opts...)...)
	if err != nil {
		return nil, err
	}

	result, err := s.ReplayFile(path)
	report := &Report{
		Path:     path,
		Replay:   result,
		Final:    s.Snapshot(),
		Analysis: AnalyzeGame(result, s, repeats),
	}
	report.Analysis.MaterialOdds = start != nil && !engine.HasStandardMaterial(start)
	if err != nil {
		obslog.L().Warn("replay_failed", zap.String("file", path), zap.Error(err))
	}
	return report, err
}
