package output

import (
	"github.com/lgbarn/chess-go/internal/engine"
	"github.com/lgbarn/chess-go/internal/session"
	"github.com/lgbarn/chess-go/internal/worker"
)

// JSONGame is the JSON form of one replayed file.
type JSONGame struct {
	File           string `json:"file"`
	Plies          int    `json:"plies"`
	State          string `json:"state,omitempty"`
	Winner         string `json:"winner,omitempty"`
	End            string `json:"end,omitempty"`
	Captures       int    `json:"captures,omitempty"`
	EnPassant      int    `json:"enPassant,omitempty"`
	Castles        int    `json:"castles,omitempty"`
	Promotions     int    `json:"promotions,omitempty"`
	Checks         int    `json:"checks,omitempty"`
	Underpromotion bool   `json:"underpromotion,omitempty"`
	Repetition     bool   `json:"repetition,omitempty"`
	Insufficient   bool   `json:"insufficientMaterial,omitempty"`
	MaterialOdds   bool   `json:"materialOdds,omitempty"`
	FinalFEN       string `json:"finalFEN,omitempty"`
	DuplicateOf    string `json:"duplicateOf,omitempty"`
	Error          string `json:"error,omitempty"`
}

// JSONSummary totals a batch.
type JSONSummary struct {
	Games      int `json:"games"`
	Failed     int `json:"failed"`
	Duplicates int `json:"duplicates"`
	WhiteWins  int `json:"whiteWins"`
	BlackWins  int `json:"blackWins"`
	Draws      int `json:"draws"`
	Unfinished int `json:"unfinished"`
}

// JSONOutput holds a whole batch.
type JSONOutput struct {
	Games   []*JSONGame `json:"games"`
	Summary JSONSummary `json:"summary"`
}

// ResultToJSON converts a replay result to its JSON form.
func ResultToJSON(r worker.ProcessResult) *JSONGame {
	jg := &JSONGame{File: r.Path, DuplicateOf: r.DuplicateOf}
	if r.Error != nil {
		jg.Error = r.Error.Error()
	}
	if r.Report == nil {
		return jg
	}

	ga := r.Report.Analysis
	jg.Plies = ga.Plies
	jg.State = ga.State.String()
	jg.Winner = ga.Winner
	jg.End = ga.End
	jg.Captures = ga.Captures
	jg.EnPassant = ga.EnPassant
	jg.Castles = ga.Castles
	jg.Promotions = ga.Promotions
	jg.Checks = ga.Checks
	jg.Underpromotion = ga.UnderpromotionFound()
	jg.Repetition = ga.RepetitionDetected()
	jg.Insufficient = ga.InsufficientMaterial
	jg.MaterialOdds = ga.MaterialOdds

	final := r.Report.Final
	jg.FinalFEN = engine.BoardToFEN(&final.Board, engine.Setup{Turn: final.Turn, MoveCount: final.MoveCount})
	return jg
}

// Summarize totals the games of a batch.
func Summarize(games []*JSONGame) JSONSummary {
	s := JSONSummary{Games: len(games)}
	for _, g := range games {
		if g.DuplicateOf != "" {
			s.Duplicates++
		}
		switch {
		case g.Error != "":
			s.Failed++
		case g.Winner == "white":
			s.WhiteWins++
		case g.Winner == "black":
			s.BlackWins++
		case g.State == session.Drawn.String() || g.State == session.Stalemate.String():
			s.Draws++
		default:
			s.Unfinished++
		}
	}
	return s
}
