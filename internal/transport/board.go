package transport

import (
	"strings"

	"github.com/lgbarn/chess-go/internal/engine"
	"github.com/lgbarn/chess-go/internal/session"
)

// BoardView is the JSON form of a position for external renderers.
type BoardView struct {
	FEN      string   `json:"fen"`
	Turn     string   `json:"turn"`
	Moves    uint     `json:"moves"`
	Check    uint     `json:"check"`
	State    string   `json:"state"`
	Winner   string   `json:"winner,omitempty"`
	Selected string   `json:"selected,omitempty"`
	Targets  []string `json:"targets,omitempty"`
	History  []string `json:"history,omitempty"`
}

// NewBoardView converts a snapshot to its JSON form.
func NewBoardView(snap session.Snapshot) BoardView {
	view := BoardView{
		FEN:     engine.BoardToFEN(&snap.Board, engine.Setup{Turn: snap.Turn, MoveCount: snap.MoveCount}),
		Turn:    strings.ToLower(snap.Turn.String()),
		Moves:   snap.MoveCount,
		Check:   snap.CheckCount,
		State:   snap.State.String(),
		History: snap.History,
	}
	switch snap.State {
	case session.Checkmate:
		view.Winner = strings.ToLower(snap.Turn.Opposite().String())
	case session.Forfeit:
		view.Winner = strings.ToLower(snap.Winner.String())
	}
	if snap.Selected.Valid() {
		view.Selected = snap.Selected.String()
	}
	for _, m := range snap.LegalMoves {
		view.Targets = append(view.Targets, m.Target.String())
	}
	return view
}
