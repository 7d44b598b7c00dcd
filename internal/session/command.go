package session

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/lgbarn/chess-go/internal/chess"
	"github.com/lgbarn/chess-go/internal/engine"
	"github.com/lgbarn/chess-go/internal/errors"
)

// CommandType identifies a parsed input line.
type CommandType int

const (
	CmdInvalid CommandType = iota
	CmdQuit
	CmdHelp
	CmdSave
	CmdLoad
	CmdClear
	CmdSquare
	CmdQuickMove
	CmdPromote
)

var commandNames = []string{"invalid", "quit", "help", "save", "load", "clear", "square", "move", "promote"}

// String returns the name of the command type.
func (c CommandType) String() string {
	if c >= 0 && int(c) < len(commandNames) {
		return commandNames[c]
	}
	return "unknown"
}

// Mode selects which commands an input line may be.
type Mode int

const (
	// MoveMode accepts selections, moves and the general commands.
	MoveMode Mode = iota
	// PromotionMode accepts only a promotion piece and the general commands.
	PromotionMode
)

// Command is one parsed input line.
type Command struct {
	Type      CommandType
	Square    chess.Square // CmdSquare, and the origin of CmdQuickMove
	Target    chess.Square // CmdQuickMove
	Promotion chess.Kind   // CmdPromote
	Arg       string       // CmdSave and CmdLoad path, if given
	Text      string
}

// ParseCommand parses one line typed by a user or received from a peer.
func ParseCommand(line string, mode Mode) Command {
	text := strings.TrimSpace(line)
	cmd := Command{Type: CmdInvalid, Square: chess.NoSquare, Target: chess.NoSquare, Text: text}
	fields := strings.Fields(strings.ToLower(text))
	if len(fields) == 0 {
		return cmd
	}

	switch fields[0] {
	case "quit", "exit", "ff":
		if len(fields) == 1 {
			cmd.Type = CmdQuit
		}
		return cmd
	case "?", "help":
		if len(fields) == 1 {
			cmd.Type = CmdHelp
		}
		return cmd
	case "save", "load":
		if len(fields) > 2 {
			return cmd
		}
		cmd.Type = CmdSave
		if fields[0] == "load" {
			cmd.Type = CmdLoad
		}
		if len(fields) == 2 {
			// Keep the path's original case.
			cmd.Arg = strings.Fields(text)[1]
		}
		return cmd
	}

	if mode == PromotionMode {
		if len(fields) == 1 && len(fields[0]) == 1 {
			switch kind := chess.KindFromLetter(fields[0][0]); kind {
			case chess.Queen, chess.Rook, chess.Bishop, chess.Knight:
				cmd.Type = CmdPromote
				cmd.Promotion = kind
			}
		}
		return cmd
	}

	switch len(fields) {
	case 1:
		if fields[0] == "clear" {
			cmd.Type = CmdClear
		} else if sq, err := chess.ParseSquare(fields[0]); err == nil {
			cmd.Type = CmdSquare
			cmd.Square = sq
		}
	case 2:
		origin, errOrigin := chess.ParseSquare(fields[0])
		target, errTarget := chess.ParseSquare(fields[1])
		if errOrigin == nil && errTarget == nil {
			cmd.Type = CmdQuickMove
			cmd.Square = origin
			cmd.Target = target
		}
	}
	return cmd
}

// Mode returns the input mode matching the session state.
func (s *Session) Mode() Mode {
	if s.state == Promoting {
		return PromotionMode
	}
	return MoveMode
}

// ApplyLine parses line and performs it. Help, save and load are returned
// for the caller to handle; they do not change the session.
func (s *Session) ApplyLine(line string) (Command, error) {
	cmd := ParseCommand(line, s.Mode())
	s.logger.Debug("command", zap.Stringer("type", cmd.Type), zap.String("text", cmd.Text))

	switch cmd.Type {
	case CmdInvalid:
		return cmd, fmt.Errorf("%q: %w", cmd.Text, errors.ErrInvalidNotation)
	case CmdQuit:
		return cmd, s.Forfeit()
	case CmdClear:
		s.ClearSelection()
	case CmdSquare:
		_, err := s.SelectOrMove(cmd.Square)
		return cmd, err
	case CmdQuickMove:
		_, err := s.MoveCoordinates(cmd.Square, cmd.Target)
		return cmd, err
	case CmdPromote:
		return cmd, s.Promote(cmd.Promotion)
	}
	return cmd, nil
}

// SelectOrMove handles a single typed square. With a piece selected, a
// square among its generated targets moves there; any other square is
// selected instead. It returns the kind of move played, or Illegal when the
// square was only selected.
func (s *Session) SelectOrMove(sq chess.Square) (chess.MoveKind, error) {
	if s.selected != chess.NoSquare && s.state == Playing {
		if _, ok := engine.FindTarget(s.legalMoves, sq); ok {
			return s.Move(sq)
		}
	}
	_, err := s.Select(sq)
	return chess.Illegal, err
}
