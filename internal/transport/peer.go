// Package transport carries move lines between two players over a
// websocket. The host plays White and accepts exactly one opponent, who
// plays Black.
package transport

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"

	"github.com/lgbarn/chess-go/internal/chess"
	"github.com/lgbarn/chess-go/internal/errors"
	"github.com/lgbarn/chess-go/internal/obslog"
)

// Message types.
const (
	TypeHello = "hello"
	TypeMove  = "move"
	TypeBye   = "bye"
)

// Message is one websocket frame.
type Message struct {
	Type   string `json:"type"`
	Move   string `json:"move,omitempty"`
	Colour string `json:"colour,omitempty"`
}

// Peer is the connection to the other player.
type Peer struct {
	conn   *websocket.Conn
	colour chess.Colour
	logger *zap.Logger

	closeOnce sync.Once
	done      chan struct{}
}

func newPeer(conn *websocket.Conn, colour chess.Colour) *Peer {
	return &Peer{
		conn:   conn,
		colour: colour,
		logger: obslog.L().With(zap.Stringer("colour", colour)),
		done:   make(chan struct{}),
	}
}

// Colour returns the colour the local player plays.
func (p *Peer) Colour() chess.Colour { return p.colour }

// Send sends one move line, exactly as the local player typed it.
func (p *Peer) Send(ctx context.Context, move string) error {
	if err := wsjson.Write(ctx, p.conn, Message{Type: TypeMove, Move: move}); err != nil {
		return p.wrap(err)
	}
	p.logger.Debug("peer_send", zap.String("move", move))
	return nil
}

// Receive waits for the opponent's next move line.
func (p *Peer) Receive(ctx context.Context) (string, error) {
	for {
		var msg Message
		if err := wsjson.Read(ctx, p.conn, &msg); err != nil {
			return "", p.wrap(err)
		}
		switch msg.Type {
		case TypeMove:
			p.logger.Debug("peer_receive", zap.String("move", msg.Move))
			return msg.Move, nil
		case TypeBye:
			return "", errors.ErrPeerClosed
		}
		p.logger.Debug("peer_ignored_frame", zap.String("type", msg.Type))
	}
}

// Close says goodbye and closes the connection.
func (p *Peer) Close() error {
	var err error
	p.closeOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = wsjson.Write(ctx, p.conn, Message{Type: TypeBye})
		err = p.conn.Close(websocket.StatusNormalClosure, "bye")
		close(p.done)
	})
	return err
}

// Done is closed when the peer is closed locally.
func (p *Peer) Done() <-chan struct{} { return p.done }

func (p *Peer) wrap(err error) error {
	switch websocket.CloseStatus(err) {
	case websocket.StatusNormalClosure, websocket.StatusGoingAway:
		return errors.ErrPeerClosed
	}
	return fmt.Errorf("peer: %w", err)
}

// Dial joins a hosted game at url, such as ws://host:8080/play.
func Dial(ctx context.Context, url string) (*Peer, error) {
	conn, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("joining %s: %w", url, err)
	}

	var hello Message
	if err := wsjson.Read(ctx, conn, &hello); err != nil || hello.Type != TypeHello {
		_ = conn.Close(websocket.StatusProtocolError, "expected hello")
		return nil, fmt.Errorf("joining %s: no greeting from host", url)
	}

	colour := chess.Black
	if hello.Colour == "white" {
		colour = chess.White
	}
	obslog.L().Info("joined", zap.String("url", url), zap.Stringer("colour", colour))
	return newPeer(conn, colour), nil
}
