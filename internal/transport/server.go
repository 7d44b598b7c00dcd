package transport

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"

	"github.com/lgbarn/chess-go/internal/chess"
	"github.com/lgbarn/chess-go/internal/config"
	"github.com/lgbarn/chess-go/internal/obslog"
	"github.com/lgbarn/chess-go/internal/session"
)

// Server hosts one game. The websocket route admits a single opponent;
// the board route serves the latest published position as JSON.
type Server struct {
	router  *mux.Router
	handler http.Handler

	mu       sync.Mutex
	joined   bool
	board    *BoardView
	accepted chan *Peer

	greet func(ctx context.Context, conn *websocket.Conn) error
}

// NewServer builds the routes for cfg.
func NewServer(cfg config.NetworkConfig) *Server {
	s := &Server{
		router:   mux.NewRouter(),
		accepted: make(chan *Peer, 1),
		greet:    greetGuest,
	}
	s.router.HandleFunc(cfg.Path, s.playHandler)
	s.router.HandleFunc("/board", s.boardHandler).Methods(http.MethodGet)
	s.handler = handlers.LoggingHandler(obslog.Writer("http"), s.router)
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// Publish makes snap the position served on /board.
func (s *Server) Publish(snap session.Snapshot) {
	view := NewBoardView(snap)
	s.mu.Lock()
	s.board = &view
	s.mu.Unlock()
}

// Accept waits for the opponent to connect. The returned peer plays White.
func (s *Server) Accept(ctx context.Context) (*Peer, error) {
	select {
	case p := <-s.accepted:
		return p, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (s *Server) playHandler(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	if s.joined {
		s.mu.Unlock()
		http.Error(w, "game already has an opponent", http.StatusConflict)
		return
	}
	s.joined = true
	s.mu.Unlock()

	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		obslog.L().Warn("accept_failed", zap.Error(err))
		s.release()
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	err = s.greet(ctx, conn)
	cancel()
	if err != nil {
		obslog.L().Warn("greeting_failed", zap.Error(err))
		s.release()
		_ = conn.Close(websocket.StatusInternalError, "greeting failed")
		return
	}

	peer := newPeer(conn, chess.White)
	obslog.L().Info("opponent_joined", zap.String("remote", r.RemoteAddr))
	s.accepted <- peer
	<-peer.Done()
}

// release frees the opponent seat after a join that did not complete.
func (s *Server) release() {
	s.mu.Lock()
	s.joined = false
	s.mu.Unlock()
}

func greetGuest(ctx context.Context, conn *websocket.Conn) error {
	return wsjson.Write(ctx, conn, Message{Type: TypeHello, Colour: "black"})
}

func (s *Server) boardHandler(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	view := s.board
	s.mu.Unlock()

	if view == nil {
		http.Error(w, "no game in progress", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(view)
}

// Serve runs the server on ln until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{Handler: s, ReadHeaderTimeout: 10 * time.Second}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	obslog.L().Info("hosting", zap.String("addr", ln.Addr().String()))
	if err := srv.Serve(ln); err != http.ErrServerClosed {
		return err
	}
	return nil
}
