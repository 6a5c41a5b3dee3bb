package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/krail/prototags/internal/store"
	"github.com/krail/prototags/internal/tags"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// Query is one lookup request sent by a client over the socket.
type Query struct {
	Name   string `json:"name"`
	Prefix bool   `json:"prefix"`
}

// Response carries the matching tags, or an error message.
type Response struct {
	Tags []tags.Tag `json:"tags"`
	Err  string     `json:"error,omitempty"`
}

// Server exposes a tag index over a WebSocket endpoint at /lookup. Each
// connection is served by its own goroutine; a client may send any number
// of queries before closing.
type Server struct {
	port   int
	store  *store.TagStore
	mu     sync.Mutex
	ln     net.Listener
	server *http.Server
}

func New(port int, st *store.TagStore) *Server {
	return &Server{
		port:  port,
		store: st,
	}
}

// Start begins listening and serving in the background.
func (s *Server) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.server != nil {
		return fmt.Errorf("server is already listening")
	}

	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", s.port))
	if err != nil {
		return fmt.Errorf("failed to listen on port %d: %w", s.port, err)
	}
	s.ln = ln

	mux := http.NewServeMux()
	mux.HandleFunc("/lookup", s.handleLookup)
	s.server = &http.Server{Handler: mux}

	go func() {
		// ErrServerClosed is the normal shutdown path
		_ = s.server.Serve(ln)
	}()

	return nil
}

// Addr is the bound listen address, valid after Start.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ln == nil {
		return ""
	}
	return s.ln.Addr().String()
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

func (s *Server) handleLookup(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	for {
		var q Query
		if err := conn.ReadJSON(&q); err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return
			}
			return
		}

		var resp Response
		var ts []tags.Tag
		if q.Prefix {
			ts, err = s.store.LookupPrefix(q.Name)
		} else {
			ts, err = s.store.Lookup(q.Name)
		}
		if err != nil {
			resp.Err = err.Error()
		} else {
			resp.Tags = ts
		}

		if err := conn.WriteJSON(resp); err != nil {
			return
		}
	}
}
