// Package agentws serves the Cash Dodge environment to external agents over
// WebSocket. Each connection owns one environment and drives it strictly
// request by request: the game advances only when the agent asks for a step.
package agentws

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/cashdodge/internal/agent"
	"github.com/vovakirdan/cashdodge/internal/config"
	"github.com/vovakirdan/cashdodge/internal/core"
	"github.com/vovakirdan/cashdodge/internal/storage"
)

const (
	writeWait      = 10 * time.Second
	idleTimeout    = 5 * time.Minute
	maxMessageSize = 4096
)

// EpisodeSaver persists finished episodes.
type EpisodeSaver interface {
	SaveEpisode(e storage.Episode) (int64, error)
}

// Options configures a Server.
type Options struct {
	Game     config.DodgeConfig
	Runtime  core.RuntimeConfig // Seed 0 picks a fresh seed per connection
	MaxTicks int                // Default step limit, overridable per connection
	Store    EpisodeSaver       // Optional
	Logger   *log.Logger        // Optional
}

// Server accepts agent connections.
type Server struct {
	opts     Options
	logger   *log.Logger
	upgrader websocket.Upgrader
	active   atomic.Int64
}

// NewServer creates a server.
func NewServer(opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Server{
		opts:   opts,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin: func(r *http.Request) bool {
				return true // Agents are not browsers
			},
		},
	}
}

// Handler returns the HTTP routes: /ws for agents and /health for probes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/ws", s.handleWebSocket)
	return mux
}

// ActiveSessions returns the number of open agent connections.
func (s *Server) ActiveSessions() int {
	return int(s.active.Load())
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting agent server", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("agentws: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("stopping agent server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("agentws: shutdown: %w", err)
	}
	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, `{"status":"ok","sessions":%d}`, s.ActiveSessions())
}

// sessionParams are the per-connection settings taken from the query string.
type sessionParams struct {
	codec    Codec
	reward   agent.RewardFunc
	seed     int64
	maxTicks int
}

func (s *Server) parseParams(r *http.Request) (sessionParams, error) {
	q := r.URL.Query()
	p := sessionParams{seed: s.opts.Runtime.Seed, maxTicks: s.opts.MaxTicks}

	var err error
	if p.codec, err = CodecByName(q.Get("codec")); err != nil {
		return p, err
	}
	if p.reward, err = agent.NewReward(q.Get("reward")); err != nil {
		return p, err
	}
	if v := q.Get("seed"); v != "" {
		if p.seed, err = strconv.ParseInt(v, 10, 64); err != nil {
			return p, fmt.Errorf("agentws: invalid seed %q", v)
		}
	}
	if p.seed == 0 {
		p.seed = time.Now().UnixNano()
	}
	if v := q.Get("max_ticks"); v != "" {
		if p.maxTicks, err = strconv.Atoi(v); err != nil || p.maxTicks < 0 {
			return p, fmt.Errorf("agentws: invalid max_ticks %q", v)
		}
	}
	return p, nil
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	params, err := s.parseParams(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("websocket upgrade failed", "error", err)
		return
	}

	sess := newSession(s, conn, params)
	s.active.Add(1)
	defer s.active.Add(-1)

	sess.run()
}

// newSessionID returns a short identifier for log lines.
func newSessionID() string {
	return uuid.NewString()[:8]
}
