package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/lox/postrainer/internal/randutil"
	"github.com/lox/postrainer/internal/trainer"
)

const (
	DefaultTickPeriod  = 100 * time.Millisecond
	DefaultMaxSessions = 64
)

// Option configures a Server
type Option func(*Server)

// WithClock sets the clock that drives session ticks and flash delays
func WithClock(clock quartz.Clock) Option {
	return func(s *Server) { s.clock = clock }
}

// WithDrillConfig sets the configuration new sessions start with
func WithDrillConfig(cfg trainer.Config) Option {
	return func(s *Server) { s.drillConfig = cfg }
}

// WithFlashDelay sets the error-flash delay for new sessions
func WithFlashDelay(d time.Duration) Option {
	return func(s *Server) { s.flashDelay = d }
}

// WithTickPeriod sets how often session countdowns advance
func WithTickPeriod(d time.Duration) Option {
	return func(s *Server) {
		if d > 0 {
			s.tickPeriod = d
		}
	}
}

// WithMaxSessions caps concurrent sessions
func WithMaxSessions(n int) Option {
	return func(s *Server) {
		if n > 0 {
			s.maxSessions = n
		}
	}
}

// WithSeed makes every session's rounds reproducible. Session n (0-based)
// draws from seed+n.
func WithSeed(seed int64) Option {
	return func(s *Server) { s.seed = seed }
}

// WithOriginCheck restricts upgrades to same-origin requests
func WithOriginCheck(restrict bool) Option {
	return func(s *Server) {
		if !restrict {
			s.upgrader.CheckOrigin = func(r *http.Request) bool { return true }
		} else {
			s.upgrader.CheckOrigin = nil
		}
	}
}

// Server represents the WebSocket drill server
type Server struct {
	addr        string
	upgrader    websocket.Upgrader
	logger      *log.Logger
	clock       quartz.Clock
	drillConfig trainer.Config
	flashDelay  time.Duration
	tickPeriod  time.Duration
	maxSessions int
	seed        int64

	mu          sync.RWMutex
	connections map[string]*Connection
	started     int64
	wg          sync.WaitGroup

	ctx        context.Context
	cancel     context.CancelFunc
	httpServer *http.Server
}

// NewServer creates a new WebSocket server
func NewServer(addr string, logger *log.Logger, opts ...Option) *Server {
	ctx, cancel := context.WithCancel(context.Background())

	s := &Server{
		addr: addr,
		upgrader: websocket.Upgrader{
			// Local drill tool; any origin may connect unless restricted
			CheckOrigin:     func(r *http.Request) bool { return true },
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		logger:      logger.WithPrefix("server"),
		clock:       quartz.NewReal(),
		drillConfig: trainer.DefaultConfig(),
		flashDelay:  trainer.DefaultFlashDelay,
		tickPeriod:  DefaultTickPeriod,
		maxSessions: DefaultMaxSessions,
		connections: make(map[string]*Connection),
		ctx:         ctx,
		cancel:      cancel,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the HTTP handler serving /ws and /health
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/health", s.handleHealth)
	return mux
}

// Start starts the WebSocket server and blocks until it stops
func (s *Server) Start() error {
	s.mu.Lock()
	if s.ctx.Err() != nil {
		s.mu.Unlock()
		return nil
	}
	s.httpServer = &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	srv := s.httpServer
	s.mu.Unlock()

	s.logger.Info("Starting WebSocket server", "addr", s.addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop closes every session and shuts the HTTP server down
func (s *Server) Stop(ctx context.Context) error {
	s.cancel()

	s.mu.RLock()
	srv := s.httpServer
	s.mu.RUnlock()

	var err error
	if srv != nil {
		err = srv.Shutdown(ctx)
	}

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		return ctx.Err()
	}
	return err
}

// SessionCount returns the number of live sessions
func (s *Server) SessionCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.connections)
}

// handleWebSocket handles WebSocket upgrade requests
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	if s.ctx.Err() != nil {
		http.Error(w, "server shutting down", http.StatusServiceUnavailable)
		return
	}

	id := uuid.NewString()
	seed, ok := s.reserve(id)
	if !ok {
		s.logger.Warn("Rejecting connection, session limit reached", "max", s.maxSessions)
		http.Error(w, "too many sessions", http.StatusServiceUnavailable)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.release(id)
		s.logger.Error("Failed to upgrade connection", "error", err)
		return
	}

	ctrl, err := trainer.New(
		trainer.WithClock(s.clock),
		trainer.WithSource(randutil.NewSource(seed)),
		trainer.WithLogger(s.logger.With("session", id)),
		trainer.WithFlashDelay(s.flashDelay),
		trainer.WithConfig(s.drillConfig),
	)
	if err != nil {
		s.release(id)
		s.logger.Error("Failed to create controller", "error", err)
		_ = conn.Close()
		return
	}

	client := NewConnection(id, conn, ctrl, s.clock, s.tickPeriod, s.logger)
	s.mu.Lock()
	s.connections[id] = client
	total := len(s.connections)
	s.mu.Unlock()
	s.logger.Info("Client connected", "session", id, "total", total)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer s.release(id)

		if err := client.Run(s.ctx); err != nil {
			s.logger.Warn("Session ended with error", "session", id, "error", err)
		}
		_ = conn.Close()
		s.logger.Info("Client disconnected", "session", id)
	}()
}

// reserve claims a session slot and returns the seed for its source
func (s *Server) reserve(id string) (int64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.connections) >= s.maxSessions {
		return 0, false
	}
	s.connections[id] = nil

	seed := int64(0)
	if s.seed != 0 {
		seed = s.seed + s.started
	}
	s.started++
	return seed, true
}

func (s *Server) release(id string) {
	s.mu.Lock()
	delete(s.connections, id)
	s.mu.Unlock()
}

// handleHealth handles health check requests
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = fmt.Fprintf(w, "OK") // Ignore write errors for health check
}
