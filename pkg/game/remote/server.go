package remote

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"slices"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"dungeondaily/pkg/game/gameplay"
	"dungeondaily/pkg/game/state"
)

const shutdownTimeout = 5 * time.Second

// Options configures the server
type Options struct {
	Policy   state.EnemyPolicy
	ShareURL string

	// AllowedOrigins limits websocket origins; empty allows any
	AllowedOrigins []string

	// Now returns the time used for dates that are not given; nil means time.Now
	Now func() time.Time
}

// Server exposes games over HTTP
type Server struct {
	opts     Options
	store    *Store
	log      zerolog.Logger
	upgrader websocket.Upgrader
}

// New creates a server with an empty session table
func New(opts Options, log zerolog.Logger) *Server {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	s := &Server{
		opts:  opts,
		store: NewStore(),
		log:   log,
	}
	s.upgrader = websocket.Upgrader{CheckOrigin: s.checkOrigin}
	return s
}

// Sessions returns the session table
func (s *Server) Sessions() *Store {
	return s.store
}

// Handler returns the router for all API and websocket routes
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.Use(s.logRequests)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/daily", s.handleDaily).Methods(http.MethodGet)
	api.HandleFunc("/games", s.handleCreate).Methods(http.MethodPost)
	api.HandleFunc("/games/{id}", s.handleGet).Methods(http.MethodGet)
	api.HandleFunc("/games/{id}", s.handleDelete).Methods(http.MethodDelete)
	api.HandleFunc("/games/{id}/moves", s.handleMove).Methods(http.MethodPost)
	api.HandleFunc("/games/{id}/restart", s.handleRestart).Methods(http.MethodPost)
	api.HandleFunc("/games/{id}/share", s.handleShare).Methods(http.MethodGet)

	r.HandleFunc("/ws/games/{id}", s.handleSocket).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, errors.New("not found"))
	})
	return r
}

// Run listens on addr until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context, addr string) error {
	eg, ctx := errgroup.WithContext(ctx)

	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	eg.Go(func() error {
		s.log.Info().Str("addr", addr).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listening on %s: %w", addr, err)
		}
		return nil
	})

	eg.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.log.Info().Int("sessions", s.store.Len()).Msg("server shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}

func (s *Server) checkOrigin(r *http.Request) bool {
	if len(s.opts.AllowedOrigins) == 0 {
		return true
	}
	origin := r.Header.Get("Origin")
	return origin == "" || slices.Contains(s.opts.AllowedOrigins, origin)
}

// errorResponse is the body of every failed request
type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

// generate builds a game, logging generation failures
func (s *Server) generate(seed int64) (*state.Game, error) {
	g, err := gameplay.BuildGame(seed, s.opts.Policy)
	if err != nil {
		s.log.Error().Err(err).Int64("seed", seed).Msg("dungeon generation failed")
		return nil, err
	}
	return g, nil
}

// statusRecorder remembers the status code for the request log
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Hijack lets the websocket upgrader take over the connection
func (r *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	hj, ok := r.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("response writer does not support hijacking")
	}
	r.status = http.StatusSwitchingProtocols
	return hj.Hijack()
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Dur("took", time.Since(start)).
			Msg("request")
	})
}
