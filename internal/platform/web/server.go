// Package web exposes the Simon engine over HTTP. Each session owns one
// engine whose virtual clock only moves when the client posts a tick, so
// a client can replay a game at any speed.
package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/vovakirdan/tui-simon/internal/config"
	"github.com/vovakirdan/tui-simon/internal/games/simon/core"
	"github.com/vovakirdan/tui-simon/internal/storage"
)

// GameID is the ID results are stored under.
const GameID = "simon"

// Config holds HTTP server limits.
type Config struct {
	// MaxSessions caps live sessions; 0 means no cap.
	MaxSessions int

	// SessionTTL drops sessions idle for longer; 0 keeps them forever.
	SessionTTL time.Duration

	// RequestTimeout bounds handler time.
	RequestTimeout time.Duration
}

// DefaultConfig returns the server defaults.
func DefaultConfig() Config {
	return Config{
		MaxSessions:    1024,
		SessionTTL:     30 * time.Minute,
		RequestTimeout: 10 * time.Second,
	}
}

// Server bundles the router, the session table and the score store.
type Server struct {
	r        *chi.Mux
	cfg      Config
	settings core.Settings
	sessions *sessions
	store    *storage.Store
	logger   *log.Logger
}

// NewServer builds a server for the given engine settings. store may be
// nil, in which case finished games are not recorded.
func NewServer(settings core.Settings, store *storage.Store, cfg Config, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	if len(settings.Levels) == 0 {
		settings.Levels = core.DefaultLevels
	}

	s := &Server{
		r:        chi.NewRouter(),
		cfg:      cfg,
		settings: settings,
		sessions: newSessions(cfg.MaxSessions),
		store:    store,
		logger:   logger,
	}

	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(chimw.Recoverer)
	if cfg.RequestTimeout > 0 {
		s.r.Use(chimw.Timeout(cfg.RequestTimeout))
	}
	s.r.Use(jsonContentType)

	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true, "sessions": s.sessions.len()})
	})
	s.r.Get("/levels", s.handleLevels)

	s.r.Route("/games", func(r chi.Router) {
		r.Post("/", s.handleCreate)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.handleGet)
			r.Delete("/", s.handleDelete)
			r.Post("/start", s.handleStart)
			r.Post("/press", s.handlePress)
			r.Post("/tick", s.handleTick)
		})
	})

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})

	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler { return s.r }

// ListenAndServe serves on addr until ctx is done, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	if s.cfg.SessionTTL > 0 {
		go s.expireLoop(ctx)
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("starting HTTP server", "address", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func (s *Server) expireLoop(ctx context.Context) {
	t := time.NewTicker(s.cfg.SessionTTL / 4)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			if n := s.sessions.expire(now.Add(-s.cfg.SessionTTL)); n > 0 {
				s.logger.Info("expired idle sessions", "count", n)
			}
		}
	}
}

// ----------------------------- payloads ------------------------------------

type levelRes struct {
	Level  int    `json:"level"`
	Rounds int    `json:"rounds"`
	Preset string `json:"preset,omitempty"`
}

type createReq struct {
	Level  int    `json:"level"`
	Seed   int64  `json:"seed"`
	Player string `json:"player"`
}

type startReq struct {
	Level int `json:"level"`
}

type pressReq struct {
	Color string `json:"color"`
}

type tickReq struct {
	ElapsedMs int64 `json:"elapsed_ms"`
}

type outcomeRes struct {
	Won     bool   `json:"won"`
	Level   int    `json:"level"`
	Rounds  int    `json:"rounds"`
	Message string `json:"message"`
}

// snapshot is the JSON view of a session after a request.
type snapshot struct {
	ID             string      `json:"id"`
	Phase          string      `json:"phase"`
	Level          int         `json:"level"`
	Round          int         `json:"round"`
	MaxRounds      int         `json:"max_rounds"`
	SequenceLength int         `json:"sequence_length"`
	Pressed        []string    `json:"pressed"`
	InputEnabled   bool        `json:"input_enabled"`
	NowMs          int64       `json:"now_ms"`
	Heading        string      `json:"heading"`
	Status         string      `json:"status"`
	StatusVisible  bool        `json:"status_visible"`
	StartVisible   bool        `json:"start_visible"`
	Highlighted    []string    `json:"highlighted"`
	Notices        []string    `json:"notices"`
	Played         []string    `json:"played"`
	Outcome        *outcomeRes `json:"outcome,omitempty"`
	Accepted       *bool       `json:"accepted,omitempty"`
}

// ----------------------------- handlers ------------------------------------

func (s *Server) handleLevels(w http.ResponseWriter, r *http.Request) {
	out := make([]levelRes, len(s.settings.Levels))
	for i, rounds := range s.settings.Levels {
		out[i] = levelRes{
			Level:  i + 1,
			Rounds: rounds,
			Preset: string(config.PresetForLevel(i + 1)),
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req createReq
	if !decodeBody(w, r, &req) {
		return
	}

	sess := newSession(s.settings, req.Seed, req.Player)
	if err := sess.engine.Start(req.Level); err != nil {
		writeStartError(w, err)
		return
	}
	snap := s.snapshot(sess, nil)

	if err := s.sessions.add(sess); err != nil {
		writeError(w, http.StatusServiceUnavailable, "too_many_sessions")
		return
	}

	s.logger.Info("game created", "id", sess.id, "level", snap.Level, "player", req.Player)
	writeJSON(w, http.StatusCreated, snap)
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookup(w, r)
	if !ok {
		return
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	writeJSON(w, http.StatusOK, s.snapshot(sess, nil))
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	if !s.sessions.remove(chi.URLParam(r, "id")) {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleStart(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookup(w, r)
	if !ok {
		return
	}
	var req startReq
	if !decodeBody(w, r, &req) {
		return
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if err := sess.engine.Start(req.Level); err != nil {
		writeStartError(w, err)
		return
	}
	sess.saved = false
	writeJSON(w, http.StatusOK, s.snapshot(sess, nil))
}

func (s *Server) handlePress(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookup(w, r)
	if !ok {
		return
	}
	var req pressReq
	if !decodeBody(w, r, &req) {
		return
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	// Unknown colors are ignored like any other rejected press.
	accepted := sess.engine.PressName(req.Color)
	s.recordOutcome(sess)
	writeJSON(w, http.StatusOK, s.snapshot(sess, &accepted))
}

func (s *Server) handleTick(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookup(w, r)
	if !ok {
		return
	}
	var req tickReq
	if !decodeBody(w, r, &req) {
		return
	}
	if req.ElapsedMs < 0 {
		writeError(w, http.StatusBadRequest, "negative_elapsed")
		return
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.engine.Elapse(time.Duration(req.ElapsedMs) * time.Millisecond)
	s.recordOutcome(sess)
	writeJSON(w, http.StatusOK, s.snapshot(sess, nil))
}

// lookup finds the session named in the URL and marks it used.
func (s *Server) lookup(w http.ResponseWriter, r *http.Request) (*session, bool) {
	sess, err := s.sessions.get(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "not_found")
		return nil, false
	}
	sess.mu.Lock()
	sess.touched = time.Now()
	sess.mu.Unlock()
	return sess, true
}

// recordOutcome stores a finished game once. The caller holds sess.mu.
func (s *Server) recordOutcome(sess *session) {
	st := sess.engine.State()
	if st.LastOutcome == nil || sess.saved {
		return
	}
	sess.saved = true

	o := st.LastOutcome
	s.logger.Info("game finished", "id", sess.id, "level", o.Level, "rounds", o.Rounds, "won", o.Won)

	if s.store == nil {
		return
	}
	_, err := s.store.SaveResult(storage.Result{
		GameID: GameID,
		Level:  o.Level,
		Score:  o.Rounds,
		Won:    o.Won,
		Player: sess.player,
	})
	if err != nil {
		s.logger.Warn("could not save result", "id", sess.id, "error", err)
	}
}

// snapshot renders the session. The caller holds sess.mu.
func (s *Server) snapshot(sess *session, accepted *bool) snapshot {
	st := sess.engine.State()
	notices, played := sess.rec.drain()

	pressed := make([]string, len(st.PlayerSequence))
	for i, c := range st.PlayerSequence {
		pressed[i] = c.String()
	}

	snap := snapshot{
		ID:             sess.id,
		Phase:          st.Phase.String(),
		Level:          st.Level,
		Round:          st.RoundCount,
		MaxRounds:      st.MaxRoundCount,
		SequenceLength: len(st.ComputerSequence),
		Pressed:        pressed,
		InputEnabled:   st.InputEnabled,
		NowMs:          sess.engine.Now().Milliseconds(),
		Heading:        sess.rec.heading,
		Status:         sess.rec.status,
		StatusVisible:  sess.rec.statusVisible,
		StartVisible:   sess.rec.startVisible,
		Highlighted:    sess.rec.highlighted(sess.engine.Registry()),
		Notices:        notices,
		Played:         played,
		Accepted:       accepted,
	}
	if o := st.LastOutcome; o != nil {
		snap.Outcome = &outcomeRes{Won: o.Won, Level: o.Level, Rounds: o.Rounds, Message: o.Message}
	}
	return snap
}

// ----------------------------- helpers -------------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// decodeBody reads an optional JSON body into v. An empty body leaves v
// untouched.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if r.Body == nil {
		return true
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "bad_json")
		return false
	}
	return true
}

func writeStartError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, core.ErrInvalidLevel):
		writeError(w, http.StatusBadRequest, "invalid_level")
	case errors.Is(err, core.ErrGameInProgress):
		writeError(w, http.StatusConflict, "game_in_progress")
	default:
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("start_failed: %v", err))
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"error": code})
}
