package web

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/tui-simon/internal/games/simon/core"
)

// ErrSessionNotFound is returned for unknown or deleted session IDs.
var ErrSessionNotFound = errors.New("web: session not found")

// ErrTooManySessions is returned when the session table is full.
var ErrTooManySessions = errors.New("web: too many sessions")

// session is one remotely driven engine. The engine is not safe for
// concurrent use, so every access holds mu.
type session struct {
	mu      sync.Mutex
	id      string
	player  string
	engine  *core.Engine
	rec     *recorder
	saved   bool // Outcome of the current game already stored
	created time.Time
	touched time.Time
}

func newSession(settings core.Settings, seed int64, player string) *session {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rec := newRecorder()
	now := time.Now()
	return &session{
		id:      uuid.NewString(),
		player:  player,
		engine:  core.NewEngine(settings, rand.New(rand.NewSource(seed)), rec, rec),
		rec:     rec,
		created: now,
		touched: now,
	}
}

// sessions is the table of live sessions, keyed by ID.
type sessions struct {
	mu    sync.RWMutex
	byID  map[string]*session
	limit int
}

func newSessions(limit int) *sessions {
	return &sessions{byID: make(map[string]*session), limit: limit}
}

func (t *sessions) add(s *session) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.limit > 0 && len(t.byID) >= t.limit {
		return ErrTooManySessions
	}
	t.byID[s.id] = s
	return nil
}

func (t *sessions) get(id string) (*session, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if s, ok := t.byID[id]; ok {
		return s, nil
	}
	return nil, ErrSessionNotFound
}

func (t *sessions) remove(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.byID[id]; !ok {
		return false
	}
	delete(t.byID, id)
	return true
}

func (t *sessions) len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.byID)
}

// expire drops sessions not touched since cutoff and returns how many
// were dropped.
func (t *sessions) expire(cutoff time.Time) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	n := 0
	for id, s := range t.byID {
		s.mu.Lock()
		stale := s.touched.Before(cutoff)
		s.mu.Unlock()
		if stale {
			delete(t.byID, id)
			n++
		}
	}
	return n
}
