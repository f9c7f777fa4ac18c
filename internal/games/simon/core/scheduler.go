package core

import (
	"sort"
	"time"
)

// TimerID is a handle to a scheduled callback.
type TimerID uint64

type timer struct {
	id TimerID
	at time.Duration
	fn func()
}

// Scheduler runs deferred callbacks against a virtual clock.
// Nothing fires on its own: the owner advances time with Advance.
// Callbacks scheduled from inside a callback are timed from the moment
// the outer callback was due, so a large jump in time replays the same
// order a real-time clock would.
type Scheduler struct {
	now     time.Duration
	nextID  TimerID
	pending []timer // sorted by (at, id)
}

// NewScheduler returns a scheduler at time zero.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now returns the current virtual time.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Pending returns the number of callbacks that have not fired yet.
func (s *Scheduler) Pending() int {
	return len(s.pending)
}

// After schedules fn to run d after the current virtual time.
func (s *Scheduler) After(d time.Duration, fn func()) TimerID {
	if d < 0 {
		d = 0
	}
	s.nextID++
	t := timer{id: s.nextID, at: s.now + d, fn: fn}

	i := sort.Search(len(s.pending), func(i int) bool {
		p := s.pending[i]
		return p.at > t.at || (p.at == t.at && p.id > t.id)
	})
	s.pending = append(s.pending, timer{})
	copy(s.pending[i+1:], s.pending[i:])
	s.pending[i] = t

	return t.id
}

// Cancel removes a pending callback. It reports whether one was removed.
func (s *Scheduler) Cancel(id TimerID) bool {
	for i, t := range s.pending {
		if t.id == id {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			return true
		}
	}
	return false
}

// CancelAll drops every pending callback.
func (s *Scheduler) CancelAll() {
	s.pending = s.pending[:0]
}

// Advance moves the clock to now and runs every callback due at or before
// it, earliest first; callbacks due at the same instant run in scheduling
// order. Time never moves backwards.
func (s *Scheduler) Advance(now time.Duration) {
	for len(s.pending) > 0 && s.pending[0].at <= now {
		t := s.pending[0]
		s.pending = s.pending[1:]
		if t.at > s.now {
			s.now = t.at
		}
		t.fn()
	}
	if now > s.now {
		s.now = now
	}
}
