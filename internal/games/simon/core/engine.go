package core

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// ErrGameInProgress is returned by Start when a game is already running.
var ErrGameInProgress = errors.New("core: game already in progress")

// Phase is the state machine position of an Engine.
type Phase int

const (
	PhaseIdle          Phase = iota // No game; start control visible
	PhaseComputerTurn               // Sequence playback, input blocked
	PhasePlayerTurn                 // Waiting for presses
	PhaseRoundComplete              // Short pause before the next computer turn
	PhaseGameOver                   // Transient; the reset path lands in Idle
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseComputerTurn:
		return "computer_turn"
	case PhasePlayerTurn:
		return "player_turn"
	case PhaseRoundComplete:
		return "round_complete"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Messages holds the text the engine writes to the surface.
// Format strings take integer arguments as noted.
type Messages struct {
	Heading      string // Idle heading
	ComputerTurn string // Status while the sequence plays
	RoundHeading string // Heading during a game: round, max rounds
	PlayerTurn   string // Status when the player turn begins: presses left
	Remaining    string // Status after each press: presses left
	RoundWon     string // Status between rounds
	Win          string // Notification after the final round
	Lose         string // Notification after a wrong press
}

// DefaultMessages returns the stock game text.
func DefaultMessages() Messages {
	return Messages{
		Heading:      "simon says",
		ComputerTurn: "simon's turn...",
		RoundHeading: "round %d of %d",
		PlayerTurn:   "presses left: %d",
		Remaining:    "remaining presses: %d",
		RoundWon:     "you got it!",
		Win:          "congrats, you won!",
		Lose:         "better luck next time!",
	}
}

// Settings configures an Engine.
type Settings struct {
	Registry *Registry
	Levels   []int // Round count per level, level 1 first

	PadInterval       time.Duration // Gap between pad activations during playback
	HighlightDuration time.Duration // How long a played pad stays lit
	TurnGrace         time.Duration // Wait after the last activation before the player turn
	RoundDelay        time.Duration // Pause between a completed round and the next playback
	PressFlash        time.Duration // Highlight on player presses; 0 disables

	Messages Messages
}

// DefaultSettings returns the classic timings: a pad every 600ms lit for
// 500ms, the player turn 1s after the last pad, 1s between rounds.
func DefaultSettings() Settings {
	return Settings{
		Registry:          DefaultRegistry(),
		Levels:            DefaultLevels,
		PadInterval:       600 * time.Millisecond,
		HighlightDuration: 500 * time.Millisecond,
		TurnGrace:         1000 * time.Millisecond,
		RoundDelay:        1000 * time.Millisecond,
		PressFlash:        250 * time.Millisecond,
		Messages:          DefaultMessages(),
	}
}

// withDefaults fills zero fields from DefaultSettings. PressFlash is left
// alone since zero is meaningful.
func (s Settings) withDefaults() Settings {
	d := DefaultSettings()
	if s.Registry == nil {
		s.Registry = d.Registry
	}
	if len(s.Levels) == 0 {
		s.Levels = d.Levels
	}
	if s.PadInterval <= 0 {
		s.PadInterval = d.PadInterval
	}
	if s.HighlightDuration <= 0 {
		s.HighlightDuration = d.HighlightDuration
	}
	if s.TurnGrace < 0 {
		s.TurnGrace = d.TurnGrace
	}
	if s.RoundDelay < 0 {
		s.RoundDelay = d.RoundDelay
	}

	m := &s.Messages
	fill := func(dst *string, def string) {
		if *dst == "" {
			*dst = def
		}
	}
	fill(&m.Heading, d.Messages.Heading)
	fill(&m.ComputerTurn, d.Messages.ComputerTurn)
	fill(&m.RoundHeading, d.Messages.RoundHeading)
	fill(&m.PlayerTurn, d.Messages.PlayerTurn)
	fill(&m.Remaining, d.Messages.Remaining)
	fill(&m.RoundWon, d.Messages.RoundWon)
	fill(&m.Win, d.Messages.Win)
	fill(&m.Lose, d.Messages.Lose)

	return s
}

// Outcome describes how a game ended.
type Outcome struct {
	Won     bool
	Level   int
	Rounds  int // Fully completed rounds
	Message string
}

// GameState is the mutable state of one game.
type GameState struct {
	Phase            Phase
	Level            int
	ComputerSequence []Color
	PlayerSequence   []Color
	RoundCount       int
	MaxRoundCount    int
	InputEnabled     bool
	LastOutcome      *Outcome // Set when a game ends, cleared by Start
}

// Engine owns a GameState and the timers that drive it.
// It is not safe for concurrent use; callers serialize Start, Press,
// Tick and Reset.
type Engine struct {
	settings Settings
	reg      *Registry
	rng      *rand.Rand
	sched    *Scheduler
	surface  Surface
	audio    Audio
	state    GameState
	lightOff map[Color]TimerID // pending highlight-off per pad
}

// NewEngine creates an engine in the Idle phase. Nil collaborators are
// replaced with no-ops; a nil rng uses a fixed seed.
func NewEngine(settings Settings, rng *rand.Rand, surface Surface, audio Audio) *Engine {
	settings = settings.withDefaults()
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	if surface == nil {
		surface = nopSurface{}
	}
	if audio == nil {
		audio = nopAudio{}
	}

	e := &Engine{
		settings: settings,
		reg:      settings.Registry,
		rng:      rng,
		sched:    NewScheduler(),
		surface:  surface,
		audio:    audio,
		lightOff: make(map[Color]TimerID),
	}
	e.Reset("")
	return e
}

// Registry returns the pad registry.
func (e *Engine) Registry() *Registry {
	return e.reg
}

// Settings returns the effective settings.
func (e *Engine) Settings() Settings {
	return e.settings
}

// Phase returns the current phase.
func (e *Engine) Phase() Phase {
	return e.state.Phase
}

// Now returns the engine's virtual time.
func (e *Engine) Now() time.Duration {
	return e.sched.Now()
}

// PendingTimers returns the number of scheduled callbacks.
func (e *Engine) PendingTimers() int {
	return e.sched.Pending()
}

// State returns a copy of the game state.
func (e *Engine) State() GameState {
	s := e.state
	s.ComputerSequence = append([]Color(nil), e.state.ComputerSequence...)
	s.PlayerSequence = append([]Color(nil), e.state.PlayerSequence...)
	if e.state.LastOutcome != nil {
		o := *e.state.LastOutcome
		s.LastOutcome = &o
	}
	return s
}

// Start begins a game at the given level. On error nothing changes.
func (e *Engine) Start(level int) error {
	if e.state.Phase != PhaseIdle {
		return ErrGameInProgress
	}

	rounds, err := ResolveLevelIn(e.settings.Levels, level)
	if err != nil {
		return err
	}
	if level < 1 {
		level = 1
	}

	e.state.Level = level
	e.state.MaxRoundCount = rounds
	e.state.RoundCount = 1
	e.state.LastOutcome = nil

	e.surface.SetVisible(TargetStart, false)
	e.surface.SetVisible(TargetStatus, true)

	e.beginComputerTurn()
	return nil
}

// Tick advances virtual time to now, firing due callbacks.
func (e *Engine) Tick(now time.Duration) {
	e.sched.Advance(now)
}

// Elapse advances virtual time by d.
func (e *Engine) Elapse(d time.Duration) {
	e.sched.Advance(e.sched.Now() + d)
}

// Press handles a pad press. It reports whether the press was accepted;
// presses outside the player turn and unregistered colors are ignored.
func (e *Engine) Press(c Color) bool {
	if e.state.Phase != PhasePlayerTurn || !e.state.InputEnabled {
		return false
	}
	if _, ok := e.reg.Lookup(c); !ok {
		return false
	}

	e.audio.Play(c)
	if e.settings.PressFlash > 0 {
		e.flash(c, e.settings.PressFlash)
	}

	e.state.PlayerSequence = append(e.state.PlayerSequence, c)
	index := len(e.state.PlayerSequence) - 1
	remaining := len(e.state.ComputerSequence) - len(e.state.PlayerSequence)

	e.surface.SetText(TargetStatus, fmt.Sprintf(e.settings.Messages.Remaining, remaining))

	if e.state.ComputerSequence[index] != e.state.PlayerSequence[index] {
		e.gameOver(false)
		return true
	}

	if remaining == 0 {
		e.checkRound()
	}
	return true
}

// PressName parses an event name and presses that pad.
// Unknown names are ignored.
func (e *Engine) PressName(name string) bool {
	c, ok := ParseColor(name)
	if !ok {
		return false
	}
	return e.Press(c)
}

// Reset cancels pending timers and returns to Idle. A non-empty message is
// sent to Surface.Notify. Calling Reset repeatedly is harmless.
func (e *Engine) Reset(message string) {
	e.sched.CancelAll()
	clear(e.lightOff)

	e.state.ComputerSequence = e.state.ComputerSequence[:0]
	e.state.PlayerSequence = e.state.PlayerSequence[:0]
	e.state.RoundCount = 0

	// Cancelled timers may have been about to switch a pad off.
	for _, p := range e.reg.pads {
		e.surface.SetHighlighted(p.Color, false)
	}
	e.setInput(false)

	if message != "" {
		e.surface.Notify(message)
	}

	e.surface.SetText(TargetHeading, e.settings.Messages.Heading)
	e.surface.SetVisible(TargetStart, true)
	e.surface.SetVisible(TargetStatus, false)

	e.state.Phase = PhaseIdle
}

func (e *Engine) beginComputerTurn() {
	e.state.Phase = PhaseComputerTurn
	e.setInput(false)

	msgs := e.settings.Messages
	e.surface.SetText(TargetStatus, msgs.ComputerTurn)
	e.surface.SetText(TargetHeading, fmt.Sprintf(msgs.RoundHeading, e.state.RoundCount, e.state.MaxRoundCount))

	e.state.ComputerSequence = append(e.state.ComputerSequence, NextPad(e.reg, e.rng))

	// Each activation is timed from the start of the turn, not from the
	// previous one.
	for i, c := range e.state.ComputerSequence {
		c := c
		e.sched.After(e.settings.PadInterval*time.Duration(i+1), func() {
			e.activatePad(c)
		})
	}

	handOff := e.settings.PadInterval*time.Duration(e.state.RoundCount) + e.settings.TurnGrace
	e.sched.After(handOff, e.beginPlayerTurn)
}

func (e *Engine) activatePad(c Color) {
	e.audio.Play(c)
	e.flash(c, e.settings.HighlightDuration)
}

// flash lights c for d. A new flash of a lit pad restarts its timer.
func (e *Engine) flash(c Color, d time.Duration) {
	if id, ok := e.lightOff[c]; ok {
		e.sched.Cancel(id)
	}
	e.surface.SetHighlighted(c, true)
	e.lightOff[c] = e.sched.After(d, func() {
		delete(e.lightOff, c)
		e.surface.SetHighlighted(c, false)
	})
}

func (e *Engine) beginPlayerTurn() {
	e.state.Phase = PhasePlayerTurn
	e.setInput(true)

	remaining := len(e.state.ComputerSequence) - len(e.state.PlayerSequence)
	e.surface.SetText(TargetStatus, fmt.Sprintf(e.settings.Messages.PlayerTurn, remaining))
}

func (e *Engine) checkRound() {
	if len(e.state.PlayerSequence) == e.state.MaxRoundCount {
		e.gameOver(true)
		return
	}

	e.state.RoundCount++
	e.state.PlayerSequence = e.state.PlayerSequence[:0]
	e.state.Phase = PhaseRoundComplete
	e.setInput(false)
	e.surface.SetText(TargetStatus, e.settings.Messages.RoundWon)

	e.sched.After(e.settings.RoundDelay, e.beginComputerTurn)
}

func (e *Engine) gameOver(won bool) {
	e.state.Phase = PhaseGameOver

	outcome := Outcome{
		Won:     won,
		Level:   e.state.Level,
		Rounds:  e.state.RoundCount - 1,
		Message: e.settings.Messages.Lose,
	}
	if won {
		outcome.Rounds = e.state.MaxRoundCount
		outcome.Message = e.settings.Messages.Win
	}
	e.state.LastOutcome = &outcome

	e.Reset(outcome.Message)
}

func (e *Engine) setInput(enabled bool) {
	e.state.InputEnabled = enabled
	e.surface.SetInputEnabled(enabled)
}
