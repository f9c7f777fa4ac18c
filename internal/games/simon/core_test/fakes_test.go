package core_test

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-simon/internal/games/simon/core"
)

// recorder is a Surface and Audio that remembers what it was told.
type recorder struct {
	text        map[core.Target]string
	visible     map[core.Target]bool
	highlighted map[core.Color]bool
	lit         []core.Color // every highlight-on, in order
	input       bool
	notices     []string
	played      []core.Color
}

func newRecorder() *recorder {
	return &recorder{
		text:        make(map[core.Target]string),
		visible:     make(map[core.Target]bool),
		highlighted: make(map[core.Color]bool),
	}
}

func (r *recorder) SetHighlighted(c core.Color, on bool) {
	r.highlighted[c] = on
	if on {
		r.lit = append(r.lit, c)
	}
}

func (r *recorder) SetText(t core.Target, text string)     { r.text[t] = text }
func (r *recorder) SetVisible(t core.Target, visible bool) { r.visible[t] = visible }
func (r *recorder) SetInputEnabled(enabled bool)           { r.input = enabled }
func (r *recorder) Notify(message string)                  { r.notices = append(r.notices, message) }
func (r *recorder) Play(c core.Color)                      { r.played = append(r.played, c) }

func (r *recorder) anyHighlighted() bool {
	for _, on := range r.highlighted {
		if on {
			return true
		}
	}
	return false
}

// newTestEngine returns an engine with default timings, press flash off.
func newTestEngine(seed int64) (*core.Engine, *recorder) {
	rec := newRecorder()
	settings := core.DefaultSettings()
	settings.PressFlash = 0
	e := core.NewEngine(settings, rand.New(rand.NewSource(seed)), rec, rec)
	return e, rec
}

// playerTurnAt is when the player turn of a round begins, counted from the
// start of that round's computer turn.
func playerTurnAt(round int) time.Duration {
	return time.Duration(round)*600*time.Millisecond + time.Second
}

// waitForPlayer advances until the engine hands control to the player.
func waitForPlayer(e *core.Engine) {
	for i := 0; i < 1000 && e.Phase() != core.PhasePlayerTurn; i++ {
		e.Elapse(100 * time.Millisecond)
	}
}

// replay presses the computer sequence back.
func replay(e *core.Engine) {
	for _, c := range e.State().ComputerSequence {
		e.Press(c)
	}
}

// wrongColor returns a registered color different from c.
func wrongColor(c core.Color) core.Color {
	if c == core.ColorRed {
		return core.ColorGreen
	}
	return core.ColorRed
}
