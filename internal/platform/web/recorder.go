package web

import (
	"github.com/vovakirdan/tui-simon/internal/games/simon/core"
)

// recorder is the Surface and Audio of an HTTP session. It keeps the
// current display state and queues notices and played pads until the
// next response drains them.
type recorder struct {
	heading       string
	status        string
	startVisible  bool
	statusVisible bool
	input         bool
	lit           map[core.Color]bool
	notices       []string
	played        []core.Color
}

func newRecorder() *recorder {
	return &recorder{lit: make(map[core.Color]bool)}
}

func (r *recorder) SetHighlighted(c core.Color, on bool) {
	if on {
		r.lit[c] = true
		return
	}
	delete(r.lit, c)
}

func (r *recorder) SetText(t core.Target, text string) {
	switch t {
	case core.TargetHeading:
		r.heading = text
	case core.TargetStatus:
		r.status = text
	}
}

func (r *recorder) SetVisible(t core.Target, visible bool) {
	switch t {
	case core.TargetStart:
		r.startVisible = visible
	case core.TargetStatus:
		r.statusVisible = visible
	}
}

func (r *recorder) SetInputEnabled(enabled bool) { r.input = enabled }
func (r *recorder) Notify(message string)        { r.notices = append(r.notices, message) }
func (r *recorder) Play(c core.Color)            { r.played = append(r.played, c) }

// highlighted returns the lit pads in registry order.
func (r *recorder) highlighted(reg *core.Registry) []string {
	out := []string{}
	for _, p := range reg.Pads() {
		if r.lit[p.Color] {
			out = append(out, p.Color.String())
		}
	}
	return out
}

// drain returns and clears the queued notices and played pads.
func (r *recorder) drain() (notices []string, played []string) {
	notices = append([]string{}, r.notices...)
	played = make([]string, 0, len(r.played))
	for _, c := range r.played {
		played = append(played, c.String())
	}
	r.notices = r.notices[:0]
	r.played = r.played[:0]
	return notices, played
}

var (
	_ core.Surface = (*recorder)(nil)
	_ core.Audio   = (*recorder)(nil)
)
