package simon

import (
	"github.com/vovakirdan/tui-simon/internal/games/simon/core"
)

// view is the terminal Surface: it records what the engine asks for and
// Render draws it.
type view struct {
	text    map[core.Target]string
	visible map[core.Target]bool
	lit     map[core.Color]bool
	input   bool
	notice  string // Game-over message waiting to be dismissed
}

func newView() *view {
	return &view{
		text:    make(map[core.Target]string),
		visible: make(map[core.Target]bool),
		lit:     make(map[core.Color]bool),
	}
}

func (v *view) SetHighlighted(c core.Color, on bool) {
	v.lit[c] = on
}

func (v *view) SetText(t core.Target, text string) {
	v.text[t] = text
}

func (v *view) SetVisible(t core.Target, visible bool) {
	v.visible[t] = visible
}

func (v *view) SetInputEnabled(enabled bool) {
	v.input = enabled
}

func (v *view) Notify(message string) {
	v.notice = message
}
