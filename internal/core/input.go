package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionConfirm        // Enter, Space - start a game, dismiss a notice
	ActionPrev           // Left - previous level while idle
	ActionNext           // Right - next level while idle
	ActionBack           // Escape - go back to the menu
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionConfirm:
		return "Confirm"
	case ActionPrev:
		return "Prev"
	case ActionNext:
		return "Next"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// Point is a cell position on the screen.
type Point struct {
	X, Y int
}

// InputFrame collects the input of one simulation tick.
// Actions are flags; Keys and Clicks keep their arrival order because a
// game may care about the order of several presses within one tick.
type InputFrame struct {
	Actions map[Action]bool
	Keys    []rune  // Printable keys not bound to an action
	Clicks  []Point // Mouse presses
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// AddKey records a printable key press.
func (f *InputFrame) AddKey(r rune) {
	f.Keys = append(f.Keys, r)
}

// AddClick records a mouse press.
func (f *InputFrame) AddClick(x, y int) {
	f.Clicks = append(f.Clicks, Point{X: x, Y: y})
}

// Empty reports whether nothing happened this frame.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0 && len(f.Keys) == 0 && len(f.Clicks) == 0
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Keys = f.Keys[:0]
	f.Clicks = f.Clicks[:0]
}
