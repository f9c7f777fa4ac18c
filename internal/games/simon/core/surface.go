package core

// Target names a display region the engine writes to.
type Target int

const (
	TargetHeading Target = iota
	TargetStatus
	TargetStart // The start control
)

// String returns the target name.
func (t Target) String() string {
	switch t {
	case TargetHeading:
		return "heading"
	case TargetStatus:
		return "status"
	case TargetStart:
		return "start"
	default:
		return "unknown"
	}
}

// Audio plays pad sounds. Play must not block.
type Audio interface {
	Play(c Color)
}

// Surface is everything visual the engine drives.
type Surface interface {
	// SetHighlighted toggles a pad's active state.
	SetHighlighted(c Color, on bool)

	// SetText renders a message into a display region.
	SetText(t Target, text string)

	// SetVisible shows or hides a display region.
	SetVisible(t Target, visible bool)

	// SetInputEnabled gates pad-press delivery.
	SetInputEnabled(enabled bool)

	// Notify announces the end of a game. Front ends show it until the
	// player acknowledges it.
	Notify(message string)
}

type nopAudio struct{}

func (nopAudio) Play(Color) {}

type nopSurface struct{}

func (nopSurface) SetHighlighted(Color, bool) {}
func (nopSurface) SetText(Target, string)     {}
func (nopSurface) SetVisible(Target, bool)    {}
func (nopSurface) SetInputEnabled(bool)       {}
func (nopSurface) Notify(string)              {}
