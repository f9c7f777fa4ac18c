// Package core contains the pure Simon game logic: the pad registry, the
// sequence generator, the turn scheduler and the round state machine.
// It has no terminal, audio or network dependencies; front ends drive it
// through Engine and observe it through the Surface and Audio interfaces.
package core

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
)

// Color identifies a pad.
type Color int

// Pad colors, in the order the default registry lists them.
const (
	ColorNone Color = iota
	ColorRed
	ColorGreen
	ColorBlue
	ColorYellow
)

// String returns the lowercase color name used in events and config.
func (c Color) String() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorBlue:
		return "blue"
	case ColorYellow:
		return "yellow"
	default:
		return "none"
	}
}

// ParseColor maps an event name to a Color. Matching is case-insensitive.
func ParseColor(name string) (Color, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "red":
		return ColorRed, true
	case "green":
		return ColorGreen, true
	case "blue":
		return ColorBlue, true
	case "yellow":
		return ColorYellow, true
	}
	return ColorNone, false
}

// Pad is a single colored input/output unit.
type Pad struct {
	Color Color
	Tone  float64 // Audio handle: tone frequency in Hz
	Key   rune    // Visual handle: key binding shown on the pad
	Label string  // Visual handle: text drawn on the pad
}

// Registry is the immutable catalogue of pads available to a game.
type Registry struct {
	pads []Pad
}

// Classic Simon tones.
const (
	ToneRed    = 261.63 // C4
	ToneGreen  = 329.63 // E4
	ToneBlue   = 164.81 // E3
	ToneYellow = 220.00 // A3
)

// DefaultPads returns the four classic pads.
func DefaultPads() []Pad {
	return []Pad{
		{Color: ColorRed, Tone: ToneRed, Key: 'r', Label: "RED"},
		{Color: ColorGreen, Tone: ToneGreen, Key: 'g', Label: "GREEN"},
		{Color: ColorBlue, Tone: ToneBlue, Key: 'b', Label: "BLUE"},
		{Color: ColorYellow, Tone: ToneYellow, Key: 'y', Label: "YELLOW"},
	}
}

// DefaultRegistry returns a registry holding DefaultPads.
func DefaultRegistry() *Registry {
	reg, err := NewRegistry(DefaultPads()...)
	if err != nil {
		panic(err)
	}
	return reg
}

// NewRegistry builds a registry. Pads must be non-empty, with distinct
// valid colors and distinct keys.
func NewRegistry(pads ...Pad) (*Registry, error) {
	if len(pads) == 0 {
		return nil, errors.New("core: registry needs at least one pad")
	}

	seenColor := make(map[Color]bool, len(pads))
	seenKey := make(map[rune]bool, len(pads))
	for _, p := range pads {
		if p.Color == ColorNone {
			return nil, errors.New("core: pad without a color")
		}
		if seenColor[p.Color] {
			return nil, fmt.Errorf("core: duplicate pad %s", p.Color)
		}
		seenColor[p.Color] = true

		if p.Key != 0 {
			if seenKey[p.Key] {
				return nil, fmt.Errorf("core: key %q bound to more than one pad", p.Key)
			}
			seenKey[p.Key] = true
		}
	}

	return &Registry{pads: append([]Pad(nil), pads...)}, nil
}

// Len returns the number of pads.
func (r *Registry) Len() int {
	return len(r.pads)
}

// Pads returns a copy of the catalogue.
func (r *Registry) Pads() []Pad {
	return append([]Pad(nil), r.pads...)
}

// Lookup returns the pad with the given color.
func (r *Registry) Lookup(c Color) (Pad, bool) {
	for _, p := range r.pads {
		if p.Color == c {
			return p, true
		}
	}
	return Pad{}, false
}

// MustLookup is Lookup for colors that are known to be registered.
// A miss is a programming error and panics.
func (r *Registry) MustLookup(c Color) Pad {
	p, ok := r.Lookup(c)
	if !ok {
		panic(fmt.Sprintf("core: pad %s is not registered", c))
	}
	return p
}

// ByKey returns the pad bound to the given key.
func (r *Registry) ByKey(key rune) (Pad, bool) {
	for _, p := range r.pads {
		if p.Key == key {
			return p, true
		}
	}
	return Pad{}, false
}

// NextPad picks a registered pad uniformly at random. Repeats are allowed.
func NextPad(r *Registry, rng *rand.Rand) Color {
	return r.pads[rng.Intn(len(r.pads))].Color
}
