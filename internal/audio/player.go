package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-simon/internal/config"
	"github.com/vovakirdan/tui-simon/internal/games/simon/core"
)

// Player plays pad tones on the system speaker.
// It implements core.Audio; Play never blocks.
type Player struct {
	mu          sync.Mutex
	tones       map[core.Color]float64
	rate        beep.SampleRate
	length      time.Duration
	volume      float64
	mixer       *beep.Mixer
	initialized bool
}

// NewPlayer creates a player for the pads of reg. Call Init before Play.
func NewPlayer(reg *core.Registry, cfg config.AudioConfig) *Player {
	p := &Player{
		tones:  make(map[core.Color]float64, reg.Len()),
		rate:   beep.SampleRate(cfg.SampleRate),
		length: time.Duration(cfg.ToneMs) * time.Millisecond,
		volume: cfg.Volume,
		mixer:  &beep.Mixer{},
	}
	for _, pad := range reg.Pads() {
		p.tones[pad.Color] = pad.Tone
	}
	return p
}

// Init opens the speaker. On failure the player stays silent.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(p.rate, p.rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play starts the tone of pad c.
func (p *Player) Play(c core.Color) {
	s := p.Stream(c)
	if s == nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Stream returns the tone streamer of pad c, or nil for unknown pads.
func (p *Player) Stream(c core.Color) beep.Streamer {
	freq, ok := p.tones[c]
	if !ok {
		return nil
	}
	return Tone(freq, p.length, p.volume, p.rate)
}

// Close silences all playing tones.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// Silent is an Audio that plays nothing.
type Silent struct{}

// Play does nothing.
func (Silent) Play(core.Color) {}

var (
	_ core.Audio = (*Player)(nil)
	_ core.Audio = Silent{}
)
