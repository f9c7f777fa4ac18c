package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/vovakirdan/tui-simon/internal/games/simon/core"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// ReservedKeys are bound to game controls (quit, level change, pause,
// start) and cannot press a pad. Digits 1-9 are kept for pad numbers.
const ReservedKeys = "qhlp "

// Validate checks timings, the level table and the pad list.
func (c SimonConfig) Validate() error {
	t := c.Timing
	if t.PadIntervalMs <= 0 {
		return fmt.Errorf("%w: pad_interval_ms must be positive", ErrInvalidConfig)
	}
	if t.HighlightMs <= 0 {
		return fmt.Errorf("%w: highlight_ms must be positive", ErrInvalidConfig)
	}
	if t.TurnGraceMs < 0 || t.RoundDelayMs < 0 || t.PressFlashMs < 0 {
		return fmt.Errorf("%w: negative timing", ErrInvalidConfig)
	}

	if len(c.Levels) == 0 {
		return fmt.Errorf("%w: no levels", ErrInvalidConfig)
	}
	for i, rounds := range c.Levels {
		if rounds <= 0 {
			return fmt.Errorf("%w: level %d has %d rounds", ErrInvalidConfig, i+1, rounds)
		}
	}

	if _, err := c.Registry(); err != nil {
		return err
	}

	if c.Audio.Enabled {
		if c.Audio.SampleRate <= 0 || c.Audio.ToneMs <= 0 {
			return fmt.Errorf("%w: audio sample_rate and tone_ms must be positive", ErrInvalidConfig)
		}
		if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
			return fmt.Errorf("%w: audio volume must be within [0, 1]", ErrInvalidConfig)
		}
	}
	return nil
}

// Registry builds the pad registry described by the pad list.
func (c SimonConfig) Registry() (*core.Registry, error) {
	pads := make([]core.Pad, 0, len(c.Pads))
	for i, p := range c.Pads {
		color, ok := core.ParseColor(p.Color)
		if !ok {
			return nil, fmt.Errorf("%w: pad %d: unknown color %q", ErrInvalidConfig, i+1, p.Color)
		}
		if p.Tone <= 0 {
			return nil, fmt.Errorf("%w: pad %s: tone must be positive", ErrInvalidConfig, color)
		}

		var key rune
		if p.Key != "" {
			if utf8.RuneCountInString(p.Key) != 1 {
				return nil, fmt.Errorf("%w: pad %s: key %q is not a single character", ErrInvalidConfig, color, p.Key)
			}
			key, _ = utf8.DecodeRuneInString(p.Key)
			key = unicode.ToLower(key)
			if strings.ContainsRune(ReservedKeys, key) || (key >= '1' && key <= '9') {
				return nil, fmt.Errorf("%w: pad %s: key %q is reserved", ErrInvalidConfig, color, p.Key)
			}
		}

		label := p.Label
		if label == "" {
			label = color.String()
		}
		pads = append(pads, core.Pad{Color: color, Tone: p.Tone, Key: key, Label: label})
	}

	reg, err := core.NewRegistry(pads...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return reg, nil
}

// ToSettings converts the configuration into engine settings.
func (c SimonConfig) ToSettings() (core.Settings, error) {
	if err := c.Validate(); err != nil {
		return core.Settings{}, err
	}
	reg, err := c.Registry()
	if err != nil {
		return core.Settings{}, err
	}

	ms := func(n int) time.Duration { return time.Duration(n) * time.Millisecond }
	m := c.Messages

	return core.Settings{
		Registry:          reg,
		Levels:            append([]int(nil), c.Levels...),
		PadInterval:       ms(c.Timing.PadIntervalMs),
		HighlightDuration: ms(c.Timing.HighlightMs),
		TurnGrace:         ms(c.Timing.TurnGraceMs),
		RoundDelay:        ms(c.Timing.RoundDelayMs),
		PressFlash:        ms(c.Timing.PressFlashMs),
		Messages: core.Messages{
			Heading:      m.Heading,
			ComputerTurn: m.ComputerTurn,
			RoundHeading: m.RoundHeading,
			PlayerTurn:   m.PlayerTurn,
			Remaining:    m.Remaining,
			RoundWon:     m.RoundWon,
			Win:          m.Win,
			Lose:         m.Lose,
		},
	}, nil
}
