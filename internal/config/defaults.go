package config

import (
	_ "embed"
)

//go:embed defaults/simon.yaml
var defaultSimonYAML []byte

// DefaultSimonConfig returns the default Simon configuration.
func DefaultSimonConfig() SimonConfig {
	return SimonConfig{
		Timing: SimonTiming{
			PadIntervalMs: 600,
			HighlightMs:   500,
			TurnGraceMs:   1000,
			RoundDelayMs:  1000,
			PressFlashMs:  250,
		},
		Levels: []int{8, 14, 20, 31},
		Pads: []PadConfig{
			{Color: "red", Key: "r", Tone: 261.63, Label: "RED"},
			{Color: "green", Key: "g", Tone: 329.63, Label: "GREEN"},
			{Color: "blue", Key: "b", Tone: 164.81, Label: "BLUE"},
			{Color: "yellow", Key: "y", Tone: 220.00, Label: "YELLOW"},
		},
		Audio: AudioConfig{
			Enabled:    true,
			SampleRate: 44100,
			ToneMs:     400,
			Volume:     0.3,
		},
	}
}
