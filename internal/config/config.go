// Package config provides YAML-based configuration loading and difficulty
// presets for the Simon game.
package config

// SimonConfig contains all configuration for the Simon game.
type SimonConfig struct {
	Timing   SimonTiming    `yaml:"timing"`
	Levels   []int          `yaml:"levels"` // Round count per level, level 1 first
	Pads     []PadConfig    `yaml:"pads"`
	Messages MessagesConfig `yaml:"messages"`
	Audio    AudioConfig    `yaml:"audio"`
}

// SimonTiming defines the playback and turn timings in milliseconds.
type SimonTiming struct {
	PadIntervalMs int `yaml:"pad_interval_ms"` // Gap between pads during playback
	HighlightMs   int `yaml:"highlight_ms"`    // How long a played pad stays lit
	TurnGraceMs   int `yaml:"turn_grace_ms"`   // Wait after playback before the player turn
	RoundDelayMs  int `yaml:"round_delay_ms"`  // Pause between rounds
	PressFlashMs  int `yaml:"press_flash_ms"`  // Highlight on player presses, 0 disables
}

// PadConfig describes one colored pad.
type PadConfig struct {
	Color string  `yaml:"color"` // red, green, blue or yellow
	Key   string  `yaml:"key"`   // Single keyboard key
	Tone  float64 `yaml:"tone"`  // Frequency in Hz
	Label string  `yaml:"label"`
}

// MessagesConfig overrides the game text. Empty fields keep the stock text.
type MessagesConfig struct {
	Heading      string `yaml:"heading"`
	ComputerTurn string `yaml:"computer_turn"`
	RoundHeading string `yaml:"round_heading"`
	PlayerTurn   string `yaml:"player_turn"`
	Remaining    string `yaml:"remaining"`
	RoundWon     string `yaml:"round_won"`
	Win          string `yaml:"win"`
	Lose         string `yaml:"lose"`
}

// AudioConfig defines the tone synthesizer parameters.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	SampleRate int     `yaml:"sample_rate"`
	ToneMs     int     `yaml:"tone_ms"` // Length of one pad tone
	Volume     float64 `yaml:"volume"`  // 0.0 to 1.0
}
