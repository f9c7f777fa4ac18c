package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyExpert DifficultyPreset = "expert"
)

// Presets lists the difficulty presets from easiest to hardest.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyExpert}
}

// ParseDifficulty parses a preset name, case-insensitively.
func ParseDifficulty(name string) (DifficultyPreset, error) {
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Presets() {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or expert)", name)
}

// LevelForPreset returns the level a preset starts at.
func LevelForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyNormal:
		return 2
	case DifficultyHard:
		return 3
	case DifficultyExpert:
		return 4
	default:
		return 1
	}
}

// PresetForLevel returns the preset name of a level, or "" for levels
// without one.
func PresetForLevel(level int) DifficultyPreset {
	presets := Presets()
	if level < 1 || level > len(presets) {
		return ""
	}
	return presets[level-1]
}
