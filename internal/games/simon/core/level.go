package core

import "errors"

// ErrInvalidLevel is returned when a level is above the supported range.
var ErrInvalidLevel = errors.New("core: invalid level")

// DefaultLevels maps level N (1-based) to its round count.
var DefaultLevels = []int{8, 14, 20, 31}

// ResolveLevel returns the round count for a level using DefaultLevels.
func ResolveLevel(level int) (int, error) {
	return ResolveLevelIn(DefaultLevels, level)
}

// ResolveLevelIn returns the round count for a level in the given table.
//
// Levels above len(table) are an error. Zero and negative levels stand for
// "no level chosen" and fall back to level 1.
func ResolveLevelIn(table []int, level int) (int, error) {
	if len(table) == 0 {
		return 0, ErrInvalidLevel
	}
	if level > len(table) {
		return 0, ErrInvalidLevel
	}
	if level < 1 {
		level = 1
	}
	return table[level-1], nil
}
