package core

// Color is the foreground color of a screen cell. The platform maps each
// value to an ANSI color when rendering.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightWhite
	ColorGray
	ColorDim // Unlit pad shade
)

// Bright returns the lit variant of a base color. Other colors are
// returned unchanged.
func (c Color) Bright() Color {
	switch c {
	case ColorRed:
		return ColorBrightRed
	case ColorGreen:
		return ColorBrightGreen
	case ColorYellow:
		return ColorBrightYellow
	case ColorBlue:
		return ColorBrightBlue
	case ColorWhite:
		return ColorBrightWhite
	default:
		return c
	}
}
