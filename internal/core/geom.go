// Package core provides fundamental types and utilities for the platform:
// screen buffers, input frames and layout geometry. It has no external
// dependencies (especially no Bubble Tea) so game code stays testable.
package core

// Rect is an axis-aligned area of the screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate just past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Inset shrinks the rectangle by n cells on every side.
func (r Rect) Inset(n int) Rect {
	out := Rect{X: r.X + n, Y: r.Y + n, W: r.W - 2*n, H: r.H - 2*n}
	if out.W < 0 {
		out.W = 0
	}
	if out.H < 0 {
		out.H = 0
	}
	return out
}

// Grid splits r into cols x rows cells separated by gap cells, row-major.
// Leftover space goes to the last column and row.
func Grid(r Rect, cols, rows, gap int) []Rect {
	if cols < 1 || rows < 1 {
		return nil
	}

	cellW := (r.W - gap*(cols-1)) / cols
	cellH := (r.H - gap*(rows-1)) / rows
	cells := make([]Rect, 0, cols*rows)

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			c := Rect{
				X: r.X + col*(cellW+gap),
				Y: r.Y + row*(cellH+gap),
				W: cellW,
				H: cellH,
			}
			if col == cols-1 {
				c.W = r.Right() - c.X
			}
			if row == rows-1 {
				c.H = r.Bottom() - c.Y
			}
			cells = append(cells, c)
		}
	}
	return cells
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
