package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}

	cx, cy := r.Center()
	if cx != 15 || cy != 17 {
		t.Errorf("Center() = (%d, %d), expected (15, 17)", cx, cy)
	}
}

func TestRectInset(t *testing.T) {
	r := NewRect(0, 0, 10, 6).Inset(1)
	if r != NewRect(1, 1, 8, 4) {
		t.Errorf("Inset(1) = %+v", r)
	}

	tiny := NewRect(0, 0, 2, 2).Inset(3)
	if !tiny.Empty() {
		t.Errorf("over-inset rect should be empty, got %+v", tiny)
	}
}

func TestGrid(t *testing.T) {
	cells := Grid(NewRect(0, 0, 21, 11), 2, 2, 1)
	if len(cells) != 4 {
		t.Fatalf("Grid returned %d cells, expected 4", len(cells))
	}

	expected := []Rect{
		NewRect(0, 0, 10, 5),
		NewRect(11, 0, 10, 5),
		NewRect(0, 6, 10, 5),
		NewRect(11, 6, 10, 5),
	}
	for i, c := range cells {
		if c != expected[i] {
			t.Errorf("cell %d = %+v, expected %+v", i, c, expected[i])
		}
	}

	// Odd sizes: the remainder lands in the last column/row.
	odd := Grid(NewRect(0, 0, 10, 5), 2, 2, 1)
	if odd[1].Right() != 10 || odd[3].Bottom() != 5 {
		t.Errorf("grid does not cover the area: %+v", odd)
	}

	if Grid(NewRect(0, 0, 10, 10), 0, 2, 0) != nil {
		t.Error("zero columns should yield nil")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 || Min(10, 5) != 5 {
		t.Error("Min should return 5")
	}
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max should return 10")
	}
}
