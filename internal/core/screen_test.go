package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(5, 5, 'X', ColorRed)
	cell := s.GetCell(5, 5)
	if cell.Rune != 'X' || cell.Color != ColorRed {
		t.Errorf("GetCell(5, 5) = %+v, expected red X", cell)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' || s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawRect(s.Bounds(), 'X', ColorBlue)
	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Fatalf("After Clear, expected blank at (%d, %d), got %+v", x, y, c)
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 3)
	s.DrawText(2, 1, "Hello")

	if row := s.Row(1); !strings.HasPrefix(row, "  Hello") {
		t.Errorf("Row(1) = %q", row)
	}

	// Clipping
	s.DrawText(18, 0, "Hello")
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("clipped text should keep the visible part")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 1)
	s.DrawTextCentered(0, "abc", ColorGreen)

	if s.Row(0) != "    abc    " {
		t.Errorf("Row(0) = %q", s.Row(0))
	}
	if s.GetCell(4, 0).Color != ColorGreen {
		t.Error("centered text should keep its color")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawBox(s.Bounds(), ColorGray)

	expected := "┌───┐\n│   │\n└───┘"
	if s.String() != expected {
		t.Errorf("DrawBox:\n%s\nexpected:\n%s", s.String(), expected)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawText(0, 0, "abcd")

	s.Resize(2, 3)
	if s.Width() != 2 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, expected 2x3", s.Width(), s.Height())
	}
	if s.Row(0) != "ab" {
		t.Errorf("Row(0) = %q, expected preserved %q", s.Row(0), "ab")
	}
	if s.Row(2) != "  " {
		t.Errorf("Row(2) = %q, expected blank", s.Row(2))
	}
}

func TestColorBright(t *testing.T) {
	if ColorRed.Bright() != ColorBrightRed {
		t.Error("red should brighten to bright red")
	}
	if ColorGray.Bright() != ColorGray {
		t.Error("gray has no bright variant")
	}
}

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if !f.Empty() {
		t.Error("new frame should be empty")
	}

	f.Set(ActionConfirm)
	f.AddKey('r')
	f.AddKey('g')
	f.AddClick(3, 4)

	if !f.Has(ActionConfirm) || f.Has(ActionPause) {
		t.Error("Has() mismatch")
	}
	if len(f.Keys) != 2 || f.Keys[0] != 'r' || f.Keys[1] != 'g' {
		t.Errorf("Keys = %q, expected ordered [r g]", f.Keys)
	}
	if len(f.Clicks) != 1 || f.Clicks[0] != (Point{X: 3, Y: 4}) {
		t.Errorf("Clicks = %v", f.Clicks)
	}

	f.Clear()
	if !f.Empty() {
		t.Error("cleared frame should be empty")
	}
}
