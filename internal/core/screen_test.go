package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, '@')
	if got := s.Get(3, 2); got != '@' {
		t.Errorf("Get(3, 2) = %q, want '@'", got)
	}

	s.SetCell(4, 2, '#', ColorRed)
	cell := s.GetCell(4, 2)
	if cell.Rune != '#' || cell.Color != ColorRed {
		t.Errorf("GetCell(4, 2) = %+v, want red '#'", cell)
	}

	// Out-of-bounds writes are silently ignored
	s.Set(-1, 0, 'x')
	s.Set(10, 0, 'x')
	s.Set(0, 5, 'x')
	if got := s.Get(-1, 0); got != ' ' {
		t.Errorf("out-of-bounds Get = %q, want space", got)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 5)
	s.SetCell(1, 1, 'x', ColorGreen)

	s.Clear()
	cell := s.GetCell(1, 1)
	if cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("after Clear, GetCell(1, 1) = %+v, want default space", cell)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 5)
	s.Set(2, 2, '@')

	s.Resize(20, 10)
	if s.Width() != 20 || s.Height() != 10 {
		t.Errorf("size after resize = %dx%d, want 20x10", s.Width(), s.Height())
	}
	if got := s.Get(2, 2); got != '@' {
		t.Errorf("resize lost content: Get(2, 2) = %q, want '@'", got)
	}

	// Shrinking clips content outside the new bounds
	s.Resize(2, 2)
	if got := s.Get(1, 1); got != ' ' {
		t.Errorf("Get(1, 1) after shrink = %q, want space", got)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)

	s.DrawText(2, 1, "hi")
	if row := s.Row(1); !strings.Contains(row, "hi") {
		t.Errorf("Row(1) = %q, want to contain \"hi\"", row)
	}

	// Text extending past the right edge is clipped, not wrapped
	s.DrawText(8, 0, "abcdef")
	if row := s.Row(0); row != "        ab" {
		t.Errorf("clipped row = %q, want %q", row, "        ab")
	}
	if row := s.Row(1); strings.Contains(row, "c") {
		t.Errorf("clipped text wrapped into row 1: %q", row)
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawRect(NewRect(1, 1, 3, 2), '#', ColorGreen)

	for y := 1; y < 3; y++ {
		for x := 1; x < 4; x++ {
			if got := s.Get(x, y); got != '#' {
				t.Errorf("Get(%d, %d) = %q, want '#'", x, y, got)
			}
		}
	}
	if got := s.Get(4, 1); got != ' ' {
		t.Errorf("fill leaked outside the rect at (4, 1): %q", got)
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	want := "a  \n  b"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
