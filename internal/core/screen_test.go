package core

import (
	"strings"
	"testing"
)

func TestNewScreenBlank(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Fatalf("dimensions = %dx%d, expected 80x24", s.Width(), s.Height())
	}
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Fatalf("new screen not blank at (%d, %d): %+v", x, y, c)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if got := s.Get(5, 5); got != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", got)
	}

	// Writes outside the buffer are dropped, reads come back blank.
	oob := []struct{ x, y int }{{-1, 0}, {100, 0}, {0, -1}, {0, 100}}
	for _, p := range oob {
		s.Set(p.x, p.y, 'A')
		if got := s.Get(p.x, p.y); got != ' ' {
			t.Errorf("Get(%d, %d) = %q, expected space", p.x, p.y, got)
		}
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)
	for y := 0; y < 10; y++ {
		s.DrawColorText(0, y, ColorRed, strings.Repeat("X", 10))
	}

	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Fatalf("cell (%d, %d) not blank after Clear: %+v", x, y, c)
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello")

	if got := strings.TrimRight(s.Row(1), " "); got != "  Hello" {
		t.Errorf("row 1 = %q, expected %q", got, "  Hello")
	}

	// Text past the right edge is clipped, not wrapped.
	s.DrawText(18, 0, "Hello")
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' || s.Get(0, 1) != ' ' {
		t.Error("text should clip at the right boundary")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi")

	if s.Get(9, 2) != 'H' || s.Get(10, 2) != 'i' {
		t.Errorf("centered text misplaced: row 2 = %q", s.Row(2))
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawText(0, 2, "CCCCC")

	if got := s.String(); got != "AAAAA\nBBBBB\nCCCCC" {
		t.Errorf("String() = %q", got)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawColorText(0, 0, ColorBlue, "Hello")
	s.DrawText(0, 5, "World")

	// Shrinking keeps the overlapping top-left region.
	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Fatalf("dimensions after shrink = %dx%d, expected 8x4", s.Width(), s.Height())
	}
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("row 0 after shrink = %q", s.Row(0))
	}
	if c := s.GetCell(0, 0); c.Color != ColorBlue {
		t.Errorf("color lost on resize: %+v", c)
	}

	// Growing keeps the old content and blanks the new cells.
	s.Resize(15, 8)
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("row 0 after grow = %q", s.Row(0))
	}
	if s.Get(14, 7) != ' ' {
		t.Error("new cells should be blank after grow")
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawText(0, 2, "Test")

	row := s.Row(2)
	if !strings.HasPrefix(row, "Test") || len(row) != 10 {
		t.Errorf("Row(2) = %q", row)
	}

	if got := s.Row(-1); got != strings.Repeat(" ", 10) {
		t.Errorf("out-of-bounds row = %q, expected all spaces", got)
	}
}

func TestScreenSetKeepsColor(t *testing.T) {
	s := NewScreen(10, 5)
	s.SetCell(3, 2, 'X', ColorRed)

	// Set replaces the rune but preserves the cell's color.
	s.Set(3, 2, 'Y')
	if c := s.GetCell(3, 2); c.Rune != 'Y' || c.Color != ColorRed {
		t.Errorf("GetCell(3, 2) after Set = %+v, expected {Y Red}", c)
	}

	if c := s.GetCell(-1, 0); c.Rune != ' ' || c.Color != ColorDefault {
		t.Errorf("out-of-bounds GetCell = %+v, expected a blank cell", c)
	}
}

func TestScreenDrawColorText(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawColorText(0, 1, ColorBrightCyan, "Hi")

	for i, r := range "Hi" {
		if c := s.GetCell(i, 1); c.Rune != r || c.Color != ColorBrightCyan {
			t.Errorf("cell %d = %+v, expected {%c BrightCyan}", i, c, r)
		}
	}
}
