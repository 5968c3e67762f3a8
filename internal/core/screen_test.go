package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(40, 12)

	if s.Width() != 40 || s.Height() != 12 {
		t.Fatalf("size = %dx%d, expected 40x12", s.Width(), s.Height())
	}

	for y := range s.Height() {
		for x := range s.Width() {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Fatalf("new screen cell (%d, %d) = %+v, expected blank", x, y, c)
			}
		}
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(3, 4, '■', ColorOrange)
	c := s.GetCell(3, 4)
	if c.Rune != '■' || c.Color != ColorOrange {
		t.Errorf("GetCell(3, 4) = %+v, expected orange '■'", c)
	}

	// Out of bounds writes are ignored
	s.SetColored(-1, 0, 'A', ColorRed)
	s.SetColored(10, 0, 'A', ColorRed)
	s.SetColored(0, 10, 'A', ColorRed)

	if s.Get(-1, 0) != ' ' {
		t.Error("out of bounds Get should return space")
	}
	if s.GetCell(99, 99).Color != ColorDefault {
		t.Error("out of bounds GetCell should return default color")
	}
}

func TestScreenClearResetsColor(t *testing.T) {
	s := NewScreen(4, 4)
	for y := range 4 {
		s.DrawHLine(0, y, 4, '#', ColorGreen)
	}

	s.Clear()

	for y := range 4 {
		for x := range 4 {
			if c := s.GetCell(x, y); c != blankCell {
				t.Fatalf("after Clear cell (%d, %d) = %+v", x, y, c)
			}
		}
	}
}

func TestScreenDrawTextRunes(t *testing.T) {
	s := NewScreen(20, 3)

	// Multi-byte labels advance one cell per rune
	s.DrawTextColored(1, 1, "점수 10", ColorCyan)

	if s.Get(1, 1) != '점' || s.Get(2, 1) != '수' || s.Get(4, 1) != '1' {
		t.Errorf("row = %q", s.Row(1))
	}
	if s.GetCell(2, 1).Color != ColorCyan {
		t.Error("DrawTextColored should color every rune")
	}

	// Clipped at the right edge
	s.DrawText(18, 0, "Hello")
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("text should be clipped at right boundary")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi")

	x := (20 - 2) / 2
	if s.Get(x, 2) != 'H' || s.Get(x+1, 2) != 'i' {
		t.Errorf("centered text not at x=%d: %q", x, s.Row(2))
	}

	s.DrawTextCenteredColored(3, "라운드", ColorYellow)
	if s.Get((20-3)/2, 3) != '라' {
		t.Errorf("centered Hangul text misplaced: %q", s.Row(3))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBoxColored(NewRect(1, 1, 5, 4), ColorMagenta)

	corners := map[[2]int]rune{
		{1, 1}: '┌',
		{5, 1}: '┐',
		{1, 4}: '└',
		{5, 4}: '┘',
	}
	for pos, want := range corners {
		if got := s.Get(pos[0], pos[1]); got != want {
			t.Errorf("corner %v = %q, expected %q", pos, got, want)
		}
	}
	for x := 2; x < 5; x++ {
		if s.Get(x, 1) != '─' || s.Get(x, 4) != '─' {
			t.Errorf("horizontal edge broken at x=%d", x)
		}
	}
	if s.GetCell(1, 2).Color != ColorMagenta {
		t.Error("box edges should carry the box color")
	}

	// Degenerate boxes draw nothing
	s.Clear()
	s.DrawBox(NewRect(0, 0, 1, 1))
	if s.Get(0, 0) != ' ' {
		t.Error("1x1 box should not be drawn")
	}
}

func TestScreenResizeKeepsContent(t *testing.T) {
	s := NewScreen(5, 5)
	s.SetColored(1, 1, 'X', ColorRed)
	s.SetColored(4, 4, 'Y', ColorRed)

	s.Resize(3, 3)
	if s.Get(1, 1) != 'X' {
		t.Error("Resize should keep overlapping content")
	}

	s.Resize(6, 6)
	if s.Get(4, 4) != ' ' {
		t.Error("content outside the shrunken area should be gone after growing")
	}
	if s.GetCell(1, 1).Color != ColorRed {
		t.Error("Resize should keep cell colors")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "abc")
	s.DrawText(0, 1, "de")

	lines := strings.Split(s.String(), "\n")
	if len(lines) != 2 || lines[0] != "abc" || lines[1] != "de " {
		t.Errorf("String() = %q", s.String())
	}
	if s.Row(5) != "   " {
		t.Errorf("Row out of range = %q", s.Row(5))
	}
}
