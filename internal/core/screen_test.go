package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(12, 4)

	if s.Width() != 12 || s.Height() != 4 {
		t.Fatalf("size = %dx%d, want 12x4", s.Width(), s.Height())
	}
	want := strings.Repeat(strings.Repeat(" ", 12)+"\n", 3) + strings.Repeat(" ", 12)
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want blank", got)
	}
}

func TestScreenOutOfBounds(t *testing.T) {
	s := NewScreen(4, 3)

	// Writes off the edge are dropped, reads return blank cells.
	for _, p := range [][2]int{{-1, 0}, {4, 0}, {0, -1}, {0, 3}} {
		s.SetColored(p[0], p[1], '▲', ColorBlue)
		if got := s.GetCell(p[0], p[1]); got.Rune != ' ' || got.Color != ColorDefault {
			t.Errorf("GetCell(%d, %d) = %+v, want blank", p[0], p[1], got)
		}
	}
	if s.Row(-1) != "    " || s.Row(3) != "    " {
		t.Error("rows outside the screen should be blank")
	}
}

func TestScreenText(t *testing.T) {
	s := NewScreen(10, 2)
	s.DrawText(0, 0, "TIME 1.0s")
	s.DrawTextColored(7, 1, "SPEED", ColorCyan)

	if s.Row(0) != "TIME 1.0s " {
		t.Errorf("Row(0) = %q", s.Row(0))
	}
	// Clipped at the right edge.
	if s.Row(1) != "       SPE" {
		t.Errorf("Row(1) = %q", s.Row(1))
	}
	if s.GetCell(9, 1).Color != ColorCyan || s.GetCell(6, 1).Color != ColorDefault {
		t.Error("only the drawn text should be colored")
	}
}

func TestScreenGroundLayers(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawHLine(0, 1, 6, '▔', ColorGround)
	s.FillRect(0, 2, 6, 5, '░', ColorGround) // Taller than the screen

	want := "      \n▔▔▔▔▔▔\n░░░░░░\n░░░░░░"
	if got := s.String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
	if s.GetCell(3, 3).Color != ColorGround {
		t.Errorf("regolith color = %v", s.GetCell(3, 3).Color)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(7, 5)
	s.DrawBox(1, 1, 5, 3, ColorGray)

	want := []string{
		"       ",
		" ┌───┐ ",
		" │   │ ",
		" └───┘ ",
		"       ",
	}
	for y, row := range want {
		if got := s.Row(y); got != row {
			t.Errorf("Row(%d) = %q, want %q", y, got, row)
		}
	}
	if s.GetCell(1, 2).Color != ColorGray {
		t.Error("box edges should use the given color")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(3, 2)
	s.FillRect(0, 0, 3, 2, '·', ColorDust)
	s.Clear()

	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Fatalf("cell (%d, %d) = %+v after Clear", x, y, c)
			}
		}
	}
}

func TestScreenResizeKeepsTopLeft(t *testing.T) {
	s := NewScreen(8, 4)
	s.DrawText(0, 0, "MOON")
	s.DrawText(0, 3, "DUST")

	s.Resize(5, 2)
	if s.Width() != 5 || s.Height() != 2 {
		t.Fatalf("size = %dx%d, want 5x2", s.Width(), s.Height())
	}
	if s.Row(0) != "MOON " {
		t.Errorf("Row(0) = %q after shrink", s.Row(0))
	}

	s.Resize(10, 6)
	if !strings.HasPrefix(s.Row(0), "MOON") {
		t.Errorf("Row(0) = %q after grow", s.Row(0))
	}
	if strings.TrimSpace(s.Row(3)) != "" {
		t.Error("rows cut by the shrink should come back blank")
	}
	if len([]rune(s.Row(5))) != 10 {
		t.Errorf("row width = %d, want 10", len([]rune(s.Row(5))))
	}
}
