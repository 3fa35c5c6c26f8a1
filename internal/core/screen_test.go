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
		t.Errorf("GetCell(5, 5) = %+v, expected red 'X'", cell)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawRect(NewRect(0, 0, 10, 10), 'X', ColorGreen)

	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			cell := s.GetCell(x, y)
			if cell.Rune != ' ' || cell.Color != ColorDefault {
				t.Fatalf("After Clear, expected blank at (%d, %d), got %+v", x, y, cell)
			}
		}
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi")

	x := (20 - 2) / 2
	if s.Get(x, 2) != 'H' || s.Get(x+1, 2) != 'i' {
		t.Errorf("DrawTextCentered failed, text not at expected position")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4))

	if s.Get(1, 1) != '┌' {
		t.Errorf("Top-left corner should be '┌', got %q", s.Get(1, 1))
	}
	if s.Get(5, 4) != '┘' {
		t.Errorf("Bottom-right corner should be '┘', got %q", s.Get(5, 4))
	}
	for x := 2; x < 5; x++ {
		if s.Get(x, 1) != '─' {
			t.Errorf("Top edge should be '─' at x=%d, got %q", x, s.Get(x, 1))
		}
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawText(0, 2, "CCCCC")

	expected := "AAAAA\nBBBBB\nCCCCC"
	if result := s.String(); result != expected {
		t.Errorf("String() = %q, expected %q", result, expected)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello")

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("Content should be preserved, row 0 = %q", s.Row(0))
	}

	s.Resize(15, 8)
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("Content should be preserved after enlarging, row 0 = %q", s.Row(0))
	}
}

func TestDisplayListRecordsAndReplays(t *testing.T) {
	var src DisplayList
	src.FillRect(1, 2, 3, 4, ColorGreen)
	src.FillRect(5, 6, 7, 8, ColorRed)

	if len(src.Cmds) != 2 {
		t.Fatalf("expected 2 commands, got %d", len(src.Cmds))
	}

	var dst DisplayList
	dst.FillRect(0, 0, 1, 1, ColorWhite) // dropped by Replay's Clear
	src.Replay(&dst)

	if len(dst.Cmds) != 2 {
		t.Fatalf("expected 2 replayed commands, got %d", len(dst.Cmds))
	}
	if dst.Cmds[1].Rect != NewRectF(5, 6, 7, 8) || dst.Cmds[1].Color != ColorRed {
		t.Errorf("unexpected replayed command %+v", dst.Cmds[1])
	}

	src.Clear()
	if len(src.Cmds) != 0 {
		t.Errorf("Clear should drop commands, got %d", len(src.Cmds))
	}
}

func TestScaledCanvasProjection(t *testing.T) {
	s := NewScreen(60, 21)
	// 480x320 field onto 60x20 cells below a 1-row header: 8px x 16px per cell.
	c := NewScaledCanvas(s, NewRect(0, 1, 60, 20), 480, 320)

	c.FillRect(30, 30, 40, 20, ColorRed)

	// x: 30/8=3.75 -> 3 .. 70/8=8.75 -> 9 ; y: 30/16=1.875 -> 1 .. 50/16=3.125 -> 4
	for y := 2; y < 5; y++ {
		for x := 3; x < 9; x++ {
			if got := s.GetCell(x, y); got.Color != ColorRed {
				t.Errorf("expected red cell at (%d, %d), got %+v", x, y, got)
			}
		}
	}
	if s.GetCell(9, 2).Color == ColorRed {
		t.Error("fill leaked past right edge")
	}
	if s.GetCell(3, 1).Color == ColorRed {
		t.Error("fill leaked above top edge")
	}
}

func TestScaledCanvasTinyRectStillVisible(t *testing.T) {
	s := NewScreen(60, 20)
	c := NewScaledCanvas(s, NewRect(0, 0, 60, 20), 480, 320)

	c.FillRect(100, 100, 1, 1, ColorYellow)

	if got := s.GetCell(12, 6); got.Color != ColorYellow {
		t.Errorf("expected a one-cell fill at (12, 6), got %+v", got)
	}
}

func TestScaledCanvasClipsToRegion(t *testing.T) {
	s := NewScreen(20, 12)
	s.DrawText(0, 0, "HUD")
	c := NewScaledCanvas(s, NewRect(0, 1, 20, 10), 200, 100)

	// Partly above the field.
	c.FillRect(0, -30, 20, 40, ColorWhite)
	c.Clear()

	if s.Row(0)[:3] != "HUD" {
		t.Errorf("canvas must not touch cells outside its region, row 0 = %q", s.Row(0))
	}
	if s.Get(0, 11) != ' ' {
		t.Error("canvas must not touch rows below its region")
	}
}
