package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.SetColored(3, 2, 'X', ColorRed)
	if s.Get(3, 2) != 'X' {
		t.Errorf("Get(3, 2) = %q, expected 'X'", s.Get(3, 2))
	}
	if s.GetCell(3, 2).Color != ColorRed {
		t.Errorf("GetCell(3, 2).Color = %v, expected ColorRed", s.GetCell(3, 2).Color)
	}

	// Out of bounds is ignored and reads as space
	s.Set(-1, 0, 'Y')
	s.Set(10, 0, 'Y')
	if s.Get(-1, 0) != ' ' || s.Get(10, 0) != ' ' {
		t.Error("out-of-bounds reads should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawText(0, 0, "abcd", ColorDefault)
	s.Clear()

	if strings.TrimSpace(strings.ReplaceAll(s.String(), "\n", "")) != "" {
		t.Errorf("Clear should blank the buffer, got %q", s.String())
	}
}

func TestScreenDrawTextClipped(t *testing.T) {
	s := NewScreen(5, 1)
	s.DrawText(3, 0, "hello", ColorDefault)

	if got := s.Row(0); got != "   he" {
		t.Errorf("Row(0) = %q, expected %q", got, "   he")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(9, 1)
	s.DrawTextCentered(0, "abc", ColorDefault)

	if got := s.Row(0); got != "   abc   " {
		t.Errorf("Row(0) = %q, expected centered text", got)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawBox(NewRect(0, 0, 5, 3), ColorDefault)

	if s.Get(0, 0) != '┌' || s.Get(4, 0) != '┐' || s.Get(0, 2) != '└' || s.Get(4, 2) != '┘' {
		t.Errorf("box corners not drawn:\n%s", s.String())
	}
	if s.Get(2, 1) != ' ' {
		t.Error("box interior should stay empty")
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(4, 2)
	s.Resize(8, 3)

	if s.Width() != 8 || s.Height() != 3 {
		t.Errorf("Resize() = %dx%d, expected 8x3", s.Width(), s.Height())
	}
	if len(s.Row(2)) != 8 {
		t.Errorf("new row length = %d, expected 8", len(s.Row(2)))
	}
}

func TestFadeColor(t *testing.T) {
	if FadeColor(0, 10) != ColorBrightWhite {
		t.Error("newest sample should be brightest")
	}
	if FadeColor(10, 10) != ColorDarkGray {
		t.Errorf("oldest sample should be darkest, got %v", FadeColor(10, 10))
	}
}
