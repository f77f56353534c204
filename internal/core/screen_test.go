package core

import "testing"

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, '@')
	if got := s.Get(3, 2); got != '@' {
		t.Errorf("Get(3,2) = %q, expected '@'", got)
	}

	s.SetCell(4, 2, '#', ColorRed)
	cell := s.GetCell(4, 2)
	if cell.Rune != '#' || cell.Color != ColorRed {
		t.Errorf("GetCell(4,2) = %+v, expected red '#'", cell)
	}

	// Out of bounds writes are ignored, reads return space.
	s.Set(-1, 0, 'x')
	s.Set(10, 0, 'x')
	s.Set(0, 5, 'x')
	if got := s.Get(-1, 0); got != ' ' {
		t.Errorf("out-of-bounds Get = %q, expected space", got)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 4)
	s.FillRect(0, 0, 4, 4, '#', ColorGreen)
	s.Clear()
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			cell := s.GetCell(x, y)
			if cell.Rune != ' ' || cell.Color != ColorDefault {
				t.Fatalf("cell (%d,%d) = %+v after Clear", x, y, cell)
			}
		}
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(6, 4)
	s.Set(2, 2, '@')
	s.Set(5, 3, 'x')

	s.Resize(4, 3)
	if got := s.Get(2, 2); got != '@' {
		t.Errorf("content inside new bounds lost: Get(2,2) = %q", got)
	}
	if s.Width() != 4 || s.Height() != 3 {
		t.Errorf("size = %dx%d, expected 4x3", s.Width(), s.Height())
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawText(7, 1, "abcdef") // clips at the right edge
	if got := s.Row(1); got != "       abc" {
		t.Errorf("Row(1) = %q", got)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawBox(0, 0, 6, 4)
	if s.Get(0, 0) != '┌' || s.Get(5, 0) != '┐' || s.Get(0, 3) != '└' || s.Get(5, 3) != '┘' {
		t.Errorf("box corners wrong:\n%s", s.String())
	}
	if s.Get(2, 0) != '─' || s.Get(0, 2) != '│' {
		t.Errorf("box edges wrong:\n%s", s.String())
	}
}

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionJump)
	f.Set(ActionLeft)

	if !f.Has(ActionJump) || !f.Has(ActionLeft) {
		t.Errorf("frame missing set actions")
	}
	if f.Has(ActionDash) {
		t.Errorf("frame reports unset action")
	}

	clone := f.Clone()
	f.Clear()
	if f.Has(ActionJump) {
		t.Errorf("frame still set after Clear")
	}
	if !clone.Has(ActionJump) {
		t.Errorf("clone affected by Clear of the original")
	}
}
