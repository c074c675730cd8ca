package core

import "testing"

func TestScreenSetAndCellAt(t *testing.T) {
	s := NewScreen(4, 2)

	s.Set(1, 0, '┌', ColorGreen)
	cell := s.CellAt(1, 0)
	if cell.Rune != '┌' || cell.Color != ColorGreen {
		t.Errorf("CellAt(1,0) = %+v, want ┌ in green", cell)
	}

	// Out-of-bounds writes are dropped, reads return a blank cell.
	s.Set(10, 10, 'x', ColorRed)
	if got := s.CellAt(10, 10); got.Rune != ' ' || got.Color != ColorDefault {
		t.Errorf("out-of-bounds CellAt = %+v, want blank", got)
	}
}

func TestScreenDrawTextClips(t *testing.T) {
	s := NewScreen(4, 1)
	s.DrawText(2, 0, "abcd", ColorDefault)

	if got := s.String(); got != "  ab" {
		t.Errorf("String() = %q, want %q", got, "  ab")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(2, 2)
	s.Set(0, 0, 'a', ColorDefault)
	s.Set(1, 1, 'b', ColorDefault)

	if got := s.String(); got != "a \n b" {
		t.Errorf("String() = %q, want %q", got, "a \n b")
	}
}
