package core

import "strings"

// Color is a foreground color for a screen cell, mapped to terminal
// styles by the platform layer.
type Color uint8

// Colors used by the solver views.
const (
	ColorDefault Color = iota
	ColorGreen         // collapsed: a single candidate remains
	ColorYellow        // narrowed: fewer candidates than it started with
	ColorGray          // open: untouched domain
	ColorRed           // stuck: no consistent rotation was found
	ColorCyan          // chrome and HUD accents
)

// Cell is one character of the screen buffer with its color.
type Cell struct {
	Rune  rune
	Color Color
}

// Screen is a small colored character buffer. It decouples view
// composition from the terminal: the solver views draw glyphs and text
// into it and the platform turns it into a styled string.
type Screen struct {
	width  int
	height int
	cells  []Cell // row-major: index = y*width + x
}

// NewScreen creates a cleared screen buffer.
func NewScreen(width, height int) *Screen {
	s := &Screen{width: width, height: height}
	s.cells = make([]Cell, width*height)
	s.Clear()
	return s
}

// Width returns the buffer width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the buffer height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Clear fills the buffer with spaces in the default color.
func (s *Screen) Clear() {
	for i := range s.cells {
		s.cells[i] = Cell{Rune: ' ', Color: ColorDefault}
	}
}

// Set places a colored rune at (x, y). Out-of-bounds writes are
// silently ignored.
func (s *Screen) Set(x, y int, r rune, c Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y*s.width+x] = Cell{Rune: r, Color: c}
}

// CellAt returns the cell at (x, y), or a blank default cell for
// out-of-bounds reads.
func (s *Screen) CellAt(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Cell{Rune: ' ', Color: ColorDefault}
	}
	return s.cells[y*s.width+x]
}

// DrawText writes a string horizontally starting at (x, y), clipping
// at the buffer edge.
func (s *Screen) DrawText(x, y int, text string, c Color) {
	i := 0
	for _, r := range text {
		s.Set(x+i, y, r, c)
		i++
	}
}

// String renders the buffer without colors, rows joined by newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y*s.width+x].Rune)
		}
	}
	return sb.String()
}
