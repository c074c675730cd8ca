package core

import (
	"math/big"
	"strings"
)

// Grid is the rectangular puzzle board. It owns one piece per input
// cell and is not resizable after construction. Any out-of-bounds query
// is answered with a fresh sentinel Edge piece that never accepts or
// requires a connection.
type Grid struct {
	pieces [][]*Piece // row-major: pieces[y][x]
	xMax   int
	yMax   int
}

// NewGrid builds a grid from a rectangular array of shapes,
// rows[y][x]. Input validation (non-empty, equal row lengths, known
// shape names) is the puzzle layer's job; NewGrid trusts its input.
func NewGrid(rows [][]*Shape) *Grid {
	g := &Grid{
		yMax: len(rows),
		xMax: len(rows[0]),
	}
	g.pieces = make([][]*Piece, g.yMax)
	for y, row := range rows {
		g.pieces[y] = make([]*Piece, g.xMax)
		for x, shape := range row {
			g.pieces[y][x] = NewPiece(shape, P(x, y))
		}
	}
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.xMax
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.yMax
}

// InBounds reports whether the position addresses an owned cell.
func (g *Grid) InBounds(pos Position) bool {
	return pos.X >= 0 && pos.X < g.xMax && pos.Y >= 0 && pos.Y < g.yMax
}

// PieceAt returns the owned piece at pos, or a fresh sentinel Edge
// piece for out-of-bounds positions. The sentinel is never part of the
// grid and its connection set is always empty.
func (g *Grid) PieceAt(pos Position) *Piece {
	if g.InBounds(pos) {
		return g.pieces[pos.Y][pos.X]
	}
	return NewPiece(EdgeShape, pos)
}

// Neighbour pairs a unit direction with the piece found one step away.
type Neighbour struct {
	Dir   Direction
	Piece *Piece
}

// Neighbours returns the four adjacent pieces of pos, sentinel pieces
// included for off-grid neighbours.
func (g *Grid) Neighbours(pos Position) [4]Neighbour {
	var out [4]Neighbour
	for i, d := range Directions {
		out[i] = Neighbour{Dir: d, Piece: g.PieceAt(pos.Move(d))}
	}
	return out
}

// SolutionSpace returns the product of all pieces' domain sizes. The
// value grows exponentially with the cell count, so it is reported as
// a big.Int. A value of 1 means every piece has a unique remaining
// rotation; it does not by itself guarantee geometric consistency.
func (g *Grid) SolutionSpace() *big.Int {
	size := big.NewInt(1)
	for _, row := range g.pieces {
		for _, p := range row {
			size.Mul(size, big.NewInt(int64(p.DomainSize())))
		}
	}
	return size
}

// String renders the grid as text: each piece's glyph at its current
// rotation, rows joined with newlines.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.xMax*g.yMax + g.yMax)

	for y, row := range g.pieces {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for _, p := range row {
			sb.WriteRune(p.Glyph())
		}
	}
	return sb.String()
}
