package core

// Piece is a placed shape instance: the mutable cell state of the grid.
// Its position is fixed at construction; its candidate-rotation domain
// only ever shrinks, while the displayed rotation is reassigned on every
// collapse from whatever remains in the domain.
type Piece struct {
	shape    *Shape
	pos      Position
	rotation Rotation
	conns    DirectionSet // cached, always equals shape.Rotate(rotation)
	domain   []Rotation   // candidate rotations not yet eliminated
}

// NewPiece creates a piece at rotation 0 with its domain reduced to the
// rotationally distinct rotations of the shape: a rotation survives the
// initial pass only if no smaller rotation produces the same connection
// set. Fully symmetric shapes therefore start with a single candidate.
func NewPiece(shape *Shape, pos Position) *Piece {
	p := &Piece{
		shape:    shape,
		pos:      pos,
		rotation: R0,
		conns:    shape.Rotate(R0),
	}

	seen := make([]DirectionSet, 0, rotationCount)
	for _, r := range Rotations {
		conns := shape.Rotate(r)
		dup := false
		for _, prev := range seen {
			if conns.Equal(prev) {
				dup = true
				break
			}
		}
		if !dup {
			seen = append(seen, conns)
			p.domain = append(p.domain, r)
		}
	}
	return p
}

// Shape returns the piece's shape.
func (p *Piece) Shape() *Shape {
	return p.shape
}

// Position returns the piece's fixed grid position.
func (p *Piece) Position() Position {
	return p.pos
}

// Rotation returns the currently committed rotation.
func (p *Piece) Rotation() Rotation {
	return p.rotation
}

// Connections returns the piece's connection set at its current rotation.
func (p *Piece) Connections() DirectionSet {
	return p.conns
}

// Domain returns a copy of the candidate rotations still considered
// possible for this piece.
func (p *Piece) Domain() []Rotation {
	out := make([]Rotation, len(p.domain))
	copy(out, p.domain)
	return out
}

// DomainSize returns the number of candidate rotations remaining.
func (p *Piece) DomainSize() int {
	return len(p.domain)
}

// SetRotation commits a rotation and recomputes the cached connections.
func (p *Piece) SetRotation(r Rotation) {
	p.rotation = r.Norm()
	p.conns = p.shape.Rotate(p.rotation)
}

// Restrict replaces the candidate domain. Callers must pass a subset of
// the current domain; the domain only ever shrinks.
func (p *Piece) Restrict(domain []Rotation) {
	p.domain = domain
}

// CanConnect reports whether some candidate rotation would point a
// connector toward d. Sentinel pieces (no canonical connections) can
// never connect.
func (p *Piece) CanConnect(d Direction) bool {
	if p.shape.Connections.Len() == 0 {
		return false
	}
	for _, r := range p.domain {
		if p.shape.Rotate(r).Has(d) {
			return true
		}
	}
	return false
}

// MustConnect reports whether every candidate rotation points a
// connector toward d: however the piece is finally rotated, the
// connection along d will be there.
func (p *Piece) MustConnect(d Direction) bool {
	for _, r := range p.domain {
		if !p.shape.Rotate(r).Has(d) {
			return false
		}
	}
	return len(p.domain) > 0
}

// Glyph returns the display glyph for the current rotation.
func (p *Piece) Glyph() rune {
	return p.shape.Glyph(p.rotation)
}
