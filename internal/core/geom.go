// Package core provides the pure puzzle model for the pipes platform:
// geometry, shapes, pieces and the grid. It contains no external
// dependencies (especially no Bubble Tea) to keep solver logic pure and
// testable.
//
// Coordinate system: (0,0) is top-left, x grows rightward, y grows
// downward. Rotations are 90-degree clockwise increments.
package core

import "fmt"

// Rotation is a quarter-turn count in the range [0, 3].
type Rotation int

// The four distinguishable rotations of a tile.
const (
	R0 Rotation = iota
	R1
	R2
	R3
)

// rotationCount is the order of the rotation group.
const rotationCount = 4

// Rotations lists all rotations in collapse order.
var Rotations = [rotationCount]Rotation{R0, R1, R2, R3}

// Norm reduces a rotation into [0, 3], handling negative values.
func (r Rotation) Norm() Rotation {
	return ((r % rotationCount) + rotationCount) % rotationCount
}

// Next returns the rotation one quarter-turn clockwise.
func (r Rotation) Next() Rotation {
	return (r + 1).Norm()
}

// Inverse returns the rotation that undoes this one.
func (r Rotation) Inverse() Rotation {
	return (rotationCount - r.Norm()).Norm()
}

// Position is a grid cell coordinate. It is an immutable value type;
// two positions are equal iff both components match.
type Position struct {
	X, Y int
}

// P is a shorthand constructor for Position.
func P(x, y int) Position {
	return Position{X: x, Y: y}
}

// Move returns the position offset by one step in the given direction.
func (p Position) Move(d Direction) Position {
	return Position{X: p.X + d.DX, Y: p.Y + d.DY}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Direction is a unit displacement vector. In practice only the four
// axis-aligned unit vectors are used, but rotation and negation are
// defined for any vector.
type Direction struct {
	DX, DY int
}

// The four unit directions. Left is the rotation-0 baseline: rotating
// Left clockwise yields Up, Right, Down in order.
var (
	Left  = Direction{DX: -1, DY: 0}
	Up    = Direction{DX: 0, DY: -1}
	Right = Direction{DX: 1, DY: 0}
	Down  = Direction{DX: 0, DY: 1}
)

// Directions lists the unit directions in rotation order from Left.
var Directions = [4]Direction{Left, Up, Right, Down}

// Opposite returns the direction with both components negated.
// It is involutive: d.Opposite().Opposite() == d.
func (d Direction) Opposite() Direction {
	return Direction{DX: -d.DX, DY: -d.DY}
}

// Rotate applies r quarter-turns clockwise. With y growing downward a
// single clockwise turn maps (dx, dy) to (-dy, dx).
func (d Direction) Rotate(r Rotation) Direction {
	for i := Rotation(0); i < r.Norm(); i++ {
		d = Direction{DX: -d.DY, DY: d.DX}
	}
	return d
}

// DirectionSet is a set of directions. "No connections" is an explicit
// empty set, never nil, so that sentinel pieces behave like ordinary
// values.
type DirectionSet map[Direction]struct{}

// NewDirectionSet builds a set from the given directions.
func NewDirectionSet(dirs ...Direction) DirectionSet {
	s := make(DirectionSet, len(dirs))
	for _, d := range dirs {
		s.Add(d)
	}
	return s
}

// Add inserts a direction into the set.
func (s DirectionSet) Add(d Direction) {
	s[d] = struct{}{}
}

// Has reports whether the direction is in the set.
func (s DirectionSet) Has(d Direction) bool {
	_, ok := s[d]
	return ok
}

// Len returns the number of directions in the set.
func (s DirectionSet) Len() int {
	return len(s)
}

// SubsetOf reports whether every direction in s is also in other.
func (s DirectionSet) SubsetOf(other DirectionSet) bool {
	for d := range s {
		if !other.Has(d) {
			return false
		}
	}
	return true
}

// Equal reports whether both sets contain exactly the same directions.
func (s DirectionSet) Equal(other DirectionSet) bool {
	return len(s) == len(other) && s.SubsetOf(other)
}

// Rotate returns a new set with every direction rotated by r.
func (s DirectionSet) Rotate(r Rotation) DirectionSet {
	out := make(DirectionSet, len(s))
	for d := range s {
		out.Add(d.Rotate(r))
	}
	return out
}
