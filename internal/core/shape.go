package core

import (
	"fmt"
	"sort"
	"sync"
)

// Shape describes a tile kind: the set of edge connection points at
// rotation 0 and one display glyph per rotation. Shapes are shared,
// read-only values; pieces reference them without copying.
type Shape struct {
	Name        string
	Connections DirectionSet // canonical connections at rotation 0
	Glyphs      [4]rune      // display glyph indexed by rotation
}

// Rotate returns the connection set obtained by rotating every
// canonical connection by r.
func (s *Shape) Rotate(r Rotation) DirectionSet {
	return s.Connections.Rotate(r)
}

// Glyph returns the display glyph for the given rotation.
func (s *Shape) Glyph(r Rotation) rune {
	return s.Glyphs[r.Norm()]
}

// EdgeShape is the boundary sentinel: no connections, blank glyphs.
// It is never placed by puzzle input; the grid substitutes it for any
// out-of-bounds neighbour query.
var EdgeShape = &Shape{
	Name:        "Edge",
	Connections: NewDirectionSet(),
	Glyphs:      [4]rune{' ', ' ', ' ', ' '},
}

// Catalog is a named shape registry. The solver accepts any catalog
// whose shapes connect only along the four unit directions; puzzle
// packs may register additional shapes on top of the defaults.
type Catalog struct {
	mu     sync.RWMutex
	shapes map[string]*Shape
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{shapes: make(map[string]*Shape)}
}

// Register adds a shape to the catalog.
// Panics if a shape with the same name is already registered.
func (c *Catalog) Register(s *Shape) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.shapes[s.Name]; exists {
		panic(fmt.Sprintf("catalog: shape %q already registered", s.Name))
	}
	c.shapes[s.Name] = s
}

// Lookup returns the shape with the given name.
func (c *Catalog) Lookup(name string) (*Shape, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	s, ok := c.shapes[name]
	return s, ok
}

// Names returns all registered shape names, sorted.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, 0, len(c.shapes))
	for name := range c.shapes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultCatalog returns a catalog with the standard pipe shapes.
func DefaultCatalog() *Catalog {
	c := NewCatalog()
	c.Register(&Shape{
		Name:        "Corner",
		Connections: NewDirectionSet(Left, Up),
		Glyphs:      [4]rune{'┘', '└', '┌', '┐'},
	})
	c.Register(&Shape{
		Name:        "Straight",
		Connections: NewDirectionSet(Left, Right),
		Glyphs:      [4]rune{'─', '│', '─', '│'},
	})
	c.Register(&Shape{
		Name:        "Tee",
		Connections: NewDirectionSet(Left, Up, Right),
		Glyphs:      [4]rune{'┴', '├', '┬', '┤'},
	})
	c.Register(&Shape{
		Name:        "End",
		Connections: NewDirectionSet(Left),
		Glyphs:      [4]rune{'╴', '╵', '╶', '╷'},
	})
	c.Register(&Shape{
		Name:        "Cross",
		Connections: NewDirectionSet(Left, Up, Right, Down),
		Glyphs:      [4]rune{'┼', '┼', '┼', '┼'},
	})
	c.Register(EdgeShape)
	return c
}
