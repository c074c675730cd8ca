// Package puzzles provides puzzle definitions for the pipes solver:
// validation of grid descriptions, the builtin puzzle set and a YAML
// file loader. This package depends on core but core does not depend
// on puzzles.
package puzzles

import (
	"errors"
	"fmt"

	"github.com/okhmat/tui-pipes/internal/core"
)

// Validation errors. All are detected before any solving begins.
var (
	ErrEmpty        = errors.New("puzzle: empty grid")
	ErrRaggedRows   = errors.New("puzzle: rows have unequal lengths")
	ErrUnknownShape = errors.New("puzzle: unknown shape name")
)

// Puzzle is a grid description: rows of shape names drawn from a
// catalog. Grids must be rectangular but need not be square.
type Puzzle struct {
	ID   string
	Name string
	Rows [][]string
}

// Validate checks the puzzle against the catalog: non-empty, all rows
// equal length, every shape name registered. Fails fast with a typed
// error naming the offending cell.
func (p Puzzle) Validate(catalog *core.Catalog) error {
	if len(p.Rows) == 0 || len(p.Rows[0]) == 0 {
		return fmt.Errorf("%w: %q", ErrEmpty, p.ID)
	}

	width := len(p.Rows[0])
	for y, row := range p.Rows {
		if len(row) != width {
			return fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedRows, y, len(row), width)
		}
		for x, name := range row {
			if _, ok := catalog.Lookup(name); !ok {
				return fmt.Errorf("%w: %q at (%d,%d)", ErrUnknownShape, name, x, y)
			}
		}
	}
	return nil
}

// Build validates the puzzle and constructs its grid.
func (p Puzzle) Build(catalog *core.Catalog) (*core.Grid, error) {
	if err := p.Validate(catalog); err != nil {
		return nil, err
	}

	rows := make([][]*core.Shape, len(p.Rows))
	for y, row := range p.Rows {
		rows[y] = make([]*core.Shape, len(row))
		for x, name := range row {
			shape, _ := catalog.Lookup(name)
			rows[y][x] = shape
		}
	}
	return core.NewGrid(rows), nil
}

// Width returns the number of columns, 0 for an empty puzzle.
func (p Puzzle) Width() int {
	if len(p.Rows) == 0 {
		return 0
	}
	return len(p.Rows[0])
}

// Height returns the number of rows.
func (p Puzzle) Height() int {
	return len(p.Rows)
}
