// Package solver implements the constraint-narrowing collapse engine:
// each cell's candidate rotations are repeatedly shrunk against its
// neighbours' constraint state, then one survivor is committed at
// random. Sweeps repeat until the solution space stops shrinking.
//
// This is a local propagation heuristic, not a CSP solver: there is no
// backtracking and no global consistency guarantee.
package solver

import (
	"errors"
	"fmt"
	"io"
	"math/big"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/okhmat/tui-pipes/internal/core"
)

// ErrUnsatisfiable is returned when the fixed point is reached with
// cells for which no rotation is consistent with their neighbours. The
// one-pass propagation can paint itself into this corner; affected
// cells keep their previous domain and rotation.
var ErrUnsatisfiable = errors.New("solver: no consistent rotation remains")

var one = big.NewInt(1)

// Engine drives the collapse over a single grid. It owns its random
// source so runs are reproducible from a seed; it is not safe for
// concurrent use and does not need to be.
type Engine struct {
	grid   *core.Grid
	rng    *rand.Rand
	logger *log.Logger
	sweeps int
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger attaches a logger for per-collapse debug output.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// New creates an engine for the grid. A zero seed picks a time-based
// one; pass an explicit seed for reproducible runs.
func New(grid *core.Grid, seed int64, opts ...Option) *Engine {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	e := &Engine{
		grid:   grid,
		rng:    rand.New(rand.NewSource(seed)),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Grid returns the grid the engine operates on.
func (e *Engine) Grid() *core.Grid {
	return e.grid
}

// Sweeps returns the number of full sweeps performed so far.
func (e *Engine) Sweeps() int {
	return e.sweeps
}

// Collapse narrows the focus piece's domain against its neighbours and
// commits one surviving rotation, chosen uniformly at random. The
// domain keeps the full survivor set, not the committed singleton, so a
// later sweep can re-narrow and re-pick.
//
// A direction is valid if the neighbour there could still connect back,
// and mandatory if the neighbour will connect back no matter how it is
// finally rotated. A rotation survives iff its connections stay within
// the valid set and cover every mandatory direction.
//
// Returns false when no rotation survives; the piece is left untouched.
func (e *Engine) Collapse(focus *core.Piece) bool {
	valid := core.NewDirectionSet()
	mandatory := core.NewDirectionSet()
	for _, n := range e.grid.Neighbours(focus.Position()) {
		if n.Piece.CanConnect(n.Dir.Opposite()) {
			valid.Add(n.Dir)
		}
		if n.Piece.MustConnect(n.Dir.Opposite()) {
			mandatory.Add(n.Dir)
		}
	}

	var survivors []core.Rotation
	for _, r := range focus.Domain() {
		conns := focus.Shape().Rotate(r)
		if conns.SubsetOf(valid) && mandatory.SubsetOf(conns) {
			survivors = append(survivors, r)
		}
	}

	if len(survivors) == 0 {
		e.logger.Debug("collapse found no consistent rotation",
			"pos", focus.Position(), "shape", focus.Shape().Name)
		return false
	}

	focus.Restrict(survivors)
	focus.SetRotation(survivors[e.rng.Intn(len(survivors))])

	e.logger.Debug("collapsed cell",
		"pos", focus.Position(),
		"shape", focus.Shape().Name,
		"candidates", len(survivors),
		"rotation", int(focus.Rotation()))
	return true
}

// SweepResult reports one full pass over the grid.
type SweepResult struct {
	Sweep          int
	SolutionSpace  *big.Int
	Contradictions []core.Position
}

// Sweep collapses every cell once, in row-major order. Cells with no
// consistent rotation are recorded and skipped rather than aborting the
// pass.
func (e *Engine) Sweep() SweepResult {
	e.sweeps++
	result := SweepResult{Sweep: e.sweeps}

	for y := 0; y < e.grid.Height(); y++ {
		for x := 0; x < e.grid.Width(); x++ {
			focus := e.grid.PieceAt(core.P(x, y))
			if !e.Collapse(focus) {
				result.Contradictions = append(result.Contradictions, focus.Position())
			}
		}
	}

	result.SolutionSpace = e.grid.SolutionSpace()
	return result
}

// Result is the outcome of running the driver loop to its fixed point.
type Result struct {
	Sweeps         int
	SolutionSpace  *big.Int
	Solved         bool
	Contradictions []core.Position
}

// Solve runs sweeps until the solution space reaches 1 or a sweep fails
// to shrink it. The loop always terminates: the solution space is a
// positive integer that never grows. maxSweeps caps the iteration as a
// safety net; 0 means no cap.
//
// Solved means every cell kept exactly one candidate and none hit a
// contradiction, not that the result is globally consistent.
func (e *Engine) Solve(maxSweeps int) (Result, error) {
	size := e.grid.SolutionSpace()
	var contradictions []core.Position

	for size.Cmp(one) > 0 {
		if maxSweeps > 0 && e.sweeps >= maxSweeps {
			e.logger.Warn("sweep cap reached", "sweeps", e.sweeps)
			break
		}

		sweep := e.Sweep()
		contradictions = sweep.Contradictions
		e.logger.Info("sweep finished",
			"sweep", sweep.Sweep,
			"solution_space", sweep.SolutionSpace.String(),
			"contradictions", len(sweep.Contradictions))

		if sweep.SolutionSpace.Cmp(size) == 0 {
			break
		}
		size = sweep.SolutionSpace
	}

	result := Result{
		Sweeps:         e.sweeps,
		SolutionSpace:  size,
		Solved:         size.Cmp(one) == 0 && len(contradictions) == 0,
		Contradictions: contradictions,
	}
	if len(contradictions) > 0 {
		return result, fmt.Errorf("%w: %d stuck cells, first at %v",
			ErrUnsatisfiable, len(contradictions), contradictions[0])
	}
	return result, nil
}
