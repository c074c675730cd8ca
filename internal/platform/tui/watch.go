package tui

import (
	"fmt"
	"math/big"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/okhmat/tui-pipes/internal/core"
	"github.com/okhmat/tui-pipes/internal/puzzles"
	"github.com/okhmat/tui-pipes/internal/solver"
	"github.com/okhmat/tui-pipes/internal/storage"
)

// watchStatus tracks where the solve currently stands.
type watchStatus int

const (
	statusRunning watchStatus = iota
	statusPaused
	statusSolved        // solution space reached 1
	statusStalled       // fixed point above 1, no contradictions
	statusUnsatisfiable // fixed point with stuck cells
)

func (s watchStatus) String() string {
	switch s {
	case statusRunning:
		return "running"
	case statusPaused:
		return "paused"
	case statusSolved:
		return "solved"
	case statusStalled:
		return "stalled"
	case statusUnsatisfiable:
		return "unsatisfiable"
	default:
		return "unknown"
	}
}

var bigOne = big.NewInt(1)

// WatchOptions configures the solve viewer.
type WatchOptions struct {
	ScreenW         int
	ScreenH         int
	SweepsPerSecond int
	Seed            int64 // 0 picks a time-based seed
	MaxSweeps       int
}

// WatchModel is the Bubble Tea model for watching the collapse run
// sweep by sweep.
type WatchModel struct {
	puzzle  puzzles.Puzzle
	catalog *core.Catalog
	store   *storage.Store
	opts    WatchOptions

	grid    *core.Grid
	engine  *solver.Engine
	seed    int64
	started time.Time

	// initial maps each cell to its starting domain size, so the view
	// can tell narrowed cells from untouched ones.
	initial  map[core.Position]int
	stuck    map[core.Position]bool
	space    *big.Int
	status   watchStatus
	runSaved bool

	keys     WatchKeyMap
	help     help.Model
	showHelp bool
	quitting bool
}

// NewWatchModel creates a viewer for the given puzzle.
func NewWatchModel(p puzzles.Puzzle, catalog *core.Catalog, store *storage.Store, opts WatchOptions) (WatchModel, error) {
	m := WatchModel{
		puzzle:  p,
		catalog: catalog,
		store:   store,
		opts:    opts,
		keys:    DefaultWatchKeyMap(),
		help:    help.New(),
	}
	if err := m.reset(opts.Seed); err != nil {
		return WatchModel{}, err
	}
	return m, nil
}

// reset rebuilds the grid and engine for a fresh run.
func (m *WatchModel) reset(seed int64) error {
	grid, err := m.puzzle.Build(m.catalog)
	if err != nil {
		return err
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	m.grid = grid
	m.seed = seed
	m.engine = solver.New(grid, seed)
	m.started = time.Now()
	m.stuck = make(map[core.Position]bool)
	m.space = grid.SolutionSpace()
	m.status = statusRunning
	m.runSaved = false

	m.initial = make(map[core.Position]int, grid.Width()*grid.Height())
	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			pos := core.P(x, y)
			m.initial[pos] = grid.PieceAt(pos).DomainSize()
		}
	}
	return nil
}

// Init starts the auto-play tick loop.
func (m WatchModel) Init() tea.Cmd {
	return tickCmd(m.opts.SweepsPerSecond)
}

// Update handles messages and updates the model state.
func (m WatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.opts.ScreenW = msg.Width
		m.opts.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if m.status == statusRunning {
			m.sweep()
		}
		return m, tickCmd(m.opts.SweepsPerSecond)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m WatchModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Pause):
		switch m.status {
		case statusRunning:
			m.status = statusPaused
		case statusPaused:
			m.status = statusRunning
		}

	case key.Matches(msg, m.keys.Step):
		// Stepping implies manual control; sweep() leaves terminal
		// states alone.
		if m.status == statusRunning {
			m.status = statusPaused
		}
		m.sweep()

	case key.Matches(msg, m.keys.Restart):
		//nolint:errcheck // The puzzle built once already; a rebuild cannot fail.
		m.reset(0)
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
	}

	return m, nil
}

// sweep advances the solve by one full pass and updates the status.
func (m *WatchModel) sweep() {
	if m.status == statusSolved || m.status == statusStalled || m.status == statusUnsatisfiable {
		return
	}
	if m.opts.MaxSweeps > 0 && m.engine.Sweeps() >= m.opts.MaxSweeps {
		m.status = statusStalled
		m.saveRun()
		return
	}

	prev := m.space
	result := m.engine.Sweep()
	m.space = result.SolutionSpace

	m.stuck = make(map[core.Position]bool, len(result.Contradictions))
	for _, pos := range result.Contradictions {
		m.stuck[pos] = true
	}

	switch {
	case m.space.Cmp(bigOne) == 0 && len(result.Contradictions) == 0:
		m.status = statusSolved
		m.saveRun()
	case m.space.Cmp(prev) == 0:
		if len(result.Contradictions) > 0 {
			m.status = statusUnsatisfiable
		} else {
			m.status = statusStalled
		}
		m.saveRun()
	}
}

// saveRun records the finished run, once, best effort.
func (m *WatchModel) saveRun() {
	if m.store == nil || m.runSaved {
		return
	}
	m.runSaved = true
	//nolint:errcheck // Best-effort save, viewer continues regardless
	m.store.SaveRun(storage.Run{
		PuzzleID:      m.puzzle.ID,
		Seed:          m.seed,
		Sweeps:        m.engine.Sweeps(),
		SolutionSpace: m.space.String(),
		Solved:        m.status == statusSolved,
		Unsatisfiable: m.status == statusUnsatisfiable,
		DurationMS:    time.Since(m.started).Milliseconds(),
	})
}

// cellColor picks the display color for a cell by its constraint state.
func (m WatchModel) cellColor(pos core.Position) core.Color {
	piece := m.grid.PieceAt(pos)
	switch {
	case m.stuck[pos]:
		return core.ColorRed
	case piece.DomainSize() == 1:
		return core.ColorGreen
	case piece.DomainSize() < m.initial[pos]:
		return core.ColorYellow
	default:
		return core.ColorGray
	}
}

// View renders the viewer.
func (m WatchModel) View() string {
	if m.quitting {
		return ""
	}

	gridW, gridH := m.grid.Width(), m.grid.Height()
	width := gridW + 4
	if w := len(m.puzzle.Name) + 12; w > width {
		width = w
	}
	if width < 44 {
		width = 44
	}
	screen := core.NewScreen(width, gridH+6)

	screen.DrawText(0, 0, fmt.Sprintf("Pipes - %s (%dx%d)", m.puzzle.Name, gridW, gridH), core.ColorCyan)

	for y := 0; y < gridH; y++ {
		for x := 0; x < gridW; x++ {
			pos := core.P(x, y)
			screen.Set(x+2, y+2, m.grid.PieceAt(pos).Glyph(), m.cellColor(pos))
		}
	}

	statsY := gridH + 3
	screen.DrawText(0, statsY,
		fmt.Sprintf("sweep %d   solution space %s", m.engine.Sweeps(), m.space), core.ColorDefault)
	screen.DrawText(0, statsY+1,
		fmt.Sprintf("status %s   seed %d", m.status, m.seed), statusColor(m.status))

	return RenderScreen(screen) + "\n" + m.help.View(m.keys)
}

func statusColor(s watchStatus) core.Color {
	switch s {
	case statusSolved:
		return core.ColorGreen
	case statusUnsatisfiable:
		return core.ColorRed
	case statusStalled:
		return core.ColorYellow
	default:
		return core.ColorDefault
	}
}

// Status reports the current solve status string (used by tests).
func (m WatchModel) Status() string {
	return m.status.String()
}

// RunWatch runs the solve viewer in the local terminal.
func RunWatch(p puzzles.Puzzle, catalog *core.Catalog, store *storage.Store, opts WatchOptions) error {
	model, err := NewWatchModel(p, catalog, store, opts)
	if err != nil {
		return err
	}

	prog := tea.NewProgram(model, tea.WithAltScreen())
	_, err = prog.Run()
	return err
}
