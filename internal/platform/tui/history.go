package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/okhmat/tui-pipes/internal/storage"
)

const maxHistoryRows = 100

// HistoryModel is the Bubble Tea model for the run history board. It
// shows past solve runs per puzzle; tab cycles through puzzles that
// have recorded runs.
type HistoryModel struct {
	store    *storage.Store
	puzzles  []string
	cursor   int
	runs     []storage.Run
	stats    *storage.PuzzleStats
	table    table.Model
	help     help.Model
	keys     HistoryKeyMap
	width    int
	height   int
	quitting bool
	loadErr  error
}

// NewHistoryModel creates a history board. If puzzleID is non-empty
// the board opens on that puzzle.
func NewHistoryModel(store *storage.Store, puzzleID string, width, height int) HistoryModel {
	m := HistoryModel{
		store:  store,
		keys:   DefaultHistoryKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}

	m.buildTable()

	ids, err := store.PuzzleIDs()
	if err != nil {
		m.loadErr = err
		return m
	}
	m.puzzles = ids
	for i, id := range ids {
		if id == puzzleID {
			m.cursor = i
			break
		}
	}

	m.loadRuns()
	return m
}

// buildTable sets up the table widget.
func (m *HistoryModel) buildTable() {
	columns := []table.Column{
		{Title: "When", Width: 16},
		{Title: "Sweeps", Width: 7},
		{Title: "Space", Width: 12},
		{Title: "Result", Width: 8},
		{Title: "Seed", Width: 20},
	}

	height := m.height - 8
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(styles)

	m.table = t
}

// loadRuns fetches runs and stats for the selected puzzle.
func (m *HistoryModel) loadRuns() {
	if len(m.puzzles) == 0 {
		return
	}
	id := m.puzzles[m.cursor]

	runs, err := m.store.RecentRuns(id, maxHistoryRows)
	if err != nil {
		m.loadErr = err
		return
	}
	m.runs = runs

	stats, err := m.store.Stats(id)
	if err != nil {
		m.loadErr = err
		return
	}
	m.stats = stats

	rows := make([]table.Row, len(runs))
	for i, r := range runs {
		result := "stalled"
		switch {
		case r.Solved:
			result = "solved"
		case r.Unsatisfiable:
			result = "unsat"
		}
		rows[i] = table.Row{
			r.CreatedAt.Format("2006-01-02 15:04"),
			fmt.Sprintf("%d", r.Sweeps),
			r.SolutionSpace,
			result,
			fmt.Sprintf("%d", r.Seed),
		}
	}
	m.table.SetRows(rows)
	m.table.SetCursor(0)
}

// Init implements tea.Model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history board.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextPuzz):
			if len(m.puzzles) > 0 {
				m.cursor = (m.cursor + 1) % len(m.puzzles)
				m.loadRuns()
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevPuzz):
			if len(m.puzzles) > 0 {
				m.cursor = (m.cursor - 1 + len(m.puzzles)) % len(m.puzzles)
				m.loadRuns()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.buildTable()
		m.loadRuns()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history board.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}
	if m.loadErr != nil {
		return fmt.Sprintf("Error loading history: %v\n", m.loadErr)
	}
	if len(m.puzzles) == 0 {
		return "No runs recorded yet.\n\nSolve a puzzle first: pipes solve classic\n"
	}

	title := lipgloss.NewStyle().Bold(true).Render(
		fmt.Sprintf("Run History - %s", m.puzzles[m.cursor]))

	summary := ""
	if m.stats != nil {
		summary = fmt.Sprintf("%d runs, %d solved, best %d sweeps",
			m.stats.RunCount, m.stats.SolvedRuns, m.stats.MinSweeps)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summary,
		"",
		m.table.View(),
		"",
		m.help.View(m.keys),
	)
}

// RunHistory runs the history board in the local terminal.
func RunHistory(store *storage.Store, puzzleID string, width, height int) error {
	model := NewHistoryModel(store, puzzleID, width, height)
	prog := tea.NewProgram(model, tea.WithAltScreen())
	_, err := prog.Run()
	return err
}
