// Package storage provides SQLite-based persistence for solve runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for run persistence.
type Store struct {
	db *sql.DB
}

// Run records one invocation of the solve driver on a puzzle.
type Run struct {
	ID            int64
	PuzzleID      string
	Seed          int64
	Sweeps        int
	SolutionSpace string // decimal string; the product overflows int64 fast
	Solved        bool
	Unsatisfiable bool
	DurationMS    int64
	CreatedAt     time.Time
}

// PuzzleStats contains aggregated statistics for a puzzle.
type PuzzleStats struct {
	PuzzleID   string
	RunCount   int
	SolvedRuns int
	MinSweeps  int // among solved runs; 0 if never solved
	LastRun    time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			puzzle_id TEXT NOT NULL,
			seed INTEGER NOT NULL,
			sweeps INTEGER NOT NULL,
			solution_space TEXT NOT NULL,
			solved INTEGER NOT NULL DEFAULT 0,
			unsat INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_puzzle_id ON runs(puzzle_id);
		CREATE INDEX IF NOT EXISTS idx_runs_recent ON runs(puzzle_id, created_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a solve run. Returns the ID of the inserted record.
func (s *Store) SaveRun(run Run) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO runs (puzzle_id, seed, sweeps, solution_space, solved, unsat, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.PuzzleID, run.Seed, run.Sweeps, run.SolutionSpace,
		boolToInt(run.Solved), boolToInt(run.Unsatisfiable), run.DurationMS,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// RecentRuns retrieves the most recent runs for the given puzzle,
// newest first.
func (s *Store) RecentRuns(puzzleID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, puzzle_id, seed, sweeps, solution_space, solved, unsat, duration_ms, created_at
		 FROM runs
		 WHERE puzzle_id = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		puzzleID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	return scanRuns(rows)
}

// BestRun returns the solved run with the fewest sweeps for the given
// puzzle, or nil if the puzzle was never solved.
func (s *Store) BestRun(puzzleID string) (*Run, error) {
	rows, err := s.db.Query(
		`SELECT id, puzzle_id, seed, sweeps, solution_space, solved, unsat, duration_ms, created_at
		 FROM runs
		 WHERE puzzle_id = ? AND solved = 1
		 ORDER BY sweeps ASC, duration_ms ASC
		 LIMIT 1`,
		puzzleID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query best run: %w", err)
	}
	defer rows.Close()

	runs, err := scanRuns(rows)
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, nil
	}
	return &runs[0], nil
}

// Stats retrieves aggregated statistics for a puzzle.
func (s *Store) Stats(puzzleID string) (*PuzzleStats, error) {
	stats := &PuzzleStats{PuzzleID: puzzleID}

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(solved), 0),
		        COALESCE(MIN(CASE WHEN solved = 1 THEN sweeps END), 0)
		 FROM runs WHERE puzzle_id = ?`,
		puzzleID,
	).Scan(&stats.RunCount, &stats.SolvedRuns, &stats.MinSweeps)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get puzzle stats: %w", err)
	}

	var lastRun any
	err = s.db.QueryRow(
		`SELECT created_at FROM runs WHERE puzzle_id = ? ORDER BY created_at DESC LIMIT 1`,
		puzzleID,
	).Scan(&lastRun)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last run: %w", err)
	}
	if err == nil {
		stats.LastRun = parseTimestamp(lastRun)
	}

	return stats, nil
}

// PuzzleIDs returns the IDs of all puzzles with recorded runs, sorted.
func (s *Store) PuzzleIDs() ([]string, error) {
	rows, err := s.db.Query(`SELECT DISTINCT puzzle_id FROM runs ORDER BY puzzle_id`)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query puzzle ids: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return ids, nil
}

// ClearRuns deletes all runs for the given puzzle.
func (s *Store) ClearRuns(puzzleID string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE puzzle_id = ?", puzzleID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

func scanRuns(rows *sql.Rows) ([]Run, error) {
	var runs []Run
	for rows.Next() {
		var r Run
		var solved, unsat int
		var createdAt any
		if err := rows.Scan(&r.ID, &r.PuzzleID, &r.Seed, &r.Sweeps, &r.SolutionSpace,
			&solved, &unsat, &r.DurationMS, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Solved = solved != 0
		r.Unsatisfiable = unsat != 0
		r.CreatedAt = parseTimestamp(createdAt)
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// parseTimestamp handles both time.Time and string datetime values
// coming back from the driver.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
