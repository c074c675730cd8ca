package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/okhmat/tui-pipes/internal/core"
	"github.com/okhmat/tui-pipes/internal/puzzles"
	"github.com/okhmat/tui-pipes/internal/solver"
	"github.com/okhmat/tui-pipes/internal/storage"
)

var (
	flagMaxSweeps int
	flagNoSave    bool
)

var solveCmd = &cobra.Command{
	Use:   "solve <puzzle>",
	Short: "Solve a puzzle and print the result",
	Long: `Run the collapse solver on the specified puzzle and print the
finished grid. The argument is a builtin puzzle ID, an ID from the
configured puzzle directory, or a path to a puzzle YAML file.

The solver sweeps the grid, narrowing each cell's rotation candidates
from its neighbours, until every cell is down to one rotation or a
sweep stops making progress. Runs are recorded in the history database.

Examples:
  pipes solve classic
  pipes solve classic --seed 42
  pipes solve ./my-puzzle.yaml
  pipes solve junction --log-level debug`,
	Args: cobra.ExactArgs(1),
	Run:  runSolve,
}

func init() {
	solveCmd.Flags().IntVar(&flagMaxSweeps, "max-sweeps", 0, "Cap on solver sweeps (0 = config value)")
	solveCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not record the run in the history database")
}

func runSolve(cmd *cobra.Command, args []string) {
	puzzleID := args[0]
	logger := newLogger()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	loader := puzzles.NewLoader(cfg.PuzzleDir)
	puzzle, err := loader.LoadByID(puzzleID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'pipes list' to see available puzzles.")
		os.Exit(1)
	}

	catalog := core.DefaultCatalog()
	grid, err := puzzle.Build(catalog)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid puzzle %q: %v\n", puzzle.ID, err)
		os.Exit(1)
	}

	seed := cfg.Solver.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	maxSweeps := flagMaxSweeps
	if maxSweeps == 0 {
		maxSweeps = cfg.Solver.MaxSweeps
	}

	logger.Info("solving", "puzzle", puzzle.ID, "size",
		fmt.Sprintf("%dx%d", grid.Width(), grid.Height()), "seed", seed)

	engine := solver.New(grid, seed, solver.WithLogger(logger))
	started := time.Now()
	result, solveErr := engine.Solve(maxSweeps)
	elapsed := time.Since(started)

	fmt.Println(grid.String())

	switch {
	case result.Solved:
		fmt.Printf("Solved in %d sweeps (%.1fms)\n",
			result.Sweeps, float64(elapsed.Microseconds())/1000)
	case errors.Is(solveErr, solver.ErrUnsatisfiable):
		fmt.Printf("Unsatisfiable: %d cells have no rotation that fits their neighbours\n",
			len(result.Contradictions))
	default:
		fmt.Printf("Stalled after %d sweeps, %s candidate grids remain\n",
			result.Sweeps, result.SolutionSpace)
	}

	if !flagNoSave {
		saveSolveRun(puzzle.ID, seed, result, elapsed)
	}

	if solveErr != nil {
		os.Exit(1)
	}
}

// saveSolveRun records the run, best effort.
func saveSolveRun(puzzleID string, seed int64, result solver.Result, elapsed time.Duration) {
	cfg, err := loadConfig()
	if err != nil {
		return
	}
	store, err := storage.Open(cfg.Database)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		return
	}
	defer store.Close()

	//nolint:errcheck // Best-effort save
	store.SaveRun(storage.Run{
		PuzzleID:      puzzleID,
		Seed:          seed,
		Sweeps:        result.Sweeps,
		SolutionSpace: result.SolutionSpace.String(),
		Solved:        result.Solved,
		Unsatisfiable: len(result.Contradictions) > 0,
		DurationMS:    elapsed.Milliseconds(),
	})
}
