package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/okhmat/tui-pipes/internal/core"
	"github.com/okhmat/tui-pipes/internal/platform/tui"
	"github.com/okhmat/tui-pipes/internal/puzzles"
	"github.com/okhmat/tui-pipes/internal/storage"
)

var flagSweepsPerSecond int

var watchCmd = &cobra.Command{
	Use:   "watch <puzzle>",
	Short: "Watch the solver collapse a puzzle live",
	Long: `Open a terminal viewer that runs the solver sweep by sweep.

Cells are colored by their constraint state:
  green   - collapsed to a single rotation
  yellow  - candidates narrowed, not yet collapsed
  gray    - untouched
  red     - stuck (no rotation fits the neighbours)

Controls:
  Space/P    - Pause/resume
  N/S        - Step one sweep while paused
  R          - Restart with a fresh seed
  ?          - Toggle help
  Q/Ctrl+C   - Quit

Examples:
  pipes watch classic
  pipes watch junction --sps 5
  pipes watch classic --seed 42`,
	Args: cobra.ExactArgs(1),
	Run:  runWatch,
}

func init() {
	watchCmd.Flags().IntVar(&flagSweepsPerSecond, "sps", 0, "Sweeps per second (0 = config value)")
}

func runWatch(cmd *cobra.Command, args []string) {
	puzzleID := args[0]

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
	if err := puzzle.Validate(catalog); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid puzzle %q: %v\n", puzzle.ID, err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	sps := flagSweepsPerSecond
	if sps == 0 {
		sps = cfg.Watch.SweepsPerSecond
	}

	store, err := storage.Open(cfg.Database)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - the viewer still works
		store = nil
	}

	opts := tui.WatchOptions{
		ScreenW:         width,
		ScreenH:         height,
		SweepsPerSecond: sps,
		Seed:            cfg.Solver.Seed,
		MaxSweeps:       cfg.Solver.MaxSweeps,
	}

	runErr := tui.RunWatch(puzzle, catalog, store, opts)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running viewer: %v\n", runErr)
		os.Exit(1)
	}
}
