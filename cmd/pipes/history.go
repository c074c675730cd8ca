package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/okhmat/tui-pipes/internal/platform/tui"
	"github.com/okhmat/tui-pipes/internal/storage"
)

var historyCmd = &cobra.Command{
	Use:   "history [puzzle]",
	Short: "Browse recorded solve runs",
	Long: `Open an interactive board of past solve runs.

Tab cycles through puzzles that have recorded runs. If a puzzle ID is
given, the board opens on that puzzle.

Examples:
  pipes history
  pipes history classic`,
	Args: cobra.MaximumNArgs(1),
	Run:  runHistory,
}

func runHistory(cmd *cobra.Command, args []string) {
	puzzleID := ""
	if len(args) > 0 {
		puzzleID = args[0]
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(cfg.Database)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunHistory(store, puzzleID, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error running history board: %v\n", err)
		os.Exit(1)
	}
}
