package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/okhmat/tui-pipes/internal/puzzles"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available puzzles",
	Long: `Shows the builtin puzzles plus any YAML puzzles found in the
configured puzzle directory.`,
	Run: runList,
}

func runList(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	loader := puzzles.NewLoader(cfg.PuzzleDir)
	all, err := loader.LoadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading puzzles: %v\n", err)
		os.Exit(1)
	}

	if len(all) == 0 {
		fmt.Println("No puzzles available.")
		return
	}

	fmt.Println("Available puzzles:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, p := range all {
		if len(p.ID) > maxIDLen {
			maxIDLen = len(p.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-7s  %s\n", maxIDLen, "ID", "Size", "Name")
	fmt.Printf("  %-*s  %-7s  %s\n", maxIDLen, "--", "----", "----")

	for _, p := range all {
		size := fmt.Sprintf("%dx%d", p.Width(), p.Height())
		fmt.Printf("  %-*s  %-7s  %s\n", maxIDLen, p.ID, size, p.Name)
	}

	fmt.Println()
	fmt.Println("Run 'pipes watch <id>' to watch one being solved.")
}
