// pipes is a TUI solver for pipe-connection grid puzzles.
//
// Usage:
//
//	pipes list               - List available puzzles
//	pipes solve <puzzle>     - Solve a puzzle and print the result
//	pipes watch <puzzle>     - Watch the solver collapse the grid live
//	pipes history [puzzle]   - Browse recorded solve runs
//	pipes serve              - Start SSH server for remote watching
//
// Global flags:
//
//	--seed <value>     - RNG seed for reproducible runs (0 = time-based)
//	--db <path>        - Runs database path (default: ~/.pipes/runs.db)
//	--config <path>    - Custom config file
//	--log-level <lvl>  - Log level: debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/okhmat/tui-pipes/internal/config"
)

var (
	// Global flags
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pipes",
	Short: "Pipes - watch constraint collapse solve pipe grids",
	Long: `Pipes solves pipe-connection grid puzzles by repeatedly narrowing
each cell's rotation candidates against its neighbours until every
cell has exactly one rotation left.

Available commands:
  list     - Show all available puzzles
  solve    - Solve a puzzle and print the finished grid
  watch    - Watch the collapse sweep by sweep in the terminal
  history  - Browse past solve runs
  serve    - Start SSH server for remote watching

Examples:
  pipes list
  pipes solve classic
  pipes solve classic --seed 42
  pipes watch junction
  pipes history classic
  pipes serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to runs database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig reads the config file and applies global flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	if flagDBPath != "" {
		cfg.Database = flagDBPath
	}
	if flagSeed != 0 {
		cfg.Solver.Seed = flagSeed
	}
	return cfg, nil
}

// newLogger builds a stderr logger honoring --log-level.
func newLogger() *log.Logger {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: true,
	})
}
