// Package config provides YAML-based configuration loading for the
// pipes platform.
package config

// Config is the application configuration.
type Config struct {
	// PuzzleDir is scanned recursively for YAML puzzle files in
	// addition to the builtin set.
	PuzzleDir string `yaml:"puzzle_dir"`

	// Database is the path to the solve-run history database.
	// A leading ~ expands to the home directory.
	Database string `yaml:"database"`

	Solver SolverConfig `yaml:"solver"`
	Watch  WatchConfig  `yaml:"watch"`
}

// SolverConfig tunes the collapse driver.
type SolverConfig struct {
	// MaxSweeps caps the driver loop; 0 means no cap. The loop
	// terminates on its own, the cap is a safety net for huge grids.
	MaxSweeps int `yaml:"max_sweeps"`

	// Seed for the random rotation choice; 0 picks a time-based seed.
	Seed int64 `yaml:"seed"`
}

// WatchConfig tunes the interactive watch mode.
type WatchConfig struct {
	// SweepsPerSecond is the auto-play speed of the watch TUI.
	SweepsPerSecond int `yaml:"sweeps_per_second"`
}
