package config

import (
	_ "embed"
)

//go:embed defaults/pipes.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration, used when even
// the embedded defaults file fails to parse.
func Default() Config {
	return Config{
		Database: "~/.pipes/runs.db",
		Solver: SolverConfig{
			MaxSweeps: 0,
			Seed:      0,
		},
		Watch: WatchConfig{
			SweepsPerSecond: 2,
		},
	}
}
