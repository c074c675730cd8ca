package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/okhmat/tui-pipes/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagServePuzzle string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the pipes SSH server",
	Long: `Start an SSH server that lets users connect and watch the solver.

Each SSH connection gets its own solver run, seeded from the connection
time, so viewers see different collapse orders on the same puzzle.
Finished runs are recorded in the shared history database.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.pipes/host_key

Examples:
  pipes serve                            # Listen on :23235 with auto-generated key
  pipes serve --ssh :2222                # Listen on port 2222
  pipes serve --puzzle junction          # Serve a different puzzle
  pipes serve --host-key ./my_host_key   # Use specific host key

Users can connect with:
  ssh localhost -p 23235`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23235", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().StringVar(&flagServePuzzle, "puzzle", "classic", "Puzzle served to connecting clients")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	serverCfg := tui.SSHServerConfig{
		Address:         flagSSHAddr,
		HostKeyPath:     flagHostKey,
		DBPath:          cfg.Database,
		PuzzleDir:       cfg.PuzzleDir,
		PuzzleID:        flagServePuzzle,
		SweepsPerSecond: cfg.Watch.SweepsPerSecond,
		IdleTimeout:     time.Duration(flagIdleTimeout) * time.Minute,
	}

	server, err := tui.NewSSHServer(serverCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting pipes SSH server on %s\n", serverCfg.Address)
	fmt.Printf("Serving puzzle %q\n", serverCfg.PuzzleID)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
