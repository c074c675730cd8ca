// Package tui provides the Bubble Tea integration for the pipes
// platform: the interactive solve viewer, the run history board and
// the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger the next solver sweep in auto-play mode.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the
// given rate (sweeps per second).
func tickCmd(sweepsPerSecond int) tea.Cmd {
	if sweepsPerSecond <= 0 {
		sweepsPerSecond = 1
	}
	interval := time.Second / time.Duration(sweepsPerSecond)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
