// Package tui provides the Bubble Tea integration for the matrix
// simulator. It drives the fixed tick loop, maps keyboard events onto
// emulated button lines, and renders the 16x16 frame as colored
// terminal cells.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ledgrid/ledarcade/internal/core"
)

// TickMsg is sent to trigger a simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the
// configured rate. A non-positive rate falls back to the default, same
// as RuntimeConfig.TickMS.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
