// Package tui provides the Bubble Tea front end for the sequencer.
// It runs the tick loop, maps keys to board commands and draws the board.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// StepInterval is the simulation period: an eighth note at 120 BPM.
const StepInterval = 250 * time.Millisecond

// TickMsg is sent to trigger a simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends one tick message after interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
