// Package tui runs the game in the terminal with Bubble Tea. It owns the
// frame clock and the key mapping, and turns the game's screen buffer into
// styled output.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation tick. It carries the wall-clock
// time the tick fired, from which the frame delta is measured.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameDelta returns the seconds between two ticks. The first tick has no
// predecessor and yields 0.
func frameDelta(last, now time.Time) float64 {
	if last.IsZero() {
		return 0
	}
	return now.Sub(last).Seconds()
}
