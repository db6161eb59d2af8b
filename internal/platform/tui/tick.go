// Package tui runs Friday Breakfast in the terminal with Bubble Tea.
// It maps keys and mouse drags onto the game's joystick, drives the
// simulation from a frame ticker and draws snapshots with Lip Gloss.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(fps int) tea.Cmd {
	if fps <= 0 {
		fps = 60
	}
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameDelta returns the seconds elapsed between two ticks. The first
// tick of a run has no predecessor and yields zero.
func frameDelta(prev, now time.Time) float64 {
	if prev.IsZero() || now.Before(prev) {
		return 0
	}
	return now.Sub(prev).Seconds()
}
