// Package tui provides the Bubble Tea front end for Keiraku Bomber.
// It handles the terminal UI loop, input mapping, the stage selector,
// the scoreboard and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const defaultTickRate = 30

// TickMsg drives one game step.
type TickMsg time.Time

// frameInterval is the wall time between ticks at rate frames per second.
// Non-positive rates use the default rate.
func frameInterval(rate int) time.Duration {
	if rate <= 0 {
		rate = defaultTickRate
	}
	return time.Second / time.Duration(rate)
}

func tickCmd(rate int) tea.Cmd {
	return tea.Tick(frameInterval(rate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
