// Package tui runs SpinBall in a terminal with Bubble Tea.
// It maps keys and the mouse to game actions, drives the fixed tick and
// hosts the title menu, settings, scoreboard and SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const defaultTickRate = 60

// TickMsg advances the simulation by one step.
type TickMsg time.Time

// frameInterval is the wall time of one simulation step.
func frameInterval(rate int) time.Duration {
	if rate <= 0 {
		rate = defaultTickRate
	}
	return time.Second / time.Duration(rate)
}

func tickCmd(rate int) tea.Cmd {
	return tea.Tick(frameInterval(rate), func(t time.Time) tea.Msg { return TickMsg(t) })
}
