// Package tui provides the Bubble Tea integration for the arcade platform.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg announces one rendered frame. It carries the wall-clock send
// time; the receiving model feeds the measured delta to the game's
// scheduler, which decides how many logic ticks the frame owes.
type FrameMsg time.Time

// frameCmd schedules the next frame at the given nominal rate. Terminal
// timers jitter, which is why frames and logic ticks are decoupled.
func frameCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
