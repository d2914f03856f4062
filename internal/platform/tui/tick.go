// Package tui runs games in the terminal with Bubble Tea.
// It owns the fixed-rate loop, input mapping and drawing; games stay pure.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func tickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = 60
	}
	return time.Second / time.Duration(tickRate)
}

// holdTicks is how many ticks a direction stays held after one key event.
// Terminals report presses and auto-repeats but no releases, so a held key
// is a press that keeps being refreshed by repeats.
func holdTicks(tickRate int) int {
	return max(int(holdWindow/tickInterval(tickRate)), 1)
}

const holdWindow = 120 * time.Millisecond
