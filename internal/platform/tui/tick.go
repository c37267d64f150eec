// Package tui runs a game inside a Bubble Tea program. It turns key events
// into input frames, paces the simulation and renders the screen buffer.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-asteroids/internal/loop"
)

// TickMsg is sent once per input poll.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick after one poll interval.
func tickCmd(pollHz int) tea.Cmd {
	return tea.Tick(loop.Interval(pollHz), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
