package tui

import (
	"time"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// DefaultHoldWindow is how long a control stays held after its last key event.
const DefaultHoldWindow = 150 * time.Millisecond

// HoldTracker rebuilds held state from a terminal's key events. Terminals
// report presses and auto-repeats but never releases, so a control counts
// as held until no event for it arrived within the window. Every event,
// repeats included, also counts as a press.
type HoldTracker struct {
	window  time.Duration
	last    map[core.Action]time.Time
	pressed map[core.Action]bool
}

// NewHoldTracker creates a tracker with the given hold window.
func NewHoldTracker(window time.Duration) *HoldTracker {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &HoldTracker{
		window:  window,
		last:    make(map[core.Action]time.Time),
		pressed: make(map[core.Action]bool),
	}
}

// Observe records a key event for a at now.
func (h *HoldTracker) Observe(a core.Action, now time.Time) {
	if a == core.ActionNone {
		return
	}
	h.last[a] = now
	h.pressed[a] = true
}

// Frame samples the control state at now and consumes pending presses.
func (h *HoldTracker) Frame(now time.Time) core.InputFrame {
	in := core.NewInputFrame()
	for a, t := range h.last {
		if now.Sub(t) < h.window {
			in.Hold(a)
			continue
		}
		delete(h.last, a)
	}
	for a := range h.pressed {
		in.Press(a)
	}
	clear(h.pressed)
	return in
}

// Reset forgets every control.
func (h *HoldTracker) Reset() {
	clear(h.last)
	clear(h.pressed)
}
