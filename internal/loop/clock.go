package loop

import "time"

// Clock abstracts wall time so the loop can be driven deterministically.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// WallClock is the real clock.
type WallClock struct{}

// Now returns the current time.
func (WallClock) Now() time.Time {
	return time.Now()
}

// Sleep blocks for d.
func (WallClock) Sleep(d time.Duration) {
	time.Sleep(d)
}

// ManualClock only moves when told to. Sleep advances it instantly.
type ManualClock struct {
	now   time.Time
	slept time.Duration
}

// NewManualClock creates a clock frozen at start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the clock's current time.
func (c *ManualClock) Now() time.Time {
	return c.now
}

// Sleep advances the clock by d without blocking.
func (c *ManualClock) Sleep(d time.Duration) {
	if d <= 0 {
		return
	}
	c.now = c.now.Add(d)
	c.slept += d
}

// Advance moves the clock forward by d, as if work took that long.
func (c *ManualClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

// Slept returns the total time spent in Sleep.
func (c *ManualClock) Slept() time.Duration {
	return c.slept
}
