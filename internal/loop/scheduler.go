// Package loop drives a simulation with two cadences: a fast outer loop that
// polls input and paces itself with a bounded sleep, and a slower inner
// cadence that steps and renders the simulation.
package loop

import "time"

// Scheduler gates the inner cadence: it is due once at least one interval
// has elapsed since the last time it fired. The first check always fires.
type Scheduler struct {
	interval time.Duration
	last     time.Time
	fired    bool
}

// NewScheduler creates a gate for the given rate in Hz.
func NewScheduler(hz int) *Scheduler {
	return &Scheduler{interval: Interval(hz)}
}

// Interval converts a rate in Hz to the period between events.
// Non-positive rates yield zero, which makes every check due.
func Interval(hz int) time.Duration {
	if hz <= 0 {
		return 0
	}
	return time.Second / time.Duration(hz)
}

// Interval returns the minimum time between two firings.
func (s *Scheduler) Interval() time.Duration {
	return s.interval
}

// Due reports whether the inner cadence should run at now, and if so
// records now as the last firing.
func (s *Scheduler) Due(now time.Time) bool {
	if s.fired && now.Sub(s.last) < s.interval {
		return false
	}
	s.last = now
	s.fired = true
	return true
}

// Reset forgets the last firing so the next check is due.
func (s *Scheduler) Reset() {
	s.fired = false
	s.last = time.Time{}
}
