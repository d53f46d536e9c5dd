package core

import "time"

// DeltaClock measures the wall-clock time elapsed between frames and converts
// it into simulation time steps, capping long stalls so a paused debugger or
// dragged window cannot inject a giant step.
type DeltaClock struct {
	last time.Time
	cap  time.Duration
}

// NewDeltaClock constructs a clock that clamps individual steps to maxStep.
func NewDeltaClock(maxStep time.Duration) *DeltaClock {
	if maxStep <= 0 {
		maxStep = 250 * time.Millisecond
	}
	return &DeltaClock{cap: maxStep}
}

// Tick returns the seconds elapsed since the previous call, clamped to the
// configured cap. The first call returns zero.
func (c *DeltaClock) Tick() float64 {
	now := time.Now()
	if c.last.IsZero() {
		c.last = now
		return 0
	}
	delta := now.Sub(c.last)
	c.last = now
	if delta > c.cap {
		delta = c.cap
	}
	if delta < 0 {
		delta = 0
	}
	return delta.Seconds()
}
