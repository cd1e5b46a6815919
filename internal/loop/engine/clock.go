package engine

import (
	"time"

	"github.com/tomz197/asteroids-arcade/internal/loop/config"
)

// Clock turns wall-clock timestamps into bounded simulation steps.
// The start time is taken at construction so the first tick is not huge.
type Clock struct {
	last     time.Time
	maxDelta float64
}

// NewClock creates a clock whose first tick measures from start.
func NewClock(start time.Time) *Clock {
	return &Clock{last: start, maxDelta: config.MaxDeltaSeconds}
}

// Tick returns the seconds elapsed since the previous tick, clamped to
// MaxDeltaSeconds so stalls (debugger pauses, dropped frames) cannot produce
// a huge physics step. A timestamp that does not advance yields 0.
func (c *Clock) Tick(now time.Time) float64 {
	dt := now.Sub(c.last).Seconds()
	c.last = now

	switch {
	case dt < 0:
		return 0
	case dt > c.maxDelta:
		return c.maxDelta
	}
	return dt
}
