package loop

import (
	"math"
	"time"

	"github.com/tomz197/asteroids-arcade/internal/loop/config"
)

// FPSMeter counts rendered frames and publishes the rate at a fixed refresh
// interval so the number on screen stays readable.
type FPSMeter struct {
	frames  int
	last    time.Time
	shown   int
	refresh time.Duration
}

// NewFPSMeter starts measuring at now.
func NewFPSMeter(now time.Time) *FPSMeter {
	return &FPSMeter{last: now, refresh: config.FPSRefresh}
}

// Frame records one rendered frame.
func (m *FPSMeter) Frame(now time.Time) {
	m.frames++
	elapsed := now.Sub(m.last)
	if elapsed < m.refresh {
		return
	}
	m.shown = int(math.Round(float64(m.frames) / elapsed.Seconds()))
	m.frames = 0
	m.last = now
}

// FPS returns the last published frame rate.
func (m *FPSMeter) FPS() int {
	return m.shown
}
