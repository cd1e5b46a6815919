package object

import (
	"math"

	"github.com/tomz197/asteroids-arcade/internal/loop/config"
	"github.com/tomz197/asteroids-arcade/internal/physics"
)

// Star is a decorative background point that twinkles. It never collides.
type Star struct {
	Pos          physics.Vec2
	Size         float64
	BaseBright   float64 // 100..255
	TwinkleSpeed float64 // Radians per second
	TwinklePhase float64
}

// NewStar places a star at a random point inside bounds.
func NewStar(bounds Bounds, rng Rand) *Star {
	return &Star{
		Pos:          physics.V(rng.Float64()*bounds.Width, rng.Float64()*bounds.Height),
		Size:         randRange(rng, config.StarMinSize, config.StarMaxSize),
		BaseBright:   randRange(rng, config.StarMinBrightness, config.StarMaxBrightness),
		TwinkleSpeed: randRange(rng, config.StarMinTwinkleSpeed, config.StarMaxTwinkleSpeed),
		TwinklePhase: rng.Float64() * 2 * math.Pi,
	}
}

// Update advances the twinkle phase.
func (s *Star) Update(dt float64) {
	s.TwinklePhase += s.TwinkleSpeed * dt
}

// Brightness returns the current gray level, between half and all of the base brightness.
func (s *Star) Brightness() float64 {
	// sin in [-1, 1] mapped onto [floor, 1]
	t := (math.Sin(s.TwinklePhase) + 1) / 2
	twinkle := config.StarTwinkleFloorRatio + t*(1-config.StarTwinkleFloorRatio)
	return s.BaseBright * twinkle
}
