package object

import (
	"math"

	"github.com/tomz197/asteroids-arcade/internal/loop/config"
	"github.com/tomz197/asteroids-arcade/internal/physics"
)

// Spawner creates asteroid waves, split fragments, explosion bursts and the starfield.
type Spawner struct {
	bounds Bounds
	rng    Rand
}

// NewSpawner creates a spawner for the given play bounds.
func NewSpawner(bounds Bounds, rng Rand) *Spawner {
	return &Spawner{bounds: bounds, rng: rng}
}

// Wave creates count Large asteroids just outside a random screen edge.
func (s *Spawner) Wave(count int) []*Asteroid {
	if count < 0 {
		count = 0
	}
	asteroids := make([]*Asteroid, 0, count)
	for i := 0; i < count; i++ {
		asteroids = append(asteroids, NewAsteroid(s.edgePosition(), AsteroidLarge, s.bounds, s.rng))
	}
	return asteroids
}

// edgePosition picks a point WaveSpawnOffset outside one of the four edges.
func (s *Spawner) edgePosition() physics.Vec2 {
	w, h := s.bounds.Width, s.bounds.Height
	off := config.WaveSpawnOffset

	if s.rng.Float64() < 0.5 {
		// Left or right edge
		x := -off
		if s.rng.Float64() >= 0.5 {
			x = w + off
		}
		return physics.V(x, s.rng.Float64()*h)
	}

	// Top or bottom edge
	y := -off
	if s.rng.Float64() >= 0.5 {
		y = h + off
	}
	return physics.V(s.rng.Float64()*w, y)
}

// Fragments returns the pieces a destroyed asteroid breaks into: two of the
// next smaller type, or none for a Small asteroid.
func (s *Spawner) Fragments(parent *Asteroid) []*Asteroid {
	if _, ok := parent.Type.Next(); !ok {
		return nil
	}
	frags := make([]*Asteroid, 0, config.FragmentsPerSplit)
	for i := 0; i < config.FragmentsPerSplit; i++ {
		if a, ok := NewFragment(parent, s.rng); ok {
			frags = append(frags, a)
		}
	}
	return frags
}

// Explosion creates a burst of count particles at pos with random directions and speeds.
func (s *Spawner) Explosion(pos physics.Vec2, count int) []*Particle {
	particles := make([]*Particle, 0, count)
	for i := 0; i < count; i++ {
		angle := s.rng.Float64() * 2 * math.Pi
		speed := randRange(s.rng, config.ParticleMinSpeed, config.ParticleMaxSpeed)
		particles = append(particles, NewParticle(pos, angle, speed, s.rng))
	}
	return particles
}

// Starfield creates count stars scattered over the play rectangle.
func (s *Spawner) Starfield(count int) []*Star {
	stars := make([]*Star, 0, count)
	for i := 0; i < count; i++ {
		stars = append(stars, NewStar(s.bounds, s.rng))
	}
	return stars
}
