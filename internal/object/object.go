// Package object holds the simulated entities: ship, asteroids, bullets,
// particles and stars, plus the spawner that creates them.
//
// Entities never reach for global state. Every constructor receives the play
// bounds and a random source explicitly.
package object

import "github.com/tomz197/asteroids-arcade/internal/physics"

// Rand is the randomness an entity needs. *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// randRange returns a uniform value in [lo, hi).
func randRange(r Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// Bounds is the play rectangle [0, Width] x [0, Height].
type Bounds struct {
	Width  float64
	Height float64
}

// NewBounds creates bounds of the given size.
func NewBounds(width, height float64) Bounds {
	return Bounds{Width: width, Height: height}
}

// Center returns the middle of the play rectangle.
func (b Bounds) Center() physics.Vec2 {
	return physics.V(b.Width/2, b.Height/2)
}

// Contains reports whether p is inside the rectangle, edges included.
func (b Bounds) Contains(p physics.Vec2) bool {
	return p.X >= 0 && p.X <= b.Width && p.Y >= 0 && p.Y <= b.Height
}

// Wrap applies toroidal wrapping with a margin: leaving past one edge by more
// than margin re-enters just beyond the opposite edge. The other axis is untouched.
func (b Bounds) Wrap(p *physics.Vec2, margin float64) {
	if p.X > b.Width+margin {
		p.X = -margin
	}
	if p.X < -margin {
		p.X = b.Width + margin
	}
	if p.Y > b.Height+margin {
		p.Y = -margin
	}
	if p.Y < -margin {
		p.Y = b.Height + margin
	}
}

// Releasable is implemented by pooled objects that can be returned to a pool.
type Releasable interface {
	// Release returns the object to its pool for reuse.
	Release()
}
