package object

import (
	"github.com/tomz197/asteroids-arcade/internal/loop/config"
	"github.com/tomz197/asteroids-arcade/internal/physics"
)

// Bullet is a shot fired by the ship. Bullets do not wrap: leaving the play
// rectangle kills them.
type Bullet struct {
	Pos     physics.Vec2
	Vel     physics.Vec2
	Elapsed float64 // Seconds since firing
	bounds  Bounds
	dead    bool
}

// NewBullet creates a bullet at pos travelling along heading (a unit vector).
func NewBullet(pos, heading physics.Vec2, bounds Bounds) *Bullet {
	return &Bullet{
		Pos:    pos,
		Vel:    heading.Scale(config.BulletSpeed),
		bounds: bounds,
	}
}

// Update moves the bullet and checks lifetime and bounds.
func (b *Bullet) Update(dt float64) {
	b.Pos = b.Pos.Add(b.Vel.Scale(dt))

	b.Elapsed += dt
	if b.Elapsed > config.BulletMaxLifetime {
		b.dead = true
	}
	if !b.bounds.Contains(b.Pos) {
		b.dead = true
	}
}

// Kill marks the bullet as spent.
func (b *Bullet) Kill() {
	b.dead = true
}

// IsDead reports whether the bullet should be removed.
func (b *Bullet) IsDead() bool {
	return b.dead
}
