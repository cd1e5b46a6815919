package object

import (
	"math"

	"github.com/tomz197/asteroids-arcade/internal/loop/config"
	"github.com/tomz197/asteroids-arcade/internal/physics"
)

// Ship is the player-controlled spaceship.
type Ship struct {
	Pos          physics.Vec2 // Center of the hull
	Vel          physics.Vec2
	Rotation     float64 // Radians, 0 = pointing up, increases clockwise on screen
	RotationRate float64 // Radians per second
	Size         float64 // Hull length

	ThrusterActive  bool
	ThrusterFlicker float64 // Flame scale in [0.5, 1.0], re-rolled while thrusting

	bounds Bounds
	rng    Rand
}

// NewShip creates a ship at rest at pos, pointing up.
func NewShip(pos physics.Vec2, bounds Bounds, rng Rand) *Ship {
	return &Ship{
		Pos:    pos,
		Size:   config.ShipSize,
		bounds: bounds,
		rng:    rng,
	}
}

// Heading returns the unit vector the nose points along.
func (s *Ship) Heading() physics.Vec2 {
	return physics.FromAngle(s.Rotation-math.Pi/2, 1)
}

// Nose returns the position bullets are fired from.
func (s *Ship) Nose() physics.Vec2 {
	return s.Pos.Add(s.Heading().Scale(s.Size * config.ShipNoseFactor))
}

// CollisionRadius is smaller than the hull so grazing hits are forgiven.
func (s *Ship) CollisionRadius() float64 {
	return s.Size * config.ShipCollisionFactor
}

// Thrust accelerates along the heading, capped at the maximum speed.
func (s *Ship) Thrust(dt float64) {
	s.ThrusterActive = true
	s.Vel = s.Vel.Add(s.Heading().Scale(config.ShipAcceleration * dt))
	s.Vel = s.Vel.Limit(config.ShipMaxSpeed)
}

// StopThrust turns the thruster off.
func (s *Ship) StopThrust() {
	s.ThrusterActive = false
}

// Rotate sets the turn direction: -1 counter-clockwise, 1 clockwise, 0 none.
func (s *Ship) Rotate(direction int) {
	switch {
	case direction < 0:
		direction = -1
	case direction > 0:
		direction = 1
	}
	s.RotationRate = float64(direction) * config.ShipRotationSpeed
}

// StopRotation stops turning.
func (s *Ship) StopRotation() {
	s.RotationRate = 0
}

// WrapMargin is how far the ship may leave the screen before re-entering opposite.
func (s *Ship) WrapMargin() float64 {
	return s.Size / 2
}

// Update applies friction, integrates motion and wraps around the screen.
// Friction is applied per tick, so it is frame-rate dependent.
func (s *Ship) Update(dt float64) {
	s.Vel = s.Vel.Scale(config.ShipFriction)
	s.Pos = s.Pos.Add(s.Vel.Scale(dt))
	s.Rotation += s.RotationRate * dt

	s.bounds.Wrap(&s.Pos, s.WrapMargin())

	if s.ThrusterActive {
		s.ThrusterFlicker = randRange(s.rng, config.ThrusterFlickerMin, config.ThrusterFlickerMax)
	}
}

// Shoot returns a bullet leaving the nose along the heading. The ship is not modified.
func (s *Ship) Shoot() *Bullet {
	return NewBullet(s.Nose(), s.Heading(), s.bounds)
}

// CollidesWith reports whether a circle at p with radius r touches the ship.
func (s *Ship) CollidesWith(p physics.Vec2, r float64) bool {
	return s.Pos.Dist(p) < s.CollisionRadius()+r
}

// Hull returns the hull outline in world space: nose, left wing, tail notch, right wing.
func (s *Ship) Hull() [4]physics.Vec2 {
	local := [4]physics.Vec2{
		{X: 0, Y: -s.Size * 0.5},
		{X: -s.Size * 0.3, Y: s.Size * 0.4},
		{X: 0, Y: s.Size * 0.2},
		{X: s.Size * 0.3, Y: s.Size * 0.4},
	}
	var out [4]physics.Vec2
	for i, p := range local {
		out[i] = s.Pos.Add(p.Rotate(s.Rotation))
	}
	return out
}

// Flame returns the thruster flame triangle in world space, scaled by the current flicker.
func (s *Ship) Flame() [3]physics.Vec2 {
	base := s.Size * 0.4
	local := [3]physics.Vec2{
		{X: -8, Y: base},
		{X: 0, Y: base + 15*s.ThrusterFlicker},
		{X: 8, Y: base},
	}
	var out [3]physics.Vec2
	for i, p := range local {
		out[i] = s.Pos.Add(p.Rotate(s.Rotation))
	}
	return out
}
