package object

import (
	"math"

	"github.com/tomz197/asteroids-arcade/internal/loop/config"
	"github.com/tomz197/asteroids-arcade/internal/physics"
)

// AsteroidType is the size category of an asteroid. Splitting only ever moves
// from Large towards Small, and Small is terminal.
type AsteroidType int

const (
	AsteroidLarge AsteroidType = iota
	AsteroidMedium
	AsteroidSmall
)

// Radius returns the collision radius for the type.
func (t AsteroidType) Radius() float64 {
	switch t {
	case AsteroidMedium:
		return config.AsteroidRadiusMedium
	case AsteroidSmall:
		return config.AsteroidRadiusSmall
	default:
		return config.AsteroidRadiusLarge
	}
}

// Next returns the fragment type produced when an asteroid of type t splits.
// ok is false for Small asteroids, which do not split.
func (t AsteroidType) Next() (next AsteroidType, ok bool) {
	switch t {
	case AsteroidLarge:
		return AsteroidMedium, true
	case AsteroidMedium:
		return AsteroidSmall, true
	default:
		return AsteroidSmall, false
	}
}

// Score returns the points awarded for destroying an asteroid of type t.
func (t AsteroidType) Score() int {
	return (3 - int(t)) * config.ScorePerSizeStep
}

func (t AsteroidType) String() string {
	switch t {
	case AsteroidLarge:
		return "large"
	case AsteroidMedium:
		return "medium"
	case AsteroidSmall:
		return "small"
	default:
		return "unknown"
	}
}

// Asteroid is a destructible space rock.
type Asteroid struct {
	Pos          physics.Vec2
	Vel          physics.Vec2
	Rotation     float64
	RotationRate float64        // Radians per second
	Type         AsteroidType   // Size category
	Size         float64        // Collision radius
	Shape        []physics.Vec2 // Outline relative to the center, fixed at creation
	bounds       Bounds
}

// NewAsteroid creates an asteroid of the given type at pos with a random
// heading, speed, spin and outline.
func NewAsteroid(pos physics.Vec2, typ AsteroidType, bounds Bounds, rng Rand) *Asteroid {
	size := typ.Radius()
	speed := randRange(rng, config.AsteroidMinSpeed, config.AsteroidMaxSpeed)
	heading := rng.Float64() * 2 * math.Pi

	return &Asteroid{
		Pos:          pos,
		Vel:          physics.FromAngle(heading, speed),
		Rotation:     rng.Float64() * 2 * math.Pi,
		RotationRate: randRange(rng, -config.AsteroidMaxSpin, config.AsteroidMaxSpin),
		Type:         typ,
		Size:         size,
		Shape:        asteroidShape(size, rng),
		bounds:       bounds,
	}
}

// NewFragment creates the next-smaller asteroid at the parent's position. The
// fragment keeps the parent's velocity plus independent jitter on each axis so
// sibling fragments drift apart. ok is false when the parent cannot split.
func NewFragment(parent *Asteroid, rng Rand) (a *Asteroid, ok bool) {
	next, ok := parent.Type.Next()
	if !ok {
		return nil, false
	}

	a = NewAsteroid(parent.Pos, next, parent.bounds, rng)
	a.Vel = parent.Vel.Add(physics.V(
		randRange(rng, -config.FragmentJitter, config.FragmentJitter),
		randRange(rng, -config.FragmentJitter, config.FragmentJitter),
	))
	return a, true
}

// asteroidShape generates an irregular polygon with evenly spaced vertex angles.
func asteroidShape(size float64, rng Rand) []physics.Vec2 {
	n := config.AsteroidMinVertices + rng.Intn(config.AsteroidMaxVertices-config.AsteroidMinVertices)
	shape := make([]physics.Vec2, n)
	for i := range shape {
		angle := 2 * math.Pi * float64(i) / float64(n)
		radius := size * randRange(rng, config.AsteroidMinJag, config.AsteroidMaxJag)
		shape[i] = physics.FromAngle(angle, radius)
	}
	return shape
}

// Update moves and spins the asteroid, wrapping with a margin of its own size.
func (a *Asteroid) Update(dt float64) {
	a.Pos = a.Pos.Add(a.Vel.Scale(dt))
	a.Rotation += a.RotationRate * dt
	a.bounds.Wrap(&a.Pos, a.Size)
}

// CollidesWith reports whether point p is inside the asteroid's circle.
func (a *Asteroid) CollidesWith(p physics.Vec2) bool {
	return physics.PointInCircle(p, a.Pos, a.Size)
}

// Outline returns the polygon in world space, written into dst when it has room.
func (a *Asteroid) Outline(dst []physics.Vec2) []physics.Vec2 {
	if cap(dst) < len(a.Shape) {
		dst = make([]physics.Vec2, len(a.Shape))
	}
	dst = dst[:len(a.Shape)]
	for i, p := range a.Shape {
		dst[i] = a.Pos.Add(p.Rotate(a.Rotation))
	}
	return dst
}
