package object

import (
	"image/color"
	"sync"

	"github.com/tomz197/asteroids-arcade/internal/loop/config"
	"github.com/tomz197/asteroids-arcade/internal/physics"
)

// particlePool is a sync.Pool for reusing Particle objects to reduce allocations.
var particlePool = sync.Pool{
	New: func() any {
		return &Particle{}
	},
}

// Explosion palette, picked with weights 40/30/30.
var (
	ParticleOrange      = color.RGBA{R: 255, G: 150, B: 0, A: 255}
	ParticleYellow      = color.RGBA{R: 255, G: 200, B: 50, A: 255}
	ParticleWhiteYellow = color.RGBA{R: 255, G: 255, B: 200, A: 255}
)

// Particle is a short-lived explosion fragment.
type Particle struct {
	Pos         physics.Vec2
	Vel         physics.Vec2
	Lifetime    float64 // Seconds remaining, never negative
	MaxLifetime float64 // Initial lifetime (for fade calculation)
	Size        float64 // Diameter
	Color       color.RGBA
	Alpha       float64 // 0..255, falls linearly with Lifetime
}

// NewParticle takes a particle from the pool and launches it from pos.
func NewParticle(pos physics.Vec2, angle, speed float64, rng Rand) *Particle {
	p := particlePool.Get().(*Particle)
	p.Pos = pos
	p.Vel = physics.FromAngle(angle, speed)
	p.MaxLifetime = randRange(rng, config.ParticleMinLifetime, config.ParticleMaxLifetime)
	p.Lifetime = p.MaxLifetime
	p.Size = randRange(rng, config.ParticleMinSize, config.ParticleMaxSize)
	p.Color = particleColor(rng.Float64())
	p.Alpha = 255
	return p
}

func particleColor(roll float64) color.RGBA {
	switch {
	case roll < 0.4:
		return ParticleOrange
	case roll < 0.7:
		return ParticleYellow
	default:
		return ParticleWhiteYellow
	}
}

// Release returns the particle to the pool for reuse.
// Should be called when the particle is removed from the game.
func (p *Particle) Release() {
	particlePool.Put(p)
}

// Update moves the particle, applies drag and fades it out.
func (p *Particle) Update(dt float64) {
	p.Pos = p.Pos.Add(p.Vel.Scale(dt))
	p.Vel = p.Vel.Scale(config.ParticleDrag)

	p.Lifetime -= dt
	if p.Lifetime < 0 {
		p.Lifetime = 0
	}
	p.Alpha = fade(p.Lifetime, p.MaxLifetime)
}

// fade maps lifetime from [0, max] onto [0, 255].
func fade(lifetime, max float64) float64 {
	if max <= 0 {
		return 0
	}
	alpha := 255 * lifetime / max
	switch {
	case alpha < 0:
		return 0
	case alpha > 255:
		return 255
	}
	return alpha
}

// IsDead reports whether the particle has burned out.
func (p *Particle) IsDead() bool {
	return p.Lifetime <= 0
}

// RGBA returns the particle color with its current alpha applied. The
// result is not premultiplied, so the hue stays fixed while it fades.
func (p *Particle) RGBA() color.NRGBA {
	return color.NRGBA{R: p.Color.R, G: p.Color.G, B: p.Color.B, A: uint8(p.Alpha)}
}
