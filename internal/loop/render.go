package loop

import (
	"github.com/tomz197/asteroids-arcade/internal/draw"
	"github.com/tomz197/asteroids-arcade/internal/loop/engine"
	"github.com/tomz197/asteroids-arcade/internal/object"
)

// Star and particle visibility thresholds. The canvas is one bit deep per
// color, so faint entities are dropped instead of dimmed.
const (
	minStarBrightness    = 120.0
	brightStarBrightness = 200.0
	minParticleAlpha     = 64.0
)

// renderSnapshot draws every entity in snap onto the canvas, back to front.
func renderSnapshot(c *draw.Canvas, snap *engine.Snapshot) {
	for i := range snap.Stars {
		st := &snap.Stars[i]
		b := st.Brightness()
		if b < minStarBrightness {
			continue
		}
		col := draw.ColorGray
		if b >= brightStarBrightness {
			col = draw.ColorWhite
		}
		c.Set(st.Pos, col)
	}

	for i := range snap.Asteroids {
		a := &snap.Asteroids[i]
		c.DrawPolygon(a.Outline(c.BorrowPoints(len(a.Shape))), false, draw.ColorWhite)
	}

	for i := range snap.Particles {
		p := &snap.Particles[i]
		if p.Alpha < minParticleAlpha {
			continue
		}
		c.Set(p.Pos, particleColor(p))
	}

	for i := range snap.Bullets {
		c.Set(snap.Bullets[i].Pos, draw.ColorWhite)
	}

	if ship := snap.Ship; ship != nil {
		if ship.ThrusterActive {
			flame := ship.Flame()
			c.DrawPolygon(flame[:], true, draw.ColorOrange)
		}
		hull := ship.Hull()
		c.DrawPolygon(hull[:], false, draw.ColorCyan)
	}
}

// particleColor maps a particle's RGBA bucket to the terminal palette.
func particleColor(p *object.Particle) draw.Color {
	switch p.Color {
	case object.ParticleOrange:
		return draw.ColorOrange
	case object.ParticleYellow:
		return draw.ColorYellow
	default:
		return draw.ColorPaleYellow
	}
}
