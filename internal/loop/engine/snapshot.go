package engine

import "github.com/tomz197/asteroids-arcade/internal/object"

// HUD is the scalar game state shown next to the playfield.
type HUD struct {
	Score        int
	Lives        int
	GameOver     bool
	Phase        Phase
	RespawnTimer float64 // Seconds until the ship reappears, 0 when alive
	Wave         int     // Waves spawned since the last restart
}

// Snapshot is a read-only copy of the world for rendering.
// Entity values are copied; asteroid outlines share the immutable Shape slice.
type Snapshot struct {
	Ship      *object.Ship // nil unless the phase is PhaseAlive
	Asteroids []object.Asteroid
	Bullets   []object.Bullet
	Particles []object.Particle
	Stars     []object.Star
	HUD       HUD
}

// Snapshot copies the current world into one of two reusable buffers.
// The returned snapshot stays valid until the second following call.
func (g *Game) Snapshot() *Snapshot {
	s := &g.snapshots[g.snapshotIdx]
	g.snapshotIdx = 1 - g.snapshotIdx

	if g.ship != nil {
		ship := *g.ship
		s.Ship = &ship
	} else {
		s.Ship = nil
	}

	s.Asteroids = copyValues(s.Asteroids[:0], g.asteroids)
	s.Bullets = copyValues(s.Bullets[:0], g.bullets)
	s.Particles = copyValues(s.Particles[:0], g.particles)
	s.Stars = copyValues(s.Stars[:0], g.stars)
	s.HUD = g.HUD()
	return s
}

// HUD returns the current scalar state.
func (g *Game) HUD() HUD {
	return HUD{
		Score:        g.score,
		Lives:        g.lives,
		GameOver:     g.phase == PhaseGameOver,
		Phase:        g.phase,
		RespawnTimer: g.respawnTimer,
		Wave:         g.wave,
	}
}

func copyValues[T any](dst []T, src []*T) []T {
	for _, p := range src {
		dst = append(dst, *p)
	}
	return dst
}
