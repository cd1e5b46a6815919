// Package engine runs the single-player simulation: entity collections,
// score and lives, the respawn state machine and the fixed per-tick order.
//
// A Game is not safe for concurrent use. Hosts latch input into Intents,
// call Tick, then read Snapshot and Events before the next tick.
package engine

import (
	"github.com/tomz197/asteroids-arcade/internal/loop/config"
	"github.com/tomz197/asteroids-arcade/internal/object"
	"github.com/tomz197/asteroids-arcade/internal/physics"
)

// Game owns the world state and advances it one tick at a time.
type Game struct {
	bounds  object.Bounds
	rng     object.Rand
	spawner *object.Spawner

	ship      *object.Ship // nil unless phase is PhaseAlive
	asteroids []*object.Asteroid
	bullets   []*object.Bullet
	particles []*object.Particle
	stars     []*object.Star

	phase         Phase
	score         int
	lives         int
	respawnTimer  float64
	shootCooldown float64
	wave          int
	thrustPlaying bool // Whether EventThrustStart was sent without a matching stop

	events []AudioEvent

	// Reused every tick
	bulletGrid *physics.SpatialGrid
	fragments  []*object.Asteroid

	snapshots   [2]Snapshot
	snapshotIdx int
}

// New creates a game with a ship at the center of bounds, a starfield and
// the initial asteroid wave.
func New(bounds object.Bounds, rng object.Rand) *Game {
	g := &Game{
		bounds:     bounds,
		rng:        rng,
		spawner:    object.NewSpawner(bounds, rng),
		bulletGrid: physics.NewSpatialGrid(bounds.Width, bounds.Height, collisionGridCellSize),
	}
	g.stars = g.spawner.Starfield(config.NumStars)
	g.Restart()
	return g
}

// Restart resets score and lives, clears every entity except the stars and
// starts over with a fresh ship and the initial wave.
func (g *Game) Restart() {
	for _, p := range g.particles {
		p.Release()
	}
	clear(g.particles)
	clear(g.asteroids)
	clear(g.bullets)
	g.particles = g.particles[:0]
	g.asteroids = g.asteroids[:0]
	g.bullets = g.bullets[:0]

	g.stopThrustSound()

	g.score = 0
	g.lives = config.InitialLives
	g.respawnTimer = 0
	g.shootCooldown = 0
	g.wave = 0
	g.spawnShip()
	g.spawnWave(config.InitialAsteroids)
}

// Tick advances the simulation by dt seconds using the latched intents.
func (g *Game) Tick(dt float64, in Intents) {
	if g.phase == PhaseGameOver && in.Restart {
		g.Restart()
	}

	for _, s := range g.stars {
		s.Update(dt)
	}

	g.shootCooldown = max(0, g.shootCooldown-dt)

	if g.phase == PhaseRespawning {
		g.updateRespawn(dt)
	}

	if g.phase == PhaseAlive {
		g.applyIntents(dt, in)
		g.ship.Update(dt)
		g.checkShipCollision()
	}

	for _, a := range g.asteroids {
		a.Update(dt)
	}

	for _, p := range g.particles {
		p.Update(dt)
	}
	g.particles = prune(g.particles, (*object.Particle).Release)

	for _, b := range g.bullets {
		b.Update(dt)
	}
	g.bullets = prune(g.bullets, nil)

	g.resolveHits()

	if len(g.asteroids) == 0 {
		g.spawnWave(config.InitialAsteroids + config.WaveIncrement)
	}
}

// Events returns the audio events emitted since the previous call.
func (g *Game) Events() []AudioEvent {
	ev := g.events
	g.events = nil
	return ev
}

// Phase returns the current player state.
func (g *Game) Phase() Phase { return g.phase }

func (g *Game) applyIntents(dt float64, in Intents) {
	if in.Thrust {
		g.ship.Thrust(dt)
		if !g.thrustPlaying {
			g.thrustPlaying = true
			g.emit(EventThrustStart)
		}
	} else {
		g.ship.StopThrust()
		g.stopThrustSound()
	}

	g.ship.Rotate(in.rotation())

	if in.Fire && g.shootCooldown <= 0 {
		g.bullets = append(g.bullets, g.ship.Shoot())
		g.shootCooldown = config.ShootCooldownSeconds
		g.emit(EventFire)
	}
}

func (g *Game) updateRespawn(dt float64) {
	g.respawnTimer = max(0, g.respawnTimer-dt)
	if g.respawnTimer > 0 {
		return
	}
	if g.lives > 0 {
		g.spawnShip()
		return
	}
	g.phase = PhaseGameOver
}

// destroyShip blows up the ship and starts the respawn countdown.
func (g *Game) destroyShip() {
	pos := g.ship.Pos
	g.ship = nil
	g.phase = PhaseRespawning
	g.lives = max(0, g.lives-1)
	g.respawnTimer = config.RespawnDelaySeconds

	g.particles = append(g.particles, g.spawner.Explosion(pos, config.ExplosionParticleCount)...)
	g.emit(EventExplosion)
	g.stopThrustSound()
}

func (g *Game) spawnShip() {
	g.ship = object.NewShip(g.bounds.Center(), g.bounds, g.rng)
	g.phase = PhaseAlive
}

func (g *Game) spawnWave(count int) {
	g.asteroids = append(g.asteroids, g.spawner.Wave(count)...)
	g.wave++
}

func (g *Game) stopThrustSound() {
	if g.thrustPlaying {
		g.thrustPlaying = false
		g.emit(EventThrustStop)
	}
}

func (g *Game) emit(e AudioEvent) {
	g.events = append(g.events, e)
}
