package engine

import (
	"math/rand"
	"slices"
	"testing"
	"time"

	"github.com/tomz197/asteroids-arcade/internal/loop/config"
	"github.com/tomz197/asteroids-arcade/internal/object"
	"github.com/tomz197/asteroids-arcade/internal/physics"
)

var testBounds = object.NewBounds(config.WorldWidth, config.WorldHeight)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	return New(testBounds, rand.New(rand.NewSource(7)))
}

// still places a motionless asteroid of the given type at pos.
func still(g *Game, pos physics.Vec2, typ object.AsteroidType) *object.Asteroid {
	a := object.NewAsteroid(pos, typ, g.bounds, g.rng)
	a.Vel = physics.Vec2{}
	a.RotationRate = 0
	return a
}

func bulletAt(pos physics.Vec2) *object.Bullet {
	return object.NewBullet(pos, physics.V(1, 0), testBounds)
}

func TestClockClampsDelta(t *testing.T) {
	start := time.Unix(1000, 0)
	c := NewClock(start)

	if dt := c.Tick(start.Add(16 * time.Millisecond)); dt < 0.0159 || dt > 0.0161 {
		t.Errorf("dt = %f, want 0.016", dt)
	}
	stalled := start.Add(10 * time.Second)
	if dt := c.Tick(stalled); dt != config.MaxDeltaSeconds {
		t.Errorf("dt after a 10s stall = %f, want %f", dt, config.MaxDeltaSeconds)
	}
	if dt := c.Tick(stalled); dt != 0 {
		t.Errorf("dt for a repeated timestamp = %f, want 0", dt)
	}
	if dt := c.Tick(stalled.Add(-time.Second)); dt != 0 {
		t.Errorf("dt for a backwards timestamp = %f, want 0", dt)
	}
}

func TestNewGame(t *testing.T) {
	g := newTestGame(t)

	if g.Phase() != PhaseAlive {
		t.Fatalf("phase = %v, want alive", g.Phase())
	}
	if g.ship == nil || g.ship.Pos != testBounds.Center() {
		t.Fatalf("ship should start at the center")
	}
	if len(g.asteroids) != config.InitialAsteroids {
		t.Fatalf("asteroids = %d, want %d", len(g.asteroids), config.InitialAsteroids)
	}
	if len(g.stars) != config.NumStars {
		t.Fatalf("stars = %d, want %d", len(g.stars), config.NumStars)
	}
	hud := g.HUD()
	if hud.Score != 0 || hud.Lives != config.InitialLives || hud.Wave != 1 || hud.GameOver {
		t.Fatalf("unexpected initial HUD %+v", hud)
	}
}

func TestShootingLargeAsteroidSplits(t *testing.T) {
	g := newTestGame(t)
	pos := physics.V(200, 200)
	parent := still(g, pos, object.AsteroidLarge)
	parent.Vel = physics.V(10, -20)
	g.asteroids = []*object.Asteroid{parent}
	g.bullets = []*object.Bullet{bulletAt(pos)}

	g.Tick(0, Intents{})

	if len(g.bullets) != 0 {
		t.Fatalf("bullet should be consumed, %d left", len(g.bullets))
	}
	if len(g.asteroids) != 2 {
		t.Fatalf("asteroids = %d, want 2 fragments", len(g.asteroids))
	}
	for _, a := range g.asteroids {
		if a == parent {
			t.Fatalf("parent asteroid should be removed")
		}
		if a.Type != object.AsteroidMedium {
			t.Errorf("fragment type = %v, want medium", a.Type)
		}
		if a.Pos != pos {
			t.Errorf("fragment pos = %+v, want %+v", a.Pos, pos)
		}
		if a.Vel.X < 10-config.FragmentJitter || a.Vel.X > 10+config.FragmentJitter ||
			a.Vel.Y < -20-config.FragmentJitter || a.Vel.Y > -20+config.FragmentJitter {
			t.Errorf("fragment velocity %+v not within jitter of the parent's", a.Vel)
		}
	}
	if g.score != 30 {
		t.Errorf("score = %d, want 30", g.score)
	}
	if !slices.Contains(g.Events(), EventExplosion) {
		t.Errorf("expected an explosion event")
	}
}

func TestScorePerAsteroidType(t *testing.T) {
	tests := []struct {
		typ       object.AsteroidType
		score     int
		fragments int
	}{
		{object.AsteroidLarge, 30, 2},
		{object.AsteroidMedium, 20, 2},
		{object.AsteroidSmall, 10, 0},
	}
	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			g := newTestGame(t)
			decoy := still(g, physics.V(700, 100), object.AsteroidLarge)
			g.asteroids = []*object.Asteroid{still(g, physics.V(200, 200), tt.typ), decoy}
			g.bullets = []*object.Bullet{bulletAt(physics.V(200, 200))}

			g.Tick(0, Intents{})

			if g.score != tt.score {
				t.Errorf("score = %d, want %d", g.score, tt.score)
			}
			// The decoy survives and keeps its slot in front of the fragments.
			if len(g.asteroids) != 1+tt.fragments || g.asteroids[0] != decoy {
				t.Errorf("asteroids = %d, want decoy plus %d fragments", len(g.asteroids), tt.fragments)
			}
		})
	}
}

func TestAsteroidDiesToOneBullet(t *testing.T) {
	g := newTestGame(t)
	pos := physics.V(200, 200)
	g.asteroids = []*object.Asteroid{still(g, pos, object.AsteroidLarge)}
	g.bullets = []*object.Bullet{bulletAt(pos), bulletAt(pos.Add(physics.V(5, 0)))}

	g.Tick(0, Intents{})

	if len(g.bullets) != 1 {
		t.Fatalf("bullets = %d, want 1 survivor", len(g.bullets))
	}
	// Fragments overlap the surviving bullet but are not tested until the next tick.
	if len(g.asteroids) != 2 {
		t.Fatalf("asteroids = %d, want 2", len(g.asteroids))
	}
	if g.score != 30 {
		t.Fatalf("score = %d, want 30", g.score)
	}
}

func TestBulletKillsOneAsteroid(t *testing.T) {
	g := newTestGame(t)
	g.asteroids = []*object.Asteroid{
		still(g, physics.V(200, 200), object.AsteroidLarge),
		still(g, physics.V(230, 200), object.AsteroidLarge),
	}
	g.bullets = []*object.Bullet{bulletAt(physics.V(215, 200))}

	g.Tick(0, Intents{})

	if g.score != 30 {
		t.Fatalf("score = %d, want 30", g.score)
	}
	if len(g.asteroids) != 3 {
		t.Fatalf("asteroids = %d, want 1 survivor + 2 fragments", len(g.asteroids))
	}
}

func TestWaveRespawnsWhenCleared(t *testing.T) {
	g := newTestGame(t)
	g.asteroids = []*object.Asteroid{still(g, physics.V(200, 200), object.AsteroidSmall)}
	g.bullets = []*object.Bullet{bulletAt(physics.V(200, 200))}

	g.Tick(0, Intents{})

	want := config.InitialAsteroids + config.WaveIncrement
	if len(g.asteroids) != want {
		t.Fatalf("asteroids = %d, want %d", len(g.asteroids), want)
	}
	for _, a := range g.asteroids {
		if a.Type != object.AsteroidLarge {
			t.Errorf("wave asteroid type = %v, want large", a.Type)
		}
		if testBounds.Contains(a.Pos) {
			t.Errorf("wave asteroid at %+v should start off screen", a.Pos)
		}
	}
	if g.HUD().Wave != 2 {
		t.Errorf("wave = %d, want 2", g.HUD().Wave)
	}
}

func TestRespawnCycleToGameOver(t *testing.T) {
	g := newTestGame(t)
	g.lives = 1
	g.asteroids = []*object.Asteroid{still(g, g.ship.Pos, object.AsteroidLarge)}

	g.Tick(0, Intents{})

	if g.Phase() != PhaseRespawning {
		t.Fatalf("phase = %v, want respawning", g.Phase())
	}
	if g.respawnTimer != config.RespawnDelaySeconds {
		t.Fatalf("respawn timer = %f, want %f", g.respawnTimer, config.RespawnDelaySeconds)
	}
	if g.lives != 0 {
		t.Fatalf("lives = %d, want 0", g.lives)
	}
	if len(g.particles) != config.ExplosionParticleCount {
		t.Fatalf("particles = %d, want %d", len(g.particles), config.ExplosionParticleCount)
	}

	for i := 0; i < 19; i++ {
		g.Tick(0.1, Intents{})
	}
	if g.Phase() != PhaseRespawning {
		t.Fatalf("phase after 1.9s = %v, want respawning", g.Phase())
	}

	g.Tick(0.1, Intents{})
	g.Tick(0.1, Intents{})
	if g.Phase() != PhaseGameOver {
		t.Fatalf("phase = %v, want game over", g.Phase())
	}
	if g.lives != 0 || g.ship != nil {
		t.Fatalf("lives = %d, ship = %v; want 0 and nil", g.lives, g.ship)
	}
	if !g.HUD().GameOver {
		t.Fatalf("HUD should report game over")
	}
}

func TestRespawnWithLivesLeft(t *testing.T) {
	g := newTestGame(t)
	g.asteroids = []*object.Asteroid{still(g, g.ship.Pos, object.AsteroidLarge)}

	g.Tick(0, Intents{})
	if g.Phase() != PhaseRespawning || g.lives != config.InitialLives-1 {
		t.Fatalf("phase = %v, lives = %d", g.Phase(), g.lives)
	}
	g.asteroids[0].Pos = physics.V(100, 100)

	for i := 0; i < 21; i++ {
		g.Tick(0.1, Intents{})
	}
	if g.Phase() != PhaseAlive {
		t.Fatalf("phase = %v, want alive", g.Phase())
	}
	if g.ship == nil || g.ship.Pos != testBounds.Center() {
		t.Fatalf("ship should respawn at the center")
	}
	if g.respawnTimer != 0 {
		t.Fatalf("respawn timer = %f, want 0", g.respawnTimer)
	}
}

func TestRestartFromGameOver(t *testing.T) {
	g := newTestGame(t)
	g.phase = PhaseGameOver
	g.ship = nil
	g.lives = 0
	g.score = 120
	g.bullets = append(g.bullets, bulletAt(physics.V(10, 10)))
	g.particles = append(g.particles, g.spawner.Explosion(physics.V(10, 10), 5)...)

	g.Tick(0, Intents{Restart: true})

	if g.Phase() != PhaseAlive {
		t.Fatalf("phase = %v, want alive", g.Phase())
	}
	if g.score != 0 || g.lives != config.InitialLives {
		t.Fatalf("score = %d, lives = %d", g.score, g.lives)
	}
	if len(g.bullets) != 0 || len(g.particles) != 0 {
		t.Fatalf("bullets = %d, particles = %d, want none", len(g.bullets), len(g.particles))
	}
	if g.ship == nil || g.ship.Pos != testBounds.Center() {
		t.Fatalf("ship should be at the center")
	}
	if len(g.asteroids) != config.InitialAsteroids {
		t.Fatalf("asteroids = %d, want %d", len(g.asteroids), config.InitialAsteroids)
	}
	for _, a := range g.asteroids {
		if a.Type != object.AsteroidLarge {
			t.Fatalf("asteroid type = %v, want large", a.Type)
		}
	}
}

func TestRestartIgnoredWhileAlive(t *testing.T) {
	g := newTestGame(t)
	g.score = 50

	g.Tick(0, Intents{Restart: true})

	if g.score != 50 {
		t.Fatalf("score = %d, restart must only work after game over", g.score)
	}
}

func TestFireCooldown(t *testing.T) {
	g := newTestGame(t)

	g.Tick(0.1, Intents{Fire: true})
	if len(g.bullets) != 1 {
		t.Fatalf("bullets = %d, want 1", len(g.bullets))
	}
	if ev := g.Events(); !slices.Equal(ev, []AudioEvent{EventFire}) {
		t.Fatalf("events = %v, want [fire]", ev)
	}

	g.Tick(0.1, Intents{Fire: true})
	if len(g.bullets) != 1 {
		t.Fatalf("fired during cooldown, bullets = %d", len(g.bullets))
	}

	g.Tick(0.1, Intents{Fire: true})
	if len(g.bullets) != 2 {
		t.Fatalf("bullets = %d, want 2 after cooldown", len(g.bullets))
	}
}

func TestThrustEvents(t *testing.T) {
	g := newTestGame(t)

	g.Tick(0.01, Intents{Thrust: true})
	if ev := g.Events(); !slices.Equal(ev, []AudioEvent{EventThrustStart}) {
		t.Fatalf("events = %v, want [thrust-start]", ev)
	}
	g.Tick(0.01, Intents{Thrust: true})
	if ev := g.Events(); len(ev) != 0 {
		t.Fatalf("events = %v, want none while holding thrust", ev)
	}
	g.Tick(0.01, Intents{})
	if ev := g.Events(); !slices.Equal(ev, []AudioEvent{EventThrustStop}) {
		t.Fatalf("events = %v, want [thrust-stop]", ev)
	}
}

func TestShipDeathStopsThrust(t *testing.T) {
	g := newTestGame(t)
	g.Tick(0.01, Intents{Thrust: true})
	g.Events()

	g.asteroids = []*object.Asteroid{still(g, g.ship.Pos, object.AsteroidLarge)}
	g.Tick(0, Intents{Thrust: true})

	want := []AudioEvent{EventExplosion, EventThrustStop}
	if ev := g.Events(); !slices.Equal(ev, want) {
		t.Fatalf("events = %v, want %v", ev, want)
	}
}

func TestShipHitByTwoAsteroidsDiesOnce(t *testing.T) {
	g := newTestGame(t)
	center := testBounds.Center()
	g.asteroids = []*object.Asteroid{
		still(g, center, object.AsteroidLarge),
		still(g, center.Add(physics.V(5, 0)), object.AsteroidMedium),
	}

	g.Tick(0.01, Intents{})

	if g.Phase() != PhaseRespawning || g.ship != nil {
		t.Fatalf("phase = %v, want respawning with no ship", g.Phase())
	}
	if g.lives != config.InitialLives-1 {
		t.Fatalf("lives = %d, want %d", g.lives, config.InitialLives-1)
	}
	if ev := g.Events(); !slices.Equal(ev, []AudioEvent{EventExplosion}) {
		t.Fatalf("events = %v, want one explosion", ev)
	}
	if len(g.particles) != config.ExplosionParticleCount {
		t.Fatalf("particles = %d, want %d", len(g.particles), config.ExplosionParticleCount)
	}
	if len(g.asteroids) != 2 {
		t.Fatalf("asteroids = %d, want both to survive", len(g.asteroids))
	}
}

func TestRotationIntents(t *testing.T) {
	tests := []struct {
		name string
		in   Intents
		want float64
	}{
		{"none", Intents{}, 0},
		{"left", Intents{RotateLeft: true}, -config.ShipRotationSpeed},
		{"right", Intents{RotateRight: true}, config.ShipRotationSpeed},
		{"both cancel", Intents{RotateLeft: true, RotateRight: true}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t)
			g.Tick(0.01, tt.in)
			if g.ship.RotationRate != tt.want {
				t.Fatalf("rotation rate = %f, want %f", g.ship.RotationRate, tt.want)
			}
		})
	}
}

func TestParticlesExpire(t *testing.T) {
	g := newTestGame(t)
	g.particles = g.spawner.Explosion(physics.V(100, 100), 20)

	for i := 0; i < 10; i++ {
		g.Tick(0.1, Intents{})
	}
	if len(g.particles) != 0 {
		t.Fatalf("particles = %d, want all expired", len(g.particles))
	}
}

func TestPruneKeepsOrder(t *testing.T) {
	bullets := make([]*object.Bullet, 6)
	for i := range bullets {
		bullets[i] = bulletAt(physics.V(float64(10*i), 10))
	}
	want := []*object.Bullet{bullets[2], bullets[4], bullets[5]}
	for _, i := range []int{0, 1, 3} {
		bullets[i].Kill()
	}

	var removed int
	full := bullets
	got := prune(bullets, func(*object.Bullet) { removed++ })

	if !slices.Equal(got, want) {
		t.Fatalf("prune kept the wrong bullets")
	}
	if removed != 3 {
		t.Fatalf("onRemove called %d times, want 3", removed)
	}
	for i, b := range full[len(got):] {
		if b != nil {
			t.Fatalf("tail slot %d not cleared", i)
		}
	}
}

func TestSnapshot(t *testing.T) {
	g := newTestGame(t)

	s := g.Snapshot()
	if s.Ship == nil {
		t.Fatalf("snapshot should carry the ship while alive")
	}
	if len(s.Asteroids) != len(g.asteroids) || len(s.Stars) != len(g.stars) {
		t.Fatalf("snapshot entity counts differ from the game")
	}
	s.Ship.Pos = physics.V(0, 0)
	s.Asteroids[0].Pos = physics.V(0, 0)
	if g.ship.Pos == s.Ship.Pos || g.asteroids[0].Pos == s.Asteroids[0].Pos {
		t.Fatalf("snapshot must not alias live entities")
	}

	if other := g.Snapshot(); other == s {
		t.Fatalf("consecutive snapshots should use different buffers")
	}

	g.asteroids = []*object.Asteroid{still(g, g.ship.Pos, object.AsteroidLarge)}
	g.Tick(0, Intents{})
	s = g.Snapshot()
	if s.Ship != nil {
		t.Fatalf("snapshot ship should be nil while respawning")
	}
	if s.HUD.Phase != PhaseRespawning || s.HUD.Lives != config.InitialLives-1 {
		t.Fatalf("unexpected HUD %+v", s.HUD)
	}
}
