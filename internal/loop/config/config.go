// Package config centralizes all tunable game parameters.
package config

import "time"

// Play rectangle in logical units. Renderers scale it to their output.
const (
	WorldWidth  = 800
	WorldHeight = 600
)

// Timing
const (
	MaxDeltaSeconds = 0.1 // Upper bound on a single physics step
	TargetFPS       = 60
	TargetFrameTime = time.Second / TargetFPS
	FPSRefresh      = 100 * time.Millisecond // How often the shown FPS is refreshed
)

// Ship
const (
	ShipSize               = 40.0
	ShipCollisionFactor    = 0.3 // Collision radius = ShipSize * factor
	ShipNoseFactor         = 0.5 // Bullets leave the hull at ShipSize * factor
	ShipAcceleration       = 400.0
	ShipMaxSpeed           = 300.0
	ShipRotationSpeed      = 3.0  // Radians per second
	ShipFriction           = 0.98 // Applied once per tick
	ThrusterFlickerMin     = 0.5
	ThrusterFlickerMax     = 1.0
	ShootCooldownSeconds   = 0.15
	RespawnDelaySeconds    = 2.0
	ExplosionParticleCount = 50
)

// Bullets
const (
	BulletSpeed       = 400.0
	BulletMaxLifetime = 1.5 // Seconds
)

// Asteroids
const (
	AsteroidRadiusLarge  = 50.0
	AsteroidRadiusMedium = 30.0
	AsteroidRadiusSmall  = 15.0
	AsteroidMinSpeed     = 30.0
	AsteroidMaxSpeed     = 80.0
	AsteroidMaxSpin      = 2.0 // Rotation rate is uniform in [-max, max]
	AsteroidMinVertices  = 6
	AsteroidMaxVertices  = 10 // Exclusive
	AsteroidMinJag       = 0.6
	AsteroidMaxJag       = 1.0
	FragmentJitter       = 50.0 // Per-axis velocity jitter for fragments
	FragmentsPerSplit    = 2
	WaveSpawnOffset      = 50.0 // Distance outside the play rectangle
)

// Particles
const (
	ParticleMinSpeed    = 50.0
	ParticleMaxSpeed    = 200.0
	ParticleMinLifetime = 0.3
	ParticleMaxLifetime = 0.8
	ParticleMinSize     = 2.0
	ParticleMaxSize     = 6.0
	ParticleDrag        = 0.98 // Applied once per tick
)

// Stars
const (
	NumStars              = 150
	StarMinSize           = 1.0
	StarMaxSize           = 3.0
	StarMinBrightness     = 100.0
	StarMaxBrightness     = 255.0
	StarMinTwinkleSpeed   = 1.0
	StarMaxTwinkleSpeed   = 3.0
	StarTwinkleFloorRatio = 0.5
)

// Scoring and waves
const (
	ScorePerSizeStep = 10 // Points = (3 - type) * step
	InitialLives     = 3
	InitialAsteroids = 5
	WaveIncrement    = 2 // Later waves spawn InitialAsteroids + WaveIncrement
)

// Terminal rendering
const (
	MaxTermWidth  = 200
	MaxTermHeight = 75
)
