package config

import "time"

const (
	defaultSSHHost     = "::"
	defaultSSHPort     = "2222"
	defaultHostKeyPath = "/app/keys/host_key"
	defaultLogLevel    = "info"
)

// Settings are the knobs shared by the binaries. Simulation tunables live in
// internal/loop/config and are not configurable at runtime.
type Settings struct {
	SSHHost     string
	SSHPort     string
	HostKeyPath string

	LogLevel string
	LogFile  string // Empty means the binary's default sink

	Audio bool
	Seed  int64 // 0 picks a time-based seed
}

// Load reads Settings from the environment.
func Load() Settings {
	return Settings{
		SSHHost:     GetEnv("SSH_HOST", defaultSSHHost),
		SSHPort:     GetEnv("SSH_PORT", defaultSSHPort),
		HostKeyPath: GetEnv("SSH_HOST_KEY", defaultHostKeyPath),
		LogLevel:    GetEnv("ASTEROIDS_LOG_LEVEL", defaultLogLevel),
		LogFile:     GetEnv("ASTEROIDS_LOG_FILE", ""),
		Audio:       GetEnvBool("ASTEROIDS_AUDIO", true),
		Seed:        int64(GetEnvInt("ASTEROIDS_SEED", 0)),
	}
}

// RandSeed returns the configured seed, or one derived from now.
func (s Settings) RandSeed(now time.Time) int64 {
	if s.Seed != 0 {
		return s.Seed
	}
	return now.UnixNano()
}
