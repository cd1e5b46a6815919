package loop

// Screen is the host's top-level UI state. Gameplay phases (respawning,
// game over) come from the engine and are drawn as overlays.
type Screen int

const (
	ScreenTitle   Screen = iota // Title screen, waiting for start
	ScreenPlaying               // Simulation running
)

func (s Screen) String() string {
	switch s {
	case ScreenTitle:
		return "title"
	case ScreenPlaying:
		return "playing"
	default:
		return "unknown"
	}
}
