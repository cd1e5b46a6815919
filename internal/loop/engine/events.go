package engine

// AudioEvent is a discrete sound cue for the audio collaborator. The engine
// only reports moments; looping and playback state belong to the player.
type AudioEvent int

const (
	EventThrustStart AudioEvent = iota // Thrust loop should start
	EventThrustStop                    // Thrust loop should stop
	EventFire                          // A bullet was fired
	EventExplosion                     // An asteroid or the ship blew up
)

func (e AudioEvent) String() string {
	switch e {
	case EventThrustStart:
		return "thrust-start"
	case EventThrustStop:
		return "thrust-stop"
	case EventFire:
		return "fire"
	case EventExplosion:
		return "explosion"
	default:
		return "unknown"
	}
}

// Intents is the input sampled once before a tick. It must not change while
// the tick runs.
type Intents struct {
	Thrust      bool
	RotateLeft  bool
	RotateRight bool
	Fire        bool
	Restart     bool // Only honoured in PhaseGameOver
}

// rotation returns -1, 0 or 1. Holding both directions cancels out.
func (in Intents) rotation() int {
	dir := 0
	if in.RotateLeft {
		dir--
	}
	if in.RotateRight {
		dir++
	}
	return dir
}
