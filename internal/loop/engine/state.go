package engine

// Phase is the player state machine.
type Phase int

const (
	PhaseAlive      Phase = iota // Ship is flying
	PhaseRespawning              // Ship destroyed, waiting on the respawn timer
	PhaseGameOver                // No lives left, waiting for restart
)

func (p Phase) String() string {
	switch p {
	case PhaseAlive:
		return "alive"
	case PhaseRespawning:
		return "respawning"
	case PhaseGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}
