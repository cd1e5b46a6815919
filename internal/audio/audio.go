// Package audio defines how the game's sound cues leave the simulation and
// synthesises the effects that play them.
package audio

import "github.com/tomz197/asteroids-arcade/internal/loop/engine"

// Sink receives the simulation's audio events.
type Sink interface {
	Handle(ev engine.AudioEvent)
}

// Nop discards every event.
type Nop struct{}

// Handle implements Sink.
func (Nop) Handle(engine.AudioEvent) {}
