package audio

import (
	"time"

	"github.com/gopxl/beep"
)

const (
	fireDuration      = 80 * time.Millisecond
	fireAttack        = 2 * time.Millisecond
	fireRelease       = 60 * time.Millisecond
	explosionDuration = 450 * time.Millisecond
	explosionDecay    = 9.0 // Per second
)

// ThrustLoop is an endless low rumble; it is gated by a beep.Ctrl.
func ThrustLoop(rate beep.SampleRate) beep.Streamer {
	return beep.Mix(
		newVolume(NewOscillator(0, 0, WaveNoise, rate), 0.12),
		newVolume(NewOscillator(55, 0, WaveSine, rate), 0.2),
	)
}

// FireSound is a short square blip.
func FireSound(rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(880, fireDuration, WaveSquare, rate)
	return newVolume(NewEnvelope(osc, fireDuration, fireAttack, fireRelease, rate), 0.15)
}

// ExplosionSound is a noise burst with a low thud, decaying quickly.
func ExplosionSound(rate beep.SampleRate) beep.Streamer {
	noise := NewOscillator(0, explosionDuration, WaveNoise, rate)
	thud := NewOscillator(70, explosionDuration, WaveSine, rate)
	mixed := beep.Mix(newVolume(noise, 0.5), newVolume(thud, 0.4))
	return beep.Take(rate.N(explosionDuration), &decay{streamer: mixed, sr: rate, speed: explosionDecay})
}
