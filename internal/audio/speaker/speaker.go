// Package speaker plays the game's sound effects on the system audio device.
// It needs cgo and the platform audio headers; hosts without a device use
// audio.Nop instead.
package speaker

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	beepspeaker "github.com/gopxl/beep/speaker"

	"github.com/tomz197/asteroids-arcade/internal/audio"
	"github.com/tomz197/asteroids-arcade/internal/loop/engine"
)

const sampleRate = beep.SampleRate(44100)

// ErrUnavailable is returned when no audio device can be opened.
var ErrUnavailable = errors.New("audio unavailable")

// Speaker plays events through the system audio device.
type Speaker struct {
	mu     sync.Mutex
	rate   beep.SampleRate
	mixer  *beep.Mixer
	thrust *beep.Ctrl
	closed bool

	// Guard streamers shared with the playback goroutine
	lock   func()
	unlock func()
}

// New opens the default audio device and starts playback.
func New() (*Speaker, error) {
	if err := beepspeaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	s := newSpeaker(sampleRate, beepspeaker.Lock, beepspeaker.Unlock)
	beepspeaker.Play(s.mixer)
	return s, nil
}

func newSpeaker(rate beep.SampleRate, lock, unlock func()) *Speaker {
	s := &Speaker{
		rate:   rate,
		mixer:  &beep.Mixer{},
		lock:   lock,
		unlock: unlock,
	}
	s.thrust = &beep.Ctrl{Streamer: audio.ThrustLoop(rate), Paused: true}
	s.mixer.Add(s.thrust)
	return s
}

// Handle implements audio.Sink.
func (s *Speaker) Handle(ev engine.AudioEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	s.lock()
	defer s.unlock()

	switch ev {
	case engine.EventThrustStart:
		s.thrust.Paused = false
	case engine.EventThrustStop:
		s.thrust.Paused = true
	case engine.EventFire:
		s.mixer.Add(audio.FireSound(s.rate))
	case engine.EventExplosion:
		s.mixer.Add(audio.ExplosionSound(s.rate))
	}
}

// Close silences everything. Further events are ignored.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true

	s.lock()
	s.thrust.Paused = true
	s.mixer.Clear()
	s.unlock()
}

// Open returns the system speaker, or audio.Nop when audio is disabled or no
// device can be opened. The returned close function is never nil.
func Open(enabled bool, logger *log.Logger) (audio.Sink, func()) {
	return open(enabled, logger, New)
}

func open(enabled bool, logger *log.Logger, newSpeaker func() (*Speaker, error)) (audio.Sink, func()) {
	if !enabled {
		return audio.Nop{}, func() {}
	}
	s, err := newSpeaker()
	if err != nil {
		if errors.Is(err, ErrUnavailable) {
			logger.Warn("audio disabled", "err", err)
		} else {
			logger.Error("audio failed", "err", err)
		}
		return audio.Nop{}, func() {}
	}
	return s, s.Close
}
