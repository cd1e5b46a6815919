// Package input turns a raw terminal byte stream into per-frame key state.
package input

import (
	"bufio"
	"time"

	"github.com/tomz197/asteroids-arcade/internal/loop/engine"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
// Terminals only report key repeats, so holding is inferred from recency.
const keyHoldDuration = 120 * time.Millisecond

// Input represents the current frame's input state.
type Input struct {
	Quit    bool
	Left    bool
	Right   bool
	Up      bool // Thrust
	Space   bool // Fire
	Restart bool
	Enter   bool
	Closed  bool // The underlying reader hit EOF or an error
}

// Intents converts the key state into the simulation's input.
func (in Input) Intents() engine.Intents {
	return engine.Intents{
		Thrust:      in.Up,
		RotateLeft:  in.Left,
		RotateRight: in.Right,
		Fire:        in.Space,
		Restart:     in.Restart,
	}
}

// keyState tracks the last time each key was pressed.
type keyState struct {
	quit    time.Time
	left    time.Time
	right   time.Time
	up      time.Time
	space   time.Time
	restart time.Time
	enter   time.Time
}

func (k *keyState) input(now time.Time) Input {
	held := func(t time.Time) bool { return now.Sub(t) < keyHoldDuration }
	return Input{
		Quit:    held(k.quit),
		Left:    held(k.left),
		Right:   held(k.right),
		Up:      held(k.up),
		Space:   held(k.space),
		Restart: held(k.restart),
		Enter:   held(k.enter),
	}
}

// Stream delivers input bytes via a channel and tracks key state for combinations.
type Stream struct {
	ch     chan byte
	state  keyState
	closed bool
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{ch: make(chan byte, 128)}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// ReadInput drains all available bytes from the stream (non-blocking).
// Key state persists between calls so simultaneous keys are detected even
// when the terminal interleaves their repeats.
func ReadInput(s *Stream) Input {
	now := time.Now()
	s.apply(s.drain(), now)
	in := s.state.input(now)
	in.Closed = s.closed
	return in
}

// drain collects every byte currently buffered in the channel.
func (s *Stream) drain() []byte {
	var buf []byte
	for !s.closed {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break
			}
			buf = append(buf, b)
		default:
			return buf
		}
	}
	return buf
}

// apply parses buf and updates the key state timestamps.
func (s *Stream) apply(buf []byte, now time.Time) {
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI sequence: ESC [ <code>
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A': // Up arrow
				s.state.up = now
				i += 2
				continue
			case 'C': // Right arrow
				s.state.right = now
				i += 2
				continue
			case 'D': // Left arrow
				s.state.left = now
				i += 2
				continue
			case 'B': // Down arrow, unused
				i += 2
				continue
			}
		}

		applyByteToState(&s.state, b, now)
	}
}

// applyByteToState updates the key state timestamps based on the pressed byte.
func applyByteToState(state *keyState, b byte, now time.Time) {
	switch b {
	case 'q', 'Q', '\x03': // q or Ctrl+C
		state.quit = now
	case 'a', 'A', 'j', 'J':
		state.left = now
	case 'd', 'D', 'l', 'L':
		state.right = now
	case 'w', 'W', 'i', 'I':
		state.up = now
	case ' ':
		state.space = now
	case 'r', 'R':
		state.restart = now
	case '\n', '\r':
		state.enter = now
	}
}
