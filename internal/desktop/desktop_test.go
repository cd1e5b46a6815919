package desktop

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/tomz197/asteroids-arcade/internal/loop/engine"
)

func fakeKeys(held []ebiten.Key, tapped ...ebiten.Key) keyState {
	set := func(keys []ebiten.Key) func(ebiten.Key) bool {
		m := make(map[ebiten.Key]bool, len(keys))
		for _, k := range keys {
			m[k] = true
		}
		return func(k ebiten.Key) bool { return m[k] }
	}
	return keyState{pressed: set(held), justPressed: set(tapped)}
}

func TestIntents(t *testing.T) {
	tests := []struct {
		name   string
		held   []ebiten.Key
		tapped []ebiten.Key
		want   engine.Intents
	}{
		{"none", nil, nil, engine.Intents{}},
		{"wasd", []ebiten.Key{ebiten.KeyW, ebiten.KeyA}, nil, engine.Intents{Thrust: true, RotateLeft: true}},
		{"arrows", []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyArrowRight}, nil, engine.Intents{Thrust: true, RotateRight: true}},
		{"fire", []ebiten.Key{ebiten.KeySpace}, nil, engine.Intents{Fire: true}},
		{"restart held only", []ebiten.Key{ebiten.KeyR}, nil, engine.Intents{}},
		{"restart tapped", nil, []ebiten.Key{ebiten.KeyR}, engine.Intents{Restart: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := intents(fakeKeys(tt.held, tt.tapped...)); got != tt.want {
				t.Errorf("intents = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestQuitRequested(t *testing.T) {
	if quitRequested(fakeKeys(nil)) {
		t.Error("quit without a key press")
	}
	if !quitRequested(fakeKeys(nil, ebiten.KeyEscape)) {
		t.Error("escape should quit")
	}
	if !quitRequested(fakeKeys(nil, ebiten.KeyQ)) {
		t.Error("q should quit")
	}
}

type recordSink struct {
	events []engine.AudioEvent
}

func (r *recordSink) Handle(ev engine.AudioEvent) { r.events = append(r.events, ev) }

func TestStepForwardsAudio(t *testing.T) {
	sink := &recordSink{}
	g := New(rand.New(rand.NewSource(3)), sink, nil)

	g.step(0.016, engine.Intents{Thrust: true, Fire: true})
	g.step(0.016, engine.Intents{})

	want := []engine.AudioEvent{engine.EventThrustStart, engine.EventFire, engine.EventThrustStop}
	if len(sink.events) != len(want) {
		t.Fatalf("events = %v, want %v", sink.events, want)
	}
	for i := range want {
		if sink.events[i] != want[i] {
			t.Fatalf("events = %v, want %v", sink.events, want)
		}
	}
}

func TestLayoutIsFixed(t *testing.T) {
	g := New(rand.New(rand.NewSource(1)), nil, nil)
	w, h := g.Layout(1920, 1080)
	if w != ScreenWidth || h != ScreenHeight {
		t.Fatalf("Layout = %dx%d, want %dx%d", w, h, ScreenWidth, ScreenHeight)
	}
}

func TestControlsListEveryAction(t *testing.T) {
	legend := strings.Join(controls, "\n")
	for _, action := range []string{"Thrust", "Rotate", "Shoot", "Restart", "Quit"} {
		if !strings.Contains(legend, action) {
			t.Errorf("controls legend is missing %q", action)
		}
	}
	if top := ScreenHeight - 4 - debugLineHeight*len(controls); top < ScreenHeight/2 {
		t.Errorf("controls legend starts at y=%d, want the bottom half", top)
	}
}
