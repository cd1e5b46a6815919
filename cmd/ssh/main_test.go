package main

import (
	"testing"
	"time"
)

func TestSizeTracker(t *testing.T) {
	s := newSizeTracker(80, 24)
	s.update(120, 40)

	w, h, err := s.getSize()
	if err != nil {
		t.Fatal(err)
	}
	if w != 120 || h != 40 {
		t.Fatalf("getSize = %dx%d, want 120x40", w, h)
	}
}

func TestGameHandlerWait(t *testing.T) {
	h := &gameHandler{}
	if !h.wait(time.Second) {
		t.Fatal("wait with no sessions should finish")
	}

	h.sessions.Add(1)
	if h.wait(10 * time.Millisecond) {
		t.Fatal("wait should time out while a session runs")
	}
	h.sessions.Done()
	if !h.wait(time.Second) {
		t.Fatal("wait should finish once the session returns")
	}
}
