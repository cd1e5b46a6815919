package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "warn", "test")

	logger.Info("hidden")
	logger.Warn("shown", "key", "value")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info message logged at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "key=value") {
		t.Errorf("warn message missing: %q", out)
	}
}

func TestNewUnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "chatty", "")

	logger.Debug("debug")
	logger.Info("info")

	out := buf.String()
	if strings.Contains(out, "debug") || !strings.Contains(out, "info") {
		t.Errorf("unexpected output %q", out)
	}
	if !strings.Contains(out, "value=chatty") {
		t.Errorf("missing warning about the bad level: %q", out)
	}
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.log")
	logger, closeFn, err := OpenFile(path, "info", "game")
	if err != nil {
		t.Fatal(err)
	}
	logger.Info("hello")
	if err := closeFn(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Fatalf("log file = %q, want the message", data)
	}
}

func TestOpenFileEmptyPathDiscards(t *testing.T) {
	logger, closeFn, err := OpenFile("", "info", "")
	if err != nil || logger == nil {
		t.Fatalf("OpenFile(\"\") = %v, %v", logger, err)
	}
	if err := closeFn(); err != nil {
		t.Fatal(err)
	}
}
