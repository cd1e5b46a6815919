// Package logging builds the charmbracelet loggers used by the binaries.
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// New returns a logger writing to w at the named level. An unknown level
// falls back to info and is reported through the new logger.
func New(w io.Writer, level, prefix string) *log.Logger {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	logger := log.NewWithOptions(w, log.Options{
		Level:           lvl,
		Prefix:          prefix,
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	})
	if err != nil {
		logger.Warn("unknown log level, using info", "value", level)
	}
	return logger
}

// OpenFile returns a logger appending to path, or a discarding logger when
// path is empty. The returned close function is never nil.
func OpenFile(path, level, prefix string) (*log.Logger, func() error, error) {
	if path == "" {
		return New(io.Discard, level, prefix), func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return New(f, level, prefix), f.Close, nil
}
