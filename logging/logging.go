// Package logging builds the go-kit loggers used across the game.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

var globalLogger log.Logger = log.NewNopLogger()

// GlobalLogger returns the process logger set by SetGlobalLogger, a no-op
// logger until then.
func GlobalLogger() log.Logger {
	return globalLogger
}

// SetGlobalLogger replaces the process logger. It is meant to be called once
// from main before anything logs.
func SetGlobalLogger(logger log.Logger) {
	globalLogger = logger
}

// ParseLevel maps a level name onto a go-kit filter option.
func ParseLevel(name string) (level.Option, error) {
	switch strings.ToLower(name) {
	case "debug":
		return level.AllowDebug(), nil
	case "", "info":
		return level.AllowInfo(), nil
	case "warn", "warning":
		return level.AllowWarn(), nil
	case "error":
		return level.AllowError(), nil
	case "none", "off":
		return level.AllowNone(), nil
	}
	return nil, fmt.Errorf("unknown log level %q", name)
}

// New returns a logfmt logger writing to w, filtered at lvl, stamped with a
// UTC timestamp and the caller.
func New(w io.Writer, lvl string) (log.Logger, error) {
	opt, err := ParseLevel(lvl)
	if err != nil {
		return nil, err
	}
	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	logger = level.NewFilter(logger, opt)
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)
	return logger, nil
}

// Open builds a logger on path, appending, or on stderr when path is empty.
// The returned closer must be called on exit.
func Open(path, lvl string) (log.Logger, io.Closer, error) {
	var w io.WriteCloser = nopCloser{os.Stderr}
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
	}
	logger, err := New(w, lvl)
	if err != nil {
		_ = w.Close()
		return nil, nil, err
	}
	return logger, w, nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
