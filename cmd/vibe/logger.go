package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

// newLogger opens a JSON logger on path. The terminal belongs to the TUI, so
// without a path diagnostics are discarded.
func newLogger(path, level string) (zerolog.Logger, func(), error) {
	if path == "" {
		return zerolog.Nop(), func() {}, nil
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("parse log level: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("open log file: %w", err)
	}
	logger := zerolog.New(f).Level(lvl).With().Timestamp().Str("app", "vibe").Logger()
	return logger, func() { f.Close() }, nil
}
