package config

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger builds the logger described by cfg. With a LogFile the logger
// writes JSON lines to that file; otherwise it writes human-readable lines to
// console, or nowhere when console is nil. The returned close function must
// be called on shutdown.
func NewLogger(cfg Config, console io.Writer) (zerolog.Logger, func() error, error) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}

	var out io.Writer
	closer := func() error { return nil }

	switch {
	case cfg.LogFile != "":
		file, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return zerolog.Nop(), nil, fmt.Errorf("open log file: %w", err)
		}
		out = file
		closer = file.Close
	case console != nil:
		out = zerolog.ConsoleWriter{Out: console, TimeFormat: time.TimeOnly}
	default:
		out = io.Discard
	}

	logger := zerolog.New(out).Level(level).With().Timestamp().Logger()
	return logger, closer, nil
}
