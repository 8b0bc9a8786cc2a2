package main

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

// setupLogging points the global logger at the configured file. Without a
// file, console mode logs to stderr and TUI mode, which owns the terminal,
// drops log output.
func setupLogging(cfg Config, console bool) (io.Closer, error) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs

	var w io.Writer
	var closer io.Closer = closerFunc(func() error { return nil })

	switch {
	case cfg.LogFile != "":
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, err
		}
		w = f
		closer = f
	case console:
		w = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	default:
		w = io.Discard
	}

	log.Logger = zerolog.New(w).With().Timestamp().Logger()

	return closer, nil
}
