package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-bounce/internal/board"
	"github.com/vovakirdan/tui-bounce/internal/config"
	"github.com/vovakirdan/tui-bounce/internal/synth"
)

// loadConfig loads the config file from the search path.
func loadConfig() (config.Config, error) {
	return config.Load(flagConfig)
}

// applyFlags applies command-line overrides on top of cfg.
func applyFlags(cfg config.Config) (config.Config, error) {
	if flagScale != "" {
		cfg.Scale = flagScale
		cfg.Notes = nil
	}
	if flagLayout != "" {
		cfg.Layout = flagLayout
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid flags: %w", err)
	}
	return cfg, nil
}

func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "bounce",
		Level:           level,
	})
}

// openLogFile returns the writer for log.file, or io.Discard when unset.
func openLogFile(path string) (io.Writer, func(), error) {
	if path == "" {
		return io.Discard, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file %s: %w", path, err)
	}
	//nolint:errcheck // Best-effort close on exit
	return f, func() { f.Close() }, nil
}

// newEmitterFactory opens the audio engine unless muted. Audio failures
// fall back to silent blocks.
func newEmitterFactory(cfg config.Config, mute bool, logger *log.Logger) (board.EmitterFactory, func()) {
	silent := func() board.Emitter { return synth.Silent{} }
	if mute {
		return silent, func() {}
	}

	opts, err := cfg.SynthOptions()
	if err != nil {
		logger.Warn("bad synth options, muting", "error", err)
		return silent, func() {}
	}

	eng := synth.New(opts, logger)
	if err := eng.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: audio unavailable: %v\n", err)
		logger.Warn("audio unavailable, muting", "error", err)
		return silent, func() {}
	}
	//nolint:errcheck // Best-effort close on exit
	return func() board.Emitter { return eng.NewEmitter() }, func() { eng.Close() }
}

// newBoard builds an empty board for cfg.
func newBoard(cfg config.Config, newEmitter board.EmitterFactory, logger *log.Logger) (*board.Board, error) {
	tuning, err := cfg.Tuning()
	if err != nil {
		return nil, err
	}
	return board.New(tuning, newEmitter,
		board.WithLogger(logger),
		board.WithCursorLinger(cfg.CursorLinger),
	), nil
}
