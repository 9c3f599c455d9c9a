// Package config provides YAML configuration loading for the sequencer and
// YAML scenarios for headless runs.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-bounce/internal/music"
	"github.com/vovakirdan/tui-bounce/internal/synth"
)

// Config contains all sequencer configuration.
type Config struct {
	Scale        string      `yaml:"scale"`         // Preset name, see music.List
	Notes        []string    `yaml:"notes"`         // Explicit scale, overrides Scale
	Layout       string      `yaml:"layout"`        // "columns" or "diagonal"
	CursorLinger int         `yaml:"cursor_linger"` // Ticks the cursor stays visible
	Synth        SynthConfig `yaml:"synth"`
	Log          LogConfig   `yaml:"log"`
}

// SynthConfig defines the tone generator parameters.
type SynthConfig struct {
	Waveform  string  `yaml:"waveform"`
	Volume    float64 `yaml:"volume"`
	ReleaseMS int     `yaml:"release_ms"`
}

// LogConfig defines where and how much to log.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"` // Empty discards logs while the TUI runs
}

// Validate checks the configuration for values the sequencer cannot use.
func (c Config) Validate() error {
	var errs []error

	if len(c.Notes) > 0 {
		if _, err := music.ParseNotes(c.Notes); err != nil {
			errs = append(errs, fmt.Errorf("notes: %w", err))
		}
	} else if _, err := music.Lookup(c.Scale); err != nil {
		errs = append(errs, fmt.Errorf("scale: %w", err))
	}
	if _, err := music.ParseLayout(c.Layout); err != nil {
		errs = append(errs, fmt.Errorf("layout: %w", err))
	}
	if c.CursorLinger <= 0 {
		errs = append(errs, fmt.Errorf("cursor_linger must be positive, got %d", c.CursorLinger))
	}
	if _, err := synth.ParseWaveform(c.Synth.Waveform); err != nil {
		errs = append(errs, fmt.Errorf("synth.waveform: %w", err))
	}
	if c.Synth.Volume <= 0 || c.Synth.Volume > 1 {
		errs = append(errs, fmt.Errorf("synth.volume must be in (0, 1], got %g", c.Synth.Volume))
	}
	if c.Synth.ReleaseMS <= 0 {
		errs = append(errs, fmt.Errorf("synth.release_ms must be positive, got %d", c.Synth.ReleaseMS))
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}

	return errors.Join(errs...)
}

// Tuning builds the board tuning from the scale settings.
func (c Config) Tuning() (music.Tuning, error) {
	layout, err := music.ParseLayout(c.Layout)
	if err != nil {
		return music.Tuning{}, err
	}

	if len(c.Notes) > 0 {
		notes, err := music.ParseNotes(c.Notes)
		if err != nil {
			return music.Tuning{}, err
		}
		return music.NewTuning(notes, layout)
	}

	preset, err := music.Lookup(c.Scale)
	if err != nil {
		return music.Tuning{}, err
	}
	return music.NewTuning(preset.Notes, layout)
}

// SynthOptions converts the synth section into engine options.
func (c Config) SynthOptions() (synth.Options, error) {
	wf, err := synth.ParseWaveform(c.Synth.Waveform)
	if err != nil {
		return synth.Options{}, err
	}
	return synth.Options{
		Waveform: wf,
		Volume:   c.Synth.Volume,
		Release:  time.Duration(c.Synth.ReleaseMS) * time.Millisecond,
	}, nil
}

// LogLevel returns the parsed log level.
func (c Config) LogLevel() log.Level {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
