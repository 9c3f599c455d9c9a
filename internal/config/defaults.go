package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-bounce/internal/board"
	"github.com/vovakirdan/tui-bounce/internal/music"
)

//go:embed defaults/bounce.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration.
func Default() Config {
	return Config{
		Scale:        music.DefaultPreset,
		Layout:       string(music.LayoutColumns),
		CursorLinger: board.DefaultCursorLinger,
		Synth: SynthConfig{
			Waveform:  "sine",
			Volume:    0.2,
			ReleaseMS: 400,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
