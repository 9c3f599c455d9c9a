package synth

import (
	"fmt"
	"math"
	"strings"
)

// Waveform selects the oscillator shape.
type Waveform uint8

const (
	Sine Waveform = iota
	Triangle
	Square
)

var waveformNames = map[Waveform]string{
	Sine:     "sine",
	Triangle: "triangle",
	Square:   "square",
}

// String returns the config name of the waveform.
func (w Waveform) String() string {
	if name, ok := waveformNames[w]; ok {
		return name
	}
	return "unknown"
}

// ParseWaveform parses a waveform name. Empty selects Sine.
func ParseWaveform(s string) (Waveform, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Sine, nil
	}
	for w, name := range waveformNames {
		if name == s {
			return w, nil
		}
	}
	return Sine, fmt.Errorf("synth: unknown waveform %q", s)
}

// at returns the oscillator value in [-1, 1] for a phase in [0, 1).
func (w Waveform) at(phase float64) float64 {
	switch w {
	case Triangle:
		return 1 - 4*math.Abs(phase-0.5)
	case Square:
		if phase < 0.5 {
			return 1
		}
		return -1
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}
