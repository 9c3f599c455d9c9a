// Package music provides pitch classes, notes and the scale presets that tune
// the cells of a board.
package music

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// PitchClass is one of the twelve semitones of the octave, C = 0.
type PitchClass uint8

const (
	C PitchClass = iota
	CSharp
	D
	DSharp
	E
	F
	FSharp
	G
	GSharp
	A
	ASharp
	B
)

var pitchNames = [12]string{"c", "c#", "d", "d#", "e", "f", "f#", "g", "g#", "a", "a#", "b"}

// String returns the lower-case name of the pitch class ("c", "f#").
func (p PitchClass) String() string {
	if int(p) < len(pitchNames) {
		return pitchNames[p]
	}
	return "?"
}

// Letter returns the natural note letter of the pitch class, upper-cased.
func (p PitchClass) Letter() byte {
	return strings.ToUpper(p.String())[0]
}

// ParsePitchClass parses names like "c", "C#", "db".
func ParsePitchClass(s string) (PitchClass, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return C, fmt.Errorf("music: empty pitch class")
	}
	base := strings.IndexByte("c d ef g a b", s[0])
	if base < 0 || s[0] == ' ' {
		return C, fmt.Errorf("music: unknown pitch class %q", s)
	}
	switch s[1:] {
	case "":
	case "#", "s":
		base++
	case "b":
		base += 11
	default:
		return C, fmt.Errorf("music: unknown pitch class %q", s)
	}
	return PitchClass(base % 12), nil
}

// Note is a pitch class in a given octave, in scientific pitch notation
// (A4 = 440Hz, C4 = middle C).
type Note struct {
	Pitch  PitchClass
	Octave int
}

// ParseNote parses notes like "d2", "c#4", "Bb3".
func ParseNote(s string) (Note, error) {
	s = strings.TrimSpace(s)
	split := strings.IndexAny(s, "-0123456789")
	if split <= 0 {
		return Note{}, fmt.Errorf("music: note %q has no octave", s)
	}
	pc, err := ParsePitchClass(s[:split])
	if err != nil {
		return Note{}, fmt.Errorf("music: parsing note %q: %w", s, err)
	}
	oct, err := strconv.Atoi(s[split:])
	if err != nil {
		return Note{}, fmt.Errorf("music: parsing octave of %q: %w", s, err)
	}
	return Note{Pitch: pc, Octave: oct}, nil
}

// MustParseNotes parses a list of notes and panics on error.
// Used for the built-in presets.
func MustParseNotes(names ...string) []Note {
	notes, err := ParseNotes(names)
	if err != nil {
		panic(err)
	}
	return notes
}

// ParseNotes parses every name in order.
func ParseNotes(names []string) ([]Note, error) {
	notes := make([]Note, 0, len(names))
	for _, n := range names {
		note, err := ParseNote(n)
		if err != nil {
			return nil, err
		}
		notes = append(notes, note)
	}
	return notes, nil
}

// String returns the note as "d2".
func (n Note) String() string {
	return n.Pitch.String() + strconv.Itoa(n.Octave)
}

// Transpose shifts the note by whole octaves.
func (n Note) Transpose(octaves int) Note {
	return Note{Pitch: n.Pitch, Octave: n.Octave + octaves}
}

// MIDI returns the MIDI key number (C4 = 60).
func (n Note) MIDI() int {
	return (n.Octave+1)*12 + int(n.Pitch)
}

// Frequency returns the equal-tempered frequency in Hz.
func (n Note) Frequency() float64 {
	return 440 * math.Pow(2, float64(n.MIDI()-69)/12)
}
