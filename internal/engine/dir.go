// Package engine provides the bouncing-block simulation: toroidal grid
// indexing, the wall field and the per-tick step function.
// This package is UI-agnostic and deterministic.
package engine

import (
	"fmt"
	"strings"
)

// Dir represents a cardinal direction of travel. It also names the side of a
// cell a wall sits on: North is the top side, South the bottom, West the left
// and East the right.
type Dir uint8

const (
	North Dir = iota
	East
	South
	West
)

// Dirs lists all directions in a stable order.
var Dirs = [4]Dir{North, East, South, West}

// String returns the single-letter name of a direction.
func (d Dir) String() string {
	switch d {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	default:
		return "?"
	}
}

// SideName returns the wall-side name for a direction (top, right, bottom, left).
func (d Dir) SideName() string {
	switch d {
	case North:
		return "top"
	case East:
		return "right"
	case South:
		return "bottom"
	case West:
		return "left"
	default:
		return "unknown"
	}
}

// Opposite returns the reverse direction.
func (d Dir) Opposite() Dir {
	switch d {
	case North:
		return South
	case East:
		return West
	case South:
		return North
	case West:
		return East
	default:
		panic(fmt.Sprintf("engine: invalid direction %d", d))
	}
}

// Valid reports whether d is one of the four cardinal directions.
func (d Dir) Valid() bool {
	return d <= West
}

// ParseDir accepts direction letters and names (n, north, up, top, ...).
func ParseDir(s string) (Dir, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "n", "north", "up", "t", "top":
		return North, nil
	case "e", "east", "right", "r":
		return East, nil
	case "s", "south", "down", "b", "bottom":
		return South, nil
	case "w", "west", "left", "l":
		return West, nil
	}
	return North, fmt.Errorf("engine: unknown direction %q", s)
}
