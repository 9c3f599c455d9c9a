package music

import (
	"fmt"
	"sort"
	"sync"
)

// Preset is a named scale. The scale length sets the board size.
type Preset struct {
	ID    string
	Title string
	Notes []Note
}

// PresetInfo contains metadata about a registered preset.
type PresetInfo struct {
	ID    string
	Title string
	Size  int
}

var (
	presets = make(map[string]Preset)
	mu      sync.RWMutex
)

// DefaultPreset is the scale used when nothing else is configured.
const DefaultPreset = "original"

func init() {
	Register(Preset{
		ID:    "original",
		Title: "D minor drone (11x11)",
		Notes: MustParseNotes("d2", "a2", "d3", "a3", "c4", "e4", "f4", "g4", "a4", "c5", "e5"),
	})
	Register(Preset{
		ID:    "pentatonic",
		Title: "C major pentatonic (10x10)",
		Notes: MustParseNotes("c3", "d3", "e3", "g3", "a3", "c4", "d4", "e4", "g4", "a4"),
	})
	Register(Preset{
		ID:    "dorian",
		Title: "D dorian (8x8)",
		Notes: MustParseNotes("d3", "e3", "f3", "g3", "a3", "b3", "c4", "d4"),
	})
	Register(Preset{
		ID:    "chromatic",
		Title: "Chromatic octave from C4 (12x12)",
		Notes: MustParseNotes("c4", "c#4", "d4", "d#4", "e4", "f4", "f#4", "g4", "g#4", "a4", "a#4", "b4"),
	})
	Register(Preset{
		ID:    "tiny",
		Title: "A minor triad (4x4)",
		Notes: MustParseNotes("a3", "c4", "e4", "a4"),
	})
}

// Register adds a preset to the registry.
// Panics if a preset with the same ID is already registered or has no notes.
func Register(p Preset) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := presets[p.ID]; exists {
		panic(fmt.Sprintf("music: preset %q already registered", p.ID))
	}
	if len(p.Notes) == 0 {
		panic(fmt.Sprintf("music: preset %q has no notes", p.ID))
	}
	presets[p.ID] = p
}

// Lookup returns the preset with the given ID.
func Lookup(id string) (Preset, error) {
	mu.RLock()
	defer mu.RUnlock()

	p, ok := presets[id]
	if !ok {
		return Preset{}, fmt.Errorf("music: unknown scale %q", id)
	}
	return p, nil
}

// List returns information about all registered presets, sorted by ID.
func List() []PresetInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]PresetInfo, 0, len(presets))
	for id, p := range presets {
		result = append(result, PresetInfo{
			ID:    id,
			Title: p.Title,
			Size:  len(p.Notes),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}
