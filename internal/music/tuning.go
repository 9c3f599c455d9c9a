package music

import "fmt"

// Layout decides which scale degree each cell plays.
type Layout string

const (
	// LayoutColumns tunes every cell of a column to the same note.
	LayoutColumns Layout = "columns"
	// LayoutDiagonal shifts the scale by one degree per row, so each row and
	// each column contains every note once.
	LayoutDiagonal Layout = "diagonal"
)

// ParseLayout validates a layout name. Empty selects LayoutColumns.
func ParseLayout(s string) (Layout, error) {
	switch Layout(s) {
	case "", LayoutColumns:
		return LayoutColumns, nil
	case LayoutDiagonal:
		return LayoutDiagonal, nil
	}
	return LayoutColumns, fmt.Errorf("music: unknown layout %q", s)
}

// Tuning assigns a note to every cell of a square board whose side is the
// scale length.
type Tuning struct {
	Scale  []Note
	Layout Layout
}

// NewTuning creates a tuning. The scale must not be empty.
func NewTuning(scale []Note, layout Layout) (Tuning, error) {
	if len(scale) == 0 {
		return Tuning{}, fmt.Errorf("music: tuning needs at least one note")
	}
	layout, err := ParseLayout(string(layout))
	if err != nil {
		return Tuning{}, err
	}
	notes := make([]Note, len(scale))
	copy(notes, scale)
	return Tuning{Scale: notes, Layout: layout}, nil
}

// Size returns the board side length.
func (t Tuning) Size() int {
	return len(t.Scale)
}

// NoteAt returns the note of the cell at col, row.
func (t Tuning) NoteAt(col, row int) Note {
	n := len(t.Scale)
	if t.Layout == LayoutDiagonal {
		return t.Scale[(col+row)%n]
	}
	return t.Scale[col%n]
}
