package music

import (
	"math"
	"testing"
)

func TestParseNote(t *testing.T) {
	tests := []struct {
		in   string
		want Note
	}{
		{"d2", Note{D, 2}},
		{"a4", Note{A, 4}},
		{"c#4", Note{CSharp, 4}},
		{"Cs4", Note{CSharp, 4}},
		{"Bb3", Note{ASharp, 3}},
		{"cb4", Note{B, 4}},
		{"E5", Note{E, 5}},
		{" g3 ", Note{G, 3}},
		{"c-1", Note{C, -1}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseNote(tt.in)
			if err != nil {
				t.Fatalf("ParseNote(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseNote(%q) = %v, expected %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseNoteErrors(t *testing.T) {
	for _, in := range []string{"", "4", "h4", "c", "c##4", "x#2", " 4", "c4x"} {
		if _, err := ParseNote(in); err == nil {
			t.Errorf("ParseNote(%q) should fail", in)
		}
	}
}

func TestNoteString(t *testing.T) {
	if got := (Note{FSharp, 3}).String(); got != "f#3" {
		t.Errorf("String() = %q, expected f#3", got)
	}
	if got := (Note{D, 2}).Transpose(1).String(); got != "d3" {
		t.Errorf("Transpose(1) = %q, expected d3", got)
	}
	if got := FSharp.Letter(); got != 'F' {
		t.Errorf("Letter() = %c, expected F", got)
	}
}

func TestNoteFrequency(t *testing.T) {
	tests := []struct {
		note Note
		midi int
		hz   float64
	}{
		{Note{A, 4}, 69, 440},
		{Note{C, 4}, 60, 261.6256},
		{Note{A, 3}, 57, 220},
		{Note{D, 2}, 38, 73.4162},
		{Note{E, 5}, 76, 659.2551},
	}

	for _, tt := range tests {
		t.Run(tt.note.String(), func(t *testing.T) {
			if got := tt.note.MIDI(); got != tt.midi {
				t.Errorf("MIDI() = %d, expected %d", got, tt.midi)
			}
			if got := tt.note.Frequency(); math.Abs(got-tt.hz) > 0.001 {
				t.Errorf("Frequency() = %.4f, expected %.4f", got, tt.hz)
			}
		})
	}

	// An octave up doubles the frequency.
	n := Note{G, 4}
	if got := n.Transpose(1).Frequency() / n.Frequency(); math.Abs(got-2) > 1e-9 {
		t.Errorf("octave ratio = %f, expected 2", got)
	}
}

func TestPresets(t *testing.T) {
	p, err := Lookup(DefaultPreset)
	if err != nil {
		t.Fatalf("Lookup(%q): %v", DefaultPreset, err)
	}
	want := []string{"d2", "a2", "d3", "a3", "c4", "e4", "f4", "g4", "a4", "c5", "e5"}
	if len(p.Notes) != len(want) {
		t.Fatalf("default preset has %d notes, expected %d", len(p.Notes), len(want))
	}
	for i, n := range p.Notes {
		if n.String() != want[i] {
			t.Errorf("note %d = %s, expected %s", i, n, want[i])
		}
	}

	if _, err := Lookup("nope"); err == nil {
		t.Error("Lookup of unknown preset should fail")
	}

	list := List()
	if len(list) < 5 {
		t.Fatalf("expected at least 5 presets, got %d", len(list))
	}
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Errorf("List not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
	for _, info := range list {
		if info.ID == "tiny" && info.Size != 4 {
			t.Errorf("tiny size = %d, expected 4", info.Size)
		}
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("registering a duplicate preset should panic")
		}
	}()
	Register(Preset{ID: DefaultPreset, Notes: MustParseNotes("c4")})
}

func TestTuningLayouts(t *testing.T) {
	scale := MustParseNotes("c4", "e4", "g4")

	cols, err := NewTuning(scale, LayoutColumns)
	if err != nil {
		t.Fatalf("NewTuning: %v", err)
	}
	diag, err := NewTuning(scale, LayoutDiagonal)
	if err != nil {
		t.Fatalf("NewTuning: %v", err)
	}

	tests := []struct {
		col, row int
		wantCols string
		wantDiag string
	}{
		{0, 0, "c4", "c4"},
		{1, 0, "e4", "e4"},
		{2, 0, "g4", "g4"},
		{0, 1, "c4", "e4"},
		{2, 1, "g4", "c4"},
		{1, 2, "e4", "c4"},
		{2, 2, "g4", "e4"},
	}
	for _, tt := range tests {
		if got := cols.NoteAt(tt.col, tt.row).String(); got != tt.wantCols {
			t.Errorf("columns NoteAt(%d,%d) = %s, expected %s", tt.col, tt.row, got, tt.wantCols)
		}
		if got := diag.NoteAt(tt.col, tt.row).String(); got != tt.wantDiag {
			t.Errorf("diagonal NoteAt(%d,%d) = %s, expected %s", tt.col, tt.row, got, tt.wantDiag)
		}
	}

	// Diagonal rows are permutations of the scale.
	for row := 0; row < diag.Size(); row++ {
		seen := map[Note]bool{}
		for col := 0; col < diag.Size(); col++ {
			seen[diag.NoteAt(col, row)] = true
		}
		if len(seen) != diag.Size() {
			t.Errorf("row %d has %d distinct notes, expected %d", row, len(seen), diag.Size())
		}
	}
}

func TestNewTuningErrors(t *testing.T) {
	if _, err := NewTuning(nil, LayoutColumns); err == nil {
		t.Error("empty scale should fail")
	}
	if _, err := NewTuning(MustParseNotes("c4"), Layout("spiral")); err == nil {
		t.Error("unknown layout should fail")
	}

	tn, err := NewTuning(MustParseNotes("c4", "d4"), "")
	if err != nil {
		t.Fatalf("NewTuning with empty layout: %v", err)
	}
	if tn.Layout != LayoutColumns {
		t.Errorf("empty layout = %q, expected %q", tn.Layout, LayoutColumns)
	}
}

func TestNewTuningCopiesScale(t *testing.T) {
	scale := MustParseNotes("c4", "d4")
	tn, _ := NewTuning(scale, LayoutColumns)
	scale[0] = Note{B, 7}
	if tn.NoteAt(0, 0) != (Note{C, 4}) {
		t.Error("tuning should not alias the caller's scale")
	}
}
