package board

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-bounce/internal/core"
	"github.com/vovakirdan/tui-bounce/internal/engine"
	"github.com/vovakirdan/tui-bounce/internal/music"
)

type playCall struct {
	pitch     music.PitchClass
	octave    int
	transpose bool
}

// fakeEmitter records calls and whether it was released.
type fakeEmitter struct {
	calls  []playCall
	closed bool
}

func (f *fakeEmitter) Play(p music.PitchClass, octave int, transposeUp bool) {
	f.calls = append(f.calls, playCall{p, octave, transposeUp})
}

func (f *fakeEmitter) Close() error {
	f.closed = true
	return nil
}

// newTestBoard returns a 4x4 board tuned a3 c4 e4 a4 by column and the
// emitters handed out so far.
func newTestBoard(t *testing.T, opts ...Option) (*Board, *[]*fakeEmitter) {
	t.Helper()
	tuning, err := music.NewTuning(music.MustParseNotes("a3", "c4", "e4", "a4"), music.LayoutColumns)
	if err != nil {
		t.Fatalf("NewTuning: %v", err)
	}
	var emitters []*fakeEmitter
	b := New(tuning, func() Emitter {
		e := &fakeEmitter{}
		emitters = append(emitters, e)
		return e
	}, opts...)
	return b, &emitters
}

func mustAdvance(t *testing.T, b *Board) TickReport {
	t.Helper()
	rep, err := b.Advance()
	if err != nil {
		t.Fatalf("Advance: %v", err)
	}
	return rep
}

func TestBoardScenarioWallBounce(t *testing.T) {
	b, emitters := newTestBoard(t)

	b.Spawn(engine.East)

	rep := mustAdvance(t, b)
	blocks := b.Blocks()
	if blocks[0].Pos != 1 || blocks[0].Dir != engine.East {
		t.Fatalf("tick 1: block = %+v, expected pos 1 heading E", blocks[0])
	}
	if len(rep.Bounces) != 0 {
		t.Errorf("tick 1: unexpected bounces %+v", rep.Bounces)
	}

	b.MoveCursor(engine.East)
	b.ToggleWall(engine.East)

	rep = mustAdvance(t, b)
	blocks = b.Blocks()
	if blocks[0].Pos != 0 || blocks[0].Dir != engine.West {
		t.Fatalf("tick 2: block = %+v, expected pos 0 heading W", blocks[0])
	}
	if len(rep.Bounces) != 1 {
		t.Fatalf("tick 2: expected one bounce, got %+v", rep.Bounces)
	}

	em := (*emitters)[0]
	if len(em.calls) != 1 {
		t.Fatalf("emitter should be invoked once, got %d", len(em.calls))
	}
	// Bounced from cell 1, column 1, tuned to c4.
	want := playCall{music.C, 4, false}
	if em.calls[0] != want {
		t.Errorf("emitter call = %+v, expected %+v", em.calls[0], want)
	}
}

func TestBoardDuplicateArrivalTransposes(t *testing.T) {
	b, emitters := newTestBoard(t)

	// Blocks at columns 0 and 2 of row 0 both head for column 1.
	b.Spawn(engine.East)
	b.MoveCursor(engine.East)
	b.MoveCursor(engine.East)
	b.Spawn(engine.West)

	rep := mustAdvance(t, b)

	if len(rep.Duplicates) != 2 {
		t.Fatalf("expected two duplicate events, got %+v", rep.Duplicates)
	}
	if len(rep.DupCells) != 1 || rep.DupCells[0] != 1 {
		t.Errorf("DupCells = %v, expected [1]", rep.DupCells)
	}
	for k, em := range *emitters {
		if len(em.calls) != 1 {
			t.Fatalf("emitter %d: expected one call, got %d", k, len(em.calls))
		}
		want := playCall{music.C, 4, true}
		if em.calls[0] != want {
			t.Errorf("emitter %d: call = %+v, expected %+v", k, em.calls[0], want)
		}
	}

	f := b.Frame()
	if cv := f.Cell(1, 0); !cv.Duplicate || cv.Blocks != 2 {
		t.Errorf("cell (1,0) = %+v, expected duplicate with two blocks", cv)
	}

	// Next tick they separate and the flag is recomputed.
	rep = mustAdvance(t, b)
	if len(rep.Duplicates) != 0 {
		t.Errorf("duplicate status must not carry over, got %+v", rep.Duplicates)
	}
}

func TestBoardRemoveLastReleasesEmitter(t *testing.T) {
	b, emitters := newTestBoard(t)

	b.Spawn(engine.North)
	b.MoveCursor(engine.South)
	b.Spawn(engine.South)

	if !b.RemoveLast() {
		t.Fatal("RemoveLast should report a removal")
	}
	if !(*emitters)[1].closed {
		t.Error("removed block's emitter should be closed")
	}
	if (*emitters)[0].closed {
		t.Error("remaining block's emitter should stay open")
	}
	if got := len(b.Blocks()); got != 1 {
		t.Errorf("expected 1 block, got %d", got)
	}

	b.RemoveLast()
	if b.RemoveLast() {
		t.Error("RemoveLast on an empty board should be a no-op")
	}
}

func TestBoardRemoveAtCursor(t *testing.T) {
	b, emitters := newTestBoard(t)

	b.Spawn(engine.North)
	b.Spawn(engine.East)
	b.MoveCursor(engine.South)
	b.Spawn(engine.West)
	b.MoveCursor(engine.North)

	if n := b.RemoveAtCursor(); n != 2 {
		t.Fatalf("RemoveAtCursor() = %d, expected 2", n)
	}
	blocks := b.Blocks()
	if len(blocks) != 1 || blocks[0].Dir != engine.West {
		t.Errorf("remaining blocks = %+v, expected the west-bound one", blocks)
	}
	if !(*emitters)[0].closed || !(*emitters)[1].closed || (*emitters)[2].closed {
		t.Error("only the removed blocks' emitters should be closed")
	}
}

func TestBoardCursorWraps(t *testing.T) {
	b, _ := newTestBoard(t)

	b.MoveCursor(engine.North)
	if b.Cursor() != 12 {
		t.Errorf("cursor after moving up from 0 = %d, expected 12", b.Cursor())
	}
	b.MoveCursor(engine.West)
	if b.Cursor() != 15 {
		t.Errorf("cursor after moving left from 12 = %d, expected 15", b.Cursor())
	}

	if err := b.SetCursor(4, 0); err == nil {
		t.Error("SetCursor outside the grid should fail")
	}
	if err := b.SetCursor(2, 3); err != nil || b.Cursor() != 14 {
		t.Errorf("SetCursor(2,3) = %v, cursor %d", err, b.Cursor())
	}
}

func TestBoardCursorLinger(t *testing.T) {
	b, _ := newTestBoard(t, WithCursorLinger(2))

	if !b.CursorVisible() {
		t.Fatal("cursor should start visible")
	}
	mustAdvance(t, b)
	mustAdvance(t, b)
	if b.CursorVisible() {
		t.Error("cursor should hide after the linger period")
	}
	b.MoveCursor(engine.East)
	if !b.CursorVisible() {
		t.Error("moving the cursor should show it again")
	}
}

func TestBoardApplyActions(t *testing.T) {
	b, _ := newTestBoard(t)

	actions := []core.Action{
		core.ActionCursorRight,
		core.ActionCursorDown,
		core.ActionSpawnNorth,
		core.ActionSpawnWest,
		core.ActionWallTop,
		core.ActionWallRight,
		core.ActionCursorLeft,
		core.ActionSpawnSouth,
		core.ActionCursorUp,
		core.ActionSpawnEast,
		core.ActionWallBottom,
		core.ActionWallLeft,
		core.ActionRemoveLast,
	}
	for _, a := range actions {
		b.Apply(a)
	}

	if got := len(b.Blocks()); got != 3 {
		t.Errorf("expected 3 blocks, got %d", got)
	}
	if !b.HasWall(5, engine.North) || !b.HasWall(1, engine.South) {
		t.Error("top wall of 5 should mirror to bottom of 1")
	}
	if !b.HasWall(5, engine.East) || !b.HasWall(6, engine.West) {
		t.Error("right wall of 5 should mirror to left of 6")
	}
	if !b.HasWall(0, engine.South) || !b.HasWall(0, engine.West) || !b.HasWall(3, engine.East) {
		t.Error("walls toggled at cell 0 missing")
	}

	b.Apply(core.ActionPause)
	if !b.Paused() {
		t.Error("ActionPause should pause")
	}
	rep := mustAdvance(t, b)
	if !rep.Paused || b.Tick() != 0 {
		t.Errorf("paused Advance should not tick, report %+v tick %d", rep, b.Tick())
	}
	b.Apply(core.ActionPause)

	b.Apply(core.ActionClear)
	if len(b.Blocks()) != 0 || b.Frame().WallCount != 0 {
		t.Error("ActionClear should remove blocks and walls")
	}

	b.Apply(core.ActionNone)
	b.Apply(core.ActionRemoveHere)
}

func TestBoardFaultedTickLeavesGeneration(t *testing.T) {
	b, _ := newTestBoard(t)
	b.Spawn(engine.East)
	b.Spawn(engine.South)

	// Corrupt the generation: a block that escaped the grid.
	b.blocks[1].Pos = 99
	before := b.Snapshot()

	rep, err := b.Advance()
	if !errors.Is(err, ErrTickFaulted) {
		t.Fatalf("Advance error = %v, expected ErrTickFaulted", err)
	}
	if rep.Tick != 0 {
		t.Errorf("report tick = %d, expected 0", rep.Tick)
	}
	if !b.Snapshot().Equal(before) {
		t.Error("faulted tick must leave the generation unresolved")
	}

	// Once the invariant holds again the next tick goes through.
	b.blocks[1].Pos = 4
	if _, err := b.Advance(); err != nil {
		t.Errorf("retry Advance: %v", err)
	}
	if b.Tick() != 1 {
		t.Errorf("tick = %d, expected 1", b.Tick())
	}
}

func TestBoardDeterminism(t *testing.T) {
	run := func() Snapshot {
		b, _ := newTestBoard(t)
		script := []core.Action{
			core.ActionSpawnEast,
			core.ActionCursorDown,
			core.ActionSpawnNorth,
			core.ActionWallRight,
			core.ActionCursorRight,
			core.ActionCursorRight,
			core.ActionSpawnWest,
		}
		for _, a := range script {
			b.Apply(a)
		}
		for i := 0; i < 50; i++ {
			mustAdvance(t, b)
		}
		return b.Snapshot()
	}

	s1 := run()
	s2 := run()
	if !s1.Equal(s2) {
		t.Errorf("identical runs diverged:\n%+v\n%+v", s1, s2)
	}
	if s1.Tick != 50 {
		t.Errorf("Tick = %d, expected 50", s1.Tick)
	}
}

func TestBoardSilentWithoutFactory(t *testing.T) {
	tuning, _ := music.NewTuning(music.MustParseNotes("c4", "e4"), music.LayoutColumns)
	b := New(tuning, nil)
	b.Spawn(engine.East)
	b.Spawn(engine.West)

	// On a 2x2 torus both blocks land on the same cell and would sound a
	// duplicate; without emitters that is skipped.
	if _, err := b.Advance(); err != nil {
		t.Fatalf("Advance: %v", err)
	}
}

func TestBoardRenderText(t *testing.T) {
	b, _ := newTestBoard(t)
	b.Spawn(engine.East)
	b.ToggleWall(engine.North)
	b.ToggleWall(engine.West)

	out := b.RenderText()
	lines := strings.Split(out, "\n")

	_, h := GridSize(4, 4)
	if len(lines) != h {
		t.Fatalf("expected %d lines, got %d:\n%s", h, len(lines), out)
	}
	if !strings.Contains(lines[0], "Blocks: 1") || !strings.Contains(lines[0], "Walls: 2") {
		t.Errorf("status line = %q", lines[0])
	}
	// Top wall of cell 0 sits on the first lattice row.
	if !strings.HasPrefix(lines[1], " ━━━") {
		t.Errorf("top wall row = %q", lines[1])
	}
	// Cursor brackets around an east-bound arrow, with the left wall before them.
	if !strings.HasPrefix(lines[2], "┃[▶]") {
		t.Errorf("first cell row = %q", lines[2])
	}
	// The left wall of cell 0 mirrors as the right wall of cell 3.
	if !strings.HasSuffix(lines[2], "┃") {
		t.Errorf("first cell row should end with the mirrored wall: %q", lines[2])
	}
}

func TestBoardRenderTooSmall(t *testing.T) {
	b, _ := newTestBoard(t)
	screen := core.NewScreen(30, 8)
	b.Render(screen)

	if !strings.Contains(screen.String(), "too small") {
		t.Errorf("expected too-small overlay, got:\n%s", screen.String())
	}
}
