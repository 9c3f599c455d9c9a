package board

import (
	"fmt"

	"github.com/vovakirdan/tui-bounce/internal/engine"
	"github.com/vovakirdan/tui-bounce/internal/music"
)

// Event records one emitter trigger during a tick.
type Event struct {
	Block      int        // Index of the block in the generation
	Cell       int        // Cell whose note was played
	Note       music.Note // Untransposed note of that cell
	Transposed bool       // Played an octave up (duplicate arrival)
}

// TickReport summarises what happened during Advance.
type TickReport struct {
	Tick       uint64
	Paused     bool
	Blocks     int
	Bounces    []Event
	Duplicates []Event
	DupCells   []int
}

// Advance runs one simulation tick.
//
// The next generation is computed from a frozen snapshot of the current one
// and swapped in whole. Bounced blocks then sound the note of the cell they
// bounced from; blocks that arrive on a shared cell sound that cell's note an
// octave up. If the step hits a broken invariant the generation is left
// unresolved and ErrTickFaulted is returned; the next call retries.
func (b *Board) Advance() (TickReport, error) {
	if b.paused {
		return TickReport{Tick: b.tick, Paused: true, Blocks: len(b.blocks)}, nil
	}

	res, err := b.step()
	if err != nil {
		b.logger.Error("tick faulted", "tick", b.tick+1, "error", err)
		return TickReport{Tick: b.tick, Blocks: len(b.blocks)}, err
	}

	prev := b.blocks
	b.blocks = res.Next
	b.flags = make([]blockFlags, len(res.Next))
	for k := range res.Next {
		b.flags[k] = blockFlags{bounced: res.Bounced[k], duplicate: res.Duplicate[k]}
	}
	b.tick++
	b.cursorIdle++

	report := TickReport{
		Tick:     b.tick,
		Blocks:   len(b.blocks),
		DupCells: res.DuplicateCells,
	}

	for k, blk := range prev {
		if !res.Bounced[k] {
			continue
		}
		ev := Event{Block: k, Cell: blk.Pos, Note: b.NoteAt(blk.Pos)}
		sound(blk.Emitter, ev)
		report.Bounces = append(report.Bounces, ev)
	}
	for k, blk := range res.Next {
		if !res.Duplicate[k] {
			continue
		}
		ev := Event{Block: k, Cell: blk.Pos, Note: b.NoteAt(blk.Pos), Transposed: true}
		sound(blk.Emitter, ev)
		report.Duplicates = append(report.Duplicates, ev)
	}

	return report, nil
}

// step runs the engine, turning an invariant panic into ErrTickFaulted.
func (b *Board) step() (res engine.Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrTickFaulted, r)
		}
	}()
	return engine.Step(b.blocks, b.walls), nil
}

func sound(em Emitter, ev Event) {
	if em == nil {
		return
	}
	em.Play(ev.Note.Pitch, ev.Note.Octave, ev.Transposed)
}
