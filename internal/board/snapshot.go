package board

import "github.com/vovakirdan/tui-bounce/internal/engine"

// BlockState is the position part of a block, without its emitter.
type BlockState struct {
	Pos       int
	Dir       engine.Dir
	Bounced   bool
	Duplicate bool
}

// Snapshot captures the board state for determinism testing and replay
// comparisons.
type Snapshot struct {
	Tick   uint64
	Cursor int
	Paused bool
	Walls  int
	Blocks []BlockState
}

// Snapshot returns the current board snapshot.
func (b *Board) Snapshot() Snapshot {
	s := Snapshot{
		Tick:   b.tick,
		Cursor: b.cursor,
		Paused: b.paused,
		Walls:  b.walls.Count(),
		Blocks: make([]BlockState, len(b.blocks)),
	}
	for k, blk := range b.blocks {
		s.Blocks[k] = BlockState{
			Pos:       blk.Pos,
			Dir:       blk.Dir,
			Bounced:   b.flags[k].bounced,
			Duplicate: b.flags[k].duplicate,
		}
	}
	return s
}

// Equal reports whether two snapshots describe the same state.
func (s Snapshot) Equal(o Snapshot) bool {
	if s.Tick != o.Tick || s.Cursor != o.Cursor || s.Paused != o.Paused || s.Walls != o.Walls {
		return false
	}
	if len(s.Blocks) != len(o.Blocks) {
		return false
	}
	for k := range s.Blocks {
		if s.Blocks[k] != o.Blocks[k] {
			return false
		}
	}
	return true
}
