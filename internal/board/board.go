// Package board wires the simulation engine to an operator: it owns the
// grid, the walls and the current generation of blocks, exposes
// cursor-based editing and advances the simulation once per external tick.
package board

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-bounce/internal/core"
	"github.com/vovakirdan/tui-bounce/internal/engine"
	"github.com/vovakirdan/tui-bounce/internal/music"
)

// DefaultCursorLinger is how many ticks the cursor stays visible after it
// last moved.
const DefaultCursorLinger = 5

// ErrTickFaulted is returned by Advance when computing the next generation
// hit a broken invariant. The generation is left as it was.
var ErrTickFaulted = errors.New("board: tick faulted")

// Emitter is the per-block sound capability. Emitters that also implement
// io.Closer are closed when their block is removed.
type Emitter = engine.Emitter

// EmitterFactory creates the emitter for a new block.
type EmitterFactory func() Emitter

// Board is the orchestration layer around the engine.
// It is owned by a single goroutine and is not safe for concurrent use.
type Board struct {
	tuning music.Tuning
	torus  engine.Torus
	walls  *engine.Walls

	blocks []engine.Block
	flags  []blockFlags // Aligned with blocks; outcome of the last tick

	newEmitter EmitterFactory
	logger     *log.Logger

	cursor       int
	cursorIdle   int // Ticks since the cursor last moved
	cursorLinger int

	tick   uint64
	paused bool
}

type blockFlags struct {
	bounced   bool
	duplicate bool
}

// Option configures a Board.
type Option func(*Board)

// WithLogger sets the logger used for edits and faulted ticks.
func WithLogger(l *log.Logger) Option {
	return func(b *Board) {
		if l != nil {
			b.logger = l
		}
	}
}

// WithCursorLinger sets how many ticks the cursor stays visible after a move.
func WithCursorLinger(ticks int) Option {
	return func(b *Board) {
		if ticks > 0 {
			b.cursorLinger = ticks
		}
	}
}

// New creates an empty board sized and tuned by the tuning.
// newEmitter may be nil, in which case blocks are silent.
func New(tuning music.Tuning, newEmitter EmitterFactory, opts ...Option) *Board {
	size := tuning.Size()
	torus := engine.NewTorus(size, size)

	b := &Board{
		tuning:       tuning,
		torus:        torus,
		walls:        engine.NewWalls(torus),
		newEmitter:   newEmitter,
		logger:       log.New(io.Discard),
		cursorLinger: DefaultCursorLinger,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Cols returns the grid width.
func (b *Board) Cols() int { return b.torus.Cols }

// Rows returns the grid height.
func (b *Board) Rows() int { return b.torus.Rows }

// Tick returns the number of completed ticks.
func (b *Board) Tick() uint64 { return b.tick }

// Cursor returns the cell index under the cursor.
func (b *Board) Cursor() int { return b.cursor }

// CursorVisible reports whether the renderer should draw the cursor.
func (b *Board) CursorVisible() bool {
	return b.paused || b.cursorIdle < b.cursorLinger
}

// Paused reports whether the simulation clock is stopped.
func (b *Board) Paused() bool { return b.paused }

// SetPaused stops or restarts the simulation clock.
func (b *Board) SetPaused(p bool) {
	b.paused = p
	b.cursorIdle = 0
}

// NoteAt returns the note the cell is tuned to.
func (b *Board) NoteAt(cell int) music.Note {
	col, row := b.torus.Coord(cell)
	return b.tuning.NoteAt(col, row)
}

// Blocks returns a copy of the current generation.
func (b *Board) Blocks() []engine.Block {
	out := make([]engine.Block, len(b.blocks))
	copy(out, b.blocks)
	return out
}

// HasWall reports whether the cell has a wall on the given side.
func (b *Board) HasWall(cell int, side engine.Dir) bool {
	return b.walls.Has(cell, side)
}

// MoveCursor moves the cursor one cell, wrapping around the edges.
func (b *Board) MoveCursor(d engine.Dir) {
	b.cursor = b.torus.Neighbor(b.cursor, d)
	b.cursorIdle = 0
}

// SetCursor places the cursor on the given column and row.
func (b *Board) SetCursor(col, row int) error {
	if col < 0 || col >= b.torus.Cols || row < 0 || row >= b.torus.Rows {
		return fmt.Errorf("board: cell (%d,%d) outside %dx%d grid", col, row, b.torus.Cols, b.torus.Rows)
	}
	b.cursor = b.torus.Index(col, row)
	b.cursorIdle = 0
	return nil
}

// ToggleWall flips the wall on the given side of the cursor cell.
func (b *Board) ToggleWall(side engine.Dir) {
	b.walls.Toggle(b.cursor, side)
	b.logger.Debug("wall toggled", "cell", b.cursor, "side", side.SideName(), "on", b.walls.Has(b.cursor, side))
}

// Spawn creates a block under the cursor travelling in direction d.
func (b *Board) Spawn(d engine.Dir) {
	var em Emitter
	if b.newEmitter != nil {
		em = b.newEmitter()
	}
	b.blocks = append(b.blocks, engine.Block{Pos: b.cursor, Dir: d, Emitter: em})
	b.flags = append(b.flags, blockFlags{})
	b.logger.Debug("block created", "cell", b.cursor, "dir", d, "blocks", len(b.blocks))
}

// RemoveLast removes the most recently created block.
// Returns false if the board has no blocks.
func (b *Board) RemoveLast() bool {
	if len(b.blocks) == 0 {
		return false
	}
	b.removeAt(len(b.blocks) - 1)
	return true
}

// RemoveAtCursor removes every block under the cursor and returns how many
// were removed.
func (b *Board) RemoveAtCursor() int {
	removed := 0
	for k := len(b.blocks) - 1; k >= 0; k-- {
		if b.blocks[k].Pos == b.cursor {
			b.removeAt(k)
			removed++
		}
	}
	return removed
}

// Clear removes all blocks and walls.
func (b *Board) Clear() {
	for len(b.blocks) > 0 {
		b.removeAt(len(b.blocks) - 1)
	}
	b.walls.Clear()
	b.logger.Debug("board cleared")
}

func (b *Board) removeAt(k int) {
	blk := b.blocks[k]
	if c, ok := blk.Emitter.(io.Closer); ok {
		if err := c.Close(); err != nil {
			b.logger.Warn("closing emitter", "error", err)
		}
	}
	b.blocks = append(b.blocks[:k], b.blocks[k+1:]...)
	b.flags = append(b.flags[:k], b.flags[k+1:]...)
	b.logger.Debug("block removed", "cell", blk.Pos, "blocks", len(b.blocks))
}

// Apply performs an operator command. Every command succeeds; commands with
// nothing to act on are no-ops.
func (b *Board) Apply(a core.Action) {
	switch a {
	case core.ActionCursorUp:
		b.MoveCursor(engine.North)
	case core.ActionCursorDown:
		b.MoveCursor(engine.South)
	case core.ActionCursorLeft:
		b.MoveCursor(engine.West)
	case core.ActionCursorRight:
		b.MoveCursor(engine.East)
	case core.ActionSpawnNorth:
		b.Spawn(engine.North)
	case core.ActionSpawnSouth:
		b.Spawn(engine.South)
	case core.ActionSpawnEast:
		b.Spawn(engine.East)
	case core.ActionSpawnWest:
		b.Spawn(engine.West)
	case core.ActionWallTop:
		b.ToggleWall(engine.North)
	case core.ActionWallBottom:
		b.ToggleWall(engine.South)
	case core.ActionWallLeft:
		b.ToggleWall(engine.West)
	case core.ActionWallRight:
		b.ToggleWall(engine.East)
	case core.ActionRemoveLast:
		b.RemoveLast()
	case core.ActionRemoveHere:
		b.RemoveAtCursor()
	case core.ActionClear:
		b.Clear()
	case core.ActionPause:
		b.SetPaused(!b.paused)
	}
}
