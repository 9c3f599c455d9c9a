package board

import (
	"github.com/vovakirdan/tui-bounce/internal/engine"
	"github.com/vovakirdan/tui-bounce/internal/music"
)

// CellView is everything a renderer needs to draw one cell.
type CellView struct {
	Index     int
	Col, Row  int
	Note      music.Note
	Blocks    int        // Number of blocks on the cell
	Dir       engine.Dir // Direction of the first block on the cell
	Bounced   bool       // A block on the cell reversed this tick
	Duplicate bool       // Two or more blocks arrived here this tick
	Cursor    bool       // Cursor is on the cell and visible
	Walls     [4]bool    // Indexed by engine.Dir
}

// Frame is a read-only view of the board for one tick.
type Frame struct {
	Cols, Rows int
	Tick       uint64
	Paused     bool
	BlockCount int
	WallCount  int
	Cursor     int
	Cells      []CellView

	torus engine.Torus
}

// Cell returns the view of the cell at col, row.
func (f Frame) Cell(col, row int) CellView {
	return f.Cells[f.torus.Index(col, row)]
}

// Frame builds the renderer view of the current state.
func (b *Board) Frame() Frame {
	f := Frame{
		Cols:       b.torus.Cols,
		Rows:       b.torus.Rows,
		Tick:       b.tick,
		Paused:     b.paused,
		BlockCount: len(b.blocks),
		WallCount:  b.walls.Count(),
		Cursor:     b.cursor,
		Cells:      make([]CellView, b.torus.Len()),
		torus:      b.torus,
	}

	for i := range f.Cells {
		col, row := b.torus.Coord(i)
		f.Cells[i] = CellView{
			Index: i,
			Col:   col,
			Row:   row,
			Note:  b.tuning.NoteAt(col, row),
			Walls: b.walls.Sides(i),
		}
	}
	if b.CursorVisible() {
		f.Cells[b.cursor].Cursor = true
	}

	for k, blk := range b.blocks {
		cv := &f.Cells[blk.Pos]
		if cv.Blocks == 0 {
			cv.Dir = blk.Dir
		}
		cv.Blocks++
		cv.Bounced = cv.Bounced || b.flags[k].bounced
		cv.Duplicate = cv.Duplicate || b.flags[k].duplicate
	}

	return f
}
