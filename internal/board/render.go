package board

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-bounce/internal/core"
	"github.com/vovakirdan/tui-bounce/internal/engine"
)

// Grid layout on screen: every cell is cellW characters wide and one row
// high, separated by one-character lattice lines that carry the walls.
const (
	cellW     = 3
	pitchW    = cellW + 1
	hudHeight = 1
)

// GridSize returns the screen size in characters needed to draw a board of
// the given dimensions, HUD included.
func GridSize(cols, rows int) (w, h int) {
	return cols*pitchW + 1, rows*2 + 1 + hudHeight
}

var arrows = map[engine.Dir]rune{
	engine.North: '▲',
	engine.East:  '▶',
	engine.South: '▼',
	engine.West:  '◀',
}

// Render draws the board into dst. The screen is cleared first.
func (b *Board) Render(dst *core.Screen) {
	dst.Clear()
	f := b.Frame()

	renderHUD(dst, f)

	w, h := GridSize(f.Cols, f.Rows)
	if dst.Width() < w || dst.Height() < h {
		renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", w, h))
		return
	}

	offX := (dst.Width() - w) / 2
	offY := hudHeight
	for _, cv := range f.Cells {
		drawCell(dst, offX, offY, cv)
	}
	for _, cv := range f.Cells {
		drawWalls(dst, offX, offY, f, cv)
	}

	if f.Paused {
		dst.DrawTextColored(offX, offY+h-hudHeight, " PAUSED ", core.ColorYellow)
	}
}

func renderHUD(dst *core.Screen, f Frame) {
	dst.DrawText(0, 0, hudLine(f))
}

func hudLine(f Frame) string {
	cur := f.Cells[f.Cursor]
	return fmt.Sprintf(" Bounce | Tick: %d  Blocks: %d  Walls: %d  Cursor: %d,%d %s",
		f.Tick, f.BlockCount, f.WallCount, cur.Col, cur.Row, cur.Note)
}

// drawCell draws the interior of one cell.
func drawCell(dst *core.Screen, offX, offY int, cv CellView) {
	x := offX + cv.Col*pitchW + 1
	y := offY + cv.Row*2 + 1

	glyph, color := '·', core.ColorDim
	switch {
	case cv.Blocks > 0 && cv.Duplicate:
		glyph, color = arrows[cv.Dir], core.ColorMagenta
	case cv.Blocks > 0 && cv.Bounced:
		glyph, color = arrows[cv.Dir], core.ColorBrightWhite
	case cv.Blocks > 0:
		glyph, color = arrows[cv.Dir], core.ColorRed
	}

	dst.SetColored(x+1, y, glyph, color)
	if cv.Cursor {
		dst.SetColored(x, y, '[', core.ColorBlue)
		dst.SetColored(x+2, y, ']', core.ColorBlue)
	}
}

// drawWalls draws the walls on the top and left sides of a cell, plus the
// bottom and right sides for cells on the last row or column.
func drawWalls(dst *core.Screen, offX, offY int, f Frame, cv CellView) {
	left := offX + cv.Col*pitchW
	top := offY + cv.Row*2

	if cv.Walls[engine.North] {
		drawHWall(dst, left, top)
	}
	if cv.Walls[engine.West] {
		dst.SetColored(left, top+1, '┃', core.ColorYellow)
	}
	if cv.Row == f.Rows-1 && cv.Walls[engine.South] {
		drawHWall(dst, left, top+2)
	}
	if cv.Col == f.Cols-1 && cv.Walls[engine.East] {
		dst.SetColored(left+pitchW, top+1, '┃', core.ColorYellow)
	}
}

func drawHWall(dst *core.Screen, left, y int) {
	for dx := 1; dx <= cellW; dx++ {
		dst.SetColored(left+dx, y, '━', core.ColorYellow)
	}
}

// renderOverlay draws a centered two-line message box.
func renderOverlay(dst *core.Screen, line1, line2 string) {
	width := max(len(line1), len(line2)) + 4
	y := (dst.Height() - 5) / 2
	x := (dst.Width() - width) / 2

	border := "+" + strings.Repeat("-", width-2) + "+"
	blank := "|" + strings.Repeat(" ", width-2) + "|"
	dst.DrawText(x, y, border)
	for i := 1; i <= 3; i++ {
		dst.DrawText(x, y+i, blank)
	}
	dst.DrawText(x, y+4, border)
	dst.DrawTextCentered(y+1, line1)
	dst.DrawTextCentered(y+3, line2)
}

// RenderText renders the board as plain text, one line per screen row with
// trailing spaces trimmed. The first line is the full status line.
func (b *Board) RenderText() string {
	w, h := GridSize(b.torus.Cols, b.torus.Rows)
	screen := core.NewScreen(w, h)
	b.Render(screen)

	lines := strings.Split(screen.String(), "\n")
	lines[0] = hudLine(b.Frame())
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return strings.Join(lines, "\n")
}
