package engine

import "fmt"

// Torus maps linear cell indices onto a cols x rows grid that wraps in both
// axes. Cells are stored in row-major order: index = row*Cols + col.
// All wrap-around arithmetic on cell indices lives here.
type Torus struct {
	Cols int
	Rows int
}

// NewTorus creates a torus of the given size. Both dimensions must be positive.
func NewTorus(cols, rows int) Torus {
	if cols <= 0 || rows <= 0 {
		panic(fmt.Sprintf("engine: invalid torus size %dx%d", cols, rows))
	}
	return Torus{Cols: cols, Rows: rows}
}

// Len returns the number of cells.
func (t Torus) Len() int {
	return t.Cols * t.Rows
}

// Contains reports whether i is a valid cell index.
func (t Torus) Contains(i int) bool {
	return i >= 0 && i < t.Len()
}

// Index converts a column/row pair to a cell index.
func (t Torus) Index(col, row int) int {
	if col < 0 || col >= t.Cols || row < 0 || row >= t.Rows {
		panic(fmt.Sprintf("engine: cell (%d,%d) outside %dx%d grid", col, row, t.Cols, t.Rows))
	}
	return row*t.Cols + col
}

// Coord converts a cell index to its column and row.
func (t Torus) Coord(i int) (col, row int) {
	t.check(i)
	return i % t.Cols, i / t.Cols
}

// North returns the cell above i, wrapping to the bottom row.
func (t Torus) North(i int) int {
	t.check(i)
	n := t.Len()
	return (n + i - t.Cols) % n
}

// South returns the cell below i, wrapping to the top row.
func (t Torus) South(i int) int {
	t.check(i)
	return (i + t.Cols) % t.Len()
}

// West returns the cell left of i, wrapping within the same row.
func (t Torus) West(i int) int {
	t.check(i)
	col := i % t.Cols
	return (t.Cols+col-1)%t.Cols + (i - col)
}

// East returns the cell right of i, wrapping within the same row.
func (t Torus) East(i int) int {
	t.check(i)
	col := i % t.Cols
	return (col+1)%t.Cols + (i - col)
}

// Neighbor returns the adjacent cell in direction d.
func (t Torus) Neighbor(i int, d Dir) int {
	switch d {
	case North:
		return t.North(i)
	case East:
		return t.East(i)
	case South:
		return t.South(i)
	case West:
		return t.West(i)
	default:
		panic(fmt.Sprintf("engine: invalid direction %d", d))
	}
}

func (t Torus) check(i int) {
	if !t.Contains(i) {
		panic(fmt.Sprintf("engine: cell index %d outside grid of %d cells", i, t.Len()))
	}
}
