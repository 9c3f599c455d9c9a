package engine

// Walls holds the four wall flags of every cell.
//
// A wall between two adjacent cells is stored on both of them: the right flag
// of a cell always equals the left flag of its east neighbour, and the bottom
// flag equals the top flag of the south neighbour. Toggle is the only mutator
// and keeps both halves in step.
type Walls struct {
	torus Torus
	sides [][4]bool
}

// NewWalls creates an empty wall field for the torus.
func NewWalls(t Torus) *Walls {
	return &Walls{
		torus: t,
		sides: make([][4]bool, t.Len()),
	}
}

// Torus returns the grid the field is laid over.
func (w *Walls) Torus() Torus {
	return w.torus
}

// Toggle flips the wall on the given side of cell i together with the
// matching side of the neighbouring cell.
func (w *Walls) Toggle(i int, side Dir) {
	j := w.torus.Neighbor(i, side)
	opp := side.Opposite()
	w.sides[i][side] = !w.sides[i][side]
	w.sides[j][opp] = !w.sides[j][opp]
}

// Has reports whether cell i has a wall on the given side.
func (w *Walls) Has(i int, side Dir) bool {
	w.torus.check(i)
	return w.sides[i][side]
}

// Sides returns a copy of the wall flags of cell i, indexed by Dir.
func (w *Walls) Sides(i int) [4]bool {
	w.torus.check(i)
	return w.sides[i]
}

// Count returns the number of distinct walls (each shared edge counted once).
func (w *Walls) Count() int {
	n := 0
	for _, s := range w.sides {
		// Count only the south and east halves; the other halves mirror them.
		if s[South] {
			n++
		}
		if s[East] {
			n++
		}
	}
	return n
}

// Clear removes every wall.
func (w *Walls) Clear() {
	for i := range w.sides {
		w.sides[i] = [4]bool{}
	}
}
