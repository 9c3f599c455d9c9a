package engine

import "slices"

// Result describes one simulation tick.
// Next, Bounced and Duplicate are indexed like the input generation.
type Result struct {
	Next           []Block
	Bounced        []bool // Block reversed this tick
	Duplicate      []bool // Block landed on a cell claimed by another block
	DuplicateCells []int  // Distinct cells claimed by two or more blocks, ascending
}

// BounceCount returns how many blocks reversed.
func (r Result) BounceCount() int {
	n := 0
	for _, b := range r.Bounced {
		if b {
			n++
		}
	}
	return n
}

// Step computes the next generation from gen.
//
// Every block is advanced against the same pre-tick snapshot: a block collides
// when a wall sits on its leading side or when another block currently
// occupies the cell ahead. A colliding block reverses and steps one cell the
// other way instead of staying put. gen is never modified.
//
// After all next positions are known, every block sharing its next position
// with at least one other block is flagged as a duplicate arrival.
func Step(gen []Block, walls *Walls) Result {
	t := walls.Torus()

	occupied := make(map[int]int, len(gen))
	for _, b := range gen {
		t.check(b.Pos)
		occupied[b.Pos]++
	}

	res := Result{
		Next:      make([]Block, len(gen)),
		Bounced:   make([]bool, len(gen)),
		Duplicate: make([]bool, len(gen)),
	}

	for k, b := range gen {
		ahead := t.Neighbor(b.Pos, b.Dir)
		collided := walls.Has(b.Pos, b.Dir) || occupiedByOther(occupied, ahead, b.Pos)
		if collided {
			back := b.Dir.Opposite()
			res.Next[k] = b.Moved(t.Neighbor(b.Pos, back), back)
			res.Bounced[k] = true
			continue
		}
		res.Next[k] = b.Moved(ahead, b.Dir)
	}

	arrivals := make(map[int]int, len(res.Next))
	for _, b := range res.Next {
		arrivals[b.Pos]++
	}
	for k, b := range res.Next {
		if arrivals[b.Pos] > 1 {
			res.Duplicate[k] = true
		}
	}
	for pos, n := range arrivals {
		if n > 1 {
			res.DuplicateCells = append(res.DuplicateCells, pos)
		}
	}
	slices.Sort(res.DuplicateCells)

	return res
}

// occupiedByOther reports whether cell holds a block other than the one at self.
func occupiedByOther(occupied map[int]int, cell, self int) bool {
	n := occupied[cell]
	if cell == self {
		// Only possible on a one-cell-wide axis: the block sees itself ahead.
		n--
	}
	return n > 0
}
