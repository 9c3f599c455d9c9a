package engine

import "github.com/vovakirdan/tui-bounce/internal/music"

// Emitter is the sound capability a block carries. The engine never calls it;
// the board sounds it for bounce and duplicate-arrival events.
type Emitter interface {
	// Play sounds the pitch class at the given octave, one octave higher
	// when transposeUp is set. It must not block.
	Play(pitch music.PitchClass, octave int, transposeUp bool)
}

// Block is a moving token on the grid.
type Block struct {
	Pos     int     // Cell index, the only record of where the block is
	Dir     Dir     // Direction of travel
	Emitter Emitter // Owned by this block until it is removed
}

// Moved returns a copy of the block at a new position and direction,
// keeping its emitter.
func (b Block) Moved(pos int, dir Dir) Block {
	return Block{Pos: pos, Dir: dir, Emitter: b.Emitter}
}
