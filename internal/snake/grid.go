package snake

import "math/rand"

// Occupancy marks which cells of a width×height grid are taken by the snake
// or walls. The game rebuilds it after every move.
type Occupancy struct {
	width, height int
	cells         []bool
	used          int
}

// NewOccupancy returns an empty grid.
func NewOccupancy(width, height int) *Occupancy {
	return &Occupancy{
		width:  width,
		height: height,
		cells:  make([]bool, width*height),
	}
}

// Width returns the grid width.
func (o *Occupancy) Width() int { return o.width }

// Height returns the grid height.
func (o *Occupancy) Height() int { return o.height }

// Reset clears every cell.
func (o *Occupancy) Reset() {
	clear(o.cells)
	o.used = 0
}

// Mark flags c as occupied. Cells outside the grid are ignored.
func (o *Occupancy) Mark(c Cell) {
	if !c.In(o.width, o.height) {
		return
	}
	i := c.Y*o.width + c.X
	if !o.cells[i] {
		o.cells[i] = true
		o.used++
	}
}

// Occupied reports whether c is taken. Cells outside the grid are not.
func (o *Occupancy) Occupied(c Cell) bool {
	if !c.In(o.width, o.height) {
		return false
	}
	return o.cells[c.Y*o.width+c.X]
}

// FreeCount returns the number of unoccupied cells.
func (o *Occupancy) FreeCount() int {
	return len(o.cells) - o.used
}

// MarkSnake flags every in-bounds segment.
func (o *Occupancy) MarkSnake(s *Snake) {
	for i := 0; i < s.Len(); i++ {
		o.Mark(s.Segment(i))
	}
}

// MarkWalls flags every wall cell.
func (o *Occupancy) MarkWalls(w *WallSet) {
	for _, c := range w.Cells() {
		o.Mark(c)
	}
}

// Rebuild resets the grid and marks the snake and walls.
func (o *Occupancy) Rebuild(s *Snake, w *WallSet) {
	o.Reset()
	if s != nil {
		o.MarkSnake(s)
	}
	if w != nil {
		o.MarkWalls(w)
	}
}

// isFree reports whether c is neither occupied nor excluded.
func (o *Occupancy) isFree(c Cell, exclude []Cell) bool {
	if o.Occupied(c) {
		return false
	}
	for _, e := range exclude {
		if e == c {
			return false
		}
	}
	return true
}

// FreeCell picks a uniformly random cell that is neither occupied nor in
// exclude. It counts the free cells, draws an index and walks the grid in
// row-major order to find it, so a given rng state always yields the same
// cell. ok is false when no cell is free.
func FreeCell(rng *rand.Rand, occ *Occupancy, exclude ...Cell) (c Cell, ok bool) {
	free := 0
	for y := 0; y < occ.height; y++ {
		for x := 0; x < occ.width; x++ {
			if occ.isFree(Cell{x, y}, exclude) {
				free++
			}
		}
	}
	if free == 0 {
		return Cell{}, false
	}

	pick := rng.Intn(free)
	for y := 0; y < occ.height; y++ {
		for x := 0; x < occ.width; x++ {
			c := Cell{x, y}
			if !occ.isFree(c, exclude) {
				continue
			}
			if pick == 0 {
				return c, true
			}
			pick--
		}
	}
	return Cell{}, false
}

// SampleFreeCell is the rejection-sampling variant of FreeCell: it draws
// random cells until one is free, giving up after maxTries draws.
func SampleFreeCell(rng *rand.Rand, occ *Occupancy, maxTries int, exclude ...Cell) (c Cell, ok bool) {
	if occ.FreeCount() == 0 {
		return Cell{}, false
	}
	for i := 0; i < maxTries; i++ {
		c := Cell{X: rng.Intn(occ.width), Y: rng.Intn(occ.height)}
		if occ.isFree(c, exclude) {
			return c, true
		}
	}
	return Cell{}, false
}
