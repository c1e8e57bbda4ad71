package snake

import "math/rand"

// WallSet holds obstacle cells in placement order.
type WallSet struct {
	cells []Cell
	index map[Cell]struct{}
}

// NewWallSet returns an empty wall set.
func NewWallSet() *WallSet {
	return &WallSet{index: make(map[Cell]struct{})}
}

// Add appends c unless it is already a wall.
func (w *WallSet) Add(c Cell) {
	if w.Has(c) {
		return
	}
	w.cells = append(w.cells, c)
	w.index[c] = struct{}{}
}

// Has reports whether c is a wall. A nil set has no walls.
func (w *WallSet) Has(c Cell) bool {
	if w == nil {
		return false
	}
	_, ok := w.index[c]
	return ok
}

// Len returns the number of walls.
func (w *WallSet) Len() int {
	if w == nil {
		return 0
	}
	return len(w.cells)
}

// Cells returns the walls in placement order. The slice must not be modified.
func (w *WallSet) Cells() []Cell {
	if w == nil {
		return nil
	}
	return w.cells
}

// PlaceWalls draws count walls one at a time from the cells left free by the
// snake and the walls placed so far. Fewer walls are placed when the grid
// fills up.
func PlaceWalls(rng *rand.Rand, occ *Occupancy, s *Snake, count int) *WallSet {
	walls := NewWallSet()
	occ.Rebuild(s, nil)
	for i := 0; i < count; i++ {
		c, ok := FreeCell(rng, occ)
		if !ok {
			break
		}
		walls.Add(c)
		occ.Mark(c)
	}
	return walls
}
