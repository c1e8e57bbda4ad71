package snake

// NextStep returns the first move of a shortest path from start to target on
// a width×height grid with 4-directional moves, treating walls as blocked.
// The snake body is not treated as an obstacle.
//
// Neighbours are expanded Up, Right, Down, Left, which fixes the tie-break
// between equally short paths. ok is false when target is unreachable or
// equals start.
func NextStep(start, target Cell, width, height int, walls *WallSet) (dir Direction, ok bool) {
	if start == target || !start.In(width, height) || !target.In(width, height) {
		return 0, false
	}

	// first[i] holds the first move taken from start to reach cell i;
	// -1 marks unvisited cells.
	first := make([]Direction, width*height)
	for i := range first {
		first[i] = -1
	}
	idx := func(c Cell) int { return c.Y*width + c.X }

	queue := make([]Cell, 0, width*height)
	queue = append(queue, start)
	first[idx(start)] = DirUp // any non-negative marker; start is never reported

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == target {
			return first[idx(cur)], true
		}
		for _, d := range directions {
			next := cur.Step(d)
			if !next.In(width, height) || first[idx(next)] >= 0 || walls.Has(next) {
				continue
			}
			if cur == start {
				first[idx(next)] = d
			} else {
				first[idx(next)] = first[idx(cur)]
			}
			queue = append(queue, next)
		}
	}
	return 0, false
}
