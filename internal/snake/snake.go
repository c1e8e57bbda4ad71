package snake

// Snake is the ordered body, head first, with its facing direction.
// Segments live in a ring buffer: moving writes one slot and never
// allocates unless the body outgrows the buffer.
type Snake struct {
	buf  []Cell
	head int // index of the head in buf
	n    int // number of segments
	dir  Direction
}

// NewSnake creates a one-segment snake at start facing right.
func NewSnake(start Cell) *Snake {
	s := &Snake{
		buf: make([]Cell, 16),
		n:   1,
		dir: DirRight,
	}
	s.buf[0] = start
	return s
}

// Head returns the head cell.
func (s *Snake) Head() Cell {
	return s.buf[s.head]
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return s.n
}

// Direction returns the current facing direction.
func (s *Snake) Direction() Direction {
	return s.dir
}

// Segment returns the i-th segment, 0 being the head.
func (s *Snake) Segment(i int) Cell {
	return s.buf[(s.head+i)%len(s.buf)]
}

// Segments returns a copy of the body, head first.
func (s *Snake) Segments() []Cell {
	out := make([]Cell, s.n)
	for i := range out {
		out[i] = s.Segment(i)
	}
	return out
}

// Contains reports whether any segment occupies c.
func (s *Snake) Contains(c Cell) bool {
	for i := 0; i < s.n; i++ {
		if s.Segment(i) == c {
			return true
		}
	}
	return false
}

// Turn sets the facing direction. A direct reversal is ignored while the
// body is longer than one segment; Turn reports whether d was accepted.
func (s *Snake) Turn(d Direction) bool {
	if s.n > 1 && d == s.dir.Opposite() {
		return false
	}
	s.dir = d
	return true
}

// Move prepends head+direction. Unless grow is set the tail is dropped,
// so the length only changes when growing.
func (s *Snake) Move(grow bool) {
	next := s.Head().Step(s.dir)
	if grow && s.n == len(s.buf) {
		s.realloc(2 * len(s.buf))
	}
	s.head = (s.head - 1 + len(s.buf)) % len(s.buf)
	s.buf[s.head] = next
	if grow {
		s.n++
	}
}

// realloc copies the body into a buffer of the given size, head at index 0.
func (s *Snake) realloc(size int) {
	buf := make([]Cell, size)
	for i := 0; i < s.n; i++ {
		buf[i] = s.Segment(i)
	}
	s.buf = buf
	s.head = 0
}

// CheckCollision reports whether the head is outside the width×height grid
// or overlaps another segment.
func (s *Snake) CheckCollision(width, height int) bool {
	h := s.Head()
	if !h.In(width, height) {
		return true
	}
	for i := 1; i < s.n; i++ {
		if s.Segment(i) == h {
			return true
		}
	}
	return false
}
