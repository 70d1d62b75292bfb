package mines

// Cell is a field coordinate. The origin is the top-left corner of the
// field, x grows to the right and y grows downward.
type Cell struct {
	X, Y int
}

// cellSet tracks membership of cells by value. Mines, flags and closed
// cells are each one of these.
type cellSet map[Cell]struct{}

func (s cellSet) add(c Cell) {
	s[c] = struct{}{}
}

func (s cellSet) remove(c Cell) {
	delete(s, c)
}

func (s cellSet) has(c Cell) bool {
	_, ok := s[c]
	return ok
}
