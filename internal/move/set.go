package move

// Set is an insertion-ordered set of moves. Adding a move that is already
// present is a no-op.
type Set struct {
	order []Move
	index map[Move]struct{}
}

// NewSet creates a set holding moves.
func NewSet(moves ...Move) *Set {
	s := &Set{index: make(map[Move]struct{}, len(moves))}
	for _, m := range moves {
		s.Add(m)
	}
	return s
}

// Add inserts m and reports whether it was new.
func (s *Set) Add(m Move) bool {
	if _, ok := s.index[m]; ok {
		return false
	}
	s.index[m] = struct{}{}
	s.order = append(s.order, m)
	return true
}

// Contains reports whether m is in the set.
func (s *Set) Contains(m Move) bool {
	_, ok := s.index[m]
	return ok
}

// Len returns the number of moves.
func (s *Set) Len() int { return len(s.order) }

// IsEmpty returns true if the set holds no moves.
func (s *Set) IsEmpty() bool { return len(s.order) == 0 }

// Moves returns a copy of the moves in insertion order.
func (s *Set) Moves() []Move {
	return append([]Move(nil), s.order...)
}

// OnlyPass returns true if the single member is a pass.
func (s *Set) OnlyPass() bool {
	return len(s.order) == 1 && s.order[0].Kind == KindPass
}
