package placement

import "image"

// Set holds the committed squares of the current image in insertion order.
// Members never overlap each other. The zero value is an empty, usable set.
// No synchronization: the set is only touched from the UI tick.
type Set struct {
	squares []Square
}

// NewSet returns an empty set.
func NewSet() *Set { return &Set{} }

// TryAdd commits candidate unless it overlaps a member. Rejection is silent;
// the return value only tells the caller whether a redraw is due.
func (s *Set) TryAdd(candidate Square) bool {
	if s == nil {
		return false
	}
	for _, sq := range s.squares {
		if Overlaps(candidate, sq) {
			return false
		}
	}
	s.squares = append(s.squares, candidate)
	return true
}

// RemoveAt drops the first square (in insertion order) containing p.
func (s *Set) RemoveAt(p image.Point) bool {
	if s == nil {
		return false
	}
	for i, sq := range s.squares {
		if sq.Contains(p) {
			s.squares = append(s.squares[:i], s.squares[i+1:]...)
			return true
		}
	}
	return false
}

// Squares returns a copy of the members in insertion order.
func (s *Set) Squares() []Square {
	if s == nil || len(s.squares) == 0 {
		return nil
	}
	out := make([]Square, len(s.squares))
	copy(out, s.squares)
	return out
}

func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.squares)
}

// Clear empties the set, keeping the backing array.
func (s *Set) Clear() {
	if s == nil {
		return
	}
	s.squares = s.squares[:0]
}
