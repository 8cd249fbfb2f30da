package geometry

// PositionSet is a set of Positions. Iteration order is unspecified.
//
// Grounded on original_source/go/go.h's Positions (a set<Pos> with
// +=/-=/count/getAny/union operators); expressed here as a Go map since
// Position is a small comparable value type.
type PositionSet map[Position]struct{}

// NewPositionSet builds a set from the given positions.
func NewPositionSet(ps ...Position) PositionSet {
	s := make(PositionSet, len(ps))
	for _, p := range ps {
		s[p] = struct{}{}
	}
	return s
}

// Add inserts p into the set.
func (s PositionSet) Add(p Position) { s[p] = struct{}{} }

// Remove deletes p from the set, if present.
func (s PositionSet) Remove(p Position) { delete(s, p) }

// Has reports whether p is a member.
func (s PositionSet) Has(p Position) bool {
	_, ok := s[p]
	return ok
}

// Len returns the number of elements.
func (s PositionSet) Len() int { return len(s) }

// Slice returns the elements as a slice. The order is unspecified.
func (s PositionSet) Slice() []Position {
	out := make([]Position, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	return out
}

// Any returns an arbitrary element of the set. Panics if the set is empty.
func (s PositionSet) Any() Position {
	for p := range s {
		return p
	}
	panic("geometry: Any called on empty PositionSet")
}

// Clone returns an independent copy of s.
func (s PositionSet) Clone() PositionSet {
	out := make(PositionSet, len(s))
	for p := range s {
		out[p] = struct{}{}
	}
	return out
}

// Union returns a new set containing every element of s and other.
func (s PositionSet) Union(other PositionSet) PositionSet {
	out := s.Clone()
	for p := range other {
		out[p] = struct{}{}
	}
	return out
}

// RemoveAll removes every position in ps from s.
func (s PositionSet) RemoveAll(ps []Position) {
	for _, p := range ps {
		delete(s, p)
	}
}
