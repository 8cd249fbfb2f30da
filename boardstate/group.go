package boardstate

import "github.com/ninebygo/engine/geometry"

// groupID addresses a Group inside a Board's arena of active groups. 0 is
// reserved to mean "empty cell".
//
// Replacing the original's shared mutable group objects with an arena of
// groups addressed by a small integer id, with the board grid holding
// either 0 (empty) or a group id, makes Board.Copy a cheap, acyclic
// operation. That is exactly what Group/Board implement here, informed by
// original_source/go/go.h's explicit shared_ptr<_Group> grid + activeGroups
// set (the model this redesign replaces).
type groupID int32

// Group is one connected component of same-colour stones, plus its
// liberties.
type Group struct {
	ID        groupID
	Color     geometry.Color
	Stones    geometry.PositionSet
	Liberties geometry.PositionSet
}

func newGroup(id groupID, color geometry.Color) *Group {
	return &Group{
		ID:        id,
		Color:     color,
		Stones:    geometry.NewPositionSet(),
		Liberties: geometry.NewPositionSet(),
	}
}

// clone returns an independent copy of g.
func (g *Group) clone() *Group {
	return &Group{
		ID:        g.ID,
		Color:     g.Color,
		Stones:    g.Stones.Clone(),
		Liberties: g.Liberties.Clone(),
	}
}

// NumLiberties returns the size of the liberty set.
func (g *Group) NumLiberties() int { return g.Liberties.Len() }

// InAtari reports whether g has exactly one liberty.
func (g *Group) InAtari() bool { return g.NumLiberties() == 1 }
