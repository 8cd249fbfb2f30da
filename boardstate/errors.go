package boardstate

import (
	"fmt"

	"github.com/ninebygo/engine/geometry"
	"github.com/pkg/errors"
)

// Reason classifies why a placement was rejected. PlaceStone reports a
// rejection as a false return plus an *IllegalMoveError carrying a Reason,
// so callers (and tests) can distinguish the cause without PlaceStone
// raising an exceptional condition, mirroring game/wq/errors.go's moveError.
type Reason int

const (
	// ReasonNone is the zero value: the move was legal.
	ReasonNone Reason = iota
	ReasonOffGrid
	ReasonOccupied
	ReasonSuicide
	ReasonKo
)

func (r Reason) String() string {
	switch r {
	case ReasonOffGrid:
		return "off-grid"
	case ReasonOccupied:
		return "occupied"
	case ReasonSuicide:
		return "suicide"
	case ReasonKo:
		return "ko violation"
	default:
		return "legal"
	}
}

// IllegalMoveError reports why PlaceStone refused a move. It is never
// panicked; it exists for callers that want the reason behind a `false`
// return (e.g. logging in package bot).
type IllegalMoveError struct {
	Color    geometry.Color
	Position geometry.Position
	Reason   Reason
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("illegal move for %v at %+v: %s", e.Color, e.Position, e.Reason)
}

func illegalMove(color geometry.Color, pos geometry.Position, reason Reason) error {
	return errors.WithStack(&IllegalMoveError{
		Color:    color,
		Position: pos,
		Reason:   reason,
	})
}
