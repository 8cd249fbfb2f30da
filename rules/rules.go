// Package rules implements derived legality and shape predicates built on
// top of package boardstate: move validity, atari, eye detection, and
// self-capture.
//
// Grounded on game/wq/wq.go's check/nolib (suicide detection) and
// original_source/go/go.h's is_point_an_eye (the center-eye vs
// side/corner-eye split).
package rules

import (
	"errors"

	"github.com/ninebygo/engine/boardstate"
	"github.com/ninebygo/engine/geometry"
)

// IsValidMove reports whether placing a stone of color at pos would
// succeed, without mutating board.
func IsValidMove(board *boardstate.Board, pos geometry.Position, color geometry.Color) bool {
	if !pos.Valid() || board.Get(pos) != geometry.None {
		return false
	}
	work := board.Copy()
	ok, _ := work.PlaceStone(color, pos)
	return ok
}

// IsInAtari reports whether any active group of color has exactly one
// liberty.
func IsInAtari(board *boardstate.Board, color geometry.Color) bool {
	for _, g := range board.ActiveGroupsOf(color) {
		if g.InAtari() {
			return true
		}
	}
	return false
}

// IsMoveSelfCapture reports whether placing a stone of color at pos would
// be rejected specifically as a suicide (a zero-liberty group with no
// compensating capture). It returns false for any other kind of illegal
// move (off-grid, occupied) since those are not "self capture".
func IsMoveSelfCapture(board *boardstate.Board, pos geometry.Position, color geometry.Color) bool {
	if !pos.Valid() || board.Get(pos) != geometry.None {
		return false
	}
	work := board.Copy()
	ok, err := work.PlaceStone(color, pos)
	if ok || err == nil {
		return false
	}
	var im *boardstate.IllegalMoveError
	if errors.As(err, &im) {
		return im.Reason == boardstate.ReasonSuicide
	}
	return false
}

// IsPointAnEye reports whether pos is an eye for color: pos is empty,
// every on-grid orthogonal neighbour is a stone of color, and the
// diagonals satisfy the center/side/corner rule.
//
// A "center eye" is one with all four diagonals on-grid; it requires at
// least three of the four to be color. A side or corner eye (one or more
// diagonals off-grid) requires every on-grid diagonal to be color.
func IsPointAnEye(board *boardstate.Board, pos geometry.Position, color geometry.Color) bool {
	if !pos.Valid() || board.Get(pos) != geometry.None {
		return false
	}

	for _, n := range pos.Neighbors() {
		if !n.Valid() {
			continue
		}
		if board.Get(n) != color {
			return false
		}
	}

	friendlyDiagonals := 0
	onGridDiagonals := 0
	for _, c := range pos.Corners() {
		if !c.Valid() {
			continue
		}
		onGridDiagonals++
		if board.Get(c) == color {
			friendlyDiagonals++
		}
	}

	isCenterEye := onGridDiagonals == 4
	if isCenterEye {
		return friendlyDiagonals >= 3
	}
	return friendlyDiagonals == onGridDiagonals
}
