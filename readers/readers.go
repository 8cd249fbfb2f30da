// Package readers implements the tactical move generators built directly
// on top of boardstate and rules: capture, anti-capture, ladder, and
// anti-ladder.
//
// Grounded on original_source/go/go.h's find_capture_moves,
// find_anti_capture_moves, find_ladder_move (the shared recursive shape for
// both ladder directions), and find_anti_ladder_moves.
package readers

import (
	"sort"

	"github.com/ninebygo/engine/boardstate"
	"github.com/ninebygo/engine/geometry"
	"github.com/ninebygo/engine/rules"
)

func sortPositions(ps []geometry.Position) {
	sort.Slice(ps, func(i, j int) bool {
		if ps[i].Row != ps[j].Row {
			return ps[i].Row < ps[j].Row
		}
		return ps[i].Col < ps[j].Col
	})
}

// canonical picks a deterministic representative point for a group, so
// readers that must try "every group with N liberties" in some order do so
// reproducibly instead of following Go's randomized map iteration.
func canonical(g *boardstate.Group) geometry.Position {
	stones := g.Stones.Slice()
	sortPositions(stones)
	return stones[0]
}

func sortGroups(groups []*boardstate.Group) {
	sort.Slice(groups, func(i, j int) bool {
		a, b := canonical(groups[i]), canonical(groups[j])
		if a.Row != b.Row {
			return a.Row < b.Row
		}
		return a.Col < b.Col
	})
}

// Capture scans active enemy groups with exactly one liberty; each such
// liberty, unless placing there would be illegal (including a ko
// violation), is a capture move.
func Capture(board *boardstate.Board, color geometry.Color) []geometry.Position {
	seen := geometry.NewPositionSet()
	var moves []geometry.Position
	for _, g := range board.ActiveGroupsOf(color.Other()) {
		if !g.InAtari() {
			continue
		}
		esc := g.Liberties.Any()
		if seen.Has(esc) {
			continue
		}
		if rules.IsValidMove(board, esc, color) {
			seen.Add(esc)
			moves = append(moves, esc)
		}
	}
	sortPositions(moves)
	return moves
}

// AntiCapture scans friendly groups in atari. For each, the sole liberty is
// a candidate unless playing it would itself be self-capture, or (when
// canResign holds) a lookahead shows the friendly side remains in atari
// even after playing it — either case signals must-resign when canResign
// is set, or is simply skipped otherwise.
func AntiCapture(board *boardstate.Board, color geometry.Color, canResign bool) (moves []geometry.Position, mustResign bool) {
	seen := geometry.NewPositionSet()
	for _, g := range board.ActiveGroupsOf(color) {
		if !g.InAtari() {
			continue
		}
		esc := g.Liberties.Any()

		if rules.IsMoveSelfCapture(board, esc, color) {
			if canResign {
				return nil, true
			}
			continue
		}

		if canResign {
			work := board.Copy()
			if ok, err := work.PlaceStone(color, esc); ok && err == nil && rules.IsInAtari(work, color) {
				return nil, true
			}
		}

		if !seen.Has(esc) {
			seen.Add(esc)
			moves = append(moves, esc)
		}
	}
	sortPositions(moves)
	return moves, false
}

// Ladder attempts to find a move for color that forces the capture of an
// enemy two-liberty group within depth plies. ok is false when no such
// forcing sequence exists within the depth limit.
func Ladder(board *boardstate.Board, color geometry.Color, depth int) (move geometry.Position, ok bool) {
	if depth <= 0 {
		return geometry.Position{}, false
	}
	move, works := ladderPly(board, color, depth, 1)
	return move, works
}

// ladderPly is the recursive core shared by Ladder and AntiLadder. At ply 1
// it returns the move to play; at deeper plies the returned position is
// meaningless and only the boolean ("does the ladder still work for the
// hunter") matters to the caller.
func ladderPly(board *boardstate.Board, color geometry.Color, depth, ply int) (geometry.Position, bool) {
	if ply > depth {
		return geometry.Position{}, false
	}

	for _, g := range board.ActiveGroupsOf(color.Other()) {
		if g.InAtari() {
			return g.Liberties.Any(), true
		}
	}

	var hunted []*boardstate.Group
	for _, g := range board.ActiveGroupsOf(color.Other()) {
		if g.NumLiberties() == 2 {
			hunted = append(hunted, g)
		}
	}
	sortGroups(hunted)

	for _, g := range hunted {
		libs := g.Liberties.Slice()
		sortPositions(libs)
		for _, h := range libs {
			if !rules.IsValidMove(board, h, color) {
				continue
			}
			after := board.Copy()
			if ok, err := after.PlaceStone(color, h); !ok || err != nil {
				continue
			}
			if rules.IsInAtari(after, color) {
				continue
			}

			var ataris []*boardstate.Group
			for _, eg := range after.ActiveGroupsOf(color.Other()) {
				if eg.InAtari() {
					ataris = append(ataris, eg)
				}
			}
			if len(ataris) == 0 {
				// The forcing move did not actually produce an atari
				// anywhere among the enemy's groups; nothing to chase.
				continue
			}
			sortGroups(ataris)
			escape := ataris[0].Liberties.Any()

			forced := after.Copy()
			if ok, err := forced.PlaceStone(color.Other(), escape); !ok || err != nil {
				continue
			}

			if _, works := ladderPly(forced, color, depth, ply+1); works {
				if ply == 1 {
					return h, true
				}
				return geometry.Position{}, true
			}
		}
	}
	return geometry.Position{}, false
}

// AntiLadder runs the ladder reader from the opponent's perspective with
// depth antiLadderDepth; if no ladder threatens color's groups, it returns
// an empty list (nothing to prevent). Otherwise it scans every legal move
// for color that escapes the ladder, optionally narrowing to moves
// adjacent to an existing friendly stone (anti_ladder_nearest), and emits
// must-resign if canResign is set and nothing escapes.
func AntiLadder(board *boardstate.Board, color geometry.Color, antiLadderDepth int, nearest, canResign bool) (moves []geometry.Position, mustResign bool) {
	if antiLadderDepth <= 0 {
		return nil, false
	}

	opponent := color.Other()
	if _, threatens := ladderPly(board, opponent, antiLadderDepth, 1); !threatens {
		return nil, false
	}

	var candidates []geometry.Position
	for row := int8(0); row < geometry.Size; row++ {
		for col := int8(0); col < geometry.Size; col++ {
			p := geometry.Position{Row: row, Col: col}
			if !rules.IsValidMove(board, p, color) {
				continue
			}
			after := board.Copy()
			if ok, err := after.PlaceStone(color, p); !ok || err != nil {
				continue
			}
			if rules.IsInAtari(after, color) {
				continue
			}
			if _, stillThreatens := ladderPly(after, opponent, antiLadderDepth, 1); stillThreatens {
				continue
			}
			candidates = append(candidates, p)
		}
	}

	if nearest && len(candidates) > 0 {
		var filtered []geometry.Position
		for _, p := range candidates {
			for _, n := range p.Neighbors() {
				if n.Valid() && board.Get(n) == color {
					filtered = append(filtered, p)
					break
				}
			}
		}
		if len(filtered) > 0 {
			candidates = filtered
		}
	}

	if len(candidates) == 0 {
		if canResign {
			return nil, true
		}
		return nil, false
	}
	sortPositions(candidates)
	return candidates, false
}
