// Package search implements a depth-limited minimax reader that runs once
// the tactical readers have nothing decisive to offer.
//
// Grounded on original_source/go/go.h's find_minimax_moves (short-circuit
// ordering, running-bound pruning) and mcts/utils.go's style of picking
// among tied-best candidates with a float32 evaluation type.
package search

import (
	"sort"

	"github.com/chewxy/math32"
	"github.com/ninebygo/engine/boardstate"
	"github.com/ninebygo/engine/geometry"
	"github.com/ninebygo/engine/readers"
	"github.com/ninebygo/engine/rules"
)

// forcedWin and forcedLoss are the ±1000 sentinels assigned to positions
// the short-circuits resolve outright, expressed from whichever
// perspective a given check names.
const (
	forcedWin  float32 = 1000
	forcedLoss float32 = -1000
)

// rootFloor seeds the root candidate search one short of forcedLoss, the
// same way original_source/go/go.h's find_minimax_moves seeds its
// best-so-far bound at -999 rather than -1000: a candidate scoring exactly
// forcedLoss can never tie into the returned set, so a position where
// every root move is forced-loss yields nil instead of a losing move.
const rootFloor float32 = -999

// Minimax searches depth plies ahead for the best move(s) for color. It
// returns every legal, non-eye-filling candidate whose value equals the
// maximum achieved; callers pick among them uniformly at random.
// ladderDepth/minimaxLadder gate the ladder short-circuit; ladderDepth of
// 0 disables it regardless of the flag.
func Minimax(board *boardstate.Board, color geometry.Color, depth, ladderDepth int, minimaxLadder bool) []geometry.Position {
	if depth <= 0 {
		return nil
	}

	candidates := legalCandidates(board, color)
	if len(candidates) == 0 {
		return nil
	}

	var kept []geometry.Position
	var values []float32
	for _, c := range candidates {
		after := board.Copy()
		if ok, err := after.PlaceStone(color, c); !ok || err != nil {
			continue
		}
		kept = append(kept, c)
		values = append(values, evalAfter(after, color, color, 1, depth, ladderDepth, minimaxLadder))
	}

	return tiedBest(kept, values)
}

// tiedBest returns every candidate whose value equals the maximum value
// achieved, seeding the running bound at rootFloor rather than -Infinity
// so a forcedLoss value can never tie into the result: if every candidate
// is forced-loss, tiedBest returns nil.
func tiedBest(candidates []geometry.Position, values []float32) []geometry.Position {
	best := rootFloor
	var out []geometry.Position
	for i, v := range values {
		switch {
		case v > best:
			best = v
			out = []geometry.Position{candidates[i]}
		case v == best:
			out = append(out, candidates[i])
		}
	}
	sortPositions(out)
	return out
}

// evalAfter evaluates board b immediately after justMoved placed a stone,
// returning a value from friendly's fixed perspective (positive is good
// for friendly regardless of whose turn it actually is). ply counts plies
// already played; maxDepth is the configured minimax_depth.
func evalAfter(b *boardstate.Board, justMoved, friendly geometry.Color, ply, maxDepth, ladderDepth int, minimaxLadder bool) float32 {
	moverIsFriendly := justMoved == friendly
	nextMover := justMoved.Other()

	if rules.IsInAtari(b, justMoved) {
		return fromMoverPerspective(forcedLoss, moverIsFriendly)
	}
	if minimaxLadder && ladderDepth > 0 {
		if _, works := readers.Ladder(b, nextMover, ladderDepth); works {
			return fromMoverPerspective(forcedLoss, moverIsFriendly)
		}
	}

	ataris := groupsInAtari(b, nextMover)
	switch {
	case len(ataris) > 1:
		return fromMoverPerspective(forcedWin, moverIsFriendly)
	case len(ataris) == 1:
		esc := ataris[0].Liberties.Any()
		if rules.IsMoveSelfCapture(b, esc, nextMover) {
			return fromMoverPerspective(forcedWin, moverIsFriendly)
		}
	}

	if ply >= maxDepth {
		return leafEval(b, friendly)
	}

	candidates := legalCandidates(b, nextMover)
	if len(candidates) == 0 {
		return leafEval(b, friendly)
	}

	nextMoverIsFriendly := nextMover == friendly
	var best float32
	if nextMoverIsFriendly {
		best = math32.Inf(-1)
	} else {
		best = math32.Inf(1)
	}

	for _, c := range candidates {
		after := b.Copy()
		if ok, err := after.PlaceStone(nextMover, c); !ok || err != nil {
			continue
		}
		value := evalAfter(after, nextMover, friendly, ply+1, maxDepth, ladderDepth, minimaxLadder)
		if nextMoverIsFriendly {
			if value > best {
				best = value
			}
			if best == forcedWin {
				break
			}
		} else {
			if value < best {
				best = value
			}
			if best == forcedLoss {
				break
			}
		}
	}
	return best
}

func fromMoverPerspective(value float32, moverIsFriendly bool) float32 {
	if moverIsFriendly {
		return value
	}
	return -value
}

func groupsInAtari(b *boardstate.Board, color geometry.Color) []*boardstate.Group {
	var out []*boardstate.Group
	for _, g := range b.ActiveGroupsOf(color) {
		if g.InAtari() {
			out = append(out, g)
		}
	}
	return out
}

func leafEval(b *boardstate.Board, friendly geometry.Color) float32 {
	return float32(minLiberties(b, friendly)) - float32(minLiberties(b, friendly.Other()))
}

func minLiberties(b *boardstate.Board, color geometry.Color) int {
	groups := b.ActiveGroupsOf(color)
	if len(groups) == 0 {
		return 0
	}
	min := groups[0].NumLiberties()
	for _, g := range groups[1:] {
		if n := g.NumLiberties(); n < min {
			min = n
		}
	}
	return min
}

func legalCandidates(b *boardstate.Board, color geometry.Color) []geometry.Position {
	var out []geometry.Position
	for row := int8(0); row < geometry.Size; row++ {
		for col := int8(0); col < geometry.Size; col++ {
			p := geometry.Position{Row: row, Col: col}
			if rules.IsValidMove(b, p, color) && !rules.IsPointAnEye(b, p, color) {
				out = append(out, p)
			}
		}
	}
	return out
}

func sortPositions(ps []geometry.Position) {
	sort.Slice(ps, func(i, j int) bool {
		if ps[i].Row != ps[j].Row {
			return ps[i].Row < ps[j].Row
		}
		return ps[i].Col < ps[j].Col
	})
}
