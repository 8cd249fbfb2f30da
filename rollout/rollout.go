// Package rollout implements a Monte-Carlo-lite move sampler that runs
// once the tactical readers and minimax have nothing decisive to offer:
// independent random playouts scored by a wins-to-losses ratio.
//
// Grounded on original_source/go/go.h's play_random_game (anti-capture-
// before-random-sample ordering, atari-ends-playout rule) and
// mcts/search.go's structure of running N independent simulations per
// candidate from a cloned state.
package rollout

import (
	"math/rand"
	"sort"

	"github.com/chewxy/math32"
	"github.com/ninebygo/engine/boardstate"
	"github.com/ninebygo/engine/geometry"
	"github.com/ninebygo/engine/readers"
	"github.com/ninebygo/engine/rules"
)

// Sample runs visits independent random playouts per legal, non-eye,
// non-self-capture candidate move for color, and returns every candidate
// whose wins/max(losses, 0.1) score ties the best achieved — kept as a
// draw-free tie-breaker between zero-loss candidates rather than treating
// the 0.1 floor as a bug. Callers pick among the returned moves uniformly
// at random. A nil result means no candidate survived filtering.
func Sample(board *boardstate.Board, color geometry.Color, visits int, rng *rand.Rand) []geometry.Position {
	if visits <= 0 {
		return nil
	}

	candidates := candidateMoves(board, color)
	if len(candidates) == 0 {
		return nil
	}

	var best float32 = -1
	var bestMoves []geometry.Position
	for _, c := range candidates {
		wins, losses := 0, 0
		for i := 0; i < visits; i++ {
			switch playRandomGame(board, color, c, rng) {
			case color:
				wins++
			case color.Other():
				losses++
			}
		}
		score := float32(wins) / math32.Max(float32(losses), 0.1)
		switch {
		case score > best:
			best = score
			bestMoves = []geometry.Position{c}
		case score == best:
			bestMoves = append(bestMoves, c)
		}
	}

	sortPositions(bestMoves)
	return bestMoves
}

// playRandomGame plays color's candidate move on a fresh copy, then
// alternates random play until one side is declared the winner or the
// board fills up with no winner (geometry.None).
func playRandomGame(board *boardstate.Board, color geometry.Color, move geometry.Position, rng *rand.Rand) geometry.Color {
	work := board.Copy()
	if ok, err := work.PlaceStone(color, move); !ok || err != nil {
		return geometry.None
	}

	toMove := color.Other()
	for {
		if rules.IsInAtari(work, toMove) {
			return toMove.Other()
		}

		if acMoves, _ := readers.AntiCapture(work, toMove, false); len(acMoves) > 0 {
			ok, err := work.PlaceStone(toMove, acMoves[0])
			if !ok || err != nil {
				return geometry.None
			}
			toMove = toMove.Other()
			continue
		}

		p, found := randomLegalNonEyeMove(work, toMove, rng)
		if !found {
			return geometry.None
		}
		if ok, err := work.PlaceStone(toMove, p); !ok || err != nil {
			return geometry.None
		}
		toMove = toMove.Other()
	}
}

func randomLegalNonEyeMove(b *boardstate.Board, color geometry.Color, rng *rand.Rand) (geometry.Position, bool) {
	var empties []geometry.Position
	for row := int8(0); row < geometry.Size; row++ {
		for col := int8(0); col < geometry.Size; col++ {
			p := geometry.Position{Row: row, Col: col}
			if b.Get(p) == geometry.None {
				empties = append(empties, p)
			}
		}
	}
	rng.Shuffle(len(empties), func(i, j int) { empties[i], empties[j] = empties[j], empties[i] })
	for _, p := range empties {
		if rules.IsValidMove(b, p, color) && !rules.IsPointAnEye(b, p, color) {
			return p, true
		}
	}
	return geometry.Position{}, false
}

func candidateMoves(b *boardstate.Board, color geometry.Color) []geometry.Position {
	var out []geometry.Position
	for row := int8(0); row < geometry.Size; row++ {
		for col := int8(0); col < geometry.Size; col++ {
			p := geometry.Position{Row: row, Col: col}
			if !rules.IsValidMove(b, p, color) || rules.IsPointAnEye(b, p, color) {
				continue
			}
			out = append(out, p)
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
