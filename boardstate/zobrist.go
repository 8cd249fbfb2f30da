package boardstate

import (
	"math/rand"
	"time"

	"github.com/ninebygo/engine/geometry"
)

const numCells = geometry.Size * geometry.Size

// zobristTable holds one random value per (cell, colour). It is generated
// once per live game and shared (not regenerated) by every Board.Copy of
// that game, since hash comparisons across clones (ko/superko detection,
// Eq) are only meaningful when both sides were built from the same table.
//
// Grounded on game/wq/zobrist.go. That implementation backs the table with
// a [][]int32 iterator built via an unsafe reflect.SliceHeader trick
// (game/wq/naughty.go) to support arbitrary board sizes cheaply during
// self-play training. This engine only ever addresses a fixed 9x9 grid by
// a flat row-major index, so the unsafe 2D iterator has no payoff here and
// is dropped in favour of plain index arithmetic.
type zobristTable [numCells][2]uint64

func newZobristTable() *zobristTable {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	var t zobristTable
	for i := range t {
		t[i][0] = r.Uint64()
		t[i][1] = r.Uint64()
	}
	return &t
}

func (t *zobristTable) valueFor(idx int, c geometry.Color) uint64 {
	switch c {
	case geometry.Black:
		return t[idx][0]
	case geometry.White:
		return t[idx][1]
	default:
		return 0
	}
}
