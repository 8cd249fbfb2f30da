package rollout

import (
	"math/rand"
	"testing"

	"github.com/chewxy/math32"
	"github.com/ninebygo/engine/boardstate"
	"github.com/ninebygo/engine/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pos(row, col int8) geometry.Position { return geometry.Position{Row: row, Col: col} }

func place(t *testing.T, b *boardstate.Board, c geometry.Color, p geometry.Position) {
	t.Helper()
	ok, err := b.PlaceStone(c, p)
	require.True(t, ok)
	require.NoError(t, err)
}

// TestPlayRandomGame_ImmediateAtariIsDeterministic builds a White group
// boxed to two liberties; Black's candidate move fills one of them,
// putting White in atari before the playout loop even starts its first
// random choice, so the winner is decided with no randomness involved.
func TestPlayRandomGame_ImmediateAtariIsDeterministic(t *testing.T) {
	b := boardstate.NewBoard(false)
	place(t, b, geometry.Black, pos(3, 4))
	place(t, b, geometry.Black, pos(4, 3))
	place(t, b, geometry.White, pos(4, 4))

	rng := rand.New(rand.NewSource(1))
	winner := playRandomGame(b, geometry.Black, pos(5, 4), rng)
	assert.Equal(t, geometry.Black, winner)
}

// TestSample_FindsTheDecisiveMoves exercises the same shape through the
// public Sample entry point: both liberties of White's two-liberty group
// are forcing (each deterministically wins every playout), so they must
// reach the true ceiling score and therefore belong to the tied-best set
// regardless of how any other candidate's random playouts land.
func TestSample_FindsTheDecisiveMoves(t *testing.T) {
	b := boardstate.NewBoard(false)
	place(t, b, geometry.Black, pos(3, 4))
	place(t, b, geometry.Black, pos(4, 3))
	place(t, b, geometry.White, pos(4, 4))

	rng := rand.New(rand.NewSource(7))
	moves := Sample(b, geometry.Black, 5, rng)

	assert.Contains(t, moves, pos(5, 4))
	assert.Contains(t, moves, pos(4, 5))
}

func TestSample_NoVisitsIsNil(t *testing.T) {
	b := boardstate.NewBoard(false)
	rng := rand.New(rand.NewSource(1))
	assert.Nil(t, Sample(b, geometry.Black, 0, rng))
}

func TestScoreFormula(t *testing.T) {
	score := func(wins, losses int) float32 { return float32(wins) / math32.Max(float32(losses), 0.1) }
	assert.Equal(t, float32(50), score(5, 0), "zero losses falls back to the 0.1 denominator")
	assert.Equal(t, float32(2), score(4, 2))
}
