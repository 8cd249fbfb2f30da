package bot

import (
	"log"
	"math/rand"
	"testing"

	"github.com/ninebygo/engine/boardstate"
	"github.com/ninebygo/engine/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pos(row, col int8) geometry.Position { return geometry.Position{Row: row, Col: col} }

func placeStone(t *testing.T, b *boardstate.Board, c geometry.Color, p geometry.Position) {
	t.Helper()
	ok, err := b.PlaceStone(c, p)
	require.True(t, ok)
	require.NoError(t, err)
}

func newTestBot(cfg Config, color geometry.Color, board *boardstate.Board) *Bot {
	b := &Bot{
		board: board,
		color: color,
		cfg:   cfg,
		rng:   rand.New(rand.NewSource(1)),
	}
	b.log = log.New(&b.buf, "", log.Ltime)
	return b
}

// TestSelectMove_CaptureTakesPriority puts a lone Black stone in atari
// with a single liberty at (2,1); for the White bot, even with a full
// DEMON-level config behind it, the capture reader must win before ladder,
// minimax, or rollout are ever consulted.
func TestSelectMove_CaptureTakesPriority(t *testing.T) {
	b := boardstate.NewBoard(false)
	placeStone(t, b, geometry.White, pos(0, 1))
	placeStone(t, b, geometry.White, pos(1, 0))
	placeStone(t, b, geometry.White, pos(1, 2))
	placeStone(t, b, geometry.Black, pos(1, 1))

	bt := newTestBot(DEMON.Config(), geometry.White, b)
	m := bt.selectMove()

	assert.Equal(t, PlaceMove, m.Kind)
	assert.Equal(t, pos(2, 1), m.Position)
}

// TestSelectMove_AntiCaptureMustResign reuses the confined-escape shape
// from the readers package: Black's only escape liberty leaves it still in
// atari, so with CanResign set the driver must resign rather than play it.
func TestSelectMove_AntiCaptureMustResign(t *testing.T) {
	b := boardstate.NewBoard(false)
	placeStone(t, b, geometry.White, pos(0, 1))
	placeStone(t, b, geometry.White, pos(1, 0))
	placeStone(t, b, geometry.White, pos(1, 2))
	placeStone(t, b, geometry.Black, pos(1, 1))
	placeStone(t, b, geometry.White, pos(2, 0))
	placeStone(t, b, geometry.White, pos(3, 1))

	bt := newTestBot(HARD.Config(), geometry.Black, b)
	m := bt.selectMove()

	assert.Equal(t, ResignMove, m.Kind)
	assert.Equal(t, geometry.Black, m.Color)
}

// TestSelectMove_LadderTakesPriorityOverMinimax builds the edge-ladder
// shape from the readers package; with both LadderDepth and MinimaxDepth
// enabled the driver must choose the ladder's forcing move.
func TestSelectMove_LadderTakesPriorityOverMinimax(t *testing.T) {
	b := boardstate.NewBoard(false)
	placeStone(t, b, geometry.Black, pos(1, 4))
	placeStone(t, b, geometry.Black, pos(1, 5))
	placeStone(t, b, geometry.White, pos(0, 4))

	bt := newTestBot(Config{LadderDepth: 2, MinimaxDepth: 1}, geometry.Black, b)
	m := bt.selectMove()

	assert.Equal(t, PlaceMove, m.Kind)
	assert.Equal(t, pos(0, 3), m.Position)
}

// TestSelectMove_FallsThroughToRolloutOnJoke exercises the JOKE preset
// (rollout only, everything else disabled) on an empty board: the driver
// must reach the rollout stage and return some placement rather than a
// pass, since every empty point is a legal non-eye candidate.
func TestSelectMove_FallsThroughToRolloutOnJoke(t *testing.T) {
	b := boardstate.NewBoard(false)

	bt := newTestBot(JOKE.Config(), geometry.Black, b)
	m := bt.selectMove()

	assert.Equal(t, PlaceMove, m.Kind)
}

// TestSelectMove_PassesWhenEverythingIsDisabled confirms that a config
// with every stage off produces a pass rather than panicking or picking an
// arbitrary move.
func TestSelectMove_PassesWhenEverythingIsDisabled(t *testing.T) {
	b := boardstate.NewBoard(false)

	bt := newTestBot(Config{}, geometry.Black, b)
	m := bt.selectMove()

	assert.Equal(t, Pass, m.Kind)
}

func TestNewBot_DestroyBlocksFurtherUse(t *testing.T) {
	b := boardstate.NewBoard(false)
	bt := NewBot(EASY, geometry.Black, b)
	bt.Destroy()

	_, err := bt.GetMove()
	assert.ErrorIs(t, err, ErrBadHandle)

	_, err = bt.Play(Move{Kind: Pass})
	assert.ErrorIs(t, err, ErrBadHandle)
}

func TestBot_PlayRejectsIllegalPlacement(t *testing.T) {
	b := boardstate.NewBoard(false)
	placeStone(t, b, geometry.Black, pos(4, 4))

	bt := NewBot(EASY, geometry.White, b)
	ok, err := bt.Play(Move{Kind: PlaceMove, Color: geometry.White, Position: pos(4, 4)})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLevelConfig_PresetTable(t *testing.T) {
	assert.Equal(t, Config{MCTSVisits: 5}, JOKE.Config())
	assert.Equal(t, Config{MCTSVisits: 50, MinimaxDepth: 1, LadderDepth: 4, AntiLadderDepth: 4}, EASY.Config())
	assert.Equal(t, Config{MCTSVisits: 100, MinimaxDepth: 1, LadderDepth: 6, AntiLadderDepth: 6}, MEDIUM.Config())
	assert.True(t, HARD.Config().AntiLadderNearest)
	assert.True(t, HARD.Config().CanResign)
	assert.True(t, CRAZY.Config().MinimaxLadder)
	assert.Equal(t, 2, DEMON.Config().MinimaxDepth)
	assert.False(t, DEMON.Config().MinimaxLadder)
}
