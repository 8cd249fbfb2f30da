// Package bot implements the fixed-priority move-selection driver:
// tactical readers first, then minimax, then rollout, falling back to
// resignation or a pass.
//
// Grounded on mcts.Config/agogo.Config (config-struct-plus-presets) and the
// commented worker-message protocol in original_source/go/go.h (busy,
// set_bot_level, request, destructor verbs informing the NewBot/Play/
// GetMove/Destroy/Busy command surface).
package bot

import (
	"bytes"
	"log"
	"math/rand"
	"time"

	"github.com/ninebygo/engine/boardstate"
	"github.com/ninebygo/engine/geometry"
	"github.com/ninebygo/engine/readers"
	"github.com/ninebygo/engine/rollout"
	"github.com/ninebygo/engine/search"
)

// Kind distinguishes the three outcomes GetMove can report: a placement,
// a resignation, or a pass.
type Kind int

const (
	Pass Kind = iota
	PlaceMove
	ResignMove
)

// Move is the tagged value the driver returns: a placement, a
// resignation, or (Kind == Pass) nothing to play.
type Move struct {
	Kind     Kind
	Color    geometry.Color
	Position geometry.Position
}

func place(color geometry.Color, pos geometry.Position) Move {
	return Move{Kind: PlaceMove, Color: color, Position: pos}
}

func resign(color geometry.Color) Move {
	return Move{Kind: ResignMove, Color: color}
}

// Bot drives one color's moves against a shared live board. It is the
// "handle" of the command surface; once Destroy is called Play and
// GetMove return ErrBadHandle.
type Bot struct {
	board *boardstate.Board
	color geometry.Color
	cfg   Config

	rng *rand.Rand
	buf bytes.Buffer
	log *log.Logger

	destroyed bool
}

// NewBot creates a bot of the given level, playing color, against board.
// board is shared with the host's live game; the bot never copies it
// except internally during search.
func NewBot(level Level, color geometry.Color, board *boardstate.Board) *Bot {
	b := &Bot{
		board: board,
		color: color,
		cfg:   level.Config(),
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	b.log = log.New(&b.buf, "", log.Ltime)
	b.log.Printf("new bot: level=%s color=%v", level, color)
	return b
}

// Busy reports whether the bot is mid-computation. The core is single-
// threaded and non-suspending: a call to GetMove blocks until it
// has an answer, so Busy is always false between calls.
func (b *Bot) Busy() bool { return false }

// Play applies a move to the shared board. Resignation and pass carry no
// board effect and are always accepted; placements are rejected exactly
// when boardstate.PlaceStone would reject them.
func (b *Bot) Play(m Move) (bool, error) {
	if b.destroyed {
		return false, badHandle()
	}
	if m.Kind != PlaceMove {
		return true, nil
	}
	ok, err := b.board.PlaceStone(m.Color, m.Position)
	if !ok {
		b.log.Printf("rejected placement %v at %v: %v", m.Color, m.Position, err)
	}
	return ok, nil
}

// Destroy retires the handle; subsequent calls return ErrBadHandle.
func (b *Bot) Destroy() {
	b.destroyed = true
}

// Log returns the bot's decision-path log so far.
func (b *Bot) Log() string { return b.buf.String() }

// GetMove runs the fixed-priority driver pipeline and returns
// its decision.
func (b *Bot) GetMove() (Move, error) {
	if b.destroyed {
		return Move{}, badHandle()
	}
	m := b.selectMove()
	b.log.Printf("selected %+v", m)
	return m, nil
}

func (b *Bot) selectMove() Move {
	if moves := readers.Capture(b.board, b.color); len(moves) > 0 {
		b.log.Printf("capture reader: %d candidate(s)", len(moves))
		return place(b.color, b.pick(moves))
	}

	if moves, mustResign := readers.AntiCapture(b.board, b.color, b.cfg.CanResign); mustResign {
		b.log.Printf("anti-capture reader: must resign")
		return resign(b.color)
	} else if len(moves) > 0 {
		b.log.Printf("anti-capture reader: %d candidate(s)", len(moves))
		return place(b.color, b.pick(moves))
	}

	if b.cfg.LadderDepth > 0 {
		if move, ok := readers.Ladder(b.board, b.color, b.cfg.LadderDepth); ok {
			b.log.Printf("ladder reader: %v", move)
			return place(b.color, move)
		}
	}

	if b.cfg.AntiLadderDepth > 0 {
		moves, mustResign := readers.AntiLadder(b.board, b.color, b.cfg.AntiLadderDepth, b.cfg.AntiLadderNearest, b.cfg.CanResign)
		if mustResign {
			b.log.Printf("anti-ladder reader: must resign")
			return resign(b.color)
		}
		if len(moves) > 0 {
			b.log.Printf("anti-ladder reader: %d candidate(s)", len(moves))
			return place(b.color, b.pick(moves))
		}
	}

	if b.cfg.MinimaxDepth > 0 {
		moves := search.Minimax(b.board, b.color, b.cfg.MinimaxDepth, b.cfg.LadderDepth, b.cfg.MinimaxLadder)
		if len(moves) > 0 {
			b.log.Printf("minimax: %d tied-best move(s)", len(moves))
			return place(b.color, b.pick(moves))
		}
		if b.cfg.CanResign {
			b.log.Printf("minimax: no moves, resigning")
			return resign(b.color)
		}
	}

	if b.cfg.MCTSVisits > 0 {
		moves := rollout.Sample(b.board, b.color, b.cfg.MCTSVisits, b.rng)
		if len(moves) > 0 {
			b.log.Printf("rollout: %d tied-best move(s)", len(moves))
			return place(b.color, b.pick(moves))
		}
	}

	b.log.Printf("passing")
	return Move{Kind: Pass, Color: b.color}
}

func (b *Bot) pick(moves []geometry.Position) geometry.Position {
	return moves[b.rng.Intn(len(moves))]
}
