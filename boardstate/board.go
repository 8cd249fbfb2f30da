// Package boardstate implements the incremental Go board representation:
// connected groups with live liberty sets, stone placement with capture and
// suicide/ko enforcement, and cheap whole-board copies for search.
//
// Grounded on game/wq/wq.go (Board/Clone/Apply/check/nolib) and
// original_source/go/go.h's Board/_Group (shared-group-pointer model). The
// teacher recomputes liberties with a breadth-first search on every
// placement (nolib); this package instead maintains each Group's liberty
// set incrementally and addresses groups through a small-integer id
// (an arena of groups) rather than sharing mutable pointers.
package boardstate

import (
	"bytes"
	"fmt"

	"github.com/ninebygo/engine/geometry"
)

func index(p geometry.Position) int { return int(p.Row)*geometry.Size + int(p.Col) }

// Board is a 9x9 grid of cells, each either empty or owned by an active
// Group, addressed through a small-integer id. No two active groups ever
// share a stone.
type Board struct {
	cells      [numCells]groupID
	groups     map[groupID]*Group
	nextID     groupID
	zobrist    *zobristTable
	hash       uint64
	history    []uint64
	historySet map[uint64]struct{}
	simpleKo   bool
}

// NewBoard creates an empty board. simpleKo selects simple-ko (compare only
// against the configuration immediately before the last move) instead of
// the default positional superko (compare against every configuration the
// live game has ever reached).
func NewBoard(simpleKo bool) *Board {
	return &Board{
		groups:     make(map[groupID]*Group),
		nextID:     1,
		zobrist:    newZobristTable(),
		historySet: make(map[uint64]struct{}),
		simpleKo:   simpleKo,
	}
}

// Copy produces an independent board: deep-cloned groups, independent
// history, but a shared (read-only) zobrist table. O(stones + groups).
func (b *Board) Copy() *Board {
	nb := &Board{
		cells:      b.cells,
		groups:     make(map[groupID]*Group, len(b.groups)),
		nextID:     b.nextID,
		zobrist:    b.zobrist,
		hash:       b.hash,
		history:    append([]uint64(nil), b.history...),
		historySet: make(map[uint64]struct{}, len(b.historySet)),
		simpleKo:   b.simpleKo,
	}
	for id, g := range b.groups {
		nb.groups[id] = g.clone()
	}
	for h := range b.historySet {
		nb.historySet[h] = struct{}{}
	}
	return nb
}

// Get returns the colour at pos, or geometry.None if empty.
func (b *Board) Get(pos geometry.Position) geometry.Color {
	gid := b.cells[index(pos)]
	if gid == 0 {
		return geometry.None
	}
	return b.groups[gid].Color
}

// GroupAt returns the active group occupying pos, if any.
func (b *Board) GroupAt(pos geometry.Position) (*Group, bool) {
	gid := b.cells[index(pos)]
	if gid == 0 {
		return nil, false
	}
	return b.groups[gid], true
}

// ActiveGroups returns every currently active group. Order is unspecified.
func (b *Board) ActiveGroups() []*Group {
	out := make([]*Group, 0, len(b.groups))
	for _, g := range b.groups {
		out = append(out, g)
	}
	return out
}

// ActiveGroupsOf returns every active group of the given colour.
func (b *Board) ActiveGroupsOf(color geometry.Color) []*Group {
	out := make([]*Group, 0, len(b.groups))
	for _, g := range b.groups {
		if g.Color == color {
			out = append(out, g)
		}
	}
	return out
}

// Hash returns the current positional (zobrist) hash.
func (b *Board) Hash() uint64 { return b.hash }

// PlaceStone attempts to place a stone of color at pos. It
// returns true and mutates the board on success; on failure the board is
// left untouched and a non-nil error explains why (off-grid, occupied,
// suicide, or ko).
func (b *Board) PlaceStone(color geometry.Color, pos geometry.Position) (bool, error) {
	if !pos.Valid() {
		return false, illegalMove(color, pos, ReasonOffGrid)
	}
	if b.Get(pos) != geometry.None {
		return false, illegalMove(color, pos, ReasonOccupied)
	}

	work := b.Copy()
	_, suicide := work.apply(color, pos)
	if suicide {
		return false, illegalMove(color, pos, ReasonSuicide)
	}
	if b.violatesKo(work.hash) {
		return false, illegalMove(color, pos, ReasonKo)
	}

	work.history = append(work.history, work.hash)
	work.historySet[work.hash] = struct{}{}
	*b = *work
	return true, nil
}

// violatesKo reports whether hash recreates a configuration the ko rule
// forbids. Positional superko (default): any prior configuration of the
// live game. Simple ko: only the configuration immediately before the last
// move (history[len-2]) — the classic "can't immediately recapture" rule.
//
// This history belongs to the live game only: search packages (readers,
// search, rollout) operate on Board.Copy results and must never let their
// hypothetical moves feed back into it.
func (b *Board) violatesKo(hash uint64) bool {
	if b.simpleKo {
		if len(b.history) < 2 {
			return false
		}
		return hash == b.history[len(b.history)-2]
	}
	_, seen := b.historySet[hash]
	return seen
}

// apply performs a two-phase commit: merge the
// placed stone with friendly neighbours, tentatively reduce enemy
// liberties, decide legality, then — only if enemies actually die — free
// their cells and re-derive liberties for every group adjacent to them
// (which may include the just-placed group). It never rejects due to ko;
// that is the caller's job once the resulting hash is known.
func (b *Board) apply(color geometry.Color, pos geometry.Position) (captured []geometry.Position, suicide bool) {
	idx := index(pos)

	friendlyIDs := make(map[groupID]struct{})
	enemyIDs := make(map[groupID]struct{})
	var emptyNeighbors []geometry.Position
	for _, n := range pos.Neighbors() {
		if !n.Valid() {
			continue
		}
		gid := b.cells[index(n)]
		if gid == 0 {
			emptyNeighbors = append(emptyNeighbors, n)
			continue
		}
		if b.groups[gid].Color == color {
			friendlyIDs[gid] = struct{}{}
		} else {
			enemyIDs[gid] = struct{}{}
		}
	}

	id := b.nextID
	b.nextID++
	candidate := newGroup(id, color)
	candidate.Stones.Add(pos)
	for _, p := range emptyNeighbors {
		candidate.Liberties.Add(p)
	}
	for fid := range friendlyIDs {
		fg := b.groups[fid]
		for s := range fg.Stones {
			candidate.Stones.Add(s)
		}
		for l := range fg.Liberties {
			candidate.Liberties.Add(l)
		}
		delete(b.groups, fid)
	}
	candidate.Liberties.RemoveAll(candidate.Stones.Slice())

	b.groups[id] = candidate
	for s := range candidate.Stones {
		b.cells[index(s)] = id
	}
	b.hash ^= b.zobrist.valueFor(idx, color)

	var deadIDs []groupID
	for eid := range enemyIDs {
		eg := b.groups[eid]
		eg.Liberties.Remove(pos)
		if eg.NumLiberties() == 0 {
			deadIDs = append(deadIDs, eid)
		}
	}

	if len(deadIDs) == 0 && candidate.NumLiberties() == 0 {
		return nil, true
	}

	for _, eid := range deadIDs {
		eg := b.groups[eid]
		delete(b.groups, eid)
		for s := range eg.Stones {
			b.cells[index(s)] = 0
			b.hash ^= b.zobrist.valueFor(index(s), eg.Color)
			captured = append(captured, s)
		}
	}
	for _, p := range captured {
		for _, n := range p.Neighbors() {
			if !n.Valid() {
				continue
			}
			gid := b.cells[index(n)]
			if gid == 0 {
				continue
			}
			b.groups[gid].Liberties.Add(p)
		}
	}

	return captured, false
}

// Serialize returns the 9x9 grid as a row-major string of '.'/'B'/'W', a
// stable reference form used to check the round-trip copy law against.
func (b *Board) Serialize() string {
	var buf bytes.Buffer
	buf.Grow(numCells)
	for row := int8(0); row < geometry.Size; row++ {
		for col := int8(0); col < geometry.Size; col++ {
			switch b.Get(geometry.Position{Row: row, Col: col}) {
			case geometry.Black:
				buf.WriteByte('B')
			case geometry.White:
				buf.WriteByte('W')
			default:
				buf.WriteByte('.')
			}
		}
	}
	return buf.String()
}

// Eq reports whether a and b represent the same position: identical
// stone/empty layout and identical hash. Used by the round-trip copy law.
func (b *Board) Eq(other *Board) bool {
	if b == other {
		return true
	}
	return b.hash == other.hash && b.Serialize() == other.Serialize()
}

func (b *Board) Format(s fmt.State, c rune) {
	switch c {
	case 's', 'v':
		for row := int8(0); row < geometry.Size; row++ {
			fmt.Fprint(s, "| ")
			for col := int8(0); col < geometry.Size; col++ {
				fmt.Fprintf(s, "%s ", b.Get(geometry.Position{Row: row, Col: col}))
			}
			fmt.Fprint(s, "|\n")
		}
	}
}
