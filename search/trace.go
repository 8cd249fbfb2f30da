package search

import (
	"github.com/ninebygo/engine/boardstate"
	"github.com/ninebygo/engine/geometry"
)

// Node is one candidate move and the value Minimax assigned it, kept
// separate from the hot evalAfter recursion so instrumentation never
// slows or complicates the real decision path — this is a debugging aid
// only.
type Node struct {
	Move     geometry.Position
	Color    geometry.Color
	Value    float32
	Children []*Node
}

// Explain re-runs the root-level evaluation Minimax performs and returns
// every candidate as a Node carrying its evaluated value, for internal/viz
// to render. It duplicates Minimax's candidate loop rather than calling
// Minimax itself so that ties aren't collapsed before they reach the tree.
func Explain(board *boardstate.Board, color geometry.Color, depth, ladderDepth int, minimaxLadder bool) *Node {
	root := &Node{Color: color}

	candidates := legalCandidates(board, color)
	sortPositions(candidates)

	for _, c := range candidates {
		work := board.Copy()
		if ok, err := work.PlaceStone(color, c); !ok || err != nil {
			continue
		}
		value := evalAfter(work, color, color, 1, depth, ladderDepth, minimaxLadder)
		root.Children = append(root.Children, &Node{Move: c, Color: color, Value: value})
	}

	return root
}
