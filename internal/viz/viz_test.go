package viz

import (
	"testing"

	"github.com/ninebygo/engine/geometry"
	"github.com/ninebygo/engine/search"
	"github.com/stretchr/testify/assert"
)

func TestToDot_ContainsEveryChildAndValue(t *testing.T) {
	root := &search.Node{
		Color: geometry.Black,
		Children: []*search.Node{
			{Move: geometry.Position{Row: 4, Col: 4}, Color: geometry.Black, Value: 4},
			{Move: geometry.Position{Row: 0, Col: 0}, Color: geometry.Black, Value: 2},
		},
	}

	dot := ToDot(root)

	assert.Contains(t, dot, "digraph")
	assert.Contains(t, dot, "root")
	assert.Contains(t, dot, "n0")
	assert.Contains(t, dot, "n1")
}

func TestToDot_EmptyChildrenStillRendersRoot(t *testing.T) {
	root := &search.Node{Color: geometry.White}
	dot := ToDot(root)
	assert.Contains(t, dot, "root")
}
