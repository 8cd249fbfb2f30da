// Package viz renders a search.Node tree to Graphviz DOT for debugging. It
// is never on the decision path: nothing in bot or cmd/play calls it.
//
// Grounded on mcts/graph.go's ToDot: an HTML-table node label built with
// text/template, nodes and edges added to a gographviz.Graph, rendered to
// a DOT string with (*gographviz.Graph).String.
package viz

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/awalterschulze/gographviz"
	"github.com/ninebygo/engine/search"
)

const tmplRaw = `<
<TABLE BORDER="0" CELLBORDER="1" CELLSPACING="0">
<TR><TD>Move</TD><TD>{{.Move}}</TD></TR>
<TR><TD>Color</TD><TD>{{.Color}}</TD></TR>
<TR><TD>Value</TD><TD>{{.Value}}</TD></TR>
</TABLE>
>
`

var tmpl = template.Must(template.New("node").Parse(tmplRaw))

// ToDot renders root (as produced by search.Explain) as a DOT graph string.
// A parsing or rendering failure panics, matching ToDot's unrecoverable-
// programmer-error treatment of graph construction failures.
func ToDot(root *search.Node) string {
	g := gographviz.NewGraph()
	if err := g.SetName("G"); err != nil {
		panic(err)
	}
	g.SetDir(true)

	rootID := "root"
	if err := g.AddNode("G", rootID, map[string]string{
		"fontname": "Monaco",
		"shape":    "none",
		"label":    "root",
	}); err != nil {
		panic(err)
	}

	for i, child := range root.Children {
		id := fmt.Sprintf("n%d", i)
		addNode(g, id, child)
		if err := g.AddEdge(rootID, id, true, nil); err != nil {
			panic(err)
		}
	}

	return g.String()
}

func addNode(g *gographviz.Graph, id string, n *search.Node) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, n); err != nil {
		panic(err)
	}
	attrs := map[string]string{
		"fontname": "Monaco",
		"shape":    "none",
		"label":    buf.String(),
	}
	if err := g.AddNode("G", id, attrs); err != nil {
		panic(err)
	}
}
