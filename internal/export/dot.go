package export

import (
	"fmt"
	"strings"

	"github.com/osnlab/seizsim/internal/graph"
	"github.com/osnlab/seizsim/internal/seiz"
)

// compartmentColors maps compartment labels to DOT fill colors.
var compartmentColors = map[string]string{
	"S": "steelblue",
	"E": "goldenrod",
	"I": "tomato",
	"Z": "mediumseagreen",
}

// RenderDOT produces a Graphviz DOT representation of the network. When
// states is non-nil, nodes are colored by compartment.
func RenderDOT(g *graph.Graph, states seiz.State) string {
	var b strings.Builder
	b.WriteString("graph seiz {\n")
	b.WriteString("  layout=neato;\n")
	b.WriteString("  node [shape=circle, style=filled, fontname=\"Helvetica\"];\n\n")

	for _, node := range g.Nodes() {
		color := "lightgray"
		label := ""
		if states != nil {
			label = states[node].String()
			if c, ok := compartmentColors[label]; ok {
				color = c
			}
		}
		if label != "" {
			fmt.Fprintf(&b, "  %d [fillcolor=%q, tooltip=%q];\n", node, color, label)
		} else {
			fmt.Fprintf(&b, "  %d [fillcolor=%q];\n", node, color)
		}
	}
	b.WriteString("\n")

	for _, node := range g.Nodes() {
		for _, nb := range g.Neighbors(node) {
			if node < nb {
				fmt.Fprintf(&b, "  %d -- %d;\n", node, nb)
			}
		}
	}
	b.WriteString("}\n")
	return b.String()
}
