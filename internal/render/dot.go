package render

import (
	"fmt"
	"strings"

	"github.com/airowe/codebase-context-skill/internal/graph"
)

// Dot renders the dependency graph in GraphViz syntax with one cluster
// per top-level directory.
func Dot(g *graph.Graph) string {
	var sb strings.Builder
	sb.WriteString("digraph dependencies {\n")
	sb.WriteString("    rankdir=LR;\n")
	sb.WriteString("    node [shape=box, fontsize=10];\n")

	for i, c := range clusters(g.Nodes()) {
		if c.Dir == "." {
			for _, file := range c.Files {
				sb.WriteString(fmt.Sprintf("    %q;\n", file))
			}
			continue
		}
		sb.WriteString(fmt.Sprintf("    subgraph cluster_%d {\n", i))
		sb.WriteString(fmt.Sprintf("        label=%q;\n", c.Dir))
		for _, file := range c.Files {
			sb.WriteString(fmt.Sprintf("        %q;\n", c.Dir+"/"+file))
		}
		sb.WriteString("    }\n")
	}

	for _, edge := range g.Edges() {
		sb.WriteString(fmt.Sprintf("    %q -> %q;\n", edge.From, edge.To))
	}
	sb.WriteString("}\n")
	return sb.String()
}
