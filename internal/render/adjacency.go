package render

import (
	"fmt"
	"strings"

	"github.com/airowe/codebase-context-skill/internal/graph"
)

// Adjacency renders a plain-text edge list followed by a per-file
// dependency list.
func Adjacency(g *graph.Graph) string {
	var sb strings.Builder

	sb.WriteString("edges:\n")
	for _, edge := range g.Edges() {
		sb.WriteString(fmt.Sprintf("  %s -> %s\n", edge.From, edge.To))
	}

	sb.WriteString("files:\n")
	for _, file := range g.Nodes() {
		deps := g.Dependencies(file)
		if len(deps) == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("  %s:\n", file))
		for _, dep := range deps {
			sb.WriteString(fmt.Sprintf("    %s\n", dep))
		}
	}
	return sb.String()
}
