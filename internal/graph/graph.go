package graph

import (
	"sort"

	"github.com/airowe/codebase-context-skill/internal/ir"
)

// Graph is the file-level dependency graph accumulator. Nodes are relative
// file paths; edges come from the import resolver.
type Graph struct {
	nodes   map[string]struct{}
	edges   []ir.Edge
	edgeSet map[ir.Edge]struct{}
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{
		nodes:   make(map[string]struct{}),
		edgeSet: make(map[ir.Edge]struct{}),
	}
}

// AddNode registers a file as a vertex.
func (g *Graph) AddNode(file string) {
	g.nodes[file] = struct{}{}
}

// AddEdge records a dependency. Self-edges are suppressed and duplicates
// collapse to one.
func (g *Graph) AddEdge(edge ir.Edge) {
	if edge.From == edge.To {
		return
	}
	if _, dup := g.edgeSet[edge]; dup {
		return
	}
	g.edgeSet[edge] = struct{}{}
	g.edges = append(g.edges, edge)
	g.nodes[edge.From] = struct{}{}
	g.nodes[edge.To] = struct{}{}
}

// Nodes returns all vertices in sorted order.
func (g *Graph) Nodes() []string {
	nodes := make([]string, 0, len(g.nodes))
	for n := range g.nodes {
		nodes = append(nodes, n)
	}
	sort.Strings(nodes)
	return nodes
}

// Edges returns all edges ordered by (from, to).
func (g *Graph) Edges() []ir.Edge {
	edges := make([]ir.Edge, len(g.edges))
	copy(edges, g.edges)
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].From != edges[j].From {
			return edges[i].From < edges[j].From
		}
		return edges[i].To < edges[j].To
	})
	return edges
}

// Dependencies returns the sorted list of targets the given file imports.
func (g *Graph) Dependencies(file string) []string {
	var deps []string
	for _, edge := range g.edges {
		if edge.From == file {
			deps = append(deps, edge.To)
		}
	}
	sort.Strings(deps)
	return deps
}

// Dependents returns the sorted list of files importing the given target.
func (g *Graph) Dependents(file string) []string {
	var deps []string
	for _, edge := range g.edges {
		if edge.To == file {
			deps = append(deps, edge.From)
		}
	}
	sort.Strings(deps)
	return deps
}
