package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/airowe/codebase-context-skill/internal/ir"
)

func TestGraph(t *testing.T) {
	g := NewGraph()
	g.AddEdge(ir.Edge{From: "src/app.ts", To: "src/lib/util.ts"})
	g.AddEdge(ir.Edge{From: "src/app.ts", To: "src/lib/db.ts"})
	g.AddEdge(ir.Edge{From: "src/lib/db.ts", To: "src/lib/util.ts"})

	t.Run("duplicate edges collapse", func(t *testing.T) {
		g.AddEdge(ir.Edge{From: "src/app.ts", To: "src/lib/util.ts"})
		assert.Len(t, g.Edges(), 3)
	})

	t.Run("self-edges suppressed", func(t *testing.T) {
		g.AddEdge(ir.Edge{From: "src/app.ts", To: "src/app.ts"})
		assert.Len(t, g.Edges(), 3)
	})

	t.Run("nodes are sorted", func(t *testing.T) {
		assert.Equal(t, []string{"src/app.ts", "src/lib/db.ts", "src/lib/util.ts"}, g.Nodes())
	})

	t.Run("edges ordered by from then to", func(t *testing.T) {
		edges := g.Edges()
		assert.Equal(t, ir.Edge{From: "src/app.ts", To: "src/lib/db.ts"}, edges[0])
		assert.Equal(t, ir.Edge{From: "src/app.ts", To: "src/lib/util.ts"}, edges[1])
	})

	t.Run("dependency and dependent lookups", func(t *testing.T) {
		assert.Equal(t, []string{"src/lib/db.ts", "src/lib/util.ts"}, g.Dependencies("src/app.ts"))
		assert.Equal(t, []string{"src/app.ts", "src/lib/db.ts"}, g.Dependents("src/lib/util.ts"))
		assert.Empty(t, g.Dependencies("src/lib/util.ts"))
	})
}
