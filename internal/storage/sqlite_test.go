package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airowe/codebase-context-skill/internal/ir"
)

func sampleIndex() *ir.Index {
	idx := ir.NewIndex("node", "")
	idx.Concepts["authentication"] = []string{"src/auth/login.ts"}
	idx.EntryPoints["GET /users"] = ir.Location{File: "src/routes.ts", Line: 12}
	idx.Exports["src/auth/login.ts"] = []string{"login", "logout"}
	idx.Types["User"] = ir.Location{File: "src/models.ts", Line: 3}
	idx.Edges = []ir.Edge{{From: "src/routes.ts", To: "src/auth/login.ts"}}
	return idx
}

func TestSQLiteStore_SaveAndQuery(t *testing.T) {
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "ctxmap.db"))
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	require.NoError(t, store.SaveIndex(ctx, sampleIndex()))

	t.Run("exports round-trip sorted", func(t *testing.T) {
		symbols, err := store.FindExports(ctx, "src/auth/login.ts")
		require.NoError(t, err)
		assert.Equal(t, []string{"login", "logout"}, symbols)
	})

	t.Run("type lookup", func(t *testing.T) {
		loc, err := store.FindType(ctx, "User")
		require.NoError(t, err)
		assert.Equal(t, ir.Location{File: "src/models.ts", Line: 3}, loc)
	})

	t.Run("dependencies", func(t *testing.T) {
		deps, err := store.Dependencies(ctx, "src/routes.ts")
		require.NoError(t, err)
		assert.Equal(t, []string{"src/auth/login.ts"}, deps)
	})

	t.Run("second save replaces, not appends", func(t *testing.T) {
		idx := sampleIndex()
		idx.Types = map[string]ir.Location{"Account": {File: "src/account.ts", Line: 1}}
		require.NoError(t, store.SaveIndex(ctx, idx))

		_, err := store.FindType(ctx, "User")
		assert.Error(t, err)

		loc, err := store.FindType(ctx, "Account")
		require.NoError(t, err)
		assert.Equal(t, "src/account.ts", loc.File)
	})
}
