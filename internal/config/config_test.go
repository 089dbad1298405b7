package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("missing file yields defaults", func(t *testing.T) {
		cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
		require.NoError(t, err)
		assert.Equal(t, ".context", cfg.Output.Dir)
		assert.Equal(t, "mermaid", cfg.Output.Format)
		assert.Equal(t, 10, cfg.Concepts.Cap)
		assert.Equal(t, "@/", cfg.Resolver.AliasPrefix)
	})

	t.Run("yaml overrides defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "ctxmap.yaml")
		require.NoError(t, os.WriteFile(path, []byte("output:\n  format: dot\nconcepts:\n  cap: 5\ncrawler:\n  exclude:\n    - \"**.generated.ts\"\n"), 0o644))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "dot", cfg.Output.Format)
		assert.Equal(t, 5, cfg.Concepts.Cap)
		assert.Equal(t, []string{"**.generated.ts"}, cfg.Crawler.Exclude)
	})

	t.Run("environment wins over yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "ctxmap.yaml")
		require.NoError(t, os.WriteFile(path, []byte("output:\n  format: dot\n"), 0o644))
		t.Setenv("CTXMAP_FORMAT", "adjacency")

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "adjacency", cfg.Output.Format)
	})

	t.Run("malformed yaml is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "ctxmap.yaml")
		require.NoError(t, os.WriteFile(path, []byte("output: [unclosed"), 0o644))

		_, err := LoadConfig(path)
		assert.Error(t, err)
	})
}
