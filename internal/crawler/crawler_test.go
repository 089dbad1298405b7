package crawler

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airowe/codebase-context-skill/internal/detect"
)

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

func TestWalker_ExclusionsAndOrdering(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"src/app.ts":                "",
		"src/lib/util.ts":           "",
		"node_modules/pkg/index.js": "",
		"dist/bundle.js":            "",
		"README.md":                 "",
		"src/components/Button.tsx": "",
		".hidden/secret.ts":         "",
	})

	w, err := NewWalker(root, detect.ProfileNextJS, nil)
	require.NoError(t, err)

	files, err := w.Files()
	require.NoError(t, err)

	assert.Equal(t, []string{
		"src/app.ts",
		"src/components/Button.tsx",
		"src/lib/util.ts",
	}, files)

	t.Run("deterministic across runs", func(t *testing.T) {
		again, err := w.Files()
		require.NoError(t, err)
		assert.Equal(t, files, again)
	})
}

func TestWalker_PythonCacheDirs(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"app/main.py":              "",
		"app/__pycache__/main.pyc": "",
		"app/__pycache__/stale.py": "",
		".venv/lib/site.py":        "",
	})

	w, err := NewWalker(root, detect.ProfilePython, nil)
	require.NoError(t, err)

	files, err := w.Files()
	require.NoError(t, err)
	assert.Equal(t, []string{"app/main.py"}, files)
}

func TestWalker_ExtraGlobs(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"src/app.ts":      "",
		"src/app.test.ts": "",
	})

	w, err := NewWalker(root, detect.ProfileNode, []string{"**.test.ts"})
	require.NoError(t, err)

	files, err := w.Files()
	require.NoError(t, err)
	assert.Equal(t, []string{"src/app.ts"}, files)

	t.Run("invalid pattern is a config error", func(t *testing.T) {
		_, err := NewWalker(root, detect.ProfileNode, []string{"[unclosed"})
		assert.Error(t, err)
	})
}

func TestWalker_UnknownProfileTakesAllEcosystems(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"a.py": "",
		"b.rs": "",
		"c.go": "",
		"d.ts": "",
	})

	w, err := NewWalker(root, detect.ProfileUnknown, nil)
	require.NoError(t, err)

	files, err := w.Files()
	require.NoError(t, err)
	assert.Equal(t, []string{"a.py", "b.rs", "c.go", "d.ts"}, files)
}

func TestWalker_Gitignore(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		".gitignore":       "generated/\n",
		"src/app.ts":       "",
		"generated/gen.ts": "",
	})

	w, err := NewWalker(root, detect.ProfileNode, nil)
	require.NoError(t, err)

	files, err := w.Files()
	require.NoError(t, err)
	assert.Equal(t, []string{"src/app.ts"}, files)
}
