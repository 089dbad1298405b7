package extract

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

func TestEntryPoints_NextDirectoryConvention(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"app/api/users/[id]/route.ts": "import { db } from '@/lib/db'\n\nexport async function GET(req: Request) {\n  return Response.json({})\n}\n\nexport async function DELETE(req: Request) {\n  return new Response(null)\n}\n",
		"app/api/health/route.ts":     "// no verb handler here\nconst handler = () => {}\n",
	})
	files := []string{"app/api/health/route.ts", "app/api/users/[id]/route.ts"}

	eps := EntryPoints(root, detect.ProfileNextJS, files)

	t.Run("bracket parameter rewritten", func(t *testing.T) {
		loc, ok := eps["GET /users/:id"]
		require.True(t, ok, "keys: %v", eps)
		assert.Equal(t, "app/api/users/[id]/route.ts", loc.File)
		assert.Equal(t, 3, loc.Line)
	})

	t.Run("multiple verbs per file", func(t *testing.T) {
		loc, ok := eps["DELETE /users/:id"]
		require.True(t, ok)
		assert.Equal(t, 7, loc.Line)
	})

	t.Run("path without verb gets wildcard", func(t *testing.T) {
		_, ok := eps["* /health"]
		assert.True(t, ok, "keys: %v", eps)
	})
}

func TestEntryPoints_ExpressDeclarativeCalls(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"src/routes.js": "const router = require('express').Router()\n\nrouter.get('/users', listUsers)\nrouter.post('/users', createUser)\napp.use('/admin', adminRouter)\nrouter.get(dynamicPath, handler)\n",
	})

	eps := EntryPoints(root, detect.ProfileExpress, []string{"src/routes.js"})

	assert.Equal(t, "src/routes.js", eps["GET /users"].File)
	assert.Equal(t, 3, eps["GET /users"].Line)
	assert.Contains(t, eps, "POST /users")
	assert.Contains(t, eps, "* /admin")

	t.Run("non-literal paths are skipped", func(t *testing.T) {
		assert.Len(t, eps, 3)
	})
}

func TestEntryPoints_PythonDecorators(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"api/app.py": "from fastapi import FastAPI\n\napp = FastAPI()\n\n@app.get(\"/items\")\ndef list_items():\n    pass\n\n@app.route(\"/legacy\", methods=[\"POST\"])\ndef legacy():\n    pass\n\n@bp.route(\"/pages\")\ndef pages():\n    pass\n",
	})

	eps := EntryPoints(root, detect.ProfilePython, []string{"api/app.py"})

	assert.Equal(t, 5, eps["GET /items"].Line)
	assert.Contains(t, eps, "POST /legacy")
	assert.Contains(t, eps, "* /pages")
}

func TestEntryPoints_UnsupportedProfile(t *testing.T) {
	eps := EntryPoints(t.TempDir(), detect.ProfileRust, []string{"src/main.rs"})
	assert.Empty(t, eps)
}
