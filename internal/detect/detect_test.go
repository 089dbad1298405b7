package detect

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(root, name), []byte(content), 0o644))
}

func TestDetect_NodeSubProfiles(t *testing.T) {
	t.Run("nextjs wins over express", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, root, "package.json", `{"dependencies": {"next": "14.0.0", "express": "4.18.0"}}`)

		det := Detect(root)
		assert.Equal(t, ProfileNextJS, det.Profile)
		assert.Equal(t, ProfileNode, det.Profile.Family())
	})

	t.Run("express from devDependencies", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, root, "package.json", `{"devDependencies": {"express": "4.18.0"}}`)

		assert.Equal(t, ProfileExpress, Detect(root).Profile)
	})

	t.Run("plain node", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, root, "package.json", `{"dependencies": {"lodash": "4.17.21"}}`)

		assert.Equal(t, ProfileNode, Detect(root).Profile)
	})

	t.Run("malformed manifest degrades to node", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, root, "package.json", `{not json`)

		assert.Equal(t, ProfileNode, Detect(root).Profile)
	})
}

func TestDetect_MarkerPriority(t *testing.T) {
	t.Run("package.json beats go.mod", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, root, "package.json", `{}`)
		writeFile(t, root, "go.mod", "module example.com/app\n")

		assert.Equal(t, ProfileNode, Detect(root).Profile)
	})

	t.Run("go module path captured", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, root, "go.mod", "module github.com/acme/widget\n\ngo 1.22\n")

		det := Detect(root)
		assert.Equal(t, ProfileGo, det.Profile)
		assert.Equal(t, "github.com/acme/widget", det.ModulePath)
	})

	t.Run("python markers", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, root, "requirements.txt", "flask==3.0.0\n")

		assert.Equal(t, ProfilePython, Detect(root).Profile)
	})

	t.Run("rust manifest", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, root, "Cargo.toml", "[package]\nname = \"widget\"\n")

		assert.Equal(t, ProfileRust, Detect(root).Profile)
	})

	t.Run("no marker means unknown", func(t *testing.T) {
		assert.Equal(t, ProfileUnknown, Detect(t.TempDir()).Profile)
	})
}
