// Package crawler enumerates candidate source files for the extraction
// pipeline. Given an unchanged tree the output is byte-identical between
// runs: paths are relative, slash-separated, deduplicated and sorted.
package crawler

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gobwas/glob"
	ignore "github.com/sabhiram/go-gitignore"

	"github.com/airowe/codebase-context-skill/internal/detect"
	"github.com/airowe/codebase-context-skill/internal/git"
)

// Extensions lists the source extensions each profile family cares about.
var Extensions = map[detect.Profile][]string{
	detect.ProfileNode:   {".ts", ".tsx", ".js", ".jsx", ".mjs", ".cjs"},
	detect.ProfilePython: {".py"},
	detect.ProfileGo:     {".go"},
	detect.ProfileRust:   {".rs"},
}

var commonExcludedDirs = map[string]struct{}{
	".git":         {},
	"node_modules": {},
	"vendor":       {},
	"dist":         {},
	"build":        {},
	"out":          {},
	".next":        {},
	".cache":       {},
	"coverage":     {},
	"target":       {},
	"testdata":     {},
	".idea":        {},
	".vscode":      {},
}

// profileExcludedDirs adds ecosystem-specific cache directories.
var profileExcludedDirs = map[detect.Profile][]string{
	detect.ProfilePython: {"__pycache__", ".venv", "venv", ".tox", ".mypy_cache", ".pytest_cache", ".ruff_cache", "site-packages", "egg-info"},
	detect.ProfileNode:   {".turbo", ".parcel-cache", "storybook-static"},
	detect.ProfileRust:   {"target"},
}

// Walker scans a project root for source files belonging to one profile.
type Walker struct {
	root     string
	exts     map[string]struct{}
	excluded map[string]struct{}
	globs    []glob.Glob
	gitFiles map[string]struct{}
	ignorer  *ignore.GitIgnore
}

// NewWalker builds a walker for the given root and profile. Extra exclusion
// patterns are compiled as globs; an invalid pattern is an error because it
// comes from user configuration, not from the tree.
func NewWalker(root string, profile detect.Profile, exclude []string) (*Walker, error) {
	exts := make(map[string]struct{})
	family := profile.Family()
	if family == detect.ProfileUnknown {
		// No profile means every known ecosystem's extensions are candidates.
		for _, list := range Extensions {
			for _, ext := range list {
				exts[ext] = struct{}{}
			}
		}
	} else {
		for _, ext := range Extensions[family] {
			exts[ext] = struct{}{}
		}
	}

	excluded := make(map[string]struct{}, len(commonExcludedDirs))
	for dir := range commonExcludedDirs {
		excluded[dir] = struct{}{}
	}
	for _, dir := range profileExcludedDirs[family] {
		excluded[dir] = struct{}{}
	}

	var globs []glob.Glob
	for _, pattern := range exclude {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, err
		}
		globs = append(globs, g)
	}

	w := &Walker{
		root:     root,
		exts:     exts,
		excluded: excluded,
		globs:    globs,
		gitFiles: git.LsFiles(root),
	}
	if w.gitFiles == nil {
		w.ignorer = loadGitignore(root)
	}
	return w, nil
}

// Files walks the tree and returns the sorted, deduplicated candidate set.
func (w *Walker) Files() ([]string, error) {
	seen := make(map[string]struct{})

	err := filepath.WalkDir(w.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == w.root {
				return err
			}
			return nil // unreadable subtrees are skipped, not fatal
		}

		name := d.Name()
		if d.IsDir() {
			if path == w.root {
				return nil
			}
			if _, skip := w.excluded[name]; skip || strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}

		if d.Type()&fs.ModeSymlink != 0 {
			return nil
		}
		if _, ok := w.exts[filepath.Ext(name)]; !ok {
			return nil
		}

		rel, err := filepath.Rel(w.root, path)
		if err != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)

		if w.gitFiles != nil {
			if _, tracked := w.gitFiles[rel]; !tracked {
				return nil
			}
		} else if w.ignorer != nil && w.ignorer.MatchesPath(rel) {
			return nil
		}
		for _, g := range w.globs {
			if g.Match(rel) {
				return nil
			}
		}

		seen[rel] = struct{}{}
		return nil
	})
	if err != nil {
		return nil, err
	}

	files := make([]string, 0, len(seen))
	for path := range seen {
		files = append(files, path)
	}
	sort.Strings(files)
	return files, nil
}

func loadGitignore(root string) *ignore.GitIgnore {
	gi, err := ignore.CompileIgnoreFile(filepath.Join(root, ".gitignore"))
	if err != nil {
		return nil
	}
	return gi
}
