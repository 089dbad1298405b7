// Package resolve turns raw import specifiers into in-project dependency
// edges. Resolution is a trial-and-error chain of candidate paths checked
// against the enumerated file set; specifiers that resolve to nothing are
// external dependencies and are dropped silently.
package resolve

import (
	"path"
	"sort"
	"strings"

	"github.com/airowe/codebase-context-skill/internal/detect"
	"github.com/airowe/codebase-context-skill/internal/ir"
)

// sourceExts is the ordered extension list tried during node resolution.
var sourceExts = []string{".ts", ".tsx", ".js", ".jsx", ".mjs", ".cjs"}

// Resolver resolves specifiers for one profile against one file set.
type Resolver struct {
	root        string
	profile     detect.Profile
	modulePath  string
	aliasPrefix string
	sourceRoot  string
	fileSet     map[string]struct{}
	dirSet      map[string]struct{}
}

// New builds a resolver over the enumerator's output. The file set is the
// authority for existence checks, which guarantees no emitted edge dangles.
func New(root string, det detect.Detection, aliasPrefix, sourceRoot string, files []string) *Resolver {
	r := &Resolver{
		root:        root,
		profile:     det.Profile.Family(),
		modulePath:  det.ModulePath,
		aliasPrefix: aliasPrefix,
		sourceRoot:  sourceRoot,
		fileSet:     make(map[string]struct{}, len(files)),
		dirSet:      make(map[string]struct{}),
	}
	for _, f := range files {
		r.fileSet[f] = struct{}{}
		for dir := path.Dir(f); dir != "." && dir != "/"; dir = path.Dir(dir) {
			r.dirSet[dir] = struct{}{}
		}
	}
	return r
}

// Edges extracts and resolves every import in the given files. Duplicate
// edges collapse to one and self-edges are suppressed.
func (r *Resolver) Edges(files []string) []ir.Edge {
	seen := make(map[ir.Edge]struct{})
	var edges []ir.Edge

	for _, file := range files {
		lines := readLines(r.root, file)
		if lines == nil {
			continue
		}
		for _, spec := range r.specifiers(file, lines) {
			to, ok := r.resolve(file, spec)
			if !ok || to == file {
				continue
			}
			edge := ir.Edge{From: file, To: to}
			if _, dup := seen[edge]; dup {
				continue
			}
			seen[edge] = struct{}{}
			edges = append(edges, edge)
		}
	}

	sort.Slice(edges, func(i, j int) bool {
		if edges[i].From != edges[j].From {
			return edges[i].From < edges[j].From
		}
		return edges[i].To < edges[j].To
	})
	return edges
}

func (r *Resolver) specifiers(file string, lines []string) []string {
	switch r.profile {
	case detect.ProfileNode:
		return nodeSpecifiers(lines)
	case detect.ProfilePython:
		return pythonSpecifiers(lines)
	case detect.ProfileGo:
		return goSpecifiers(lines)
	case detect.ProfileRust:
		return rustSpecifiers(lines)
	}
	return nil
}

func (r *Resolver) resolve(from, spec string) (string, bool) {
	switch r.profile {
	case detect.ProfileNode:
		return r.resolveNode(from, spec)
	case detect.ProfilePython:
		return r.resolvePython(from, spec)
	case detect.ProfileGo:
		return r.resolveGo(spec)
	case detect.ProfileRust:
		return r.resolveRust(from, spec)
	}
	return "", false
}

// resolveNode handles relative and alias-qualified specifiers. Candidates
// are tried in a fixed order: the bare path, the bare path with each source
// extension, then an index file in each extension. First hit wins.
func (r *Resolver) resolveNode(from, spec string) (string, bool) {
	var base string
	switch {
	case r.aliasPrefix != "" && strings.HasPrefix(spec, r.aliasPrefix):
		base = path.Join(r.sourceRoot, strings.TrimPrefix(spec, r.aliasPrefix))
	case strings.HasPrefix(spec, "./") || strings.HasPrefix(spec, "../") || spec == ".":
		base = path.Join(path.Dir(from), spec)
	default:
		return "", false // bare specifier: external package
	}

	candidates := make([]string, 0, 2*len(sourceExts)+1)
	candidates = append(candidates, base)
	for _, ext := range sourceExts {
		candidates = append(candidates, base+ext)
	}
	for _, ext := range sourceExts {
		candidates = append(candidates, path.Join(base, "index"+ext))
	}

	for _, candidate := range candidates {
		if _, ok := r.fileSet[candidate]; ok {
			return candidate, true
		}
	}
	return "", false
}

// resolvePython maps dotted module paths onto files. A specifier that is
// neither a module file nor a package initializer inside the project is
// treated as stdlib or third-party.
func (r *Resolver) resolvePython(from, spec string) (string, bool) {
	dots := 0
	for dots < len(spec) && spec[dots] == '.' {
		dots++
	}

	var base string
	if dots > 0 {
		// relative import: one dot is the current package, each extra dot
		// climbs one level
		base = path.Dir(from)
		for i := 1; i < dots; i++ {
			base = path.Dir(base)
		}
	}

	module := strings.ReplaceAll(spec[dots:], ".", "/")
	target := module
	if base != "" && base != "." {
		target = path.Join(base, module)
	}
	if target == "" || target == "." {
		return "", false
	}

	for _, candidate := range []string{target + ".py", path.Join(target, "__init__.py")} {
		if _, ok := r.fileSet[candidate]; ok {
			return candidate, true
		}
	}
	return "", false
}

// resolveGo strips the declared module prefix and records an edge to the
// package directory, since Go declarations live at package granularity.
func (r *Resolver) resolveGo(spec string) (string, bool) {
	if r.modulePath == "" || !strings.HasPrefix(spec, r.modulePath+"/") {
		return "", false
	}
	dir := strings.TrimPrefix(spec, r.modulePath+"/")
	if _, ok := r.dirSet[dir]; ok {
		return dir, true
	}
	return "", false
}

// resolveRust handles crate-rooted use paths and mod declarations. The
// longest path prefix that maps to a source file wins, so item imports
// (use crate::a::b::Item) fall back to the containing module file.
func (r *Resolver) resolveRust(from, spec string) (string, bool) {
	if module, ok := strings.CutPrefix(spec, "mod:"); ok {
		dir := path.Dir(from)
		for _, candidate := range []string{path.Join(dir, module+".rs"), path.Join(dir, module, "mod.rs")} {
			if _, ok := r.fileSet[candidate]; ok {
				return candidate, true
			}
		}
		return "", false
	}

	parts := strings.Split(spec, "::")
	if len(parts) == 0 || parts[0] != "crate" {
		return "", false
	}
	parts = parts[1:]

	for k := len(parts); k >= 1; k-- {
		base := path.Join(append([]string{"src"}, parts[:k]...)...)
		for _, candidate := range []string{base + ".rs", path.Join(base, "mod.rs")} {
			if _, ok := r.fileSet[candidate]; ok {
				return candidate, true
			}
		}
	}
	return "", false
}
