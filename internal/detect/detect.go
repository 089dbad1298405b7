// Package detect classifies a project tree into an ecosystem profile by
// inspecting marker files at the root. The profile decides which extraction
// rule sets run downstream; an unrecognized tree degrades to ProfileUnknown
// rather than failing.
package detect

import (
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
)

type Profile string

const (
	ProfileNode    Profile = "node"
	ProfileNextJS  Profile = "nextjs"
	ProfileExpress Profile = "express"
	ProfilePython  Profile = "python"
	ProfileGo      Profile = "go"
	ProfileRust    Profile = "rust"
	ProfileUnknown Profile = "unknown"
)

// Family collapses sub-profiles: nextjs and express share the node rule
// sets for concepts, exports and types. Only entry-point strategies differ.
func (p Profile) Family() Profile {
	switch p {
	case ProfileNextJS, ProfileExpress:
		return ProfileNode
	}
	return p
}

// Detection is the result of classifying a project root.
type Detection struct {
	Profile    Profile
	ModulePath string // declared Go module path, when Profile == go
}

type packageManifest struct {
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

var goModuleRe = regexp.MustCompile(`(?m)^module\s+(\S+)`)

// Detect inspects marker files in priority order and returns exactly one
// profile. It never returns an error; a tree with no recognized marker is
// ProfileUnknown and downstream extractors produce empty results.
func Detect(root string) Detection {
	if p := filepath.Join(root, "package.json"); exists(p) {
		return Detection{Profile: detectNodeProfile(p)}
	}
	for _, marker := range []string{"pyproject.toml", "requirements.txt", "setup.py"} {
		if exists(filepath.Join(root, marker)) {
			return Detection{Profile: ProfilePython}
		}
	}
	if p := filepath.Join(root, "go.mod"); exists(p) {
		return Detection{Profile: ProfileGo, ModulePath: goModulePath(p)}
	}
	if exists(filepath.Join(root, "Cargo.toml")) {
		return Detection{Profile: ProfileRust}
	}
	return Detection{Profile: ProfileUnknown}
}

// detectNodeProfile narrows a Node project by its declared dependencies.
func detectNodeProfile(manifestPath string) Profile {
	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return ProfileNode
	}

	var manifest packageManifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return ProfileNode
	}

	deps := make(map[string]struct{}, len(manifest.Dependencies)+len(manifest.DevDependencies))
	for name := range manifest.Dependencies {
		deps[name] = struct{}{}
	}
	for name := range manifest.DevDependencies {
		deps[name] = struct{}{}
	}

	if _, ok := deps["next"]; ok {
		return ProfileNextJS
	}
	if _, ok := deps["express"]; ok {
		return ProfileExpress
	}
	return ProfileNode
}

func goModulePath(modPath string) string {
	data, err := os.ReadFile(modPath)
	if err != nil {
		return ""
	}
	if m := goModuleRe.FindSubmatch(data); m != nil {
		return string(m[1])
	}
	return ""
}

func exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
