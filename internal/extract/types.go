package extract

import (
	"regexp"

	"github.com/airowe/codebase-context-skill/internal/detect"
	"github.com/airowe/codebase-context-skill/internal/ir"
)

var (
	nodeTypeRe   = regexp.MustCompile(`^\s*(?:export\s+)?(?:default\s+)?(?:declare\s+)?(?:abstract\s+)?(?:type|interface|enum|class)\s+([A-Z][A-Za-z0-9_]*)`)
	pythonTypeRe = regexp.MustCompile(`^class\s+([A-Za-z_]\w*)`)
	goTypeDeclRe = regexp.MustCompile(`^type\s+([A-Z]\w*)`)
	rustTypeRe   = regexp.MustCompile(`^\s*(?:pub(?:\([^)]*\))?\s+)?(?:struct|enum|trait|union|type)\s+([A-Z]\w*)`)
)

var typePatterns = map[detect.Profile]*regexp.Regexp{
	detect.ProfileNode:   nodeTypeRe,
	detect.ProfilePython: pythonTypeRe,
	detect.ProfileGo:     goTypeDeclRe,
	detect.ProfileRust:   rustTypeRe,
}

// Types maps user-defined type names to their declaration site. Within a
// file the first occurrence wins; across files the last scanned file wins,
// a known precision loss of the flat namespace.
func Types(root string, profile detect.Profile, files []string) map[string]ir.Location {
	out := make(map[string]ir.Location)
	pattern, ok := typePatterns[profile.Family()]
	if !ok {
		return out
	}

	for _, file := range files {
		inFile := make(map[string]int)
		for i, line := range readLines(root, file) {
			m := pattern.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			if _, seen := inFile[m[1]]; !seen {
				inFile[m[1]] = i + 1
			}
		}
		for name, line := range inFile {
			out[name] = ir.Location{File: file, Line: line}
		}
	}
	return out
}
