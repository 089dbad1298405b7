package extract

import (
	"regexp"
	"strings"

	"github.com/airowe/codebase-context-skill/internal/detect"
)

var (
	nodeExportDeclRe = regexp.MustCompile(`^\s*export\s+(?:default\s+)?(?:declare\s+)?(?:abstract\s+)?(?:async\s+)?(?:function\*?|class|interface|type|enum|const|let|var)\s+([A-Za-z_$][A-Za-z0-9_$]*)`)
	nodeReExportRe   = regexp.MustCompile(`^\s*export\s*\{([^}]*)\}`)
	pythonDefRe      = regexp.MustCompile(`^(?:async\s+)?def\s+([A-Za-z_]\w*)`)
	pythonClassRe    = regexp.MustCompile(`^class\s+([A-Za-z_]\w*)`)
	pythonAllStartRe = regexp.MustCompile(`^__all__\s*(?::\s*\S+)?\s*=\s*[\[(]`)
	pythonStringRe   = regexp.MustCompile(`['"]([^'"]+)['"]`)
	goFuncRe         = regexp.MustCompile(`^func\s+([A-Z]\w*)\s*[(\[]`)
	goTypeRe         = regexp.MustCompile(`^type\s+([A-Z]\w*)`)
	goConstVarRe     = regexp.MustCompile(`^(?:const|var)\s+([A-Z]\w*)`)
	rustPubRe        = regexp.MustCompile(`^\s*pub(?:\([^)]*\))?\s+(?:async\s+)?(?:unsafe\s+)?(?:fn|struct|enum|trait|type|const|static|mod)\s+([A-Za-z_]\w*)`)
)

// Exports maps each file to its exported symbol list, sorted and
// deduplicated. Files with no matches are omitted.
func Exports(root string, profile detect.Profile, files []string) map[string][]string {
	out := make(map[string][]string)
	family := profile.Family()
	for _, file := range files {
		var symbols []string
		switch family {
		case detect.ProfileNode:
			symbols = nodeExports(readLines(root, file))
		case detect.ProfilePython:
			symbols = pythonExports(readLines(root, file))
		case detect.ProfileGo:
			symbols = goExports(readLines(root, file))
		case detect.ProfileRust:
			symbols = rustExports(readLines(root, file))
		}
		if len(symbols) > 0 {
			out[file] = dedupSorted(symbols)
		}
	}
	return out
}

// nodeExports captures explicit export declarations plus the members of
// bulk re-export blocks. Rename aliases keep the original name.
func nodeExports(lines []string) []string {
	var symbols []string
	for _, line := range lines {
		if m := nodeExportDeclRe.FindStringSubmatch(line); m != nil {
			symbols = append(symbols, m[1])
			continue
		}
		m := nodeReExportRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		for _, entry := range strings.Split(m[1], ",") {
			name := strings.TrimSpace(entry)
			if name == "" {
				continue
			}
			// "orig as alias" re-exports the original symbol
			if idx := strings.Index(name, " as "); idx > 0 {
				name = strings.TrimSpace(name[:idx])
			}
			name = strings.TrimPrefix(name, "type ")
			if name == "default" || name == "" {
				continue
			}
			symbols = append(symbols, name)
		}
	}
	return symbols
}

// pythonExports falls back to top-level public definitions unless the
// module declares __all__, which is then authoritative.
func pythonExports(lines []string) []string {
	var symbols []string
	for i := 0; i < len(lines); i++ {
		line := lines[i]
		if pythonAllStartRe.MatchString(line) {
			return pythonAll(lines[i:])
		}
		var m []string
		if m = pythonDefRe.FindStringSubmatch(line); m == nil {
			m = pythonClassRe.FindStringSubmatch(line)
		}
		if m == nil || strings.HasPrefix(m[1], "_") {
			continue
		}
		symbols = append(symbols, m[1])
	}
	return symbols
}

func pythonAll(lines []string) []string {
	var symbols []string
	for _, line := range lines {
		for _, m := range pythonStringRe.FindAllStringSubmatch(line, -1) {
			symbols = append(symbols, m[1])
		}
		if strings.ContainsAny(line, "])") {
			break
		}
	}
	return symbols
}

// goExports collects capitalized top-level declarations; Go has no export
// keyword, capitalization is the convention.
func goExports(lines []string) []string {
	var symbols []string
	for _, line := range lines {
		for _, re := range []*regexp.Regexp{goFuncRe, goTypeRe, goConstVarRe} {
			if m := re.FindStringSubmatch(line); m != nil {
				symbols = append(symbols, m[1])
				break
			}
		}
	}
	return symbols
}

func rustExports(lines []string) []string {
	var symbols []string
	for _, line := range lines {
		if m := rustPubRe.FindStringSubmatch(line); m != nil {
			symbols = append(symbols, m[1])
		}
	}
	return symbols
}
