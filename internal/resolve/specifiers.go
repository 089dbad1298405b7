package resolve

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var (
	nodeImportFromRe = regexp.MustCompile(`(?:import|export)\s+[^'"]*?from\s+['"]([^'"]+)['"]`)
	nodeImportBareRe = regexp.MustCompile(`^\s*import\s+['"]([^'"]+)['"]`)
	nodeRequireRe    = regexp.MustCompile(`require\(\s*['"]([^'"]+)['"]\s*\)`)
	nodeDynImportRe  = regexp.MustCompile(`import\(\s*['"]([^'"]+)['"]`)

	pythonImportRe = regexp.MustCompile(`^\s*import\s+([\w.]+(?:\s*,\s*[\w.]+)*)`)
	pythonFromRe   = regexp.MustCompile(`^\s*from\s+([.\w]+)\s+import\s+(.+)`)

	goImportSingleRe = regexp.MustCompile(`^import\s+(?:[\w.]+\s+)?"([^"]+)"`)
	goImportLineRe   = regexp.MustCompile(`^\s*(?:[\w.]+\s+)?"([^"]+)"`)

	identRe = regexp.MustCompile(`^[A-Za-z_]\w*$`)

	rustUseRe = regexp.MustCompile(`^\s*(?:pub(?:\([^)]*\))?\s+)?use\s+([\w:]+)`)
	rustModRe = regexp.MustCompile(`^\s*(?:pub(?:\([^)]*\))?\s+)?mod\s+(\w+)\s*;`)
)

func readLines(root, rel string) []string {
	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
	if err != nil {
		return nil
	}
	return strings.Split(string(data), "\n")
}

func nodeSpecifiers(lines []string) []string {
	var specs []string
	for _, line := range lines {
		for _, re := range []*regexp.Regexp{nodeImportFromRe, nodeImportBareRe, nodeRequireRe, nodeDynImportRe} {
			for _, m := range re.FindAllStringSubmatch(line, -1) {
				specs = append(specs, m[1])
			}
		}
	}
	return specs
}

func pythonSpecifiers(lines []string) []string {
	var specs []string
	for _, line := range lines {
		if m := pythonFromRe.FindStringSubmatch(line); m != nil {
			specs = append(specs, m[1])
			// imported names may themselves be modules of the package,
			// as in "from . import models"
			for _, name := range strings.Split(m[2], ",") {
				name = strings.TrimSpace(name)
				if i := strings.Index(name, " as "); i > 0 {
					name = name[:i]
				}
				if name == "" || !identRe.MatchString(name) {
					continue
				}
				if strings.HasSuffix(m[1], ".") {
					specs = append(specs, m[1]+name)
				} else {
					specs = append(specs, m[1]+"."+name)
				}
			}
			continue
		}
		if m := pythonImportRe.FindStringSubmatch(line); m != nil {
			for _, module := range strings.Split(m[1], ",") {
				module = strings.TrimSpace(module)
				if i := strings.Index(module, " as "); i > 0 {
					module = module[:i]
				}
				if module != "" {
					specs = append(specs, module)
				}
			}
		}
	}
	return specs
}

// goSpecifiers tracks import blocks with a small line-scanner state; Go
// also allows single-line import statements.
func goSpecifiers(lines []string) []string {
	var specs []string
	inBlock := false
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, "import ("):
			inBlock = true
		case inBlock && trimmed == ")":
			inBlock = false
		case inBlock:
			if m := goImportLineRe.FindStringSubmatch(line); m != nil {
				specs = append(specs, m[1])
			}
		default:
			if m := goImportSingleRe.FindStringSubmatch(line); m != nil {
				specs = append(specs, m[1])
			}
		}
	}
	return specs
}

// rustSpecifiers emits use paths verbatim and mod declarations with a
// "mod:" prefix so the resolver can tell the two apart.
func rustSpecifiers(lines []string) []string {
	var specs []string
	for _, line := range lines {
		if m := rustUseRe.FindStringSubmatch(line); m != nil {
			specs = append(specs, m[1])
			continue
		}
		if m := rustModRe.FindStringSubmatch(line); m != nil {
			specs = append(specs, "mod:"+m[1])
		}
	}
	return specs
}
