// Package extract implements the heuristic symbol extractors. Every
// extractor works on raw lines with regular expressions; nothing here
// builds a syntax tree. Each extractor returns its own accumulator and the
// driver merges them, so extractors can run concurrently over the same
// file set without coordination.
package extract

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// readLines loads a candidate file and splits it into lines. Unreadable
// files are an extraction miss, not an error: the caller gets nil.
func readLines(root, rel string) []string {
	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
	if err != nil {
		return nil
	}
	return strings.Split(string(data), "\n")
}

func hasExt(path string, exts ...string) bool {
	ext := filepath.Ext(path)
	for _, e := range exts {
		if ext == e {
			return true
		}
	}
	return false
}

func isNodeFile(path string) bool {
	return hasExt(path, ".ts", ".tsx", ".js", ".jsx", ".mjs", ".cjs")
}

// dedupSorted deduplicates and sorts a symbol list in place.
func dedupSorted(symbols []string) []string {
	seen := make(map[string]struct{}, len(symbols))
	out := symbols[:0]
	for _, s := range symbols {
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
