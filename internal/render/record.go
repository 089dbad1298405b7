// Package render serializes the accumulated index into its output
// encodings. Every renderer is a pure function of the accumulators, so
// identical inputs always produce identical artifacts modulo the
// generation timestamp inside the index record.
package render

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/airowe/codebase-context-skill/internal/graph"
	"github.com/airowe/codebase-context-skill/internal/ir"
)

// Format selects the dependency graph encoding.
type Format string

const (
	FormatMermaid   Format = "mermaid"
	FormatDot       Format = "dot"
	FormatAdjacency Format = "adjacency"
)

// ErrUnknownFormat is a configuration error; the CLI maps it to a
// non-zero exit.
var ErrUnknownFormat = errors.New("unknown graph format")

// ParseFormat validates a format selector.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatMermaid, FormatDot, FormatAdjacency:
		return Format(s), nil
	}
	return "", fmt.Errorf("%w: %q (want mermaid, dot or adjacency)", ErrUnknownFormat, s)
}

// GraphFileName returns the artifact name for a format.
func GraphFileName(f Format) string {
	switch f {
	case FormatDot:
		return "graph.dot"
	case FormatAdjacency:
		return "graph.txt"
	default:
		return "graph.mmd"
	}
}

// RenderGraph encodes the graph in the selected format.
func RenderGraph(f Format, g *graph.Graph) string {
	switch f {
	case FormatDot:
		return Dot(g)
	case FormatAdjacency:
		return Adjacency(g)
	default:
		return Mermaid(g)
	}
}

// WriteIndex serializes the index record as indented JSON. encoding/json
// emits map keys in sorted order, which keeps the artifact stable.
func WriteIndex(path string, idx *ir.Index) error {
	data, err := json.MarshalIndent(idx, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal index: %w", err)
	}
	return WriteFileAtomic(path, append(data, '\n'))
}
