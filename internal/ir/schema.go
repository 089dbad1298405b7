package ir

import "time"

// Location points at a declaration inside the project tree.
type Location struct {
	File string `json:"file"`
	Line int    `json:"line"`
}

// Edge is a directed file-to-file dependency. To may be a package
// directory for ecosystems that organize declarations per package.
type Edge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Index is the aggregate produced by one indexing run. It is built fresh
// every run, serialized once, and discarded; there is no incremental state.
type Index struct {
	Profile     string              `json:"profile"`
	ModulePath  string              `json:"module_path,omitempty"`
	GeneratedAt time.Time           `json:"generated_at"`
	Concepts    map[string][]string `json:"concepts"`
	EntryPoints map[string]Location `json:"entry_points"`
	Exports     map[string][]string `json:"exports"`
	Types       map[string]Location `json:"types"`
	Edges       []Edge              `json:"edges"`
}

// NewIndex returns an Index with all accumulator maps initialized.
func NewIndex(profile, modulePath string) *Index {
	return &Index{
		Profile:     profile,
		ModulePath:  modulePath,
		GeneratedAt: time.Now().UTC(),
		Concepts:    make(map[string][]string),
		EntryPoints: make(map[string]Location),
		Exports:     make(map[string][]string),
		Types:       make(map[string]Location),
		Edges:       []Edge{},
	}
}
