// Package index drives the extraction pipeline: detect the profile,
// enumerate files, run the extractors, assemble the aggregate and write
// the artifacts.
package index

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/airowe/codebase-context-skill/internal/config"
	"github.com/airowe/codebase-context-skill/internal/crawler"
	"github.com/airowe/codebase-context-skill/internal/detect"
	"github.com/airowe/codebase-context-skill/internal/extract"
	"github.com/airowe/codebase-context-skill/internal/graph"
	"github.com/airowe/codebase-context-skill/internal/ir"
	"github.com/airowe/codebase-context-skill/internal/render"
	"github.com/airowe/codebase-context-skill/internal/resolve"
	"github.com/airowe/codebase-context-skill/internal/snapshot"
)

// ErrNoSources signals that no supported profile produced any candidate
// files; the CLI maps it to a non-zero exit.
var ErrNoSources = errors.New("no source files found for any supported profile")

// Indexer orchestrates one indexing run.
type Indexer struct {
	cfg *config.Config
	log *slog.Logger
}

// NewIndexer creates an indexer with the given configuration.
func NewIndexer(cfg *config.Config) *Indexer {
	return &Indexer{cfg: cfg, log: slog.Default()}
}

// Run executes the full pipeline over root and returns the assembled
// index. The four extractors and the import resolver each write into
// their own accumulator, so they run concurrently over the same file set
// with no coordination beyond the final join.
func (i *Indexer) Run(root string) (*ir.Index, error) {
	if _, err := os.Stat(root); err != nil {
		return nil, fmt.Errorf("project root: %w", err)
	}

	det := detect.Detect(root)
	i.log.Info("profile detected", "profile", det.Profile, "module", det.ModulePath)

	walker, err := crawler.NewWalker(root, det.Profile, i.cfg.Crawler.Exclude)
	if err != nil {
		return nil, fmt.Errorf("crawler: %w", err)
	}
	files, err := walker.Files()
	if err != nil {
		return nil, fmt.Errorf("enumerate files: %w", err)
	}
	if len(files) == 0 {
		return nil, ErrNoSources
	}
	i.log.Info("files enumerated", "count", len(files))

	idx := ir.NewIndex(string(det.Profile), det.ModulePath)
	resolver := resolve.New(root, det, i.cfg.Resolver.AliasPrefix, i.cfg.Resolver.SourceRoot, files)

	var wg sync.WaitGroup
	wg.Add(5)
	go func() {
		defer wg.Done()
		idx.Concepts = extract.Concepts(files, i.cfg.Concepts.Cap)
	}()
	go func() {
		defer wg.Done()
		idx.EntryPoints = extract.EntryPoints(root, det.Profile, files)
	}()
	go func() {
		defer wg.Done()
		idx.Exports = extract.Exports(root, det.Profile, files)
	}()
	go func() {
		defer wg.Done()
		idx.Types = extract.Types(root, det.Profile, files)
	}()
	go func() {
		defer wg.Done()
		idx.Edges = resolver.Edges(files)
	}()
	wg.Wait()

	i.log.Info("extraction complete",
		"concepts", len(idx.Concepts),
		"entry_points", len(idx.EntryPoints),
		"exports", len(idx.Exports),
		"types", len(idx.Types),
		"edges", len(idx.Edges))

	return idx, nil
}

// BuildGraph loads the index's edges into a graph accumulator for the
// renderers.
func BuildGraph(idx *ir.Index) *graph.Graph {
	g := graph.NewGraph()
	for _, edge := range idx.Edges {
		g.AddEdge(edge)
	}
	return g
}

// WriteArtifacts serializes the index record, the dependency graph in the
// selected format, and the freshness snapshot under the output directory.
// All writes are atomic; a partial run never leaves corrupt artifacts.
func (i *Indexer) WriteArtifacts(root string, idx *ir.Index, format render.Format) error {
	outDir := filepath.Join(root, i.cfg.Output.Dir)

	if err := render.WriteIndex(filepath.Join(outDir, "index.json"), idx); err != nil {
		return fmt.Errorf("write index: %w", err)
	}

	g := BuildGraph(idx)
	graphPath := filepath.Join(outDir, render.GraphFileName(format))
	if err := render.WriteFileAtomic(graphPath, []byte(render.RenderGraph(format, g))); err != nil {
		return fmt.Errorf("write graph: %w", err)
	}

	rec, err := snapshot.Build(root)
	if err != nil {
		return fmt.Errorf("build snapshot: %w", err)
	}
	if err := snapshot.Write(filepath.Join(outDir, "snapshot.json"), rec); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}

	i.log.Info("artifacts written", "dir", outDir, "graph", render.GraphFileName(format))
	return nil
}
