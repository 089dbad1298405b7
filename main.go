package main

import (
	"fmt"
	"log"

	"github.com/airowe/codebase-context-skill/internal/config"
	"github.com/airowe/codebase-context-skill/internal/index"
	"github.com/airowe/codebase-context-skill/internal/render"
)

// Minimal entrypoint: index the current directory with the default
// configuration. The cobra CLI in cmd/ctxmap is the full interface.
func main() {
	cfg, err := config.LoadConfig("ctxmap.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	format, err := render.ParseFormat(cfg.Output.Format)
	if err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	indexer := index.NewIndexer(cfg)

	fmt.Println("Scanning project...")
	idx, err := indexer.Run(".")
	if err != nil {
		log.Fatalf("Indexing failed: %v", err)
	}

	if err := indexer.WriteArtifacts(".", idx, format); err != nil {
		log.Fatalf("Failed to write artifacts: %v", err)
	}

	fmt.Printf("Done: profile %s, %d concepts, %d entry points, %d edges\n",
		idx.Profile, len(idx.Concepts), len(idx.EntryPoints), len(idx.Edges))
}
