package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/airowe/codebase-context-skill/internal/config"
	"github.com/airowe/codebase-context-skill/internal/index"
	"github.com/airowe/codebase-context-skill/internal/render"
	"github.com/airowe/codebase-context-skill/internal/snapshot"
	"github.com/airowe/codebase-context-skill/internal/storage"
)

var (
	rootCmd = &cobra.Command{
		Use:   "ctxmap",
		Short: "Heuristic codebase indexer for AI coding agents",
	}
	projectRoot string
	configPath  string
	dbPath      string
	graphFormat string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&projectRoot, "root", "r", ".", "Project root to index")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "ctxmap.yaml", "Path to the optional YAML config")
	rootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "Optional SQLite database to persist the index into")

	graphCmd.Flags().StringVarP(&graphFormat, "format", "f", "", "Graph format: mermaid, dot or adjacency")

	rootCmd.AddCommand(indexCmd)
	rootCmd.AddCommand(graphCmd)
	rootCmd.AddCommand(checkCmd)
}

func loadConfig() *config.Config {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

// runPipeline executes the extraction run and writes all artifacts.
func runPipeline(format render.Format) {
	cfg := loadConfig()
	indexer := index.NewIndexer(cfg)

	idx, err := indexer.Run(projectRoot)
	if err != nil {
		log.Fatalf("Indexing failed: %v", err)
	}

	if err := indexer.WriteArtifacts(projectRoot, idx, format); err != nil {
		log.Fatalf("Failed to write artifacts: %v", err)
	}

	if dbPath != "" {
		store, err := storage.NewSQLiteStore(dbPath)
		if err != nil {
			log.Fatalf("Failed to open database: %v", err)
		}
		defer store.Close()
		if err := store.SaveIndex(context.Background(), idx); err != nil {
			log.Fatalf("Failed to persist index: %v", err)
		}
	}

	fmt.Printf("Indexed %s (profile: %s, %d edges)\n", projectRoot, idx.Profile, len(idx.Edges))
}

var indexCmd = &cobra.Command{
	Use:   "index [path]",
	Short: "Build the symbol index and dependency graph",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) > 0 {
			projectRoot = args[0]
		}
		cfg := loadConfig()
		format, err := render.ParseFormat(cfg.Output.Format)
		if err != nil {
			log.Fatalf("Invalid config: %v", err)
		}
		runPipeline(format)
	},
}

var graphCmd = &cobra.Command{
	Use:   "graph [path]",
	Short: "Build artifacts with an explicit dependency graph format",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) > 0 {
			projectRoot = args[0]
		}
		cfg := loadConfig()
		selector := graphFormat
		if selector == "" {
			selector = cfg.Output.Format
		}
		format, err := render.ParseFormat(selector)
		if err != nil {
			log.Fatalf("Invalid format: %v", err)
		}
		runPipeline(format)
	},
}

var checkCmd = &cobra.Command{
	Use:   "check [path]",
	Short: "Report whether the generated index is still fresh",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) > 0 {
			projectRoot = args[0]
		}
		cfg := loadConfig()

		rec, err := snapshot.Load(filepath.Join(projectRoot, cfg.Output.Dir, "snapshot.json"))
		if err != nil {
			log.Fatalf("No snapshot found, run 'ctxmap index' first: %v", err)
		}

		fresh, reason := snapshot.Compare(projectRoot, rec)
		if fresh {
			fmt.Printf("fresh: %s\n", reason)
			return
		}
		fmt.Printf("stale: %s\n", reason)
		os.Exit(1)
	},
}
