package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Output struct {
		Dir    string `yaml:"dir"`    // artifact directory, relative to project root
		Format string `yaml:"format"` // default graph format: mermaid, dot, adjacency
	} `yaml:"output"`
	Concepts struct {
		Cap int `yaml:"cap"` // max files recorded per concept
	} `yaml:"concepts"`
	Resolver struct {
		AliasPrefix string `yaml:"alias_prefix"` // import alias, e.g. "@/"
		SourceRoot  string `yaml:"source_root"`  // directory the alias maps to
	} `yaml:"resolver"`
	Crawler struct {
		Exclude []string `yaml:"exclude"` // extra glob patterns to skip
	} `yaml:"crawler"`
}

// Default returns the configuration used when no config file is present.
func Default() *Config {
	cfg := &Config{}
	cfg.Output.Dir = ".context"
	cfg.Output.Format = "mermaid"
	cfg.Concepts.Cap = 10
	cfg.Resolver.AliasPrefix = "@/"
	cfg.Resolver.SourceRoot = "src"
	return cfg
}

// LoadConfig reads an optional YAML config file and applies environment
// overrides. A missing file is not an error; defaults are returned.
func LoadConfig(path string) (*Config, error) {
	// 1. Load .env if exists
	_ = godotenv.Load()

	cfg := Default()

	// 2. Load YAML config if present
	if file, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(file, cfg); err != nil {
			return nil, err
		}
	}

	// 3. Override with environment variables if present
	if dir := os.Getenv("CTXMAP_OUTPUT_DIR"); dir != "" {
		cfg.Output.Dir = dir
	}
	if format := os.Getenv("CTXMAP_FORMAT"); format != "" {
		cfg.Output.Format = format
	}
	if v := os.Getenv("CTXMAP_CONCEPT_CAP"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Concepts.Cap = n
		}
	}

	if cfg.Output.Dir == "" {
		cfg.Output.Dir = ".context"
	}
	if cfg.Concepts.Cap <= 0 {
		cfg.Concepts.Cap = 10
	}

	return cfg, nil
}
