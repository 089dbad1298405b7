// Package snapshot records the structural fingerprint of a project root so
// a later run can tell whether the generated index is stale without
// re-extracting anything.
package snapshot

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/airowe/codebase-context-skill/internal/render"
)

// configFiles are the marker and configuration files whose content feeds
// the snapshot. Missing files are simply absent from the record.
var configFiles = []string{
	"package.json",
	"tsconfig.json",
	"pyproject.toml",
	"requirements.txt",
	"go.mod",
	"Cargo.toml",
}

// Record is the snapshot consumed by the freshness check.
type Record struct {
	GeneratedAt  time.Time         `json:"generated_at"`
	LayoutHash   string            `json:"layout_hash"`
	ConfigHashes map[string]string `json:"config_hashes"`
}

// Build fingerprints the current on-disk state of root.
func Build(root string) (*Record, error) {
	layout, err := layoutHash(root)
	if err != nil {
		return nil, fmt.Errorf("hash layout: %w", err)
	}

	rec := &Record{
		GeneratedAt:  time.Now().UTC(),
		LayoutHash:   layout,
		ConfigHashes: make(map[string]string),
	}
	for _, name := range configFiles {
		data, err := os.ReadFile(filepath.Join(root, name))
		if err != nil {
			continue
		}
		sum := sha256.Sum256(data)
		rec.ConfigHashes[name] = hex.EncodeToString(sum[:])
	}
	return rec, nil
}

// Write stores the record under path, atomically.
func Write(path string, rec *Record) error {
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return err
	}
	return render.WriteFileAtomic(path, append(data, '\n'))
}

// Load reads a previously written record.
func Load(path string) (*Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return &rec, nil
}

// Compare checks the record against current on-disk state. It returns
// whether the index is still fresh plus a human-readable reason.
func Compare(root string, rec *Record) (bool, string) {
	layout, err := layoutHash(root)
	if err != nil {
		return false, fmt.Sprintf("cannot read project root: %v", err)
	}
	if layout != rec.LayoutHash {
		return false, "directory layout changed"
	}

	for _, name := range configFiles {
		data, err := os.ReadFile(filepath.Join(root, name))
		recorded, had := rec.ConfigHashes[name]
		if err != nil {
			if had {
				return false, name + " was removed"
			}
			continue
		}
		sum := sha256.Sum256(data)
		current := hex.EncodeToString(sum[:])
		if !had {
			return false, name + " was added"
		}
		if current != recorded {
			return false, name + " changed"
		}
	}
	return true, "index is up to date"
}

// layoutHash digests the sorted first- and second-level directory entries.
// Deeper changes are deliberately invisible: the snapshot is a cheap
// staleness signal, not a full tree hash.
func layoutHash(root string) (string, error) {
	var names []string

	top, err := os.ReadDir(root)
	if err != nil {
		return "", err
	}
	for _, entry := range top {
		name := entry.Name()
		if strings.HasPrefix(name, ".") || name == "node_modules" || name == "vendor" {
			continue
		}
		names = append(names, name)
		if !entry.IsDir() {
			continue
		}
		second, err := os.ReadDir(filepath.Join(root, name))
		if err != nil {
			continue
		}
		for _, sub := range second {
			names = append(names, name+"/"+sub.Name())
		}
	}

	sort.Strings(names)
	h := sha256.New()
	for _, name := range names {
		h.Write([]byte(name))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
