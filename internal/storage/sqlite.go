package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/airowe/codebase-context-skill/internal/ir"
)

// SQLiteStore persists a produced index into a local SQLite database so
// other tooling can query it without re-parsing the JSON artifact.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates or opens a SQLite database.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	s := &SQLiteStore{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to init schema: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) initSchema() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			profile TEXT,
			module_path TEXT,
			generated_at TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS concepts (
			concept TEXT,
			file TEXT,
			position INTEGER,
			PRIMARY KEY (concept, file)
		);`,
		`CREATE TABLE IF NOT EXISTS entry_points (
			key TEXT PRIMARY KEY,
			file TEXT,
			line INTEGER
		);`,
		`CREATE TABLE IF NOT EXISTS exports (
			file TEXT,
			symbol TEXT,
			PRIMARY KEY (file, symbol)
		);`,
		`CREATE TABLE IF NOT EXISTS types (
			name TEXT PRIMARY KEY,
			file TEXT,
			line INTEGER
		);`,
		`CREATE TABLE IF NOT EXISTS edges (
			from_file TEXT,
			to_file TEXT,
			PRIMARY KEY (from_file, to_file)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_exports_file ON exports(file);`,
	}

	for _, q := range queries {
		if _, err := s.db.Exec(q); err != nil {
			return err
		}
	}
	return nil
}

// SaveIndex replaces the stored index with the given one inside a single
// transaction; a failed save leaves the previous contents intact.
func (s *SQLiteStore) SaveIndex(ctx context.Context, idx *ir.Index) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, table := range []string{"concepts", "entry_points", "exports", "types", "edges"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return err
		}
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO runs (profile, module_path, generated_at) VALUES (?, ?, ?)`,
		idx.Profile, idx.ModulePath, idx.GeneratedAt.Format("2006-01-02T15:04:05Z07:00"),
	); err != nil {
		return err
	}

	for concept, files := range idx.Concepts {
		for i, file := range files {
			if _, err := tx.ExecContext(ctx,
				`INSERT OR REPLACE INTO concepts (concept, file, position) VALUES (?, ?, ?)`,
				concept, file, i,
			); err != nil {
				return err
			}
		}
	}

	for key, loc := range idx.EntryPoints {
		if _, err := tx.ExecContext(ctx,
			`INSERT OR REPLACE INTO entry_points (key, file, line) VALUES (?, ?, ?)`,
			key, loc.File, loc.Line,
		); err != nil {
			return err
		}
	}

	for file, symbols := range idx.Exports {
		for _, symbol := range symbols {
			if _, err := tx.ExecContext(ctx,
				`INSERT OR REPLACE INTO exports (file, symbol) VALUES (?, ?)`,
				file, symbol,
			); err != nil {
				return err
			}
		}
	}

	for name, loc := range idx.Types {
		if _, err := tx.ExecContext(ctx,
			`INSERT OR REPLACE INTO types (name, file, line) VALUES (?, ?, ?)`,
			name, loc.File, loc.Line,
		); err != nil {
			return err
		}
	}

	for _, edge := range idx.Edges {
		if _, err := tx.ExecContext(ctx,
			`INSERT OR REPLACE INTO edges (from_file, to_file) VALUES (?, ?)`,
			edge.From, edge.To,
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// FindExports returns the stored symbol list for one file.
func (s *SQLiteStore) FindExports(ctx context.Context, file string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT symbol FROM exports WHERE file = ? ORDER BY symbol`, file)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var symbols []string
	for rows.Next() {
		var symbol string
		if err := rows.Scan(&symbol); err != nil {
			return nil, err
		}
		symbols = append(symbols, symbol)
	}
	return symbols, rows.Err()
}

// FindType looks up a type declaration site by name.
func (s *SQLiteStore) FindType(ctx context.Context, name string) (ir.Location, error) {
	var loc ir.Location
	err := s.db.QueryRowContext(ctx,
		`SELECT file, line FROM types WHERE name = ?`, name).Scan(&loc.File, &loc.Line)
	if err != nil {
		return ir.Location{}, err
	}
	return loc, nil
}

// Dependencies returns the stored dependency targets of one file.
func (s *SQLiteStore) Dependencies(ctx context.Context, file string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT to_file FROM edges WHERE from_file = ? ORDER BY to_file`, file)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var deps []string
	for rows.Next() {
		var dep string
		if err := rows.Scan(&dep); err != nil {
			return nil, err
		}
		deps = append(deps, dep)
	}
	return deps, rows.Err()
}
