// Package store persists a resolved build graph to SQLite so repeated
// queries don't re-parse the project description files. The index holds
// projects, targets, resolved target dependencies, and package
// dependencies; a reindex replaces the whole graph in one transaction.
package store

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// Store is the SQLite data access layer for the build-graph index.
type Store struct {
	db *sql.DB
}

// NewStore opens a SQLite database at dbPath with WAL mode enabled.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=30000")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for use in transactions.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Migrate creates all tables and indexes. Idempotent.
func (s *Store) Migrate() error {
	_, err := s.db.Exec(schemaDDL)
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

const schemaDDL = `
CREATE TABLE IF NOT EXISTS projects (
  id              INTEGER PRIMARY KEY,
  name            TEXT NOT NULL,
  path            TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS targets (
  id              INTEGER PRIMARY KEY,
  project_id      INTEGER NOT NULL REFERENCES projects(id),
  name            TEXT NOT NULL,
  product_path    TEXT NOT NULL DEFAULT ''
);

-- target_dependencies stores RESOLVED identifiers (product path or declared
-- name); position preserves the declared dependency order.
CREATE TABLE IF NOT EXISTS target_dependencies (
  id              INTEGER PRIMARY KEY,
  target_id       INTEGER NOT NULL REFERENCES targets(id),
  position        INTEGER NOT NULL,
  identifier      TEXT NOT NULL,
  kind            TEXT NOT NULL CHECK (kind IN ('native', 'package'))
);

CREATE TABLE IF NOT EXISTS packages (
  id              INTEGER PRIMARY KEY,
  project_id      INTEGER NOT NULL REFERENCES projects(id),
  name            TEXT NOT NULL,
  repository_url  TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_targets_name ON targets(name);
CREATE INDEX IF NOT EXISTS idx_target_dependencies_target ON target_dependencies(target_id, position);
CREATE INDEX IF NOT EXISTS idx_packages_project ON packages(project_id);
`
