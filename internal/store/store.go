// Package store persists knowledge-base items, personas, brands and
// generated page layouts in SQLite.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"
)

// SQLiteStore implements the generator's content, persona and brand sources
// and the site builder's layout saver.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens or creates a SQLite database at the given path.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// Close closes the store.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func newID() string {
	return ulid.Make().String()
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS knowledge_items (
		id           TEXT PRIMARY KEY,
		workspace_id TEXT NOT NULL,
		entity_type  TEXT NOT NULL,
		content      TEXT NOT NULL,
		metadata     TEXT,
		created_at   TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_knowledge_workspace ON knowledge_items(workspace_id, created_at);

	CREATE TABLE IF NOT EXISTS personas (
		id                  TEXT PRIMARY KEY,
		workspace_id        TEXT NOT NULL,
		name                TEXT NOT NULL,
		communication_style TEXT NOT NULL DEFAULT '',
		goals               TEXT,
		pain_points         TEXT
	);
	CREATE INDEX IF NOT EXISTS idx_personas_workspace ON personas(workspace_id);

	CREATE TABLE IF NOT EXISTS brands (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		colors     TEXT,
		typography TEXT,
		voice      TEXT
	);

	CREATE TABLE IF NOT EXISTS page_layouts (
		id           TEXT PRIMARY KEY,
		website_id   TEXT NOT NULL,
		slug         TEXT NOT NULL,
		page_type    TEXT NOT NULL,
		confidence   REAL NOT NULL,
		generated_by TEXT NOT NULL,
		payload      TEXT NOT NULL,
		created_at   TEXT NOT NULL,
		updated_at   TEXT NOT NULL,
		UNIQUE (website_id, slug)
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// marshalJSON encodes v, storing NULL for empty values.
func marshalJSON(v any, empty bool) (*string, error) {
	if empty {
		return nil, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	str := string(b)
	return &str, nil
}

func unmarshalJSON(raw sql.NullString, v any) error {
	if !raw.Valid || raw.String == "" {
		return nil
	}
	return json.Unmarshal([]byte(raw.String), v)
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}
