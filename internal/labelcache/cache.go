// Package labelcache is the optional SQLite-backed memoization layer
// around pipeline label synthesis (SPEC_FULL §6 "Label cache"): pure
// ambient plumbing around a pure function, not state the pipeline
// itself depends on. Adapted from pkg/db's schema-on-open + DBExecutor
// pattern, narrowed from that package's multi-table word/source/
// word_source schema to a single key/value table.
package labelcache

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS label_cache (
	key        TEXT PRIMARY KEY,
	labels     TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL
);
`

// Cache is a SQLite-backed store mapping a normalized-sentence key to
// its already-synthesized label strings.
type Cache struct {
	db *sql.DB
}

// Open opens (creating if necessary) a SQLite database at path and
// ensures its schema by executing it on open; no PRAGMA is set.
func Open(path string) (*Cache, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("labelcache: open: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("labelcache: migrate: %w", err)
	}
	return &Cache{db: db}, nil
}

// Close releases the underlying database handle.
func (c *Cache) Close() error { return c.db.Close() }

// Get returns the cached label strings for key, and ok=false if key was
// never stored (spec.md §6 "Convert itself keeps no persisted state" —
// a cache miss always falls through to running the pipeline).
func (c *Cache) Get(key string) (labels []string, ok bool, err error) {
	var raw string
	err = c.db.QueryRow(`SELECT labels FROM label_cache WHERE key = ?`, key).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("labelcache: get: %w", err)
	}
	if err := json.Unmarshal([]byte(raw), &labels); err != nil {
		return nil, false, fmt.Errorf("labelcache: decode: %w", err)
	}
	return labels, true, nil
}

// Put stores labels under key, overwriting any previous entry — the
// same ON CONFLICT upsert shape as pkg/db.CreateOrGetWord.
func (c *Cache) Put(key string, labels []string) error {
	raw, err := json.Marshal(labels)
	if err != nil {
		return fmt.Errorf("labelcache: encode: %w", err)
	}
	_, err = c.db.Exec(
		`INSERT INTO label_cache (key, labels, created_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET labels = excluded.labels, created_at = excluded.created_at`,
		key, string(raw), time.Now(),
	)
	if err != nil {
		return fmt.Errorf("labelcache: put: %w", err)
	}
	return nil
}
