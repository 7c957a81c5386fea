// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/statestore/store.go
// Summary: SQLite-backed persistence of viewport scroll offsets.

package statestore

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/framegrace/texelscroll/config"
	"github.com/framegrace/texelscroll/texelui/scroll"
)

// ErrNotFound is returned by Load when no offset is stored for a key.
var ErrNotFound = errors.New("statestore: key not found")

// DefaultFileName is the database file under the config root.
const DefaultFileName = "state.db"

const schema = `
CREATE TABLE IF NOT EXISTS viewport_offsets (
    key TEXT PRIMARY KEY,
    scroll_top INTEGER NOT NULL,
    updated_at INTEGER NOT NULL    -- UnixNano
);
`

// Store keeps one offset per key.
type Store struct {
	db   *sql.DB
	path string

	mu     sync.Mutex
	closed bool
}

var _ scroll.OffsetStore = (*Store)(nil)

// Open opens or creates the database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	dsn := path +
		"?_pragma=journal_mode(WAL)" +
		"&_pragma=synchronous(NORMAL)" +
		"&_pragma=busy_timeout(2000)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	return &Store{db: db, path: path}, nil
}

// OpenFromConfig opens the store described by the system config section
// "statestore". It returns nil, nil when the store is disabled.
func OpenFromConfig(cfg config.Config) (*Store, error) {
	if !cfg.GetBool("statestore", "enabled", true) {
		return nil, nil
	}
	path := cfg.GetString("statestore", "path", "")
	if path == "" {
		p, err := config.DataPath(DefaultFileName)
		if err != nil {
			return nil, err
		}
		path = p
	}
	return Open(path)
}

// Path returns the database file path.
func (s *Store) Path() string { return s.path }

// Load returns the stored offset for key, or ErrNotFound.
func (s *Store) Load(key string) (int, error) {
	var off int
	err := s.db.QueryRow("SELECT scroll_top FROM viewport_offsets WHERE key = ?", key).Scan(&off)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("load %q: %w", key, err)
	}
	return off, nil
}

// Save stores offset under key, replacing any previous value.
func (s *Store) Save(key string, offset int) error {
	_, err := s.db.Exec(`
		INSERT INTO viewport_offsets (key, scroll_top, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET scroll_top = excluded.scroll_top, updated_at = excluded.updated_at`,
		key, offset, time.Now().UnixNano())
	if err != nil {
		return fmt.Errorf("save %q: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (s *Store) Delete(key string) error {
	if _, err := s.db.Exec("DELETE FROM viewport_offsets WHERE key = ?", key); err != nil {
		return fmt.Errorf("delete %q: %w", key, err)
	}
	return nil
}

// UpdatedAt reports when key was last saved.
func (s *Store) UpdatedAt(key string) (time.Time, error) {
	var ns int64
	err := s.db.QueryRow("SELECT updated_at FROM viewport_offsets WHERE key = ?", key).Scan(&ns)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, ErrNotFound
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("updated_at %q: %w", key, err)
	}
	return time.Unix(0, ns), nil
}

// LoadOffset implements scroll.OffsetStore.
func (s *Store) LoadOffset(key string) (int, bool, error) {
	off, err := s.Load(key)
	if errors.Is(err, ErrNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return off, true, nil
}

// SaveOffset implements scroll.OffsetStore.
func (s *Store) SaveOffset(key string, offset int) error {
	if err := s.Save(key, offset); err != nil {
		return err
	}
	log.Printf("[STATESTORE] saved %q = %d", key, offset)
	return nil
}

// Close closes the database. Further calls are no-ops.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}
