// Package history keeps a local log of copy operations in SQLite so users
// can see what was placed on the clipboard and when. History failures are
// advisory: a copy never fails because its record could not be written.
package history

import (
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

const schema = `CREATE TABLE IF NOT EXISTS copies (
	id         TEXT PRIMARY KEY,
	url        TEXT NOT NULL,
	label      TEXT NOT NULL,
	format     TEXT NOT NULL,
	method     TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_copies_created_at ON copies(created_at);`

// Formats recorded per copy.
const (
	FormatRich  = "rich"  // html + plain multi-format entry
	FormatPlain = "plain" // plain-text fallback
	FormatHTML  = "html"  // legacy variant, html via external tool
)

// Entry is one recorded copy.
type Entry struct {
	ID        string    `json:"id" yaml:"id"`
	URL       string    `json:"url" yaml:"url"`
	Label     string    `json:"label" yaml:"label"`
	Format    string    `json:"format" yaml:"format"`
	Method    string    `json:"method" yaml:"method"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}

// Store wraps the SQLite history database.
type Store struct {
	db *sql.DB
}

// DefaultPath returns the history database location under the user cache
// directory.
func DefaultPath() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cacheDir, "linkctl", "history.db"), nil
}

// Open opens (creating if needed) the history database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close() //nolint:errcheck
		return nil, err
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Record inserts one copy. A missing ID or timestamp is filled in.
func (s *Store) Record(e Entry) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.Exec(
		`INSERT INTO copies (id, url, label, format, method, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		e.ID, e.URL, e.Label, e.Format, e.Method, e.CreatedAt,
	)
	return err
}

// List returns the most recent entries, newest first. limit <= 0 means all.
func (s *Store) List(limit int) ([]Entry, error) {
	query := `SELECT id, url, label, format, method, created_at FROM copies ORDER BY created_at DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.URL, &e.Label, &e.Format, &e.Method, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Prune deletes entries older than the given age and reports how many were
// removed.
func (s *Store) Prune(olderThan time.Duration) (int64, error) {
	cutoff := time.Now().UTC().Add(-olderThan)
	res, err := s.db.Exec(`DELETE FROM copies WHERE created_at < ?`, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
