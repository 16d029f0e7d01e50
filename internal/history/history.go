// Package history keeps a local log of project-document operations in a
// SQLite database: which file was loaded or saved, when, and how many
// items it carried. The CLI records an entry on every load and save and
// lists the most recent ones.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Recorded actions.
const (
	ActionLoad = "load"
	ActionSave = "save"
)

// createProjects is the schema DDL for the history table.
const createProjects = `CREATE TABLE IF NOT EXISTS projects (
    entry_id TEXT PRIMARY KEY,
    path TEXT NOT NULL,
    action TEXT NOT NULL,
    items INTEGER NOT NULL,
    recorded_at TEXT NOT NULL
);`

// Entry is one recorded project operation.
type Entry struct {
	EntryID    string
	Path       string
	Action     string
	Items      int
	RecordedAt time.Time
}

// Log is an open history database.
type Log struct {
	db *sql.DB
}

// Open opens or creates the history database at path, creating parent
// directories as needed.
func Open(path string) (*Log, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}
	if _, err := db.Exec(createProjects); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing history schema: %w", err)
	}
	return &Log{db: db}, nil
}

// Record appends one entry for an operation on a project file.
func (l *Log) Record(path, action string, items int) error {
	entry := Entry{
		EntryID:    newEntryID(),
		Path:       path,
		Action:     action,
		Items:      items,
		RecordedAt: time.Now().UTC(),
	}
	_, err := l.db.Exec(
		`INSERT INTO projects (entry_id, path, action, items, recorded_at) VALUES (?, ?, ?, ?, ?)`,
		entry.EntryID, entry.Path, entry.Action, entry.Items,
		entry.RecordedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("recording history entry: %w", err)
	}
	return nil
}

// Recent returns up to limit entries, newest first.
func (l *Log) Recent(limit int) ([]Entry, error) {
	rows, err := l.db.Query(
		`SELECT entry_id, path, action, items, recorded_at
         FROM projects ORDER BY recorded_at DESC, entry_id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var recordedAt string
		if err := rows.Scan(&e.EntryID, &e.Path, &e.Action, &e.Items, &recordedAt); err != nil {
			return nil, fmt.Errorf("scanning history entry: %w", err)
		}
		ts, err := time.Parse(time.RFC3339, recordedAt)
		if err != nil {
			return nil, fmt.Errorf("parsing history timestamp: %w", err)
		}
		e.RecordedAt = ts
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Close releases the underlying database.
func (l *Log) Close() error {
	return l.db.Close()
}

// newEntryID generates a UUID v7, falling back to v4 when the monotonic
// clock source fails.
func newEntryID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
