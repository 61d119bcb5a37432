// internal/results/results.go
//
// SQLite persistence for finished solves.
// Responsibilities:
//   - Open the database with safe defaults (WAL, busy timeout, FKs).
//   - Apply the idempotent schema on startup.
//   - Record each completed solve and serve the recent-solves query.

package results

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS solves (
    session_id  TEXT PRIMARY KEY,
    answer      TEXT NOT NULL,
    turns       INTEGER NOT NULL,
    started_at  TEXT NOT NULL,
    finished_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_solves_finished_at ON solves(finished_at DESC);
`

// Solve is one completed solver session.
type Solve struct {
	SessionID  string    `json:"sessionId"`
	Answer     string    `json:"answer"`
	Turns      int       `json:"turns"`
	StartedAt  time.Time `json:"startedAt"`
	FinishedAt time.Time `json:"finishedAt"`
}

// Store wraps the solves database.
type Store struct {
	db *sql.DB
}

// Open opens (creating if missing) the SQLite database at dsn and applies
// the schema. The parent directory is created for relative paths like
// ./data/solves.db.
func Open(dsn string) (*Store, error) {
	if dir := filepath.Dir(dsn); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA foreign_keys = ON;`); err != nil {
		return nil, fmt.Errorf("set pragmas: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error { return s.db.Close() }

// Insert records a completed solve. Replaying the same session is ignored.
func (s *Store) Insert(ctx context.Context, r Solve) error {
	_, err := s.db.ExecContext(ctx, `
        INSERT OR IGNORE INTO solves
            (session_id, answer, turns, started_at, finished_at)
        VALUES (?, ?, ?, ?, ?)`,
		r.SessionID, r.Answer, r.Turns,
		r.StartedAt.UTC().Format(time.RFC3339),
		r.FinishedAt.UTC().Format(time.RFC3339),
	)
	return err
}

// Recent returns the most recently finished solves, newest first.
// Default limit is 20 if not specified.
func (s *Store) Recent(ctx context.Context, limit int) ([]Solve, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
        SELECT session_id, answer, turns, started_at, finished_at
        FROM solves
        ORDER BY finished_at DESC, session_id
        LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Solve, 0, limit)
	for rows.Next() {
		var (
			r        Solve
			started  string
			finished string
		)
		if err := rows.Scan(&r.SessionID, &r.Answer, &r.Turns, &started, &finished); err != nil {
			return nil, err
		}
		r.StartedAt, _ = time.Parse(time.RFC3339, started)
		r.FinishedAt, _ = time.Parse(time.RFC3339, finished)
		out = append(out, r)
	}
	return out, rows.Err()
}
