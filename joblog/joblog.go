// Package joblog persists one row per brochure processing run in SQLite,
// so operators can inspect recent activity without scraping logs.
//
// Usage:
//
//	import _ "modernc.org/sqlite"
//	store, err := joblog.Open("polbrief.db")
package joblog

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
)

const schema = `
CREATE TABLE IF NOT EXISTS brochure_runs (
	run_id      TEXT PRIMARY KEY,
	filename    TEXT NOT NULL,
	size_bytes  INTEGER NOT NULL,
	status      TEXT NOT NULL,
	error       TEXT,
	duration_ms INTEGER NOT NULL,
	created_at  INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_brochure_runs_created ON brochure_runs(created_at DESC);
`

// Run is one processing attempt, successful or not.
type Run struct {
	RunID      string    `json:"run_id"`
	Filename   string    `json:"filename"`
	SizeBytes  int64     `json:"size_bytes"`
	Status     string    `json:"status"` // "success" or "error"
	Error      string    `json:"error,omitempty"`
	DurationMs int64     `json:"duration_ms"`
	CreatedAt  time.Time `json:"created_at"`
}

// Store persists runs. Safe for concurrent use.
type Store struct {
	db    *sql.DB
	newID func() string
}

// Option customises Open behaviour.
type Option func(*Store)

// WithIDGenerator sets a custom run ID generator. Default: "run_" + UUIDv7.
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) { s.newID = gen }
}

func newRunID() string {
	return "run_" + uuid.Must(uuid.NewV7()).String()
}

// Open opens (creating if needed) the run log database at path with
// production-safe pragmas applied. The caller must blank-import an SQLite
// driver registered as "sqlite" (modernc.org/sqlite).
func Open(path string, opts ...Option) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("joblog: mkdir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("joblog: open: %w", err)
	}

	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 10000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("joblog: %s: %w", p, err)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("joblog: exec schema: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("joblog: ping: %w", err)
	}

	s := &Store{db: db, newID: newRunID}
	for _, o := range opts {
		o(s)
	}
	return s, nil
}

// OpenMemory opens an in-memory run log for testing.
// It sets MaxOpenConns(1) so all queries hit the same in-memory database and
// registers t.Cleanup to close it.
func OpenMemory(t testing.TB, opts ...Option) *Store {
	t.Helper()
	s, err := Open(":memory:", opts...)
	if err != nil {
		t.Fatalf("joblog.OpenMemory: %v", err)
	}
	s.db.SetMaxOpenConns(1)
	t.Cleanup(func() { s.Close() })
	return s
}

// Record inserts a run row, filling RunID and CreatedAt when empty.
// Failures are logged, never returned: the run log must not fail the
// request that produced the run.
func (s *Store) Record(ctx context.Context, r *Run) {
	if r.RunID == "" {
		r.RunID = s.newID()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}
	_, err := s.db.ExecContext(ctx, `INSERT INTO brochure_runs
		(run_id, filename, size_bytes, status, error, duration_ms, created_at)
		VALUES (?,?,?,?,?,?,?)`,
		r.RunID, r.Filename, r.SizeBytes, r.Status, r.Error, r.DurationMs, r.CreatedAt.Unix())
	if err != nil {
		slog.Error("joblog: insert run", "error", err, "run_id", r.RunID)
	}
}

// Recent returns the most recent runs, newest first. limit <= 0 means 100.
func (s *Store) Recent(ctx context.Context, limit int) ([]*Run, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := s.db.QueryContext(ctx, `SELECT run_id, filename, size_bytes,
		status, error, duration_ms, created_at
		FROM brochure_runs ORDER BY created_at DESC, run_id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("joblog: query runs: %w", err)
	}
	defer rows.Close()

	runs := []*Run{}
	for rows.Next() {
		var r Run
		var errMsg sql.NullString
		var ts int64
		if err := rows.Scan(&r.RunID, &r.Filename, &r.SizeBytes, &r.Status, &errMsg, &r.DurationMs, &ts); err != nil {
			return nil, fmt.Errorf("joblog: scan run: %w", err)
		}
		if errMsg.Valid {
			r.Error = errMsg.String
		}
		r.CreatedAt = time.Unix(ts, 0)
		runs = append(runs, &r)
	}
	return runs, rows.Err()
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
