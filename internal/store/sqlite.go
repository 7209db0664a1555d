// internal/store/sqlite.go
//
// SQLite-backed Store. Each live session is one row holding its JSON
// snapshot; evaluations and key states are rebuilt on load. Only the current
// round is kept: Reset overwrites the row, so no game history accumulates.

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/robalobadob/wordguess/internal/game"
)

const schema = `
CREATE TABLE IF NOT EXISTS sessions (
	id          TEXT PRIMARY KEY,
	mode        TEXT NOT NULL DEFAULT '',
	outcome     TEXT NOT NULL,
	snapshot    TEXT NOT NULL,
	updated_at  TEXT NOT NULL
);
`

// RandFunc returns the target picker for a restored session of the given mode.
type RandFunc func(mode string) game.Rand

var _ Store = (*SQLite)(nil)

// SQLite stores sessions in a SQLite database.
type SQLite struct {
	db    *sql.DB
	words game.WordSource
	rand  RandFunc
}

// OpenSQLite opens (and creates if missing) a SQLite database file and
// applies the schema.
//
//   - Ensures the parent directory exists for relative paths (e.g. ./data/app.db).
//   - Configures busy timeout and WAL journaling.
//   - Uses a single connection, so transactions never contend.
//
// words is used to restore sessions; rnd may be nil, in which case restored
// sessions use game.CryptoRand.
func OpenSQLite(path string, words game.WordSource, rnd RandFunc) (*SQLite, error) {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	if rnd == nil {
		rnd = func(string) game.Rand { return nil }
	}
	return &SQLite{db: db, words: words, rand: rnd}, nil
}

// Close closes the underlying database connection.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (s *SQLite) write(ctx context.Context, ex execer, sess *game.Session) error {
	snap, err := json.Marshal(sess.Snapshot())
	if err != nil {
		return fmt.Errorf("encode session %s: %w", sess.ID(), err)
	}
	_, err = ex.ExecContext(ctx, `
		INSERT INTO sessions (id, mode, outcome, snapshot, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			mode = excluded.mode,
			outcome = excluded.outcome,
			snapshot = excluded.snapshot,
			updated_at = excluded.updated_at`,
		sess.ID(), sess.Mode(), string(sess.Outcome()), string(snap), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("save session %s: %w", sess.ID(), err)
	}
	return nil
}

// queryRower is satisfied by both *sql.DB and *sql.Tx.
type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (s *SQLite) read(ctx context.Context, q queryRower, id string) (*game.Session, error) {
	var raw string
	err := q.QueryRowContext(ctx, `SELECT snapshot FROM sessions WHERE id = ?`, id).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load session %s: %w", id, err)
	}
	var snap game.Snapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		return nil, fmt.Errorf("decode session %s: %w", id, err)
	}
	return game.Restore(s.words, snap, s.rand(snap.Mode))
}

// Save upserts the session row.
func (s *SQLite) Save(ctx context.Context, sess *game.Session) error {
	return s.write(ctx, s.db, sess)
}

// Get loads and restores a session.
func (s *SQLite) Get(ctx context.Context, id string) (*game.Session, error) {
	return s.read(ctx, s.db, id)
}

// Update loads, mutates and saves a session inside one transaction.
func (s *SQLite) Update(ctx context.Context, id string, fn func(*game.Session) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	sess, err := s.read(ctx, tx, id)
	if err != nil {
		return err
	}
	fnErr := fn(sess)
	if err := s.write(ctx, tx, sess); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return fnErr
}

// Delete removes the session row.
func (s *SQLite) Delete(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete session %s: %w", id, err)
	}
	return nil
}
