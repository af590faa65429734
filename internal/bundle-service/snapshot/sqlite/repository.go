// Package sqlite provides a SQLite-backed implementation of snapshot.Repository.
//
// WAL mode is enabled on Open so the HTTP handlers reading the latest
// snapshot never block the writer.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jcmexdev/bundle-builder/internal/bundle-service/snapshot"

	// Pure-Go driver, no CGO needed.
	_ "modernc.org/sqlite"
)

// schema is append-only: each save adds a row and the newest row per key is
// the current state.
const schema = `
CREATE TABLE IF NOT EXISTS store_snapshots (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,

    -- Storage key, e.g. "bundle-store".
    storage_key TEXT    NOT NULL,

    -- JSON encoding of the full store state.
    state       TEXT    NOT NULL,

    trace_id    TEXT    NOT NULL DEFAULT '',
    span_id     TEXT    NOT NULL DEFAULT '',

    -- RFC3339 TEXT, SQLite has no native datetime type.
    saved_at    TEXT    NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_store_snapshots_key ON store_snapshots(storage_key, id);
`

const timeLayout = "2006-01-02T15:04:05.999999999Z"

// Repository is the SQLite implementation of snapshot.Repository.
type Repository struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and applies the schema.
//
//	repo, err := sqlite.Open("./data/bundles.db")
func Open(path string) (*Repository, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", path)

	// The modernc driver registers as "sqlite", not "sqlite3".
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open %q: %w", path, err)
	}

	// Single writer connection.
	db.SetMaxOpenConns(1)

	if err := applySchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Repository{db: db}, nil
}

func (r *Repository) Close() error {
	return r.db.Close()
}

// Save appends a snapshot row.
func (r *Repository) Save(ctx context.Context, s *snapshot.Snapshot) error {
	state, err := json.Marshal(s.State)
	if err != nil {
		return fmt.Errorf("sqlite: encode state for %q: %w", s.Key, err)
	}

	const q = `
		INSERT INTO store_snapshots (storage_key, state, trace_id, span_id, saved_at)
		VALUES (?, ?, ?, ?, ?)`

	_, err = r.db.ExecContext(ctx, q,
		s.Key,
		string(state),
		s.TraceID,
		s.SpanID,
		s.SavedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("sqlite: save snapshot %q: %w", s.Key, err)
	}
	return nil
}

// Latest returns the newest snapshot saved under key.
func (r *Repository) Latest(ctx context.Context, key string) (*snapshot.Snapshot, error) {
	const q = `
		SELECT storage_key, state, trace_id, span_id, saved_at
		FROM   store_snapshots
		WHERE  storage_key = ?
		ORDER  BY id DESC
		LIMIT  1`

	var (
		s       snapshot.Snapshot
		state   string
		savedAt string
	)
	err := r.db.QueryRowContext(ctx, q, key).Scan(&s.Key, &state, &s.TraceID, &s.SpanID, &savedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("sqlite: latest %q: %w", key, snapshot.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("sqlite: latest %q: %w", key, err)
	}

	if err := json.Unmarshal([]byte(state), &s.State); err != nil {
		return nil, fmt.Errorf("sqlite: decode state for %q: %w", key, err)
	}
	s.SavedAt, err = parseRFC3339(savedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Prune keeps only the newest keep rows for key and returns how many rows
// were deleted.
func (r *Repository) Prune(ctx context.Context, key string, keep int) (int64, error) {
	const q = `
		DELETE FROM store_snapshots
		WHERE  storage_key = ?
		AND    id NOT IN (
			SELECT id FROM store_snapshots
			WHERE  storage_key = ?
			ORDER  BY id DESC
			LIMIT  ?
		)`

	res, err := r.db.ExecContext(ctx, q, key, key, keep)
	if err != nil {
		return 0, fmt.Errorf("sqlite: prune %q: %w", key, err)
	}
	return res.RowsAffected()
}

func applySchema(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("sqlite: apply schema: %w", err)
	}
	return nil
}
