package atlas

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// Store provides durable storage for atlas snapshots.
// Uses SQLite with WAL mode for concurrent read access.
type Store struct {
	db *sql.DB
}

// Open creates or opens a SQLite database at the given path.
// Applies required pragmas and the schema automatically.
//
// The database is configured with:
//   - WAL mode for concurrent reads during writes
//   - NORMAL synchronous mode (balance durability/performance)
//   - 5-second busy timeout for lock contention
//   - Foreign key enforcement
//
// This function is idempotent - safe to call multiple times.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// SQLite only supports one writer at a time, so limit connections.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply pragmas: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// applyPragmas sets required SQLite configuration.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}

	return nil
}

// Snapshot describes one persisted atlas snapshot.
type Snapshot struct {
	ID         string `json:"id"`
	Seq        int64  `json:"seq"`
	Layout     string `json:"layout"`
	EntryCount int    `json:"entry_count"`
}

// WriteSnapshot persists a complete atlas as a new snapshot and returns its
// metadata. The snapshot id comes from the generator; the logical sequence
// is assigned inside the transaction, so concurrent writers cannot produce
// duplicate or out-of-order sequences.
//
// The write is atomic: either all 729 entries land or none do.
func (s *Store) WriteSnapshot(ctx context.Context, gen TokenGenerator, a *Atlas) (Snapshot, error) {
	entries := a.Entries()
	snap := Snapshot{
		ID:         gen.Generate(),
		Layout:     a.Layout,
		EntryCount: len(entries),
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Snapshot{}, fmt.Errorf("write snapshot: begin tx: %w", err)
	}
	defer tx.Rollback() // No-op if committed

	if err := tx.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(seq), 0) + 1 FROM snapshots`,
	).Scan(&snap.Seq); err != nil {
		return Snapshot{}, fmt.Errorf("write snapshot: next seq: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO snapshots (id, seq, layout, entry_count)
		VALUES (?, ?, ?, ?)
	`, snap.ID, snap.Seq, snap.Layout, snap.EntryCount); err != nil {
		return Snapshot{}, fmt.Errorf("write snapshot: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO entries
		(snapshot_id, value, digits, x, y, axis, region_key, region_name,
		 y_mirror, anti_self, x_mirror, role, root_value, outcome, vector)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return Snapshot{}, fmt.Errorf("write snapshot: prepare: %w", err)
	}
	defer stmt.Close()

	for _, e := range entries {
		if _, err := stmt.ExecContext(ctx,
			snap.ID, e.Value, e.Digits, e.X, e.Y, boolToInt(e.Axis),
			e.RegionKey, e.RegionName,
			e.YMirror, e.AntiSelf, e.XMirror,
			string(e.Role), e.RootValue, string(e.Outcome), e.Vector,
		); err != nil {
			return Snapshot{}, fmt.Errorf("write snapshot: entry %d: %w", e.Value, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return Snapshot{}, fmt.Errorf("write snapshot: commit: %w", err)
	}
	return snap, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
