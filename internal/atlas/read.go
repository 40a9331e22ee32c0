package atlas

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/kamea-labs/ditrune/internal/mutation"
)

// ErrNoSnapshot indicates the store holds no snapshot matching the request.
var ErrNoSnapshot = errors.New("atlas: no such snapshot")

// LatestSnapshot returns the snapshot with the highest logical sequence.
func (s *Store) LatestSnapshot(ctx context.Context) (Snapshot, error) {
	var snap Snapshot
	err := s.db.QueryRowContext(ctx, `
		SELECT id, seq, layout, entry_count
		FROM snapshots
		ORDER BY seq DESC
		LIMIT 1
	`).Scan(&snap.ID, &snap.Seq, &snap.Layout, &snap.EntryCount)
	if errors.Is(err, sql.ErrNoRows) {
		return Snapshot{}, ErrNoSnapshot
	}
	if err != nil {
		return Snapshot{}, fmt.Errorf("latest snapshot: %w", err)
	}
	return snap, nil
}

// ListSnapshots returns all snapshots in logical-sequence order.
func (s *Store) ListSnapshots(ctx context.Context) ([]Snapshot, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, seq, layout, entry_count
		FROM snapshots
		ORDER BY seq ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	defer rows.Close()

	var snaps []Snapshot
	for rows.Next() {
		var snap Snapshot
		if err := rows.Scan(&snap.ID, &snap.Seq, &snap.Layout, &snap.EntryCount); err != nil {
			return nil, fmt.Errorf("list snapshots: %w", err)
		}
		snaps = append(snaps, snap)
	}
	return snaps, rows.Err()
}

// ReadEntry returns one entry of a snapshot by value.
func (s *Store) ReadEntry(ctx context.Context, snapshotID string, value int) (Entry, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT value, digits, x, y, axis, region_key, region_name,
		       y_mirror, anti_self, x_mirror, role, root_value, outcome, vector
		FROM entries
		WHERE snapshot_id = ? AND value = ?
	`, snapshotID, value)

	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, ErrNoSnapshot
	}
	return e, err
}

// Query is a declarative entry filter compiled to parameterized SQL.
// Zero-valued fields are unconstrained.
type Query struct {
	// RegionKey restricts entries to one Core Bigram region, e.g. "12".
	RegionKey string

	// Role restricts entries to one family role.
	Role mutation.Role

	// AxisOnly restricts entries to axis cells (x=0 or y=0).
	AxisOnly bool
}

// compile builds the WHERE clause and parameter list for the query.
// All values are parameterized, never interpolated, and every query orders
// by value for deterministic results.
func (q Query) compile(snapshotID string) (string, []any) {
	clauses := []string{"snapshot_id = ?"}
	params := []any{snapshotID}

	if q.RegionKey != "" {
		clauses = append(clauses, "region_key = ?")
		params = append(params, q.RegionKey)
	}
	if q.Role != "" {
		clauses = append(clauses, "role = ?")
		params = append(params, string(q.Role))
	}
	if q.AxisOnly {
		clauses = append(clauses, "axis = 1")
	}

	sqlText := `
		SELECT value, digits, x, y, axis, region_key, region_name,
		       y_mirror, anti_self, x_mirror, role, root_value, outcome, vector
		FROM entries
		WHERE ` + strings.Join(clauses, " AND ") + `
		ORDER BY value ASC`
	return sqlText, params
}

// QueryEntries returns the snapshot entries matching a filter, in value
// order.
func (s *Store) QueryEntries(ctx context.Context, snapshotID string, q Query) ([]Entry, error) {
	sqlText, params := q.compile(snapshotID)

	rows, err := s.db.QueryContext(ctx, sqlText, params...)
	if err != nil {
		return nil, fmt.Errorf("query entries: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("query entries: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// scanner abstracts sql.Row and sql.Rows for entry scanning.
type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(row scanner) (Entry, error) {
	var e Entry
	var axis int
	var role, outcome string
	err := row.Scan(
		&e.Value, &e.Digits, &e.X, &e.Y, &axis,
		&e.RegionKey, &e.RegionName,
		&e.YMirror, &e.AntiSelf, &e.XMirror,
		&role, &e.RootValue, &outcome, &e.Vector,
	)
	if err != nil {
		return Entry{}, err
	}
	e.Axis = axis != 0
	e.Role = mutation.Role(role)
	e.Outcome = mutation.Outcome(outcome)
	return e, nil
}
