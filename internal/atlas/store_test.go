package atlas

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kamea-labs/ditrune/internal/lattice"
	"github.com/kamea-labs/ditrune/internal/mutation"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "atlas.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestWriteAndReadSnapshot(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)
	a := buildTestAtlas(t)

	gen := NewFixedGenerator("snap-1")
	snap, err := store.WriteSnapshot(ctx, gen, a)
	require.NoError(t, err)

	assert.Equal(t, "snap-1", snap.ID)
	assert.Equal(t, int64(1), snap.Seq)
	assert.Equal(t, "balanced", snap.Layout)
	assert.Equal(t, 729, snap.EntryCount)

	e, err := store.ReadEntry(ctx, "snap-1", 42)
	require.NoError(t, err)
	want, err := a.Entry(42)
	require.NoError(t, err)
	assert.Equal(t, want, e)
}

func TestReadEntryMissingSnapshot(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	_, err := store.ReadEntry(ctx, "absent", 0)
	assert.ErrorIs(t, err, ErrNoSnapshot)
}

func TestLatestSnapshotOrdering(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)
	a := buildTestAtlas(t)

	gen := NewFixedGenerator("snap-1", "snap-2")
	_, err := store.WriteSnapshot(ctx, gen, a)
	require.NoError(t, err)
	second, err := store.WriteSnapshot(ctx, gen, a)
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.Seq)

	latest, err := store.LatestSnapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, "snap-2", latest.ID)

	snaps, err := store.ListSnapshots(ctx)
	require.NoError(t, err)
	require.Len(t, snaps, 2)
	assert.Equal(t, "snap-1", snaps[0].ID)
	assert.Equal(t, "snap-2", snaps[1].ID)
}

func TestLatestSnapshotEmpty(t *testing.T) {
	store := openTestStore(t)

	_, err := store.LatestSnapshot(context.Background())
	assert.ErrorIs(t, err, ErrNoSnapshot)
}

func TestQueryEntries(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)
	a := buildTestAtlas(t)

	gen := NewFixedGenerator("snap-1")
	snap, err := store.WriteSnapshot(ctx, gen, a)
	require.NoError(t, err)

	t.Run("by region", func(t *testing.T) {
		entries, err := store.QueryEntries(ctx, snap.ID, Query{RegionKey: "12"})
		require.NoError(t, err)
		assert.Len(t, entries, 81)
		for _, e := range entries {
			assert.Equal(t, "12", e.RegionKey)
		}
	})

	t.Run("by role", func(t *testing.T) {
		entries, err := store.QueryEntries(ctx, snap.ID, Query{Role: mutation.RolePrime})
		require.NoError(t, err)
		assert.Len(t, entries, 9)
	})

	t.Run("axis cells", func(t *testing.T) {
		entries, err := store.QueryEntries(ctx, snap.ID, Query{AxisOnly: true})
		require.NoError(t, err)
		assert.Len(t, entries, 53)
	})

	t.Run("combined filter", func(t *testing.T) {
		entries, err := store.QueryEntries(ctx, snap.ID, Query{RegionKey: "00", AxisOnly: true})
		require.NoError(t, err)
		// Axis cells inside the central 9x9 block: two 9-cell axis
		// segments sharing the origin.
		assert.Len(t, entries, 17)
		for _, e := range entries {
			assert.Equal(t, "00", e.RegionKey)
			assert.True(t, e.Axis)
		}
	})

	t.Run("entries sorted by value", func(t *testing.T) {
		entries, err := store.QueryEntries(ctx, snap.ID, Query{RegionKey: "21"})
		require.NoError(t, err)
		for i := 1; i < len(entries); i++ {
			assert.Less(t, entries[i-1].Value, entries[i].Value)
		}
	})
}

func TestFixedGeneratorPanicsWhenExhausted(t *testing.T) {
	gen := NewFixedGenerator("only")
	assert.Equal(t, "only", gen.Generate())
	assert.Panics(t, func() { gen.Generate() })
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "atlas.db")

	store, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	store, err = Open(path)
	require.NoError(t, err)
	require.NoError(t, store.Close())
}

func TestBuildRejectsBrokenLayout(t *testing.T) {
	layout := &lattice.Layout{
		Name:    "broken",
		Mapper:  lattice.MapperTable,
		Regions: lattice.DefaultLayout().Regions,
		Cells:   []lattice.Cell{{Value: 0, X: 0, Y: 0}},
	}

	_, err := Build(layout)
	require.Error(t, err)
}
