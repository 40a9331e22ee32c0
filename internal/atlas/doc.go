// Package atlas materializes the full Ditrune domain into an immutable
// 729-entry index: digit string, lattice coordinate, region, quadset
// members, family resolution, and conrune vector for every value.
//
// The index is computed once from an injected layout and shared read-only;
// nothing in it mutates after Build. Snapshots of the index can be persisted
// to SQLite for downstream collaborators (renderers, correspondence
// decoration) that want the dataset without linking the engine. Snapshots
// are identified by UUIDv7 tokens ordered by a logical sequence; the store
// keeps no wall-clock timestamps and records no per-query history.
package atlas
