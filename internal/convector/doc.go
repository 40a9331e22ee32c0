// Package convector computes the Conrune-distance fingerprint of the full
// domain: for every Ditrune v, the unordered pair {v, Conrune(v)} and its
// magnitude |v - Conrune(v)|, plus a uniqueness verification across all
// pair magnitudes.
//
// Each of the 729 computations is independent, so the batch is spread
// across a worker pool with no locking beyond result collection.
// Cancellation is an optimization only: the analysis is pure and needs no
// timeout or retry semantics.
package convector
