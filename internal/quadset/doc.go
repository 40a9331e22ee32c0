// Package quadset computes the canonical symmetry grouping of a Ditrune:
// the four members obtained by Identity, Reversal, Conrune, and their
// composition, plus the 1-of-9 Region classification keyed by the Core
// Bigram.
//
// Quadsets with fewer than four distinct members are surfaced as explicit
// coincidences naming which transforms collided; members are never silently
// deduplicated.
package quadset
