// Package lattice maps Ditrunes onto the bounded 27x27 coordinate grid.
//
// The coordinate encoding is deliberately pluggable: a Mapper is an injected
// bijection between the 729 Ditrunes and the 729 cells of [-13,13]^2, loaded
// from a Layout configuration rather than exposed as a single compiled-in
// arithmetic rule. Any Mapper must satisfy the same invariants, which
// Validate and ValidateResonance check exhaustively:
//
//   - exactly one Ditrune per cell and vice versa
//   - Ditrune 0 sits at the origin (0,0)
//   - every Core Bigram class occupies exactly one 9x9 sector block
//   - the Axial Resonance law: the transition of two cells symmetric about
//     a lattice axis is the Ditrune at the axis cell for that row or column
//
// Two Mapper implementations ship with the package: BalancedMapper, a
// per-digit balanced-ternary encoding, and TableMapper, built from an
// externally supplied coordinate table.
package lattice
