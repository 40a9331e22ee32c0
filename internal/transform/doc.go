// Package transform provides the pure digit-level Ditrune transforms:
// Conrune (swap 1<->2), Reversal (reverse digit order), and their
// composition. Both primitives are involutions, and they commute, so the
// four transforms {Identity, Reversal, Conrune, Conrune∘Reversal} form a
// Klein four-group over the digit strings.
package transform
