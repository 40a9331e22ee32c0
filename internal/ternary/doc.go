// Package ternary provides the foundational Ditrune representation: the
// bidirectional codec between integers in [0,728] and fixed-width 6-digit
// base-3 strings, the bigram decomposition, and canonical JSON serialization
// for snapshots and golden traces.
//
// This package contains the base layer only. All other internal packages
// import ternary; ternary imports nothing internal. This keeps the codec the
// foundational layer with no circular dependencies.
//
// Key design constraints:
//   - The domain is fixed at exactly 6 digits (729 values); this is not a
//     variable-width ternary library
//   - Out-of-range and malformed inputs fail with explicit error codes,
//     never clamped or silently coerced
//   - Canonical JSON forbids floats and null (determinism)
package ternary
