// Package mutation resolves a Ditrune's family hierarchy. The nuclear
// mutation rule extracts two overlapping interior triads and concatenates
// them; iterating it from a seed either converges to a fixed point or
// revisits a previous state.
//
// The original recursive reduction has no proven termination bound, so it is
// implemented here as bounded iteration with an explicit visited-state set:
// every run terminates within the domain size and ends in one of two stable
// outcomes, Converged or CycleDetected. A cycle is a deterministic,
// reproducible property of its seed under the rule, not a fault; retrying a
// pure function would yield the identical outcome.
//
// Independently of the trajectory, every Ditrune has a structural role in
// its family (the 81 Ditrunes sharing its Core Bigram): the single Prime
// (Core==Body==Skin), one of 8 Acolytes (Core==Body, Skin differs), or one
// of 72 Temples (Core!=Body).
package mutation
