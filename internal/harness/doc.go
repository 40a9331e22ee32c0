// Package harness executes YAML-defined scenarios against the engine and
// compares their traces with golden files.
//
// A scenario is a named sequence of engine operations (quadset, region,
// family, locate, transition, vector) over seed Ditrunes, each step
// optionally carrying expected results. The runner executes the steps,
// records a deterministic trace, and evaluates the expectations; golden
// tests serialize the trace with canonical JSON so byte-level comparison is
// stable across runs and platforms.
package harness
