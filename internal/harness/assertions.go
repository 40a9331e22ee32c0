package harness

import "fmt"

// Failure records one expectation that did not hold.
type Failure struct {
	// Step is the index of the failing step.
	Step int

	// Op is the step's operation.
	Op string

	// Field is the result field the expectation targeted.
	Field string

	// Expected and Actual are the normalized values compared.
	Expected any
	Actual   any
}

// String renders the failure for diagnostics.
func (f Failure) String() string {
	return fmt.Sprintf("step %d (%s): %s = %v, want %v", f.Step, f.Op, f.Field, f.Actual, f.Expected)
}

// checkExpectations compares a step's expectations against its result
// fields. Unknown fields fail explicitly rather than passing vacuously.
func checkExpectations(stepIdx int, step Step, result map[string]any) []Failure {
	var failures []Failure
	for field, expected := range step.Expect {
		actual, ok := result[field]
		if !ok {
			failures = append(failures, Failure{
				Step: stepIdx, Op: step.Op, Field: field,
				Expected: expected, Actual: "<no such field>",
			})
			continue
		}
		if !valuesEqual(expected, actual) {
			failures = append(failures, Failure{
				Step: stepIdx, Op: step.Op, Field: field,
				Expected: expected, Actual: actual,
			})
		}
	}
	return failures
}

// valuesEqual compares an expectation from YAML with an engine result.
// Integer widths are normalized so YAML's int matches the engine's int.
func valuesEqual(expected, actual any) bool {
	if ei, ok := asInt64(expected); ok {
		ai, ok := asInt64(actual)
		return ok && ei == ai
	}
	return expected == actual
}

func asInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	case uint64:
		return int64(n), true
	}
	return 0, false
}
