package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/kamea-labs/ditrune/internal/ternary"
)

// toCanonicalMap converts a Result's trace to a map[string]any for
// canonical JSON serialization.
func (r *Result) toCanonicalMap() map[string]any {
	traceList := make([]any, len(r.Trace))
	for i, ev := range r.Trace {
		eventMap := map[string]any{
			"op":     ev.Op,
			"seed":   ev.Seed,
			"result": ev.Result,
		}
		if ev.With >= 0 {
			eventMap["with"] = ev.With
		}
		traceList[i] = eventMap
	}
	return map[string]any{
		"scenario_name": r.Scenario.Name,
		"trace":         traceList,
	}
}

// RunWithGolden executes a scenario and compares its trace against a golden
// file in testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Returns an error if scenario execution fails; trace mismatches fail the
// test through goldie.
func RunWithGolden(t *testing.T, runner *Runner, sc *Scenario) (*Result, error) {
	t.Helper()

	result, err := runner.Run(sc)
	if err != nil {
		return nil, err
	}

	traceJSON, err := ternary.MarshalCanonical(result.toCanonicalMap())
	if err != nil {
		return nil, err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, sc.Name, traceJSON)

	return result, nil
}
