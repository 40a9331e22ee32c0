package harness

import (
	"fmt"

	"github.com/kamea-labs/ditrune/internal/lattice"
	"github.com/kamea-labs/ditrune/internal/mutation"
	"github.com/kamea-labs/ditrune/internal/quadset"
	"github.com/kamea-labs/ditrune/internal/ternary"
	"github.com/kamea-labs/ditrune/internal/transform"
	"github.com/kamea-labs/ditrune/internal/transition"
)

// TraceEvent records one executed step and its result fields.
type TraceEvent struct {
	Op     string
	Seed   int
	With   int // transition only; -1 otherwise
	Result map[string]any
}

// Result is the outcome of running a scenario.
type Result struct {
	Scenario *Scenario
	Trace    []TraceEvent
	Failures []Failure
}

// Passed reports whether every expectation held.
func (r *Result) Passed() bool {
	return len(r.Failures) == 0
}

// Runner executes scenarios against an injected layout.
type Runner struct {
	layout   *lattice.Layout
	mapper   lattice.Mapper
	resolver *quadset.Resolver
}

// NewRunner creates a Runner. The layout's mapper is instantiated once and
// reused across scenarios.
func NewRunner(layout *lattice.Layout) (*Runner, error) {
	mapper, err := layout.NewMapper()
	if err != nil {
		return nil, err
	}
	return &Runner{
		layout:   layout,
		mapper:   mapper,
		resolver: quadset.NewResolver(layout),
	}, nil
}

// Run executes a scenario: every step runs in order, its result is traced,
// and its expectations are checked. Expectation mismatches accumulate as
// Failures; engine errors abort the run.
func (r *Runner) Run(sc *Scenario) (*Result, error) {
	result := &Result{Scenario: sc}

	for i, step := range sc.Steps {
		event, err := r.runStep(step)
		if err != nil {
			return nil, fmt.Errorf("scenario %q step %d (%s): %w", sc.Name, i, step.Op, err)
		}
		result.Trace = append(result.Trace, event)
		result.Failures = append(result.Failures, checkExpectations(i, step, event.Result)...)
	}

	return result, nil
}

func (r *Runner) runStep(step Step) (TraceEvent, error) {
	event := TraceEvent{Op: step.Op, Seed: step.Seed.Value, With: -1}

	switch step.Op {
	case OpQuadset:
		q, err := r.resolver.Resolve(step.Seed.Value)
		if err != nil {
			return TraceEvent{}, err
		}
		event.Result = map[string]any{
			"self":         q.Self,
			"y_mirror":     q.YMirror,
			"anti_self":    q.AntiSelf,
			"x_mirror":     q.XMirror,
			"degenerate":   q.Degenerate(),
			"coincidences": len(q.Coincidences),
		}

	case OpRegion:
		region, err := r.resolver.ClassifyRegion(step.Seed.Value)
		if err != nil {
			return TraceEvent{}, err
		}
		event.Result = map[string]any{
			"key":  region.Key,
			"name": region.Name,
		}

	case OpFamily:
		family, err := mutation.ResolveFamily(step.Seed.Value)
		if err != nil {
			return TraceEvent{}, err
		}
		event.Result = map[string]any{
			"root":       family.Root,
			"root_value": family.RootValue,
			"role":       string(family.Role),
			"outcome":    string(family.Outcome),
			"steps":      family.Steps,
		}

	case OpLocate:
		coord, err := r.mapper.Locate(step.Seed.Value)
		if err != nil {
			return TraceEvent{}, err
		}
		event.Result = map[string]any{
			"x":    coord.X,
			"y":    coord.Y,
			"axis": coord.Axis(),
		}

	case OpTransition:
		event.With = step.With.Value
		value, err := transition.TransgramValue(step.Seed.Value, step.With.Value)
		if err != nil {
			return TraceEvent{}, err
		}
		digits, err := ternary.ToTernary(value)
		if err != nil {
			return TraceEvent{}, err
		}
		event.Result = map[string]any{
			"transgram": value,
			"digits":    digits,
		}

	case OpVector:
		counterpart, err := transform.ConruneValue(step.Seed.Value)
		if err != nil {
			return TraceEvent{}, err
		}
		magnitude := step.Seed.Value - counterpart
		if magnitude < 0 {
			magnitude = -magnitude
		}
		event.Result = map[string]any{
			"counterpart": counterpart,
			"magnitude":   magnitude,
			"trivial":     step.Seed.Value == counterpart,
		}

	default:
		return TraceEvent{}, fmt.Errorf("unknown op %q", step.Op)
	}

	return event, nil
}
