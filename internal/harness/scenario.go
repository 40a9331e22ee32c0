package harness

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kamea-labs/ditrune/internal/ternary"
)

// Scenario is a named sequence of engine operations with expectations.
type Scenario struct {
	// Name identifies the scenario; golden files are keyed by it.
	Name string `yaml:"name"`

	// Description explains what the scenario demonstrates.
	Description string `yaml:"description,omitempty"`

	// Steps are executed in order.
	Steps []Step `yaml:"steps"`
}

// Step is one engine operation over a seed Ditrune.
type Step struct {
	// Op selects the operation: "quadset", "region", "family", "locate",
	// "transition", or "vector".
	Op string `yaml:"op"`

	// Seed is the Ditrune the operation applies to.
	Seed Seed `yaml:"seed"`

	// With is the second operand for binary operations (transition).
	With *Seed `yaml:"with,omitempty"`

	// Expect maps result fields to their expected values; empty means the
	// step only contributes to the trace.
	Expect map[string]any `yaml:"expect,omitempty"`
}

// Seed is a Ditrune given either as an integer in [0,728] or as a 6-digit
// base-3 string. Both forms are validated on decode with the engine's
// explicit error kinds; out-of-range input fails the scenario load, it is
// never clamped.
type Seed struct {
	Value int
}

// UnmarshalYAML accepts an int or a digit string.
func (s *Seed) UnmarshalYAML(node *yaml.Node) error {
	switch node.Tag {
	case "!!int":
		var v int
		if err := node.Decode(&v); err != nil {
			return err
		}
		if err := ternary.CheckValue(v); err != nil {
			return err
		}
		s.Value = v
		return nil
	case "!!str":
		var digits string
		if err := node.Decode(&digits); err != nil {
			return err
		}
		v, err := ternary.ToDecimal(digits)
		if err != nil {
			return err
		}
		s.Value = v
		return nil
	default:
		return fmt.Errorf("seed must be an integer or a 6-digit string, got %s", node.Tag)
	}
}

// LoadScenario reads a scenario from a YAML file and validates its shape.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load scenario: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario parses and validates scenario YAML.
func ParseScenario(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if sc.Name == "" {
		return nil, fmt.Errorf("parse scenario: name is required")
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("parse scenario %q: at least one step is required", sc.Name)
	}
	for i, step := range sc.Steps {
		if !validOp(step.Op) {
			return nil, fmt.Errorf("parse scenario %q: step %d has unknown op %q", sc.Name, i, step.Op)
		}
		if step.Op == OpTransition && step.With == nil {
			return nil, fmt.Errorf("parse scenario %q: step %d: transition requires a with operand", sc.Name, i)
		}
	}
	return &sc, nil
}

// Operation names accepted in scenario steps.
const (
	OpQuadset    = "quadset"
	OpRegion     = "region"
	OpFamily     = "family"
	OpLocate     = "locate"
	OpTransition = "transition"
	OpVector     = "vector"
)

func validOp(op string) bool {
	switch op {
	case OpQuadset, OpRegion, OpFamily, OpLocate, OpTransition, OpVector:
		return true
	}
	return false
}
