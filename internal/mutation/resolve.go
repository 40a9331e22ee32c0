package mutation

import (
	"fmt"

	"github.com/kamea-labs/ditrune/internal/ternary"
)

// Outcome is the terminal state of a mutation trajectory.
type Outcome string

const (
	// OutcomeConverged indicates the trajectory reached a fixed point.
	OutcomeConverged Outcome = "converged"

	// OutcomeCycleDetected indicates the trajectory revisited a
	// non-fixed-point state.
	OutcomeCycleDetected Outcome = "cycle_detected"
)

// FamilyResult is the immutable resolution of a seed Ditrune: its family
// root and structural role, plus the full mutation trajectory and how it
// terminated.
type FamilyResult struct {
	// Seed is the resolved Ditrune value.
	Seed int `json:"seed"`

	// Digits is the seed's digit string.
	Digits string `json:"digits"`

	// Root is the Prime of the seed's family.
	Root string `json:"root"`

	// RootValue is Root in decimal form.
	RootValue int `json:"root_value"`

	// Role is the seed's structural role within its family.
	Role Role `json:"role"`

	// Outcome is how the mutation trajectory terminated.
	Outcome Outcome `json:"outcome"`

	// Path is every visited state in order, starting at Digits and ending
	// at the fixed point or at the state whose successor closed the cycle.
	Path []string `json:"path"`

	// Cycle holds the states of the detected cycle, in first-visit order,
	// when Outcome is OutcomeCycleDetected.
	Cycle []string `json:"cycle,omitempty"`

	// Steps is the number of Mutate applications performed.
	Steps int `json:"steps"`
}

// CycleDetected reports whether the trajectory closed a cycle instead of
// converging.
func (r FamilyResult) CycleDetected() bool {
	return r.Outcome == OutcomeCycleDetected
}

// ResolveFamily resolves a seed value: it classifies the seed's role, finds
// its family root, and records the full mutation trajectory.
//
// The iteration keeps an explicit visited-state index and terminates when a
// fixed point is reached (Mutate(s)==s) or a previously visited state recurs
// without being a fixed point. The domain size bounds the loop as a hard
// safety cap; with only 729 states, a trajectory must repeat within that
// many steps.
//
// Fails with INVALID_DOMAIN if the seed is outside [0,728].
func ResolveFamily(value int) (FamilyResult, error) {
	digits, err := ternary.ToTernary(value)
	if err != nil {
		return FamilyResult{}, err
	}
	return resolveDigits(value, digits)
}

// ResolveFamilyDigits is the digit-string form of ResolveFamily.
//
// Fails with INVALID_DIGIT on malformed input.
func ResolveFamilyDigits(digits string) (FamilyResult, error) {
	value, err := ternary.ToDecimal(digits)
	if err != nil {
		return FamilyResult{}, err
	}
	return resolveDigits(value, digits)
}

func resolveDigits(value int, digits string) (FamilyResult, error) {
	role, err := Classify(digits)
	if err != nil {
		return FamilyResult{}, err
	}
	root, err := FamilyRoot(digits)
	if err != nil {
		return FamilyResult{}, err
	}
	rootValue, err := ternary.ToDecimal(root)
	if err != nil {
		return FamilyResult{}, err
	}

	result := FamilyResult{
		Seed:      value,
		Digits:    digits,
		Root:      root,
		RootValue: rootValue,
		Role:      role,
	}

	// visited maps each seen state to its index in Path.
	visited := map[string]int{digits: 0}
	result.Path = append(result.Path, digits)

	state := digits
	for step := 0; step < ternary.DomainSize; step++ {
		next, err := Mutate(state)
		if err != nil {
			return FamilyResult{}, err
		}
		result.Steps = step + 1

		if next == state {
			result.Outcome = OutcomeConverged
			return result, nil
		}
		if first, seen := visited[next]; seen {
			result.Outcome = OutcomeCycleDetected
			result.Cycle = append([]string(nil), result.Path[first:]...)
			return result, nil
		}

		visited[next] = len(result.Path)
		result.Path = append(result.Path, next)
		state = next
	}

	// Unreachable: a 729-state system must repeat within 729 steps. Kept as
	// a hard failure rather than a silent loop.
	return FamilyResult{}, fmt.Errorf("mutation of %q did not terminate within %d steps", digits, ternary.DomainSize)
}
