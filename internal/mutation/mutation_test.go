package mutation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kamea-labs/ditrune/internal/ternary"
)

func TestMutate(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		output string
	}{
		{"all zeros fixed", "000000", "000000"},
		{"all ones fixed", "111111", "111111"},
		{"spec example", "210120", "101012"},
		{"interior extraction", "012210", "122221"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Mutate(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.output, got)
		})
	}
}

func TestMutateRejectsMalformed(t *testing.T) {
	for _, digits := range []string{"", "21012", "2101201", "21012x"} {
		_, err := Mutate(digits)
		assert.True(t, ternary.IsInvalidDigit(err), "Mutate(%q)", digits)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		digits string
		role   Role
	}{
		{"000000", RolePrime},
		{"111111", RolePrime},
		{"000111", RolePrime},   // Core=(0,1), Body=(0,1), Skin=(0,1)
		{"111000", RolePrime},   // Core=(1,0), Body=(1,0), Skin=(1,0)
		{"100001", RoleAcolyte}, // Core=(0,0)=Body, Skin=(1,1)
		{"011110", RoleAcolyte}, // Core=(1,1)=Body, Skin=(0,0)
		{"010101", RoleTemple},  // Core=(0,1), Body=(1,0)
		{"210120", RoleTemple},  // Core=(0,1), Body=(1,2)
	}

	for _, tt := range tests {
		t.Run(tt.digits, func(t *testing.T) {
			role, err := Classify(tt.digits)
			require.NoError(t, err)
			assert.Equal(t, tt.role, role)
		})
	}
}

func TestFamilyRoot(t *testing.T) {
	tests := []struct {
		digits string
		root   string
	}{
		{"000000", "000000"},
		{"210120", "000111"}, // Core=(0,1)
		{"012210", "222111"}, // Core=(2,1)
		{"111111", "111111"},
	}

	for _, tt := range tests {
		root, err := FamilyRoot(tt.digits)
		require.NoError(t, err)
		assert.Equal(t, tt.root, root)
	}
}

func TestResolveFamilyConverges(t *testing.T) {
	// "000000" and "111111" are fixed points of the mutation rule.
	for _, seed := range []int{0, 364} {
		result, err := ResolveFamily(seed)
		require.NoError(t, err)
		assert.Equal(t, OutcomeConverged, result.Outcome)
		assert.False(t, result.CycleDetected())
		assert.Equal(t, RolePrime, result.Role)
		assert.Equal(t, result.Digits, result.Root)
		assert.Equal(t, []string{result.Digits}, result.Path)
	}
}

func TestResolveFamilyCycleDetected(t *testing.T) {
	// "210120" descends into the two-cycle {"010101","101010"}:
	// 210120 -> 101012 -> 010101 -> 101010 -> 010101 (revisited).
	result, err := ResolveFamilyDigits("210120")
	require.NoError(t, err)

	assert.Equal(t, OutcomeCycleDetected, result.Outcome)
	assert.True(t, result.CycleDetected())
	assert.Equal(t, []string{"210120", "101012", "010101", "101010"}, result.Path)
	assert.Equal(t, []string{"010101", "101010"}, result.Cycle)
	assert.Equal(t, 4, result.Steps)

	// The structural resolution is unaffected by the cycle: the family of
	// Core Bigram (0,1) is rooted at "000111" = 13.
	assert.Equal(t, "000111", result.Root)
	assert.Equal(t, 13, result.RootValue)
	assert.Equal(t, RoleTemple, result.Role)
}

func TestResolveFamilyRejectsBadInputs(t *testing.T) {
	_, err := ResolveFamily(729)
	assert.True(t, ternary.IsInvalidDomain(err))

	_, err = ResolveFamilyDigits("21012")
	assert.True(t, ternary.IsInvalidDigit(err))
}

// Mutation termination: every trajectory in the domain terminates within the
// 729-step cap, as Converged or CycleDetected — never a silent loop.
func TestResolveFamilyTerminatesFullDomain(t *testing.T) {
	outcomes := make(map[Outcome]int)
	for v := 0; v < ternary.DomainSize; v++ {
		result, err := ResolveFamily(v)
		require.NoError(t, err)
		require.LessOrEqual(t, result.Steps, ternary.DomainSize)
		require.Contains(t, []Outcome{OutcomeConverged, OutcomeCycleDetected}, result.Outcome)
		outcomes[result.Outcome]++
	}
	// Both terminal outcomes occur in the domain.
	assert.Greater(t, outcomes[OutcomeConverged], 0)
	assert.Greater(t, outcomes[OutcomeCycleDetected], 0)
}

// Family cardinality: each of the 9 Core Bigram families holds exactly
// 1 Prime, 8 Acolytes, and 72 Temples.
func TestCensusCardinality(t *testing.T) {
	census, err := Census()
	require.NoError(t, err)

	require.Len(t, census, 9)
	for key, counts := range census {
		assert.Equal(t, 1, counts.Primes, "family %q", key)
		assert.Equal(t, 8, counts.Acolytes, "family %q", key)
		assert.Equal(t, 72, counts.Temples, "family %q", key)
		assert.Equal(t, 81, counts.Total(), "family %q", key)
	}
}
