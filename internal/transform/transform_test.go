package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kamea-labs/ditrune/internal/ternary"
)

func TestConruneKnownValues(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		output string
	}{
		{"spec example", "210120", "120210"},
		{"all zeros", "000000", "000000"},
		{"all ones", "111111", "222222"},
		{"all twos", "222222", "111111"},
		{"mixed", "012012", "021021"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Conrune(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.output, got)
		})
	}
}

func TestReverseKnownValues(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		output string
	}{
		{"spec example", "210120", "021012"},
		{"all zeros", "000000", "000000"},
		{"palindrome", "120021", "120021"},
		{"ascending", "001122", "221100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Reverse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.output, got)
		})
	}
}

func TestTransformsRejectMalformedInput(t *testing.T) {
	for _, digits := range []string{"", "21012", "2101201", "21012x"} {
		_, err := Conrune(digits)
		assert.True(t, ternary.IsInvalidDigit(err), "Conrune(%q)", digits)

		_, err = Reverse(digits)
		assert.True(t, ternary.IsInvalidDigit(err), "Reverse(%q)", digits)

		_, err = Complex(digits)
		assert.True(t, ternary.IsInvalidDigit(err), "Complex(%q)", digits)
	}
}

// Involution and commutativity are exhaustive invariants over the whole
// domain, and the domain is small enough to check every value.
func TestInvolutionFullDomain(t *testing.T) {
	for v := 0; v < ternary.DomainSize; v++ {
		digits, err := ternary.ToTernary(v)
		require.NoError(t, err)

		c, err := Conrune(digits)
		require.NoError(t, err)
		cc, err := Conrune(c)
		require.NoError(t, err)
		require.Equal(t, digits, cc, "conrune involution failed at %d", v)

		r, err := Reverse(digits)
		require.NoError(t, err)
		rr, err := Reverse(r)
		require.NoError(t, err)
		require.Equal(t, digits, rr, "reverse involution failed at %d", v)
	}
}

func TestComplexCommutesFullDomain(t *testing.T) {
	for v := 0; v < ternary.DomainSize; v++ {
		digits, err := ternary.ToTernary(v)
		require.NoError(t, err)

		cr, err := Complex(digits)
		require.NoError(t, err)

		c, err := Conrune(digits)
		require.NoError(t, err)
		rc, err := Reverse(c)
		require.NoError(t, err)

		require.Equal(t, rc, cr, "conrune/reverse do not commute at %d", v)
	}
}

// The all-zero string is the only conrune fixed point.
func TestConruneUniqueFixedPoint(t *testing.T) {
	fixed := 0
	for v := 0; v < ternary.DomainSize; v++ {
		digits, err := ternary.ToTernary(v)
		require.NoError(t, err)
		c, err := Conrune(digits)
		require.NoError(t, err)
		if c == digits {
			fixed++
			assert.Equal(t, "000000", digits)
		}
	}
	assert.Equal(t, 1, fixed)
}

func TestValueForms(t *testing.T) {
	// 42 = "001120": conrune "002210" = 75, reverse "021100" = 198,
	// complex "012200" = 153.
	got, err := ConruneValue(42)
	require.NoError(t, err)
	assert.Equal(t, 75, got)

	got, err = ReverseValue(42)
	require.NoError(t, err)
	assert.Equal(t, 198, got)

	got, err = ComplexValue(42)
	require.NoError(t, err)
	assert.Equal(t, 153, got)

	_, err = ConruneValue(729)
	assert.True(t, ternary.IsInvalidDomain(err))
}
