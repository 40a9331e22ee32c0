package transition

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kamea-labs/ditrune/internal/ternary"
)

// Totality: Digit is defined and lands in {0,1,2} for all 9 digit pairs.
func TestDigitTotality(t *testing.T) {
	expected := map[[2]int]int{
		{0, 0}: 0, {0, 1}: 2, {0, 2}: 1,
		{1, 0}: 2, {1, 1}: 1, {1, 2}: 0,
		{2, 0}: 1, {2, 1}: 0, {2, 2}: 2,
	}

	for a := 0; a <= 2; a++ {
		for b := 0; b <= 2; b++ {
			t.Run(fmt.Sprintf("%d,%d", a, b), func(t *testing.T) {
				c := Digit(a, b)
				assert.GreaterOrEqual(t, c, 0)
				assert.LessOrEqual(t, c, 2)
				assert.Equal(t, expected[[2]int{a, b}], c)
			})
		}
	}
}

func TestDigitSymmetric(t *testing.T) {
	for a := 0; a <= 2; a++ {
		for b := 0; b <= 2; b++ {
			assert.Equal(t, Digit(a, b), Digit(b, a))
		}
	}
}

func TestTransgram(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		out  string
	}{
		{"zeros are identity-free", "000000", "000000", "000000"},
		{"self against self", "111111", "111111", "111111"},
		{"ones against twos", "111111", "222222", "000000"},
		{"mixed", "210120", "120210", "000000"},
		{"spec alphabet", "012012", "000000", "021021"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Transgram(tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.out, got)
		})
	}
}

func TestTransgramRejectsMalformed(t *testing.T) {
	_, err := Transgram("21012", "000000")
	assert.True(t, ternary.IsInvalidDigit(err))

	_, err = Transgram("000000", "00000x")
	assert.True(t, ternary.IsInvalidDigit(err))
}

func TestTransgramValue(t *testing.T) {
	// 364 = "111111", 728 = "222222": transition digit of (1,2) is 0.
	got, err := TransgramValue(364, 728)
	require.NoError(t, err)
	assert.Equal(t, 0, got)

	_, err = TransgramValue(-1, 0)
	assert.True(t, ternary.IsInvalidDomain(err))
	_, err = TransgramValue(0, 729)
	assert.True(t, ternary.IsInvalidDomain(err))
}

func TestTransgramSelf(t *testing.T) {
	// -(2a) mod 3 == a mod 3, so the transgram of any Ditrune with itself
	// is the Ditrune itself.
	for _, digits := range []string{"000000", "111111", "222222", "210120"} {
		got, err := Transgram(digits, digits)
		require.NoError(t, err)
		assert.Equal(t, digits, got)
	}
}
