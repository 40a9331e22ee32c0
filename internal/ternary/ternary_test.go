package ternary

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToTernaryKnownValues(t *testing.T) {
	tests := []struct {
		value  int
		digits string
	}{
		{0, "000000"},
		{1, "000001"},
		{2, "000002"},
		{3, "000010"},
		{13, "000111"},
		{42, "001120"},
		{364, "111111"},
		{573, "210020"},
		{728, "222222"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d", tt.value), func(t *testing.T) {
			digits, err := ToTernary(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.digits, digits)
			assert.Len(t, digits, DigitCount)
		})
	}
}

func TestToTernaryInvalidDomain(t *testing.T) {
	for _, value := range []int{-1, -729, 729, 1000} {
		t.Run(fmt.Sprintf("%d", value), func(t *testing.T) {
			_, err := ToTernary(value)
			require.Error(t, err)
			assert.True(t, IsInvalidDomain(err))
			assert.False(t, IsInvalidDigit(err))
		})
	}
}

func TestToDecimalInvalidDigit(t *testing.T) {
	tests := []struct {
		name   string
		digits string
	}{
		{"too short", "12012"},
		{"too long", "1201201"},
		{"empty", ""},
		{"bad character", "120130"},
		{"letter", "12012a"},
		{"negative sign", "-12012"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ToDecimal(tt.digits)
			require.Error(t, err)
			assert.True(t, IsInvalidDigit(err))
		})
	}
}

// Round trip is a hard invariant: to_decimal(to_ternary(v)) == v for every
// value in the domain.
func TestRoundTripFullDomain(t *testing.T) {
	for v := 0; v < DomainSize; v++ {
		digits, err := ToTernary(v)
		require.NoError(t, err)
		require.Len(t, digits, DigitCount)

		back, err := ToDecimal(digits)
		require.NoError(t, err)
		require.Equal(t, v, back, "round trip failed for %d (%s)", v, digits)
	}
}

func TestBalanced(t *testing.T) {
	assert.Equal(t, 0, Balanced('0'))
	assert.Equal(t, 1, Balanced('1'))
	assert.Equal(t, -1, Balanced('2'))
}

func TestDecompose(t *testing.T) {
	bg, err := Decompose("210120")
	require.NoError(t, err)

	assert.Equal(t, Bigram{A: '2', B: '0'}, bg.Outer)
	assert.Equal(t, Bigram{A: '1', B: '2'}, bg.Middle)
	assert.Equal(t, Bigram{A: '0', B: '1'}, bg.Core)
	assert.Equal(t, "01", bg.Core.Key())
}

func TestDecomposeInvalid(t *testing.T) {
	_, err := Decompose("21012")
	require.Error(t, err)
	assert.True(t, IsInvalidDigit(err))
}

func TestCoreKey(t *testing.T) {
	key, err := CoreKey("001120")
	require.NoError(t, err)
	assert.Equal(t, "11", key)

	key, err = CoreKey("000000")
	require.NoError(t, err)
	assert.Equal(t, "00", key)
}
