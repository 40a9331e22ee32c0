package transition

import "github.com/kamea-labs/ditrune/internal/ternary"

// Digit computes the transition digit c = (-(a+b)) mod 3, mapped back into
// {0,1,2}. Total: defined for every pair of ternary digits.
//
// The caller must pass digit values in {0,1,2}; Transgram enforces this for
// whole Ditrunes.
func Digit(a, b int) int {
	return ((-(a + b))%3 + 3) % 3
}

// Transgram applies Digit position-wise across two 6-digit strings,
// producing a third Ditrune.
//
// Fails with INVALID_DIGIT if either input is malformed.
func Transgram(a, b string) (string, error) {
	if err := ternary.CheckDigits(a); err != nil {
		return "", err
	}
	if err := ternary.CheckDigits(b); err != nil {
		return "", err
	}
	var buf [ternary.DigitCount]byte
	for i := 0; i < ternary.DigitCount; i++ {
		buf[i] = byte('0' + Digit(ternary.DigitValue(a[i]), ternary.DigitValue(b[i])))
	}
	return string(buf[:]), nil
}

// TransgramValue is the integer form of Transgram.
//
// Fails with INVALID_DOMAIN if either value is outside [0,728].
func TransgramValue(a, b int) (int, error) {
	da, err := ternary.ToTernary(a)
	if err != nil {
		return 0, err
	}
	db, err := ternary.ToTernary(b)
	if err != nil {
		return 0, err
	}
	out, err := Transgram(da, db)
	if err != nil {
		return 0, err
	}
	return ternary.ToDecimal(out)
}
