package transform

import "github.com/kamea-labs/ditrune/internal/ternary"

// Conrune applies the per-digit substitution 0->0, 1->2, 2->1.
//
// Conrune is an involution: Conrune(Conrune(t)) == t. Its unique fixed point
// is "000000", since a fixed point requires the absence of digits 1 and 2.
//
// Fails with INVALID_DIGIT on malformed input.
func Conrune(digits string) (string, error) {
	if err := ternary.CheckDigits(digits); err != nil {
		return "", err
	}
	var buf [ternary.DigitCount]byte
	for i := 0; i < ternary.DigitCount; i++ {
		switch digits[i] {
		case '1':
			buf[i] = '2'
		case '2':
			buf[i] = '1'
		default:
			buf[i] = '0'
		}
	}
	return string(buf[:]), nil
}

// Reverse reverses the digit order. Involution.
//
// Fails with INVALID_DIGIT on malformed input.
func Reverse(digits string) (string, error) {
	if err := ternary.CheckDigits(digits); err != nil {
		return "", err
	}
	var buf [ternary.DigitCount]byte
	for i := 0; i < ternary.DigitCount; i++ {
		buf[i] = digits[ternary.DigitCount-1-i]
	}
	return string(buf[:]), nil
}

// Complex applies Conrune after Reversal. The two primitives act on
// independent aspects of the string (digit identity vs digit position), so
// Conrune(Reverse(t)) == Reverse(Conrune(t)) always holds.
//
// Fails with INVALID_DIGIT on malformed input.
func Complex(digits string) (string, error) {
	reversed, err := Reverse(digits)
	if err != nil {
		return "", err
	}
	return Conrune(reversed)
}

// ConruneValue is the integer form of Conrune: it maps a Ditrune value to
// the value of its conrune counterpart.
//
// Fails with INVALID_DOMAIN if value is outside [0,728].
func ConruneValue(value int) (int, error) {
	digits, err := ternary.ToTernary(value)
	if err != nil {
		return 0, err
	}
	swapped, err := Conrune(digits)
	if err != nil {
		return 0, err
	}
	return ternary.ToDecimal(swapped)
}

// ReverseValue is the integer form of Reverse.
//
// Fails with INVALID_DOMAIN if value is outside [0,728].
func ReverseValue(value int) (int, error) {
	digits, err := ternary.ToTernary(value)
	if err != nil {
		return 0, err
	}
	reversed, err := Reverse(digits)
	if err != nil {
		return 0, err
	}
	return ternary.ToDecimal(reversed)
}

// ComplexValue is the integer form of Complex.
//
// Fails with INVALID_DOMAIN if value is outside [0,728].
func ComplexValue(value int) (int, error) {
	digits, err := ternary.ToTernary(value)
	if err != nil {
		return 0, err
	}
	composed, err := Complex(digits)
	if err != nil {
		return 0, err
	}
	return ternary.ToDecimal(composed)
}
