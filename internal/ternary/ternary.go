package ternary

// Domain constants. A Ditrune is a 6-digit base-3 number, so the domain is
// exactly 3^6 = 729 values.
const (
	// DigitCount is the fixed width of every Ditrune digit string.
	DigitCount = 6

	// DomainSize is the number of distinct Ditrunes (3^6).
	DomainSize = 729

	// MaxValue is the largest valid Ditrune value.
	MaxValue = DomainSize - 1
)

// powers[i] is 3^(5-i), the positional weight of digit i (MSD first).
var powers = [DigitCount]int{243, 81, 27, 9, 3, 1}

// CheckValue validates that value lies inside the Ditrune domain [0,728].
// Returns a CodecError with code INVALID_DOMAIN otherwise.
func CheckValue(value int) error {
	if value < 0 || value > MaxValue {
		return NewDomainError(value)
	}
	return nil
}

// CheckDigits validates that digits is exactly 6 characters, each in {0,1,2}.
// Returns a CodecError with code INVALID_DIGIT otherwise.
func CheckDigits(digits string) error {
	if len(digits) != DigitCount {
		return NewLengthError(digits)
	}
	for i := 0; i < DigitCount; i++ {
		if c := digits[i]; c < '0' || c > '2' {
			return NewDigitError(digits, i)
		}
	}
	return nil
}

// ToTernary converts a Ditrune value to its fixed 6-character, zero-padded,
// most-significant-digit-first base-3 representation.
//
// Fails with INVALID_DOMAIN if value is outside [0,728].
func ToTernary(value int) (string, error) {
	if err := CheckValue(value); err != nil {
		return "", err
	}
	var buf [DigitCount]byte
	v := value
	for i := DigitCount - 1; i >= 0; i-- {
		buf[i] = byte('0' + v%3)
		v /= 3
	}
	return string(buf[:]), nil
}

// ToDecimal converts a 6-digit base-3 string back to its integer value,
// computing the sum of digit[i] * 3^(5-i).
//
// Fails with INVALID_DIGIT if the string has the wrong length or contains a
// character outside {0,1,2}.
func ToDecimal(digits string) (int, error) {
	if err := CheckDigits(digits); err != nil {
		return 0, err
	}
	value := 0
	for i := 0; i < DigitCount; i++ {
		value += int(digits[i]-'0') * powers[i]
	}
	return value, nil
}

// DigitValue returns the numeric value of a single digit character.
// The caller must have validated the character via CheckDigits.
func DigitValue(c byte) int {
	return int(c - '0')
}

// Balanced maps a digit character onto its balanced-ternary value:
// '0' -> 0, '1' -> +1, '2' -> -1. This is the substitution under which the
// Conrune transform becomes negation (2 is congruent to -1 mod 3).
func Balanced(c byte) int {
	switch c {
	case '1':
		return 1
	case '2':
		return -1
	default:
		return 0
	}
}
