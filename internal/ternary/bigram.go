package ternary

// Bigram is an ordered pair of ternary digit characters.
type Bigram struct {
	A byte // first digit of the pair
	B byte // second digit of the pair
}

// Key returns the two-character string form of the bigram, e.g. "12".
// Used as the lookup key for Region tables.
func (b Bigram) Key() string {
	return string([]byte{b.A, b.B})
}

// Bigrams is the three-level decomposition of a Ditrune. The pairing is
// intentionally non-adjacent: each level pairs a digit from the front half
// with its mirror from the back half.
//
//	Outer  = (d1, d6)   the Skin
//	Middle = (d2, d5)   the Body
//	Core   = (d3, d4)   the innermost pair; keys Region and Family
//
// This decomposition is the sole interface consumed by the sonification
// subsystem.
type Bigrams struct {
	Outer  Bigram
	Middle Bigram
	Core   Bigram
}

// Decompose splits a validated 6-digit string into its Outer, Middle, and
// Core bigrams. Fails with INVALID_DIGIT on malformed input.
func Decompose(digits string) (Bigrams, error) {
	if err := CheckDigits(digits); err != nil {
		return Bigrams{}, err
	}
	return Bigrams{
		Outer:  Bigram{A: digits[0], B: digits[5]},
		Middle: Bigram{A: digits[1], B: digits[4]},
		Core:   Bigram{A: digits[2], B: digits[3]},
	}, nil
}

// CoreKey returns the Core Bigram key of a validated digit string without
// allocating the full decomposition.
func CoreKey(digits string) (string, error) {
	if err := CheckDigits(digits); err != nil {
		return "", err
	}
	return digits[2:4], nil
}
