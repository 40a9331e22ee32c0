package mutation

import "github.com/kamea-labs/ditrune/internal/ternary"

// Mutate applies the nuclear mutation rule: the top triad is digits[1:4],
// the bottom triad is digits[2:5], and the result is their concatenation.
// The two triads overlap, which is what drives the reduction toward the
// interior of the string.
//
// Fails with INVALID_DIGIT on malformed input.
func Mutate(digits string) (string, error) {
	if err := ternary.CheckDigits(digits); err != nil {
		return "", err
	}
	return digits[1:4] + digits[2:5], nil
}

// Role is a Ditrune's hierarchical position within its family.
type Role string

const (
	// RolePrime is the family root: Core, Body, and Skin all agree.
	RolePrime Role = "prime"

	// RoleAcolyte shares Core and Body with the Prime but differs in Skin.
	RoleAcolyte Role = "acolyte"

	// RoleTemple differs from the Prime already at the Body level.
	RoleTemple Role = "temple"
)

// Classify assigns the structural role of a digit string by comparing its
// Core (d3,d4), Body (d2,d5), and Skin (d1,d6) bigrams.
//
// Fails with INVALID_DIGIT on malformed input.
func Classify(digits string) (Role, error) {
	bg, err := ternary.Decompose(digits)
	if err != nil {
		return "", err
	}
	if bg.Middle != bg.Core {
		return RoleTemple, nil
	}
	if bg.Outer != bg.Core {
		return RoleAcolyte, nil
	}
	return RolePrime, nil
}

// FamilyRoot returns the Prime of the family a digit string belongs to: the
// unique member whose Outer, Middle, and Core bigrams all equal the Core
// Bigram (a,b), i.e. the string "aaabbb".
//
// Fails with INVALID_DIGIT on malformed input.
func FamilyRoot(digits string) (string, error) {
	if err := ternary.CheckDigits(digits); err != nil {
		return "", err
	}
	a, b := digits[2], digits[3]
	return string([]byte{a, a, a, b, b, b}), nil
}
