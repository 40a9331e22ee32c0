package mutation

import "github.com/kamea-labs/ditrune/internal/ternary"

// RoleCounts tallies the members of one family by role.
type RoleCounts struct {
	Primes   int `json:"primes"`
	Acolytes int `json:"acolytes"`
	Temples  int `json:"temples"`
}

// Total returns the family's member count.
func (c RoleCounts) Total() int {
	return c.Primes + c.Acolytes + c.Temples
}

// Census classifies every Ditrune in the domain and tallies roles per
// family (keyed by Core Bigram). Each of the 9 families holds exactly
// 1 Prime, 8 Acolytes, and 72 Temples; the caller can assert that
// invariant against the returned counts.
func Census() (map[string]RoleCounts, error) {
	census := make(map[string]RoleCounts, 9)

	for v := 0; v < ternary.DomainSize; v++ {
		digits, err := ternary.ToTernary(v)
		if err != nil {
			return nil, err
		}
		key, err := ternary.CoreKey(digits)
		if err != nil {
			return nil, err
		}
		role, err := Classify(digits)
		if err != nil {
			return nil, err
		}

		counts := census[key]
		switch role {
		case RolePrime:
			counts.Primes++
		case RoleAcolyte:
			counts.Acolytes++
		case RoleTemple:
			counts.Temples++
		}
		census[key] = counts
	}

	return census, nil
}
