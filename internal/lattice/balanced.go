package lattice

import "github.com/kamea-labs/ditrune/internal/ternary"

// BalancedMapper encodes each coordinate axis as a 3-digit balanced-ternary
// number over one triad of digits (digit 0 -> 0, 1 -> +1, 2 -> -1):
//
//	X = 9*bal(d3) + 3*bal(d2) + bal(d1)
//	Y = 9*bal(d4) + 3*bal(d5) + bal(d6)
//
// The most significant balanced digit of each axis is a Core Bigram digit,
// so the Core Bigram selects the 9x9 sector block a Ditrune falls in, and
// the Region partition of the grid comes out of the encoding for free.
// Conrune negates every balanced digit, so the conrune counterpart of a
// Ditrune is its point reflection through the origin.
//
// This is one concrete instance of the Mapper contract, not a canonical
// formula; external layouts may supply a TableMapper instead.
type BalancedMapper struct{}

// weight positions for each axis: X reads digits d3,d2,d1 (weights 9,3,1),
// Y reads d4,d5,d6 (weights 9,3,1). Indexes are 0-based into the string.
var (
	xDigits = [3]int{2, 1, 0}
	yDigits = [3]int{3, 4, 5}
)

// Locate returns the coordinate of a Ditrune value.
func (BalancedMapper) Locate(value int) (Coordinate, error) {
	digits, err := ternary.ToTernary(value)
	if err != nil {
		return Coordinate{}, err
	}
	return Coordinate{
		X: triadValue(digits, xDigits),
		Y: triadValue(digits, yDigits),
	}, nil
}

// At returns the Ditrune value at a coordinate.
func (BalancedMapper) At(c Coordinate) (int, error) {
	if !c.InRange() {
		return 0, NewCoordinateRangeError(c)
	}
	var buf [ternary.DigitCount]byte
	fillTriad(&buf, c.X, xDigits)
	fillTriad(&buf, c.Y, yDigits)
	return ternary.ToDecimal(string(buf[:]))
}

// triadValue evaluates three digit positions as a balanced-ternary number
// with weights 9, 3, 1.
func triadValue(digits string, pos [3]int) int {
	v := 0
	for _, p := range pos {
		v = v*3 + ternary.Balanced(digits[p])
	}
	return v
}

// fillTriad decomposes a coordinate in [-13,13] into balanced digits and
// writes the corresponding digit characters at the given positions
// (most significant first).
func fillTriad(buf *[ternary.DigitCount]byte, v int, pos [3]int) {
	for i := 2; i >= 0; i-- {
		r := ((v % 3) + 3) % 3
		var b int
		switch r {
		case 2:
			b = -1
		default:
			b = r
		}
		buf[pos[i]] = balancedChar(b)
		v = (v - b) / 3
	}
}

// balancedChar maps a balanced digit back to its character form.
func balancedChar(b int) byte {
	switch b {
	case 1:
		return '1'
	case -1:
		return '2'
	default:
		return '0'
	}
}
