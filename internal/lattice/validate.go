package lattice

import (
	"fmt"

	"github.com/kamea-labs/ditrune/internal/ternary"
	"github.com/kamea-labs/ditrune/internal/transition"
)

// Validate exhaustively checks a Mapper against the placement invariants:
//
//   - Locate is defined for every value in [0,728] and lands in the grid
//   - Locate and At are inverse (the mapping is a bijection)
//   - Ditrune 0 sits at the origin
//   - every Core Bigram class occupies exactly one 9x9 sector block
//
// The domain has only 729 cells, so the check is cheap enough to run at
// startup when a layout is injected.
func Validate(m Mapper) error {
	seen := make(map[Coordinate]int, ternary.DomainSize)

	for v := 0; v < ternary.DomainSize; v++ {
		coord, err := m.Locate(v)
		if err != nil {
			return err
		}
		if !coord.InRange() {
			return NewCoordinateRangeError(coord)
		}
		if prev, dup := seen[coord]; dup {
			return &MapperError{
				Code:    ErrCodeNotBijective,
				Message: fmt.Sprintf("cell %s occupied by both %d and %d", coord, prev, v),
				Coord:   coord,
			}
		}
		seen[coord] = v

		back, err := m.At(coord)
		if err != nil {
			return err
		}
		if back != v {
			return &MapperError{
				Code:    ErrCodeNotBijective,
				Message: fmt.Sprintf("At(Locate(%d)) = %d", v, back),
				Value:   v,
			}
		}
	}

	origin, err := m.Locate(0)
	if err != nil {
		return err
	}
	if origin != (Coordinate{}) {
		return &MapperError{
			Code:    ErrCodeOrigin,
			Message: fmt.Sprintf("Ditrune 0 placed at %s, want (0,0)", origin),
			Coord:   origin,
		}
	}

	return validateSectors(m)
}

// validateSectors checks that every Core Bigram class lands in a single 9x9
// sector block, so the Region partition of the domain matches the sector
// partition of the grid.
func validateSectors(m Mapper) error {
	blocks := make(map[string][2]int, 9)

	for v := 0; v < ternary.DomainSize; v++ {
		digits, err := ternary.ToTernary(v)
		if err != nil {
			return err
		}
		key, err := ternary.CoreKey(digits)
		if err != nil {
			return err
		}
		coord, err := m.Locate(v)
		if err != nil {
			return err
		}
		block := [2]int{sectorOf(coord.X), sectorOf(coord.Y)}
		if prev, ok := blocks[key]; ok {
			if prev != block {
				return &MapperError{
					Code:    ErrCodeNotBijective,
					Message: fmt.Sprintf("core bigram %q spans sector blocks %v and %v", key, prev, block),
					Value:   v,
				}
			}
			continue
		}
		blocks[key] = block
	}
	return nil
}

// sectorOf splits a coordinate into thirds: [-13,-5] -> -1, [-4,4] -> 0,
// [5,13] -> +1.
func sectorOf(c int) int {
	switch {
	case c <= -5:
		return -1
	case c >= 5:
		return 1
	default:
		return 0
	}
}

// ValidateResonance verifies the Axial Resonance law over every pair of
// cells symmetric about a lattice axis: the transition of cell(-x,y) with
// cell(+x,y) must be the Ditrune at (0,y), and likewise across the x axis.
//
// Resonance is a property of a concrete mapper instance, not of the Mapper
// contract, so it is checked separately from Validate.
func ValidateResonance(m Mapper) error {
	for fixed := -Extent; fixed <= Extent; fixed++ {
		for off := 1; off <= Extent; off++ {
			// Row: symmetric about the y axis.
			if err := checkResonance(m,
				Coordinate{X: -off, Y: fixed},
				Coordinate{X: off, Y: fixed},
				Coordinate{X: 0, Y: fixed}); err != nil {
				return err
			}
			// Column: symmetric about the x axis.
			if err := checkResonance(m,
				Coordinate{X: fixed, Y: -off},
				Coordinate{X: fixed, Y: off},
				Coordinate{X: fixed, Y: 0}); err != nil {
				return err
			}
		}
	}
	return nil
}

// checkResonance verifies a single symmetric pair against its axis cell.
func checkResonance(m Mapper, left, right, axis Coordinate) error {
	lv, err := m.At(left)
	if err != nil {
		return err
	}
	rv, err := m.At(right)
	if err != nil {
		return err
	}
	av, err := m.At(axis)
	if err != nil {
		return err
	}

	got, err := transition.TransgramValue(lv, rv)
	if err != nil {
		return err
	}
	if got != av {
		return &MapperError{
			Code: ErrCodeResonance,
			Message: fmt.Sprintf("transition of %s and %s is %d, want %d at axis cell %s",
				left, right, got, av, axis),
			Coord: axis,
		}
	}
	return nil
}
