package lattice

import (
	"fmt"

	"github.com/kamea-labs/ditrune/internal/ternary"
)

// TableMapper is a Mapper built from an externally supplied coordinate
// table, the injected form of the correspondence data source. The table is
// checked for bijectivity at construction and immutable afterwards.
type TableMapper struct {
	byValue [ternary.DomainSize]Coordinate
	byCell  map[Coordinate]int
}

// NewTableMapper builds a TableMapper from a coordinate table.
//
// The table must contain exactly one row per Ditrune value, exactly one row
// per cell of [-13,13]^2, and must place value 0 at the origin. Violations
// fail with NOT_BIJECTIVE or ORIGIN_MISMATCH; nothing is repaired or
// deduplicated silently.
func NewTableMapper(cells []Cell) (*TableMapper, error) {
	if len(cells) != ternary.DomainSize {
		return nil, &MapperError{
			Code:    ErrCodeNotBijective,
			Message: fmt.Sprintf("coordinate table has %d rows, want %d", len(cells), ternary.DomainSize),
		}
	}

	m := &TableMapper{byCell: make(map[Coordinate]int, ternary.DomainSize)}
	seen := make([]bool, ternary.DomainSize)

	for _, cell := range cells {
		if err := ternary.CheckValue(cell.Value); err != nil {
			return nil, err
		}
		coord := Coordinate{X: cell.X, Y: cell.Y}
		if !coord.InRange() {
			return nil, NewCoordinateRangeError(coord)
		}
		if seen[cell.Value] {
			return nil, &MapperError{
				Code:    ErrCodeNotBijective,
				Message: fmt.Sprintf("value %d appears more than once", cell.Value),
				Value:   cell.Value,
			}
		}
		if prev, dup := m.byCell[coord]; dup {
			return nil, &MapperError{
				Code:    ErrCodeNotBijective,
				Message: fmt.Sprintf("cell %s assigned to both %d and %d", coord, prev, cell.Value),
				Coord:   coord,
			}
		}
		seen[cell.Value] = true
		m.byValue[cell.Value] = coord
		m.byCell[coord] = cell.Value
	}

	if origin := m.byValue[0]; origin != (Coordinate{}) {
		return nil, &MapperError{
			Code:    ErrCodeOrigin,
			Message: fmt.Sprintf("Ditrune 0 mapped to %s, want (0,0)", origin),
			Coord:   origin,
		}
	}

	return m, nil
}

// Locate returns the coordinate of a Ditrune value.
func (m *TableMapper) Locate(value int) (Coordinate, error) {
	if err := ternary.CheckValue(value); err != nil {
		return Coordinate{}, err
	}
	return m.byValue[value], nil
}

// At returns the Ditrune value at a coordinate.
func (m *TableMapper) At(c Coordinate) (int, error) {
	if !c.InRange() {
		return 0, NewCoordinateRangeError(c)
	}
	return m.byCell[c], nil
}
