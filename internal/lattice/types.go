package lattice

import (
	"errors"
	"fmt"
)

// Grid dimensions. The lattice is a 27x27 grid centered on the origin, so
// both coordinates range over [-13,13].
const (
	// Extent is the maximum absolute coordinate value.
	Extent = 13

	// GridSize is the number of cells along one edge (2*Extent + 1).
	GridSize = 2*Extent + 1
)

// Coordinate is an integer cell position on the lattice.
type Coordinate struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Axis reports whether the cell lies on a lattice axis (x=0 or y=0).
func (c Coordinate) Axis() bool {
	return c.X == 0 || c.Y == 0
}

// InRange reports whether both coordinates lie within [-13,13].
func (c Coordinate) InRange() bool {
	return c.X >= -Extent && c.X <= Extent && c.Y >= -Extent && c.Y <= Extent
}

// String returns the "(x,y)" form of the coordinate.
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Cell pairs a Ditrune value with its lattice coordinate. Used as the row
// type for externally supplied coordinate tables.
type Cell struct {
	Value int `json:"value"`
	X     int `json:"x"`
	Y     int `json:"y"`
}

// Mapper is the pluggable bijection between Ditrunes and lattice cells.
//
// Implementations must be pure and safe for concurrent use; Validate checks
// the bijection invariants exhaustively over the full domain.
type Mapper interface {
	// Locate returns the coordinate of a Ditrune value.
	// Fails with INVALID_DOMAIN if value is outside [0,728].
	Locate(value int) (Coordinate, error)

	// At returns the Ditrune value at a coordinate.
	// Fails with COORDINATE_RANGE if the coordinate is outside the grid.
	At(c Coordinate) (int, error)
}

// MapperError represents an invalid coordinate query or a mapper whose data
// violates the bijection contract.
type MapperError struct {
	// Code identifies the error category.
	Code MapperErrorCode

	// Message is a human-readable description.
	Message string

	// Coord is the offending coordinate, when one is involved.
	Coord Coordinate

	// Value is the offending Ditrune value, when one is involved.
	Value int
}

// MapperErrorCode categorizes mapper errors.
type MapperErrorCode string

const (
	// ErrCodeCoordinateRange indicates a coordinate outside [-13,13]^2.
	ErrCodeCoordinateRange MapperErrorCode = "COORDINATE_RANGE"

	// ErrCodeNotBijective indicates a coordinate table that is not a
	// bijection over the 729 cells.
	ErrCodeNotBijective MapperErrorCode = "NOT_BIJECTIVE"

	// ErrCodeOrigin indicates a mapper that does not place Ditrune 0 at (0,0).
	ErrCodeOrigin MapperErrorCode = "ORIGIN_MISMATCH"

	// ErrCodeResonance indicates a violation of the Axial Resonance law.
	ErrCodeResonance MapperErrorCode = "RESONANCE_VIOLATION"
)

// Error implements the error interface.
func (e *MapperError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsCoordinateRange returns true if the error is an out-of-grid coordinate
// error. Uses errors.As to handle wrapped errors.
func IsCoordinateRange(err error) bool {
	var me *MapperError
	if errors.As(err, &me) {
		return me.Code == ErrCodeCoordinateRange
	}
	return false
}

// NewCoordinateRangeError creates a MapperError for an out-of-grid query.
func NewCoordinateRangeError(c Coordinate) *MapperError {
	return &MapperError{
		Code:    ErrCodeCoordinateRange,
		Message: fmt.Sprintf("coordinate %s outside [-%d,%d]^2", c, Extent, Extent),
		Coord:   c,
	}
}
