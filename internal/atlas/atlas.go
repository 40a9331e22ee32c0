package atlas

import (
	"github.com/kamea-labs/ditrune/internal/lattice"
	"github.com/kamea-labs/ditrune/internal/mutation"
	"github.com/kamea-labs/ditrune/internal/quadset"
	"github.com/kamea-labs/ditrune/internal/ternary"
	"github.com/kamea-labs/ditrune/internal/transform"
)

// Entry is one row of the materialized domain index.
type Entry struct {
	Value  int    `json:"value"`
	Digits string `json:"digits"`

	// Lattice placement.
	X    int  `json:"x"`
	Y    int  `json:"y"`
	Axis bool `json:"axis"`

	// Region classification.
	RegionKey  string `json:"region_key"`
	RegionName string `json:"region_name"`

	// Quadset members (self is Value).
	YMirror  int `json:"y_mirror"`
	AntiSelf int `json:"anti_self"`
	XMirror  int `json:"x_mirror"`

	// Family resolution.
	Role      mutation.Role    `json:"role"`
	RootValue int              `json:"root_value"`
	Outcome   mutation.Outcome `json:"outcome"`

	// Conrune vector magnitude |value - conrune(value)|.
	Vector int `json:"vector"`
}

// Atlas is the immutable full-domain index.
type Atlas struct {
	// Layout names the layout the index was built against.
	Layout string

	entries [ternary.DomainSize]Entry
}

// Build computes the 729-entry index for a layout. The layout's mapper is
// validated before any entry is computed, so a malformed coordinate table
// cannot produce a partial atlas.
func Build(layout *lattice.Layout) (*Atlas, error) {
	mapper, err := layout.NewMapper()
	if err != nil {
		return nil, err
	}
	if err := lattice.Validate(mapper); err != nil {
		return nil, err
	}

	resolver := quadset.NewResolver(layout)
	a := &Atlas{Layout: layout.Name}

	for v := 0; v < ternary.DomainSize; v++ {
		digits, err := ternary.ToTernary(v)
		if err != nil {
			return nil, err
		}
		coord, err := mapper.Locate(v)
		if err != nil {
			return nil, err
		}
		region, err := resolver.ClassifyRegion(v)
		if err != nil {
			return nil, err
		}
		q, err := resolver.Resolve(v)
		if err != nil {
			return nil, err
		}
		family, err := mutation.ResolveFamily(v)
		if err != nil {
			return nil, err
		}
		conrune, err := transform.ConruneValue(v)
		if err != nil {
			return nil, err
		}

		vector := v - conrune
		if vector < 0 {
			vector = -vector
		}

		a.entries[v] = Entry{
			Value:      v,
			Digits:     digits,
			X:          coord.X,
			Y:          coord.Y,
			Axis:       coord.Axis(),
			RegionKey:  region.Key,
			RegionName: region.Name,
			YMirror:    q.YMirror,
			AntiSelf:   q.AntiSelf,
			XMirror:    q.XMirror,
			Role:       family.Role,
			RootValue:  family.RootValue,
			Outcome:    family.Outcome,
			Vector:     vector,
		}
	}

	return a, nil
}

// Entry returns the index row for a value.
//
// Fails with INVALID_DOMAIN if value is outside [0,728].
func (a *Atlas) Entry(value int) (Entry, error) {
	if err := ternary.CheckValue(value); err != nil {
		return Entry{}, err
	}
	return a.entries[value], nil
}

// Entries returns all 729 rows in value order. The returned slice is a
// copy; the atlas itself stays immutable.
func (a *Atlas) Entries() []Entry {
	out := make([]Entry, ternary.DomainSize)
	copy(out, a.entries[:])
	return out
}
