package quadset

import (
	"github.com/kamea-labs/ditrune/internal/lattice"
	"github.com/kamea-labs/ditrune/internal/ternary"
	"github.com/kamea-labs/ditrune/internal/transform"
)

// Transform names the four quadset transforms in their canonical order.
type Transform string

const (
	// TransformSelf is the identity.
	TransformSelf Transform = "self"

	// TransformYMirror is Reversal (mirror across the y axis).
	TransformYMirror Transform = "y_mirror"

	// TransformAntiSelf is Conrune (point reflection through the origin).
	TransformAntiSelf Transform = "anti_self"

	// TransformXMirror is Conrune composed with Reversal.
	TransformXMirror Transform = "x_mirror"
)

// transformOrder is the canonical member order of a quadset.
var transformOrder = []Transform{TransformSelf, TransformYMirror, TransformAntiSelf, TransformXMirror}

// Coincidence records that two transforms of the seed produced the same
// Ditrune. Degenerate quadsets (palindromes, the all-zero string) are
// reported through these, never hidden by deduplication.
type Coincidence struct {
	// First is the earliest transform (in canonical order) that produced
	// the value.
	First Transform `json:"first"`

	// Duplicate is the later transform that collided with it.
	Duplicate Transform `json:"duplicate"`

	// Value is the shared Ditrune value.
	Value int `json:"value"`
}

// Quadset is the symmetry group of a seed Ditrune. All four members are
// always present; Distinct and Coincidences describe the degenerate cases.
type Quadset struct {
	Self     int `json:"self"`
	YMirror  int `json:"y_mirror"`
	AntiSelf int `json:"anti_self"`
	XMirror  int `json:"x_mirror"`

	// Coincidences lists transform collisions; empty for a full quadset.
	Coincidences []Coincidence `json:"coincidences,omitempty"`
}

// Members returns the four members in canonical transform order,
// duplicates included.
func (q Quadset) Members() [4]int {
	return [4]int{q.Self, q.YMirror, q.AntiSelf, q.XMirror}
}

// Distinct returns the distinct members, preserving canonical order.
func (q Quadset) Distinct() []int {
	members := q.Members()
	out := make([]int, 0, len(members))
	for _, m := range members {
		dup := false
		for _, seen := range out {
			if seen == m {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, m)
		}
	}
	return out
}

// Degenerate reports whether the quadset has fewer than four distinct
// members.
func (q Quadset) Degenerate() bool {
	return len(q.Coincidences) > 0
}

// Region is one of the nine named lattice sectors, keyed by Core Bigram.
type Region struct {
	// Key is the two-digit Core Bigram, e.g. "12".
	Key string `json:"key"`

	// Name is the sector name from the layout's region table.
	Name string `json:"name"`
}

// Resolver computes quadsets and region classifications against an injected
// layout. The zero dependencies beyond the layout keep it safe to share
// read-only across callers.
type Resolver struct {
	regions map[string]string
}

// NewResolver creates a Resolver for a layout's region table.
func NewResolver(layout *lattice.Layout) *Resolver {
	return &Resolver{regions: layout.Regions}
}

// Resolve computes the quadset of a seed value.
//
// Fails with INVALID_DOMAIN if the seed is outside [0,728].
func (r *Resolver) Resolve(value int) (Quadset, error) {
	if err := ternary.CheckValue(value); err != nil {
		return Quadset{}, err
	}

	yMirror, err := transform.ReverseValue(value)
	if err != nil {
		return Quadset{}, err
	}
	antiSelf, err := transform.ConruneValue(value)
	if err != nil {
		return Quadset{}, err
	}
	xMirror, err := transform.ComplexValue(value)
	if err != nil {
		return Quadset{}, err
	}

	q := Quadset{
		Self:     value,
		YMirror:  yMirror,
		AntiSelf: antiSelf,
		XMirror:  xMirror,
	}
	q.Coincidences = findCoincidences(q)
	return q, nil
}

// ClassifyRegion returns the Region of a value via the 9-entry Core Bigram
// table.
//
// Fails with INVALID_DOMAIN if the value is outside [0,728].
func (r *Resolver) ClassifyRegion(value int) (Region, error) {
	digits, err := ternary.ToTernary(value)
	if err != nil {
		return Region{}, err
	}
	key, err := ternary.CoreKey(digits)
	if err != nil {
		return Region{}, err
	}
	return Region{Key: key, Name: r.regions[key]}, nil
}

// findCoincidences reports each member that repeats an earlier member,
// attributed to the earliest transform holding that value.
func findCoincidences(q Quadset) []Coincidence {
	members := q.Members()
	var out []Coincidence
	for i := 1; i < len(members); i++ {
		for j := 0; j < i; j++ {
			if members[i] == members[j] {
				out = append(out, Coincidence{
					First:     transformOrder[j],
					Duplicate: transformOrder[i],
					Value:     members[i],
				})
				break
			}
		}
	}
	return out
}
