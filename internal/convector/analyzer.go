package convector

import (
	"context"
	"runtime"
	"sort"
	"sync"

	"github.com/kamea-labs/ditrune/internal/ternary"
	"github.com/kamea-labs/ditrune/internal/transform"
)

// VectorPair is the unordered pair {v, Conrune(v)} with its magnitude.
// Low <= High always holds; for the trivial fixed point both are 0.
type VectorPair struct {
	Low       int  `json:"low"`
	High      int  `json:"high"`
	Magnitude int  `json:"magnitude"`
	Trivial   bool `json:"trivial,omitempty"`
}

// Analysis is the full-domain Conrune vector dataset.
//
// The documented claim for this dataset is 365 unique pairings; plain
// counting (729 values, one fixed point) gives 364 non-trivial pairs. Both
// figures are carried explicitly so callers can check the computed result
// against either reading: 365 counts the trivial fixed-point entry, 364
// excludes it.
type Analysis struct {
	// Pairs holds every pair, sorted by Low ascending. The trivial
	// fixed-point pair {0,0} is included and marked, never silently
	// dropped.
	Pairs []VectorPair `json:"pairs"`
}

// TotalEntries returns the number of pairs including the trivial one.
func (a *Analysis) TotalEntries() int {
	return len(a.Pairs)
}

// NontrivialPairs returns the number of pairs excluding the fixed point.
func (a *Analysis) NontrivialPairs() int {
	n := 0
	for _, p := range a.Pairs {
		if !p.Trivial {
			n++
		}
	}
	return n
}

// Collision reports two distinct pairs sharing a magnitude.
type Collision struct {
	Magnitude int        `json:"magnitude"`
	A         VectorPair `json:"a"`
	B         VectorPair `json:"b"`
}

// ComputeAll computes the Conrune vector of every Ditrune in [0,728],
// distributing the work across a pool of workers. Each unordered pair is
// emitted once, keyed by its smaller member.
//
// The context cancels remaining work early; a canceled run returns
// ctx.Err() rather than a partial dataset.
func ComputeAll(ctx context.Context) (*Analysis, error) {
	workers := runtime.GOMAXPROCS(0)
	if workers > ternary.DomainSize {
		workers = ternary.DomainSize
	}

	results := make(chan VectorPair, workers)
	errs := make(chan error, workers)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(start int) {
			defer wg.Done()
			for v := start; v < ternary.DomainSize; v += workers {
				select {
				case <-ctx.Done():
					errs <- ctx.Err()
					return
				default:
				}

				c, err := transform.ConruneValue(v)
				if err != nil {
					errs <- err
					return
				}
				if c < v {
					// The pair was already emitted from its smaller member.
					continue
				}
				results <- VectorPair{
					Low:       v,
					High:      c,
					Magnitude: c - v,
					Trivial:   v == 0 && c == 0,
				}
			}
		}(w)
	}

	go func() {
		wg.Wait()
		close(results)
		close(errs)
	}()

	analysis := &Analysis{Pairs: make([]VectorPair, 0, 365)}
	for p := range results {
		analysis.Pairs = append(analysis.Pairs, p)
	}
	if err := <-errs; err != nil {
		return nil, err
	}

	sort.Slice(analysis.Pairs, func(i, j int) bool {
		return analysis.Pairs[i].Low < analysis.Pairs[j].Low
	})
	return analysis, nil
}

// VerifyUniqueness confirms that no two distinct pairs share a magnitude.
// Returns the first collision found, exiting early, or nil when every
// magnitude is unique. The trivial fixed-point pair is excluded from the
// check.
func (a *Analysis) VerifyUniqueness(ctx context.Context) (*Collision, error) {
	seen := make(map[int]VectorPair, len(a.Pairs))
	for _, p := range a.Pairs {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if p.Trivial {
			continue
		}
		if prev, dup := seen[p.Magnitude]; dup {
			return &Collision{Magnitude: p.Magnitude, A: prev, B: p}, nil
		}
		seen[p.Magnitude] = p
	}
	return nil, nil
}
