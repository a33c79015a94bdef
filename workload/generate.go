package workload

import (
	"fmt"
	"math/rand"

	"github.com/pentene/15418-final-project/dsu"
)

// ErrInvalidUniverse is returned by Generate when asked to generate
// operations over a non-positive universe size. Distinct from
// ErrBadHeader, which is specific to a malformed file header in
// Load/LoadMarkup.
var ErrInvalidUniverse = fmt.Errorf("workload: universe size must be positive")

// Mix describes the relative frequency of each operation type in a
// generated workload. The three fields need not sum to 1 — they are
// normalized internally — but all three must be non-negative.
type Mix struct {
	UnionRatio   float64
	FindRatio    float64
	SameSetRatio float64
}

// DefaultMix matches the "high-contention hammer" scenario of §8: 50%
// FIND, 40% UNION, 10% SAME_SET.
var DefaultMix = Mix{UnionRatio: 0.4, FindRatio: 0.5, SameSetRatio: 0.1}

// Generate produces numOps operations over a universe of size n,
// distributed according to mix, and returns them in a deterministic
// order driven entirely by rng (grounded on
// _examples/original_source/scripts/generate_ops.py, which performs the
// equivalent sampling in Python for the C++ benchmark driver).
func Generate(n, numOps int, mix Mix, rng *rand.Rand) ([]dsu.Operation, error) {
	if n <= 0 {
		return nil, ErrInvalidUniverse
	}
	total := mix.UnionRatio + mix.FindRatio + mix.SameSetRatio
	if total <= 0 {
		mix = DefaultMix
		total = mix.UnionRatio + mix.FindRatio + mix.SameSetRatio
	}
	unionCut := mix.UnionRatio / total
	findCut := unionCut + mix.FindRatio/total

	ops := make([]dsu.Operation, numOps)
	for i := range ops {
		roll := rng.Float64()
		a := rng.Intn(n)
		switch {
		case roll < unionCut:
			b := a
			for b == a && n > 1 {
				b = rng.Intn(n)
			}
			ops[i] = dsu.Operation{Type: dsu.OpUnion, A: a, B: b}
		case roll < findCut:
			ops[i] = dsu.Operation{Type: dsu.OpFind, A: a}
		default:
			b := rng.Intn(n)
			ops[i] = dsu.Operation{Type: dsu.OpSameSet, A: a, B: b}
		}
	}
	return ops, nil
}
