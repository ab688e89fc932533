package wfc

import "math/rand"

// RNG is the randomness source the solver depends on. It is owned by the
// caller and passed in by reference so an entire run is reproducible by
// seeding it externally.
type RNG interface {
	// Intn returns a uniform random integer in [0, n). n must be > 0.
	Intn(n int) int
}

// pickUniform returns a uniformly random element of items using rng.
// Panics if items is empty; callers are expected to check first since an
// empty selection set is always a programming error at the call sites in
// this package (the candidate bucket or candidate list is never empty
// where this is called).
func pickUniform[T any](items []T, rng RNG) T {
	return items[rng.Intn(len(items))]
}

// mathRandSource adapts *math/rand.Rand to the RNG interface.
type mathRandSource struct {
	r *rand.Rand
}

// NewRNG returns an RNG backed by math/rand, seeded deterministically.
// Two RNGs constructed with the same seed and driven through the same
// sequence of calls produce identical draws, which is what makes a Solver
// run reproducible end to end.
func NewRNG(seed int64) RNG {
	return &mathRandSource{r: rand.New(rand.NewSource(seed))}
}

func (m *mathRandSource) Intn(n int) int { return m.r.Intn(n) }
