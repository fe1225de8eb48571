package rng

import rand "math/rand/v2"

var _ rand.Source = (*Generator)(nil)

// NewRand returns a math/rand/v2 Rand drawing from a new generator. The
// generator is not safe for concurrent use, and neither is the Rand.
func NewRand(seed uint64, opts ...Option) *rand.Rand {
	return rand.New(New(seed, opts...))
}
