package randutil

import (
	rand "math/rand/v2"

	"github.com/lox/arandu/rng"
)

// New returns a *rand.Rand seeded deterministically from the provided int64
// and backed by a xoshiro256++ generator. A seed of 0 is auto-seeded, the
// same as rng.New.
func New(seed int64) *rand.Rand {
	return rand.New(rng.New(uint64(seed)))
}

// Stream returns the i-th jump-ahead stream of seed wrapped as a *rand.Rand,
// for code that wants math/rand helpers on a per-worker stream.
func Stream(seed int64, i int) *rand.Rand {
	g := rng.New(uint64(seed))
	for ; i > 0; i-- {
		g.Jump()
	}
	return rand.New(g)
}

// Shuffle permutes xs in place using r.
func Shuffle[T any](r *rand.Rand, xs []T) {
	r.Shuffle(len(xs), func(i, j int) {
		xs[i], xs[j] = xs[j], xs[i]
	})
}
