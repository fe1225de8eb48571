package rng

import "math"

// 2^-53
const float64Unit = 1.0 / (1 << 53)

// Float64 returns a uniform float64 in [0.0, 1.0) built from the top 53 bits
// of one output. It can return exactly 0 but never 1.
func (g *Generator) Float64() float64 {
	return float64(g.Uint64()>>11) * float64Unit
}

// Float64Range returns a uniform float64 in [lo, hi). If lo >= hi it
// returns lo without consuming any output.
func (g *Generator) Float64Range(lo, hi float64) float64 {
	if lo >= hi {
		return lo
	}
	return lo + (hi-lo)*g.Float64()
}

// Uint64Range returns a uniform integer in [lo, hi) with no modulo bias.
// If lo >= hi it returns lo without consuming any output.
func (g *Generator) Uint64Range(lo, hi uint64) uint64 {
	if lo >= hi {
		return lo
	}
	n := hi - lo

	// 2^64 mod n: the residues that would make the low values more likely.
	threshold := -n % n
	for {
		x := g.Uint64()
		if x >= threshold {
			return lo + x%n
		}
	}
}

// Uint64N returns a uniform integer in [0, n), or 0 when n is 0.
func (g *Generator) Uint64N(n uint64) uint64 {
	return g.Uint64Range(0, n)
}

// Normal returns a standard normal deviate using the Box–Muller transform.
// Only the cosine half of each pair is used. See NormalPair for a sampler
// that keeps the other half.
func (g *Generator) Normal() float64 {
	r, theta := g.polar()
	return r * math.Cos(theta)
}

// NormalFloat64 returns a normal deviate with the given mean and standard
// deviation.
func (g *Generator) NormalFloat64(mean, stddev float64) float64 {
	return mean + stddev*g.Normal()
}

// polar draws the radius and angle of one Box–Muller round. u1 is redrawn
// while it is 0 so the logarithm stays finite.
func (g *Generator) polar() (r, theta float64) {
	var u1 float64
	for u1 <= 0 {
		u1 = g.Float64()
	}
	u2 := g.Float64()
	return math.Sqrt(-2 * math.Log(u1)), 2 * math.Pi * u2
}
