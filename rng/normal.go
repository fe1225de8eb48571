package rng

import "math"

// NormalPair samples standard normal deviates two at a time. The first call
// runs a Box–Muller round and returns the cosine value; the next call returns
// the cached sine value without touching the generator.
//
// Because it consumes half as many outputs, a NormalPair and Generator.Normal
// on equally seeded generators produce different sequences after the first
// value.
type NormalPair struct {
	g      *Generator
	spare  float64
	cached bool
}

// NewNormalPair returns a caching normal sampler drawing from g.
func NewNormalPair(g *Generator) *NormalPair {
	return &NormalPair{g: g}
}

// Next returns the next standard normal deviate.
func (p *NormalPair) Next() float64 {
	if p.cached {
		p.cached = false
		return p.spare
	}
	r, theta := p.g.polar()
	p.spare = r * math.Sin(theta)
	p.cached = true
	return r * math.Cos(theta)
}

// Reset drops any cached value so the next call starts a fresh round.
func (p *NormalPair) Reset() {
	p.cached = false
	p.spare = 0
}
