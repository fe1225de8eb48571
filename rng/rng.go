package rng

import (
	"math/bits"
	rand "math/rand/v2"

	"github.com/coder/quartz"
)

var (
	jumpPoly     = [4]uint64{0x180ec6d33cfd0aba, 0xd5a61266f0c9392c, 0xa9582618e03fc9aa, 0x39abdc4529b1661c}
	longJumpPoly = [4]uint64{0x76e15d3efefdcbbf, 0xc5004e441c522fb3, 0x77710069854ee241, 0x39109bb02acbe635}
)

// Generator is a xoshiro256++ generator. It is not safe for concurrent use.
type Generator struct {
	state [4]uint64
	seed  uint64
}

// Option configures how a Generator chooses its seed.
type Option func(*options)

type options struct {
	clock   quartz.Clock
	entropy rand.Source
}

// WithClock sets the clock read when an auto-seed is required.
func WithClock(clock quartz.Clock) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// WithEntropy sets the secondary source mixed into an auto-seed.
func WithEntropy(src rand.Source) Option {
	return func(o *options) {
		o.entropy = src
	}
}

// runtimeSource exposes the runtime-seeded top level functions of
// math/rand/v2 as a Source.
type runtimeSource struct{}

func (runtimeSource) Uint64() uint64 { return rand.Uint64() }

// New returns a generator seeded with seed. A seed of 0 asks for an
// auto-seed derived from the current time and the runtime's random source;
// Seed reports the value that was actually used.
func New(seed uint64, opts ...Option) *Generator {
	g := &Generator{}
	g.Reseed(seed, opts...)
	return g
}

// Reseed re-initialises g in place exactly as New would. Calling it on a nil
// generator does nothing.
func (g *Generator) Reseed(seed uint64, opts ...Option) {
	if g == nil {
		return
	}
	if seed == 0 {
		seed = autoSeed(opts)
	}
	g.seed = seed
	g.state = Expand(seed)
}

func autoSeed(opts []Option) uint64 {
	o := options{
		clock:   quartz.NewReal(),
		entropy: runtimeSource{},
	}
	for _, opt := range opts {
		opt(&o)
	}
	now := o.clock.Now()
	return uint64(now.Unix())<<32 ^ uint64(now.Nanosecond()) ^ o.entropy.Uint64()
}

// Seed returns the seed the generator was initialised with.
func (g *Generator) Seed() uint64 {
	return g.seed
}

// State returns a copy of the four state words.
func (g *Generator) State() [4]uint64 {
	return g.state
}

// Clone returns an independent copy of g. Both copies produce the same
// sequence from here on.
func (g *Generator) Clone() *Generator {
	c := *g
	return &c
}

// Uint64 returns the next 64 pseudo-random bits and advances the state by
// one step.
func (g *Generator) Uint64() uint64 {
	s := &g.state
	result := bits.RotateLeft64(s[0]+s[3], 23) + s[0]

	t := s[1] << 17

	s[2] ^= s[0]
	s[3] ^= s[1]
	s[1] ^= s[2]
	s[0] ^= s[3]

	s[2] ^= t

	s[3] = bits.RotateLeft64(s[3], 45)

	return result
}

// Jump advances the generator by 2^128 steps.
func (g *Generator) Jump() {
	g.jump(&jumpPoly)
}

// LongJump advances the generator by 2^192 steps.
func (g *Generator) LongJump() {
	g.jump(&longJumpPoly)
}

// jump multiplies the state by the characteristic polynomial poly. All 256
// transform calls are part of the computation, set bit or not.
func (g *Generator) jump(poly *[4]uint64) {
	var acc [4]uint64
	for _, word := range poly {
		for b := 0; b < 64; b++ {
			if word&(1<<b) != 0 {
				acc[0] ^= g.state[0]
				acc[1] ^= g.state[1]
				acc[2] ^= g.state[2]
				acc[3] ^= g.state[3]
			}
			g.Uint64()
		}
	}
	g.state = acc
}
