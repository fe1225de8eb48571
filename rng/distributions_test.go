package rng

import (
	"math"
	"testing"

	"github.com/lox/arandu/internal/statistics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloat64Range01(t *testing.T) {
	g := New(fixtureSeed)
	for i := 0; i < 1_000_000; i++ {
		f := g.Float64()
		if f < 0 || f >= 1 {
			t.Fatalf("draw %d out of [0,1): %v", i, f)
		}
	}
}

func TestFloat64UsesTopBits(t *testing.T) {
	g := New(fixtureSeed)
	want := float64(fixtureOutputs[0]>>11) / (1 << 53)
	assert.Equal(t, want, g.Float64())
}

func TestFloat64Range(t *testing.T) {
	g := New(7)
	for i := 0; i < 100_000; i++ {
		f := g.Float64Range(-3.5, 12.25)
		if f < -3.5 || f >= 12.25 {
			t.Fatalf("draw %d out of [-3.5,12.25): %v", i, f)
		}
	}
}

func TestEmptyRangesConsumeNothing(t *testing.T) {
	tests := []struct {
		name string
		call func(g *Generator) any
		want any
	}{
		{"float equal bounds", func(g *Generator) any { return g.Float64Range(2.5, 2.5) }, 2.5},
		{"float reversed bounds", func(g *Generator) any { return g.Float64Range(10, -10) }, 10.0},
		{"int equal bounds", func(g *Generator) any { return g.Uint64Range(9, 9) }, uint64(9)},
		{"int reversed bounds", func(g *Generator) any { return g.Uint64Range(100, 3) }, uint64(100)},
		{"zero n", func(g *Generator) any { return g.Uint64N(0) }, uint64(0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(fixtureSeed)
			for i := 0; i < 3; i++ {
				assert.Equal(t, tt.want, tt.call(g))
			}
			assert.Equal(t, fixtureOutputs, draw(g, 5))
		})
	}
}

func TestUint64RangeUnbiased(t *testing.T) {
	tests := []struct {
		n     uint64
		draws int
		seed  uint64
	}{
		{2, 100_000, 44},
		{3, 100_000, 45},
		{7, 100_000, 49},
		{1000, 200_000, 1042},
	}

	for _, tt := range tests {
		g := New(tt.seed)
		counts := make([]int, tt.n)
		for i := 0; i < tt.draws; i++ {
			v := g.Uint64Range(0, tt.n)
			require.Less(t, v, tt.n)
			counts[v]++
		}

		res, err := statistics.ChiSquareUniform(counts, 0.001)
		require.NoError(t, err)
		assert.True(t, res.Passed(), "n=%d: chi-square %.2f exceeds %.2f", tt.n, res.Statistic, res.Critical)
	}
}

func TestUint64RangeOffset(t *testing.T) {
	g := New(3)
	seen := make(map[uint64]bool)
	for i := 0; i < 10_000; i++ {
		v := g.Uint64Range(1000, 1010)
		require.GreaterOrEqual(t, v, uint64(1000))
		require.Less(t, v, uint64(1010))
		seen[v] = true
	}
	assert.Len(t, seen, 10)
}

func TestUint64RangeWide(t *testing.T) {
	// Just above 2^63 the rejection rate approaches one half
	hi := uint64(1)<<63 + 1
	g := New(5)
	for i := 0; i < 10_000; i++ {
		require.Less(t, g.Uint64Range(0, hi), hi)
	}

	// With n = 2^64-1 only a zero draw is rejected
	g = New(fixtureSeed)
	assert.Equal(t, fixtureOutputs[0]%(^uint64(0)), g.Uint64Range(0, ^uint64(0)))
}

func TestNormalMoments(t *testing.T) {
	g := New(2024)
	var s statistics.Sample
	for i := 0; i < 100_000; i++ {
		s.Add(g.Normal())
	}

	assert.InDelta(t, 0, s.Mean(), 0.05)
	assert.InDelta(t, 1, s.StdDev(), 0.05)
	assert.False(t, math.IsNaN(s.Sum))
}

func TestNormalFloat64(t *testing.T) {
	a := New(fixtureSeed)
	b := New(fixtureSeed)
	for i := 0; i < 100; i++ {
		assert.InDelta(t, 10+3*a.Normal(), b.NormalFloat64(10, 3), 1e-12)
	}
}

func TestNormalPair(t *testing.T) {
	g := New(2024)
	p := NewNormalPair(g)

	var s statistics.Sample
	for i := 0; i < 100_000; i++ {
		s.Add(p.Next())
	}
	assert.InDelta(t, 0, s.Mean(), 0.05)
	assert.InDelta(t, 1, s.StdDev(), 0.05)
}

func TestNormalPairSequencing(t *testing.T) {
	plain := New(fixtureSeed)
	cached := New(fixtureSeed)
	p := NewNormalPair(cached)

	// The first value of a round matches Normal
	assert.Equal(t, plain.Normal(), p.Next())

	// The cached partner does not advance the generator
	state := cached.State()
	p.Next()
	assert.Equal(t, state, cached.State())

	// Reset forces a new round
	p.Next()
	p.Reset()
	state = cached.State()
	p.Next()
	assert.NotEqual(t, state, cached.State())
}

func BenchmarkFloat64(b *testing.B) {
	g := New(fixtureSeed)
	var sink float64
	for i := 0; i < b.N; i++ {
		sink += g.Float64()
	}
	_ = sink
}

func BenchmarkNormal(b *testing.B) {
	g := New(fixtureSeed)
	var sink float64
	for i := 0; i < b.N; i++ {
		sink += g.Normal()
	}
	_ = sink
}

func BenchmarkNormalPair(b *testing.B) {
	p := NewNormalPair(New(fixtureSeed))
	var sink float64
	for i := 0; i < b.N; i++ {
		sink += p.Next()
	}
	_ = sink
}
