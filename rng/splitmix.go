package rng

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
	mixMul1       = 0xbf58476d1ce4e5b9
	mixMul2       = 0x94d049bb133111eb
)

// SplitMix64 is the seeding scrambler. Every call to Next depends on the
// outputs before it, so four calls give four words that are well mixed with
// each other rather than four independent hashes of the seed.
type SplitMix64 struct {
	state uint64
}

// NewSplitMix64 returns a scrambler whose accumulator starts at seed.
func NewSplitMix64(seed uint64) *SplitMix64 {
	return &SplitMix64{state: seed}
}

// Next advances the accumulator and returns the mixed value.
func (s *SplitMix64) Next() uint64 {
	s.state += goldenRatio64
	return mix(s.state)
}

// Expand turns a single seed into the four state words of a generator.
func Expand(seed uint64) [4]uint64 {
	sm := SplitMix64{state: seed}
	return [4]uint64{sm.Next(), sm.Next(), sm.Next(), sm.Next()}
}

func mix(z uint64) uint64 {
	z = (z ^ (z >> 30)) * mixMul1
	z = (z ^ (z >> 27)) * mixMul2
	return z ^ (z >> 31)
}
