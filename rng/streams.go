package rng

// Streams splits g into n non-overlapping generators for parallel use.
// Stream 0 continues from g's current state and stream i starts i jumps
// (i * 2^128 steps) further on. Afterwards g itself is advanced n jumps so
// that later draws from g do not overlap any stream.
//
// Each stream is good for 2^128 outputs before it runs into the next one.
func (g *Generator) Streams(n int) []*Generator {
	return g.split(n, (*Generator).Jump)
}

// LongStreams is Streams with long jumps of 2^192 steps. It is meant for a
// first level of splitting, with each long stream split again by Streams.
func (g *Generator) LongStreams(n int) []*Generator {
	return g.split(n, (*Generator).LongJump)
}

func (g *Generator) split(n int, advance func(*Generator)) []*Generator {
	if n <= 0 {
		return nil
	}
	streams := make([]*Generator, n)
	for i := range streams {
		streams[i] = g.Clone()
		advance(g)
	}
	return streams
}
