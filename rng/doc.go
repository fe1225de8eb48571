// Package rng implements a xoshiro256++ pseudo-random number generator
// seeded through SplitMix64, together with the samplers that simulation and
// stochastic-optimisation code usually needs: uniform floats, unbiased
// integers in a range and standard normal deviates.
//
// A Generator is owned by a single goroutine. To generate in parallel, give
// every worker its own stream with Streams (or LongStreams): each stream is
// the same seed advanced by a multiple of 2^128 (or 2^192) steps, so their
// outputs never overlap.
//
// The generator is not cryptographically secure. Its state can be recovered
// from a handful of outputs.
package rng
