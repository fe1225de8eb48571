// Package runid generates identifiers for quality runs: a UUIDv7 layout
// (48-bit millisecond timestamp, version and variant bits, 74 random bits)
// written as 26 characters of Crockford base32, so IDs sort by creation time.
package runid

import (
	"fmt"
	"strings"

	"github.com/coder/quartz"
)

// Base32 alphabet (Crockford's, lower case)
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

const encodedLen = 26

// Source supplies the random bits of an ID. *rng.Generator satisfies it.
type Source interface {
	Uint64() uint64
}

// Generator produces run IDs from a random source and a clock
type Generator struct {
	src   Source
	clock quartz.Clock
}

// NewGenerator creates a generator drawing from src and reading clock
func NewGenerator(src Source, clock quartz.Clock) *Generator {
	return &Generator{src: src, clock: clock}
}

// Generate returns a new run ID
func (g *Generator) Generate() string {
	ms := uint64(g.clock.Now().UnixMilli())
	r1, r2 := g.src.Uint64(), g.src.Uint64()

	hi := ms<<16 | 0x7<<12 | r1&0x0fff // version 7
	lo := 0b10<<62 | r2>>2             // variant 10
	return encode(hi, lo)
}

// encode writes the 128-bit value hi:lo as 26 base32 digits. The first digit
// only carries the top three bits.
func encode(hi, lo uint64) string {
	var out [encodedLen]byte
	for i := encodedLen - 1; i >= 0; i-- {
		out[i] = alphabet[lo&0x1f]
		lo = lo>>5 | hi<<59
		hi >>= 5
	}
	return string(out[:])
}

// Validate checks id is 26 characters of the alphabet and fits in 128 bits
func Validate(id string) error {
	if len(id) != encodedLen {
		return fmt.Errorf("run ID must be exactly %d characters, got %d", encodedLen, len(id))
	}
	if id[0] > '7' {
		return fmt.Errorf("run ID first character must be 0-7, got %c", id[0])
	}
	for i, char := range id {
		if !strings.ContainsRune(alphabet, char) {
			return fmt.Errorf("invalid character %c at position %d", char, i)
		}
	}
	return nil
}
