package qd

import (
	"math/rand/v2"

	"github.com/agbru/qdcalc/internal/platform"
)

// randChunks is the number of 16-bit chunks needed to fill every bit of a
// Real plus one spare chunk.
const randChunks = (4*platform.Mantissa+15)/16 + 1

// Rand returns a pseudo-random value uniformly distributed in [0, 1),
// assembled from 16-bit chunks drawn from r. Chunks of 16 bits are exact in
// either word width, so every partial sum is representable.
func Rand(r *rand.Rand) Real {
	var x Real
	m := Word(1.0 / 65536)
	scale := m
	for i := 0; i < randChunks; i++ {
		x = x.AddWord(Word(Word(r.Uint32()&0xffff) * scale))
		scale = Word(scale * m)
	}
	return x
}
