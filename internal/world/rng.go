package world

import "math/rand"

// Seed combines the seed base with a level index. The addition wraps modulo
// 2^32, so negative and very large level indices still map to a fixed seed.
func Seed(base uint32, level int) uint32 {
	return base + uint32(level)
}

// RNG is the deterministic random source for one generation run.
type RNG struct {
	seed uint32
	src  *rand.Rand
}

// NewRNG creates an RNG for the given seed.
func NewRNG(seed uint32) *RNG {
	return &RNG{
		seed: seed,
		src:  rand.New(rand.NewSource(int64(seed))),
	}
}

// Seed returns the seed the RNG was created with.
func (r *RNG) Seed() uint32 {
	return r.seed
}

// Next returns a value in [0, bound). A bound of zero or less returns 0
// without consuming a draw.
func (r *RNG) Next(bound int) int {
	if bound <= 0 {
		return 0
	}
	return r.src.Intn(bound)
}

// Chance is a 1-in-n coin flip. n <= 0 never hits.
func (r *RNG) Chance(n int) bool {
	if n <= 0 {
		return false
	}
	return r.src.Intn(n) == 0
}

// Between returns a value in [lo, hi].
func (r *RNG) Between(lo, hi int) int {
	return lo + r.Next(hi-lo+1)
}
