// Package rng provides explicit, seedable random generators. Nothing in the
// search code touches process-global random state; every consumer gets a
// Generator handed to it so runs are reproducible.
package rng

import (
	"encoding/binary"

	"lukechampine.com/frand"
)

const (
	bufSize = 1024
	rounds  = 12
)

// Generator is a seeded random number generator. It is not safe for
// concurrent use; give every goroutine its own.
type Generator struct {
	r    *frand.RNG
	seed int64
}

// New creates a generator from a 64-bit seed. Equal seeds produce equal
// sequences.
func New(seed int64) *Generator {
	var s [32]byte
	binary.LittleEndian.PutUint64(s[:], uint64(seed))
	return &Generator{r: frand.NewCustom(s[:], bufSize, rounds), seed: seed}
}

// FromEntropy creates a generator seeded from the operating system.
func FromEntropy() *Generator {
	return New(int64(frand.Uint64n(1 << 63)))
}

// Seed returns the seed the generator was created with.
func (g *Generator) Seed() int64 {
	return g.seed
}

// Intn returns a uniform random integer in [0, n). It panics if n <= 0.
func (g *Generator) Intn(n int) int {
	return g.r.Intn(n)
}

// Float64 returns a uniform random float in [0, 1).
func (g *Generator) Float64() float64 {
	return g.r.Float64()
}

// Shuffle randomizes the order of n elements using swap.
func (g *Generator) Shuffle(n int, swap func(i, j int)) {
	g.r.Shuffle(n, swap)
}

// Element returns a uniformly chosen element of s. s must not be empty.
func Element[T any](g *Generator, s []T) T {
	if len(s) == 0 {
		panic("rng: element of empty slice")
	}
	return s[g.Intn(len(s))]
}

// Sample returns n elements of s chosen uniformly with replacement.
func Sample[T any](g *Generator, s []T, n int) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = Element(g, s)
	}
	return out
}
