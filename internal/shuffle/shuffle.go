// Package shuffle provides a seeded Mersenne Twister generator and the
// uniform Fisher-Yates shuffle built on it.
package shuffle

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mathext/prng"
)

var (
	ErrSeedRange = errors.New("seed must be between 0 and 2**32 - 1")
)

// Generator is a seeded pseudo-random stream. Every draw advances its state,
// so two shuffles on the same Generator produce different orders.
type Generator struct {
	seed uint32
	src  *prng.MT19937
}

// New returns a Generator seeded with seed.
// Seeds outside the 32-bit unsigned range are rejected.
func New(seed int64) (*Generator, error) {
	if seed < 0 || seed > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d", ErrSeedRange, seed)
	}
	src := prng.NewMT19937()
	src.Seed(uint64(seed))
	return &Generator{seed: uint32(seed), src: src}, nil
}

// Seed returns the value the Generator was created with.
func (g *Generator) Seed() int64 {
	return int64(g.seed)
}

// Uint32 returns the next raw 32-bit draw.
func (g *Generator) Uint32() uint32 {
	return g.src.Uint32()
}

// Uint64 returns the next raw 64-bit draw, built from two 32-bit draws
// with the first one in the upper half.
func (g *Generator) Uint64() uint64 {
	return g.src.Uint64()
}

// Interval returns a uniform value in [0, limit].
//
// Draws are masked to the smallest covering power of two and rejected until
// they fall in range. Ranges that fit in 32 bits consume one 32-bit draw per
// attempt.
func (g *Generator) Interval(limit uint64) uint64 {
	if limit == 0 {
		return 0
	}
	mask := limit
	mask |= mask >> 1
	mask |= mask >> 2
	mask |= mask >> 4
	mask |= mask >> 8
	mask |= mask >> 16
	mask |= mask >> 32

	if limit <= math.MaxUint32 {
		for {
			if v := uint64(g.Uint32()) & mask; v <= limit {
				return v
			}
		}
	}
	for {
		if v := g.Uint64() & mask; v <= limit {
			return v
		}
	}
}

// Shuffle permutes n elements through swap, walking from the last index down.
func (g *Generator) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := int(g.Interval(uint64(i)))
		swap(i, j)
	}
}

// Perm returns the permutation of [0, n) that Shuffle applies to an
// identity sequence.
func (g *Generator) Perm(n int) []int {
	index := make([]int, n)
	for i := range index {
		index[i] = i
	}
	Shuffle(g, index)
	return index
}

// Shuffle permutes data in place.
func Shuffle[T any](g *Generator, data []T) {
	g.Shuffle(len(data), func(i, j int) {
		data[i], data[j] = data[j], data[i]
	})
}
