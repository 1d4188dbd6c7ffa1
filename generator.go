package datasplit

import (
	"fmt"

	"github.com/yyyoichi/datasplit/internal/shuffle"
)

// Generator is the seeded pseudo-random stream a Splitter shuffles with.
// It is a Mersenne Twister (MT19937) seeded with its 32-bit init routine,
// so a given seed always yields the same sequence of shuffles.
type Generator = shuffle.Generator

// NewGenerator returns a Generator seeded with seed.
// Seeds outside [0, 2**32-1] fail with ErrInvalidSeed.
func NewGenerator(seed int64) (*Generator, error) {
	g, err := shuffle.New(seed)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSeed, err)
	}
	return g, nil
}

// Shuffle permutes records in place with g, advancing g's state.
func Shuffle[T any](g *Generator, records []T) {
	shuffle.Shuffle(g, records)
}
