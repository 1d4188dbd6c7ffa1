package datasplit

import (
	"github.com/sirupsen/logrus"
)

type Option func(*Splitter) error

// WithSeed sets the seed of the generator owned by the Splitter.
// The seed must lie in [0, 2**32-1]; other values make New fail with ErrInvalidSeed.
// Without this option the seed is DefaultSeed.
func WithSeed(seed int64) Option {
	return func(s *Splitter) error {
		s.seed = seed
		return nil
	}
}

// WithLogger routes the Splitter's debug events to logger.
// By default the logrus standard logger is used.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(s *Splitter) error {
		s.logger = logger
		return nil
	}
}
