package datasplit

import (
	"errors"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
)

var (
	ErrFileAccess      = errors.New("file cannot be accessed")
	ErrParse           = errors.New("cannot parse JSON content")
	ErrInvalidSeed     = errors.New("invalid seed")
	ErrInvalidFraction = errors.New("invalid split fraction")
)

const (
	DefaultSeed     int64   = 42
	DefaultFraction float64 = 0.2
)

// Split loads the dataset at path and splits it once with a fresh Splitter.
// This is a convenience function that creates a Splitter and calls its Split method.
func Split(path string, fraction float64, opts ...Option) (heldOut, remainder Dataset, err error) {
	s, err := New(path, opts...)
	if err != nil {
		return nil, nil, err
	}
	return s.Split(fraction)
}

// Splitter splits a JSON dataset file into a held-out part and a remainder.
//
// A Splitter owns its Generator. Each Split consumes randomness from it, so a
// second Split on the same Splitter shuffles differently from the first; two
// Splitters built with the same seed and source split identically.
// A Splitter must not be used by several goroutines at once.
type Splitter struct {
	path   string
	seed   int64
	gen    *Generator
	logger logrus.FieldLogger
}

// New initializes a Splitter for the dataset stored at path.
// The path is not checked until Split reads it.
// The seed and the logger can be optionally specified; see WithSeed and WithLogger.
func New(path string, opts ...Option) (*Splitter, error) {
	s := &Splitter{path: path}
	if err := s.init(opts...); err != nil {
		return nil, err
	}
	return s, nil
}

// Split reads and parses the source file, shuffles the whole dataset in place
// with the Splitter's Generator and cuts it with Partition.
//
// Process:
//  1. Reads the file and parses it as a JSON array (ErrFileAccess, ErrParse).
//  2. Shuffles every record, advancing the Generator.
//  3. Cuts at len*fraction truncated toward zero.
//
// On a read or parse failure nothing is shuffled and the Generator is left untouched.
func (s *Splitter) Split(fraction float64) (heldOut, remainder Dataset, err error) {
	records, err := Load(s.path)
	if err != nil {
		return nil, nil, err
	}
	Shuffle(s.gen, records)
	heldOut, remainder, err = Partition(records, fraction)
	if err != nil {
		return nil, nil, err
	}
	s.logger.WithFields(logrus.Fields{
		"data_filename": s.path,
		"seed":          s.seed,
		"records":       len(records),
		"fraction":      fraction,
		"held_out":      len(heldOut),
		"remainder":     len(remainder),
	}).Debug("dataset split")
	return heldOut, remainder, nil
}

// Config returns the record needed to reproduce this Splitter's first split.
func (s *Splitter) Config() Config {
	return Config{Seed: s.seed, DataFilename: s.path}
}

// Generator returns the Generator owned by s. Shuffling with it advances the
// state later Split calls continue from.
func (s *Splitter) Generator() *Generator {
	return s.gen
}

// StoreResults writes the Splitter's Config to config.json inside directory.
// The directory and its missing parents are created; an existing config.json
// is overwritten. Repeated calls write identical bytes.
func (s *Splitter) StoreResults(directory string) error {
	path, size, err := s.Config().store(directory)
	if err != nil {
		return err
	}
	s.logger.WithFields(logrus.Fields{
		"path": path,
		"size": humanize.Bytes(uint64(size)),
	}).Debug("split config stored")
	return nil
}

func (s *Splitter) init(opts ...Option) error {
	s.seed = DefaultSeed
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return err
		}
	}
	if s.logger == nil {
		s.logger = logrus.StandardLogger()
	}
	gen, err := NewGenerator(s.seed)
	if err != nil {
		return err
	}
	s.gen = gen
	return nil
}
