package datasplit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// ConfigFilename is the name of the file StoreResults writes.
const ConfigFilename = "config.json"

// Config records what a split was produced from: the generator seed and the
// source file name. Field order is the key order of the stored file.
type Config struct {
	Seed         int64  `json:"seed"`
	DataFilename string `json:"data_filename"`
}

// Encode returns the stored form of c: a JSON object indented with four
// spaces, non-ASCII characters unescaped.
func (c Config) Encode() ([]byte, error) {
	return marshalIndent(c)
}

// Store writes c to config.json inside directory, creating the directory and
// its parents when missing.
// The directory is left in place if the file cannot be written.
func (c Config) Store(directory string) error {
	_, _, err := c.store(directory)
	return err
}

func (c Config) store(directory string) (string, int, error) {
	data, err := c.Encode()
	if err != nil {
		return "", 0, err
	}
	path := filepath.Join(directory, ConfigFilename)
	if err := writeFile(path, data); err != nil {
		return "", 0, err
	}
	return path, len(data), nil
}

// LoadConfig reads config.json from directory. Both keys must be present.
func LoadConfig(directory string) (Config, error) {
	data, err := os.ReadFile(filepath.Join(directory, ConfigFilename))
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrFileAccess, err)
	}
	var raw struct {
		Seed         *int64  `json:"seed"`
		DataFilename *string `json:"data_filename"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if raw.Seed == nil || raw.DataFilename == nil {
		return Config{}, fmt.Errorf("%w: %s needs both seed and data_filename", ErrParse, ConfigFilename)
	}
	return Config{Seed: *raw.Seed, DataFilename: *raw.DataFilename}, nil
}

// FromConfig builds a Splitter that repeats the split recorded in c.
// The seed in c takes precedence over a WithSeed among opts.
func FromConfig(c Config, opts ...Option) (*Splitter, error) {
	return New(c.DataFilename, append(opts[:len(opts):len(opts)], WithSeed(c.Seed))...)
}
