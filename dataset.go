package datasplit

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
)

// Dataset is an ordered sequence of records. Each record is kept as its raw
// JSON encoding, so no schema is imposed and key order inside objects survives.
type Dataset []json.RawMessage

// Load reads the whole file at path and parses it as a JSON array.
//
// A missing or unreadable file fails with ErrFileAccess. Content that is not
// valid JSON, or whose top-level value is not an array, fails with ErrParse.
func Load(path string) (Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileAccess, err)
	}
	return parse(data)
}

func parse(data []byte) (Dataset, error) {
	var records Dataset
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	// null decodes into a nil slice without error
	if trimmed := bytes.TrimSpace(data); len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, fmt.Errorf("%w: top-level value is not an array", ErrParse)
	}
	return records, nil
}

// Boundary returns the index at which a sequence of n elements is cut for fraction.
//
// The cut is n*fraction truncated toward zero. A negative cut counts back from
// the end of the sequence and stops at 0; a cut past the end stops at n.
// fraction must be finite.
func Boundary(n int, fraction float64) int {
	b := math.Trunc(float64(n) * fraction)
	switch {
	case b >= float64(n):
		return n
	case b >= 0:
		return int(b)
	case b <= -float64(n):
		return 0
	default:
		return n + int(b)
	}
}

// Partition cuts records at Boundary(len(records), fraction) and returns the
// held-out part and the remainder. The two parts keep the order of records and
// together cover it exactly. Their capacities are clipped so appending to the
// held-out part never overwrites the remainder.
//
// NaN and infinite fractions fail with ErrInvalidFraction.
func Partition[T any](records []T, fraction float64) (heldOut, remainder []T, err error) {
	if math.IsNaN(fraction) || math.IsInf(fraction, 0) {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidFraction, fraction)
	}
	b := Boundary(len(records), fraction)
	return records[:b:b], records[b:], nil
}

// WriteDataset writes records to path as an indented JSON array, creating
// missing parent directories. Failures to create or write fail with ErrFileAccess.
func WriteDataset(path string, records Dataset) error {
	if records == nil {
		records = Dataset{}
	}
	data, err := marshalIndent(records)
	if err != nil {
		return err
	}
	return writeFile(path, data)
}

// marshalIndent encodes v with 4-space indentation, leaving HTML and non-ASCII
// characters unescaped and without a trailing newline.
func marshalIndent(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("%w: %w", ErrFileAccess, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: %w", ErrFileAccess, err)
	}
	return nil
}
