package datasplit

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoundary(t *testing.T) {
	test := []struct {
		n        int
		fraction float64
		want     int
	}{
		{10, 0.2, 2},
		{5, 0.2, 1},
		{3, 0.5, 1},
		{10, 0.99, 9},
		{10, 0, 0},
		{10, 1, 10},
		{10, 3, 10},
		{10, -0.05, 0},
		{10, -0.25, 8},
		{10, -1, 0},
		{10, -20, 0},
		{0, 0.5, 0},
		{10, 1e300, 10},
		{10, -1e300, 0},
	}
	for _, tt := range test {
		assert.Equal(t, tt.want, Boundary(tt.n, tt.fraction), "n=%d fraction=%v", tt.n, tt.fraction)
	}
}

func TestPartition(t *testing.T) {
	records := []string{"a", "b", "c", "d", "e"}
	heldOut, remainder, err := Partition(records, 0.4)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, heldOut)
	assert.Equal(t, []string{"c", "d", "e"}, remainder)

	heldOut = append(heldOut, "x")
	assert.Equal(t, []string{"c", "d", "e"}, remainder)
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, records)

	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		heldOut, remainder, err := Partition(records, f)
		require.ErrorIs(t, err, ErrInvalidFraction)
		assert.Nil(t, heldOut)
		assert.Nil(t, remainder)
	}
}

func TestWriteDataset(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "parts", "held_out.json")
	records := raw(`{"b":1,"a":"<é>"}`, `[1,2]`)
	require.NoError(t, WriteDataset(path, records))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[\n    {\n        \"b\": 1,\n        \"a\": \"<é>\"\n    },\n    [\n        1,\n        2\n    ]\n]", string(data))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, loaded, 2)
	assert.JSONEq(t, `{"b":1,"a":"<é>"}`, string(loaded[0]))

	empty := filepath.Join(dir, "empty.json")
	require.NoError(t, WriteDataset(empty, nil))
	data, err = os.ReadFile(empty)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestWriteDatasetNotWritable(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(file, nil, 0o644))
	err := WriteDataset(filepath.Join(file, "out.json"), raw("1"))
	require.ErrorIs(t, err, ErrFileAccess)
}
