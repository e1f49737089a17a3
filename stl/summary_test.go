package stl

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummaryFileRoundTrip(t *testing.T) {
	scene := GetStandardTestScene()
	dir := t.TempDir()
	stlPath := filepath.Join(dir, "scene.stl")
	sumPath := filepath.Join(dir, "solid_summary.json")
	require.NoError(t, os.WriteFile(stlPath, []byte(BuildASCII(scene.Solids...)), 0644))

	sum, err := ParseFile(stlPath, DefaultTaxonomy)
	require.NoError(t, err)
	require.NoError(t, WriteSummaryFile(sumPath, sum))

	data, err := os.ReadFile(sumPath)
	require.NoError(t, err)

	var decoded Summary
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, sum.Bounds, decoded.Bounds)
	assert.Equal(t, sum.SolidCounts, decoded.SolidCounts)
	assert.Equal(t, sum.SolidNames, decoded.SolidNames)

	// The artifact keys are part of the downstream contract.
	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Contains(t, raw, "bounds")
	assert.Contains(t, raw, "solid_counts")
	assert.Contains(t, raw, "solid_names")
}

func TestWriteSummaryFileInfiniteBounds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "solid_summary.json")
	s := &Summary{
		Bounds: Bounds{
			X: AxisBounds{Min: math.Inf(1), Max: math.Inf(-1)},
			Y: AxisBounds{Min: math.Inf(1), Max: math.Inf(-1)},
			Z: AxisBounds{Min: math.Inf(1), Max: math.Inf(-1)},
		},
		SolidCounts: DefaultTaxonomy.ZeroCounts(),
	}
	err := WriteSummaryFile(path, s)
	assert.Error(t, err)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestSolidCountsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "counts.json")
	counts := map[string]int{"building": 12, "tree": 4}
	require.NoError(t, WriteSolidCounts(path, counts))

	got, err := ReadSolidCounts(path, DefaultTaxonomy)
	require.NoError(t, err)

	assert.Equal(t, 12, got["building"])
	assert.Equal(t, 4, got["tree"])
	// Keys absent from the file come back as explicit zeros.
	for _, k := range []string{"highway", "grass", "ground", "waterway"} {
		assert.Equal(t, 0, got[k], k)
	}
}
