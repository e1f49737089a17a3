package stl

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return strings.Split(strings.TrimRight(string(data), "\n"), "\n")
}

func TestSplitByFacetStandardScene(t *testing.T) {
	scene := GetStandardTestScene()
	dir := t.TempDir()
	in := filepath.Join(dir, "scene.stl")
	out := filepath.Join(dir, "scene_split.stl")
	require.NoError(t, os.WriteFile(in, []byte(BuildASCII(scene.Solids...)), 0644))

	n, err := SplitByFacet(in, out)
	require.NoError(t, err)
	assert.Equal(t, scene.FacetCount, n)

	sum, err := ParseFile(out, DefaultTaxonomy)
	require.NoError(t, err)

	// Geometry is untouched, only the solid grouping changes.
	assert.Equal(t, scene.Bounds, sum.Bounds)
	assert.Equal(t, 2, sum.SolidCounts["building"])
	assert.Equal(t, 1, sum.SolidCounts["highway"])
	assert.Equal(t, 1, sum.SolidCounts["tree"])
	assert.Equal(t, []string{"building_01_0", "building_01_1"}, sum.SolidNames["building"])
	assert.Equal(t, []string{"Highway_3_0"}, sum.SolidNames["highway"])

	t.Run("split is stable", func(t *testing.T) {
		out2 := filepath.Join(dir, "scene_split2.stl")
		n2, err := SplitByFacet(out, out2)
		require.NoError(t, err)
		assert.Equal(t, n, n2)
	})
}

func TestSplitByFacetNamingResetsPerSolid(t *testing.T) {
	solids := []TestSolid{
		{Name: "building_a", Facets: [][3][3]float64{
			{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
			{{0, 0, 1}, {1, 0, 1}, {0, 1, 1}},
		}},
		{Name: "building_b", Facets: [][3][3]float64{
			{{5, 5, 5}, {6, 5, 5}, {5, 6, 5}},
		}},
	}
	dir := t.TempDir()
	in := filepath.Join(dir, "in.stl")
	out := filepath.Join(dir, "out.stl")
	require.NoError(t, os.WriteFile(in, []byte(BuildASCII(solids...)), 0644))

	_, err := SplitByFacet(in, out)
	require.NoError(t, err)

	var opened, closed []string
	for _, line := range readLines(t, out) {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "endsolid ") {
			closed = append(closed, strings.TrimPrefix(trimmed, "endsolid "))
		} else if strings.HasPrefix(trimmed, "solid ") {
			opened = append(opened, strings.TrimPrefix(trimmed, "solid "))
		}
	}
	want := []string{"building_a_0", "building_a_1", "building_b_0"}
	assert.Equal(t, want, opened)
	assert.Equal(t, want, closed)
}

func TestSplitByFacetPayloadPreserved(t *testing.T) {
	scene := GetStandardTestScene()
	dir := t.TempDir()
	in := filepath.Join(dir, "in.stl")
	out := filepath.Join(dir, "out.stl")
	require.NoError(t, os.WriteFile(in, []byte(BuildASCII(scene.Solids...)), 0644))

	_, err := SplitByFacet(in, out)
	require.NoError(t, err)

	// Everything between facet and endfacet must survive byte for byte,
	// in the original order.
	payload := func(lines []string) (kept []string) {
		for _, line := range lines {
			trimmed := strings.TrimSpace(line)
			if strings.HasPrefix(trimmed, "solid") || strings.HasPrefix(trimmed, "endsolid") {
				continue
			}
			kept = append(kept, line)
		}
		return
	}
	assert.Equal(t, payload(readLines(t, in)), payload(readLines(t, out)))
}

func TestSplitByFacetNoTrailingNewline(t *testing.T) {
	solid := TestSolid{
		Name: "building_z",
		Facets: [][3][3]float64{
			{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		},
	}
	dir := t.TempDir()
	in := filepath.Join(dir, "in.stl")
	out := filepath.Join(dir, "out.stl")
	content := strings.TrimRight(BuildASCII(solid), "\n")
	require.NoError(t, os.WriteFile(in, []byte(content), 0644))

	n, err := SplitByFacet(in, out)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	sum, err := ParseFile(out, DefaultTaxonomy)
	require.NoError(t, err)
	assert.Equal(t, []string{"building_z_0"}, sum.SolidNames["building"])
}

func TestSplitByFacetUnterminatedFacet(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "bad.stl")
	out := filepath.Join(dir, "bad_split.stl")
	content := "solid building_1\n  facet normal 0 0 1\n    outer loop\n      vertex 0 0 0\n"
	require.NoError(t, os.WriteFile(in, []byte(content), 0644))

	_, err := SplitByFacet(in, out)
	var ferr *FormatError
	require.True(t, errors.As(err, &ferr))
	assert.Equal(t, 2, ferr.Line)

	// No partial output on error.
	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
}
