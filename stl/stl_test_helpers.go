package stl

import (
	"fmt"
	"strings"
)

// TestSolid describes one solid for BuildASCII: a name plus facets given as
// vertex triples.
type TestSolid struct {
	Name   string
	Facets [][3][3]float64
}

// TestScene bundles a set of solids with the summary a correct parse of
// them must produce.
type TestScene struct {
	Solids     []TestSolid
	Bounds     Bounds
	Counts     map[string]int
	FacetCount int
}

// BuildASCII renders solids as ASCII STL text in the layout real exporters
// produce (indented facet/loop/vertex lines).
func BuildASCII(solids ...TestSolid) string {
	var b strings.Builder
	for _, s := range solids {
		fmt.Fprintf(&b, "solid %s\n", s.Name)
		for _, f := range s.Facets {
			b.WriteString("  facet normal 0 0 1\n")
			b.WriteString("    outer loop\n")
			for _, v := range f {
				fmt.Fprintf(&b, "      vertex %g %g %g\n", v[0], v[1], v[2])
			}
			b.WriteString("    endloop\n")
			b.WriteString("  endfacet\n")
		}
		fmt.Fprintf(&b, "endsolid %s\n", s.Name)
	}
	return b.String()
}

// GetStandardTestScene returns a small mixed urban scene usable across
// reader and splitter tests: three classifiable solids, one solid outside
// the taxonomy, and a bounding box that only closes over all four.
func GetStandardTestScene() TestScene {
	solids := []TestSolid{
		{
			Name: "building_01",
			Facets: [][3][3]float64{
				{{0, 0, 0}, {4, 0, 0}, {4, 10, 0}},
				{{0, 0, 6}, {4, 0, 6}, {0, 10, 6}},
			},
		},
		{
			Name: "Highway_3",
			Facets: [][3][3]float64{
				{{-2, 0, 0}, {8, 0, 0}, {8, 0.5, 0}},
			},
		},
		{
			Name: "tree7",
			Facets: [][3][3]float64{
				{{1, 1, 0}, {2, 1, 0}, {1.5, 3, 4}},
			},
		},
		{
			// Not in the taxonomy: must be skipped by classification but
			// still contribute to the bounding box.
			Name: "pond_1",
			Facets: [][3][3]float64{
				{{0, 0, -1}, {5, 2, -1}, {3, 12, -1}},
			},
		},
	}
	return TestScene{
		Solids: solids,
		Bounds: Bounds{
			X: AxisBounds{Min: -2, Max: 8},
			Y: AxisBounds{Min: 0, Max: 12},
			Z: AxisBounds{Min: -1, Max: 6},
		},
		Counts: map[string]int{
			"building": 1,
			"highway":  1,
			"grass":    0,
			"ground":   0,
			"waterway": 0,
			"tree":     1,
		},
		FacetCount: 5,
	}
}
