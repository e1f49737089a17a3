package mesh

import (
	"fmt"

	"github.com/urbanflow/meshprep/InputParameters"
)

// GridInfo is the fully derived mesh description for one scenario: the
// normalized urban bounds, the buffer-extended computational bounds, the
// per-axis cell counts and width sequences, and the solid counts the
// solver loads into its geometry tables. BufferGrids holds the count
// actually used, which AdjustBufferGrids may have lowered from the
// request.
type GridInfo struct {
	XfMin, XfMax float64
	YfMin, YfMax float64
	ZfMin, ZfMax float64
	GridSize     float64

	XMin, XMax  float64
	YMin, YMax  float64
	ZMin, ZMax  float64
	Delta       float64
	BufferGrids int

	NX, NY, NZ             int // urban cells per axis
	NXGrid, NYGrid, NZGrid int // total cells per axis including buffers

	XGrid, YGrid, ZGrid []float64

	SolidCounts map[string]int
}

// GenerateGridInfo derives the complete mesh description from scenario
// parameters and the per-type solid counts of the split geometry. The
// x and z axes are buffered on both sides, y on the far side only, with
// the buffer length taken as delta times the normalized far y bound.
func GenerateGridInfo(p *InputParameters.MicroclimateParameters, solidCounts map[string]int) (*GridInfo, error) {
	g := &GridInfo{
		XfMin:       float64(p.XfMin),
		YfMin:       float64(p.YfMin),
		ZfMin:       float64(p.ZfMin),
		GridSize:    float64(p.GridSize),
		Delta:       float64(p.Delta),
		SolidCounts: solidCounts,
	}

	g.XfMax, g.NX = NormalizeExtent(g.XfMin, float64(p.XfMax), g.GridSize)
	g.YfMax, g.NY = NormalizeExtent(g.YfMin, float64(p.YfMax), g.GridSize)
	g.ZfMax, g.NZ = NormalizeExtent(g.ZfMin, float64(p.ZfMax), g.GridSize)

	bufferLength := g.Delta * g.YfMax

	bufferGrids, err := AdjustBufferGrids(int(p.BufferGrids), g.GridSize, bufferLength)
	if err != nil {
		return nil, fmt.Errorf("buffer sizing: %w", err)
	}
	g.BufferGrids = bufferGrids

	g.XMin = g.XfMin - bufferLength
	g.XMax = g.XfMax + bufferLength
	g.YMin = g.YfMin
	g.YMax = g.YfMax + bufferLength
	g.ZMin = g.ZfMin - bufferLength
	g.ZMax = g.ZfMax + bufferLength

	g.NXGrid = g.NX + 2*bufferGrids
	g.NYGrid = g.NY + bufferGrids
	g.NZGrid = g.NZ + 2*bufferGrids

	if g.XGrid, err = GenerateTwoBufferGrid(bufferGrids, g.GridSize, bufferLength, g.NX); err != nil {
		return nil, fmt.Errorf("x axis: %w", err)
	}
	if g.YGrid, err = GenerateOneBufferGrid(bufferGrids, g.GridSize, bufferLength, g.NY); err != nil {
		return nil, fmt.Errorf("y axis: %w", err)
	}
	if g.ZGrid, err = GenerateTwoBufferGrid(bufferGrids, g.GridSize, bufferLength, g.NZ); err != nil {
		return nil, fmt.Errorf("z axis: %w", err)
	}
	return g, nil
}
