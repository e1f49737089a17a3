package mesh

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// InvalidBufferConfigError reports that the buffer count reduction reached
// zero with the stretching margin still violated: the buffer length leaves
// less than five minimum cells of room.
type InvalidBufferConfigError struct {
	Requested    int
	BufferLength float64
	GridSize     float64
}

func (e *InvalidBufferConfigError) Error() string {
	return fmt.Sprintf("buffer of %d cells cannot stretch into length %v with grid size %v",
		e.Requested, e.BufferLength, e.GridSize)
}

// NormalizeExtent rounds extent/gridSize to the nearest integer cell count
// and shifts the far bound by the residual so the extent divides evenly.
// The near bound is never moved.
func NormalizeExtent(min, max, gridSize float64) (adjustedMax float64, cells int) {
	exact := (max - min) / gridSize
	rounded := math.Round(exact)
	if exact != rounded {
		max += (rounded - exact) * gridSize
	}
	return max, int(rounded)
}

// AdjustBufferGrids decrements the requested buffer cell count, never
// incrementing it, until count*gridSize fits within bufferLength less a
// five cell margin. A positive request driven all the way to zero with the
// margin still unmet is an error; an explicit zero request passes through.
// Callers should inspect the returned count, which may be lower than
// requested.
func AdjustBufferGrids(requested int, gridSize, bufferLength float64) (int, error) {
	n := requested
	for n > 0 && float64(n)*gridSize > bufferLength-5*gridSize {
		n--
	}
	if n == 0 && requested > 0 && bufferLength < 5*gridSize {
		return 0, &InvalidBufferConfigError{
			Requested:    requested,
			BufferLength: bufferLength,
			GridSize:     gridSize,
		}
	}
	return n, nil
}

// GenerateTwoBufferGrid builds the cell width sequence for an axis
// buffered on both sides: a geometric run reversed so the widest cell sits
// at the outer boundary, the uniform urban core, then a fresh increasing
// run. The ratio is solved once and shared by both sides. A zero buffer
// count yields the bare uniform core without invoking the solver.
func GenerateTwoBufferGrid(bufferGrids int, dxMin, bufferLength float64, nUrbanCells int) ([]float64, error) {
	grids := make([]float64, 0, 2*bufferGrids+nUrbanCells)
	if bufferGrids == 0 {
		return append(grids, uniformRun(nUrbanCells, dxMin)...), nil
	}

	r, err := FindStretchRatio(dxMin, bufferGrids, bufferLength)
	if err != nil {
		return nil, err
	}

	pre := geometricRun(bufferGrids, dxMin, r)
	floats.Reverse(pre)
	grids = append(grids, pre...)
	grids = append(grids, uniformRun(nUrbanCells, dxMin)...)
	grids = append(grids, geometricRun(bufferGrids, dxMin, r)...)
	return grids, nil
}

// GenerateOneBufferGrid builds the cell width sequence for an axis
// buffered on the far side only: the uniform urban core followed by one
// increasing geometric run.
func GenerateOneBufferGrid(bufferGrids int, dxMin, bufferLength float64, nUrbanCells int) ([]float64, error) {
	grids := make([]float64, 0, bufferGrids+nUrbanCells)
	grids = append(grids, uniformRun(nUrbanCells, dxMin)...)
	if bufferGrids == 0 {
		return grids, nil
	}

	r, err := FindStretchRatio(dxMin, bufferGrids, bufferLength)
	if err != nil {
		return nil, err
	}
	return append(grids, geometricRun(bufferGrids, dxMin, r)...), nil
}

func geometricRun(n int, dx0, r float64) []float64 {
	run := make([]float64, n)
	dx := dx0
	for i := range run {
		run[i] = dx
		dx *= r
	}
	return run
}

func uniformRun(n int, dx float64) []float64 {
	run := make([]float64, n)
	for i := range run {
		run[i] = dx
	}
	return run
}
