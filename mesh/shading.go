package mesh

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/urbanflow/meshprep/InputParameters"
)

// ShadingGridInfo is the uniform-grid domain description for the shading
// solver: the normalized bounds extended by a fixed five-cell boundary
// margin on every side except the ground plane (z min), plus the grid
// size and the 3D output switch.
type ShadingGridInfo struct {
	XfMin, XfMax float64
	YfMin, YfMax float64
	ZfMin, ZfMax float64
	GridSize     float64
	Output3D     string

	NX, NY, NZ int // urban cells per axis, before the boundary extension
}

// GenerateShadingGridInfo normalizes the three extents to whole cell
// counts, then extends the domain outward by five cells on x min/max,
// y min/max and z max. The z min bound is the ground and stays put.
func GenerateShadingGridInfo(p *InputParameters.ShadingParameters) *ShadingGridInfo {
	s := &ShadingGridInfo{
		GridSize: float64(p.GridSize),
		Output3D: string(p.Output3D),
	}

	xfMin, yfMin, zfMin := float64(p.XfMin), float64(p.YfMin), float64(p.ZfMin)
	xfMax, nx := NormalizeExtent(xfMin, float64(p.XfMax), s.GridSize)
	yfMax, ny := NormalizeExtent(yfMin, float64(p.YfMax), s.GridSize)
	zfMax, nz := NormalizeExtent(zfMin, float64(p.ZfMax), s.GridSize)
	s.NX, s.NY, s.NZ = nx, ny, nz

	margin := 5 * s.GridSize
	s.XfMin = xfMin - margin
	s.XfMax = xfMax + margin
	s.YfMin = yfMin - margin
	s.YfMax = yfMax + margin
	s.ZfMin = zfMin
	s.ZfMax = zfMax + margin
	return s
}

// Write serializes the shading domain in the solver's fixed layout. The
// extended bounds are written under the xf_/yf_/zf_ keys; the shading
// reader has no separate buffer-zone section.
func (s *ShadingGridInfo) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "!!!!!!!!!!!Mesh info data!!!!!!!!!!!\n")
	fmt.Fprintf(bw, "xf_min\t%v\n", s.XfMin)
	fmt.Fprintf(bw, "xf_max\t%v\n", s.XfMax)
	fmt.Fprintf(bw, "yf_min\t%v\n", s.YfMin)
	fmt.Fprintf(bw, "yf_max\t%v\n", s.YfMax)
	fmt.Fprintf(bw, "zf_min\t%v\n", s.ZfMin)
	fmt.Fprintf(bw, "zf_max\t%v\n", s.ZfMax)
	fmt.Fprintf(bw, "grid_size\t%v\n", s.GridSize)
	fmt.Fprintf(bw, "3D_output\t%s\n", s.Output3D)
	return bw.Flush()
}

// WriteFile writes the description to filename in one operation, leaving
// no partial file behind on error.
func (s *ShadingGridInfo) WriteFile(filename string) error {
	var buf bytes.Buffer
	if err := s.Write(&buf); err != nil {
		return err
	}
	return os.WriteFile(filename, buf.Bytes(), 0644)
}
