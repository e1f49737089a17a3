package mesh

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/urbanflow/meshprep/InputParameters"
)

func TestGenerateShadingGridInfo(t *testing.T) {
	p := &InputParameters.ShadingParameters{
		XfMin: 0, XfMax: 10.3,
		YfMin: 0, YfMax: 12,
		ZfMin: 0, ZfMax: 8,
		GridSize: 1,
		Output3D: "1",
	}
	s := GenerateShadingGridInfo(p)

	// x normalizes from 10.3 to 10 cells before the five-cell margin is
	// applied; the ground plane z min is never extended.
	assert.Equal(t, 10, s.NX)
	assert.Equal(t, 12, s.NY)
	assert.Equal(t, 8, s.NZ)
	assert.Equal(t, -5.0, s.XfMin)
	assert.True(t, scalar.EqualWithinAbs(15.0, s.XfMax, 1e-12))
	assert.Equal(t, -5.0, s.YfMin)
	assert.Equal(t, 17.0, s.YfMax)
	assert.Equal(t, 0.0, s.ZfMin)
	assert.Equal(t, 13.0, s.ZfMax)
}

func TestShadingGridInfoWriteLayout(t *testing.T) {
	s := &ShadingGridInfo{
		XfMin: -5, XfMax: 15,
		YfMin: -5, YfMax: 17,
		ZfMin: 0, ZfMax: 13,
		GridSize: 1,
		Output3D: "1",
	}
	var buf bytes.Buffer
	require.NoError(t, s.Write(&buf))

	want := strings.Join([]string{
		"!!!!!!!!!!!Mesh info data!!!!!!!!!!!",
		"xf_min\t-5",
		"xf_max\t15",
		"yf_min\t-5",
		"yf_max\t17",
		"zf_min\t0",
		"zf_max\t13",
		"grid_size\t1",
		"3D_output\t1",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}
