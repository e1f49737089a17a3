package mesh

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urbanflow/meshprep/InputParameters"
)

func setupParams() *InputParameters.MicroclimateParameters {
	return &InputParameters.MicroclimateParameters{
		XfMin: 0, XfMax: 10,
		YfMin: 0, YfMax: 20,
		ZfMin: 0, ZfMax: 8,
		GridSize:        1,
		Delta:           2,
		BufferGrids:     10,
		OutputFrequency: "10",
		Iterations:      "500",
		BEMCoupling:     "1",
		TimeStep:        "0.5",
		LRef:            "10.0",
		PowU:            "0.25",
		Cs:              "0.2",
		FlowMode:        "steady",
		Interpolation:   "1",
		AveNeeded:       "0",
		Boussinesq:      "true",
	}
}

func TestWriteDomainInfoLayout(t *testing.T) {
	p := setupParams()
	p.ErrorLocationX = "5.5"
	p.ErrorLocationY = "12"
	p.ErrorLocationZ = "3.25"

	var buf bytes.Buffer
	require.NoError(t, WriteDomainInfo(&buf, p, 48))

	want := strings.Join([]string{
		"!!!!!!!!!!!Setup info!!!!!!!!!!!",
		"output_step\t10",
		"num_Simulation\t48",
		"num_Iteration\t500",
		"BEM_coupling\t1",
		"DT\t0.5",
		"L_ref\t10.0",
		"pow_u\t0.25",
		"Cs\t0.2",
		"Flow_Mode\tsteady",
		"intrp\t1",
		"ave_needed\t0",
		"Boussinesq\ttrue",
		"xyzPrint_1\t5.5",
		"xyzPrint_2\t12",
		"xyzPrint_3\t3.25",
		"Weather_file\tavailable",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestWriteDomainInfoMonitorDefaults(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteDomainInfo(&buf, setupParams(), 1))

	values := map[string]string{}
	for _, line := range strings.Split(buf.String(), "\n") {
		if k, v, ok := strings.Cut(line, "\t"); ok {
			values[k] = v
		}
	}

	parse := func(key string) float64 {
		v, err := strconv.ParseFloat(values[key], 64)
		require.NoError(t, err, key)
		return v
	}
	// Blank error locations fall back to mid-x, 1.15 times the far y
	// bound, and mid-z.
	assert.InDelta(t, 5.0, parse("xyzPrint_1"), 1e-12)
	assert.InDelta(t, 23.0, parse("xyzPrint_2"), 1e-12)
	assert.InDelta(t, 4.0, parse("xyzPrint_3"), 1e-12)
	assert.Equal(t, "1", values["num_Simulation"])
	assert.Equal(t, "available", values["Weather_file"])
}

func TestWriteDomainInfoBadMonitorCoordinate(t *testing.T) {
	p := setupParams()
	p.ErrorLocationY = "center"
	var buf bytes.Buffer
	err := WriteDomainInfo(&buf, p, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "errorLocationY")
	// Nothing is emitted when the parameters are unusable.
	assert.Zero(t, buf.Len())
}
