package mesh

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/urbanflow/meshprep/InputParameters"
)

// WriteDomainInfo serializes the solver setup block consumed alongside the
// mesh description. Most fields are opaque solver settings copied through
// with their source spelling intact; only the monitoring point
// (xyzPrint_1..3) is derived here, defaulting to mid-domain in x and z and
// to 1.15 times the far y bound when no explicit error location was
// configured. numSimulation is the weather series row count; callers pass
// 1 when no weather data is available.
func WriteDomainInfo(w io.Writer, p *InputParameters.MicroclimateParameters, numSimulation int) error {
	xyz1, err := monitorCoord(p.ErrorLocationX, (float64(p.XfMin)+float64(p.XfMax))/2)
	if err != nil {
		return fmt.Errorf("errorLocationX: %v", err)
	}
	xyz2, err := monitorCoord(p.ErrorLocationY, float64(p.YfMax)*1.15)
	if err != nil {
		return fmt.Errorf("errorLocationY: %v", err)
	}
	xyz3, err := monitorCoord(p.ErrorLocationZ, (float64(p.ZfMin)+float64(p.ZfMax))/2)
	if err != nil {
		return fmt.Errorf("errorLocationZ: %v", err)
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "!!!!!!!!!!!Setup info!!!!!!!!!!!\n")
	fmt.Fprintf(bw, "output_step\t%s\n", p.OutputFrequency)
	fmt.Fprintf(bw, "num_Simulation\t%d\n", numSimulation)
	fmt.Fprintf(bw, "num_Iteration\t%s\n", p.Iterations)
	fmt.Fprintf(bw, "BEM_coupling\t%s\n", p.BEMCoupling)
	fmt.Fprintf(bw, "DT\t%s\n", p.TimeStep)
	fmt.Fprintf(bw, "L_ref\t%s\n", p.LRef)
	fmt.Fprintf(bw, "pow_u\t%s\n", p.PowU)
	fmt.Fprintf(bw, "Cs\t%s\n", p.Cs)
	fmt.Fprintf(bw, "Flow_Mode\t%s\n", p.FlowMode)
	fmt.Fprintf(bw, "intrp\t%s\n", p.Interpolation)
	fmt.Fprintf(bw, "ave_needed\t%s\n", p.AveNeeded)
	fmt.Fprintf(bw, "Boussinesq\t%s\n", p.Boussinesq)
	fmt.Fprintf(bw, "xyzPrint_1\t%v\n", xyz1)
	fmt.Fprintf(bw, "xyzPrint_2\t%v\n", xyz2)
	fmt.Fprintf(bw, "xyzPrint_3\t%v\n", xyz3)
	fmt.Fprintf(bw, "Weather_file\tavailable\n")
	return bw.Flush()
}

// monitorCoord resolves one monitoring point coordinate: a blank setting
// yields the default, anything else must parse as a number.
func monitorCoord(s InputParameters.Setting, def float64) (float64, error) {
	tok := strings.TrimSpace(string(s))
	if tok == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid coordinate %q: %v", tok, err)
	}
	return v, nil
}

// WriteDomainInfoFile writes the setup block to filename in one operation,
// leaving no partial file behind on error.
func WriteDomainInfoFile(filename string, p *InputParameters.MicroclimateParameters, numSimulation int) error {
	var buf bytes.Buffer
	if err := WriteDomainInfo(&buf, p, numSimulation); err != nil {
		return err
	}
	return os.WriteFile(filename, buf.Bytes(), 0644)
}
