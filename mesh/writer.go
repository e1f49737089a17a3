package mesh

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
)

// Write serializes the mesh description in the solver's fixed key-value
// layout. Field order and the banner lines are part of the contract with
// the solver's reader; do not reorder. A taxonomy key missing from
// SolidCounts is written as zero.
func (g *GridInfo) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "!!!!!!!!!!!Mesh info data (Urban region)!!!!!!!!!!!\n")
	fmt.Fprintf(bw, "xf_min\t%v\n", g.XfMin)
	fmt.Fprintf(bw, "xf_max\t%v\n", g.XfMax)
	fmt.Fprintf(bw, "yf_min\t%v\n", g.YfMin)
	fmt.Fprintf(bw, "yf_max\t%v\n", g.YfMax)
	fmt.Fprintf(bw, "zf_min\t%v\n", g.ZfMin)
	fmt.Fprintf(bw, "zf_max\t%v\n", g.ZfMax)
	fmt.Fprintf(bw, "grid_size\t%v\n", g.GridSize)

	fmt.Fprintf(bw, "!!!!!!!!!!!Mesh info data (Buffer zone)!!!!!!!!!!!\n")
	fmt.Fprintf(bw, "x_min\t%v\n", g.XMin)
	fmt.Fprintf(bw, "x_max\t%v\n", g.XMax)
	fmt.Fprintf(bw, "y_min\t%v\n", g.YMin)
	fmt.Fprintf(bw, "y_max\t%v\n", g.YMax)
	fmt.Fprintf(bw, "z_min\t%v\n", g.ZMin)
	fmt.Fprintf(bw, "z_max\t%v\n", g.ZMax)
	fmt.Fprintf(bw, "delta\t%v\n", g.Delta)
	fmt.Fprintf(bw, "n_grid\t%d\n", g.BufferGrids)

	fmt.Fprintf(bw, "!!!!!!!!!!!Mesh size!!!!!!!!!!!\n")
	fmt.Fprintf(bw, "n_x_grid\t%d\n", g.NXGrid)
	fmt.Fprintf(bw, "n_y_grid\t%d\n", g.NYGrid)
	fmt.Fprintf(bw, "n_z_grid\t%d\n", g.NZGrid)

	writeWidths(bw, "x_grid", g.XGrid)
	writeWidths(bw, "y_grid", g.YGrid)
	writeWidths(bw, "z_grid", g.ZGrid)

	fmt.Fprintf(bw, "\n!!!!!!!!!!!Geometry data!!!!!!!!!!!\n")
	fmt.Fprintf(bw, "num_buildings\t%d\n", g.SolidCounts["building"])
	fmt.Fprintf(bw, "num_trees\t%d\n", g.SolidCounts["tree"])
	fmt.Fprintf(bw, "num_grasses\t%d\n", g.SolidCounts["grass"])
	fmt.Fprintf(bw, "num_highways\t%d\n", g.SolidCounts["highway"])
	fmt.Fprintf(bw, "num_waterways\t%d\n", g.SolidCounts["waterway"])
	fmt.Fprintf(bw, "num_ground\t%d\n", g.SolidCounts["ground"])

	return bw.Flush()
}

func writeWidths(w *bufio.Writer, key string, widths []float64) {
	w.WriteString(key)
	for _, dx := range widths {
		fmt.Fprintf(w, "\t%v", dx)
	}
	w.WriteByte('\n')
}

// WriteFile writes the description to filename in one operation, leaving
// no partial file behind on error.
func (g *GridInfo) WriteFile(filename string) error {
	var buf bytes.Buffer
	if err := g.Write(&buf); err != nil {
		return err
	}
	return os.WriteFile(filename, buf.Bytes(), 0644)
}
