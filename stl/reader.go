package stl

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
)

// FormatError reports malformed STL input. Line numbers are 1-based.
type FormatError struct {
	Line int
	Msg  string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("stl: line %d: %s", e.Line, e.Msg)
}

// AxisBounds is one axis of a bounding box.
type AxisBounds struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Bounds is the global axis-aligned bounding box of a scene.
type Bounds struct {
	X AxisBounds `json:"x"`
	Y AxisBounds `json:"y"`
	Z AxisBounds `json:"z"`
}

// Summary is the result of one classifying pass over an ASCII STL scene:
// the global bounding box plus per-type solid counts and retained names.
// The JSON layout matches the summary artifact the grid stage consumes.
type Summary struct {
	Bounds      Bounds              `json:"bounds"`
	SolidCounts map[string]int      `json:"solid_counts"`
	SolidNames  map[string][]string `json:"solid_names"`
}

// ParseFile scans an ASCII STL file in a single forward pass, classifying
// each solid by taxonomy prefix and accumulating the bounding box from
// every vertex line. A file with no vertices yields +Inf/-Inf bounds so
// callers can detect an empty scene; that is not an error. The input file
// is never modified.
func ParseFile(filename string, tx Taxonomy) (*Summary, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	s := &Summary{
		SolidCounts: tx.ZeroCounts(),
		SolidNames:  make(map[string][]string, len(tx)),
	}
	for _, k := range tx {
		s.SolidNames[k] = []string{}
	}

	var (
		min = [3]float64{math.Inf(1), math.Inf(1), math.Inf(1)}
		max = [3]float64{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	)

	scanner := bufio.NewScanner(file)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "solid":
			// Name is the remainder of the line after the keyword, so
			// names containing spaces survive intact.
			name := strings.TrimSpace(strings.TrimPrefix(line, "solid"))
			if name == "" {
				continue
			}
			if key, ok := tx.Classify(name); ok {
				s.SolidCounts[key]++
				s.SolidNames[key] = append(s.SolidNames[key], name)
			}

		case "vertex":
			if len(fields) != 4 {
				return nil, &FormatError{Line: lineNum,
					Msg: fmt.Sprintf("vertex line has %d coordinate fields, expected 3", len(fields)-1)}
			}
			for i := 0; i < 3; i++ {
				v, err := strconv.ParseFloat(fields[i+1], 64)
				if err != nil {
					return nil, &FormatError{Line: lineNum,
						Msg: fmt.Sprintf("invalid coordinate %q: %v", fields[i+1], err)}
				}
				if v < min[i] {
					min[i] = v
				}
				if v > max[i] {
					max[i] = v
				}
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading %s: %v", filename, err)
	}

	s.Bounds = Bounds{
		X: AxisBounds{Min: min[0], Max: max[0]},
		Y: AxisBounds{Min: min[1], Max: max[1]},
		Z: AxisBounds{Min: min[2], Max: max[2]},
	}
	return s, nil
}
