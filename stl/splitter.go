package stl

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
)

// SplitByFacet rewrites an ASCII STL file so that every facet becomes an
// independent solid named {base}_{index}, where base is the name of the
// solid the facet came from and index is a zero-based counter reset at each
// solid. Facet payload lines are copied byte for byte; the original solid
// and endsolid markers are replaced by the synthesized per-facet pair.
//
// The output is accumulated in memory and written in one operation, so a
// malformed input (a facet with no matching endfacet before end of file)
// produces an error and no output file rather than a truncated one.
//
// Returns the number of facet solids written.
func SplitByFacet(inputPath, outputPath string) (int, error) {
	file, err := os.Open(inputPath)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	var (
		out        bytes.Buffer
		unit       bytes.Buffer
		reader     = bufio.NewReader(file)
		base       string
		solidIndex int
		total      int
		lineNum    int
		capturing  bool
		facetOpen  int
	)

	for {
		raw, readErr := reader.ReadString('\n')
		if len(raw) > 0 {
			lineNum++
			// Only the final line of a file may lack a terminator.
			if !strings.HasSuffix(raw, "\n") {
				raw += "\n"
			}
			trimmed := strings.TrimSpace(raw)

			switch {
			case capturing:
				unit.WriteString(raw)
				if strings.HasPrefix(trimmed, "endfacet") {
					fmt.Fprintf(&unit, "endsolid %s_%d\n", base, solidIndex)
					out.Write(unit.Bytes())
					solidIndex++
					total++
					capturing = false
				}

			case trimmed == "solid" || strings.HasPrefix(trimmed, "solid "):
				base = strings.TrimSpace(strings.TrimPrefix(trimmed, "solid"))
				solidIndex = 0

			case strings.HasPrefix(trimmed, "facet normal"):
				unit.Reset()
				fmt.Fprintf(&unit, "solid %s_%d\n", base, solidIndex)
				unit.WriteString(raw)
				capturing = true
				facetOpen = lineNum

				// Anything else outside a facet (endsolid markers, blank
				// lines) is dropped; the split file carries only the
				// synthesized solids.
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return 0, fmt.Errorf("error reading %s: %v", inputPath, readErr)
		}
	}

	if capturing {
		return 0, &FormatError{Line: facetOpen,
			Msg: "facet has no matching endfacet before end of file"}
	}

	if err := os.WriteFile(outputPath, out.Bytes(), 0644); err != nil {
		return 0, err
	}
	return total, nil
}
