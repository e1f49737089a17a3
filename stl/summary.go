package stl

import (
	"encoding/json"
	"fmt"
	"os"
)

// WriteSummaryFile persists a Summary as the JSON artifact consumed by the
// grid stage. A scene with no vertices carries infinite bounds, which JSON
// cannot represent; the resulting error is the caller's signal that there
// was no geometry to summarize.
func WriteSummaryFile(filename string, s *Summary) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding summary: %v", err)
	}
	return os.WriteFile(filename, data, 0644)
}

// WriteSolidCounts persists the flat {"type": count} map produced after
// splitting, where each facet solid counts individually.
func WriteSolidCounts(filename string, counts map[string]int) error {
	data, err := json.Marshal(counts)
	if err != nil {
		return fmt.Errorf("encoding solid counts: %v", err)
	}
	return os.WriteFile(filename, data, 0644)
}

// ReadSolidCounts loads a flat {"type": count} map, defaulting every
// taxonomy key missing from the file to zero so the description writer
// always sees the full key set.
func ReadSolidCounts(filename string, tx Taxonomy) (map[string]int, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int)
	if err := json.Unmarshal(data, &counts); err != nil {
		return nil, fmt.Errorf("decoding solid counts from %s: %v", filename, err)
	}
	for _, k := range tx {
		if _, ok := counts[k]; !ok {
			counts[k] = 0
		}
	}
	return counts, nil
}
