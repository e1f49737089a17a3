package stl

import "strings"

// Taxonomy is an ordered list of solid type keys. A solid name is assigned
// the first key it matches as a case-insensitive prefix, so declaration
// order is the tie-break when keys overlap (e.g. "grass" before "grassland").
type Taxonomy []string

// DefaultTaxonomy covers the solid types the microclimate solver recognizes.
var DefaultTaxonomy = Taxonomy{
	"building",
	"highway",
	"grass",
	"ground",
	"waterway",
	"tree",
}

// Classify returns the first taxonomy key the name matches as a
// case-insensitive prefix. Unmatched names report ok == false and are not
// an error: the scene may carry solids the solver has no use for.
func (tx Taxonomy) Classify(name string) (key string, ok bool) {
	for _, k := range tx {
		if len(name) >= len(k) && strings.EqualFold(name[:len(k)], k) {
			return k, true
		}
	}
	return "", false
}

// ZeroCounts returns a count map with every taxonomy key present at zero,
// the shape the description writer expects.
func (tx Taxonomy) ZeroCounts() map[string]int {
	counts := make(map[string]int, len(tx))
	for _, k := range tx {
		counts[k] = 0
	}
	return counts
}
