package animal

import (
	"sort"
	"strings"
)

// FacetSet is the set of distinct lower-cased values a characteristic takes
type FacetSet map[string]struct{}

// Contains reports whether value is in the set
func (f FacetSet) Contains(value string) bool {
	_, ok := f[value]
	return ok
}

// Sorted returns the values in lexical order, for display
func (f FacetSet) Sorted() []string {
	values := make([]string, 0, len(f))
	for v := range f {
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}

// Facets collects the distinct lower-cased values of key across records.
// Records without the key are skipped.
func Facets(records []Record, key string) FacetSet {
	facets := make(FacetSet)
	for _, r := range records {
		if v, ok := r.Characteristics.Get(key); ok {
			facets[strings.ToLower(v)] = struct{}{}
		}
	}
	return facets
}

// Filter returns the records whose key equals value, ignoring case.
// Input order is preserved and records missing the key are dropped.
func Filter(records []Record, key, value string) []Record {
	want := strings.ToLower(value)
	filtered := make([]Record, 0, len(records))
	for _, r := range records {
		if v, ok := r.Characteristics.Get(key); ok && strings.ToLower(v) == want {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// ChooseFacet normalizes user input and accepts it only if it names a
// value in facets. Blank or unknown input means no filter.
func ChooseFacet(facets FacetSet, input string) (string, bool) {
	choice := strings.ToLower(strings.TrimSpace(input))
	if choice == "" || !facets.Contains(choice) {
		return "", false
	}
	return choice, true
}
