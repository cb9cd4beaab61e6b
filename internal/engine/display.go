package engine

import (
	"sort"

	"golang.org/x/text/cases"
)

// SortFold returns a copy of names ordered case-insensitively for display.
// Names equal under case folding fall back to byte order, so the result is
// total and deterministic.
func SortFold(names []string) []string {
	fold := cases.Fold()
	type keyed struct {
		key, name string
	}
	ks := make([]keyed, len(names))
	for i, n := range names {
		ks[i] = keyed{key: fold.String(n), name: n}
	}
	sort.Slice(ks, func(i, j int) bool {
		if ks[i].key != ks[j].key {
			return ks[i].key < ks[j].key
		}
		return ks[i].name < ks[j].name
	})
	out := make([]string, len(ks))
	for i, k := range ks {
		out[i] = k.name
	}
	return out
}
