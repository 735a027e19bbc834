package catalog

import (
	"sort"

	"golang.org/x/text/cases"
)

// byFoldedName sorts entries by their case-folded names, kept in a parallel
// slice.
type byFoldedName struct {
	entries []Entry
	keys    []string
}

func (s byFoldedName) Len() int           { return len(s.entries) }
func (s byFoldedName) Less(i, j int) bool { return s.keys[i] < s.keys[j] }
func (s byFoldedName) Swap(i, j int) {
	s.entries[i], s.entries[j] = s.entries[j], s.entries[i]
	s.keys[i], s.keys[j] = s.keys[j], s.keys[i]
}

// sortEntries orders entries by case-folded name, ascending. Equal keys keep
// discovery order.
func sortEntries(entries []Entry) {
	fold := cases.Fold()
	keys := make([]string, len(entries))
	for i, e := range entries {
		keys[i] = fold.String(e.Name)
	}
	sort.Stable(byFoldedName{entries: entries, keys: keys})
}
