package catalog

import (
	"strings"

	"github.com/google/uuid"
)

// Index is the sorted, immutable set of launchable entries built once per run.
// It is safe for concurrent reads; nothing mutates it after Build returns.
type Index struct {
	entries []Entry
	lowered []string
	byID    map[string]int
}

// Build admits records into a new Index. Records flagged NoDisplay or with
// an empty Exec are dropped; a missing name becomes PlaceholderName. Records
// with the same name from different sources are kept as distinct entries.
func Build(records []Record) *Index {
	entries := make([]Entry, 0, len(records))
	for _, r := range records {
		if r.NoDisplay || r.Exec == "" {
			continue
		}
		name := r.Name
		if name == "" {
			name = PlaceholderName
		}
		entries = append(entries, Entry{
			ID:          uuid.NewString(),
			Name:        name,
			Exec:        r.Exec,
			Icon:        r.Icon,
			Description: r.Comment,
			Source:      r.Source,
		})
	}
	sortEntries(entries)

	idx := &Index{
		entries: entries,
		lowered: make([]string, len(entries)),
		byID:    make(map[string]int, len(entries)),
	}
	for i, e := range entries {
		idx.lowered[i] = strings.ToLower(e.Name)
		idx.byID[e.ID] = i
	}
	return idx
}

// Len returns the number of entries.
func (x *Index) Len() int {
	if x == nil {
		return 0
	}
	return len(x.entries)
}

// At returns the i-th entry in sort order.
func (x *Index) At(i int) Entry { return x.entries[i] }

// LowerName returns the lower-cased name of the i-th entry.
func (x *Index) LowerName(i int) string { return x.lowered[i] }

// Entries returns a copy of all entries in sort order.
func (x *Index) Entries() []Entry {
	if x == nil {
		return []Entry{}
	}
	out := make([]Entry, len(x.entries))
	copy(out, x.entries)
	return out
}

// Lookup returns the entry with the given ID.
func (x *Index) Lookup(id string) (Entry, bool) {
	if x == nil {
		return Entry{}, false
	}
	i, ok := x.byID[id]
	if !ok {
		return Entry{}, false
	}
	return x.entries[i], true
}

// FindByName returns every entry whose name equals name exactly, in sort order.
// More than one result means the name is ambiguous.
func (x *Index) FindByName(name string) []Entry {
	var out []Entry
	if x == nil {
		return out
	}
	for _, e := range x.entries {
		if e.Name == name {
			out = append(out, e)
		}
	}
	return out
}
