package catalog

import (
	"testing"
)

func names(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestBuild_DropsEmptyExecAndNoDisplay(t *testing.T) {
	idx := Build([]Record{
		{Name: "Files", Exec: ""},
		{Name: "Editor", Exec: "edit"},
		{Name: "editor2", Exec: "edit2", NoDisplay: true},
	})
	got := names(idx.Entries())
	if !equalStrings(got, []string{"Editor"}) {
		t.Fatalf("entries = %v, want [Editor]", got)
	}
}

func TestBuild_EveryEntryIsLaunchable(t *testing.T) {
	records := []Record{
		{Name: "a", Exec: "a"},
		{Name: "b", Exec: "", NoDisplay: true},
		{Name: "c", Exec: "c", NoDisplay: true},
		{Exec: "d"},
		{Name: "e"},
	}
	for _, e := range Build(records).Entries() {
		if e.Exec == "" {
			t.Fatalf("entry %q admitted with empty exec", e.Name)
		}
		if e.Name == "c" {
			t.Fatalf("suppressed entry admitted")
		}
	}
}

func TestBuild_PlaceholderName(t *testing.T) {
	idx := Build([]Record{{Exec: "mystery"}})
	if idx.Len() != 1 || idx.At(0).Name != PlaceholderName {
		t.Fatalf("unexpected entries: %v", names(idx.Entries()))
	}
}

func TestBuild_SortsCaseInsensitively(t *testing.T) {
	idx := Build([]Record{
		{Name: "bravo", Exec: "b"},
		{Name: "Charlie", Exec: "c"},
		{Name: "alpine", Exec: "a2"},
		{Name: "Alpha", Exec: "a1"},
	})
	want := []string{"Alpha", "alpine", "bravo", "Charlie"}
	if got := names(idx.Entries()); !equalStrings(got, want) {
		t.Fatalf("order = %v, want %v", got, want)
	}
}

func TestBuild_StableForEqualKeys(t *testing.T) {
	idx := Build([]Record{
		{Name: "Terminal", Exec: "first", Source: "/a"},
		{Name: "terminal", Exec: "second", Source: "/b"},
		{Name: "Terminal", Exec: "third", Source: "/c"},
	})
	var execs []string
	for _, e := range idx.Entries() {
		execs = append(execs, e.Exec)
	}
	if !equalStrings(execs, []string{"first", "second", "third"}) {
		t.Fatalf("tie order = %v", execs)
	}
}

func TestBuild_DuplicateNamesSurviveWithDistinctIDs(t *testing.T) {
	idx := Build([]Record{
		{Name: "Firefox", Exec: "firefox", Source: "/usr/share/applications/firefox.desktop"},
		{Name: "Firefox", Exec: "flatpak run org.mozilla.firefox", Source: "/var/lib/flatpak/firefox.desktop"},
	})
	dups := idx.FindByName("Firefox")
	if len(dups) != 2 {
		t.Fatalf("expected 2 entries named Firefox, got %d", len(dups))
	}
	if dups[0].ID == dups[1].ID {
		t.Fatal("duplicate IDs")
	}
	for _, d := range dups {
		got, ok := idx.Lookup(d.ID)
		if !ok || got.Exec != d.Exec {
			t.Fatalf("Lookup(%s) = %+v, %v", d.ID, got, ok)
		}
	}
}

func TestIndex_EntriesReturnsCopy(t *testing.T) {
	idx := Build([]Record{{Name: "A", Exec: "a"}})
	es := idx.Entries()
	es[0].Exec = "mutated"
	if idx.At(0).Exec != "a" {
		t.Fatal("index mutated through Entries()")
	}
}

func TestIndex_NilAndEmpty(t *testing.T) {
	var idx *Index
	if idx.Len() != 0 || len(idx.Entries()) != 0 {
		t.Fatal("nil index should be empty")
	}
	if _, ok := idx.Lookup("x"); ok {
		t.Fatal("nil index lookup should miss")
	}
	if Build(nil).Len() != 0 {
		t.Fatal("empty build should be empty")
	}
}

func TestIndex_LowerName(t *testing.T) {
	idx := Build([]Record{{Name: "GIMP Image Editor", Exec: "gimp"}})
	if got := idx.LowerName(0); got != "gimp image editor" {
		t.Fatalf("LowerName = %q", got)
	}
}

func TestBuild_SortFoldsBeforeComparing(t *testing.T) {
	idx := Build([]Record{
		{Name: "éclair", Exec: "1"},
		{Name: "Zebra", Exec: "2"},
		{Name: "ÉCLAIR", Exec: "3"},
		{Name: "apple", Exec: "4"},
	})
	var execs []string
	for _, e := range idx.Entries() {
		execs = append(execs, e.Exec)
	}
	// Folded keys compare bytewise, so "zebra" sorts before "éclair".
	if !equalStrings(execs, []string{"4", "2", "1", "3"}) {
		t.Fatalf("order = %v", execs)
	}
}
