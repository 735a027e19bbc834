package desktop

import (
	"testing"
)

func TestSearchDirs_Defaults(t *testing.T) {
	env := map[string]string{"HOME": "/home/u"}
	got := SearchDirs(func(k string) string { return env[k] }, []string{"/opt/apps", "/usr/share/applications"})
	want := []string{
		"/home/u/.local/share/applications",
		"/usr/local/share/applications",
		"/usr/share/applications",
		"/opt/apps",
	}
	if len(got) != len(want) {
		t.Fatalf("SearchDirs = %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("SearchDirs = %v want %v", got, want)
		}
	}
}

func TestSearchDirs_XDGOverridesAndNoHome(t *testing.T) {
	env := map[string]string{
		"XDG_DATA_DIRS": "/nix/profile/share::/usr/share",
	}
	got := SearchDirs(func(k string) string { return env[k] }, nil)
	want := []string{"/nix/profile/share/applications", "/usr/share/applications"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("SearchDirs = %v want %v", got, want)
	}

	env["XDG_DATA_HOME"] = "/data"
	got = SearchDirs(func(k string) string { return env[k] }, nil)
	if got[0] != "/data/applications" {
		t.Fatalf("XDG_DATA_HOME not first: %v", got)
	}
}
