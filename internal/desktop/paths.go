package desktop

import (
	"path/filepath"
	"strings"
)

// SearchDirs returns the application directories to scan, highest priority
// first: $XDG_DATA_HOME/applications, each $XDG_DATA_DIRS/applications, then
// extra. Without HOME or XDG_DATA_HOME the user directory is left out.
func SearchDirs(getenv func(string) string, extra []string) []string {
	var bases []string

	dataHome := getenv("XDG_DATA_HOME")
	if dataHome == "" {
		if home := getenv("HOME"); home != "" {
			dataHome = filepath.Join(home, ".local", "share")
		}
	}
	if dataHome != "" {
		bases = append(bases, dataHome)
	}

	dataDirs := getenv("XDG_DATA_DIRS")
	if dataDirs == "" {
		dataDirs = "/usr/local/share:/usr/share"
	}
	for _, d := range strings.Split(dataDirs, ":") {
		if d = strings.TrimSpace(d); d != "" {
			bases = append(bases, d)
		}
	}

	seen := make(map[string]bool)
	var out []string
	add := func(dir string) {
		dir = filepath.Clean(dir)
		if !seen[dir] {
			seen[dir] = true
			out = append(out, dir)
		}
	}
	for _, b := range bases {
		add(filepath.Join(b, "applications"))
	}
	for _, d := range extra {
		if strings.TrimSpace(d) != "" {
			add(d)
		}
	}
	return out
}
