package webapp

import (
	"os"
	"path/filepath"
	"strings"
)

// BrowserDirs returns the descriptor directories searched for the browser,
// in order. Without HOME only the system directory remains.
func BrowserDirs(getenv func(string) string) []string {
	var dirs []string
	if home := getenv("HOME"); home != "" {
		dirs = append(dirs,
			filepath.Join(home, ".local", "share", "applications"),
			filepath.Join(home, ".nix-profile", "share", "applications"),
		)
	}
	return append(dirs, "/usr/share/applications")
}

// LocateExecutable returns the first Exec token of the descriptor named
// browserID in the first directory that yields one.
func LocateExecutable(dirs []string, browserID string) (string, bool) {
	for _, dir := range dirs {
		data, err := os.ReadFile(filepath.Join(dir, browserID))
		if err != nil {
			continue
		}
		if tok := FirstExecToken(string(data)); tok != "" {
			return tok, true
		}
	}
	return "", false
}

// FirstExecToken returns the first whitespace-delimited token after the
// first non-empty Exec= line of contents, regardless of group.
func FirstExecToken(contents string) string {
	for _, line := range strings.Split(contents, "\n") {
		trimmed := strings.TrimLeft(line, " \t")
		after, ok := strings.CutPrefix(trimmed, "Exec=")
		if !ok {
			continue
		}
		if fields := strings.Fields(after); len(fields) > 0 {
			return fields[0]
		}
	}
	return ""
}
