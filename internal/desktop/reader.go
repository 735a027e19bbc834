// Package desktop discovers and decodes freedesktop launch descriptors
// (*.desktop files) into catalog records.
package desktop

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/kamusis/launchkit/internal/catalog"
	"github.com/kamusis/launchkit/internal/logging"
)

// Reader scans application directories for desktop files.
type Reader struct {
	Dirs    []string
	Locales []string
	Logger  *slog.Logger
}

// Read returns one record per desktop file ID. Directories earlier in Dirs
// win over later ones. Unreadable or malformed files are skipped; a file
// with Hidden=true claims its ID without producing a record.
func (r *Reader) Read() []catalog.Record {
	log := r.Logger
	if log == nil {
		log = logging.Discard()
	}

	seen := make(map[string]bool)
	var out []catalog.Record
	for _, dir := range r.Dirs {
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			log.Debug("skipping descriptor dir", "dir", dir, "err", err)
			continue
		}
		_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				log.Debug("walk error", "path", path, "err", err)
				if d != nil && d.IsDir() && path != dir {
					return filepath.SkipDir
				}
				return nil
			}
			if d.IsDir() || !strings.HasSuffix(d.Name(), ".desktop") {
				return nil
			}
			id := fileID(dir, path)
			if seen[id] {
				return nil
			}

			data, err := os.ReadFile(path)
			if err != nil {
				log.Debug("cannot read descriptor", "path", path, "err", err)
				return nil
			}
			f, err := Decode(data)
			if err != nil {
				log.Debug("cannot decode descriptor", "path", path, "err", err)
				return nil
			}
			seen[id] = true
			if f.Bool("Hidden") {
				return nil
			}
			out = append(out, r.record(f, path))
			return nil
		})
	}
	log.Debug("descriptors read", "count", len(out), "dirs", len(r.Dirs))
	return out
}

func (r *Reader) record(f *File, path string) catalog.Record {
	return catalog.Record{
		Name:      f.Localized("Name", r.Locales),
		Exec:      f.Get("Exec"),
		Icon:      f.Get("Icon"),
		Comment:   f.Localized("Comment", r.Locales),
		NoDisplay: f.Bool("NoDisplay"),
		Source:    path,
	}
}

// fileID derives the desktop file ID: the path relative to its base
// directory with separators replaced by '-'.
func fileID(base, path string) string {
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return filepath.Base(path)
	}
	return strings.ReplaceAll(filepath.ToSlash(rel), "/", "-")
}
