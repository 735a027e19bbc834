package desktop

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"strings"
)

const entryGroup = "[Desktop Entry]"

// ErrNoEntryGroup means the file has no [Desktop Entry] group.
var ErrNoEntryGroup = errors.New("no [Desktop Entry] group")

// File holds the key/value pairs of a desktop file's [Desktop Entry] group.
// The first occurrence of a key wins.
type File struct {
	values map[string]string
}

// Decode parses the [Desktop Entry] group of a desktop file.
func Decode(data []byte) (*File, error) {
	f := &File{values: make(map[string]string)}
	inEntry, sawEntry := false, false

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		if line[0] == '[' && line[len(line)-1] == ']' {
			inEntry = line == entryGroup
			if inEntry {
				sawEntry = true
			}
			continue
		}
		if !inEntry {
			continue
		}
		k, v, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		if _, dup := f.values[k]; !dup {
			f.values[k] = unescape(strings.TrimSpace(v))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot scan desktop file: %w", err)
	}
	if !sawEntry {
		return nil, ErrNoEntryGroup
	}
	return f, nil
}

// Get returns the unlocalized value of key.
func (f *File) Get(key string) string { return f.values[key] }

// Localized returns key[locale] for the first locale present, then the
// unlocalized key.
func (f *File) Localized(key string, locales []string) string {
	for _, l := range locales {
		if v, ok := f.values[key+"["+l+"]"]; ok && v != "" {
			return v
		}
	}
	return f.values[key]
}

// Bool reports whether key is set to true.
func (f *File) Bool(key string) bool {
	return strings.EqualFold(f.values[key], "true")
}

func unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 == len(s) {
			b.WriteByte(c)
			continue
		}
		i++
		switch s[i] {
		case 's':
			b.WriteByte(' ')
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case '\\':
			b.WriteByte('\\')
		default:
			b.WriteByte('\\')
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
