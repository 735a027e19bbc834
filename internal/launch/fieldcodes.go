// Package launch turns stored launch commands into processes. It has two
// separate primitives with different lifetimes: Spawner.Spawn starts a
// detached child and returns, Replace swaps the current process image.
package launch

import "strings"

// StripFieldCodes splits template on whitespace, drops every token that
// starts with '%' and joins the rest with single spaces.
//
// Quoting and the %% escape are not interpreted, so a literal argument that
// begins with '%' is dropped as well.
func StripFieldCodes(template string) string {
	fields := strings.Fields(template)
	kept := fields[:0]
	for _, f := range fields {
		if strings.HasPrefix(f, "%") {
			continue
		}
		kept = append(kept, f)
	}
	return strings.Join(kept, " ")
}
