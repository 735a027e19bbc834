package catalog

// PlaceholderName is used when a descriptor carries no display name at all.
const PlaceholderName = "Unknown"

// Record is one raw launch descriptor as produced by a descriptor reader.
// Empty strings mean the field was absent.
type Record struct {
	Name      string
	Exec      string
	Icon      string
	Comment   string
	NoDisplay bool
	// Source identifies where the record came from (a desktop file path).
	// It is carried for diagnostics only.
	Source string
}

// Entry is a launchable application held in an Index.
type Entry struct {
	// ID is opaque and unique within one Index.
	ID          string
	Name        string
	Exec        string
	Icon        string
	Description string
	Source      string
}
