package search

import "github.com/kamusis/launchkit/internal/catalog"

// Match is one row of a ranked view.
type Match struct {
	Entry catalog.Entry
	Score int
	// Positions are byte offsets into the lower-cased entry name that
	// matched the query, in increasing order. Empty for the unfiltered view.
	Positions []int
}
