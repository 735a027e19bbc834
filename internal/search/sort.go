package search

import "sort"

// sortMatches orders matches by score (descending). Equal scores keep their
// index order, which is alphabetical.
func sortMatches(matches []Match) {
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
}
