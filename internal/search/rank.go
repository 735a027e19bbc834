package search

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/kamusis/launchkit/internal/catalog"
)

// indexSource exposes an index's lower-cased names to the fuzzy matcher.
type indexSource struct {
	idx *catalog.Index
}

func (s indexSource) String(i int) string { return s.idx.LowerName(i) }
func (s indexSource) Len() int            { return s.idx.Len() }

// RankMatches returns the ranked view of idx for query.
//
// An empty query returns every entry in index order. Otherwise only entries
// whose lower-cased name contains the lower-cased query as an ordered
// subsequence are returned, best score first. The description is not
// searched. The index is never modified and a new slice is returned on
// every call.
func RankMatches(idx *catalog.Index, query string) []Match {
	if query == "" {
		out := make([]Match, idx.Len())
		for i := range out {
			out[i] = Match{Entry: idx.At(i)}
		}
		return out
	}

	found := fuzzy.FindFromNoSort(strings.ToLower(query), indexSource{idx: idx})
	out := make([]Match, 0, len(found))
	for _, f := range found {
		out = append(out, Match{
			Entry:     idx.At(f.Index),
			Score:     f.Score,
			Positions: append([]int(nil), f.MatchedIndexes...),
		})
	}
	sortMatches(out)
	return out
}

// Rank is RankMatches without scores.
func Rank(idx *catalog.Index, query string) []catalog.Entry {
	matches := RankMatches(idx, query)
	out := make([]catalog.Entry, len(matches))
	for i, m := range matches {
		out[i] = m.Entry
	}
	return out
}

// Limit truncates matches to at most n rows; n <= 0 means no limit.
func Limit(matches []Match, n int) []Match {
	if n > 0 && len(matches) > n {
		return matches[:n]
	}
	return matches
}
