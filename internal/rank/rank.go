// Package rank scores a free-text query against a published catalog
// snapshot. The fuzzy scoring itself comes from sahilm/fuzzy; this package
// adds deterministic ordering and the reserved create prefix.
package rank

import (
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/snipstash/snip/internal/constants"
	"github.com/snipstash/snip/internal/index"
	"github.com/snipstash/snip/internal/snippet"
)

// CreateDisplayText is the title of the synthetic create result.
const CreateDisplayText = "Create new snippet"

// Result is one ranked entry. A Create result does not correspond to an
// indexed snippet; it carries the proposed initial content instead.
type Result struct {
	Entry      snippet.Entry
	Score      int
	Create     bool
	CreateText string
}

// Rank evaluates query against snap. Results are ordered by descending
// score with ties broken by identifier; entries the fuzzy matcher rejects
// are excluded. An empty query lists the whole catalog in identifier order.
//
// When the query starts with the reserved prefix, a synthetic "create new
// snippet" result is pinned ahead of all matches, carrying the text after
// the prefix as the proposed snippet content.
func Rank(query string, snap *index.Snapshot) []Result {
	var results []Result

	if strings.HasPrefix(query, constants.CreatePrefix) {
		results = append(results, Result{
			Entry: snippet.Entry{
				Identifier:  constants.CreatePrefix,
				DisplayText: CreateDisplayText,
			},
			Create:     true,
			CreateText: strings.TrimPrefix(query, constants.CreatePrefix),
		})
	}

	entries := snap.Entries()

	if query == "" {
		for _, entry := range entries {
			results = append(results, Result{Entry: entry})
		}
		return results
	}

	targets := make([]string, len(entries))
	for i, entry := range entries {
		targets[i] = entry.DisplayText
	}

	matches := fuzzy.Find(query, targets)

	ranked := make([]Result, 0, len(matches))
	for _, m := range matches {
		ranked = append(ranked, Result{Entry: entries[m.Index], Score: m.Score})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Entry.Identifier < ranked[j].Entry.Identifier
	})

	return append(results, ranked...)
}
