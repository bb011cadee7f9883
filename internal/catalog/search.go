package catalog

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/cultistcircle/circlebot/internal/models"
)

// minScore is the cutoff below which a fuzzy match is rejected.
const minScore = 80

// Matcher scores a query against a pool of lowercased names, returning the
// best choice and a 0-100 score. Which implementation runs is decided once
// at startup.
type Matcher interface {
	Match(query string, pool []string) (string, int)
}

// FuzzyMatcher ranks candidates by Levenshtein distance. Recall is narrower
// than classic fuzzy extraction: only targets containing the query as a
// character subsequence are ranked, so a transposition typo ("bitcion")
// returns no match instead of a near hit. SubstringMatcher shares the same
// containment limitation, so neither strategy widens the other.
type FuzzyMatcher struct{}

func (FuzzyMatcher) Match(query string, pool []string) (string, int) {
	ranks := fuzzy.RankFindNormalizedFold(query, pool)
	if len(ranks) == 0 {
		return "", 0
	}
	sort.Sort(ranks)
	best := ranks[0]

	// Map edit distance onto a 0-100 similarity score.
	longest := len(best.Target)
	if len(query) > longest {
		longest = len(query)
	}
	if longest == 0 {
		return "", 0
	}
	score := 100 - (100*best.Distance)/longest
	if score < 0 {
		score = 0
	}
	return best.Target, score
}

// SubstringMatcher is the fallback strategy: exact match wins outright,
// otherwise the shortest name containing the query.
type SubstringMatcher struct{}

func (SubstringMatcher) Match(query string, pool []string) (string, int) {
	best := ""
	for _, name := range pool {
		if name == query {
			return name, 100
		}
		if strings.Contains(name, query) && (best == "" || len(name) < len(best)) {
			best = name
		}
	}
	if best == "" {
		return "", 0
	}
	return best, minScore
}

// FindItem locates a single item by name or short name, keeping whichever
// pool produced the better score. Returns nil when nothing clears the
// cutoff.
func FindItem(catalog *models.Catalog, query string, matcher Matcher) *models.Item {
	if catalog == nil || len(catalog.Items) == 0 {
		return nil
	}
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	names := make(map[string]*models.Item, len(catalog.Items))
	shorts := make(map[string]*models.Item)
	for i := range catalog.Items {
		it := &catalog.Items[i]
		if it.Name != "" {
			names[strings.ToLower(it.Name)] = it
		}
		if it.ShortName != "" {
			shorts[strings.ToLower(it.ShortName)] = it
		}
	}

	var best *models.Item
	bestScore := 0

	if choice, score := matcher.Match(query, keys(names)); score >= minScore && score > bestScore {
		best, bestScore = names[choice], score
	}
	if choice, score := matcher.Match(query, keys(shorts)); score >= minScore && score > bestScore {
		best = shorts[choice]
	}
	return best
}

func keys(m map[string]*models.Item) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
