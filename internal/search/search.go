// Package search provides fuzzy lookup across packed items and the
// essentials catalog for interactive consumers.
package search

import (
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"

	"packlist/internal/essentials"
	"packlist/internal/pack"
)

// Items filters pack items by fuzzy-matching the query against each item's
// name, category and note. An empty query returns all items. Results come
// back in match-quality order.
func Items(query string, items []pack.PackItem) []pack.PackItem {
	if query == "" {
		return items
	}

	searchStrings := make([]string, len(items))
	for i, it := range items {
		searchStrings[i] = fmt.Sprintf("%s %s %s", it.Name, it.CategoryID, it.Note)
	}

	matches := fuzzy.Find(query, searchStrings)

	results := make([]pack.PackItem, 0, len(matches))
	for _, match := range matches {
		results = append(results, items[match.Index])
	}
	return results
}

// Essentials filters catalog rules by fuzzy-matching the query against each
// rule's name, description and alternatives. An empty query returns all rules.
func Essentials(query string, rules []essentials.TravelEssential) []essentials.TravelEssential {
	if query == "" {
		return rules
	}

	searchStrings := make([]string, len(rules))
	for i, rule := range rules {
		searchStrings[i] = fmt.Sprintf("%s %s %s",
			rule.Name,
			rule.Description,
			strings.Join(rule.Alternatives, " "))
	}

	matches := fuzzy.Find(query, searchStrings)

	results := make([]essentials.TravelEssential, 0, len(matches))
	for _, match := range matches {
		results = append(results, rules[match.Index])
	}
	return results
}
