package essentials

import (
	"sort"
	"strings"
)

// Reason texts for missing rules. A high-priority qualifier is appended for
// high-priority rules.
const (
	reasonRequired    = "required item missing"
	reasonRecommended = "recommended item missing"
	reasonHighSuffix  = " - high priority"
)

// CheckMissing diffs a packed-items list against the catalog and returns the
// rules the pack does not satisfy, sorted by priority (high first) and then
// required-before-optional. The sort is stable, so rules that tie keep their
// catalog order. Pure function: no store state is touched.
//
// An empty season or trip type disables that filter; otherwise only rules
// whose scope covers the given context are considered at all, so an
// out-of-season rule is absent from the result rather than reported missing.
func CheckMissing(catalog []TravelEssential, items []PackedItem, season Season, trip TripType) []MissingEssential {
	var missing []MissingEssential

	for _, rule := range catalog {
		if season != "" && !rule.Seasons.Matches(season) {
			continue
		}
		if trip != "" && !rule.TripTypes.Matches(trip) {
			continue
		}
		if satisfied(rule, items) {
			continue
		}

		missing = append(missing, MissingEssential{
			Essential:      rule,
			Reason:         reason(rule),
			HasAlternative: hasAlternative(rule, items),
		})
	}

	sort.SliceStable(missing, func(i, j int) bool {
		a, b := missing[i].Essential, missing[j].Essential
		if a.Priority.rank() != b.Priority.rank() {
			return a.Priority.rank() > b.Priority.rank()
		}
		if a.IsRequired != b.IsRequired {
			return a.IsRequired
		}
		return false
	})

	return missing
}

// satisfied reports whether any pack item covers the rule: a case-insensitive
// substring match between item and rule names (in either direction), or a
// shared category when the rule names one.
func satisfied(rule TravelEssential, items []PackedItem) bool {
	ruleName := strings.ToLower(rule.Name)
	for _, item := range items {
		itemName := strings.ToLower(item.Name)
		if strings.Contains(itemName, ruleName) || strings.Contains(ruleName, itemName) {
			return true
		}
		if rule.CategoryID != "" && item.CategoryID == rule.CategoryID {
			return true
		}
	}
	return false
}

// hasAlternative reports whether any of the rule's alternative names appears
// as a substring of a packed item's name.
func hasAlternative(rule TravelEssential, items []PackedItem) bool {
	for _, alt := range rule.Alternatives {
		altName := strings.ToLower(alt)
		for _, item := range items {
			if strings.Contains(strings.ToLower(item.Name), altName) {
				return true
			}
		}
	}
	return false
}

func reason(rule TravelEssential) string {
	r := reasonRecommended
	if rule.IsRequired {
		r = reasonRequired
	}
	if rule.Priority == PriorityHigh {
		r += reasonHighSuffix
	}
	return r
}
