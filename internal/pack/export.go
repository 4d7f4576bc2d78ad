package pack

import (
	"fmt"
	"strconv"
	"strings"
)

// emptyExport is returned when there is nothing to export.
const emptyExport = "(pack list is empty)"

// uncategorizedLabel heads the group of items that carry no category.
const uncategorizedLabel = "(uncategorized)"

// CategoryNameResolver maps a category id to a display name. Consumers that
// know the category registry supply one; without it the raw id is used.
type CategoryNameResolver func(categoryID string) string

// ExportAsText renders the pack as a multiline plain-text report: items
// grouped by category in first-insertion order, followed by weight totals.
func (s *Store) ExportAsText(resolver CategoryNameResolver) string {
	return ExportAsText(s.pack, resolver)
}

// ExportAsText renders a pack snapshot as a plain-text report.
func ExportAsText(p Pack, resolver CategoryNameResolver) string {
	if len(p.Items) == 0 {
		return emptyExport
	}

	// Group by category, keeping the order categories first appear in.
	var order []string
	groups := make(map[string][]PackItem)
	for _, it := range p.Items {
		if _, ok := groups[it.CategoryID]; !ok {
			order = append(order, it.CategoryID)
		}
		groups[it.CategoryID] = append(groups[it.CategoryID], it)
	}

	var lines []string
	for _, catID := range order {
		lines = append(lines, "• "+categoryLabel(catID, resolver))
		for _, it := range groups[catID] {
			line := fmt.Sprintf("  - %s × %d", it.Name, it.Quantity)
			if it.WeightPerUnit != nil {
				line += ", " + strconv.FormatFloat(*it.WeightPerUnit, 'f', -1, 64) + "kg/pc"
			}
			if it.Note != "" {
				line += fmt.Sprintf(" - (%s)", it.Note)
			}
			lines = append(lines, line)
		}
	}

	lines = append(lines, "")
	lines = append(lines, fmt.Sprintf("Total item weight: %.2f kg", p.TotalWeight()))
	if p.BagWeight != 0 {
		lines = append(lines, fmt.Sprintf("Bag weight: %.2f kg", p.BagWeight))
	}
	lines = append(lines, fmt.Sprintf("Total with bag: %.2f kg", p.TotalWithBagWeight()))
	if rem := p.RemainingAllowance(); rem != nil {
		lines = append(lines, fmt.Sprintf("Remaining allowance: %.2f kg", *rem))
	}

	return strings.Join(lines, "\n")
}

func categoryLabel(categoryID string, resolver CategoryNameResolver) string {
	if categoryID == "" {
		return uncategorizedLabel
	}
	if resolver != nil {
		return resolver(categoryID)
	}
	return categoryID
}
