// Package directory implements the company listing: category derivation,
// search/category filtering and the per-row display rules.
//
// Everything here is a pure projection over a snapshot of companies; nothing
// in this package performs I/O except View.Load.
package directory

import (
	"sort"
	"strings"

	"github.com/jonathan/london-crypto-directory/internal/types"
)

// Placeholder is shown for a row without a category.
const Placeholder = "-"

// DeriveCategories returns the distinct non-empty categories present in companies,
// sorted ascending with "Other" always last.
func DeriveCategories(companies []types.Company) []string {
	seen := make(map[string]bool)
	categories := []string{}
	hasOther := false

	for i := range companies {
		category := companies[i].CategoryValue()
		if category == "" || seen[category] {
			continue
		}
		seen[category] = true
		if category == types.OtherCategory {
			hasOther = true
			continue
		}
		categories = append(categories, category)
	}

	sort.Strings(categories)
	if hasOther {
		categories = append(categories, types.OtherCategory)
	}
	return categories
}

// Filter returns the companies matching both the search term and the selected category,
// in input order. An empty search term matches everything; the "all" category disables
// the category predicate.
func Filter(companies []types.Company, searchTerm, selectedCategory string) []types.Company {
	term := strings.ToLower(searchTerm)
	filtered := make([]types.Company, 0, len(companies))

	for i := range companies {
		c := &companies[i]
		if term != "" && !MatchesSearch(c, term) {
			continue
		}
		if selectedCategory != types.AllCategories && c.CategoryValue() != selectedCategory {
			continue
		}
		filtered = append(filtered, *c)
	}
	return filtered
}

// MatchesSearch reports whether the lowercased term is a substring of the company's
// name, category, original category or twitter handle.
func MatchesSearch(c *types.Company, lowerTerm string) bool {
	fields := [...]string{
		c.Name,
		c.CategoryValue(),
		c.OriginalCategoryValue(),
		c.TwitterHandleValue(),
	}
	for _, f := range fields {
		if f != "" && strings.Contains(strings.ToLower(f), lowerTerm) {
			return true
		}
	}
	return false
}

// DisplayCategory returns the label shown in the category column.
// When browsing the "Other" bucket, rows show their finer-grained original label.
func DisplayCategory(c *types.Company, selectedCategory string) string {
	if selectedCategory == types.OtherCategory &&
		c.CategoryValue() == types.OtherCategory &&
		c.OriginalCategoryValue() != "" {
		return c.OriginalCategoryValue()
	}
	if category := c.CategoryValue(); category != "" {
		return category
	}
	return Placeholder
}
