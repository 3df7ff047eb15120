package directory

import (
	"sort"
	"testing"

	"github.com/jonathan/london-crypto-directory/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func company(id, name, category, original, handle string) types.Company {
	return types.Company{
		ID:               id,
		Name:             name,
		Category:         types.StringPtr(category),
		OriginalCategory: types.StringPtr(original),
		TwitterHandle:    types.StringPtr(handle),
	}
}

func sampleCompanies() []types.Company {
	return []types.Company{
		company("1", "Acme", "DeFi", "", "acme"),
		company("2", "Beta", "Other", "NFT Tools", ""),
		company("3", "Chainly", "Infrastructure", "", "@chainly_io"),
		company("4", "Delta Labs", "", "", ""),
		company("5", "Epsilon", "Other", "", "eps"),
		company("6", "Zeta Exchange", "Exchange", "Crypto Exchange", ""),
	}
}

func TestDeriveCategories(t *testing.T) {
	tests := []struct {
		name      string
		companies []types.Company
		expected  []string
	}{
		{
			name:      "empty input",
			companies: nil,
			expected:  []string{},
		},
		{
			name:      "other moved last",
			companies: sampleCompanies(),
			expected:  []string{"DeFi", "Exchange", "Infrastructure", "Other"},
		},
		{
			name: "other last even when lexically after lowercase",
			companies: []types.Company{
				company("1", "A", "Other", "", ""),
				company("2", "B", "zk", "", ""),
				company("3", "C", "Analytics", "", ""),
			},
			expected: []string{"Analytics", "zk", "Other"},
		},
		{
			name: "no other present",
			companies: []types.Company{
				company("1", "A", "Wallets", "", ""),
				company("2", "B", "Wallets", "", ""),
				company("3", "C", "DAO", "", ""),
			},
			expected: []string{"DAO", "Wallets"},
		},
		{
			name: "only missing categories",
			companies: []types.Company{
				company("1", "A", "", "Something", ""),
			},
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DeriveCategories(tt.companies))
		})
	}
}

func TestDeriveCategories_NoDuplicatesAndSorted(t *testing.T) {
	companies := append(sampleCompanies(), sampleCompanies()...)
	categories := DeriveCategories(companies)

	seen := map[string]bool{}
	for _, c := range categories {
		require.False(t, seen[c], "duplicate category %q", c)
		seen[c] = true
	}

	require.Equal(t, types.OtherCategory, categories[len(categories)-1])
	assert.True(t, sort.StringsAreSorted(categories[:len(categories)-1]))
}

func TestDeriveCategories_IgnoresInputOrder(t *testing.T) {
	companies := sampleCompanies()
	reversed := make([]types.Company, len(companies))
	for i := range companies {
		reversed[len(companies)-1-i] = companies[i]
	}
	assert.Equal(t, DeriveCategories(companies), DeriveCategories(reversed))
}

func TestFilter(t *testing.T) {
	companies := sampleCompanies()

	tests := []struct {
		name     string
		term     string
		category string
		expected []string
	}{
		{"no filters", "", types.AllCategories, []string{"1", "2", "3", "4", "5", "6"}},
		{"case insensitive name", "ACME", types.AllCategories, []string{"1"}},
		{"matches category", "defi", types.AllCategories, []string{"1"}},
		{"matches original category", "nft", types.AllCategories, []string{"2"}},
		{"matches twitter handle", "chainly_io", types.AllCategories, []string{"3"}},
		{"substring across fields", "ex", types.AllCategories, []string{"6"}},
		{"category only", "", "Other", []string{"2", "5"}},
		{"search and category", "beta", "Other", []string{"2"}},
		{"search and category disjoint", "acme", "Other", []string{}},
		{"category is case sensitive", "", "defi", []string{}},
		{"unknown category", "", "Gaming", []string{}},
		{"no match", "zzz", types.AllCategories, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Filter(companies, tt.term, tt.category)
			ids := make([]string, 0, len(result))
			for _, c := range result {
				ids = append(ids, c.ID)
			}
			assert.Equal(t, tt.expected, ids)
		})
	}
}

func TestFilter_AcmeLtd(t *testing.T) {
	companies := []types.Company{company("1", "ACME Ltd", "", "", "")}
	assert.Len(t, Filter(companies, "acme", types.AllCategories), 1)
}

func TestFilter_CategoryExactMatch(t *testing.T) {
	companies := []types.Company{company("1", "Lower", "defi", "", "")}
	assert.Empty(t, Filter(companies, "", "Defi"))
}

func TestFilter_SubsetAndIdempotent(t *testing.T) {
	companies := sampleCompanies()
	for _, term := range []string{"", "a", "e", "OTHER", "@", "labs", "nothing"} {
		once := Filter(companies, term, types.AllCategories)
		twice := Filter(once, term, types.AllCategories)
		assert.Equal(t, once, twice, "term %q", term)

		ids := map[string]bool{}
		for _, c := range companies {
			ids[c.ID] = true
		}
		for _, c := range once {
			assert.True(t, ids[c.ID], "term %q produced unknown id %s", term, c.ID)
		}
	}
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	companies := sampleCompanies()
	before := sampleCompanies()
	_ = Filter(companies, "beta", "Other")
	assert.Equal(t, before, companies)
}

func TestDisplayCategory(t *testing.T) {
	beta := company("2", "Beta", "Other", "NFT Tools", "")
	otherNoOriginal := company("5", "Epsilon", "Other", "", "")
	exchange := company("6", "Zeta", "Exchange", "Crypto Exchange", "")
	uncategorised := company("4", "Delta", "", "", "")

	tests := []struct {
		name     string
		c        types.Company
		selected string
		expected string
	}{
		{"other selected shows original", beta, "Other", "NFT Tools"},
		{"all selected shows category", beta, types.AllCategories, "Other"},
		{"other without original", otherNoOriginal, "Other", "Other"},
		{"non-other row keeps category", exchange, "Other", "Exchange"},
		{"non-other selection", exchange, "Exchange", "Exchange"},
		{"missing category placeholder", uncategorised, types.AllCategories, "-"},
		{"selection case matters", beta, "other", "Other"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DisplayCategory(&tt.c, tt.selected); got != tt.expected {
				t.Errorf("DisplayCategory() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestScenario_OtherBucket(t *testing.T) {
	companies := []types.Company{
		{ID: "a", Name: "Acme", Category: types.StringPtr("DeFi")},
		{ID: "b", Name: "Beta", Category: types.StringPtr("Other"), OriginalCategory: types.StringPtr("NFT Tools")},
	}

	assert.Equal(t, []string{"DeFi", "Other"}, DeriveCategories(companies))

	rows := Filter(companies, "", "Other")
	require.Len(t, rows, 1)
	assert.Equal(t, "Beta", rows[0].Name)
	assert.Equal(t, "NFT Tools", DisplayCategory(&rows[0], "Other"))
}
