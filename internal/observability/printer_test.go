package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jonathan/london-crypto-directory/internal/directory"
	"github.com/jonathan/london-crypto-directory/internal/types"
	"github.com/stretchr/testify/assert"
)

func testView() *directory.View {
	v := directory.NewView()
	v.SetCompanies([]types.Company{
		{ID: "1", Name: "Acme", Category: types.StringPtr("DeFi"), TwitterHandle: types.StringPtr("@acme")},
		{ID: "2", Name: "Beta", Category: types.StringPtr("Other"), OriginalCategory: types.StringPtr("NFT Tools")},
	})
	return v
}

func TestPrintDirectory(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintDirectory(testView())
	output := buf.String()

	assert.Contains(t, output, "LONDON CRYPTO DIRECTORY")
	assert.Contains(t, output, "Showing 2 of 2 companies")
	assert.Contains(t, output, "Acme")
	assert.Contains(t, output, "@acme")
	assert.Contains(t, output, "Other")
}

func TestPrintDirectory_OtherShowsOriginal(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	v := testView()
	v.SetCategory("Other")
	p.PrintDirectory(v)
	output := buf.String()

	assert.Contains(t, output, "Showing 1 of 2 companies")
	assert.Contains(t, output, "NFT Tools")
	assert.NotContains(t, output, "Acme")
}

func TestPrintDirectory_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	v := testView()
	v.SetSearch("zzz")
	p.PrintDirectory(v)

	assert.Contains(t, buf.String(), "No companies found matching your criteria")
}

func TestPrintDirectory_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintDirectory(nil)
	assert.Empty(t, buf.String())
}

func TestPrintCategories(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintCategories([]string{"DeFi", "Other"})
	output := buf.String()

	assert.Contains(t, output, "CATEGORIES (2)")
	assert.Less(t, strings.Index(output, "DeFi"), strings.Index(output, "Other"))
}

func TestPrintBox_LongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TITLE", strings.Repeat("x", boxWidth*2))
	output := buf.String()

	assert.True(t, strings.Contains(output, "┌"))
	assert.True(t, strings.Contains(output, "└"))
	assert.Contains(t, output, "...")
}
