// Package observability provides metrics and formatted CLI output for the directory.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/london-crypto-directory/internal/directory"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 72
	// nameWidth is the column width for company names in listings
	nameWidth = 28
	// categoryWidth is the column width for categories in listings
	categoryWidth = 20
)

// Printer writes human-readable directory summaries.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintDirectory outputs the filtered rows of v as a table.
func (p *Printer) PrintDirectory(v *directory.View) {
	if v == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Search:   %s\n", orDash(v.SearchTerm())))
	sb.WriteString(fmt.Sprintf("Category: %s\n", v.SelectedCategory()))
	sb.WriteString(fmt.Sprintf("Showing %d of %d companies\n", v.Count(), v.Total()))

	rows := v.Rows()
	if len(rows) == 0 {
		sb.WriteString("\nNo companies found matching your criteria")
		p.printBox("LONDON CRYPTO DIRECTORY", sb.String())
		return
	}

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("%-*s %-*s %s\n", nameWidth, "Company", categoryWidth, "Category", "Twitter/X"))
	for i, row := range rows {
		twitter := directory.Placeholder
		if row.Twitter != nil {
			twitter = row.Twitter.Text
		}
		sb.WriteString(fmt.Sprintf("%-*s %-*s %s",
			nameWidth, truncate(row.Company.Name, nameWidth),
			categoryWidth, truncate(row.DisplayCategory, categoryWidth),
			twitter))
		if i < len(rows)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("LONDON CRYPTO DIRECTORY", sb.String())
}

// PrintCategories outputs the selectable categories, one per line.
func (p *Printer) PrintCategories(categories []string) {
	if len(categories) == 0 {
		p.printBox("CATEGORIES", "No categories")
		return
	}
	p.printBox(fmt.Sprintf("CATEGORIES (%d)", len(categories)), strings.Join(categories, "\n"))
}

func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width-3]) + "..."
}

func orDash(s string) string {
	if s == "" {
		return directory.Placeholder
	}
	return s
}
