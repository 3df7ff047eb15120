package directory

import (
	"context"
	"log"

	"github.com/jonathan/london-crypto-directory/internal/types"
)

// State is the lifecycle state of a View.
type State string

const (
	StateLoading State = "loading"
	StateReady   State = "ready"
)

// Lister is the read side of the company store.
type Lister interface {
	ListCompanies(ctx context.Context) ([]types.Company, error)
}

// Row is one rendered line of the directory table.
type Row struct {
	Company         types.Company      `json:"company"`
	DisplayCategory string             `json:"display_category"`
	Twitter         *types.TwitterLink `json:"twitter_link,omitempty"`
}

// View holds the snapshot and the user-controlled search state for one page load.
// Derived state is recomputed wholesale whenever an input changes.
type View struct {
	state      State
	companies  []types.Company
	filtered   []types.Company
	categories []string

	searchTerm       string
	selectedCategory string
}

// NewView returns a view in the loading state with no category filter applied.
func NewView() *View {
	return &View{
		state:            StateLoading,
		selectedCategory: types.AllCategories,
	}
}

// Load fetches the snapshot once. A fetch failure is logged and leaves the view
// ready with an empty list; the error is returned only for diagnostics.
func (v *View) Load(ctx context.Context, store Lister) error {
	companies, err := store.ListCompanies(ctx)
	if err != nil {
		log.Printf("[directory] Error fetching companies: %v", err)
		companies = nil
	}
	v.SetCompanies(companies)
	return err
}

// SetCompanies installs a snapshot and moves the view to ready.
func (v *View) SetCompanies(companies []types.Company) {
	v.companies = companies
	v.categories = DeriveCategories(companies)
	v.state = StateReady
	v.refilter()
}

// SetSearch updates the search term.
func (v *View) SetSearch(term string) {
	v.searchTerm = term
	v.refilter()
}

// SetCategory updates the selected category; "" resets to all.
func (v *View) SetCategory(category string) {
	if category == "" {
		category = types.AllCategories
	}
	v.selectedCategory = category
	v.refilter()
}

func (v *View) refilter() {
	if v.state != StateReady {
		return
	}
	v.filtered = Filter(v.companies, v.searchTerm, v.selectedCategory)
}

// State returns the current lifecycle state.
func (v *View) State() State { return v.state }

// SearchTerm returns the current search term.
func (v *View) SearchTerm() string { return v.searchTerm }

// SelectedCategory returns the current category selection.
func (v *View) SelectedCategory() string { return v.selectedCategory }

// Categories returns the selectable categories of the snapshot.
func (v *View) Categories() []string { return v.categories }

// Total is the size of the unfiltered snapshot.
func (v *View) Total() int { return len(v.companies) }

// Count is the number of rows after filtering.
func (v *View) Count() int { return len(v.filtered) }

// Companies returns the filtered companies.
func (v *View) Companies() []types.Company { return v.filtered }

// Rows returns the filtered companies ready for rendering.
func (v *View) Rows() []Row {
	rows := make([]Row, 0, len(v.filtered))
	for i := range v.filtered {
		c := &v.filtered[i]
		rows = append(rows, Row{
			Company:         *c,
			DisplayCategory: DisplayCategory(c, v.selectedCategory),
			Twitter:         c.Twitter(),
		})
	}
	return rows
}
