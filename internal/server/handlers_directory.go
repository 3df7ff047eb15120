package server

import (
	"embed"
	"html/template"
	"log"
	"net/http"

	"github.com/jonathan/london-crypto-directory/internal/directory"
	"github.com/jonathan/london-crypto-directory/internal/types"
)

//go:embed templates/directory.html
var templateFS embed.FS

func parsePage() (*template.Template, error) {
	return template.ParseFS(templateFS, "templates/directory.html")
}

// pageData is what the directory template renders.
type pageData struct {
	State            directory.State
	SearchTerm       string
	SelectedCategory string
	Categories       []string
	Rows             []directory.Row
	Count            int
	Total            int
}

// companyResponse flattens a row for the JSON listing.
type companyResponse struct {
	types.Company
	DisplayCategory string             `json:"display_category"`
	TwitterLink     *types.TwitterLink `json:"twitter_link,omitempty"`
}

// loadView builds the view for one page load: a single snapshot fetch, then the
// q and category query parameters applied in memory.
func (s *Server) loadView(r *http.Request) *directory.View {
	v := directory.NewView()
	err := v.Load(r.Context(), s.store)
	s.metrics.SnapshotLoaded(v.Total(), err)

	query := r.URL.Query()
	v.SetSearch(query.Get("q"))
	v.SetCategory(query.Get("category"))
	return v
}

// handleDirectoryPage renders the HTML directory
func (s *Server) handleDirectoryPage(w http.ResponseWriter, r *http.Request) {
	v := s.loadView(r)

	data := pageData{
		State:            v.State(),
		SearchTerm:       v.SearchTerm(),
		SelectedCategory: v.SelectedCategory(),
		Categories:       v.Categories(),
		Rows:             v.Rows(),
		Count:            v.Count(),
		Total:            v.Total(),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.page.Execute(w, data); err != nil {
		log.Printf("[server] Error rendering directory page: %v", err)
	}
}

// handleListCompanies lists the filtered directory as JSON
func (s *Server) handleListCompanies(w http.ResponseWriter, r *http.Request) {
	v := s.loadView(r)

	rows := v.Rows()
	companies := make([]companyResponse, 0, len(rows))
	for _, row := range rows {
		companies = append(companies, companyResponse{
			Company:         row.Company,
			DisplayCategory: row.DisplayCategory,
			TwitterLink:     row.Twitter,
		})
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"companies":  companies,
		"categories": v.Categories(),
		"count":      v.Count(),
		"total":      v.Total(),
		"state":      v.State(),
		"search":     v.SearchTerm(),
		"category":   v.SelectedCategory(),
	})
}

// handleListCategories lists the selectable categories
func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	v := s.loadView(r)

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"categories": v.Categories(),
		"count":      len(v.Categories()),
	})
}
