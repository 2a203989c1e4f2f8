package api

import "net/http"

// CatalogHandler serves the selector data: departments, their employees
// and the supervisor directory, labelled in the active language.
type CatalogHandler struct {
	deps Dependencies
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(deps Dependencies) *CatalogHandler {
	return &CatalogHandler{deps: deps}
}

type optionEntry struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type departmentEntry struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Employees []optionEntry `json:"employees"`
}

type catalogResponse struct {
	Language    string            `json:"language"`
	Departments []departmentEntry `json:"departments"`
	Supervisors []optionEntry     `json:"supervisors"`
}

// HandleGetCatalog handles GET /catalog requests.
func (h *CatalogHandler) HandleGetCatalog(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	cat := h.deps.Catalog()
	lang := h.deps.Language()

	resp := catalogResponse{Language: string(lang)}
	for _, d := range cat.Departments() {
		entry := departmentEntry{ID: d.ID, Name: d.Name.In(lang)}
		for _, e := range cat.Employees(d.ID) {
			entry.Employees = append(entry.Employees, optionEntry{
				ID:    e.ID,
				Label: e.Name + " - " + e.Position.In(lang),
			})
		}
		resp.Departments = append(resp.Departments, entry)
	}
	for _, s := range cat.Supervisors() {
		resp.Supervisors = append(resp.Supervisors, optionEntry{
			ID:    s.ID,
			Label: s.Name + " - " + s.Position.In(lang),
		})
	}

	writeJSON(w, http.StatusOK, resp)
}
