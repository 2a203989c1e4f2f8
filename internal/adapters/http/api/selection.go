package api

import (
	"fmt"
	"net/http"

	"github.com/rawafid/taqyim/internal/domain/report"
	"github.com/rawafid/taqyim/internal/i18n"
)

// SelectionHandler mutates the session selectors: department, employee,
// supervisor, date, language and notes.
type SelectionHandler struct {
	deps Dependencies
}

// NewSelectionHandler creates a new selection handler.
func NewSelectionHandler(deps Dependencies) *SelectionHandler {
	return &SelectionHandler{deps: deps}
}

// selectionRequest carries the new selector values. Absent fields leave
// the current value in place; selecting a department always resets the
// employee, mirroring the selector dependency in the form.
type selectionRequest struct {
	Department *string `json:"department,omitempty"`
	Employee   *string `json:"employee,omitempty"`
	Supervisor *string `json:"supervisor,omitempty"`
	Date       *string `json:"date,omitempty"`
}

// HandlePutSelection handles PUT /session/selection requests.
func (h *SelectionHandler) HandlePutSelection(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		http.NotFound(w, r)
		return
	}

	var req selectionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", fmt.Errorf("%w: %v", ErrBadRequest, err))
		return
	}

	ctx := r.Context()
	if req.Department != nil {
		h.deps.SelectDepartment(ctx, *req.Department)
	}
	if req.Employee != nil {
		h.deps.SelectEmployee(ctx, *req.Employee)
	}
	if req.Supervisor != nil {
		h.deps.SelectSupervisor(ctx, *req.Supervisor)
	}
	if req.Date != nil {
		if err := h.deps.SetDate(*req.Date); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", fmt.Errorf("%w: invalid date", ErrBadRequest))
			return
		}
	}

	writeJSON(w, http.StatusOK, h.deps.Criteria(ctx))
}

type languageRequest struct {
	Language string `json:"language"`
}

// HandlePutLanguage handles PUT /session/language requests.
func (h *SelectionHandler) HandlePutLanguage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		http.NotFound(w, r)
		return
	}

	var req languageRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", fmt.Errorf("%w: %v", ErrBadRequest, err))
		return
	}
	lang, err := i18n.Parse(req.Language)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", fmt.Errorf("%w: %v", ErrBadRequest, err))
		return
	}

	h.deps.SetLanguage(lang)
	writeJSON(w, http.StatusOK, h.deps.Criteria(r.Context()))
}

// HandlePutNotes handles PUT /session/notes requests.
func (h *SelectionHandler) HandlePutNotes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		http.NotFound(w, r)
		return
	}

	var req report.Notes
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", fmt.Errorf("%w: %v", ErrBadRequest, err))
		return
	}

	h.deps.SetNotes(req)
	w.WriteHeader(http.StatusNoContent)
}

// HandlePostReset handles POST /session/reset requests.
func (h *SelectionHandler) HandlePostReset(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	h.deps.Reset()
	w.WriteHeader(http.StatusNoContent)
}
