package api

import (
	"errors"
	"net/http"

	"github.com/rawafid/taqyim/internal/app"
	"github.com/rawafid/taqyim/internal/domain/report"
	"github.com/rawafid/taqyim/internal/notify"
)

// SubmitHandler drives the submit pipeline and serves the resulting report.
type SubmitHandler struct {
	deps Dependencies
}

// NewSubmitHandler creates a new submit handler.
func NewSubmitHandler(deps Dependencies) *SubmitHandler {
	return &SubmitHandler{deps: deps}
}

// HandlePostSubmit handles POST /session/submit requests. Failure modes
// map to statuses: validation 422 with the full unmet-condition list,
// re-entrant submit 409, transport failure 502.
func (h *SubmitHandler) HandlePostSubmit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	rec, err := h.deps.Submit(r.Context())
	if err != nil {
		var verr *report.ValidationError
		switch {
		case errors.As(err, &verr):
			writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
				Code:     "validation_failed",
				Message:  verr.Error(),
				Messages: verr.Messages(h.deps.Language()),
			})
		case errors.Is(err, app.ErrSubmitInFlight):
			writeError(w, http.StatusConflict, "submit_in_flight", err)
		case errors.Is(err, notify.ErrTransport):
			writeError(w, http.StatusBadGateway, "transport_failed", err)
		default:
			writeError(w, http.StatusInternalServerError, "internal_error", err)
		}
		return
	}

	writeJSON(w, http.StatusOK, rec)
}

// HandleGetReport handles GET /session/report requests: the record of the
// last successful submit, for the print/export surface.
func (h *SubmitHandler) HandleGetReport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	rec, ok := h.deps.Report()
	if !ok {
		writeError(w, http.StatusNotFound, "no_report", ErrNoReport)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}
