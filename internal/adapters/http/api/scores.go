package api

import "net/http"

// ScoresHandler serves the recomputed score summary and the criteria view.
type ScoresHandler struct {
	deps Dependencies
}

// NewScoresHandler creates a new scores handler.
func NewScoresHandler(deps Dependencies) *ScoresHandler {
	return &ScoresHandler{deps: deps}
}

// HandleGetScores handles GET /session/scores requests.
func (h *ScoresHandler) HandleGetScores(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.Scores(r.Context()))
}

// HandleGetCriteria handles GET /criteria requests: both criteria tables
// with current ratings and per-criterion values, ready for rendering or
// the print surface.
func (h *ScoresHandler) HandleGetCriteria(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.Criteria(r.Context()))
}
