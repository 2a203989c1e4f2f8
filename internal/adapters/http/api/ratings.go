package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/rawafid/taqyim/internal/domain/rating"
)

// RatingsHandler records rating clicks.
type RatingsHandler struct {
	deps Dependencies
}

// NewRatingsHandler creates a new ratings handler.
func NewRatingsHandler(deps Dependencies) *RatingsHandler {
	return &RatingsHandler{deps: deps}
}

type ratingRequest struct {
	Namespace   string `json:"namespace"`
	CriterionID string `json:"criterion_id"`
	Value       int    `json:"value"`
}

// HandlePostRating handles POST /session/ratings requests. The response
// carries the fully recomputed score summary, mirroring the form updating
// its summary card after every rating click.
func (h *RatingsHandler) HandlePostRating(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	var req ratingRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", fmt.Errorf("%w: %v", ErrBadRequest, err))
		return
	}
	if req.CriterionID == "" {
		writeError(w, http.StatusBadRequest, "bad_request", fmt.Errorf("%w: missing criterion_id", ErrBadRequest))
		return
	}
	ns, err := rating.ParseNamespace(req.Namespace)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", fmt.Errorf("%w: %v", ErrBadRequest, err))
		return
	}

	if err := h.deps.Rate(ns, req.CriterionID, req.Value); err != nil {
		if errors.Is(err, rating.ErrInvalidRating) {
			writeError(w, http.StatusBadRequest, "invalid_rating", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}

	writeJSON(w, http.StatusOK, h.deps.Scores(r.Context()))
}
