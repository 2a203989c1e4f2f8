// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rawafid/taqyim/internal/app"
	"github.com/rawafid/taqyim/internal/domain/catalog"
	"github.com/rawafid/taqyim/internal/domain/rating"
	"github.com/rawafid/taqyim/internal/domain/report"
	"github.com/rawafid/taqyim/internal/i18n"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to the session implementation.
type Dependencies interface {
	Catalog() *catalog.Catalog
	Language() i18n.Lang
	SetLanguage(lang i18n.Lang)

	SelectDepartment(ctx context.Context, id string)
	SelectEmployee(ctx context.Context, id string)
	SelectSupervisor(ctx context.Context, id string)
	SetDate(date string) error
	SetNotes(n report.Notes)

	Rate(ns rating.Namespace, criterionID string, value int) error
	Scores(ctx context.Context) app.ScoreSummary
	Criteria(ctx context.Context) app.CriteriaView

	Submit(ctx context.Context) (report.Record, error)
	Report() (report.Record, bool)
	Reset()
}

// Server wires HTTP routes for the evaluation API.
type Server struct {
	healthHandler    *HealthHandler
	catalogHandler   *CatalogHandler
	selectionHandler *SelectionHandler
	ratingsHandler   *RatingsHandler
	scoresHandler    *ScoresHandler
	submitHandler    *SubmitHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies) *Server {
	return &Server{
		healthHandler:    NewHealthHandler(),
		catalogHandler:   NewCatalogHandler(deps),
		selectionHandler: NewSelectionHandler(deps),
		ratingsHandler:   NewRatingsHandler(deps),
		scoresHandler:    NewScoresHandler(deps),
		submitHandler:    NewSubmitHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/catalog", MetricsMiddleware(s.catalogHandler.HandleGetCatalog, "catalog"))
	mux.HandleFunc("/criteria", MetricsMiddleware(s.scoresHandler.HandleGetCriteria, "criteria"))
	mux.HandleFunc("/session/selection", MetricsMiddleware(s.selectionHandler.HandlePutSelection, "selection"))
	mux.HandleFunc("/session/language", MetricsMiddleware(s.selectionHandler.HandlePutLanguage, "language"))
	mux.HandleFunc("/session/notes", MetricsMiddleware(s.selectionHandler.HandlePutNotes, "notes"))
	mux.HandleFunc("/session/ratings", MetricsMiddleware(s.ratingsHandler.HandlePostRating, "ratings"))
	mux.HandleFunc("/session/scores", MetricsMiddleware(s.scoresHandler.HandleGetScores, "scores"))
	mux.HandleFunc("/session/submit", MetricsMiddleware(s.submitHandler.HandlePostSubmit, "submit"))
	mux.HandleFunc("/session/report", MetricsMiddleware(s.submitHandler.HandleGetReport, "report"))
	mux.HandleFunc("/session/reset", MetricsMiddleware(s.selectionHandler.HandlePostReset, "reset"))
}

type errorResponse struct {
	Code     string   `json:"code"`
	Message  string   `json:"message"`
	Messages []string `json:"messages,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
