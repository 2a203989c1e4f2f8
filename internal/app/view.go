package app

import (
	"context"
	"math"

	"github.com/rawafid/taqyim/internal/domain/catalog"
	"github.com/rawafid/taqyim/internal/domain/rating"
	"github.com/rawafid/taqyim/internal/domain/report"
	"github.com/rawafid/taqyim/internal/domain/scoring"
)

// CriterionRow is one row of the criteria view: the criterion rendered in
// the active language with its current rating and calculated value.
// Rating is 0 for unrated rows; Value is (rating/5)*weight at one decimal.
type CriterionRow struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Weight      float64 `json:"weight"`
	Rating      int     `json:"rating"`
	Value       float64 `json:"value"`
}

// CriteriaView feeds the presentation and print surfaces: both criteria
// tables, the current selection labels and the signature names.
type CriteriaView struct {
	DepartmentID        string         `json:"department_id"`
	DepartmentName      string         `json:"department_name,omitempty"`
	EmployeeLabel       string         `json:"employee_label,omitempty"`
	SupervisorLabel     string         `json:"supervisor_label,omitempty"`
	EmployeeSignature   string         `json:"employee_signature,omitempty"`
	SupervisorSignature string         `json:"supervisor_signature,omitempty"`
	Date                string         `json:"date"`
	General             []CriterionRow `json:"general"`
	Department          []CriterionRow `json:"department"`
	Notes               report.Notes   `json:"notes"`
}

// Criteria renders the criteria view from the current session state.
// Department rows follow the role resolver; an empty slice means no
// specific criteria resolved for the selection.
func (s *Session) Criteria(_ context.Context) CriteriaView {
	s.mu.Lock()
	defer s.mu.Unlock()

	view := CriteriaView{
		DepartmentID:    s.departmentID,
		EmployeeLabel:   s.cat.EmployeeLabel(s.departmentID, s.employeeID, s.lang),
		SupervisorLabel: s.cat.SupervisorLabel(s.supervisorID, s.lang),
		Date:            s.date,
		General:         s.rowsLocked(rating.General, s.cat.GeneralCriteria()),
		Department:      s.rowsLocked(rating.Department, s.resolvedCriteriaLocked()),
		Notes: report.Notes{
			General:    report.PrintNote(s.notes.General, s.lang),
			Department: report.PrintNote(s.notes.Department, s.lang),
			Overall:    report.PrintNote(s.notes.Overall, s.lang),
		},
	}

	if dept, ok := s.cat.Department(s.departmentID); ok {
		view.DepartmentName = dept.Name.In(s.lang)
	}
	if view.EmployeeLabel != "" {
		view.EmployeeSignature = report.SignatureName(view.EmployeeLabel)
	}
	if view.SupervisorLabel != "" {
		view.SupervisorSignature = report.SignatureName(view.SupervisorLabel)
	}
	return view
}

func (s *Session) rowsLocked(ns rating.Namespace, criteria []catalog.Criterion) []CriterionRow {
	rows := make([]CriterionRow, 0, len(criteria))
	for _, c := range criteria {
		value, _ := s.ratings.Get(ns, c.ID)
		rows = append(rows, CriterionRow{
			ID:          c.ID,
			Name:        c.Name.In(s.lang),
			Description: c.Description.In(s.lang),
			Weight:      c.Weight,
			Rating:      value,
			Value:       round1(scoring.CriterionValue(value, c.Weight)),
		})
	}
	return rows
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
