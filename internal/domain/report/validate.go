package report

import (
	"strings"

	"github.com/rawafid/taqyim/internal/domain/rating"
	"github.com/rawafid/taqyim/internal/i18n"
)

// Condition is an unmet-validation-condition code.
type Condition string

// Validation conditions, in the order they are reported.
const (
	MissingDepartment Condition = "missing_department"
	MissingEmployee   Condition = "missing_employee"
	MissingSupervisor Condition = "missing_supervisor"
	NoRatings         Condition = "no_ratings"
)

// ValidationError carries every unmet condition of a submit attempt. The
// caller needs the complete list to show the user, so validation never
// short-circuits on the first failure.
type ValidationError struct {
	Missing []Condition
}

func (e *ValidationError) Error() string {
	codes := make([]string, len(e.Missing))
	for i, c := range e.Missing {
		codes[i] = string(c)
	}
	return "validation failed: " + strings.Join(codes, ", ")
}

// Messages renders the localized user-facing text for every unmet condition.
func (e *ValidationError) Messages(lang i18n.Lang) []string {
	out := make([]string, len(e.Missing))
	for i, c := range e.Missing {
		out[i] = i18n.ValidationMessage(string(c), lang)
	}
	return out
}

// Validate checks the submit preconditions: department, employee and
// supervisor selected, and at least one rating in either namespace.
// Returns nil when all hold, otherwise a *ValidationError listing every
// unmet condition.
func Validate(in Input) error {
	var missing []Condition

	if in.DepartmentID == "" {
		missing = append(missing, MissingDepartment)
	}
	if in.EmployeeID == "" {
		missing = append(missing, MissingEmployee)
	}
	if in.SupervisorID == "" {
		missing = append(missing, MissingSupervisor)
	}
	if in.Ratings == nil || (in.Ratings.Count(rating.General) == 0 && in.Ratings.Count(rating.Department) == 0) {
		missing = append(missing, NoRatings)
	}

	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}
