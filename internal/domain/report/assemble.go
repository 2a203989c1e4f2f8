package report

import (
	"time"

	"github.com/google/uuid"

	"github.com/rawafid/taqyim/internal/domain/catalog"
	"github.com/rawafid/taqyim/internal/domain/rating"
	"github.com/rawafid/taqyim/internal/domain/scoring"
	"github.com/rawafid/taqyim/internal/i18n"
)

// Input is the session snapshot Assemble works from. The owning session
// builds it under its own lock, so assembly sees a consistent state.
type Input struct {
	DepartmentID string
	EmployeeID   string
	SupervisorID string

	DepartmentLabel string
	EmployeeLabel   string
	SupervisorLabel string

	Date     string
	Language i18n.Lang

	GeneralCriteria    []catalog.Criterion
	DepartmentCriteria []catalog.Criterion
	Ratings            *rating.Store

	Notes Notes
}

// Assemble validates the input and produces the immutable Record. Scores
// are recomputed fresh through the scoring engine; a *ValidationError is
// returned when the submit preconditions are not met.
func Assemble(in Input) (Record, error) {
	if err := Validate(in); err != nil {
		return Record{}, err
	}

	generalScore := scoring.Score(func(id string) (int, bool) {
		return in.Ratings.Get(rating.General, id)
	}, in.GeneralCriteria)

	departmentScore := scoring.Score(func(id string) (int, bool) {
		return in.Ratings.Get(rating.Department, id)
	}, in.DepartmentCriteria)

	totalScore := generalScore + departmentScore
	percentage := scoring.Percentage(generalScore, departmentScore)
	tier := scoring.Grade(float64(percentage))

	return Record{
		ID:              uuid.NewString(),
		Employee:        in.EmployeeLabel,
		Department:      in.DepartmentLabel,
		Supervisor:      in.SupervisorLabel,
		Date:            in.Date,
		GeneralScore:    generalScore,
		DepartmentScore: departmentScore,
		TotalScore:      totalScore,
		Percentage:      percentage,
		GradeKey:        tier.Key,
		GradeName:       i18n.GradeName(tier.Key, in.Language),
		GradeMessage:    i18n.GradeMessage(tier.Key, in.Language),
		GradeColor:      tier.Color,
		Notes:           in.Notes,
		Language:        in.Language,
		CreatedAt:       time.Now().UTC(),
	}, nil
}
