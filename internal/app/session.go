// Package app owns the evaluation session: the current selections, rating
// store, notes and language, and the submit pipeline that turns them into
// an outbound report. All component packages underneath are pure; this is
// the only place session state is mutated.
package app

import (
	"context"
	"sync"
	"time"

	"github.com/rawafid/taqyim/internal/domain/catalog"
	"github.com/rawafid/taqyim/internal/domain/rating"
	"github.com/rawafid/taqyim/internal/domain/report"
	"github.com/rawafid/taqyim/internal/domain/role"
	"github.com/rawafid/taqyim/internal/domain/scoring"
	"github.com/rawafid/taqyim/internal/i18n"
	"github.com/rawafid/taqyim/internal/notify"
	"github.com/rawafid/taqyim/pkg/logger"
	"github.com/rawafid/taqyim/pkg/metrics"
)

const dateLayout = "2006-01-02"

// Session is the single in-memory evaluation session. The logical model is
// one actor; the mutex only serializes the concurrent HTTP adapter on top.
type Session struct {
	mu sync.Mutex

	cat    *catalog.Catalog
	sender notify.Sender
	log    logger.Logger

	lang         i18n.Lang
	departmentID string
	employeeID   string
	supervisorID string
	date         string
	ratings      *rating.Store
	notes        report.Notes

	submitting bool
	lastReport *report.Record
}

// New constructs a Session with the built-in catalog, a discarding sender
// and today's date, then applies options.
func New(opts ...Option) *Session {
	s := &Session{
		cat:     catalog.Default(),
		sender:  notify.NopSender{},
		lang:    i18n.Default,
		date:    time.Now().Format(dateLayout),
		ratings: rating.NewStore(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = logger.Get()
	}
	return s
}

// Catalog exposes the read-only rubric catalog.
func (s *Session) Catalog() *catalog.Catalog { return s.cat }

// Language returns the active display language.
func (s *Session) Language() i18n.Lang {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lang
}

// SetLanguage switches the active display language.
func (s *Session) SetLanguage(lang i18n.Lang) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lang = lang
}

// SelectDepartment changes the current department. The employee selection
// and the department rating namespace are cleared: department ratings are
// scoped to the selection they were entered for. An unknown id is a
// catalog lookup miss, logged and resolved as "no criteria", never fatal.
func (s *Session) SelectDepartment(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.cat.Department(id); !ok && id != "" {
		s.log.Warn(ctx, "unknown department id", logger.String("department", id))
	}
	s.departmentID = id
	s.employeeID = ""
	s.ratings.Reset(rating.Department)
}

// SelectEmployee changes the current employee and clears the department
// rating namespace for the same scoping reason.
func (s *Session) SelectEmployee(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.cat.Employee(s.departmentID, id); !ok && id != "" {
		s.log.Warn(ctx, "unknown employee id",
			logger.String("department", s.departmentID),
			logger.String("employee", id))
	}
	s.employeeID = id
	s.ratings.Reset(rating.Department)
}

// SelectSupervisor changes the current supervisor.
func (s *Session) SelectSupervisor(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.cat.Supervisor(id); !ok && id != "" {
		s.log.Warn(ctx, "unknown supervisor id", logger.String("supervisor", id))
	}
	s.supervisorID = id
}

// SetDate sets the evaluation date (YYYY-MM-DD).
func (s *Session) SetDate(date string) error {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.date = date
	return nil
}

// SetNotes replaces the three note fields.
func (s *Session) SetNotes(n report.Notes) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notes = n
}

// Rate records a rating for a criterion. Out-of-range values are rejected
// with rating.ErrInvalidRating.
func (s *Session) Rate(ns rating.Namespace, criterionID string, value int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ratings.Set(ns, criterionID, value); err != nil {
		metrics.RecordRatingRejected()
		return err
	}
	metrics.RecordRatingSet()
	return nil
}

// Rating reads back a recorded rating.
func (s *Session) Rating(ns rating.Namespace, criterionID string) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ratings.Get(ns, criterionID)
}

// ScoreSummary is the fully recomputed scoring state of the session.
type ScoreSummary struct {
	GeneralScore    float64 `json:"general_score"`
	DepartmentScore float64 `json:"department_score"`
	TotalScore      float64 `json:"total_score"`
	Percentage      int     `json:"percentage"`
	GradeKey        string  `json:"grade_key"`
	GradeName       string  `json:"grade_name"`
	GradeMessage    string  `json:"grade_message"`
	GradeColor      string  `json:"grade_color"`
}

// Scores recomputes both sub-scores, the percentage and the grade from
// scratch. No cached display value is ever trusted.
func (s *Session) Scores(_ context.Context) ScoreSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scoresLocked()
}

func (s *Session) scoresLocked() ScoreSummary {
	metrics.RecordScoreRecompute()

	generalScore := scoring.Score(func(id string) (int, bool) {
		return s.ratings.Get(rating.General, id)
	}, s.cat.GeneralCriteria())

	departmentScore := scoring.Score(func(id string) (int, bool) {
		return s.ratings.Get(rating.Department, id)
	}, s.resolvedCriteriaLocked())

	percentage := scoring.Percentage(generalScore, departmentScore)
	tier := scoring.Grade(float64(percentage))

	return ScoreSummary{
		GeneralScore:    generalScore,
		DepartmentScore: departmentScore,
		TotalScore:      generalScore + departmentScore,
		Percentage:      percentage,
		GradeKey:        tier.Key,
		GradeName:       i18n.GradeName(tier.Key, s.lang),
		GradeMessage:    i18n.GradeMessage(tier.Key, s.lang),
		GradeColor:      tier.Color,
	}
}

// resolvedCriteriaLocked runs the role resolver against the current
// selection and language.
func (s *Session) resolvedCriteriaLocked() []catalog.Criterion {
	label := s.cat.EmployeeLabel(s.departmentID, s.employeeID, s.lang)
	if emp, ok := s.cat.Employee(s.departmentID, s.employeeID); ok {
		return role.ResolveEmployee(s.cat, s.departmentID, emp, label)
	}
	return role.Resolve(s.cat, s.departmentID, label)
}

// Reset returns the session to its start-of-day state. The active language
// is kept; selections, ratings, notes and the stored report are dropped.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.departmentID = ""
	s.employeeID = ""
	s.supervisorID = ""
	s.date = time.Now().Format(dateLayout)
	s.ratings.ResetAll()
	s.notes = report.Notes{}
	s.lastReport = nil
}

// Report returns the record of the last successful submit.
func (s *Session) Report() (report.Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.lastReport == nil {
		return report.Record{}, false
	}
	return *s.lastReport, true
}
