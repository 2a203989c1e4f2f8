package app

import (
	"context"
	"errors"
	"time"

	"github.com/rawafid/taqyim/internal/domain/rating"
	"github.com/rawafid/taqyim/internal/domain/report"
	"github.com/rawafid/taqyim/internal/notify"
	"github.com/rawafid/taqyim/pkg/logger"
	"github.com/rawafid/taqyim/pkg/metrics"
)

// Submit runs the submit pipeline: validate, assemble, format, send. A
// second submit while one is in flight is rejected with ErrSubmitInFlight,
// not queued. Transport failure leaves the session untouched so the user
// can retry without re-entering anything.
func (s *Session) Submit(ctx context.Context) (report.Record, error) {
	s.mu.Lock()
	if s.submitting {
		s.mu.Unlock()
		metrics.RecordSubmit("busy")
		return report.Record{}, ErrSubmitInFlight
	}
	s.submitting = true
	in := s.assembleInputLocked()
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.submitting = false
		s.mu.Unlock()
	}()

	rec, err := report.Assemble(in)
	if err != nil {
		var verr *report.ValidationError
		if errors.As(err, &verr) {
			metrics.RecordSubmit("validation_failed")
			metrics.RecordValidationFailure()
		}
		return report.Record{}, err
	}

	message := notify.FormatMessage(rec, in.Language)

	start := time.Now()
	sendErr := s.sender.Send(ctx, message)
	latencyMs := float64(time.Since(start).Milliseconds())

	if sendErr != nil {
		metrics.RecordSubmit("transport_failed")
		metrics.RecordNotificationFailed(latencyMs)
		s.log.Error(ctx, "notification send failed", logger.Error(sendErr))
		return report.Record{}, sendErr
	}
	metrics.RecordSubmit("success")
	metrics.RecordNotificationSent(latencyMs)

	s.mu.Lock()
	s.lastReport = &rec
	s.mu.Unlock()

	s.log.Info(ctx, "evaluation submitted",
		logger.String("report_id", rec.ID),
		logger.String("department", in.DepartmentID),
		logger.String("employee", in.EmployeeID),
		logger.Int("percentage", rec.Percentage),
		logger.String("grade", rec.GradeKey),
	)
	return rec, nil
}

// assembleInputLocked snapshots the session for the assembler. Ratings are
// copied so a slow send cannot observe later mutations.
func (s *Session) assembleInputLocked() report.Input {
	snapshot := rating.NewStore()
	for _, ns := range []rating.Namespace{rating.General, rating.Department} {
		for _, id := range s.ratings.Rated(ns) {
			if v, ok := s.ratings.Get(ns, id); ok {
				_ = snapshot.Set(ns, id, v)
			}
		}
	}

	dept, _ := s.cat.Department(s.departmentID)

	return report.Input{
		DepartmentID:       s.departmentID,
		EmployeeID:         s.employeeID,
		SupervisorID:       s.supervisorID,
		DepartmentLabel:    dept.Name.In(s.lang),
		EmployeeLabel:      s.cat.EmployeeLabel(s.departmentID, s.employeeID, s.lang),
		SupervisorLabel:    s.cat.SupervisorLabel(s.supervisorID, s.lang),
		Date:               s.date,
		Language:           s.lang,
		GeneralCriteria:    s.cat.GeneralCriteria(),
		DepartmentCriteria: s.resolvedCriteriaLocked(),
		Ratings:            snapshot,
		Notes:              s.notes,
	}
}
