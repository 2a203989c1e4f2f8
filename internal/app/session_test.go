package app_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/rawafid/taqyim/internal/app"
	"github.com/rawafid/taqyim/internal/domain/rating"
	"github.com/rawafid/taqyim/internal/domain/report"
	"github.com/rawafid/taqyim/internal/i18n"
	"github.com/rawafid/taqyim/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMain(m *testing.M) {
	if err := logger.Init(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

// rateAll rates every criterion of one namespace list with the same value.
func rateAll(s *app.Session, ns rating.Namespace, ids []string, value int) error {
	for _, id := range ids {
		if err := s.Rate(ns, id, value); err != nil {
			return err
		}
	}
	return nil
}

func generalIDs(s *app.Session) []string {
	var ids []string
	for _, c := range s.Catalog().GeneralCriteria() {
		ids = append(ids, c.ID)
	}
	return ids
}

func TestSessionSelectionsAndScores(t *testing.T) {
	ctx := context.Background()

	Convey("Given a fresh session", t, func() {
		s := app.New()

		Convey("Then scores start at zero with the weak tier", func() {
			sum := s.Scores(ctx)
			So(sum.TotalScore, ShouldEqual, 0)
			So(sum.Percentage, ShouldEqual, 0)
			So(sum.GradeKey, ShouldEqual, "weak")
		})

		Convey("When a full sales-representative evaluation is entered", func() {
			s.SelectDepartment(ctx, "sales")
			s.SelectEmployee(ctx, "s1")
			s.SelectSupervisor(ctx, "sup1")

			So(rateAll(s, rating.General, generalIDs(s), 5), ShouldBeNil)
			So(rateAll(s, rating.Department,
				[]string{"sr_targets", "sr_clients", "sr_negotiation", "sr_collection"}, 4), ShouldBeNil)

			Convey("Then the summary recomputes 20 + 64 = 84, very good", func() {
				sum := s.Scores(ctx)
				So(sum.GeneralScore, ShouldEqual, 20)
				So(sum.DepartmentScore, ShouldEqual, 64)
				So(sum.TotalScore, ShouldEqual, 84)
				So(sum.Percentage, ShouldEqual, 84)
				So(sum.GradeKey, ShouldEqual, "very_good")
				So(sum.GradeName, ShouldEqual, i18n.GradeName("very_good", i18n.Arabic))
			})

			Convey("When the department changes", func() {
				s.SelectDepartment(ctx, "marble")

				Convey("Then department ratings and the employee are cleared", func() {
					_, ok := s.Rating(rating.Department, "sr_targets")
					So(ok, ShouldBeFalse)
					So(s.Scores(ctx).DepartmentScore, ShouldEqual, 0)
				})

				Convey("Then general ratings survive the change", func() {
					So(s.Scores(ctx).GeneralScore, ShouldEqual, 20)
				})
			})

			Convey("When only the employee changes", func() {
				s.SelectEmployee(ctx, "s2")

				Convey("Then department ratings are cleared for the new role", func() {
					_, ok := s.Rating(rating.Department, "sr_targets")
					So(ok, ShouldBeFalse)
				})
			})
		})

		Convey("When rating out of range", func() {
			err := s.Rate(rating.General, "gen_teamwork", 9)

			Convey("Then the value is rejected and not stored", func() {
				So(errors.Is(err, rating.ErrInvalidRating), ShouldBeTrue)
				_, ok := s.Rating(rating.General, "gen_teamwork")
				So(ok, ShouldBeFalse)
			})
		})

		Convey("When selecting an unknown department", func() {
			s.SelectDepartment(ctx, "finance")

			Convey("Then the session keeps working with no criteria resolved", func() {
				So(s.Criteria(ctx).Department, ShouldBeEmpty)
				So(s.Scores(ctx).DepartmentScore, ShouldEqual, 0)
			})
		})

		Convey("When setting the evaluation date", func() {
			So(s.SetDate("2026-08-31"), ShouldBeNil)
			So(s.SetDate("31/08/2026"), ShouldNotBeNil)
			So(s.Criteria(ctx).Date, ShouldEqual, "2026-08-31")
		})

		Convey("When switching language", func() {
			s.SelectDepartment(ctx, "sales")
			s.SelectEmployee(ctx, "s1")
			s.SetLanguage(i18n.English)

			Convey("Then the criteria view re-renders in English", func() {
				view := s.Criteria(ctx)
				So(view.EmployeeLabel, ShouldEqual, "أحمد الحربي - Sales Representative")
				So(view.General[0].Name, ShouldEqual, "Attendance & Punctuality")
			})

			Convey("Then criterion ids and ratings are unaffected", func() {
				So(s.Rate(rating.General, "gen_teamwork", 3), ShouldBeNil)
				s.SetLanguage(i18n.Arabic)
				v, ok := s.Rating(rating.General, "gen_teamwork")
				So(ok, ShouldBeTrue)
				So(v, ShouldEqual, 3)
			})
		})

		Convey("When resetting the session", func() {
			s.SetLanguage(i18n.English)
			s.SelectDepartment(ctx, "sales")
			So(s.Rate(rating.General, "gen_teamwork", 4), ShouldBeNil)
			s.SetNotes(report.Notes{Overall: "note"})
			s.Reset()

			Convey("Then selections, ratings and notes are dropped", func() {
				view := s.Criteria(ctx)
				So(view.DepartmentID, ShouldBeEmpty)
				_, ok := s.Rating(rating.General, "gen_teamwork")
				So(ok, ShouldBeFalse)
				_, has := s.Report()
				So(has, ShouldBeFalse)
			})

			Convey("Then the language survives the reset", func() {
				So(s.Language(), ShouldEqual, i18n.English)
			})
		})
	})
}

func TestCriteriaView(t *testing.T) {
	ctx := context.Background()

	Convey("Given a session with a selection and some ratings", t, func() {
		s := app.New(app.WithLanguage(i18n.English))
		s.SelectDepartment(ctx, "warehouse")
		s.SelectEmployee(ctx, "w1")
		s.SelectSupervisor(ctx, "sup2")
		So(s.Rate(rating.Department, "wh_accuracy", 3), ShouldBeNil)

		view := s.Criteria(ctx)

		Convey("Then the flat department list renders with per-row values", func() {
			So(view.Department, ShouldHaveLength, 4)
			So(view.Department[0].ID, ShouldEqual, "wh_accuracy")
			So(view.Department[0].Rating, ShouldEqual, 3)
			// (3/5)*25 = 15.0
			So(view.Department[0].Value, ShouldEqual, 15)
			So(view.Department[1].Rating, ShouldEqual, 0)
			So(view.Department[1].Value, ShouldEqual, 0)
		})

		Convey("Then signatures take the name side of each label", func() {
			So(view.EmployeeSignature, ShouldEqual, "طلال الرشيدي")
			So(view.SupervisorSignature, ShouldEqual, "منصور الخالدي")
		})

		Convey("Then empty notes render as placeholders", func() {
			So(view.Notes.Overall, ShouldEqual, i18n.Label("no_notes", i18n.English))
		})
	})
}
