package scoring_test

import (
	"testing"

	"github.com/rawafid/taqyim/internal/domain/catalog"
	"github.com/rawafid/taqyim/internal/domain/scoring"
	. "github.com/smartystreets/goconvey/convey"
)

func ratingsFrom(m map[string]int) scoring.RatingFunc {
	return func(id string) (int, bool) {
		v, ok := m[id]
		return v, ok
	}
}

func TestScore(t *testing.T) {
	Convey("Given a criteria list whose weights sum to 20", t, func() {
		criteria := []catalog.Criterion{
			{ID: "a", Weight: 4},
			{ID: "b", Weight: 2},
			{ID: "c", Weight: 4},
			{ID: "d", Weight: 3},
			{ID: "e", Weight: 3},
			{ID: "f", Weight: 4},
		}

		Convey("When every criterion is rated 5", func() {
			all5 := map[string]int{"a": 5, "b": 5, "c": 5, "d": 5, "e": 5, "f": 5}

			Convey("Then the score equals the weight sum exactly", func() {
				So(scoring.Score(ratingsFrom(all5), criteria), ShouldEqual, 20)
			})
		})

		Convey("When nothing is rated", func() {
			Convey("Then the score is zero", func() {
				So(scoring.Score(ratingsFrom(nil), criteria), ShouldEqual, 0)
			})
		})

		Convey("When only some criteria are rated", func() {
			partial := map[string]int{"a": 3, "d": 4}

			Convey("Then unrated criteria contribute nothing", func() {
				// (3/5)*4 + (4/5)*3 = 2.4 + 2.4
				So(scoring.Score(ratingsFrom(partial), criteria), ShouldEqual, 4.8)
			})
		})

		Convey("When scoring twice with unchanged inputs", func() {
			m := map[string]int{"a": 2, "b": 5, "f": 1}
			first := scoring.Score(ratingsFrom(m), criteria)
			second := scoring.Score(ratingsFrom(m), criteria)

			Convey("Then the results are identical", func() {
				So(second, ShouldEqual, first)
			})
		})
	})

	Convey("Given a criterion with a fractional weight", t, func() {
		criteria := []catalog.Criterion{{ID: "x", Weight: 0.333}}

		Convey("When rated 1", func() {
			got := scoring.Score(ratingsFrom(map[string]int{"x": 1}), criteria)

			Convey("Then the score rounds half away from zero at 2dp", func() {
				// (1/5)*0.333 = 0.0666
				So(got, ShouldEqual, 0.07)
			})
		})
	})
}

func TestCriterionValue(t *testing.T) {
	Convey("Given a criterion weight of 25", t, func() {
		Convey("Then a rating of 4 contributes 20", func() {
			So(scoring.CriterionValue(4, 25), ShouldEqual, 20)
		})
		Convey("Then an unset rating contributes 0", func() {
			So(scoring.CriterionValue(0, 25), ShouldEqual, 0)
		})
	})
}

func TestPercentage(t *testing.T) {
	Convey("Given the fixed 100-point maximum", t, func() {
		Convey("Then sub-scores map straight to percentage points", func() {
			So(scoring.Percentage(20, 64), ShouldEqual, 84)
			So(scoring.Percentage(0, 0), ShouldEqual, 0)
			So(scoring.Percentage(20, 80), ShouldEqual, 100)
		})

		Convey("Then fractional totals round to the nearest point", func() {
			So(scoring.Percentage(16, 67.5), ShouldEqual, 84)
			So(scoring.Percentage(16, 67.4), ShouldEqual, 83)
		})
	})
}

func TestGrade(t *testing.T) {
	Convey("Given the five grade bands", t, func() {
		Convey("Then lower bounds are inclusive", func() {
			So(scoring.Grade(90), ShouldResemble, scoring.Excellent)
			So(scoring.Grade(80), ShouldResemble, scoring.VeryGood)
			So(scoring.Grade(70), ShouldResemble, scoring.Good)
			So(scoring.Grade(60), ShouldResemble, scoring.Acceptable)
		})

		Convey("Then values just below a bound fall in the band beneath", func() {
			So(scoring.Grade(89.999), ShouldResemble, scoring.VeryGood)
			So(scoring.Grade(89), ShouldResemble, scoring.VeryGood)
			So(scoring.Grade(79), ShouldResemble, scoring.Good)
			So(scoring.Grade(69), ShouldResemble, scoring.Acceptable)
			So(scoring.Grade(59), ShouldResemble, scoring.Weak)
			So(scoring.Grade(0), ShouldResemble, scoring.Weak)
		})

		Convey("Then every tier carries a key and color token", func() {
			for _, tier := range []scoring.Tier{scoring.Excellent, scoring.VeryGood, scoring.Good, scoring.Acceptable, scoring.Weak} {
				So(tier.Key, ShouldNotBeEmpty)
				So(tier.Color, ShouldStartWith, "#")
			}
		})
	})
}
