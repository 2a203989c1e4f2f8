package notify_test

import (
	"strings"
	"testing"

	"github.com/rawafid/taqyim/internal/domain/report"
	"github.com/rawafid/taqyim/internal/i18n"
	"github.com/rawafid/taqyim/internal/notify"
	. "github.com/smartystreets/goconvey/convey"
)

func sampleRecord() report.Record {
	return report.Record{
		ID:              "r-1",
		Employee:        "أحمد الحربي - مندوب مبيعات",
		Department:      "المبيعات",
		Supervisor:      "عبدالعزيز الفيصل - مدير المبيعات",
		Date:            "2026-09-01",
		GeneralScore:    20,
		DepartmentScore: 64,
		TotalScore:      84,
		Percentage:      84,
		GradeKey:        "very_good",
		GradeName:       i18n.GradeName("very_good", i18n.English),
		Notes:           report.Notes{Overall: "keeps the team moving"},
	}
}

func TestFormatMessage(t *testing.T) {
	Convey("Given an assembled report record", t, func() {
		rec := sampleRecord()

		Convey("When formatting in English", func() {
			msg := notify.FormatMessage(rec, i18n.English)

			Convey("Then scores render at two decimals over their maxima", func() {
				So(msg, ShouldContainSubstring, "20.00/20")
				So(msg, ShouldContainSubstring, "64.00/80")
				So(msg, ShouldContainSubstring, "84.00/100")
				So(msg, ShouldContainSubstring, "84%")
			})

			Convey("Then identity and grade lines appear", func() {
				So(msg, ShouldContainSubstring, rec.Employee)
				So(msg, ShouldContainSubstring, rec.Department)
				So(msg, ShouldContainSubstring, rec.GradeName)
				So(msg, ShouldContainSubstring, "2026-09-01")
			})

			Convey("Then the overall note is included", func() {
				So(msg, ShouldContainSubstring, "keeps the team moving")
			})
		})

		Convey("When the record carries no overall note", func() {
			rec.Notes.Overall = ""
			msg := notify.FormatMessage(rec, i18n.Arabic)

			Convey("Then the localized placeholder stands in", func() {
				So(msg, ShouldContainSubstring, i18n.Label("no_notes", i18n.Arabic))
			})
		})

		Convey("When formatting the same record in both languages", func() {
			en := notify.FormatMessage(rec, i18n.English)
			ar := notify.FormatMessage(rec, i18n.Arabic)

			Convey("Then the labels differ but the figures agree", func() {
				So(ar, ShouldNotEqual, en)
				So(ar, ShouldContainSubstring, "84.00/100")
				So(strings.Count(en, "----------------------------"), ShouldEqual, strings.Count(ar, "----------------------------"))
			})
		})
	})
}
