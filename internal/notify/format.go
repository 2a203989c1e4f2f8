package notify

import (
	"fmt"
	"strings"

	"github.com/rawafid/taqyim/internal/domain/report"
	"github.com/rawafid/taqyim/internal/i18n"
)

const sectionDivider = "----------------------------"

// FormatMessage renders the fixed outbound message for a report record.
// Total: every record, however degenerate, yields a valid message; an empty
// overall note is replaced by the localized placeholder.
func FormatMessage(rec report.Record, lang i18n.Lang) string {
	notes := rec.Notes.Overall
	if notes == "" {
		notes = i18n.Label("no_notes", lang)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📊 *%s*\n", i18n.Label("report_title", lang))
	b.WriteString(sectionDivider + "\n")
	fmt.Fprintf(&b, "👤 *%s* %s\n", i18n.Label("employee", lang), rec.Employee)
	fmt.Fprintf(&b, "🏢 *%s* %s\n", i18n.Label("department", lang), rec.Department)
	fmt.Fprintf(&b, "👨‍💼 *%s* %s\n", i18n.Label("supervisor", lang), rec.Supervisor)
	fmt.Fprintf(&b, "📅 *%s* %s\n", i18n.Label("evaluation_date", lang), rec.Date)
	b.WriteString(sectionDivider + "\n")
	fmt.Fprintf(&b, "📈 *%s*\n", i18n.Label("results", lang))
	fmt.Fprintf(&b, "• %s %.2f/20\n", i18n.Label("general_criteria", lang), rec.GeneralScore)
	fmt.Fprintf(&b, "• %s %.2f/80\n", i18n.Label("department_criteria", lang), rec.DepartmentScore)
	fmt.Fprintf(&b, "• %s %.2f/100\n", i18n.Label("total", lang), rec.TotalScore)
	fmt.Fprintf(&b, "• %s %d%%\n", i18n.Label("percentage", lang), rec.Percentage)
	fmt.Fprintf(&b, "• %s %s\n", i18n.Label("grade", lang), rec.GradeName)
	b.WriteString(sectionDivider + "\n")
	fmt.Fprintf(&b, "📝 *%s*\n", i18n.Label("notes", lang))
	b.WriteString(notes + "\n")
	b.WriteString(sectionDivider + "\n")
	b.WriteString(i18n.Label("report_footer", lang))

	return b.String()
}
