// Package report assembles the immutable evaluation record produced on
// submit. Assembly recomputes scores from the rating store and the resolved
// criteria at the instant of the call; no display value is trusted.
package report

import (
	"strings"
	"time"

	"github.com/rawafid/taqyim/internal/i18n"
)

// Notes carries the three free-text note fields of a session.
type Notes struct {
	General    string `json:"general"`
	Department string `json:"department"`
	Overall    string `json:"overall"`
}

// Record is a point-in-time snapshot of one completed evaluation. It is
// never mutated after Assemble returns it.
type Record struct {
	ID              string    `json:"id"`
	Employee        string    `json:"employee"`
	Department      string    `json:"department"`
	Supervisor      string    `json:"supervisor"`
	Date            string    `json:"date"`
	GeneralScore    float64   `json:"general_score"`
	DepartmentScore float64   `json:"department_score"`
	TotalScore      float64   `json:"total_score"`
	Percentage      int       `json:"percentage"`
	GradeKey        string    `json:"grade_key"`
	GradeName       string    `json:"grade_name"`
	GradeMessage    string    `json:"grade_message"`
	GradeColor      string    `json:"grade_color"`
	Notes           Notes     `json:"notes"`
	Language        i18n.Lang `json:"language"`
	CreatedAt       time.Time `json:"created_at"`
}

// printNoteMaxLen caps note text on the print surface.
const printNoteMaxLen = 150

// PrintNote prepares a note for the print surface: empty notes become the
// localized placeholder, long notes are cut at 150 runes with an ellipsis.
func PrintNote(text string, lang i18n.Lang) string {
	if strings.TrimSpace(text) == "" {
		return i18n.Label("no_notes", lang)
	}
	runes := []rune(text)
	if len(runes) > printNoteMaxLen {
		return string(runes[:printNoteMaxLen]) + "..."
	}
	return text
}

// SignatureName extracts the bare name from a "name - position" selector
// label for the signature lines of the printed form.
func SignatureName(label string) string {
	return strings.TrimSpace(strings.SplitN(label, "-", 2)[0])
}
