// Package i18n holds the bilingual string table used across the service.
//
// The evaluation form is Arabic-first with an English toggle; every string
// the core emits (grade texts, validation notices, notification labels)
// resolves through this package so presentation layers never hardcode text.
package i18n

import (
	"fmt"
	"strings"
)

// Lang identifies a display language.
type Lang string

// Supported languages.
const (
	Arabic  Lang = "ar"
	English Lang = "en"
)

// Default is the language a fresh session starts in.
const Default = Arabic

// Parse normalizes a language code. Empty input resolves to the default.
func Parse(s string) (Lang, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(Arabic):
		return Arabic, nil
	case string(English):
		return English, nil
	default:
		return "", fmt.Errorf("unsupported language: %q", s)
	}
}

// Text is a localized string pair. Catalog entries and message templates
// carry Text values and pick a side at render time.
type Text struct {
	AR string `json:"ar" koanf:"ar"`
	EN string `json:"en" koanf:"en"`
}

// In returns the variant for lang, falling back to Arabic when the
// English side is empty.
func (t Text) In(lang Lang) string {
	if lang == English && t.EN != "" {
		return t.EN
	}
	return t.AR
}

// Grade tier text, keyed by tier key.
var gradeNames = map[string]Text{
	"excellent":  {AR: "ممتاز", EN: "Excellent"},
	"very_good":  {AR: "جيد جداً", EN: "Very Good"},
	"good":       {AR: "جيد", EN: "Good"},
	"acceptable": {AR: "مقبول", EN: "Acceptable"},
	"weak":       {AR: "ضعيف", EN: "Weak"},
}

var gradeMessages = map[string]Text{
	"excellent":  {AR: "أداء متميز", EN: "Outstanding Performance"},
	"very_good":  {AR: "أداء عالي", EN: "High Performance"},
	"good":       {AR: "أداء جيد", EN: "Good Performance"},
	"acceptable": {AR: "أداء مقبول", EN: "Acceptable Performance"},
	"weak":       {AR: "يحتاج للتحسين", EN: "Needs Improvement"},
}

// GradeName returns the display name for a grade tier key.
func GradeName(key string, lang Lang) string {
	return gradeNames[key].In(lang)
}

// GradeMessage returns the short performance message for a grade tier key.
func GradeMessage(key string, lang Lang) string {
	return gradeMessages[key].In(lang)
}

// Validation notice text, keyed by unmet-condition code.
var validationMessages = map[string]Text{
	"missing_department": {AR: "يرجى اختيار القسم", EN: "Please select a department"},
	"missing_employee":   {AR: "يرجى اختيار الموظف", EN: "Please select an employee"},
	"missing_supervisor": {AR: "يرجى اختيار المشرف", EN: "Please select a supervisor"},
	"no_ratings":         {AR: "يرجى إدخال تقييمات", EN: "Please enter ratings"},
}

// ValidationMessage returns the user-facing text for an unmet condition.
func ValidationMessage(code string, lang Lang) string {
	return validationMessages[code].In(lang)
}

// Labels used by the notification formatter and the print surface.
var labels = map[string]Text{
	"report_title":        {AR: "تقرير التقييم الموحد", EN: "Unified Evaluation Report"},
	"employee":            {AR: "الموظف:", EN: "Employee:"},
	"department":          {AR: "القسم:", EN: "Department:"},
	"supervisor":          {AR: "المشرف:", EN: "Supervisor:"},
	"evaluation_date":     {AR: "تاريخ التقييم:", EN: "Evaluation Date:"},
	"results":             {AR: "النتائج:", EN: "Results:"},
	"general_criteria":    {AR: "المعايير العامة:", EN: "General Criteria:"},
	"department_criteria": {AR: "معايير القسم:", EN: "Department Criteria:"},
	"total":               {AR: "الإجمالي:", EN: "Total:"},
	"percentage":          {AR: "النسبة:", EN: "Percentage:"},
	"grade":               {AR: "التقدير:", EN: "Grade:"},
	"notes":               {AR: "الملاحظات:", EN: "Notes:"},
	"no_notes":            {AR: "لا توجد ملاحظات", EN: "No notes"},
	"report_footer":       {AR: "تم إرسال هذا التقرير تلقائياً", EN: "This report was automatically sent"},
	"validation_error":    {AR: "خطأ في البيانات", EN: "Validation Error"},
	"send_error":          {AR: "خطأ", EN: "Error"},
	"send_success":        {AR: "تمت العملية", EN: "Success"},
}

// Label returns a fixed label by key.
func Label(key string, lang Lang) string {
	return labels[key].In(lang)
}
