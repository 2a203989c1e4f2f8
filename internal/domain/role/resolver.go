// Package role maps a department and an employee descriptor to the
// applicable criteria subset. Resolution is pure: same inputs, same list.
//
// Two strategies exist. The preferred one is an exact lookup on the
// employee's role code. The legacy one infers the role from bilingual
// keyword substrings of the "name - position" selector label; it is kept
// for catalogs whose employee records carry no role code, and its match
// table and priority order reproduce the historical behavior exactly.
package role

import (
	"strings"

	"github.com/rawafid/taqyim/internal/domain/catalog"
)

// rule pairs a keyword set with the criteria selector it activates.
// Keywords are OR'd, matched case-sensitively as substrings of the label.
type rule struct {
	keywords []string
	selector string
}

// legacyRules holds the per-department rule lists, evaluated in order,
// first match wins.
var legacyRules = map[string][]rule{
	"sales": {
		{keywords: []string{"مندوب مبيعات", "Sales Representative"}, selector: "sales_rep"},
		{keywords: []string{"موظف تسليم", "Delivery Staff"}, selector: "delivery_staff"},
		{keywords: []string{"عامل تسليم", "Delivery Worker"}, selector: "delivery_workers"},
	},
	"vehicles": {
		{keywords: []string{"رافعة شوكية", "Forklift Driver"}, selector: "forklift_drivers"},
		{keywords: []string{"سائق شحن", "Shipping Driver"}, selector: "shipping_drivers"},
	},
	"marketing": {
		{keywords: []string{"مصور", "Photographer"}, selector: "photographer"},
		{keywords: []string{"مونتاج", "Video Editor"}, selector: "editor"},
		{keywords: []string{"مصمم إعلان", "Ad Designer"}, selector: "designer"},
		{keywords: []string{"سوشيال ميديا", "Social Media"}, selector: "social_media"},
	},
	"projects": {
		{keywords: []string{"فورمان", "Foreman"}, selector: "foremen"},
		{keywords: []string{"عامل مشروع", "Project Worker"}, selector: "project_workers"},
	},
	"marble": {
		{keywords: []string{"عامل مشروع", "Project Worker"}, selector: "project_workers"},
		{keywords: []string{"عامل قص", "Cutter"}, selector: "cutting_workers"},
		{keywords: []string{"عامل تركيب", "Installer"}, selector: "installation_workers"},
		{keywords: []string{"عامل تشطيب", "Finisher"}, selector: "finishing_workers"},
	},
}

// Resolve returns the criteria list for a department and employee label.
// A matched rule wins even when its selector has no criteria list (the
// result is then empty); with no match, the department's flat list is the
// fallback, else empty. Unknown departments resolve to empty.
func Resolve(cat *catalog.Catalog, deptID, employeeLabel string) []catalog.Criterion {
	dept, ok := cat.Department(deptID)
	if !ok {
		return nil
	}

	for _, r := range legacyRules[deptID] {
		for _, kw := range r.keywords {
			if strings.Contains(employeeLabel, kw) {
				return criteriaFor(dept, r.selector)
			}
		}
	}

	if len(dept.Criteria) > 0 {
		return dept.Criteria
	}
	return nil
}

// ResolveEmployee prefers the employee's explicit role code and falls back
// to label matching for records that carry none.
func ResolveEmployee(cat *catalog.Catalog, deptID string, emp catalog.Employee, label string) []catalog.Criterion {
	if emp.RoleCode != "" {
		dept, ok := cat.Department(deptID)
		if !ok {
			return nil
		}
		if list := criteriaFor(dept, emp.RoleCode); list != nil {
			return list
		}
	}
	return Resolve(cat, deptID, label)
}

// criteriaFor resolves a selector uniformly across the role-map and team
// shapes of a department.
func criteriaFor(dept catalog.Department, selector string) []catalog.Criterion {
	if list, ok := dept.RoleCriteria[selector]; ok {
		return list
	}
	if team, ok := dept.Teams[selector]; ok {
		return team.Criteria
	}
	return nil
}
