// Package catalog holds the read-only rubric catalog: the general criteria
// list, per-department criteria in their three shapes (flat list, role-keyed
// map, nested teams), and the people directory the evaluation form selects
// from. The catalog is immutable after construction; lookups never fail
// fatally, an unknown id resolves to "not found".
package catalog

import (
	"fmt"
	"math"
	"sort"

	"github.com/rawafid/taqyim/internal/i18n"
)

// Fixed point allocations the weight sums must hit. The scoring engine
// assumes these maxima; a catalog that violates them can never reach 100%.
const (
	GeneralMaxScore    = 20
	DepartmentMaxScore = 80
)

const weightSumTolerance = 1e-9

// Criterion is a single scorable rubric line item.
type Criterion struct {
	ID          string    `json:"id" koanf:"id"`
	Name        i18n.Text `json:"name" koanf:"name"`
	Description i18n.Text `json:"description" koanf:"description"`
	Weight      float64   `json:"weight" koanf:"weight"`
}

// Employee is a member of a department or team. RoleCode, when present,
// selects the criteria subset directly; older catalogs leave it empty and
// rely on position-text matching.
type Employee struct {
	ID       string    `json:"id" koanf:"id"`
	Name     string    `json:"name" koanf:"name"`
	Position i18n.Text `json:"position" koanf:"position"`
	RoleCode string    `json:"role_code,omitempty" koanf:"role_code"`
}

// Supervisor is an evaluator listed in the supervisor selector.
type Supervisor struct {
	ID       string    `json:"id" koanf:"id"`
	Name     string    `json:"name" koanf:"name"`
	Position i18n.Text `json:"position" koanf:"position"`
}

// Team is a named unit inside a department that owns its own criteria list.
type Team struct {
	Name      i18n.Text   `json:"name" koanf:"name"`
	Criteria  []Criterion `json:"criteria" koanf:"criteria"`
	Employees []Employee  `json:"employees" koanf:"employees"`
}

// Department carries exactly one criteria shape: Criteria (flat),
// RoleCriteria (role-keyed map), or Teams (nested units).
type Department struct {
	ID           string                 `json:"id" koanf:"id"`
	Name         i18n.Text              `json:"name" koanf:"name"`
	Criteria     []Criterion            `json:"criteria,omitempty" koanf:"criteria"`
	RoleCriteria map[string][]Criterion `json:"role_criteria,omitempty" koanf:"role_criteria"`
	Teams        map[string]Team        `json:"teams,omitempty" koanf:"teams"`
	Employees    []Employee             `json:"employees,omitempty" koanf:"employees"`
}

// Document is the unmarshal target for an external catalog file and the
// shape the built-in catalog is declared in.
type Document struct {
	General     []Criterion  `json:"general" koanf:"general"`
	Departments []Department `json:"departments" koanf:"departments"`
	Supervisors []Supervisor `json:"supervisors" koanf:"supervisors"`
}

// Catalog is the validated, read-only lookup structure.
type Catalog struct {
	general     []Criterion
	departments map[string]Department
	order       []string
	supervisors []Supervisor
}

// New validates a Document and builds a Catalog from it.
func New(doc Document) (*Catalog, error) {
	if err := validate(doc); err != nil {
		return nil, err
	}

	c := &Catalog{
		general:     doc.General,
		departments: make(map[string]Department, len(doc.Departments)),
		order:       make([]string, 0, len(doc.Departments)),
		supervisors: doc.Supervisors,
	}
	for _, d := range doc.Departments {
		c.departments[d.ID] = d
		c.order = append(c.order, d.ID)
	}
	return c, nil
}

// GeneralCriteria returns the general criteria list in catalog order.
func (c *Catalog) GeneralCriteria() []Criterion {
	out := make([]Criterion, len(c.general))
	copy(out, c.general)
	return out
}

// Department looks up a department by id.
func (c *Catalog) Department(id string) (Department, bool) {
	d, ok := c.departments[id]
	return d, ok
}

// Departments returns all departments in declaration order.
func (c *Catalog) Departments() []Department {
	out := make([]Department, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.departments[id])
	}
	return out
}

// Employees returns every employee of a department, including members of
// nested teams. Team members are appended in sorted team-key order so the
// result is stable.
func (c *Catalog) Employees(deptID string) []Employee {
	d, ok := c.departments[deptID]
	if !ok {
		return nil
	}

	out := make([]Employee, 0, len(d.Employees))
	out = append(out, d.Employees...)

	keys := make([]string, 0, len(d.Teams))
	for k := range d.Teams {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		out = append(out, d.Teams[k].Employees...)
	}
	return out
}

// Employee finds an employee of a department by id.
func (c *Catalog) Employee(deptID, empID string) (Employee, bool) {
	for _, e := range c.Employees(deptID) {
		if e.ID == empID {
			return e, true
		}
	}
	return Employee{}, false
}

// Supervisors returns the full supervisor directory.
func (c *Catalog) Supervisors() []Supervisor {
	out := make([]Supervisor, len(c.supervisors))
	copy(out, c.supervisors)
	return out
}

// Supervisor finds a supervisor by id.
func (c *Catalog) Supervisor(id string) (Supervisor, bool) {
	for _, s := range c.supervisors {
		if s.ID == id {
			return s, true
		}
	}
	return Supervisor{}, false
}

// EmployeeLabel renders the "name - position" selector label the role
// resolver and the print surface consume.
func (c *Catalog) EmployeeLabel(deptID, empID string, lang i18n.Lang) string {
	e, ok := c.Employee(deptID, empID)
	if !ok {
		return ""
	}
	return e.Name + " - " + e.Position.In(lang)
}

// SupervisorLabel renders the supervisor selector label.
func (c *Catalog) SupervisorLabel(id string, lang i18n.Lang) string {
	s, ok := c.Supervisor(id)
	if !ok {
		return ""
	}
	return s.Name + " - " + s.Position.In(lang)
}

// validate enforces the catalog invariants: unique ids, one criteria shape
// per department, and the 20/80 weight sums every resolvable list must hit.
func validate(doc Document) error {
	if err := checkWeightSum("general", doc.General, GeneralMaxScore); err != nil {
		return err
	}

	seen := make(map[string]bool, len(doc.Departments))
	for _, d := range doc.Departments {
		if d.ID == "" {
			return fmt.Errorf("%w: department with empty id", ErrCatalogInvariant)
		}
		if seen[d.ID] {
			return fmt.Errorf("%w: duplicate department id %q", ErrCatalogInvariant, d.ID)
		}
		seen[d.ID] = true

		shapes := 0
		if len(d.Criteria) > 0 {
			shapes++
		}
		if len(d.RoleCriteria) > 0 {
			shapes++
		}
		if len(d.Teams) > 0 {
			shapes++
		}
		if shapes > 1 {
			return fmt.Errorf("%w: department %q mixes criteria shapes", ErrCatalogInvariant, d.ID)
		}

		if len(d.Criteria) > 0 {
			if err := checkWeightSum(d.ID, d.Criteria, DepartmentMaxScore); err != nil {
				return err
			}
		}
		for role, list := range d.RoleCriteria {
			if err := checkWeightSum(d.ID+"/"+role, list, DepartmentMaxScore); err != nil {
				return err
			}
		}
		for key, team := range d.Teams {
			if err := checkWeightSum(d.ID+"/"+key, team.Criteria, DepartmentMaxScore); err != nil {
				return err
			}
		}
	}
	return nil
}

func checkWeightSum(list string, criteria []Criterion, want float64) error {
	ids := make(map[string]bool, len(criteria))
	var sum float64
	for _, cr := range criteria {
		if cr.ID == "" {
			return fmt.Errorf("%w: list %q has a criterion with empty id", ErrCatalogInvariant, list)
		}
		if ids[cr.ID] {
			return fmt.Errorf("%w: list %q has duplicate criterion id %q", ErrCatalogInvariant, list, cr.ID)
		}
		ids[cr.ID] = true
		if cr.Weight <= 0 {
			return fmt.Errorf("%w: criterion %q has non-positive weight", ErrCatalogInvariant, cr.ID)
		}
		sum += cr.Weight
	}
	if math.Abs(sum-want) > weightSumTolerance {
		return fmt.Errorf("%w: list %q weights sum to %v, want %v", ErrCatalogInvariant, list, sum, want)
	}
	return nil
}
