package catalog_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rawafid/taqyim/internal/domain/catalog"
	"github.com/rawafid/taqyim/internal/i18n"
	. "github.com/smartystreets/goconvey/convey"
)

func weightSum(criteria []catalog.Criterion) float64 {
	var sum float64
	for _, c := range criteria {
		sum += c.Weight
	}
	return sum
}

func TestDefaultCatalog(t *testing.T) {
	Convey("Given the built-in catalog", t, func() {
		cat := catalog.Default()

		Convey("Then the general criteria allocate exactly 20 points", func() {
			So(weightSum(cat.GeneralCriteria()), ShouldEqual, catalog.GeneralMaxScore)
		})

		Convey("Then every department criteria list allocates exactly 80 points", func() {
			for _, d := range cat.Departments() {
				if len(d.Criteria) > 0 {
					So(weightSum(d.Criteria), ShouldEqual, catalog.DepartmentMaxScore)
				}
				for _, list := range d.RoleCriteria {
					So(weightSum(list), ShouldEqual, catalog.DepartmentMaxScore)
				}
				for _, team := range d.Teams {
					So(weightSum(team.Criteria), ShouldEqual, catalog.DepartmentMaxScore)
				}
			}
		})

		Convey("Then departments come back in declaration order", func() {
			var ids []string
			for _, d := range cat.Departments() {
				ids = append(ids, d.ID)
			}
			So(ids, ShouldResemble, []string{"sales", "vehicles", "marketing", "projects", "marble", "warehouse"})
		})

		Convey("Then team members surface through the department employee list", func() {
			emps := cat.Employees("marketing")
			So(emps, ShouldHaveLength, 4)

			got := make(map[string]bool, len(emps))
			for _, e := range emps {
				got[e.ID] = true
			}
			So(got, ShouldContainKey, "m1")
			So(got, ShouldContainKey, "m4")
		})

		Convey("Then employee lookups resolve across shapes", func() {
			e, ok := cat.Employee("marketing", "m2")
			So(ok, ShouldBeTrue)
			So(e.RoleCode, ShouldEqual, "editor")

			_, ok = cat.Employee("sales", "m2")
			So(ok, ShouldBeFalse)
		})

		Convey("Then missing departments report not found", func() {
			_, ok := cat.Department("finance")
			So(ok, ShouldBeFalse)
			So(cat.Employees("finance"), ShouldBeEmpty)
		})

		Convey("Then labels join name and localized position with a hyphen", func() {
			So(cat.EmployeeLabel("sales", "s1", i18n.English), ShouldEqual, "أحمد الحربي - Sales Representative")
			So(cat.EmployeeLabel("sales", "s1", i18n.Arabic), ShouldEqual, "أحمد الحربي - مندوب مبيعات")
			So(cat.EmployeeLabel("sales", "missing", i18n.Arabic), ShouldBeEmpty)
			So(cat.SupervisorLabel("sup1", i18n.English), ShouldEqual, "عبدالعزيز الفيصل - Sales Manager")
		})

		Convey("Then the supervisor roster is exposed", func() {
			So(cat.Supervisors(), ShouldHaveLength, 3)
			s, ok := cat.Supervisor("sup3")
			So(ok, ShouldBeTrue)
			So(s.Position.EN, ShouldEqual, "HR Manager")
		})
	})
}

func TestNewValidation(t *testing.T) {
	general := []catalog.Criterion{{ID: "g1", Name: i18n.Text{AR: "أ", EN: "a"}, Weight: 20}}
	flat := []catalog.Criterion{{ID: "d1", Name: i18n.Text{AR: "ب", EN: "b"}, Weight: 80}}

	Convey("Given a minimal valid document", t, func() {
		doc := catalog.Document{
			General:     general,
			Departments: []catalog.Department{{ID: "ops", Name: i18n.Text{AR: "عمليات", EN: "Ops"}, Criteria: flat}},
		}

		Convey("Then New accepts it", func() {
			cat, err := catalog.New(doc)
			So(err, ShouldBeNil)
			So(cat.GeneralCriteria(), ShouldHaveLength, 1)
		})

		Convey("When the general weights do not sum to 20", func() {
			doc.General = []catalog.Criterion{{ID: "g1", Weight: 19}}
			_, err := catalog.New(doc)

			Convey("Then New fails with the invariant error", func() {
				So(errors.Is(err, catalog.ErrCatalogInvariant), ShouldBeTrue)
			})
		})

		Convey("When a department list does not sum to 80", func() {
			doc.Departments[0].Criteria = []catalog.Criterion{{ID: "d1", Weight: 79.5}}
			_, err := catalog.New(doc)
			So(errors.Is(err, catalog.ErrCatalogInvariant), ShouldBeTrue)
		})

		Convey("When two departments share an id", func() {
			doc.Departments = append(doc.Departments, catalog.Department{ID: "ops", Criteria: flat})
			_, err := catalog.New(doc)
			So(errors.Is(err, catalog.ErrCatalogInvariant), ShouldBeTrue)
		})

		Convey("When a list repeats a criterion id", func() {
			doc.Departments[0].Criteria = []catalog.Criterion{
				{ID: "d1", Weight: 40},
				{ID: "d1", Weight: 40},
			}
			_, err := catalog.New(doc)
			So(errors.Is(err, catalog.ErrCatalogInvariant), ShouldBeTrue)
		})

		Convey("When a department mixes criteria shapes", func() {
			doc.Departments[0].RoleCriteria = map[string][]catalog.Criterion{"role": flat}
			_, err := catalog.New(doc)
			So(errors.Is(err, catalog.ErrCatalogInvariant), ShouldBeTrue)
		})

		Convey("When a criterion carries a non-positive weight", func() {
			doc.General = []catalog.Criterion{{ID: "g1", Weight: 20}, {ID: "g2", Weight: 0}}
			_, err := catalog.New(doc)
			So(errors.Is(err, catalog.ErrCatalogInvariant), ShouldBeTrue)
		})
	})
}

func TestLoad(t *testing.T) {
	Convey("Given a catalog file on disk", t, func() {
		dir := t.TempDir()
		path := filepath.Join(dir, "catalog.yaml")
		doc := `
general:
  - id: g1
    name: {ar: "معيار", en: "Criterion"}
    weight: 20
departments:
  - id: ops
    name: {ar: "عمليات", en: "Ops"}
    criteria:
      - id: d1
        name: {ar: "بند", en: "Item"}
        weight: 80
    employees:
      - id: e1
        name: "موظف"
        position: {ar: "أمين", en: "Keeper"}
supervisors:
  - id: sup1
    name: "مشرف"
    position: {ar: "مدير", en: "Manager"}
`
		So(os.WriteFile(path, []byte(doc), 0o600), ShouldBeNil)

		Convey("When loading it", func() {
			cat, err := catalog.Load(path)

			Convey("Then the parsed catalog passes validation", func() {
				So(err, ShouldBeNil)
				So(cat.GeneralCriteria()[0].Name.EN, ShouldEqual, "Criterion")

				d, ok := cat.Department("ops")
				So(ok, ShouldBeTrue)
				So(d.Criteria[0].Weight, ShouldEqual, 80)
				So(cat.Employees("ops"), ShouldHaveLength, 1)
			})
		})

		Convey("When the file violates an invariant", func() {
			bad := filepath.Join(dir, "bad.yaml")
			So(os.WriteFile(bad, []byte("general:\n  - id: g1\n    weight: 5\n"), 0o600), ShouldBeNil)

			_, err := catalog.Load(bad)
			So(errors.Is(err, catalog.ErrCatalogInvariant), ShouldBeTrue)
		})

		Convey("When the file does not exist", func() {
			_, err := catalog.Load(filepath.Join(dir, "missing.yaml"))
			So(errors.Is(err, catalog.ErrLoadCatalog), ShouldBeTrue)
		})
	})
}
