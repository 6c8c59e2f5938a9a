package repositories

import (
	"strings"

	"github.com/Masterminds/squirrel"
)

// employeeColumns is the projection shared by every employee read. The
// department name comes from the joined departments row.
var employeeColumns = []string{
	"e.id", "e.full_name", "e.gender", "e.age", "e.education", "e.position",
	"e.passport", "e.department_id", "d.name AS department_name", "e.status",
	"e.created_at", "e.updated_at", "e.fired_at", "e.vacation_start_at", "e.vacation_end_at",
}

// EmployeeFilter narrows an employee search. Blank strings and nil age
// bounds are ignored.
type EmployeeFilter struct {
	FullName  string
	Position  string
	Gender    string
	Education string
	AgeFrom   *int
	AgeTo     *int
}

// Predicates returns one bound predicate per present field, always in the
// order FullName, Position, Gender, Education, AgeFrom, AgeTo.
func (f EmployeeFilter) Predicates() []squirrel.Sqlizer {
	var preds []squirrel.Sqlizer

	if v := strings.TrimSpace(f.FullName); v != "" {
		preds = append(preds, squirrel.ILike{"e.full_name": "%" + v + "%"})
	}
	if v := strings.TrimSpace(f.Position); v != "" {
		preds = append(preds, squirrel.Eq{"e.position": v})
	}
	if v := strings.TrimSpace(f.Gender); v != "" {
		preds = append(preds, squirrel.Eq{"e.gender": v})
	}
	if v := strings.TrimSpace(f.Education); v != "" {
		preds = append(preds, squirrel.Eq{"e.education": v})
	}
	if f.AgeFrom != nil {
		preds = append(preds, squirrel.GtOrEq{"e.age": *f.AgeFrom})
	}
	if f.AgeTo != nil {
		preds = append(preds, squirrel.LtOrEq{"e.age": *f.AgeTo})
	}

	return preds
}

// selectEmployees is the base selection: employees joined with their
// department, ordered by full name.
func selectEmployees(sb squirrel.StatementBuilderType) squirrel.SelectBuilder {
	return sb.Select(employeeColumns...).
		From("employees e").
		Join("departments d ON e.department_id = d.id").
		OrderBy("e.full_name ASC")
}

// BuildEmployeeSearch renders the search statement for f. With no present
// fields the statement has no WHERE clause.
func BuildEmployeeSearch(sb squirrel.StatementBuilderType, f EmployeeFilter) (string, []interface{}, error) {
	q := selectEmployees(sb)
	if preds := f.Predicates(); len(preds) > 0 {
		q = q.Where(squirrel.And(preds))
	}
	return q.ToSql()
}
