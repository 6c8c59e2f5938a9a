package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/personnel/internal/app/models"
	"github.com/yigit/personnel/internal/db"
	"github.com/yigit/personnel/internal/pkg/apperrors"
	"github.com/yigit/personnel/internal/pkg/dberrors"
	"github.com/yigit/personnel/internal/pkg/helpers"
	"github.com/yigit/personnel/internal/pkg/logger"
)

const employeeStatusConstraint = "employees_status_check"

// EmployeeRepository handles database operations for employees
type EmployeeRepository struct {
	db db.Querier
	sb squirrel.StatementBuilderType
}

// NewEmployeeRepository creates a new employee repository
func NewEmployeeRepository(q db.Querier) *EmployeeRepository {
	return &EmployeeRepository{
		db: q,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEmployee(row rowScanner) (*models.Employee, error) {
	var (
		e                                   models.Employee
		gender, education, status           string
		firedAt, vacationStart, vacationEnd sql.NullTime
	)

	err := row.Scan(
		&e.ID, &e.FullName, &gender, &e.Age, &education, &e.Position,
		&e.Passport, &e.DepartmentID, &e.DepartmentName, &status,
		&e.CreatedAt, &e.UpdatedAt, &firedAt, &vacationStart, &vacationEnd,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, err
	}

	e.Gender = models.Gender(gender)
	e.Education = models.Education(education)
	e.Status = models.EmployeeStatus(status)
	e.FiredAt = helpers.TimePtr(firedAt)
	e.VacationStartAt = helpers.TimePtr(vacationStart)
	e.VacationEndAt = helpers.TimePtr(vacationEnd)
	return &e, nil
}

// translateEmployeePgError maps integrity violations onto domain errors and
// returns anything else unchanged.
func translateEmployeePgError(err error) error {
	switch {
	case err == nil:
		return nil
	case dberrors.IsUniqueViolation(err):
		return apperrors.ErrPassportAlreadyExists
	case dberrors.IsForeignKeyViolation(err):
		return apperrors.ErrDepartmentReference
	case dberrors.IsCheckViolation(err):
		if dberrors.ConstraintName(err) == employeeStatusConstraint {
			return apperrors.ErrInvalidStatus
		}
		return apperrors.NewValidationError("Employee data violates constraint " + dberrors.ConstraintName(err))
	default:
		return err
	}
}

func (r *EmployeeRepository) queryEmployees(ctx context.Context, query string, args []interface{}) ([]models.Employee, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		logger.Ctx(ctx).Error().Err(err).Msg("Error executing employee query")
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	employees := []models.Employee{}
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			logger.Ctx(ctx).Error().Err(err).Msg("Error scanning employee row")
			return nil, fmt.Errorf("failed to scan employee row: %w", err)
		}
		employees = append(employees, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employee rows: %w", err)
	}

	return employees, nil
}

// Search returns employees matching f ordered by full name
func (r *EmployeeRepository) Search(ctx context.Context, f EmployeeFilter) ([]models.Employee, error) {
	query, args, err := BuildEmployeeSearch(r.sb, f)
	if err != nil {
		logger.Ctx(ctx).Error().Err(err).Msg("Error building employee search SQL")
		return nil, fmt.Errorf("failed to build employee search query: %w", err)
	}
	return r.queryEmployees(ctx, query, args)
}

// GetByDepartment returns the employees of one department ordered by full name
func (r *EmployeeRepository) GetByDepartment(ctx context.Context, departmentID string) ([]models.Employee, error) {
	query, args, err := selectEmployees(r.sb).Where(squirrel.Eq{"e.department_id": departmentID}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build department employees query: %w", err)
	}
	return r.queryEmployees(ctx, query, args)
}

// GetByID retrieves a single employee
func (r *EmployeeRepository) GetByID(ctx context.Context, id string) (*models.Employee, error) {
	query, args, err := r.sb.Select(employeeColumns...).
		From("employees e").
		Join("departments d ON e.department_id = d.id").
		Where(squirrel.Eq{"e.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build employee query: %w", err)
	}

	e, err := scanEmployee(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, apperrors.ErrEmployeeNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error retrieving employee: %w", err)
	}
	return e, nil
}

// withDepartment wraps a data modifying statement that returns employee
// rows so the result carries the department name. The whole statement runs
// atomically.
func withDepartment(cte string) string {
	return "WITH changed AS (" + cte + ") SELECT " + strings.Join(employeeColumns, ", ") +
		" FROM changed e JOIN departments d ON e.department_id = d.id"
}

// Create inserts an employee. Status and timestamps come from column defaults.
func (r *EmployeeRepository) Create(ctx context.Context, e *models.Employee) (*models.Employee, error) {
	query := withDepartment(`
		INSERT INTO employees (full_name, gender, age, education, position, passport, department_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING *`)

	created, err := scanEmployee(r.db.QueryRow(ctx, query,
		e.FullName, string(e.Gender), e.Age, string(e.Education), e.Position, e.Passport, e.DepartmentID,
	))
	if err != nil {
		if translated := translateEmployeePgError(err); translated != err {
			return nil, translated
		}
		logger.Ctx(ctx).Error().Err(err).Msg("Error inserting employee")
		return nil, fmt.Errorf("error creating employee: %w", err)
	}
	return created, nil
}

// Update rewrites the descriptive fields of an employee. Status and the
// lifecycle timestamps are left alone.
func (r *EmployeeRepository) Update(ctx context.Context, e *models.Employee, now time.Time) (*models.Employee, error) {
	query := withDepartment(`
		UPDATE employees
		SET full_name = $1, gender = $2, age = $3, education = $4, position = $5, passport = $6, updated_at = $7
		WHERE id = $8
		RETURNING *`)

	updated, err := scanEmployee(r.db.QueryRow(ctx, query,
		e.FullName, string(e.Gender), e.Age, string(e.Education), e.Position, e.Passport, now, e.ID,
	))
	if err != nil {
		if errors.Is(err, apperrors.ErrEmployeeNotFound) {
			return nil, err
		}
		if translated := translateEmployeePgError(err); translated != err {
			return nil, translated
		}
		logger.Ctx(ctx).Error().Err(err).Str("employee_id", e.ID).Msg("Error updating employee")
		return nil, fmt.Errorf("error updating employee: %w", err)
	}
	return updated, nil
}

// ApplyChanges sets the given columns on one employee in a single statement
// and returns the resulting record.
func (r *EmployeeRepository) ApplyChanges(ctx context.Context, id string, changes map[string]interface{}) (*models.Employee, error) {
	if len(changes) == 0 {
		return nil, errors.New("no changes to apply")
	}

	// Rendered with ? and renumbered once the CTE is assembled
	update, args, err := squirrel.Update("employees").
		SetMap(changes).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING *").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build employee update: %w", err)
	}

	query, err := squirrel.Dollar.ReplacePlaceholders(withDepartment(update))
	if err != nil {
		return nil, fmt.Errorf("failed to number employee update placeholders: %w", err)
	}

	updated, err := scanEmployee(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, apperrors.ErrEmployeeNotFound) {
			return nil, err
		}
		if translated := translateEmployeePgError(err); translated != err {
			return nil, translated
		}
		logger.Ctx(ctx).Error().Err(err).Str("employee_id", id).Msg("Error applying employee changes")
		return nil, fmt.Errorf("error updating employee: %w", err)
	}
	return updated, nil
}

// DistinctPositions lists every position currently held, sorted
func (r *EmployeeRepository) DistinctPositions(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT DISTINCT position FROM employees ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query positions: %w", err)
	}
	defer rows.Close()

	var positions []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, fmt.Errorf("failed to scan position: %w", err)
		}
		positions = append(positions, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate positions: %w", err)
	}

	return positions, nil
}

// CountByStatus returns the number of employees per status
func (r *EmployeeRepository) CountByStatus(ctx context.Context) (map[string]int, error) {
	return r.countGrouped(ctx, `SELECT status, COUNT(*) FROM employees GROUP BY status`)
}

// CountByDepartment returns the number of employees per department name,
// including departments that have none
func (r *EmployeeRepository) CountByDepartment(ctx context.Context) (map[string]int, error) {
	return r.countGrouped(ctx, `
		SELECT d.name, COUNT(e.id)
		FROM departments d
		LEFT JOIN employees e ON e.department_id = d.id
		GROUP BY d.name`)
}

func (r *EmployeeRepository) countGrouped(ctx context.Context, query string) (map[string]int, error) {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query employee stats: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var (
			key   string
			count int
		)
		if err := rows.Scan(&key, &count); err != nil {
			return nil, fmt.Errorf("failed to scan employee stats: %w", err)
		}
		counts[key] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employee stats: %w", err)
	}

	return counts, nil
}
