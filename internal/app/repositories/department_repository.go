package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/yigit/personnel/internal/app/models"
	"github.com/yigit/personnel/internal/db"
	"github.com/yigit/personnel/internal/pkg/apperrors"
	"github.com/yigit/personnel/internal/pkg/dberrors"
	"github.com/yigit/personnel/internal/pkg/helpers"
)

const departmentColumns = `id, name, description, created_at, updated_at`

// DepartmentRepository handles database operations for departments
type DepartmentRepository struct {
	db db.Querier
}

// NewDepartmentRepository creates a new department repository
func NewDepartmentRepository(q db.Querier) *DepartmentRepository {
	return &DepartmentRepository{db: q}
}

func scanDepartment(row rowScanner) (*models.Department, error) {
	var (
		d    models.Department
		desc sql.NullString
	)
	if err := row.Scan(&d.ID, &d.Name, &desc, &d.CreatedAt, &d.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrDepartmentNotFound
		}
		return nil, err
	}
	d.Description = helpers.StringPtr(desc)
	return &d, nil
}

// Create inserts a department and returns the stored row
func (r *DepartmentRepository) Create(ctx context.Context, name string, description *string) (*models.Department, error) {
	query := `
		INSERT INTO departments (name, description)
		VALUES ($1, $2)
		RETURNING ` + departmentColumns

	d, err := scanDepartment(r.db.QueryRow(ctx, query, name, helpers.GetNullString(description)))
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrDepartmentAlreadyExists
		}
		return nil, fmt.Errorf("error creating department: %w", err)
	}
	return d, nil
}

// GetByID retrieves a department by ID
func (r *DepartmentRepository) GetByID(ctx context.Context, id string) (*models.Department, error) {
	query := `SELECT ` + departmentColumns + ` FROM departments WHERE id = $1`

	d, err := scanDepartment(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, apperrors.ErrDepartmentNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error retrieving department: %w", err)
	}
	return d, nil
}

// GetAll retrieves all departments ordered by name
func (r *DepartmentRepository) GetAll(ctx context.Context) ([]models.Department, error) {
	rows, err := r.db.Query(ctx, `SELECT `+departmentColumns+` FROM departments ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("error querying departments: %w", err)
	}
	defer rows.Close()

	departments := []models.Department{}
	for rows.Next() {
		d, err := scanDepartment(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning department: %w", err)
		}
		departments = append(departments, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating departments: %w", err)
	}

	return departments, nil
}

// Delete removes a department. Departments still referenced by employees
// are kept by the foreign key and reported as a conflict.
func (r *DepartmentRepository) Delete(ctx context.Context, id string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM departments WHERE id = $1`, id)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrDepartmentHasEmployees
		}
		return fmt.Errorf("error deleting department: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrDepartmentNotFound
	}

	return nil
}
