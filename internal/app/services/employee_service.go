package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/yigit/personnel/internal/app/models"
	"github.com/yigit/personnel/internal/app/models/dto"
	"github.com/yigit/personnel/internal/app/repositories"
	"github.com/yigit/personnel/internal/pkg/apperrors"
	"github.com/yigit/personnel/internal/pkg/helpers"
	"github.com/yigit/personnel/internal/pkg/logger"
	"github.com/yigit/personnel/internal/pkg/validation"
)

// BaselinePositions are always offered, even before any employee holds them
var BaselinePositions = []string{
	"Программист",
	"Аналитик",
	"Тестировщик",
	"Менеджер по продажам",
	"HR-менеджер",
	"Бухгалтер",
	"Маркетолог",
	"Дизайнер",
	"Системный администратор",
	"Руководитель отдела",
	"Директор",
	"Специалист",
}

// EmployeeStore is the storage used by EmployeeService
type EmployeeStore interface {
	Search(ctx context.Context, f repositories.EmployeeFilter) ([]models.Employee, error)
	GetByDepartment(ctx context.Context, departmentID string) ([]models.Employee, error)
	GetByID(ctx context.Context, id string) (*models.Employee, error)
	Create(ctx context.Context, e *models.Employee) (*models.Employee, error)
	Update(ctx context.Context, e *models.Employee, now time.Time) (*models.Employee, error)
	ApplyChanges(ctx context.Context, id string, changes map[string]interface{}) (*models.Employee, error)
	DistinctPositions(ctx context.Context) ([]string, error)
	CountByStatus(ctx context.Context) (map[string]int, error)
	CountByDepartment(ctx context.Context) (map[string]int, error)
}

// StatsRecorder receives headcount snapshots, e.g. for metrics gauges
type StatsRecorder interface {
	SetEmployeeStats(total int, byStatus map[string]int)
}

// EmployeeService defines the interface for employee operations
type EmployeeService interface {
	CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest) (*models.Employee, error)
	UpdateEmployee(ctx context.Context, id string, req dto.UpdateEmployeeRequest) (*models.Employee, error)
	ChangeStatus(ctx context.Context, id string, status string) (*models.Employee, error)
	GetEmployeeByID(ctx context.Context, id string) (*models.Employee, error)
	GetEmployeesByDepartment(ctx context.Context, departmentID string) ([]models.Employee, error)
	SearchEmployees(ctx context.Context, req dto.SearchEmployeesRequest) ([]models.Employee, error)
	ListPositions(ctx context.Context) ([]string, error)
	GetStats(ctx context.Context) (*models.EmployeeStats, error)
}

// employeeServiceImpl implements the EmployeeService interface
type employeeServiceImpl struct {
	store     EmployeeStore
	validator *validation.Validator
	clock     helpers.Clock
	stats     StatsRecorder
}

// NewEmployeeService creates a new employee service instance. stats may be nil.
func NewEmployeeService(store EmployeeStore, v *validation.Validator, clock helpers.Clock, stats StatsRecorder) EmployeeService {
	if clock == nil {
		clock = helpers.SystemClock{}
	}
	return &employeeServiceImpl{
		store:     store,
		validator: v,
		clock:     clock,
		stats:     stats,
	}
}

// CreateEmployee validates req and stores a new active employee
func (s *employeeServiceImpl) CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest) (*models.Employee, error) {
	req.Normalize()
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	created, err := s.store.Create(ctx, &models.Employee{
		FullName:     req.FullName,
		Gender:       models.Gender(req.Gender),
		Age:          *req.Age,
		Education:    models.Education(req.Education),
		Position:     req.Position,
		Passport:     req.Passport,
		DepartmentID: strings.ToLower(req.DepartmentID),
	})
	if err != nil {
		return nil, err
	}

	logger.Ctx(ctx).Info().Str("employee_id", created.ID).Msg("Employee created")
	return created, nil
}

// UpdateEmployee rewrites the descriptive fields of employee id
func (s *employeeServiceImpl) UpdateEmployee(ctx context.Context, id string, req dto.UpdateEmployeeRequest) (*models.Employee, error) {
	if !validation.IsUUID(id) {
		return nil, apperrors.ErrEmployeeNotFound
	}

	req.Normalize()
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	return s.store.Update(ctx, &models.Employee{
		ID:        id,
		FullName:  req.FullName,
		Gender:    models.Gender(req.Gender),
		Age:       *req.Age,
		Education: models.Education(req.Education),
		Position:  req.Position,
		Passport:  req.Passport,
	}, s.clock.Now())
}

// ChangeStatus moves employee id to status together with its timestamps
func (s *employeeServiceImpl) ChangeStatus(ctx context.Context, id string, status string) (*models.Employee, error) {
	if !validation.IsUUID(id) {
		return nil, apperrors.ErrEmployeeNotFound
	}

	status = strings.TrimSpace(status)
	if status == "" {
		return nil, apperrors.NewValidationError("Status is required")
	}

	updated, err := s.store.ApplyChanges(ctx, id, PlanStatusTransition(status, s.clock.Now()))
	if err != nil {
		return nil, err
	}

	logger.Ctx(ctx).Info().Str("employee_id", id).Str("status", status).Msg("Employee status changed")
	return updated, nil
}

// GetEmployeeByID retrieves one employee
func (s *employeeServiceImpl) GetEmployeeByID(ctx context.Context, id string) (*models.Employee, error) {
	if !validation.IsUUID(id) {
		return nil, apperrors.ErrEmployeeNotFound
	}
	return s.store.GetByID(ctx, id)
}

// GetEmployeesByDepartment lists a department's employees. An unknown or
// malformed department id yields an empty list.
func (s *employeeServiceImpl) GetEmployeesByDepartment(ctx context.Context, departmentID string) ([]models.Employee, error) {
	if !validation.IsUUID(departmentID) {
		return []models.Employee{}, nil
	}
	return s.store.GetByDepartment(ctx, departmentID)
}

// SearchEmployees runs a filtered search
func (s *employeeServiceImpl) SearchEmployees(ctx context.Context, req dto.SearchEmployeesRequest) ([]models.Employee, error) {
	return s.store.Search(ctx, repositories.EmployeeFilter{
		FullName:  req.FullName,
		Position:  req.Position,
		Gender:    req.Gender,
		Education: req.Education,
		AgeFrom:   req.AgeFrom,
		AgeTo:     req.AgeTo,
	})
}

// ListPositions returns the sorted union of the baseline and stored positions
func (s *employeeServiceImpl) ListPositions(ctx context.Context) ([]string, error) {
	stored, err := s.store.DistinctPositions(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving positions: %w", err)
	}
	return mergePositions(BaselinePositions, stored), nil
}

func mergePositions(lists ...[]string) []string {
	seen := make(map[string]struct{})
	var merged []string
	for _, list := range lists {
		for _, p := range list {
			if p = strings.TrimSpace(p); p == "" {
				continue
			}
			if _, dup := seen[p]; dup {
				continue
			}
			seen[p] = struct{}{}
			merged = append(merged, p)
		}
	}
	sort.Strings(merged)
	return merged
}

// GetStats counts employees per status and per department and publishes
// the status snapshot
func (s *employeeServiceImpl) GetStats(ctx context.Context) (*models.EmployeeStats, error) {
	counts, err := s.store.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving employee stats: %w", err)
	}

	stats := &models.EmployeeStats{ByStatus: make(map[string]int, len(models.Statuses))}
	for _, st := range models.Statuses {
		stats.ByStatus[string(st)] = 0
	}
	for status, n := range counts {
		stats.ByStatus[status] = n
		stats.Total += n
	}

	byDepartment, err := s.store.CountByDepartment(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving department headcount: %w", err)
	}
	stats.ByDepartment = byDepartment

	if s.stats != nil {
		s.stats.SetEmployeeStats(stats.Total, stats.ByStatus)
	}
	return stats, nil
}
