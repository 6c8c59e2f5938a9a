package services

import (
	"context"
	"strings"

	"github.com/yigit/personnel/internal/app/models"
	"github.com/yigit/personnel/internal/app/models/dto"
	"github.com/yigit/personnel/internal/pkg/apperrors"
	"github.com/yigit/personnel/internal/pkg/logger"
	"github.com/yigit/personnel/internal/pkg/validation"
)

// DepartmentStore is the storage used by DepartmentService
type DepartmentStore interface {
	GetAll(ctx context.Context) ([]models.Department, error)
	GetByID(ctx context.Context, id string) (*models.Department, error)
	Create(ctx context.Context, name string, description *string) (*models.Department, error)
	Delete(ctx context.Context, id string) error
}

// DepartmentService defines the interface for department operations
type DepartmentService interface {
	GetAllDepartments(ctx context.Context) ([]models.Department, error)
	GetDepartmentByID(ctx context.Context, id string) (*models.Department, error)
	CreateDepartment(ctx context.Context, req dto.CreateDepartmentRequest) (*models.Department, error)
	DeleteDepartment(ctx context.Context, id string) error
}

type departmentServiceImpl struct {
	store     DepartmentStore
	validator *validation.Validator
}

// NewDepartmentService creates a new department service instance
func NewDepartmentService(store DepartmentStore, v *validation.Validator) DepartmentService {
	return &departmentServiceImpl{store: store, validator: v}
}

// GetAllDepartments lists departments ordered by name
func (s *departmentServiceImpl) GetAllDepartments(ctx context.Context) ([]models.Department, error) {
	return s.store.GetAll(ctx)
}

// GetDepartmentByID retrieves a department by ID
func (s *departmentServiceImpl) GetDepartmentByID(ctx context.Context, id string) (*models.Department, error) {
	if !validation.IsUUID(id) {
		return nil, apperrors.ErrDepartmentNotFound
	}
	return s.store.GetByID(ctx, id)
}

// CreateDepartment creates a new department
func (s *departmentServiceImpl) CreateDepartment(ctx context.Context, req dto.CreateDepartmentRequest) (*models.Department, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	d, err := s.store.Create(ctx, req.Name, req.Description)
	if err != nil {
		return nil, err
	}

	logger.Ctx(ctx).Info().Str("department_id", d.ID).Msg("Department created")
	return d, nil
}

// DeleteDepartment removes a department without employees
func (s *departmentServiceImpl) DeleteDepartment(ctx context.Context, id string) error {
	if !validation.IsUUID(id) {
		return apperrors.ErrDepartmentNotFound
	}
	return s.store.Delete(ctx, id)
}
