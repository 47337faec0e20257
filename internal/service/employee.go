package service

import (
	"errors"
	"fmt"

	"pulso-backend/internal/database/models"
	apperrors "pulso-backend/internal/errors"
	"pulso-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EmployeeService handles business logic for employee profiles
type EmployeeService struct {
	repo      repository.EmployeeRepositoryInterface
	validator *validator.Validate
}

// NewEmployeeService creates a new employee service
func NewEmployeeService(repo repository.EmployeeRepositoryInterface, validator *validator.Validate) *EmployeeService {
	return &EmployeeService{repo: repo, validator: validator}
}

// CreateEmployeeRequest represents the request to create an employee
type CreateEmployeeRequest struct {
	Name         string      `json:"name" validate:"required,min=1,max=100"`
	Registration string      `json:"registration" validate:"required,min=1,max=20"`
	Role         models.Role `json:"role" validate:"required"`
	BaseSector   string      `json:"base_sector,omitempty"`
}

// UpdateEmployeeRequest represents the request to update an employee
type UpdateEmployeeRequest struct {
	Name       *string      `json:"name,omitempty"`
	Role       *models.Role `json:"role,omitempty"`
	BaseSector *string      `json:"base_sector,omitempty"`
	Active     *bool        `json:"active,omitempty"`
}

// EmployeeResponse represents the response for employee operations
type EmployeeResponse struct {
	ID           uuid.UUID   `json:"id"`
	Name         string      `json:"name"`
	Registration string      `json:"registration"`
	Role         models.Role `json:"role"`
	BaseSector   string      `json:"base_sector,omitempty"`
	Active       bool        `json:"active"`
}

// EmployeeListResponse represents a paginated list of employees
type EmployeeListResponse struct {
	Employees []EmployeeResponse `json:"employees"`
	Total     int64              `json:"total"`
	Page      int                `json:"page"`
	PageSize  int                `json:"page_size"`
}

// Create creates a new employee
func (s *EmployeeService) Create(req *CreateEmployeeRequest) (*EmployeeResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.Role.IsValid() {
		return nil, apperrors.NewValidationError("role", "invalid role")
	}

	existing, err := s.repo.GetByRegistration(req.Registration)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check registration: %w", err)
	}
	if existing != nil {
		return nil, apperrors.NewAlreadyExistsError("employee", "with this registration")
	}

	employee := &models.Employee{
		Name:         req.Name,
		Registration: req.Registration,
		Role:         req.Role,
		BaseSector:   req.BaseSector,
		Active:       true,
	}
	if err := s.repo.Create(employee); err != nil {
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}
	return toEmployeeResponse(employee), nil
}

// GetByID retrieves an employee by ID
func (s *EmployeeService) GetByID(id uuid.UUID) (*EmployeeResponse, error) {
	employee, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}
	return toEmployeeResponse(employee), nil
}

// GetAll retrieves employees ordered by name
func (s *EmployeeService) GetAll(page, pageSize int) (*EmployeeListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	employees, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get employees: %w", err)
	}

	responses := make([]EmployeeResponse, len(employees))
	for i := range employees {
		responses[i] = *toEmployeeResponse(&employees[i])
	}
	return &EmployeeListResponse{
		Employees: responses,
		Total:     total,
		Page:      page,
		PageSize:  pageSize,
	}, nil
}

// Update updates an employee profile
func (s *EmployeeService) Update(id uuid.UUID, req *UpdateEmployeeRequest) (*EmployeeResponse, error) {
	employee, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	if req.Name != nil {
		employee.Name = *req.Name
	}
	if req.Role != nil {
		if !req.Role.IsValid() {
			return nil, apperrors.NewValidationError("role", "invalid role")
		}
		employee.Role = *req.Role
	}
	if req.BaseSector != nil {
		employee.BaseSector = *req.BaseSector
	}
	if req.Active != nil {
		employee.Active = *req.Active
	}

	if err := s.repo.Update(employee); err != nil {
		return nil, fmt.Errorf("failed to update employee: %w", err)
	}
	return toEmployeeResponse(employee), nil
}

// Delete deletes an employee
func (s *EmployeeService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to get employee: %w", err)
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	return nil
}

func toEmployeeResponse(employee *models.Employee) *EmployeeResponse {
	return &EmployeeResponse{
		ID:           employee.ID,
		Name:         employee.Name,
		Registration: employee.Registration,
		Role:         employee.Role,
		BaseSector:   employee.BaseSector,
		Active:       employee.Active,
	}
}
