package repository

import (
	"time"

	"pulso-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// EmployeeRepositoryInterface defines the interface for employee repository operations
type EmployeeRepositoryInterface interface {
	Create(employee *models.Employee) error
	GetByID(id uuid.UUID) (*models.Employee, error)
	GetByRegistration(registration string) (*models.Employee, error)
	GetAll(limit, offset int) ([]models.Employee, int64, error)
	GetActive() ([]models.Employee, error)
	Update(employee *models.Employee) error
	Delete(id uuid.UUID) error
}

// SectorRepositoryInterface defines the interface for sector repository operations
type SectorRepositoryInterface interface {
	Create(sector *models.Sector) error
	GetByID(id uuid.UUID) (*models.Sector, error)
	GetByName(name string) (*models.Sector, error)
	GetAll() ([]models.Sector, error)
	GetActive() ([]models.Sector, error)
	Update(sector *models.Sector) error
	Delete(id uuid.UUID) error
}

// ShiftRepositoryInterface defines the interface for shift repository operations
type ShiftRepositoryInterface interface {
	Create(shift *models.Shift) error
	GetByID(id uuid.UUID) (*models.Shift, error)
	GetAll() ([]models.Shift, error)
	Update(shift *models.Shift) error
	Delete(id uuid.UUID) error
}

// RecurringAssignmentRepositoryInterface defines the interface for fixed schedule operations
type RecurringAssignmentRepositoryInterface interface {
	WithTx(tx *gorm.DB) RecurringAssignmentRepositoryInterface
	Create(assignment *models.RecurringAssignment) error
	GetByID(id uuid.UUID) (*models.RecurringAssignment, error)
	GetByEmployee(employeeID uuid.UUID) ([]models.RecurringAssignment, error)
	GetByEmployeeAndShift(employeeID, shiftID uuid.UUID) ([]models.RecurringAssignment, error)
	GetAll() ([]models.RecurringAssignment, error)
	Delete(id uuid.UUID) error
}

// OverrideAssignmentRepositoryInterface defines the interface for one-day override operations
type OverrideAssignmentRepositoryInterface interface {
	WithTx(tx *gorm.DB) OverrideAssignmentRepositoryInterface
	Create(assignment *models.OverrideAssignment) error
	GetByID(id uuid.UUID) (*models.OverrideAssignment, error)
	GetByEmployeeAndDate(employeeID uuid.UUID, date time.Time) ([]models.OverrideAssignment, error)
	GetByDate(date time.Time) ([]models.OverrideAssignment, error)
	GetForShift(employeeID uuid.UUID, date time.Time, shiftID uuid.UUID) (*models.OverrideAssignment, error)
	Delete(id uuid.UUID) error
}
