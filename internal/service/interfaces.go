package service

import (
	"time"

	"pulso-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// ScheduleServiceInterface defines the interface for schedule resolution and
// assignment management
type ScheduleServiceInterface interface {
	ResolveDay(employeeID uuid.UUID, date time.Time) (*ResolvedDayResponse, error)
	ResolveWeek(employeeID uuid.UUID, weekStart time.Time) ([]WeekDayResponse, error)
	ResolveSectorRoster(date time.Time) (*SectorRosterResponse, error)
	ValidateNewAssignment(req *ValidateAssignmentRequest) error
	CreateOverride(req *CreateOverrideRequest) (*AssignmentResponse, error)
	CreateRecurring(req *CreateRecurringRequest) (*AssignmentResponse, error)
	DeleteAssignment(kind models.AssignmentKind, id uuid.UUID) error
	ListRecurringAssignments() ([]AssignmentResponse, error)
	ListOverridesByDate(date time.Time) ([]AssignmentResponse, error)
}

// ShiftServiceInterface defines the interface for shift operations
type ShiftServiceInterface interface {
	Create(req *CreateShiftRequest) (*ShiftResponse, error)
	GetByID(id uuid.UUID) (*ShiftResponse, error)
	GetAll() ([]ShiftResponse, error)
	Update(id uuid.UUID, req *UpdateShiftRequest) (*ShiftResponse, error)
	Delete(id uuid.UUID) error
}

// SectorServiceInterface defines the interface for sector operations
type SectorServiceInterface interface {
	Create(req *CreateSectorRequest) (*SectorResponse, error)
	GetByID(id uuid.UUID) (*SectorResponse, error)
	GetAll(activeOnly bool) ([]SectorResponse, error)
	Update(id uuid.UUID, req *UpdateSectorRequest) (*SectorResponse, error)
	Delete(id uuid.UUID) error
}

// EmployeeServiceInterface defines the interface for employee operations
type EmployeeServiceInterface interface {
	Create(req *CreateEmployeeRequest) (*EmployeeResponse, error)
	GetByID(id uuid.UUID) (*EmployeeResponse, error)
	GetAll(page, pageSize int) (*EmployeeListResponse, error)
	Update(id uuid.UUID, req *UpdateEmployeeRequest) (*EmployeeResponse, error)
	Delete(id uuid.UUID) error
}
