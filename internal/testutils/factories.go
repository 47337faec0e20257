package testutils

import (
	"time"

	"pulso-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// EmployeeFactory provides methods to create test Employee data
type EmployeeFactory struct{}

// NewEmployeeFactory creates a new EmployeeFactory
func NewEmployeeFactory() *EmployeeFactory {
	return &EmployeeFactory{}
}

// Create creates a test Employee with default values
func (f *EmployeeFactory) Create() *models.Employee {
	id := uuid.New()
	// Generate unique registration using part of UUID to avoid conflicts
	registration := "C" + id.String()[:6]

	return &models.Employee{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:         "Maria Silva",
		Registration: registration,
		Role:         models.RoleAssistant,
		BaseSector:   "Menswear",
		Active:       true,
	}
}

// WithName sets a custom name for the employee
func (f *EmployeeFactory) WithName(name string) *models.Employee {
	employee := f.Create()
	employee.Name = name
	return employee
}

// WithRole sets a custom role for the employee
func (f *EmployeeFactory) WithRole(role models.Role) *models.Employee {
	employee := f.Create()
	employee.Role = role
	return employee
}

// SectorFactory provides methods to create test Sector data
type SectorFactory struct{}

// NewSectorFactory creates a new SectorFactory
func NewSectorFactory() *SectorFactory {
	return &SectorFactory{}
}

// Create creates a test Sector with default values
func (f *SectorFactory) Create() *models.Sector {
	id := uuid.New()

	return &models.Sector{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:   "Sector " + id.String()[:6],
		Color:  "#3B82F6",
		Active: true,
	}
}

// WithName sets a custom name for the sector
func (f *SectorFactory) WithName(name string) *models.Sector {
	sector := f.Create()
	sector.Name = name
	return sector
}

// ShiftFactory provides methods to create test Shift data
type ShiftFactory struct{}

// NewShiftFactory creates a new ShiftFactory
func NewShiftFactory() *ShiftFactory {
	return &ShiftFactory{}
}

// Create creates a test Shift with default values
func (f *ShiftFactory) Create() *models.Shift {
	id := uuid.New()

	return &models.Shift{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:      "Shift " + id.String()[:6],
		StartTime: "09:00",
		EndTime:   "17:00",
	}
}

// WithTimes sets custom start and end times for the shift
func (f *ShiftFactory) WithTimes(start, end string) *models.Shift {
	shift := f.Create()
	shift.StartTime = start
	shift.EndTime = end
	return shift
}

// RecurringAssignmentFactory provides methods to create test RecurringAssignment data
type RecurringAssignmentFactory struct{}

// NewRecurringAssignmentFactory creates a new RecurringAssignmentFactory
func NewRecurringAssignmentFactory() *RecurringAssignmentFactory {
	return &RecurringAssignmentFactory{}
}

// Create creates a test RecurringAssignment covering Monday through Friday
func (f *RecurringAssignmentFactory) Create(employeeID, sectorID, shiftID uuid.UUID) *models.RecurringAssignment {
	return &models.RecurringAssignment{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		EmployeeID: employeeID,
		SectorID:   sectorID,
		ShiftID:    shiftID,
		Weekdays:   datatypes.JSONSlice[int]{1, 2, 3, 4, 5},
	}
}

// WithWeekdays sets a custom weekday set for the assignment
func (f *RecurringAssignmentFactory) WithWeekdays(employeeID, sectorID, shiftID uuid.UUID, weekdays []int) *models.RecurringAssignment {
	assignment := f.Create(employeeID, sectorID, shiftID)
	assignment.Weekdays = datatypes.JSONSlice[int](weekdays)
	return assignment
}

// OverrideAssignmentFactory provides methods to create test OverrideAssignment data
type OverrideAssignmentFactory struct{}

// NewOverrideAssignmentFactory creates a new OverrideAssignmentFactory
func NewOverrideAssignmentFactory() *OverrideAssignmentFactory {
	return &OverrideAssignmentFactory{}
}

// Create creates a test OverrideAssignment for the given date
func (f *OverrideAssignmentFactory) Create(employeeID, sectorID, shiftID uuid.UUID, date time.Time) *models.OverrideAssignment {
	return &models.OverrideAssignment{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		EmployeeID: employeeID,
		SectorID:   sectorID,
		ShiftID:    shiftID,
		Date:       date,
	}
}
