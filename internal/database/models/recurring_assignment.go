package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// RecurringAssignment represents a fixed weekly schedule entry: the employee
// works the given sector/shift on each weekday in Weekdays (0=Sunday .. 6=Saturday).
// An employee may hold several of these on disjoint (weekday, shift) combinations.
type RecurringAssignment struct {
	BaseModel
	EmployeeID uuid.UUID                `json:"employee_id" gorm:"type:uuid;not null;index" validate:"required"`
	SectorID   uuid.UUID                `json:"sector_id" gorm:"type:uuid;not null;index" validate:"required"`
	ShiftID    uuid.UUID                `json:"shift_id" gorm:"type:uuid;not null;index" validate:"required"`
	Weekdays   datatypes.JSONSlice[int] `json:"weekdays" gorm:"not null" validate:"required,min=1,max=7,dive,min=0,max=6"`

	// Relationships
	Employee Employee `json:"employee,omitempty" gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
	Sector   Sector   `json:"sector,omitempty" gorm:"foreignKey:SectorID"`
	Shift    Shift    `json:"shift,omitempty" gorm:"foreignKey:ShiftID"`
}

// TableName returns the table name for RecurringAssignment
func (RecurringAssignment) TableName() string {
	return "recurring_assignments"
}

// CoversWeekday reports whether the assignment applies on the given weekday index.
func (a *RecurringAssignment) CoversWeekday(weekday int) bool {
	for _, d := range a.Weekdays {
		if d == weekday {
			return true
		}
	}
	return false
}
