package models

import (
	"time"

	"github.com/google/uuid"
)

// OverrideAssignment represents a one-day exception to the fixed schedule.
// The unique index on (employee_id, date, shift_id) is the storage-level
// backstop for the no-double-booking invariant under concurrent writers.
type OverrideAssignment struct {
	BaseModel
	EmployeeID  uuid.UUID `json:"employee_id" gorm:"type:uuid;not null;uniqueIndex:idx_override_employee_date_shift;index" validate:"required"`
	SectorID    uuid.UUID `json:"sector_id" gorm:"type:uuid;not null;index" validate:"required"`
	ShiftID     uuid.UUID `json:"shift_id" gorm:"type:uuid;not null;uniqueIndex:idx_override_employee_date_shift" validate:"required"`
	Date        time.Time `json:"date" gorm:"type:date;not null;uniqueIndex:idx_override_employee_date_shift;index" validate:"required"`
	CreatedByID uuid.UUID `json:"created_by_id" gorm:"type:uuid"`

	// Relationships
	Employee  Employee `json:"employee,omitempty" gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
	Sector    Sector   `json:"sector,omitempty" gorm:"foreignKey:SectorID"`
	Shift     Shift    `json:"shift,omitempty" gorm:"foreignKey:ShiftID"`
	CreatedBy Employee `json:"created_by,omitempty" gorm:"foreignKey:CreatedByID"`
}

// TableName returns the table name for OverrideAssignment
func (OverrideAssignment) TableName() string {
	return "override_assignments"
}
