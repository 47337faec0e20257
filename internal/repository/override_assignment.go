package repository

import (
	"errors"
	"time"

	"pulso-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OverrideAssignmentRepository handles database operations for one-day schedule overrides
type OverrideAssignmentRepository struct {
	db *gorm.DB
}

// NewOverrideAssignmentRepository creates a new override assignment repository
func NewOverrideAssignmentRepository(db *gorm.DB) *OverrideAssignmentRepository {
	return &OverrideAssignmentRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *OverrideAssignmentRepository) WithTx(tx *gorm.DB) OverrideAssignmentRepositoryInterface {
	return &OverrideAssignmentRepository{db: tx}
}

// Create creates a new override assignment
func (r *OverrideAssignmentRepository) Create(assignment *models.OverrideAssignment) error {
	return r.db.Create(assignment).Error
}

// GetByID retrieves an override assignment by ID
func (r *OverrideAssignmentRepository) GetByID(id uuid.UUID) (*models.OverrideAssignment, error) {
	var assignment models.OverrideAssignment
	err := r.db.Preload("Sector").Preload("Shift").First(&assignment, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

// GetByEmployeeAndDate retrieves all overrides for an employee on a date, oldest first.
// Dates must be truncated to midnight UTC by the caller.
func (r *OverrideAssignmentRepository) GetByEmployeeAndDate(employeeID uuid.UUID, date time.Time) ([]models.OverrideAssignment, error) {
	var assignments []models.OverrideAssignment
	err := r.db.Preload("Sector").Preload("Shift").
		Where("employee_id = ? AND date = ?", employeeID, date).
		Order("id ASC").
		Find(&assignments).Error
	return assignments, err
}

// GetByDate retrieves all overrides for a date with their relations
func (r *OverrideAssignmentRepository) GetByDate(date time.Time) ([]models.OverrideAssignment, error) {
	var assignments []models.OverrideAssignment
	err := r.db.Preload("Employee").Preload("Sector").Preload("Shift").
		Where("date = ?", date).
		Order("id ASC").
		Find(&assignments).Error
	return assignments, err
}

// GetForShift retrieves the override for an (employee, date, shift) triple, or nil
// when none exists. At most one row can match thanks to the unique index.
func (r *OverrideAssignmentRepository) GetForShift(employeeID uuid.UUID, date time.Time, shiftID uuid.UUID) (*models.OverrideAssignment, error) {
	var assignment models.OverrideAssignment
	err := r.db.Preload("Sector").Preload("Shift").
		Where("employee_id = ? AND date = ? AND shift_id = ?", employeeID, date, shiftID).
		First(&assignment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

// Delete deletes an override assignment. Deleting a nonexistent ID is not an error.
func (r *OverrideAssignmentRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.OverrideAssignment{}, "id = ?", id).Error
}
