package repository

import (
	"pulso-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RecurringAssignmentRepository handles database operations for fixed weekly schedules
type RecurringAssignmentRepository struct {
	db *gorm.DB
}

// NewRecurringAssignmentRepository creates a new recurring assignment repository
func NewRecurringAssignmentRepository(db *gorm.DB) *RecurringAssignmentRepository {
	return &RecurringAssignmentRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *RecurringAssignmentRepository) WithTx(tx *gorm.DB) RecurringAssignmentRepositoryInterface {
	return &RecurringAssignmentRepository{db: tx}
}

// Create creates a new recurring assignment
func (r *RecurringAssignmentRepository) Create(assignment *models.RecurringAssignment) error {
	return r.db.Create(assignment).Error
}

// GetByID retrieves a recurring assignment by ID
func (r *RecurringAssignmentRepository) GetByID(id uuid.UUID) (*models.RecurringAssignment, error) {
	var assignment models.RecurringAssignment
	err := r.db.Preload("Sector").Preload("Shift").First(&assignment, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

// GetByEmployee retrieves all recurring assignments for an employee, oldest first.
// Weekday filtering happens in the service layer since the weekday set is stored
// as a JSON array.
func (r *RecurringAssignmentRepository) GetByEmployee(employeeID uuid.UUID) ([]models.RecurringAssignment, error) {
	var assignments []models.RecurringAssignment
	err := r.db.Preload("Sector").Preload("Shift").
		Where("employee_id = ?", employeeID).
		Order("id ASC").
		Find(&assignments).Error
	return assignments, err
}

// GetByEmployeeAndShift retrieves recurring assignments for an (employee, shift) pair
func (r *RecurringAssignmentRepository) GetByEmployeeAndShift(employeeID, shiftID uuid.UUID) ([]models.RecurringAssignment, error) {
	var assignments []models.RecurringAssignment
	err := r.db.Preload("Sector").Preload("Shift").
		Where("employee_id = ? AND shift_id = ?", employeeID, shiftID).
		Order("id ASC").
		Find(&assignments).Error
	return assignments, err
}

// GetAll retrieves all recurring assignments with their relations
func (r *RecurringAssignmentRepository) GetAll() ([]models.RecurringAssignment, error) {
	var assignments []models.RecurringAssignment
	err := r.db.Preload("Employee").Preload("Sector").Preload("Shift").
		Order("id ASC").
		Find(&assignments).Error
	return assignments, err
}

// Delete deletes a recurring assignment. Deleting a nonexistent ID is not an error.
func (r *RecurringAssignmentRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.RecurringAssignment{}, "id = ?", id).Error
}
