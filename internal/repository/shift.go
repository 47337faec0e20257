package repository

import (
	"pulso-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShiftRepository handles database operations for shifts
type ShiftRepository struct {
	db *gorm.DB
}

// NewShiftRepository creates a new shift repository
func NewShiftRepository(db *gorm.DB) *ShiftRepository {
	return &ShiftRepository{db: db}
}

// Create creates a new shift
func (r *ShiftRepository) Create(shift *models.Shift) error {
	return r.db.Create(shift).Error
}

// GetByID retrieves a shift by ID
func (r *ShiftRepository) GetByID(id uuid.UUID) (*models.Shift, error) {
	var shift models.Shift
	err := r.db.First(&shift, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &shift, nil
}

// GetAll retrieves all shifts ordered by start time
func (r *ShiftRepository) GetAll() ([]models.Shift, error) {
	var shifts []models.Shift
	err := r.db.Order("start_time ASC").Find(&shifts).Error
	return shifts, err
}

// Update updates a shift
func (r *ShiftRepository) Update(shift *models.Shift) error {
	return r.db.Save(shift).Error
}

// Delete deletes a shift
func (r *ShiftRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Shift{}, "id = ?", id).Error
}
