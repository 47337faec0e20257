package repository

import (
	"pulso-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SectorRepository handles database operations for sectors
type SectorRepository struct {
	db *gorm.DB
}

// NewSectorRepository creates a new sector repository
func NewSectorRepository(db *gorm.DB) *SectorRepository {
	return &SectorRepository{db: db}
}

// Create creates a new sector
func (r *SectorRepository) Create(sector *models.Sector) error {
	return r.db.Create(sector).Error
}

// GetByID retrieves a sector by ID
func (r *SectorRepository) GetByID(id uuid.UUID) (*models.Sector, error) {
	var sector models.Sector
	err := r.db.First(&sector, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &sector, nil
}

// GetByName retrieves a sector by name
func (r *SectorRepository) GetByName(name string) (*models.Sector, error) {
	var sector models.Sector
	err := r.db.First(&sector, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &sector, nil
}

// GetAll retrieves all sectors ordered by name
func (r *SectorRepository) GetAll() ([]models.Sector, error) {
	var sectors []models.Sector
	err := r.db.Order("name ASC").Find(&sectors).Error
	return sectors, err
}

// GetActive retrieves active sectors ordered by name
func (r *SectorRepository) GetActive() ([]models.Sector, error) {
	var sectors []models.Sector
	err := r.db.Where("active = ?", true).Order("name ASC").Find(&sectors).Error
	return sectors, err
}

// Update updates a sector
func (r *SectorRepository) Update(sector *models.Sector) error {
	return r.db.Save(sector).Error
}

// Delete deletes a sector
func (r *SectorRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Sector{}, "id = ?", id).Error
}
