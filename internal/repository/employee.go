package repository

import (
	"pulso-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EmployeeRepository handles database operations for employees
type EmployeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository creates a new employee repository
func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

// Create creates a new employee
func (r *EmployeeRepository) Create(employee *models.Employee) error {
	return r.db.Create(employee).Error
}

// GetByID retrieves an employee by ID
func (r *EmployeeRepository) GetByID(id uuid.UUID) (*models.Employee, error) {
	var employee models.Employee
	err := r.db.First(&employee, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

// GetByRegistration retrieves an employee by registration number
func (r *EmployeeRepository) GetByRegistration(registration string) (*models.Employee, error) {
	var employee models.Employee
	err := r.db.First(&employee, "registration = ?", registration).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

// GetAll retrieves all employees ordered by name
func (r *EmployeeRepository) GetAll(limit, offset int) ([]models.Employee, int64, error) {
	var employees []models.Employee
	var total int64

	if err := r.db.Model(&models.Employee{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("name ASC").Limit(limit).Offset(offset).Find(&employees).Error
	return employees, total, err
}

// GetActive retrieves all active employees ordered by name
func (r *EmployeeRepository) GetActive() ([]models.Employee, error) {
	var employees []models.Employee
	err := r.db.Where("active = ?", true).Order("name ASC").Find(&employees).Error
	return employees, err
}

// Update updates an employee
func (r *EmployeeRepository) Update(employee *models.Employee) error {
	return r.db.Save(employee).Error
}

// Delete deletes an employee
func (r *EmployeeRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Employee{}, "id = ?", id).Error
}
