package service

import (
	"errors"
	"fmt"

	"pulso-backend/internal/database/models"
	apperrors "pulso-backend/internal/errors"
	"pulso-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SectorService handles business logic for store sectors
type SectorService struct {
	repo      repository.SectorRepositoryInterface
	validator *validator.Validate
}

// NewSectorService creates a new sector service
func NewSectorService(repo repository.SectorRepositoryInterface, validator *validator.Validate) *SectorService {
	return &SectorService{repo: repo, validator: validator}
}

// CreateSectorRequest represents the request to create a sector
type CreateSectorRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=60"`
	Color string `json:"color" validate:"required,max=9"`
}

// UpdateSectorRequest represents the request to update a sector
type UpdateSectorRequest struct {
	Name   *string `json:"name,omitempty"`
	Color  *string `json:"color,omitempty"`
	Active *bool   `json:"active,omitempty"`
}

// SectorResponse represents the response for sector operations
type SectorResponse struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Color  string    `json:"color"`
	Active bool      `json:"active"`
}

// Create creates a new sector
func (s *SectorService) Create(req *CreateSectorRequest) (*SectorResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	existing, err := s.repo.GetByName(req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check sector name: %w", err)
	}
	if existing != nil {
		return nil, apperrors.NewAlreadyExistsError("sector", "with this name")
	}

	sector := &models.Sector{
		Name:   req.Name,
		Color:  req.Color,
		Active: true,
	}
	if err := s.repo.Create(sector); err != nil {
		return nil, fmt.Errorf("failed to create sector: %w", err)
	}
	return toSectorResponse(sector), nil
}

// GetByID retrieves a sector by ID
func (s *SectorService) GetByID(id uuid.UUID) (*SectorResponse, error) {
	sector, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSectorNotFound
		}
		return nil, fmt.Errorf("failed to get sector: %w", err)
	}
	return toSectorResponse(sector), nil
}

// GetAll retrieves all sectors ordered by name. When activeOnly is set,
// deactivated sectors are excluded (the new-assignment selection source);
// historical assignments referencing them remain resolvable either way.
func (s *SectorService) GetAll(activeOnly bool) ([]SectorResponse, error) {
	var (
		sectors []models.Sector
		err     error
	)
	if activeOnly {
		sectors, err = s.repo.GetActive()
	} else {
		sectors, err = s.repo.GetAll()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get sectors: %w", err)
	}

	responses := make([]SectorResponse, len(sectors))
	for i := range sectors {
		responses[i] = *toSectorResponse(&sectors[i])
	}
	return responses, nil
}

// Update updates a sector; setting Active=false is the preferred way to
// retire a sector
func (s *SectorService) Update(id uuid.UUID, req *UpdateSectorRequest) (*SectorResponse, error) {
	sector, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSectorNotFound
		}
		return nil, fmt.Errorf("failed to get sector: %w", err)
	}

	if req.Name != nil {
		sector.Name = *req.Name
	}
	if req.Color != nil {
		sector.Color = *req.Color
	}
	if req.Active != nil {
		sector.Active = *req.Active
	}

	if err := s.repo.Update(sector); err != nil {
		return nil, fmt.Errorf("failed to update sector: %w", err)
	}
	return toSectorResponse(sector), nil
}

// Delete deletes a sector
func (s *SectorService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrSectorNotFound
		}
		return fmt.Errorf("failed to get sector: %w", err)
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete sector: %w", err)
	}
	return nil
}

func toSectorResponse(sector *models.Sector) *SectorResponse {
	return &SectorResponse{
		ID:     sector.ID,
		Name:   sector.Name,
		Color:  sector.Color,
		Active: sector.Active,
	}
}
