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

// ShiftService handles business logic for shift definitions
type ShiftService struct {
	repo      repository.ShiftRepositoryInterface
	validator *validator.Validate
}

// NewShiftService creates a new shift service
func NewShiftService(repo repository.ShiftRepositoryInterface, validator *validator.Validate) *ShiftService {
	return &ShiftService{repo: repo, validator: validator}
}

// CreateShiftRequest represents the request to create a shift
type CreateShiftRequest struct {
	Name      string `json:"name" validate:"required,min=1,max=60"`
	StartTime string `json:"start_time" validate:"required"`
	EndTime   string `json:"end_time" validate:"required"`
}

// UpdateShiftRequest represents the request to update a shift
type UpdateShiftRequest struct {
	Name      *string `json:"name,omitempty"`
	StartTime *string `json:"start_time,omitempty"`
	EndTime   *string `json:"end_time,omitempty"`
}

// ShiftResponse represents the response for shift operations
type ShiftResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
}

// Create creates a new shift. The time window must satisfy start < end;
// overnight wraparound is not supported.
func (s *ShiftService) Create(req *CreateShiftRequest) (*ShiftResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := validateTimeWindow(req.StartTime, req.EndTime); err != nil {
		return nil, err
	}

	shift := &models.Shift{
		Name:      req.Name,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}
	if err := s.repo.Create(shift); err != nil {
		return nil, fmt.Errorf("failed to create shift: %w", err)
	}

	return toShiftResponse(shift), nil
}

// GetByID retrieves a shift by ID
func (s *ShiftService) GetByID(id uuid.UUID) (*ShiftResponse, error) {
	shift, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrShiftNotFound
		}
		return nil, fmt.Errorf("failed to get shift: %w", err)
	}
	return toShiftResponse(shift), nil
}

// GetAll retrieves all shifts ordered by start time
func (s *ShiftService) GetAll() ([]ShiftResponse, error) {
	shifts, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get shifts: %w", err)
	}

	responses := make([]ShiftResponse, len(shifts))
	for i := range shifts {
		responses[i] = *toShiftResponse(&shifts[i])
	}
	return responses, nil
}

// Update updates a shift
func (s *ShiftService) Update(id uuid.UUID, req *UpdateShiftRequest) (*ShiftResponse, error) {
	shift, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrShiftNotFound
		}
		return nil, fmt.Errorf("failed to get shift: %w", err)
	}

	if req.Name != nil {
		shift.Name = *req.Name
	}
	if req.StartTime != nil {
		shift.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		shift.EndTime = *req.EndTime
	}
	if err := validateTimeWindow(shift.StartTime, shift.EndTime); err != nil {
		return nil, err
	}

	if err := s.repo.Update(shift); err != nil {
		return nil, fmt.Errorf("failed to update shift: %w", err)
	}
	return toShiftResponse(shift), nil
}

// Delete deletes a shift
func (s *ShiftService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrShiftNotFound
		}
		return fmt.Errorf("failed to get shift: %w", err)
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete shift: %w", err)
	}
	return nil
}

func validateTimeWindow(start, end string) error {
	startMin, err := models.ParseTimeOfDay(start)
	if err != nil {
		return apperrors.NewValidationError("start_time", err.Error())
	}
	endMin, err := models.ParseTimeOfDay(end)
	if err != nil {
		return apperrors.NewValidationError("end_time", err.Error())
	}
	if startMin >= endMin {
		return apperrors.ErrInvalidTimeRange
	}
	return nil
}

func toShiftResponse(shift *models.Shift) *ShiftResponse {
	return &ShiftResponse{
		ID:        shift.ID,
		Name:      shift.Name,
		StartTime: shift.StartTime,
		EndTime:   shift.EndTime,
	}
}
