package handlers

import (
	"errors"
	"net/http"

	apperrors "pulso-backend/internal/errors"
	"pulso-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// respondError maps service errors to HTTP responses. Conflict responses keep
// the full detail (who, which sector, when) so callers can act on them.
func respondError(c *gin.Context, err error) {
	var conflictErr *apperrors.ScheduleConflictError
	if errors.As(err, &conflictErr) {
		payload := gin.H{
			"error":  conflictErr.Error(),
			"sector": conflictErr.SectorName,
			"shift":  conflictErr.ShiftName,
		}
		if conflictErr.Date != nil {
			payload["date"] = conflictErr.Date.Format("2006-01-02")
		}
		if len(conflictErr.Weekdays) > 0 {
			payload["weekdays"] = conflictErr.Weekdays
		}
		c.JSON(http.StatusConflict, payload)
		return
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "details": validationErrs.Error()})
		return
	}

	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsAlreadyExists(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case apperrors.IsValidation(err),
		errors.Is(err, apperrors.ErrInvalidTimeRange),
		errors.Is(err, apperrors.ErrInvalidWeekday),
		errors.Is(err, apperrors.ErrInvalidAssignmentKind),
		errors.Is(err, apperrors.ErrEmptyWeekdaySet):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperrors.IsAuthorization(err):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		logger.New().WithField("request_id", c.GetString("request_id")).WithError(err).Error("unhandled service error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error", "details": err.Error()})
	}
}
