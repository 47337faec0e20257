package errors

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "employee"}
		assert.Equal(t, "employee not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "sector"}
		err2 := &NotFoundError{Entity: "sector"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		assert.False(t, errors.Is(ErrEmployeeNotFound, ErrShiftNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrSectorNotFound))
		assert.False(t, IsNotFound(ErrInvalidTimeRange))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "employee", Context: "with this registration"}
		assert.Equal(t, "employee already exists with this registration", err.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "sector"}
		assert.Equal(t, "sector already exists", err.Error())
	})

	t.Run("errors.Is comparison by entity", func(t *testing.T) {
		err1 := &AlreadyExistsError{Entity: "sector", Context: "with this name"}
		err2 := &AlreadyExistsError{Entity: "sector"}
		assert.True(t, errors.Is(err1, err2))
		assert.False(t, errors.Is(err1, &AlreadyExistsError{Entity: "employee"}))
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(NewAlreadyExistsError("employee", "with this registration")))
		assert.False(t, IsAlreadyExists(ErrEmployeeNotFound))
	})
}

func TestScheduleConflictError(t *testing.T) {
	t.Run("override conflict names the date", func(t *testing.T) {
		date := time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC)
		err := &ScheduleConflictError{
			EmployeeName: "Maria Silva",
			SectorName:   "Checkout",
			ShiftName:    "Morning",
			Date:         &date,
		}
		assert.Equal(t,
			"Maria Silva is already scheduled in sector Checkout for shift Morning on 2024-06-04",
			err.Error())
	})

	t.Run("recurring conflict names colliding weekdays sorted", func(t *testing.T) {
		err := &ScheduleConflictError{
			EmployeeName: "Joao Santos",
			SectorName:   "Menswear",
			ShiftName:    "Evening",
			Weekdays:     []int{5, 1},
		}
		assert.Equal(t,
			"Joao Santos is already scheduled in sector Menswear for shift Evening on Monday, Friday",
			err.Error())
	})

	t.Run("falls back when neither date nor weekdays set", func(t *testing.T) {
		err := &ScheduleConflictError{EmployeeName: "Ana", SectorName: "Shoes", ShiftName: "Morning"}
		assert.Contains(t, err.Error(), "for the requested period")
	})

	t.Run("errors.Is matches any conflict", func(t *testing.T) {
		err := &ScheduleConflictError{EmployeeName: "Ana"}
		assert.True(t, errors.Is(err, &ScheduleConflictError{}))
	})

	t.Run("IsScheduleConflict helper", func(t *testing.T) {
		assert.True(t, IsScheduleConflict(&ScheduleConflictError{}))
		assert.False(t, IsScheduleConflict(ErrEmployeeNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "weekdays", Message: "must not be empty"}
		assert.Equal(t, "validation error: weekdays - must not be empty", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "bad input"}
		assert.Equal(t, "validation error: bad input", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		assert.True(t, IsValidation(NewValidationError("date", "required")))
		assert.False(t, IsValidation(ErrEmployeeNotFound))
	})
}

func TestAuthorizationError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		assert.Equal(t, "manager role is required for this operation", ErrManagerRoleRequired.Error())
	})

	t.Run("IsAuthorization helper", func(t *testing.T) {
		assert.True(t, IsAuthorization(ErrManagerRoleRequired))
		assert.False(t, IsAuthorization(ErrShiftNotFound))
	})
}

func TestHelperFunctions(t *testing.T) {
	t.Run("NewNotFoundError", func(t *testing.T) {
		err := NewNotFoundError("assignment")
		assert.Equal(t, "assignment not found", err.Error())
		assert.True(t, IsNotFound(err))
	})

	t.Run("NewValidationError", func(t *testing.T) {
		err := NewValidationError("field", "message")
		assert.Equal(t, "validation error: field - message", err.Error())
		assert.True(t, IsValidation(err))
	})
}

func TestBusinessLogicErrors(t *testing.T) {
	assert.Error(t, ErrInvalidTimeRange)
	assert.Error(t, ErrInvalidWeekday)
	assert.Error(t, ErrInvalidAssignmentKind)
	assert.Error(t, ErrEmptyWeekdaySet)
}
