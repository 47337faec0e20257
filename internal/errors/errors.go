package errors

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ScheduleConflictError represents a double-booking: the employee is already
// scheduled in another sector for the same shift on the same date or weekdays.
// It carries enough detail for the caller to present an actionable message.
type ScheduleConflictError struct {
	EmployeeName string
	SectorName   string // the sector already holding the employee
	ShiftName    string
	Date         *time.Time // set for override conflicts
	Weekdays     []int      // set for recurring conflicts; only the colliding weekdays
}

var weekdayNames = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

func (e *ScheduleConflictError) Error() string {
	var when string
	switch {
	case e.Date != nil:
		when = "on " + e.Date.Format("2006-01-02")
	case len(e.Weekdays) > 0:
		days := append([]int(nil), e.Weekdays...)
		sort.Ints(days)
		names := make([]string, 0, len(days))
		for _, d := range days {
			if d >= 0 && d < len(weekdayNames) {
				names = append(names, weekdayNames[d])
			} else {
				names = append(names, strconv.Itoa(d))
			}
		}
		when = "on " + strings.Join(names, ", ")
	default:
		when = "for the requested period"
	}
	return fmt.Sprintf("%s is already scheduled in sector %s for shift %s %s",
		e.EmployeeName, e.SectorName, e.ShiftName, when)
}

// Is enables errors.Is() comparison for ScheduleConflictError
func (e *ScheduleConflictError) Is(target error) bool {
	_, ok := target.(*ScheduleConflictError)
	return ok
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrEmployeeNotFound            = &NotFoundError{Entity: "employee"}
	ErrSectorNotFound              = &NotFoundError{Entity: "sector"}
	ErrShiftNotFound               = &NotFoundError{Entity: "shift"}
	ErrRecurringAssignmentNotFound = &NotFoundError{Entity: "recurring assignment"}
	ErrOverrideAssignmentNotFound  = &NotFoundError{Entity: "override assignment"}
)

// Business Logic Errors
var (
	ErrInvalidTimeRange      = errors.New("shift start time must be before end time")
	ErrInvalidWeekday        = errors.New("weekday index must be between 0 (Sunday) and 6 (Saturday)")
	ErrInvalidAssignmentKind = errors.New("invalid assignment kind")
	ErrEmptyWeekdaySet       = errors.New("at least one weekday is required")
)

// Authorization Errors
var (
	ErrManagerRoleRequired = &AuthorizationError{Message: "manager role is required for this operation"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsScheduleConflict checks if an error is a ScheduleConflictError
func IsScheduleConflict(err error) bool {
	var conflictErr *ScheduleConflictError
	return errors.As(err, &conflictErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
