package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"pulso-backend/internal/database/models"
	apperrors "pulso-backend/internal/errors"
	"pulso-backend/internal/logger"
	"pulso-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ScheduleService resolves effective day assignments and validates new ones.
// Resolution precedence: an override assignment for the exact date wins over
// a recurring assignment matching the date's weekday; with neither, the
// employee is unassigned for the day. All methods take the reference date
// explicitly; the service never reads the system clock.
type ScheduleService struct {
	db            *gorm.DB
	employeeRepo  repository.EmployeeRepositoryInterface
	sectorRepo    repository.SectorRepositoryInterface
	shiftRepo     repository.ShiftRepositoryInterface
	recurringRepo repository.RecurringAssignmentRepositoryInterface
	overrideRepo  repository.OverrideAssignmentRepositoryInterface
	validator     *validator.Validate
}

// NewScheduleService creates a new schedule service
func NewScheduleService(
	db *gorm.DB,
	employeeRepo repository.EmployeeRepositoryInterface,
	sectorRepo repository.SectorRepositoryInterface,
	shiftRepo repository.ShiftRepositoryInterface,
	recurringRepo repository.RecurringAssignmentRepositoryInterface,
	overrideRepo repository.OverrideAssignmentRepositoryInterface,
	validator *validator.Validate,
) *ScheduleService {
	return &ScheduleService{
		db:            db,
		employeeRepo:  employeeRepo,
		sectorRepo:    sectorRepo,
		shiftRepo:     shiftRepo,
		recurringRepo: recurringRepo,
		overrideRepo:  overrideRepo,
		validator:     validator,
	}
}

// ResolvedDayResponse is the effective assignment of one employee on one date
type ResolvedDayResponse struct {
	AssignmentID uuid.UUID             `json:"assignment_id"`
	Kind         models.AssignmentKind `json:"kind"`
	Date         string                `json:"date"`
	EmployeeID   uuid.UUID             `json:"employee_id"`
	SectorID     uuid.UUID             `json:"sector_id"`
	SectorName   string                `json:"sector_name"`
	SectorColor  string                `json:"sector_color"`
	ShiftID      uuid.UUID             `json:"shift_id"`
	ShiftName    string                `json:"shift_name"`
	ShiftStart   string                `json:"shift_start"`
	ShiftEnd     string                `json:"shift_end"`
}

// WeekDayResponse is one day of an employee's weekly view; Schedule is nil on
// days off
type WeekDayResponse struct {
	Date     string               `json:"date"`
	Weekday  int                  `json:"weekday"`
	Schedule *ResolvedDayResponse `json:"schedule"`
}

// RosterEntryResponse is one employee's effective assignment in the day roster
type RosterEntryResponse struct {
	ResolvedDayResponse
	EmployeeName         string `json:"employee_name"`
	EmployeeRegistration string `json:"employee_registration"`
}

// SectorRosterGroup lists the employees effectively assigned to one sector
type SectorRosterGroup struct {
	SectorID    uuid.UUID             `json:"sector_id"`
	SectorName  string                `json:"sector_name"`
	SectorColor string                `json:"sector_color"`
	Entries     []RosterEntryResponse `json:"entries"`
}

// SectorRosterResponse is the full roster for one date, grouped by sector
type SectorRosterResponse struct {
	Date    string              `json:"date"`
	Sectors []SectorRosterGroup `json:"sectors"`
}

// CreateOverrideRequest represents the request to create a one-day override
type CreateOverrideRequest struct {
	EmployeeID  uuid.UUID `json:"employee_id" validate:"required"`
	SectorID    uuid.UUID `json:"sector_id" validate:"required"`
	ShiftID     uuid.UUID `json:"shift_id" validate:"required"`
	Date        time.Time `json:"date" validate:"required"`
	CreatedByID uuid.UUID `json:"created_by_id,omitempty"`
}

// CreateRecurringRequest represents the request to create a fixed weekly assignment
type CreateRecurringRequest struct {
	EmployeeID uuid.UUID `json:"employee_id" validate:"required"`
	SectorID   uuid.UUID `json:"sector_id" validate:"required"`
	ShiftID    uuid.UUID `json:"shift_id" validate:"required"`
	Weekdays   []int     `json:"weekdays" validate:"required,min=1,max=7"`
}

// ValidateAssignmentRequest carries a proposed assignment of either kind.
// Date is required for overrides, Weekdays for recurring assignments.
type ValidateAssignmentRequest struct {
	Kind       models.AssignmentKind `json:"kind" validate:"required"`
	EmployeeID uuid.UUID             `json:"employee_id" validate:"required"`
	SectorID   uuid.UUID             `json:"sector_id" validate:"required"`
	ShiftID    uuid.UUID             `json:"shift_id" validate:"required"`
	Date       *time.Time            `json:"date,omitempty"`
	Weekdays   []int                 `json:"weekdays,omitempty"`
}

// AssignmentResponse represents a persisted assignment of either kind
type AssignmentResponse struct {
	ID           uuid.UUID             `json:"id"`
	Kind         models.AssignmentKind `json:"kind"`
	EmployeeID   uuid.UUID             `json:"employee_id"`
	EmployeeName string                `json:"employee_name,omitempty"`
	SectorID     uuid.UUID             `json:"sector_id"`
	SectorName   string                `json:"sector_name,omitempty"`
	ShiftID      uuid.UUID             `json:"shift_id"`
	ShiftName    string                `json:"shift_name,omitempty"`
	Date         string                `json:"date,omitempty"`
	Weekdays     []int                 `json:"weekdays,omitempty"`
	CreatedAt    string                `json:"created_at"`
}

// ResolveDay computes the effective assignment for an employee on a date.
// Returns (nil, nil) when the employee is unassigned that day.
func (s *ScheduleService) ResolveDay(employeeID uuid.UUID, date time.Time) (*ResolvedDayResponse, error) {
	if _, err := s.getEmployee(employeeID); err != nil {
		return nil, err
	}
	return s.resolveDayUnchecked(employeeID, dateOnly(date))
}

// resolveDayUnchecked resolves without re-verifying the employee reference.
// date must already be truncated to midnight UTC.
func (s *ScheduleService) resolveDayUnchecked(employeeID uuid.UUID, date time.Time) (*ResolvedDayResponse, error) {
	overrides, err := s.overrideRepo.GetByEmployeeAndDate(employeeID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query overrides: %w", err)
	}
	if o := pickOverride(overrides); o != nil {
		return overrideToResolved(o, date), nil
	}

	assignments, err := s.recurringRepo.GetByEmployee(employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query recurring assignments: %w", err)
	}
	if a := pickRecurring(assignments, int(date.Weekday())); a != nil {
		return recurringToResolved(a, employeeID, date), nil
	}

	return nil, nil
}

// ResolveWeek computes the effective assignment for each of the 7 days
// starting at weekStart
func (s *ScheduleService) ResolveWeek(employeeID uuid.UUID, weekStart time.Time) ([]WeekDayResponse, error) {
	if _, err := s.getEmployee(employeeID); err != nil {
		return nil, err
	}

	start := dateOnly(weekStart)
	week := make([]WeekDayResponse, 0, 7)
	for i := 0; i < 7; i++ {
		day := start.AddDate(0, 0, i)
		resolved, err := s.resolveDayUnchecked(employeeID, day)
		if err != nil {
			return nil, err
		}
		week = append(week, WeekDayResponse{
			Date:     day.Format("2006-01-02"),
			Weekday:  int(day.Weekday()),
			Schedule: resolved,
		})
	}
	return week, nil
}

// ResolveSectorRoster computes the effective assignment of every employee on a
// date and groups the result by sector. Employees whose override and recurring
// entries both match appear only under the override's sector; employees with
// neither, and deactivated employees, are absent from the roster.
func (s *ScheduleService) ResolveSectorRoster(date time.Time) (*SectorRosterResponse, error) {
	day := dateOnly(date)
	weekday := int(day.Weekday())

	overrides, err := s.overrideRepo.GetByDate(day)
	if err != nil {
		return nil, fmt.Errorf("failed to query overrides: %w", err)
	}
	recurring, err := s.recurringRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to query recurring assignments: %w", err)
	}

	// Deactivated employees keep their assignment rows but drop off the roster.
	activeEmployees, err := s.employeeRepo.GetActive()
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	active := make(map[uuid.UUID]bool, len(activeEmployees))
	for _, e := range activeEmployees {
		active[e.ID] = true
	}

	overridesByEmployee := make(map[uuid.UUID][]models.OverrideAssignment)
	for _, o := range overrides {
		if !active[o.EmployeeID] {
			continue
		}
		overridesByEmployee[o.EmployeeID] = append(overridesByEmployee[o.EmployeeID], o)
	}
	recurringByEmployee := make(map[uuid.UUID][]models.RecurringAssignment)
	for _, a := range recurring {
		if !active[a.EmployeeID] {
			continue
		}
		recurringByEmployee[a.EmployeeID] = append(recurringByEmployee[a.EmployeeID], a)
	}

	groups := make(map[uuid.UUID]*SectorRosterGroup)

	appendEntry := func(sector models.Sector, employee models.Employee, resolved *ResolvedDayResponse) {
		group, ok := groups[sector.ID]
		if !ok {
			group = &SectorRosterGroup{
				SectorID:    sector.ID,
				SectorName:  sector.Name,
				SectorColor: sector.Color,
			}
			groups[sector.ID] = group
		}
		group.Entries = append(group.Entries, RosterEntryResponse{
			ResolvedDayResponse:  *resolved,
			EmployeeName:         employee.Name,
			EmployeeRegistration: employee.Registration,
		})
	}

	seen := make(map[uuid.UUID]bool)
	for employeeID, candidates := range overridesByEmployee {
		o := pickOverride(candidates)
		seen[employeeID] = true
		appendEntry(o.Sector, o.Employee, overrideToResolved(o, day))
	}
	for employeeID, candidates := range recurringByEmployee {
		if seen[employeeID] {
			// override wins; the recurring entry is suppressed for this date
			continue
		}
		a := pickRecurring(candidates, weekday)
		if a == nil {
			continue
		}
		appendEntry(a.Sector, a.Employee, recurringToResolved(a, employeeID, day))
	}

	response := &SectorRosterResponse{Date: day.Format("2006-01-02")}
	for _, group := range groups {
		sort.Slice(group.Entries, func(i, j int) bool {
			a, b := group.Entries[i], group.Entries[j]
			if a.ShiftStart != b.ShiftStart {
				return a.ShiftStart < b.ShiftStart
			}
			return a.EmployeeName < b.EmployeeName
		})
		response.Sectors = append(response.Sectors, *group)
	}
	sort.Slice(response.Sectors, func(i, j int) bool {
		return response.Sectors[i].SectorName < response.Sectors[j].SectorName
	})

	return response, nil
}

// ValidateNewAssignment checks a proposed assignment against the
// no-double-booking invariant without writing anything. Malformed input is
// rejected before any store access.
func (s *ScheduleService) ValidateNewAssignment(req *ValidateAssignmentRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	if !req.Kind.IsValid() {
		return apperrors.ErrInvalidAssignmentKind
	}

	switch req.Kind {
	case models.AssignmentKindOverride:
		if req.Date == nil {
			return apperrors.NewValidationError("date", "date is required for override assignments")
		}
		employee, _, shift, err := s.references(req.EmployeeID, req.SectorID, req.ShiftID)
		if err != nil {
			return err
		}
		return s.checkOverrideConflict(s.overrideRepo, employee, shift, req.SectorID, dateOnly(*req.Date))

	default: // models.AssignmentKindRecurring
		if err := validateWeekdaySet(req.Weekdays); err != nil {
			return err
		}
		employee, _, shift, err := s.references(req.EmployeeID, req.SectorID, req.ShiftID)
		if err != nil {
			return err
		}
		_, err = s.checkRecurringConflict(s.recurringRepo, employee, shift, req.SectorID, req.Weekdays)
		return err
	}
}

// CreateOverride validates and inserts a one-day override in a single
// transaction. Re-submitting an identical (employee, sector, shift, date)
// tuple is an idempotent no-op returning the existing assignment.
func (s *ScheduleService) CreateOverride(req *CreateOverrideRequest) (*AssignmentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	employee, sector, shift, err := s.references(req.EmployeeID, req.SectorID, req.ShiftID)
	if err != nil {
		return nil, err
	}

	date := dateOnly(req.Date)
	var result *models.OverrideAssignment
	created := false

	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		repo := s.overrideRepo.WithTx(tx)

		existing, err := repo.GetForShift(req.EmployeeID, date, req.ShiftID)
		if err != nil {
			return fmt.Errorf("failed to check existing override: %w", err)
		}
		if existing != nil {
			if existing.SectorID == req.SectorID {
				// idempotent re-submit
				result = existing
				return nil
			}
			return &apperrors.ScheduleConflictError{
				EmployeeName: employee.Name,
				SectorName:   existing.Sector.Name,
				ShiftName:    shift.Name,
				Date:         &date,
			}
		}

		assignment := &models.OverrideAssignment{
			EmployeeID:  req.EmployeeID,
			SectorID:    req.SectorID,
			ShiftID:     req.ShiftID,
			Date:        date,
			CreatedByID: req.CreatedByID,
		}
		if err := repo.Create(assignment); err != nil {
			return fmt.Errorf("failed to create override assignment: %w", err)
		}
		result = assignment
		created = true
		return nil
	})
	if txErr != nil {
		if errors.Is(txErr, gorm.ErrDuplicatedKey) {
			// A concurrent writer won the unique index race. The transaction is
			// aborted at this point, so re-read the winning row outside it to
			// report which sector holds the employee.
			winner, err := s.overrideRepo.GetForShift(req.EmployeeID, date, req.ShiftID)
			if err == nil && winner != nil && winner.SectorID == req.SectorID {
				// the concurrent write was the identical tuple
				result = winner
			} else {
				conflict := &apperrors.ScheduleConflictError{
					EmployeeName: employee.Name,
					SectorName:   "another sector",
					ShiftName:    shift.Name,
					Date:         &date,
				}
				if err == nil && winner != nil {
					conflict.SectorName = winner.Sector.Name
				}
				return nil, conflict
			}
		} else {
			return nil, txErr
		}
	}

	if created {
		logger.New().WithFields(map[string]interface{}{
			"employee": employee.Registration,
			"sector":   sector.Name,
			"shift":    shift.Name,
			"date":     date.Format("2006-01-02"),
		}).Info("Override assignment created")
	}

	resp := overrideToAssignment(result)
	resp.EmployeeName = employee.Name
	resp.SectorName = sector.Name
	resp.ShiftName = shift.Name
	return resp, nil
}

// CreateRecurring validates and inserts a fixed weekly assignment in a single
// transaction. A weekday overlap with another sector on the same shift is a
// conflict naming the colliding weekdays; an existing same-sector assignment
// already covering every requested weekday is an idempotent no-op.
func (s *ScheduleService) CreateRecurring(req *CreateRecurringRequest) (*AssignmentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := validateWeekdaySet(req.Weekdays); err != nil {
		return nil, err
	}

	employee, sector, shift, err := s.references(req.EmployeeID, req.SectorID, req.ShiftID)
	if err != nil {
		return nil, err
	}

	var result *models.RecurringAssignment
	created := false

	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		repo := s.recurringRepo.WithTx(tx)

		duplicate, err := s.checkRecurringConflict(repo, employee, shift, req.SectorID, req.Weekdays)
		if err != nil {
			return err
		}
		if duplicate != nil {
			result = duplicate
			return nil
		}

		assignment := &models.RecurringAssignment{
			EmployeeID: req.EmployeeID,
			SectorID:   req.SectorID,
			ShiftID:    req.ShiftID,
			Weekdays:   normalizeWeekdays(req.Weekdays),
		}
		if err := repo.Create(assignment); err != nil {
			return fmt.Errorf("failed to create recurring assignment: %w", err)
		}
		result = assignment
		created = true
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	if created {
		logger.New().WithFields(map[string]interface{}{
			"employee": employee.Registration,
			"sector":   sector.Name,
			"shift":    shift.Name,
			"weekdays": []int(result.Weekdays),
		}).Info("Recurring assignment created")
	}

	resp := recurringToAssignment(result)
	resp.EmployeeName = employee.Name
	resp.SectorName = sector.Name
	resp.ShiftName = shift.Name
	return resp, nil
}

// DeleteAssignment deletes an assignment of the given kind by ID. Deleting a
// nonexistent ID succeeds (already absent).
func (s *ScheduleService) DeleteAssignment(kind models.AssignmentKind, id uuid.UUID) error {
	switch kind {
	case models.AssignmentKindOverride:
		if err := s.overrideRepo.Delete(id); err != nil {
			return fmt.Errorf("failed to delete override assignment: %w", err)
		}
	case models.AssignmentKindRecurring:
		if err := s.recurringRepo.Delete(id); err != nil {
			return fmt.Errorf("failed to delete recurring assignment: %w", err)
		}
	default:
		return apperrors.ErrInvalidAssignmentKind
	}
	return nil
}

// ListRecurringAssignments lists all fixed weekly assignments with their
// relations, ordered by sector name then employee name (the admin view)
func (s *ScheduleService) ListRecurringAssignments() ([]AssignmentResponse, error) {
	assignments, err := s.recurringRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list recurring assignments: %w", err)
	}

	responses := make([]AssignmentResponse, 0, len(assignments))
	for i := range assignments {
		a := &assignments[i]
		resp := recurringToAssignment(a)
		resp.EmployeeName = a.Employee.Name
		resp.SectorName = a.Sector.Name
		resp.ShiftName = a.Shift.Name
		responses = append(responses, *resp)
	}
	sort.Slice(responses, func(i, j int) bool {
		if responses[i].SectorName != responses[j].SectorName {
			return responses[i].SectorName < responses[j].SectorName
		}
		return responses[i].EmployeeName < responses[j].EmployeeName
	})
	return responses, nil
}

// ListOverridesByDate lists the overrides for one date with their relations
func (s *ScheduleService) ListOverridesByDate(date time.Time) ([]AssignmentResponse, error) {
	overrides, err := s.overrideRepo.GetByDate(dateOnly(date))
	if err != nil {
		return nil, fmt.Errorf("failed to list override assignments: %w", err)
	}

	responses := make([]AssignmentResponse, 0, len(overrides))
	for i := range overrides {
		o := &overrides[i]
		resp := overrideToAssignment(o)
		resp.EmployeeName = o.Employee.Name
		resp.SectorName = o.Sector.Name
		resp.ShiftName = o.Shift.Name
		responses = append(responses, *resp)
	}
	return responses, nil
}

// ---- conflict checks ----

// checkOverrideConflict returns a ScheduleConflictError when a different
// sector already holds the (employee, date, shift) slot. The identical sector
// is not a conflict (idempotent re-submit).
func (s *ScheduleService) checkOverrideConflict(repo repository.OverrideAssignmentRepositoryInterface, employee *models.Employee, shift *models.Shift, sectorID uuid.UUID, date time.Time) error {
	existing, err := repo.GetForShift(employee.ID, date, shift.ID)
	if err != nil {
		return fmt.Errorf("failed to check existing override: %w", err)
	}
	if existing == nil || existing.SectorID == sectorID {
		return nil
	}
	return &apperrors.ScheduleConflictError{
		EmployeeName: employee.Name,
		SectorName:   existing.Sector.Name,
		ShiftName:    shift.Name,
		Date:         &date,
	}
}

// checkRecurringConflict returns a ScheduleConflictError when the weekday set
// intersects an existing assignment of another sector on the same shift. When
// an existing same-sector assignment already covers every requested weekday it
// is returned so the caller can treat the request as an idempotent no-op.
func (s *ScheduleService) checkRecurringConflict(repo repository.RecurringAssignmentRepositoryInterface, employee *models.Employee, shift *models.Shift, sectorID uuid.UUID, weekdays []int) (*models.RecurringAssignment, error) {
	existing, err := repo.GetByEmployeeAndShift(employee.ID, shift.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing recurring assignments: %w", err)
	}

	requested := normalizeWeekdays(weekdays)
	for i := range existing {
		a := &existing[i]
		overlap := intersectWeekdays(requested, a.Weekdays)
		if len(overlap) == 0 {
			continue
		}
		if a.SectorID == sectorID {
			if len(overlap) == len(requested) {
				return a, nil
			}
			continue
		}
		return nil, &apperrors.ScheduleConflictError{
			EmployeeName: employee.Name,
			SectorName:   a.Sector.Name,
			ShiftName:    shift.Name,
			Weekdays:     overlap,
		}
	}
	return nil, nil
}

// ---- reference data lookups ----

func (s *ScheduleService) getEmployee(id uuid.UUID) (*models.Employee, error) {
	employee, err := s.employeeRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to verify employee: %w", err)
	}
	return employee, nil
}

func (s *ScheduleService) references(employeeID, sectorID, shiftID uuid.UUID) (*models.Employee, *models.Sector, *models.Shift, error) {
	employee, err := s.getEmployee(employeeID)
	if err != nil {
		return nil, nil, nil, err
	}

	sector, err := s.sectorRepo.GetByID(sectorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, nil, apperrors.ErrSectorNotFound
		}
		return nil, nil, nil, fmt.Errorf("failed to verify sector: %w", err)
	}

	shift, err := s.shiftRepo.GetByID(shiftID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, nil, apperrors.ErrShiftNotFound
		}
		return nil, nil, nil, fmt.Errorf("failed to verify shift: %w", err)
	}

	return employee, sector, shift, nil
}

// ---- pure helpers ----

// dateOnly truncates a timestamp to midnight UTC so date equality is exact
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// pickOverride picks the single effective override deterministically: the
// candidate with the lowest identifier. Multiple candidates only occur when
// an employee holds overrides on more than one shift for the same date.
func pickOverride(candidates []models.OverrideAssignment) *models.OverrideAssignment {
	if len(candidates) == 0 {
		return nil
	}
	best := &candidates[0]
	for i := 1; i < len(candidates); i++ {
		if strings.Compare(candidates[i].ID.String(), best.ID.String()) < 0 {
			best = &candidates[i]
		}
	}
	return best
}

// pickRecurring picks the recurring assignment covering the weekday, lowest
// identifier first. More than one match means the write-time invariant was
// bypassed; the deterministic pick keeps reads reproducible regardless.
func pickRecurring(candidates []models.RecurringAssignment, weekday int) *models.RecurringAssignment {
	var best *models.RecurringAssignment
	for i := range candidates {
		a := &candidates[i]
		if !a.CoversWeekday(weekday) {
			continue
		}
		if best == nil || strings.Compare(a.ID.String(), best.ID.String()) < 0 {
			best = a
		}
	}
	return best
}

// normalizeWeekdays sorts and deduplicates a weekday set
func normalizeWeekdays(weekdays []int) []int {
	seen := make(map[int]bool, len(weekdays))
	out := make([]int, 0, len(weekdays))
	for _, d := range weekdays {
		if !seen[d] {
			seen[d] = true
			out = append(out, d)
		}
	}
	sort.Ints(out)
	return out
}

// intersectWeekdays returns the sorted intersection of two weekday sets
func intersectWeekdays(a, b []int) []int {
	inB := make(map[int]bool, len(b))
	for _, d := range b {
		inB[d] = true
	}
	var out []int
	for _, d := range a {
		if inB[d] {
			out = append(out, d)
		}
	}
	sort.Ints(out)
	return out
}

func validateWeekdaySet(weekdays []int) error {
	if len(weekdays) == 0 {
		return apperrors.ErrEmptyWeekdaySet
	}
	for _, d := range weekdays {
		if !models.IsValidWeekday(d) {
			return apperrors.ErrInvalidWeekday
		}
	}
	return nil
}

// ---- response builders ----

func overrideToResolved(o *models.OverrideAssignment, date time.Time) *ResolvedDayResponse {
	return &ResolvedDayResponse{
		AssignmentID: o.ID,
		Kind:         models.AssignmentKindOverride,
		Date:         date.Format("2006-01-02"),
		EmployeeID:   o.EmployeeID,
		SectorID:     o.SectorID,
		SectorName:   o.Sector.Name,
		SectorColor:  o.Sector.Color,
		ShiftID:      o.ShiftID,
		ShiftName:    o.Shift.Name,
		ShiftStart:   o.Shift.StartTime,
		ShiftEnd:     o.Shift.EndTime,
	}
}

func recurringToResolved(a *models.RecurringAssignment, employeeID uuid.UUID, date time.Time) *ResolvedDayResponse {
	return &ResolvedDayResponse{
		AssignmentID: a.ID,
		Kind:         models.AssignmentKindRecurring,
		Date:         date.Format("2006-01-02"),
		EmployeeID:   employeeID,
		SectorID:     a.SectorID,
		SectorName:   a.Sector.Name,
		SectorColor:  a.Sector.Color,
		ShiftID:      a.ShiftID,
		ShiftName:    a.Shift.Name,
		ShiftStart:   a.Shift.StartTime,
		ShiftEnd:     a.Shift.EndTime,
	}
}

func overrideToAssignment(o *models.OverrideAssignment) *AssignmentResponse {
	return &AssignmentResponse{
		ID:         o.ID,
		Kind:       models.AssignmentKindOverride,
		EmployeeID: o.EmployeeID,
		SectorID:   o.SectorID,
		ShiftID:    o.ShiftID,
		Date:       o.Date.Format("2006-01-02"),
		CreatedAt:  o.CreatedAt.Format(time.RFC3339),
	}
}

func recurringToAssignment(a *models.RecurringAssignment) *AssignmentResponse {
	return &AssignmentResponse{
		ID:         a.ID,
		Kind:       models.AssignmentKindRecurring,
		EmployeeID: a.EmployeeID,
		SectorID:   a.SectorID,
		ShiftID:    a.ShiftID,
		Weekdays:   append([]int(nil), a.Weekdays...),
		CreatedAt:  a.CreatedAt.Format(time.RFC3339),
	}
}
