package handlers

import (
	"net/http"
	"time"

	"pulso-backend/internal/database/models"
	"pulso-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ScheduleHandler handles HTTP requests for schedule resolution and assignments
type ScheduleHandler struct {
	scheduleService service.ScheduleServiceInterface
}

// NewScheduleHandler creates a new schedule handler
func NewScheduleHandler(scheduleService service.ScheduleServiceInterface) *ScheduleHandler {
	return &ScheduleHandler{scheduleService: scheduleService}
}

// parseDate parses the required "date" query parameter (YYYY-MM-DD)
func parseDate(c *gin.Context, param string) (time.Time, bool) {
	raw := c.Query(param)
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": param + " query parameter is required (YYYY-MM-DD)"})
		return time.Time{}, false
	}
	date, err := time.Parse("2006-01-02", raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + param + ", expected YYYY-MM-DD"})
		return time.Time{}, false
	}
	return date, true
}

func parseUUIDParam(c *gin.Context, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + param})
		return uuid.Nil, false
	}
	return id, true
}

// ResolveDay handles GET /employees/:id/schedule/day?date=YYYY-MM-DD
// @Summary Resolve an employee's effective assignment for a date
// @Description Applies override-wins precedence: a one-day override beats the fixed weekly schedule; with neither the employee is off that day.
// @Tags schedule
// @Produce json
// @Param id path string true "Employee ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} service.ResolvedDayResponse "Effective assignment"
// @Success 204 "Employee is unassigned for the date"
// @Failure 404 {object} map[string]interface{} "Employee not found"
// @Security BearerAuth
// @Router /employees/{id}/schedule/day [get]
func (h *ScheduleHandler) ResolveDay(c *gin.Context) {
	employeeID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	date, ok := parseDate(c, "date")
	if !ok {
		return
	}

	resolved, err := h.scheduleService.ResolveDay(employeeID, date)
	if err != nil {
		respondError(c, err)
		return
	}
	if resolved == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, resolved)
}

// ResolveWeek handles GET /employees/:id/schedule/week?start=YYYY-MM-DD
// @Summary Resolve an employee's effective assignments for 7 days
// @Tags schedule
// @Produce json
// @Param id path string true "Employee ID"
// @Param start query string true "Week start date (YYYY-MM-DD)"
// @Success 200 {array} service.WeekDayResponse
// @Failure 404 {object} map[string]interface{} "Employee not found"
// @Security BearerAuth
// @Router /employees/{id}/schedule/week [get]
func (h *ScheduleHandler) ResolveWeek(c *gin.Context) {
	employeeID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	start, ok := parseDate(c, "start")
	if !ok {
		return
	}

	week, err := h.scheduleService.ResolveWeek(employeeID, start)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, week)
}

// ResolveRoster handles GET /schedule/roster?date=YYYY-MM-DD
// @Summary Resolve the full day roster grouped by sector
// @Tags schedule
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} service.SectorRosterResponse
// @Security BearerAuth
// @Router /schedule/roster [get]
func (h *ScheduleHandler) ResolveRoster(c *gin.Context) {
	date, ok := parseDate(c, "date")
	if !ok {
		return
	}

	roster, err := h.scheduleService.ResolveSectorRoster(date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, roster)
}

// createOverrideBody is the JSON body for POST /schedule/overrides
type createOverrideBody struct {
	EmployeeID uuid.UUID `json:"employee_id" binding:"required"`
	SectorID   uuid.UUID `json:"sector_id" binding:"required"`
	ShiftID    uuid.UUID `json:"shift_id" binding:"required"`
	Date       string    `json:"date" binding:"required"`
}

// CreateOverride handles POST /schedule/overrides
// @Summary Create a one-day override assignment
// @Description Validates the no-double-booking invariant and inserts atomically. Re-submitting an identical assignment is a no-op; a different sector for the same employee/date/shift is a 409 with the conflict detail.
// @Tags schedule
// @Accept json
// @Produce json
// @Param request body createOverrideBody true "Override assignment"
// @Success 201 {object} service.AssignmentResponse
// @Failure 409 {object} map[string]interface{} "Employee already scheduled in another sector"
// @Security BearerAuth
// @Router /schedule/overrides [post]
func (h *ScheduleHandler) CreateOverride(c *gin.Context) {
	var body createOverrideBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}
	date, err := time.Parse("2006-01-02", body.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
		return
	}

	req := &service.CreateOverrideRequest{
		EmployeeID: body.EmployeeID,
		SectorID:   body.SectorID,
		ShiftID:    body.ShiftID,
		Date:       date,
	}
	if creator, err := uuid.Parse(c.GetString("employee_id")); err == nil {
		req.CreatedByID = creator
	}

	resp, err := h.scheduleService.CreateOverride(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// CreateRecurring handles POST /schedule/recurring
// @Summary Create a fixed weekly assignment
// @Description Rejects weekday overlaps with another sector on the same shift; the 409 names the colliding weekdays so the caller can split the request.
// @Tags schedule
// @Accept json
// @Produce json
// @Param request body service.CreateRecurringRequest true "Recurring assignment"
// @Success 201 {object} service.AssignmentResponse
// @Failure 409 {object} map[string]interface{} "Weekday overlap with another sector"
// @Security BearerAuth
// @Router /schedule/recurring [post]
func (h *ScheduleHandler) CreateRecurring(c *gin.Context) {
	var req service.CreateRecurringRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.scheduleService.CreateRecurring(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ValidateAssignment handles POST /schedule/validate
// @Summary Dry-run conflict check for a proposed assignment
// @Tags schedule
// @Accept json
// @Produce json
// @Param request body service.ValidateAssignmentRequest true "Proposed assignment"
// @Success 200 {object} map[string]interface{} "No conflict"
// @Failure 409 {object} map[string]interface{} "Conflict detail"
// @Security BearerAuth
// @Router /schedule/validate [post]
func (h *ScheduleHandler) ValidateAssignment(c *gin.Context) {
	var req service.ValidateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	if err := h.scheduleService.ValidateNewAssignment(&req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// DeleteAssignment handles DELETE /schedule/:kind/:id
// @Summary Delete an assignment by kind and ID
// @Description Idempotent: deleting an absent ID succeeds.
// @Tags schedule
// @Param kind path string true "Assignment kind" Enums(recurring, override)
// @Param id path string true "Assignment ID"
// @Success 204 "Deleted or already absent"
// @Security BearerAuth
// @Router /schedule/{kind}/{id} [delete]
func (h *ScheduleHandler) DeleteAssignment(c *gin.Context) {
	kind := models.AssignmentKind(c.Param("kind"))
	if !kind.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid assignment kind"})
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.scheduleService.DeleteAssignment(kind, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListRecurring handles GET /schedule/recurring
// @Summary List all fixed weekly assignments
// @Tags schedule
// @Produce json
// @Success 200 {array} service.AssignmentResponse
// @Security BearerAuth
// @Router /schedule/recurring [get]
func (h *ScheduleHandler) ListRecurring(c *gin.Context) {
	assignments, err := h.scheduleService.ListRecurringAssignments()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, assignments)
}

// ListOverrides handles GET /schedule/overrides?date=YYYY-MM-DD
// @Summary List the override assignments of one date
// @Tags schedule
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {array} service.AssignmentResponse
// @Security BearerAuth
// @Router /schedule/overrides [get]
func (h *ScheduleHandler) ListOverrides(c *gin.Context) {
	date, ok := parseDate(c, "date")
	if !ok {
		return
	}

	overrides, err := h.scheduleService.ListOverridesByDate(date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, overrides)
}
