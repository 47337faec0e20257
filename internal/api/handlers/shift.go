package handlers

import (
	"net/http"

	"pulso-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ShiftHandler handles HTTP requests for shift operations
type ShiftHandler struct {
	shiftService service.ShiftServiceInterface
}

// NewShiftHandler creates a new shift handler
func NewShiftHandler(shiftService service.ShiftServiceInterface) *ShiftHandler {
	return &ShiftHandler{shiftService: shiftService}
}

// ListShifts handles GET /shifts
// @Summary List all shifts ordered by start time
// @Tags shifts
// @Produce json
// @Success 200 {array} service.ShiftResponse
// @Security BearerAuth
// @Router /shifts [get]
func (h *ShiftHandler) ListShifts(c *gin.Context) {
	shifts, err := h.shiftService.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, shifts)
}

// GetShift handles GET /shifts/:id
// @Summary Get a shift by ID
// @Tags shifts
// @Produce json
// @Param id path string true "Shift ID"
// @Success 200 {object} service.ShiftResponse
// @Failure 404 {object} map[string]interface{} "Shift not found"
// @Security BearerAuth
// @Router /shifts/{id} [get]
func (h *ShiftHandler) GetShift(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	shift, err := h.shiftService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, shift)
}

// CreateShift handles POST /shifts
// @Summary Create a shift
// @Tags shifts
// @Accept json
// @Produce json
// @Param request body service.CreateShiftRequest true "Shift"
// @Success 201 {object} service.ShiftResponse
// @Security BearerAuth
// @Router /shifts [post]
func (h *ShiftHandler) CreateShift(c *gin.Context) {
	var req service.CreateShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	shift, err := h.shiftService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, shift)
}

// UpdateShift handles PUT /shifts/:id
// @Summary Update a shift
// @Tags shifts
// @Accept json
// @Produce json
// @Param id path string true "Shift ID"
// @Param request body service.UpdateShiftRequest true "Fields to update"
// @Success 200 {object} service.ShiftResponse
// @Security BearerAuth
// @Router /shifts/{id} [put]
func (h *ShiftHandler) UpdateShift(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	shift, err := h.shiftService.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, shift)
}

// DeleteShift handles DELETE /shifts/:id
// @Summary Delete a shift
// @Tags shifts
// @Param id path string true "Shift ID"
// @Success 204 "Deleted"
// @Security BearerAuth
// @Router /shifts/{id} [delete]
func (h *ShiftHandler) DeleteShift(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.shiftService.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
