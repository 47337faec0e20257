package handlers

import (
	"net/http"
	"strconv"

	"pulso-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// EmployeeHandler handles HTTP requests for employee operations
type EmployeeHandler struct {
	employeeService service.EmployeeServiceInterface
}

// NewEmployeeHandler creates a new employee handler
func NewEmployeeHandler(employeeService service.EmployeeServiceInterface) *EmployeeHandler {
	return &EmployeeHandler{employeeService: employeeService}
}

// ListEmployees handles GET /employees
// @Summary List employees ordered by name
// @Tags employees
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.EmployeeListResponse
// @Security BearerAuth
// @Router /employees [get]
func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	resp, err := h.employeeService.GetAll(page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetEmployee handles GET /employees/:id
// @Summary Get an employee by ID
// @Tags employees
// @Produce json
// @Param id path string true "Employee ID"
// @Success 200 {object} service.EmployeeResponse
// @Failure 404 {object} map[string]interface{} "Employee not found"
// @Security BearerAuth
// @Router /employees/{id} [get]
func (h *EmployeeHandler) GetEmployee(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	employee, err := h.employeeService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, employee)
}

// CreateEmployee handles POST /employees
// @Summary Create an employee
// @Tags employees
// @Accept json
// @Produce json
// @Param request body service.CreateEmployeeRequest true "Employee"
// @Success 201 {object} service.EmployeeResponse
// @Security BearerAuth
// @Router /employees [post]
func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	var req service.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	employee, err := h.employeeService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, employee)
}

// UpdateEmployee handles PUT /employees/:id
// @Summary Update an employee profile
// @Tags employees
// @Accept json
// @Produce json
// @Param id path string true "Employee ID"
// @Param request body service.UpdateEmployeeRequest true "Fields to update"
// @Success 200 {object} service.EmployeeResponse
// @Security BearerAuth
// @Router /employees/{id} [put]
func (h *EmployeeHandler) UpdateEmployee(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	employee, err := h.employeeService.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, employee)
}

// DeleteEmployee handles DELETE /employees/:id
// @Summary Delete an employee
// @Tags employees
// @Param id path string true "Employee ID"
// @Success 204 "Deleted"
// @Security BearerAuth
// @Router /employees/{id} [delete]
func (h *EmployeeHandler) DeleteEmployee(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.employeeService.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
