package handlers

import (
	"net/http"
	"strconv"

	"pulso-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// SectorHandler handles HTTP requests for sector operations
type SectorHandler struct {
	sectorService service.SectorServiceInterface
}

// NewSectorHandler creates a new sector handler
func NewSectorHandler(sectorService service.SectorServiceInterface) *SectorHandler {
	return &SectorHandler{sectorService: sectorService}
}

// ListSectors handles GET /sectors?active=true
// @Summary List sectors ordered by name
// @Description With active=true only active sectors are returned (the assignment selection source).
// @Tags sectors
// @Produce json
// @Param active query bool false "Only active sectors" default(false)
// @Success 200 {array} service.SectorResponse
// @Security BearerAuth
// @Router /sectors [get]
func (h *SectorHandler) ListSectors(c *gin.Context) {
	activeOnly, _ := strconv.ParseBool(c.DefaultQuery("active", "false"))

	sectors, err := h.sectorService.GetAll(activeOnly)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sectors)
}

// GetSector handles GET /sectors/:id
// @Summary Get a sector by ID
// @Tags sectors
// @Produce json
// @Param id path string true "Sector ID"
// @Success 200 {object} service.SectorResponse
// @Failure 404 {object} map[string]interface{} "Sector not found"
// @Security BearerAuth
// @Router /sectors/{id} [get]
func (h *SectorHandler) GetSector(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	sector, err := h.sectorService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sector)
}

// CreateSector handles POST /sectors
// @Summary Create a sector
// @Tags sectors
// @Accept json
// @Produce json
// @Param request body service.CreateSectorRequest true "Sector"
// @Success 201 {object} service.SectorResponse
// @Security BearerAuth
// @Router /sectors [post]
func (h *SectorHandler) CreateSector(c *gin.Context) {
	var req service.CreateSectorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	sector, err := h.sectorService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sector)
}

// UpdateSector handles PUT /sectors/:id
// @Summary Update a sector (set active=false to retire it)
// @Tags sectors
// @Accept json
// @Produce json
// @Param id path string true "Sector ID"
// @Param request body service.UpdateSectorRequest true "Fields to update"
// @Success 200 {object} service.SectorResponse
// @Security BearerAuth
// @Router /sectors/{id} [put]
func (h *SectorHandler) UpdateSector(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateSectorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	sector, err := h.sectorService.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sector)
}

// DeleteSector handles DELETE /sectors/:id
// @Summary Delete a sector (prefer deactivation)
// @Tags sectors
// @Param id path string true "Sector ID"
// @Success 204 "Deleted"
// @Security BearerAuth
// @Router /sectors/{id} [delete]
func (h *SectorHandler) DeleteSector(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.sectorService.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
