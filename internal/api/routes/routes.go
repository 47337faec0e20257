package routes

import (
	"pulso-backend/internal/api/handlers"
	"pulso-backend/internal/api/middleware"
	"pulso-backend/internal/auth"
	"pulso-backend/internal/config"
	"pulso-backend/internal/repository"
	"pulso-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	employeeRepo := repository.NewEmployeeRepository(db)
	sectorRepo := repository.NewSectorRepository(db)
	shiftRepo := repository.NewShiftRepository(db)
	recurringRepo := repository.NewRecurringAssignmentRepository(db)
	overrideRepo := repository.NewOverrideAssignmentRepository(db)

	// Initialize services
	employeeService := service.NewEmployeeService(employeeRepo, validator)
	sectorService := service.NewSectorService(sectorRepo, validator)
	shiftService := service.NewShiftService(shiftRepo, validator)
	scheduleService := service.NewScheduleService(db, employeeRepo, sectorRepo, shiftRepo, recurringRepo, overrideRepo, validator)

	// Initialize auth
	authService := auth.NewAuthService(cfg.JWTSecret)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	employeeHandler := handlers.NewEmployeeHandler(employeeService)
	sectorHandler := handlers.NewSectorHandler(sectorService)
	shiftHandler := handlers.NewShiftHandler(shiftService)
	scheduleHandler := handlers.NewScheduleHandler(scheduleService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes - all endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())

	// Read endpoints
	v1.GET("/employees", employeeHandler.ListEmployees)
	v1.GET("/employees/:id", employeeHandler.GetEmployee)
	v1.GET("/employees/:id/schedule/day", scheduleHandler.ResolveDay)
	v1.GET("/employees/:id/schedule/week", scheduleHandler.ResolveWeek)
	v1.GET("/sectors", sectorHandler.ListSectors)
	v1.GET("/sectors/:id", sectorHandler.GetSector)
	v1.GET("/shifts", shiftHandler.ListShifts)
	v1.GET("/shifts/:id", shiftHandler.GetShift)
	v1.GET("/schedule/roster", scheduleHandler.ResolveRoster)
	v1.GET("/schedule/recurring", scheduleHandler.ListRecurring)
	v1.GET("/schedule/overrides", scheduleHandler.ListOverrides)

	// Mutations require the manager role
	manager := v1.Group("")
	manager.Use(authMiddleware.RequireManager())

	manager.POST("/employees", employeeHandler.CreateEmployee)
	manager.PUT("/employees/:id", employeeHandler.UpdateEmployee)
	manager.DELETE("/employees/:id", employeeHandler.DeleteEmployee)
	manager.POST("/sectors", sectorHandler.CreateSector)
	manager.PUT("/sectors/:id", sectorHandler.UpdateSector)
	manager.DELETE("/sectors/:id", sectorHandler.DeleteSector)
	manager.POST("/shifts", shiftHandler.CreateShift)
	manager.PUT("/shifts/:id", shiftHandler.UpdateShift)
	manager.DELETE("/shifts/:id", shiftHandler.DeleteShift)
	manager.POST("/schedule/overrides", scheduleHandler.CreateOverride)
	manager.POST("/schedule/recurring", scheduleHandler.CreateRecurring)
	manager.POST("/schedule/validate", scheduleHandler.ValidateAssignment)
	manager.DELETE("/schedule/:kind/:id", scheduleHandler.DeleteAssignment)

	return router
}
