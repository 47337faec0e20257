package main

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"pulso-backend/internal/config"
	"pulso-backend/internal/database"
	"pulso-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type SectorData struct {
	Name   string `yaml:"name"`
	Color  string `yaml:"color"`
	Active *bool  `yaml:"active,omitempty"`
}

type ShiftData struct {
	Name      string `yaml:"name"`
	StartTime string `yaml:"start_time"`
	EndTime   string `yaml:"end_time"`
}

type EmployeeData struct {
	Name         string `yaml:"name"`
	Registration string `yaml:"registration"`
	Role         string `yaml:"role"`
	BaseSector   string `yaml:"base_sector,omitempty"`
	Active       *bool  `yaml:"active,omitempty"`
}

// RecurringScheduleData references employees, sectors and shifts by name so
// the YAML files stay readable and re-runnable.
type RecurringScheduleData struct {
	EmployeeRegistration string `yaml:"employee_registration"`
	SectorName           string `yaml:"sector_name"`
	ShiftName            string `yaml:"shift_name"`
	Weekdays             []int  `yaml:"weekdays"`
}

// File structures
type SectorsFile struct {
	Sectors []SectorData `yaml:"sectors"`
}

type ShiftsFile struct {
	Shifts []ShiftData `yaml:"shifts"`
}

type EmployeesFile struct {
	Employees []EmployeeData `yaml:"employees"`
}

type SchedulesFile struct {
	Schedules []RecurringScheduleData `yaml:"schedules"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Load data from YAML files
	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress verbose GORM logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	sectors, err := loadSectors(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load sectors: %w", err)
	}

	shifts, err := loadShifts(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load shifts: %w", err)
	}

	employees, err := loadEmployees(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load employees: %w", err)
	}

	schedules, err := loadSchedules(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load schedules: %w", err)
	}

	// Create sectors first: employees and schedules reference them
	sectorMap := make(map[string]*models.Sector)
	sectorCreated := 0
	for _, sectorData := range sectors {
		sector, created, err := createSector(db, sectorData)
		if err != nil {
			return fmt.Errorf("failed to create sector %s: %w", sectorData.Name, err)
		}
		sectorMap[sectorData.Name] = sector
		if created {
			sectorCreated++
		}
	}
	log.Printf("📋 Sectors: %d created, %d total", sectorCreated, len(sectors))

	// Create shifts
	shiftMap := make(map[string]*models.Shift)
	shiftCreated := 0
	for _, shiftData := range shifts {
		shift, created, err := createShift(db, shiftData)
		if err != nil {
			return fmt.Errorf("failed to create shift %s: %w", shiftData.Name, err)
		}
		shiftMap[shiftData.Name] = shift
		if created {
			shiftCreated++
		}
	}
	log.Printf("📋 Shifts: %d created, %d total", shiftCreated, len(shifts))

	// Create employees
	employeeMap := make(map[string]*models.Employee)
	employeeCreated := 0
	for _, employeeData := range employees {
		employee, created, err := createEmployee(db, employeeData)
		if err != nil {
			return fmt.Errorf("failed to create employee %s: %w", employeeData.Registration, err)
		}
		employeeMap[employeeData.Registration] = employee
		if created {
			employeeCreated++
		}
	}
	log.Printf("📋 Employees: %d created, %d total", employeeCreated, len(employees))

	// Create recurring schedules last
	scheduleCreated := 0
	for _, scheduleData := range schedules {
		_, created, err := createSchedule(db, scheduleData, employeeMap, sectorMap, shiftMap)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create schedule for %s: %v", scheduleData.EmployeeRegistration, err)
			continue // Continue with other schedules
		}
		if created {
			scheduleCreated++
		}
	}
	log.Printf("📋 Recurring schedules: %d created, %d total", scheduleCreated, len(schedules))

	return nil
}

func loadSectors(dataDir string) ([]SectorData, error) {
	var allSectors []SectorData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "sectors") {
			var file SectorsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allSectors = append(allSectors, file.Sectors...)
		}
		return nil
	})

	return allSectors, err
}

func loadShifts(dataDir string) ([]ShiftData, error) {
	var allShifts []ShiftData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "shifts") {
			var file ShiftsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allShifts = append(allShifts, file.Shifts...)
		}
		return nil
	})

	return allShifts, err
}

func loadEmployees(dataDir string) ([]EmployeeData, error) {
	var allEmployees []EmployeeData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "employees") {
			var file EmployeesFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allEmployees = append(allEmployees, file.Employees...)
		}
		return nil
	})

	return allEmployees, err
}

func loadSchedules(dataDir string) ([]RecurringScheduleData, error) {
	var allSchedules []RecurringScheduleData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "schedules") {
			var file SchedulesFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allSchedules = append(allSchedules, file.Schedules...)
		}
		return nil
	})

	return allSchedules, err
}

func createSector(db *gorm.DB, sectorData SectorData) (*models.Sector, bool, error) {
	var sector models.Sector
	if err := db.Where("name = ?", sectorData.Name).First(&sector).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			active := true
			if sectorData.Active != nil {
				active = *sectorData.Active
			}

			sector = models.Sector{
				Name:   sectorData.Name,
				Color:  sectorData.Color,
				Active: active,
			}

			if err := db.Create(&sector).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create sector: %w", err)
			}
			return &sector, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query sector: %w", err)
		}
	}

	return &sector, false, nil // created = false (existing)
}

func createShift(db *gorm.DB, shiftData ShiftData) (*models.Shift, bool, error) {
	if _, err := models.ParseTimeOfDay(shiftData.StartTime); err != nil {
		return nil, false, err
	}
	if _, err := models.ParseTimeOfDay(shiftData.EndTime); err != nil {
		return nil, false, err
	}

	var shift models.Shift
	if err := db.Where("name = ?", shiftData.Name).First(&shift).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			shift = models.Shift{
				Name:      shiftData.Name,
				StartTime: shiftData.StartTime,
				EndTime:   shiftData.EndTime,
			}

			if err := db.Create(&shift).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create shift: %w", err)
			}
			return &shift, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query shift: %w", err)
		}
	}

	return &shift, false, nil // created = false (existing)
}

func createEmployee(db *gorm.DB, employeeData EmployeeData) (*models.Employee, bool, error) {
	var employee models.Employee
	if err := db.Where("registration = ?", employeeData.Registration).First(&employee).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			role := models.RoleAssistant
			if employeeData.Role != "" {
				role = models.Role(employeeData.Role)
			}
			if !role.IsValid() {
				return nil, false, fmt.Errorf("invalid role %q", employeeData.Role)
			}

			active := true
			if employeeData.Active != nil {
				active = *employeeData.Active
			}

			employee = models.Employee{
				Name:         employeeData.Name,
				Registration: employeeData.Registration,
				Role:         role,
				BaseSector:   employeeData.BaseSector,
				Active:       active,
			}

			if err := db.Create(&employee).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create employee: %w", err)
			}
			return &employee, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query employee: %w", err)
		}
	}

	return &employee, false, nil // created = false (existing)
}

func createSchedule(db *gorm.DB, scheduleData RecurringScheduleData, employeeMap map[string]*models.Employee, sectorMap map[string]*models.Sector, shiftMap map[string]*models.Shift) (*models.RecurringAssignment, bool, error) {
	employee := employeeMap[scheduleData.EmployeeRegistration]
	if employee == nil {
		return nil, false, fmt.Errorf("employee %s not found", scheduleData.EmployeeRegistration)
	}
	sector := sectorMap[scheduleData.SectorName]
	if sector == nil {
		return nil, false, fmt.Errorf("sector %s not found", scheduleData.SectorName)
	}
	shift := shiftMap[scheduleData.ShiftName]
	if shift == nil {
		return nil, false, fmt.Errorf("shift %s not found", scheduleData.ShiftName)
	}

	for _, d := range scheduleData.Weekdays {
		if !models.IsValidWeekday(d) {
			return nil, false, fmt.Errorf("invalid weekday %d", d)
		}
	}

	var assignment models.RecurringAssignment
	err := db.Where("employee_id = ? AND sector_id = ? AND shift_id = ?", employee.ID, sector.ID, shift.ID).
		First(&assignment).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			assignment = models.RecurringAssignment{
				EmployeeID: employee.ID,
				SectorID:   sector.ID,
				ShiftID:    shift.ID,
				Weekdays:   datatypes.JSONSlice[int](scheduleData.Weekdays),
			}

			if err := db.Create(&assignment).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create schedule: %w", err)
			}
			return &assignment, true, nil // created = true
		}
		return nil, false, fmt.Errorf("failed to query schedule: %w", err)
	}

	return &assignment, false, nil // created = false (existing)
}
