package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Shift represents a named time window within a day. Times are stored as
// zero-padded "HH:MM" strings so lexicographic order matches chronological order.
type Shift struct {
	BaseModel
	Name      string `json:"name" gorm:"size:60;not null;uniqueIndex" validate:"required,min=1,max=60"`
	StartTime string `json:"start_time" gorm:"type:varchar(5);not null" validate:"required"`
	EndTime   string `json:"end_time" gorm:"type:varchar(5);not null" validate:"required"`
}

// TableName returns the table name for Shift
func (Shift) TableName() string {
	return "shifts"
}

// ParseTimeOfDay parses a "HH:MM" string into minutes since midnight.
func ParseTimeOfDay(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return 0, fmt.Errorf("invalid time of day %q, expected HH:MM", s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("invalid hour in time of day %q", s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid minute in time of day %q", s)
	}
	return hour*60 + minute, nil
}

// StartMinutes returns the shift start as minutes since midnight.
func (s *Shift) StartMinutes() (int, error) {
	return ParseTimeOfDay(s.StartTime)
}

// EndMinutes returns the shift end as minutes since midnight.
func (s *Shift) EndMinutes() (int, error) {
	return ParseTimeOfDay(s.EndTime)
}
