package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		minutes int
		wantErr bool
	}{
		{name: "midnight", input: "00:00", minutes: 0},
		{name: "morning", input: "09:00", minutes: 540},
		{name: "end of day", input: "23:59", minutes: 23*60 + 59},
		{name: "missing zero padding", input: "9:00", wantErr: true},
		{name: "hour out of range", input: "24:00", wantErr: true},
		{name: "minute out of range", input: "09:60", wantErr: true},
		{name: "no separator", input: "0900", wantErr: true},
		{name: "not a time", input: "9am", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimeOfDay(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.minutes, got)
		})
	}
}

func TestShiftMinutes(t *testing.T) {
	shift := &Shift{Name: "Morning", StartTime: "09:00", EndTime: "17:30"}

	start, err := shift.StartMinutes()
	assert.NoError(t, err)
	assert.Equal(t, 540, start)

	end, err := shift.EndMinutes()
	assert.NoError(t, err)
	assert.Equal(t, 17*60+30, end)
}

func TestRecurringAssignmentCoversWeekday(t *testing.T) {
	assignment := &RecurringAssignment{Weekdays: datatypes.JSONSlice[int]{1, 3, 5}}

	assert.True(t, assignment.CoversWeekday(1))
	assert.True(t, assignment.CoversWeekday(5))
	assert.False(t, assignment.CoversWeekday(0))
	assert.False(t, assignment.CoversWeekday(6))
}

func TestAssignmentKindIsValid(t *testing.T) {
	assert.True(t, AssignmentKindRecurring.IsValid())
	assert.True(t, AssignmentKindOverride.IsValid())
	assert.False(t, AssignmentKind("weekly").IsValid())
	assert.False(t, AssignmentKind("").IsValid())
}

func TestRoleIsValid(t *testing.T) {
	assert.True(t, RoleAssistant.IsValid())
	assert.True(t, RoleManager.IsValid())
	assert.False(t, Role("admin").IsValid())
}

func TestIsValidWeekday(t *testing.T) {
	assert.True(t, IsValidWeekday(0))
	assert.True(t, IsValidWeekday(6))
	assert.False(t, IsValidWeekday(-1))
	assert.False(t, IsValidWeekday(7))
}
