package models

// AssignmentKind distinguishes the two schedule entry models
type AssignmentKind string

const (
	AssignmentKindRecurring AssignmentKind = "recurring"
	AssignmentKindOverride  AssignmentKind = "override"
)

// IsValid checks if the AssignmentKind is valid
func (k AssignmentKind) IsValid() bool {
	switch k {
	case AssignmentKindRecurring, AssignmentKindOverride:
		return true
	}
	return false
}

// Role defines the store roles; managers are the scheduling-privileged actors
type Role string

const (
	RoleAssistant Role = "assistente"
	RoleManager   Role = "gerente"
)

// IsValid checks if the Role is valid
func (r Role) IsValid() bool {
	switch r {
	case RoleAssistant, RoleManager:
		return true
	}
	return false
}

// IsValidWeekday reports whether d is a weekday index (0=Sunday .. 6=Saturday)
func IsValidWeekday(d int) bool {
	return d >= 0 && d <= 6
}
