package domain

import "github.com/google/uuid"

// UserRole role of a user inside a tenant
type UserRole string

const (
	RoleAdmin       UserRole = "ADMIN"
	RoleHR          UserRole = "HR"
	RoleInterviewer UserRole = "INTERVIEWER"
	RoleUser        UserRole = "USER"
)

// IsValid returns true if the role is known
func (r UserRole) IsValid() bool {
	switch r {
	case RoleAdmin, RoleHR, RoleInterviewer, RoleUser:
		return true
	}
	return false
}

// CanManageCandidates returns true if the role may write candidate notes
func (r UserRole) CanManageCandidates() bool {
	return r == RoleAdmin || r == RoleHR
}

// CanChangeStatus returns true if the role may move candidates through the pipeline
func (r UserRole) CanChangeStatus() bool {
	return r == RoleAdmin || r == RoleHR || r == RoleInterviewer
}

// Interviewer user as a member of a tenant
type Interviewer struct {
	ID       uuid.UUID
	TenantID uuid.UUID
	Name     string
	Email    string
	Role     UserRole
}
