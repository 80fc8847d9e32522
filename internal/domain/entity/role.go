package entity

import "github.com/google/uuid"

// Role ID constants, as carried in access token claims
const (
	RoleIDAdmin   = 1
	RoleIDDoctor  = 2
	RoleIDPatient = 3
)

// RoleNames constants
const (
	RoleAdmin   = "admin"
	RoleDoctor  = "doctor"
	RolePatient = "patient"
)

// Actor is the authenticated caller of a state-changing operation.
type Actor struct {
	UserID uuid.UUID
	RoleID int
}

func (a Actor) IsDoctor() bool  { return a.RoleID == RoleIDDoctor }
func (a Actor) IsPatient() bool { return a.RoleID == RoleIDPatient }

// RoleName returns the role label used in events and audit metadata
func (a Actor) RoleName() string {
	switch a.RoleID {
	case RoleIDAdmin:
		return RoleAdmin
	case RoleIDDoctor:
		return RoleDoctor
	case RoleIDPatient:
		return RolePatient
	}
	return "unknown"
}
