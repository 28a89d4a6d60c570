package user

import "time"

type Role string

const (
	// RoleGlobalAdmin is the office bearer role with cross-vertical
	// visibility and member-lifecycle override authority.
	RoleGlobalAdmin Role = "global_admin"
	// RoleVerticalLead manages members and meetings within one vertical.
	RoleVerticalLead Role = "vertical_lead"
)

// User is a login identity. Global admins authenticate by username, vertical
// leads by roll number; the unused key is empty.
type User struct {
	ID           string
	Username     string
	RollNo       string
	Name         string
	Department   string
	Year         int
	Vertical     string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
