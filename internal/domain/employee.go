package domain

import "time"

// Role enumerates employee roles at the training center.
type Role string

const (
	RoleDeveloper     Role = "developer"
	RoleDirector      Role = "director"
	RoleAdministrator Role = "administrator"
	RoleAccountant    Role = "accountant"
	RoleSalesAgent    Role = "sales_agent"
	RoleMentor        Role = "mentor"
	RoleAssistant     Role = "assistant"
)

// AllRoles lists every role in declaration order. Role pickers and
// assignable-role filtering rely on this order staying fixed.
var AllRoles = []Role{
	RoleDeveloper,
	RoleDirector,
	RoleAdministrator,
	RoleAccountant,
	RoleSalesAgent,
	RoleMentor,
	RoleAssistant,
}

// Employee models a staff account: administrators, mentors, accountants
// and the rest of the center's personnel.
type Employee struct {
	ID             string
	Email          string
	FullName       string
	PasswordHash   string
	Role           Role
	Specialization *string
	AvatarURL      *string
	Active         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
