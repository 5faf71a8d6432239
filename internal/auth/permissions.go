package auth

import "github.com/edupanel/center-service/internal/domain"

// Level is the privilege tier derived from a role. Three of the seven
// roles (sales agent, mentor, assistant) collapse to LevelOther: they are
// equivalent for administrative permissions even though page-specific
// rules still distinguish them.
type Level int

const (
	LevelOther         Level = 0
	LevelAccountant    Level = 1
	LevelAdministrator Level = 2
	LevelDirector      Level = 3
	LevelDeveloper     Level = 4
)

// RoleLevelOf maps a role to its privilege level. Total: unknown or empty
// roles map to LevelOther so a malformed role can never gain privilege.
func RoleLevelOf(role domain.Role) Level {
	switch role {
	case domain.RoleDeveloper:
		return LevelDeveloper
	case domain.RoleDirector:
		return LevelDirector
	case domain.RoleAdministrator:
		return LevelAdministrator
	case domain.RoleAccountant:
		return LevelAccountant
	default:
		return LevelOther
	}
}

// HasFullAccess reports whether the role may use the administrative pages
// as a whole (administrator tier and above).
func HasFullAccess(role domain.Role) bool {
	return RoleLevelOf(role) >= LevelAdministrator
}

// CanCreateEmployee reports whether the actor may create employee accounts.
func CanCreateEmployee(actor domain.Role) bool {
	return RoleLevelOf(actor) >= LevelAdministrator
}

// CanUpdateEmployee reports whether the actor may modify an employee with
// the target role. The relation depends on both levels: developers update
// anyone, directors anyone but developers, administrators only strictly
// lower tiers. Administrators cannot touch peers.
func CanUpdateEmployee(actor, target domain.Role) bool {
	switch RoleLevelOf(actor) {
	case LevelDeveloper:
		return true
	case LevelDirector:
		return RoleLevelOf(target) != LevelDeveloper
	case LevelAdministrator:
		return RoleLevelOf(target) < LevelAdministrator
	default:
		return false
	}
}

// CanDeleteEmployee follows the same rule as update.
func CanDeleteEmployee(actor, target domain.Role) bool {
	return CanUpdateEmployee(actor, target)
}

// CanViewEmployee reports whether the actor may see employees in listings.
// View is intentionally broader than update: administrators see directors
// and developers in the org chart but cannot mutate them.
func CanViewEmployee(actor domain.Role) bool {
	return RoleLevelOf(actor) >= LevelAdministrator
}

// CanAssignRole reports whether the actor may hand out the candidate role
// when creating or editing an employee. Same tiering as update, evaluated
// against the candidate role.
func CanAssignRole(actor domain.Role, candidate domain.Role) bool {
	return CanUpdateEmployee(actor, candidate)
}

// AssignableRoles returns the roles the actor may assign, in the fixed
// declaration order of the role set.
func AssignableRoles(actor domain.Role) []domain.Role {
	roles := make([]domain.Role, 0, len(domain.AllRoles))
	for _, role := range domain.AllRoles {
		if CanAssignRole(actor, role) {
			roles = append(roles, role)
		}
	}
	return roles
}

// CanManageGroups reports whether the actor may create, update or delete
// groups. Broader than the employee rule: administrators get full group
// CRUD.
func CanManageGroups(role domain.Role) bool {
	switch role {
	case domain.RoleDeveloper, domain.RoleDirector, domain.RoleAdministrator:
		return true
	default:
		return false
	}
}

// CanManageStudents reports whether the actor may create, update or delete
// students.
func CanManageStudents(role domain.Role) bool {
	return role == domain.RoleDeveloper || role == domain.RoleAdministrator
}

// CanRecordAttendance reports whether the actor may create attendance
// records. Mentors qualify here regardless of their level.
func CanRecordAttendance(role domain.Role) bool {
	switch role {
	case domain.RoleMentor, domain.RoleAdministrator, domain.RoleDeveloper, domain.RoleDirector:
		return true
	default:
		return false
	}
}

// CanViewReports reports whether the actor may read monthly earnings
// reports.
func CanViewReports(role domain.Role) bool {
	switch role {
	case domain.RoleDeveloper, domain.RoleDirector, domain.RoleAdministrator, domain.RoleAccountant:
		return true
	default:
		return false
	}
}

// CanManageSalaries reports whether the actor may record salaries and mark
// payments as paid.
func CanManageSalaries(role domain.Role) bool {
	return role == domain.RoleDirector || role == domain.RoleAccountant
}

// CanExportReports reports whether the actor may export report data.
func CanExportReports(role domain.Role) bool {
	return role == domain.RoleAccountant
}
