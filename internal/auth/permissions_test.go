package auth

import (
	"testing"

	"github.com/edupanel/center-service/internal/domain"
)

func TestRoleLevelOf(t *testing.T) {
	tests := []struct {
		name string
		role domain.Role
		want Level
	}{
		{name: "developer", role: domain.RoleDeveloper, want: LevelDeveloper},
		{name: "director", role: domain.RoleDirector, want: LevelDirector},
		{name: "administrator", role: domain.RoleAdministrator, want: LevelAdministrator},
		{name: "accountant", role: domain.RoleAccountant, want: LevelAccountant},
		{name: "sales agent", role: domain.RoleSalesAgent, want: LevelOther},
		{name: "mentor", role: domain.RoleMentor, want: LevelOther},
		{name: "assistant", role: domain.RoleAssistant, want: LevelOther},
		{name: "empty role", role: domain.Role(""), want: LevelOther},
		{name: "unknown role", role: domain.Role("superuser"), want: LevelOther},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RoleLevelOf(tt.role); got != tt.want {
				t.Errorf("RoleLevelOf(%q) = %d, want %d", tt.role, got, tt.want)
			}
		})
	}
}

func TestCanUpdateEmployee(t *testing.T) {
	tests := []struct {
		name   string
		actor  domain.Role
		target domain.Role
		want   bool
	}{
		{name: "developer updates developer", actor: domain.RoleDeveloper, target: domain.RoleDeveloper, want: true},
		{name: "developer updates director", actor: domain.RoleDeveloper, target: domain.RoleDirector, want: true},
		{name: "developer updates mentor", actor: domain.RoleDeveloper, target: domain.RoleMentor, want: true},
		{name: "director updates developer", actor: domain.RoleDirector, target: domain.RoleDeveloper, want: false},
		{name: "director updates director", actor: domain.RoleDirector, target: domain.RoleDirector, want: true},
		{name: "director updates administrator", actor: domain.RoleDirector, target: domain.RoleAdministrator, want: true},
		{name: "administrator updates administrator", actor: domain.RoleAdministrator, target: domain.RoleAdministrator, want: false},
		{name: "administrator updates director", actor: domain.RoleAdministrator, target: domain.RoleDirector, want: false},
		{name: "administrator updates accountant", actor: domain.RoleAdministrator, target: domain.RoleAccountant, want: true},
		{name: "administrator updates mentor", actor: domain.RoleAdministrator, target: domain.RoleMentor, want: true},
		{name: "accountant updates mentor", actor: domain.RoleAccountant, target: domain.RoleMentor, want: false},
		{name: "mentor updates assistant", actor: domain.RoleMentor, target: domain.RoleAssistant, want: false},
		{name: "unknown actor updates mentor", actor: domain.Role("ghost"), target: domain.RoleMentor, want: false},
		{name: "administrator updates unknown", actor: domain.RoleAdministrator, target: domain.Role("ghost"), want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanUpdateEmployee(tt.actor, tt.target); got != tt.want {
				t.Errorf("CanUpdateEmployee(%q, %q) = %v, want %v", tt.actor, tt.target, got, tt.want)
			}
			if got := CanDeleteEmployee(tt.actor, tt.target); got != tt.want {
				t.Errorf("CanDeleteEmployee(%q, %q) = %v, want %v", tt.actor, tt.target, got, tt.want)
			}
			if got := CanAssignRole(tt.actor, tt.target); got != tt.want {
				t.Errorf("CanAssignRole(%q, %q) = %v, want %v", tt.actor, tt.target, got, tt.want)
			}
		})
	}
}

func TestViewBroaderThanUpdate(t *testing.T) {
	// Administrators see directors and developers but cannot modify them.
	actor := domain.RoleAdministrator
	if !CanViewEmployee(actor) {
		t.Fatalf("CanViewEmployee(%q) = false, want true", actor)
	}
	for _, target := range []domain.Role{domain.RoleDirector, domain.RoleDeveloper} {
		if CanUpdateEmployee(actor, target) {
			t.Errorf("CanUpdateEmployee(%q, %q) = true, want false", actor, target)
		}
	}
}

func TestAssignableRoles(t *testing.T) {
	tests := []struct {
		name  string
		actor domain.Role
		want  []domain.Role
	}{
		{
			name:  "developer assigns all",
			actor: domain.RoleDeveloper,
			want:  domain.AllRoles,
		},
		{
			name:  "director assigns all but developer",
			actor: domain.RoleDirector,
			want: []domain.Role{
				domain.RoleDirector, domain.RoleAdministrator, domain.RoleAccountant,
				domain.RoleSalesAgent, domain.RoleMentor, domain.RoleAssistant,
			},
		},
		{
			name:  "administrator assigns lower tiers only",
			actor: domain.RoleAdministrator,
			want: []domain.Role{
				domain.RoleAccountant, domain.RoleSalesAgent, domain.RoleMentor, domain.RoleAssistant,
			},
		},
		{
			name:  "accountant assigns nothing",
			actor: domain.RoleAccountant,
			want:  []domain.Role{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AssignableRoles(tt.actor)
			if len(got) != len(tt.want) {
				t.Fatalf("AssignableRoles(%q) = %v, want %v", tt.actor, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("AssignableRoles(%q)[%d] = %q, want %q", tt.actor, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestAssignableRolesMonotonic(t *testing.T) {
	// Each higher tier may assign at least everything the tier below may.
	tiers := []domain.Role{domain.RoleAdministrator, domain.RoleDirector, domain.RoleDeveloper}
	for i := 0; i < len(tiers)-1; i++ {
		lower := AssignableRoles(tiers[i])
		higher := make(map[domain.Role]bool)
		for _, role := range AssignableRoles(tiers[i+1]) {
			higher[role] = true
		}
		for _, role := range lower {
			if !higher[role] {
				t.Errorf("%q may assign %q but %q may not", tiers[i], role, tiers[i+1])
			}
		}
	}
}

func TestPagePermissions(t *testing.T) {
	tests := []struct {
		name string
		fn   func(domain.Role) bool
		role domain.Role
		want bool
	}{
		{name: "administrator manages groups", fn: CanManageGroups, role: domain.RoleAdministrator, want: true},
		{name: "accountant cannot manage groups", fn: CanManageGroups, role: domain.RoleAccountant, want: false},
		{name: "mentor cannot manage groups", fn: CanManageGroups, role: domain.RoleMentor, want: false},
		{name: "administrator manages students", fn: CanManageStudents, role: domain.RoleAdministrator, want: true},
		{name: "director cannot manage students", fn: CanManageStudents, role: domain.RoleDirector, want: false},
		{name: "mentor records attendance", fn: CanRecordAttendance, role: domain.RoleMentor, want: true},
		{name: "assistant cannot record attendance", fn: CanRecordAttendance, role: domain.RoleAssistant, want: false},
		{name: "accountant views reports", fn: CanViewReports, role: domain.RoleAccountant, want: true},
		{name: "mentor cannot view reports", fn: CanViewReports, role: domain.RoleMentor, want: false},
		{name: "director manages salaries", fn: CanManageSalaries, role: domain.RoleDirector, want: true},
		{name: "administrator cannot manage salaries", fn: CanManageSalaries, role: domain.RoleAdministrator, want: false},
		{name: "accountant exports reports", fn: CanExportReports, role: domain.RoleAccountant, want: true},
		{name: "director cannot export reports", fn: CanExportReports, role: domain.RoleDirector, want: false},
		{name: "unknown role gets nothing", fn: CanViewReports, role: domain.Role("ghost"), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(tt.role); got != tt.want {
				t.Errorf("permission for %q = %v, want %v", tt.role, got, tt.want)
			}
		})
	}
}
