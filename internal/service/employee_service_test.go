package service

import (
	"context"
	"testing"

	"github.com/edupanel/center-service/internal/config"
	"github.com/edupanel/center-service/internal/domain"
	"github.com/edupanel/center-service/internal/events"
	apperrors "github.com/edupanel/center-service/pkg/util"
)

func actorWithRole(role domain.Role) *domain.Employee {
	return &domain.Employee{ID: "actor-1", Email: "actor@center.test", Role: role, Active: true}
}

func assertErrCode(t *testing.T, err error, code string) {
	t.Helper()
	if err == nil {
		t.Fatalf("error = nil, want code %s", code)
	}
	if got := apperrors.ToDomainError(err).Code; got != code {
		t.Fatalf("error code = %s, want %s", got, code)
	}
}

func newEmployeeService(repo *fakeEmployeeRepo, dispatcher events.Dispatcher) *EmployeeService {
	cfg := config.Config{}
	return NewEmployeeService(cfg, repo, dispatcher)
}

func TestEmployeeCreatePermissions(t *testing.T) {
	tests := []struct {
		name     string
		actor    domain.Role
		newRole  domain.Role
		wantCode string
	}{
		{name: "administrator creates mentor", actor: domain.RoleAdministrator, newRole: domain.RoleMentor},
		{name: "administrator creates administrator", actor: domain.RoleAdministrator, newRole: domain.RoleAdministrator, wantCode: "FORBIDDEN"},
		{name: "director creates administrator", actor: domain.RoleDirector, newRole: domain.RoleAdministrator},
		{name: "director creates developer", actor: domain.RoleDirector, newRole: domain.RoleDeveloper, wantCode: "FORBIDDEN"},
		{name: "developer creates developer", actor: domain.RoleDeveloper, newRole: domain.RoleDeveloper},
		{name: "accountant creates mentor", actor: domain.RoleAccountant, newRole: domain.RoleMentor, wantCode: "FORBIDDEN"},
		{name: "mentor creates assistant", actor: domain.RoleMentor, newRole: domain.RoleAssistant, wantCode: "FORBIDDEN"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newEmployeeService(newFakeEmployeeRepo(), nil)
			created, err := svc.Create(context.Background(), actorWithRole(tt.actor),
				"new@center.test", "New Person", "password123", tt.newRole, nil)
			if tt.wantCode != "" {
				assertErrCode(t, err, tt.wantCode)
				return
			}
			if err != nil {
				t.Fatalf("Create() error = %v", err)
			}
			if created.Role != tt.newRole {
				t.Errorf("created.Role = %q, want %q", created.Role, tt.newRole)
			}
			if !created.Active {
				t.Errorf("created.Active = false, want true")
			}
		})
	}
}

func TestEmployeeCreateDuplicateEmail(t *testing.T) {
	repo := newFakeEmployeeRepo(&domain.Employee{
		ID: "e1", Email: "taken@center.test", Role: domain.RoleMentor, Active: true,
	})
	svc := newEmployeeService(repo, nil)

	_, err := svc.Create(context.Background(), actorWithRole(domain.RoleAdministrator),
		"taken@center.test", "Dup", "password123", domain.RoleMentor, nil)
	assertErrCode(t, err, "CONFLICT")
}

func TestEmployeeUpdateAsymmetry(t *testing.T) {
	target := &domain.Employee{ID: "t1", Email: "t@center.test", Role: domain.RoleAdministrator, Active: true}
	repo := newFakeEmployeeRepo(target)
	svc := newEmployeeService(repo, nil)
	name := "Renamed"

	// administrators cannot touch a peer administrator
	_, err := svc.Update(context.Background(), actorWithRole(domain.RoleAdministrator), "t1", EmployeeUpdate{FullName: &name})
	assertErrCode(t, err, "FORBIDDEN")

	// a director can
	updated, err := svc.Update(context.Background(), actorWithRole(domain.RoleDirector), "t1", EmployeeUpdate{FullName: &name})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.FullName != name {
		t.Errorf("FullName = %q, want %q", updated.FullName, name)
	}
}

func TestEmployeeUpdateRoleEscalationBlocked(t *testing.T) {
	target := &domain.Employee{ID: "t1", Email: "t@center.test", Role: domain.RoleMentor, Active: true}
	repo := newFakeEmployeeRepo(target)
	svc := newEmployeeService(repo, nil)

	// admin may edit the mentor but may not hand out the administrator role
	adminRole := domain.RoleAdministrator
	_, err := svc.Update(context.Background(), actorWithRole(domain.RoleAdministrator), "t1", EmployeeUpdate{Role: &adminRole})
	assertErrCode(t, err, "FORBIDDEN")

	got, _ := repo.GetByID(context.Background(), "t1")
	if got.Role != domain.RoleMentor {
		t.Errorf("target role mutated to %q despite forbidden update", got.Role)
	}
}

func TestEmployeeRoleChangePublishesEvent(t *testing.T) {
	target := &domain.Employee{ID: "t1", Email: "t@center.test", Role: domain.RoleAssistant, Active: true}
	repo := newFakeEmployeeRepo(target)
	dispatcher := events.NewInMemoryDispatcher()

	var seen []events.Event
	dispatcher.Subscribe(events.EventEmployeeRoleChanged, func(_ context.Context, event events.Event) error {
		seen = append(seen, event)
		return nil
	})

	svc := newEmployeeService(repo, dispatcher)
	mentorRole := domain.RoleMentor
	if _, err := svc.Update(context.Background(), actorWithRole(domain.RoleAdministrator), "t1", EmployeeUpdate{Role: &mentorRole}); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	if len(seen) != 1 {
		t.Fatalf("role-changed events = %d, want 1", len(seen))
	}
	payload, ok := seen[0].Payload.(events.EmployeeRoleChangedPayload)
	if !ok {
		t.Fatalf("payload type = %T", seen[0].Payload)
	}
	if payload.OldRole != domain.RoleAssistant || payload.NewRole != domain.RoleMentor {
		t.Errorf("payload = %+v, want assistant -> mentor", payload)
	}
}

func TestEmployeeDeletePermissions(t *testing.T) {
	developer := &domain.Employee{ID: "dev", Email: "dev@center.test", Role: domain.RoleDeveloper, Active: true}
	repo := newFakeEmployeeRepo(developer)
	svc := newEmployeeService(repo, nil)

	err := svc.Delete(context.Background(), actorWithRole(domain.RoleDirector), "dev")
	assertErrCode(t, err, "FORBIDDEN")

	if err := svc.Delete(context.Background(), actorWithRole(domain.RoleDeveloper), "dev"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := repo.GetByID(context.Background(), "dev"); err == nil {
		t.Errorf("employee still present after delete")
	}
}

func TestEmployeeDeleteDeactivatesFirst(t *testing.T) {
	mentor := &domain.Employee{ID: "m1", Email: "m1@center.test", Role: domain.RoleMentor, Active: true}
	repo := newFakeEmployeeRepo(mentor)
	svc := newEmployeeService(repo, nil)

	if err := svc.Delete(context.Background(), actorWithRole(domain.RoleAdministrator), "m1"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if len(repo.updated) != 1 {
		t.Fatalf("updates before delete = %d, want 1", len(repo.updated))
	}
	if repo.updated[0].ID != "m1" || repo.updated[0].Active {
		t.Errorf("update before delete = %+v, want m1 deactivated", repo.updated[0])
	}
	if _, err := repo.GetByID(context.Background(), "m1"); err == nil {
		t.Errorf("employee still present after delete")
	}
}

func TestEmployeeListRequiresViewPermission(t *testing.T) {
	repo := newFakeEmployeeRepo(&domain.Employee{ID: "e1", Role: domain.RoleMentor, Active: true})
	svc := newEmployeeService(repo, nil)

	_, err := svc.List(context.Background(), actorWithRole(domain.RoleMentor), EmployeeListFilters{})
	assertErrCode(t, err, "FORBIDDEN")

	list, err := svc.List(context.Background(), actorWithRole(domain.RoleAdministrator), EmployeeListFilters{})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(list) != 1 {
		t.Errorf("List() len = %d, want 1", len(list))
	}
}
