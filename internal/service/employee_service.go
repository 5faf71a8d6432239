package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/edupanel/center-service/internal/auth"
	"github.com/edupanel/center-service/internal/config"
	"github.com/edupanel/center-service/internal/domain"
	"github.com/edupanel/center-service/internal/events"
	"github.com/edupanel/center-service/internal/repository"
	apperrors "github.com/edupanel/center-service/pkg/util"
)

// EmployeeService manages employee accounts under the role hierarchy
// rules. Every method takes the acting employee explicitly; there is no
// ambient session state.
type EmployeeService struct {
	employees  repository.EmployeeRepository
	dispatcher events.Dispatcher
	bcryptCost int
}

// EmployeeListFilters define listing parameters.
type EmployeeListFilters struct {
	Role   *domain.Role
	Active *bool
	Search string
	Limit  int
	Offset int
}

// EmployeeUpdate carries the mutable employee fields.
type EmployeeUpdate struct {
	FullName       *string
	Role           *domain.Role
	Specialization *string
	AvatarURL      *string
	Active         *bool
}

// NewEmployeeService constructs the service.
func NewEmployeeService(cfg config.Config, employees repository.EmployeeRepository, dispatcher events.Dispatcher) *EmployeeService {
	return &EmployeeService{
		employees:  employees,
		dispatcher: dispatcher,
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// Create adds a new employee account.
func (s *EmployeeService) Create(ctx context.Context, actor *domain.Employee, email, fullName, password string, role domain.Role, specialization *string) (*domain.Employee, error) {
	if actor == nil || !auth.CanCreateEmployee(actor.Role) {
		return nil, apperrors.NewForbidden("no permission to create employees")
	}
	if !auth.CanAssignRole(actor.Role, role) {
		return nil, apperrors.NewForbidden("no permission to assign this role")
	}

	if existing, err := s.employees.GetByEmail(ctx, email); err == nil && existing != nil {
		return nil, apperrors.NewConflict("employee email already exists", map[string]any{"email": email})
	} else if err != nil && err != pgx.ErrNoRows {
		return nil, apperrors.MapError(err)
	}

	if err := auth.ValidateNewPassword(password); err != nil {
		return nil, err
	}
	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	employee := &domain.Employee{
		Email:          email,
		FullName:       fullName,
		PasswordHash:   hash,
		Role:           role,
		Specialization: specialization,
		Active:         true,
	}
	if err := s.employees.Create(ctx, employee); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publish(ctx, actor, events.EventEmployeeCreated, employee.ID, events.EmployeeCreatedPayload{
		Email: employee.Email,
		Role:  employee.Role,
	})
	return employee, nil
}

// List returns employees visible to the actor.
func (s *EmployeeService) List(ctx context.Context, actor *domain.Employee, filters EmployeeListFilters) ([]domain.Employee, error) {
	if actor == nil || !auth.CanViewEmployee(actor.Role) {
		return nil, apperrors.NewForbidden("no permission to view employees")
	}
	return s.employees.List(ctx, repository.EmployeeFilter{
		Role:   filters.Role,
		Active: filters.Active,
		Search: filters.Search,
		Limit:  filters.Limit,
		Offset: filters.Offset,
	})
}

// GetByID fetches one employee.
func (s *EmployeeService) GetByID(ctx context.Context, actor *domain.Employee, id string) (*domain.Employee, error) {
	if actor == nil || !auth.CanViewEmployee(actor.Role) {
		return nil, apperrors.NewForbidden("no permission to view employees")
	}
	employee, err := s.employees.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return employee, nil
}

// Update mutates an employee subject to the actor/target level rules.
func (s *EmployeeService) Update(ctx context.Context, actor *domain.Employee, id string, update EmployeeUpdate) (*domain.Employee, error) {
	if actor == nil {
		return nil, apperrors.NewUnauthorized("authentication required")
	}
	employee, err := s.employees.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	if !auth.CanUpdateEmployee(actor.Role, employee.Role) {
		return nil, apperrors.NewForbidden("no permission to update this employee")
	}

	oldRole := employee.Role
	if update.Role != nil && *update.Role != employee.Role {
		if !auth.CanAssignRole(actor.Role, *update.Role) {
			return nil, apperrors.NewForbidden("no permission to assign this role")
		}
		employee.Role = *update.Role
	}
	if update.FullName != nil {
		employee.FullName = *update.FullName
	}
	if update.Specialization != nil {
		employee.Specialization = update.Specialization
	}
	if update.AvatarURL != nil {
		employee.AvatarURL = update.AvatarURL
	}
	if update.Active != nil {
		employee.Active = *update.Active
	}

	if err := s.employees.Update(ctx, employee); err != nil {
		return nil, apperrors.MapError(err)
	}

	if employee.Role != oldRole {
		s.publish(ctx, actor, events.EventEmployeeRoleChanged, employee.ID, events.EmployeeRoleChangedPayload{
			OldRole: oldRole,
			NewRole: employee.Role,
		})
	}
	return employee, nil
}

// Delete removes an employee under the same rule as update. The account is
// deactivated first so in-flight sessions lose access even if the row
// removal fails partway.
func (s *EmployeeService) Delete(ctx context.Context, actor *domain.Employee, id string) error {
	if actor == nil {
		return apperrors.NewUnauthorized("authentication required")
	}
	employee, err := s.employees.GetByID(ctx, id)
	if err != nil {
		return apperrors.MapError(err)
	}
	if !auth.CanDeleteEmployee(actor.Role, employee.Role) {
		return apperrors.NewForbidden("no permission to delete this employee")
	}
	if employee.Active {
		employee.Active = false
		if err := s.employees.Update(ctx, employee); err != nil {
			return apperrors.MapError(err)
		}
	}
	if err := s.employees.Delete(ctx, id); err != nil {
		return apperrors.MapError(err)
	}
	return nil
}

// AssignableRoles returns the roles the actor may hand out.
func (s *EmployeeService) AssignableRoles(actor *domain.Employee) []domain.Role {
	if actor == nil {
		return nil
	}
	return auth.AssignableRoles(actor.Role)
}

func (s *EmployeeService) publish(ctx context.Context, actor *domain.Employee, eventType events.EventType, subjectID string, payload any) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		SubjectID: subjectID,
		Actor:     events.Actor{EmployeeID: actor.ID, Role: actor.Role},
		Timestamp: time.Now(),
		Payload:   payload,
	})
}
