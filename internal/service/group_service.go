package service

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/edupanel/center-service/internal/auth"
	"github.com/edupanel/center-service/internal/domain"
	"github.com/edupanel/center-service/internal/repository"
	apperrors "github.com/edupanel/center-service/pkg/util"
)

// GroupService manages class groups. Mentors see only the groups they
// lead (an ownership filter, not a level check); administrator-tier roles
// get full CRUD.
type GroupService struct {
	groups    repository.GroupRepository
	employees repository.EmployeeRepository
}

// GroupUpdate carries the mutable group fields.
type GroupUpdate struct {
	Specialty    *string
	ScheduleDays *string
	TimeOfDay    *string
	StartDate    *time.Time
	Seats        *int
	Price        *float64
	MentorID     *string
	ClearMentor  bool
	Active       *bool
}

// NewGroupService constructs the service.
func NewGroupService(groups repository.GroupRepository, employees repository.EmployeeRepository) *GroupService {
	return &GroupService{groups: groups, employees: employees}
}

// List returns groups visible to the actor. Mentors are restricted to
// groups where they are the assigned mentor.
func (s *GroupService) List(ctx context.Context, actor *domain.Employee, filter repository.GroupFilter) ([]domain.Group, error) {
	if actor == nil {
		return nil, apperrors.NewUnauthorized("authentication required")
	}
	if actor.Role == domain.RoleMentor {
		filter.MentorID = &actor.ID
	}
	return s.groups.List(ctx, filter)
}

// GetByID fetches one group, applying the mentor ownership rule.
func (s *GroupService) GetByID(ctx context.Context, actor *domain.Employee, id string) (*domain.Group, error) {
	if actor == nil {
		return nil, apperrors.NewUnauthorized("authentication required")
	}
	group, err := s.groups.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	if actor.Role == domain.RoleMentor {
		if group.MentorID == nil || *group.MentorID != actor.ID {
			return nil, apperrors.NewForbidden("group belongs to another mentor")
		}
	}
	return group, nil
}

// Create adds a group.
func (s *GroupService) Create(ctx context.Context, actor *domain.Employee, group *domain.Group) (*domain.Group, error) {
	if actor == nil || !auth.CanManageGroups(actor.Role) {
		return nil, apperrors.NewForbidden("no permission to manage groups")
	}
	if err := s.checkMentorReference(ctx, group.MentorID); err != nil {
		return nil, err
	}
	group.Active = true
	if err := s.groups.Create(ctx, group); err != nil {
		return nil, apperrors.MapError(err)
	}
	return group, nil
}

// Update mutates a group.
func (s *GroupService) Update(ctx context.Context, actor *domain.Employee, id string, update GroupUpdate) (*domain.Group, error) {
	if actor == nil || !auth.CanManageGroups(actor.Role) {
		return nil, apperrors.NewForbidden("no permission to manage groups")
	}
	group, err := s.groups.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	if update.Specialty != nil {
		group.Specialty = *update.Specialty
	}
	if update.ScheduleDays != nil {
		group.ScheduleDays = *update.ScheduleDays
	}
	if update.TimeOfDay != nil {
		group.TimeOfDay = *update.TimeOfDay
	}
	if update.StartDate != nil {
		group.StartDate = update.StartDate
	}
	if update.Seats != nil {
		group.Seats = *update.Seats
	}
	if update.Price != nil {
		group.Price = *update.Price
	}
	if update.ClearMentor {
		group.MentorID = nil
	} else if update.MentorID != nil {
		if err := s.checkMentorReference(ctx, update.MentorID); err != nil {
			return nil, err
		}
		group.MentorID = update.MentorID
	}
	if update.Active != nil {
		group.Active = *update.Active
	}

	if err := s.groups.Update(ctx, group); err != nil {
		return nil, apperrors.MapError(err)
	}
	return group, nil
}

// Delete removes a group.
func (s *GroupService) Delete(ctx context.Context, actor *domain.Employee, id string) error {
	if actor == nil || !auth.CanManageGroups(actor.Role) {
		return apperrors.NewForbidden("no permission to manage groups")
	}
	if err := s.groups.Delete(ctx, id); err != nil {
		return apperrors.MapError(err)
	}
	return nil
}

// checkMentorReference validates that a mentor id points at an existing
// mentor-role employee. Earnings attribution would otherwise silently
// treat the group as unassigned.
func (s *GroupService) checkMentorReference(ctx context.Context, mentorID *string) error {
	if mentorID == nil {
		return nil
	}
	mentor, err := s.employees.GetByID(ctx, *mentorID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewValidationError("mentor does not exist", map[string]any{"mentor_id": *mentorID})
		}
		return apperrors.MapError(err)
	}
	if mentor.Role != domain.RoleMentor {
		return apperrors.NewValidationError("employee is not a mentor", map[string]any{"mentor_id": *mentorID})
	}
	return nil
}
