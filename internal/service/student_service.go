package service

import (
	"context"

	"github.com/edupanel/center-service/internal/auth"
	"github.com/edupanel/center-service/internal/domain"
	"github.com/edupanel/center-service/internal/repository"
	apperrors "github.com/edupanel/center-service/pkg/util"
)

// StudentService manages student records. Any authenticated employee may
// read; mutation is limited by the student-page rule.
type StudentService struct {
	students repository.StudentRepository
	groups   repository.GroupRepository
}

// StudentUpdate carries the mutable student fields.
type StudentUpdate struct {
	FullName   *string
	Phone      *string
	GroupID    *string
	ClearGroup bool
	Active     *bool
}

// NewStudentService constructs the service.
func NewStudentService(students repository.StudentRepository, groups repository.GroupRepository) *StudentService {
	return &StudentService{students: students, groups: groups}
}

// List returns students matching the filter.
func (s *StudentService) List(ctx context.Context, actor *domain.Employee, filter repository.StudentFilter) ([]domain.Student, error) {
	if actor == nil {
		return nil, apperrors.NewUnauthorized("authentication required")
	}
	return s.students.List(ctx, filter)
}

// GetByID fetches one student.
func (s *StudentService) GetByID(ctx context.Context, actor *domain.Employee, id string) (*domain.Student, error) {
	if actor == nil {
		return nil, apperrors.NewUnauthorized("authentication required")
	}
	student, err := s.students.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return student, nil
}

// Create adds a student, optionally placed into a group.
func (s *StudentService) Create(ctx context.Context, actor *domain.Employee, email, fullName, phone string, groupID *string) (*domain.Student, error) {
	if actor == nil || !auth.CanManageStudents(actor.Role) {
		return nil, apperrors.NewForbidden("no permission to manage students")
	}
	if groupID != nil {
		if _, err := s.groups.GetByID(ctx, *groupID); err != nil {
			return nil, apperrors.NewValidationError("group does not exist", map[string]any{"group_id": *groupID})
		}
	}
	student := &domain.Student{
		Email:    email,
		FullName: fullName,
		Phone:    phone,
		GroupID:  groupID,
		Active:   true,
	}
	if err := s.students.Create(ctx, student); err != nil {
		return nil, apperrors.MapError(err)
	}
	return student, nil
}

// Update mutates a student. A student belongs to at most one group;
// assigning a new group replaces the previous membership.
func (s *StudentService) Update(ctx context.Context, actor *domain.Employee, id string, update StudentUpdate) (*domain.Student, error) {
	if actor == nil || !auth.CanManageStudents(actor.Role) {
		return nil, apperrors.NewForbidden("no permission to manage students")
	}
	student, err := s.students.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	if update.FullName != nil {
		student.FullName = *update.FullName
	}
	if update.Phone != nil {
		student.Phone = *update.Phone
	}
	if update.ClearGroup {
		student.GroupID = nil
	} else if update.GroupID != nil {
		if _, err := s.groups.GetByID(ctx, *update.GroupID); err != nil {
			return nil, apperrors.NewValidationError("group does not exist", map[string]any{"group_id": *update.GroupID})
		}
		student.GroupID = update.GroupID
	}
	if update.Active != nil {
		student.Active = *update.Active
	}

	if err := s.students.Update(ctx, student); err != nil {
		return nil, apperrors.MapError(err)
	}
	return student, nil
}

// Delete removes a student record.
func (s *StudentService) Delete(ctx context.Context, actor *domain.Employee, id string) error {
	if actor == nil || !auth.CanManageStudents(actor.Role) {
		return apperrors.NewForbidden("no permission to manage students")
	}
	if err := s.students.Delete(ctx, id); err != nil {
		return apperrors.MapError(err)
	}
	return nil
}
