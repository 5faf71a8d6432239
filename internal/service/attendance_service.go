package service

import (
	"context"
	"time"

	"github.com/edupanel/center-service/internal/auth"
	"github.com/edupanel/center-service/internal/domain"
	"github.com/edupanel/center-service/internal/repository"
	apperrors "github.com/edupanel/center-service/pkg/util"
)

// AttendanceService records class sessions. Creation is open to mentors
// alongside the administrator tier; participants must belong to the
// group's current roster.
type AttendanceService struct {
	attendances repository.AttendanceRepository
	groups      repository.GroupRepository
	students    repository.StudentRepository
}

// AttendancePage is one page of attendance results.
type AttendancePage struct {
	Items       []domain.Attendance
	Total       int
	HasNextPage bool
}

// NewAttendanceService constructs the service.
func NewAttendanceService(
	attendances repository.AttendanceRepository,
	groups repository.GroupRepository,
	students repository.StudentRepository,
) *AttendanceService {
	return &AttendanceService{attendances: attendances, groups: groups, students: students}
}

// List returns attendance records matching the filter. Mentors are
// restricted to their own sessions.
func (s *AttendanceService) List(ctx context.Context, actor *domain.Employee, filter repository.AttendanceFilter) (*AttendancePage, error) {
	if actor == nil {
		return nil, apperrors.NewUnauthorized("authentication required")
	}
	if actor.Role == domain.RoleMentor {
		filter.MentorID = &actor.ID
	}
	items, total, err := s.attendances.List(ctx, filter)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return &AttendancePage{
		Items:       items,
		Total:       total,
		HasNextPage: filter.Offset+len(items) < total,
	}, nil
}

// GetByID fetches one attendance record.
func (s *AttendanceService) GetByID(ctx context.Context, actor *domain.Employee, id string) (*domain.Attendance, error) {
	if actor == nil {
		return nil, apperrors.NewUnauthorized("authentication required")
	}
	attendance, err := s.attendances.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return attendance, nil
}

// Create records a session.
func (s *AttendanceService) Create(ctx context.Context, actor *domain.Employee, groupID string, date time.Time, mentorID *string, participants []string) (*domain.Attendance, error) {
	if actor == nil || !auth.CanRecordAttendance(actor.Role) {
		return nil, apperrors.NewForbidden("no permission to record attendance")
	}
	group, err := s.groups.GetByID(ctx, groupID)
	if err != nil {
		return nil, apperrors.NewValidationError("group does not exist", map[string]any{"group_id": groupID})
	}
	if actor.Role == domain.RoleMentor {
		if group.MentorID == nil || *group.MentorID != actor.ID {
			return nil, apperrors.NewForbidden("group belongs to another mentor")
		}
		mentorID = &actor.ID
	}
	if err := s.checkParticipants(ctx, groupID, participants); err != nil {
		return nil, err
	}

	attendance := &domain.Attendance{
		GroupID:      groupID,
		Date:         date,
		MentorID:     mentorID,
		Participants: participants,
	}
	if err := s.attendances.Create(ctx, attendance); err != nil {
		return nil, apperrors.MapError(err)
	}
	return attendance, nil
}

// Update mutates a session record.
func (s *AttendanceService) Update(ctx context.Context, actor *domain.Employee, id string, date *time.Time, participants []string) (*domain.Attendance, error) {
	if actor == nil || !auth.CanRecordAttendance(actor.Role) {
		return nil, apperrors.NewForbidden("no permission to record attendance")
	}
	attendance, err := s.attendances.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	if actor.Role == domain.RoleMentor {
		if attendance.MentorID == nil || *attendance.MentorID != actor.ID {
			return nil, apperrors.NewForbidden("session belongs to another mentor")
		}
	}

	if date != nil {
		attendance.Date = *date
	}
	if participants != nil {
		if err := s.checkParticipants(ctx, attendance.GroupID, participants); err != nil {
			return nil, err
		}
		attendance.Participants = participants
	}

	if err := s.attendances.Update(ctx, attendance); err != nil {
		return nil, apperrors.MapError(err)
	}
	return attendance, nil
}

// Delete removes a session record.
func (s *AttendanceService) Delete(ctx context.Context, actor *domain.Employee, id string) error {
	if actor == nil || !auth.CanRecordAttendance(actor.Role) {
		return apperrors.NewForbidden("no permission to record attendance")
	}
	attendance, err := s.attendances.GetByID(ctx, id)
	if err != nil {
		return apperrors.MapError(err)
	}
	if actor.Role == domain.RoleMentor {
		if attendance.MentorID == nil || *attendance.MentorID != actor.ID {
			return apperrors.NewForbidden("session belongs to another mentor")
		}
	}
	if err := s.attendances.Delete(ctx, id); err != nil {
		return apperrors.MapError(err)
	}
	return nil
}

// checkParticipants verifies every participant is on the group's current
// roster.
func (s *AttendanceService) checkParticipants(ctx context.Context, groupID string, participants []string) error {
	if len(participants) == 0 {
		return nil
	}
	roster, err := s.students.ListByGroup(ctx, groupID)
	if err != nil {
		return apperrors.MapError(err)
	}
	members := make(map[string]struct{}, len(roster))
	for _, student := range roster {
		members[student.ID] = struct{}{}
	}
	for _, id := range participants {
		if _, ok := members[id]; !ok {
			return apperrors.NewValidationError("participant not in group", map[string]any{"student_id": id})
		}
	}
	return nil
}
