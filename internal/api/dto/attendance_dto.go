package dto

import (
	"time"

	"github.com/edupanel/center-service/internal/domain"
)

// CreateAttendanceRequest is the payload for recording a session.
type CreateAttendanceRequest struct {
	GroupID      string   `json:"group_id" validate:"required"`
	Date         string   `json:"date" validate:"required,datetime=2006-01-02"`
	MentorID     *string  `json:"mentor_id"`
	Participants []string `json:"participants"`
}

// UpdateAttendanceRequest is the payload for updating a session record.
type UpdateAttendanceRequest struct {
	Date         *string  `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Participants []string `json:"participants"`
}

// AttendanceResponse is the wire shape of an attendance record.
type AttendanceResponse struct {
	ID           string    `json:"id"`
	GroupID      string    `json:"group_id"`
	Date         string    `json:"date"`
	MentorID     *string   `json:"mentor_id,omitempty"`
	Participants []string  `json:"participants"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// AttendanceListResponse is a paginated attendance listing.
type AttendanceListResponse struct {
	Items       []AttendanceResponse `json:"items"`
	Total       int                  `json:"total"`
	HasNextPage bool                 `json:"has_next_page"`
}

// NewAttendanceResponse maps the domain model.
func NewAttendanceResponse(attendance *domain.Attendance) AttendanceResponse {
	participants := attendance.Participants
	if participants == nil {
		participants = []string{}
	}
	return AttendanceResponse{
		ID:           attendance.ID,
		GroupID:      attendance.GroupID,
		Date:         attendance.Date.Format("2006-01-02"),
		MentorID:     attendance.MentorID,
		Participants: participants,
		CreatedAt:    attendance.CreatedAt,
		UpdatedAt:    attendance.UpdatedAt,
	}
}
