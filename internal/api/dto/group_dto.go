package dto

import (
	"time"

	"github.com/edupanel/center-service/internal/domain"
)

// CreateGroupRequest is the payload for creating a group.
type CreateGroupRequest struct {
	Specialty    string     `json:"specialty" validate:"required"`
	ScheduleDays string     `json:"schedule_days" validate:"required"`
	TimeOfDay    string     `json:"time_of_day" validate:"required"`
	StartDate    *time.Time `json:"start_date"`
	Seats        int        `json:"seats" validate:"gte=0"`
	Price        float64    `json:"price" validate:"gte=0"`
	MentorID     *string    `json:"mentor_id"`
}

// UpdateGroupRequest is the payload for updating a group.
type UpdateGroupRequest struct {
	Specialty    *string    `json:"specialty"`
	ScheduleDays *string    `json:"schedule_days"`
	TimeOfDay    *string    `json:"time_of_day"`
	StartDate    *time.Time `json:"start_date"`
	Seats        *int       `json:"seats"`
	Price        *float64   `json:"price"`
	MentorID     *string    `json:"mentor_id"`
	ClearMentor  bool       `json:"clear_mentor"`
	Active       *bool      `json:"active"`
}

// GroupResponse is the wire shape of a group.
type GroupResponse struct {
	ID           string     `json:"id"`
	Specialty    string     `json:"specialty"`
	ScheduleDays string     `json:"schedule_days"`
	TimeOfDay    string     `json:"time_of_day"`
	StartDate    *time.Time `json:"start_date,omitempty"`
	Seats        int        `json:"seats"`
	Price        float64    `json:"price"`
	MentorID     *string    `json:"mentor_id,omitempty"`
	Active       bool       `json:"active"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// NewGroupResponse maps the domain model.
func NewGroupResponse(group *domain.Group) GroupResponse {
	return GroupResponse{
		ID:           group.ID,
		Specialty:    group.Specialty,
		ScheduleDays: group.ScheduleDays,
		TimeOfDay:    group.TimeOfDay,
		StartDate:    group.StartDate,
		Seats:        group.Seats,
		Price:        group.Price,
		MentorID:     group.MentorID,
		Active:       group.Active,
		CreatedAt:    group.CreatedAt,
		UpdatedAt:    group.UpdatedAt,
	}
}
