package dto

import (
	"time"

	"github.com/edupanel/center-service/internal/domain"
)

// CreateStudentRequest is the payload for creating a student.
type CreateStudentRequest struct {
	Email    string  `json:"email" validate:"required,email"`
	FullName string  `json:"full_name" validate:"required"`
	Phone    string  `json:"phone" validate:"required"`
	GroupID  *string `json:"group_id"`
}

// UpdateStudentRequest is the payload for updating a student. Setting
// clear_group removes the group membership regardless of group_id.
type UpdateStudentRequest struct {
	FullName   *string `json:"full_name"`
	Phone      *string `json:"phone"`
	GroupID    *string `json:"group_id"`
	ClearGroup bool    `json:"clear_group"`
	Active     *bool   `json:"active"`
}

// StudentResponse is the wire shape of a student.
type StudentResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Phone     string    `json:"phone"`
	GroupID   *string   `json:"group_id,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewStudentResponse maps the domain model.
func NewStudentResponse(student *domain.Student) StudentResponse {
	return StudentResponse{
		ID:        student.ID,
		Email:     student.Email,
		FullName:  student.FullName,
		Phone:     student.Phone,
		GroupID:   student.GroupID,
		Active:    student.Active,
		CreatedAt: student.CreatedAt,
		UpdatedAt: student.UpdatedAt,
	}
}
