package dto

import (
	"time"

	"github.com/edupanel/center-service/internal/domain"
)

// CreateEmployeeRequest is the payload for creating an employee.
type CreateEmployeeRequest struct {
	Email          string  `json:"email" validate:"required,email"`
	FullName       string  `json:"full_name" validate:"required"`
	Password       string  `json:"password" validate:"required,min=8"`
	Role           string  `json:"role" validate:"required,oneof=developer director administrator accountant sales_agent mentor assistant"`
	Specialization *string `json:"specialization"`
}

// UpdateEmployeeRequest is the payload for updating an employee.
type UpdateEmployeeRequest struct {
	FullName       *string `json:"full_name"`
	Role           *string `json:"role" validate:"omitempty,oneof=developer director administrator accountant sales_agent mentor assistant"`
	Specialization *string `json:"specialization"`
	AvatarURL      *string `json:"avatar_url"`
	Active         *bool   `json:"active"`
}

// EmployeeResponse is the wire shape of an employee.
type EmployeeResponse struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	FullName       string    `json:"full_name"`
	Role           string    `json:"role"`
	Specialization *string   `json:"specialization,omitempty"`
	AvatarURL      *string   `json:"avatar_url,omitempty"`
	Active         bool      `json:"active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewEmployeeResponse maps the domain model.
func NewEmployeeResponse(employee *domain.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:             employee.ID,
		Email:          employee.Email,
		FullName:       employee.FullName,
		Role:           string(employee.Role),
		Specialization: employee.Specialization,
		AvatarURL:      employee.AvatarURL,
		Active:         employee.Active,
		CreatedAt:      employee.CreatedAt,
		UpdatedAt:      employee.UpdatedAt,
	}
}
