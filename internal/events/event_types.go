package events

import (
	"time"

	"github.com/edupanel/center-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventEmployeeCreated     EventType = "employee_created"
	EventEmployeeRoleChanged EventType = "employee_role_changed"
	EventSalaryRecorded      EventType = "salary_recorded"
	EventMentorPaymentMarked EventType = "mentor_payment_marked"
)

// Actor identifies the employee responsible for an event.
type Actor struct {
	EmployeeID string      `json:"employee_id"`
	Role       domain.Role `json:"role"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	SubjectID string      `json:"subject_id"`
	Actor     Actor       `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// EmployeeCreatedPayload payload.
type EmployeeCreatedPayload struct {
	Email string      `json:"email"`
	Role  domain.Role `json:"role"`
}

// EmployeeRoleChangedPayload payload.
type EmployeeRoleChangedPayload struct {
	OldRole domain.Role `json:"old_role"`
	NewRole domain.Role `json:"new_role"`
}

// SalaryRecordedPayload payload.
type SalaryRecordedPayload struct {
	Month  string  `json:"month"`
	Amount float64 `json:"amount"`
}

// MentorPaymentMarkedPayload payload.
type MentorPaymentMarkedPayload struct {
	Month  string  `json:"month"`
	Amount float64 `json:"amount"`
	Paid   bool    `json:"paid"`
}
