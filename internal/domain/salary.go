package domain

import "time"

// EmployeeSalary is a manually recorded salary for one employee in one
// month. Amounts are set by the director or accountant, never computed.
type EmployeeSalary struct {
	ID          string
	EmployeeID  string
	Month       string
	Amount      float64
	Paid        bool
	PaymentDate *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// MentorPaymentStatus tracks whether a mentor's commission for a month has
// been paid out.
type MentorPaymentStatus struct {
	ID          string
	MentorID    string
	Month       string
	Amount      float64
	Paid        bool
	PaymentDate *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
