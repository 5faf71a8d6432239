package domain

import "time"

// InvoiceStatus represents lifecycle states of a billing record.
type InvoiceStatus string

const (
	InvoiceStatusCreated   InvoiceStatus = "created"
	InvoiceStatusPending   InvoiceStatus = "pending"
	InvoiceStatusPaid      InvoiceStatus = "paid"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
	InvoiceStatusRefunded  InvoiceStatus = "refunded"
	InvoiceStatusExpired   InvoiceStatus = "expired"
)

// Invoice is a billing record for one student in one group. Only paid
// invoices with a payment timestamp participate in earnings reports.
type Invoice struct {
	ID          string
	StudentID   string
	GroupID     string
	Amount      float64
	Status      InvoiceStatus
	PaymentTime *time.Time
	Notes       *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
