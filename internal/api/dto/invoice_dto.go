package dto

import (
	"time"

	"github.com/edupanel/center-service/internal/domain"
)

// InvoiceResponse is the wire shape of an invoice.
type InvoiceResponse struct {
	ID          string     `json:"id"`
	StudentID   string     `json:"student_id"`
	GroupID     string     `json:"group_id"`
	Amount      float64    `json:"amount"`
	Status      string     `json:"status"`
	PaymentTime *time.Time `json:"payment_time,omitempty"`
	Notes       *string    `json:"notes,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// InvoiceListResponse is a paginated invoice listing.
type InvoiceListResponse struct {
	Items       []InvoiceResponse `json:"items"`
	Total       int               `json:"total"`
	HasNextPage bool              `json:"has_next_page"`
}

// NewInvoiceResponse maps the domain model.
func NewInvoiceResponse(invoice *domain.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:          invoice.ID,
		StudentID:   invoice.StudentID,
		GroupID:     invoice.GroupID,
		Amount:      invoice.Amount,
		Status:      string(invoice.Status),
		PaymentTime: invoice.PaymentTime,
		Notes:       invoice.Notes,
		CreatedAt:   invoice.CreatedAt,
		UpdatedAt:   invoice.UpdatedAt,
	}
}
