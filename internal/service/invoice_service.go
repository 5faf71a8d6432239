package service

import (
	"context"

	"github.com/edupanel/center-service/internal/domain"
	"github.com/edupanel/center-service/internal/repository"
	apperrors "github.com/edupanel/center-service/pkg/util"
)

// InvoiceService exposes the invoice ledger. Invoices are settled by the
// payment gateway upstream; this service only reads.
type InvoiceService struct {
	invoices repository.InvoiceRepository
}

// InvoicePage is one page of invoice results.
type InvoicePage struct {
	Items       []domain.Invoice
	Total       int
	HasNextPage bool
}

// NewInvoiceService constructs the service.
func NewInvoiceService(invoices repository.InvoiceRepository) *InvoiceService {
	return &InvoiceService{invoices: invoices}
}

// List returns a page of invoices.
func (s *InvoiceService) List(ctx context.Context, actor *domain.Employee, filter repository.InvoiceFilter) (*InvoicePage, error) {
	if actor == nil {
		return nil, apperrors.NewUnauthorized("authentication required")
	}
	items, total, err := s.invoices.List(ctx, filter)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return &InvoicePage{
		Items:       items,
		Total:       total,
		HasNextPage: filter.Offset+len(items) < total,
	}, nil
}

// GetByID fetches one invoice.
func (s *InvoiceService) GetByID(ctx context.Context, actor *domain.Employee, id string) (*domain.Invoice, error) {
	if actor == nil {
		return nil, apperrors.NewUnauthorized("authentication required")
	}
	invoice, err := s.invoices.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return invoice, nil
}
