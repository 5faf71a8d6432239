package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/edupanel/center-service/internal/api/dto"
	"github.com/edupanel/center-service/internal/domain"
	"github.com/edupanel/center-service/internal/repository"
	"github.com/edupanel/center-service/internal/service"
)

// InvoicesHandler exposes read-only invoice endpoints. Invoices arrive
// through the billing import, so the API never mutates them.
type InvoicesHandler struct {
	invoices *service.InvoiceService
}

// NewInvoicesHandler constructs handler.
func NewInvoicesHandler(invoices *service.InvoiceService) *InvoicesHandler {
	return &InvoicesHandler{invoices: invoices}
}

// List handles GET /api/v1/invoices.
func (h *InvoicesHandler) List(c *fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	var filter repository.InvoiceFilter
	if status := c.Query("status"); status != "" {
		parsed := domain.InvoiceStatus(status)
		filter.Status = &parsed
	}
	if studentID := c.Query("student_id"); studentID != "" {
		filter.StudentID = &studentID
	}
	if groupID := c.Query("group_id"); groupID != "" {
		filter.GroupID = &groupID
	}
	filter.Search = c.Query("search")
	filter.Ordering = c.Query("ordering")
	page := parseIntQuery(c, "page", 1)
	pageSize := parseIntQuery(c, "page_size", 50)
	filter.Offset = (page - 1) * pageSize
	filter.Limit = pageSize

	result, err := h.invoices.List(c.UserContext(), actor, filter)
	if err != nil {
		return err
	}
	items := make([]dto.InvoiceResponse, 0, len(result.Items))
	for i := range result.Items {
		items = append(items, dto.NewInvoiceResponse(&result.Items[i]))
	}
	return c.JSON(fiber.Map{"data": dto.InvoiceListResponse{
		Items:       items,
		Total:       result.Total,
		HasNextPage: result.HasNextPage,
	}})
}

// Get handles GET /api/v1/invoices/:id.
func (h *InvoicesHandler) Get(c *fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	invoice, err := h.invoices.GetByID(c.UserContext(), actor, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewInvoiceResponse(invoice)})
}
