package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/edupanel/center-service/internal/api/dto"
	"github.com/edupanel/center-service/internal/report"
	"github.com/edupanel/center-service/internal/service"
	apperrors "github.com/edupanel/center-service/pkg/util"
)

// ReportsHandler exposes the monthly earnings report and salary endpoints.
type ReportsHandler struct {
	reports *service.ReportService
}

// NewReportsHandler constructs handler.
func NewReportsHandler(reports *service.ReportService) *ReportsHandler {
	return &ReportsHandler{reports: reports}
}

// Monthly handles GET /api/v1/reports/monthly?month=YYYY-MM.
func (h *ReportsHandler) Monthly(c *fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	month, err := report.ParseMonth(c.Query("month"))
	if err != nil {
		return apperrors.NewValidationError("invalid month", map[string]any{"month": c.Query("month")})
	}

	rep, err := h.reports.Monthly(c.UserContext(), actor, month)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewMonthlyReportResponse(rep)})
}

// RecordSalary handles POST /api/v1/reports/salaries.
func (h *ReportsHandler) RecordSalary(c *fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	var req dto.RecordSalaryRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	month, err := report.ParseMonth(req.Month)
	if err != nil {
		return apperrors.NewValidationError("invalid month", map[string]any{"month": req.Month})
	}

	salary, err := h.reports.RecordSalary(c.UserContext(), actor, req.EmployeeID, month, req.Amount)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.SalaryResponse{
		EmployeeID:  salary.EmployeeID,
		Month:       salary.Month,
		Amount:      salary.Amount,
		Paid:        salary.Paid,
		PaymentDate: salary.PaymentDate,
	}})
}

// SetSalaryPaid handles POST /api/v1/reports/salaries/paid.
func (h *ReportsHandler) SetSalaryPaid(c *fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	var req dto.SetSalaryPaidRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	month, err := report.ParseMonth(req.Month)
	if err != nil {
		return apperrors.NewValidationError("invalid month", map[string]any{"month": req.Month})
	}

	if err := h.reports.SetSalaryPaid(c.UserContext(), actor, req.EmployeeID, month, req.Paid); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"status": "updated"}})
}

// SetMentorPaid handles POST /api/v1/reports/mentor-payments/paid.
func (h *ReportsHandler) SetMentorPaid(c *fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	var req dto.SetMentorPaidRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	month, err := report.ParseMonth(req.Month)
	if err != nil {
		return apperrors.NewValidationError("invalid month", map[string]any{"month": req.Month})
	}

	if err := h.reports.SetMentorPaymentPaid(c.UserContext(), actor, req.MentorID, month, req.Amount, req.Paid); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"status": "updated"}})
}
