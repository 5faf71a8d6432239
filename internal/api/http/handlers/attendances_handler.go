package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/edupanel/center-service/internal/api/dto"
	"github.com/edupanel/center-service/internal/repository"
	"github.com/edupanel/center-service/internal/service"
	apperrors "github.com/edupanel/center-service/pkg/util"
)

const attendanceDateLayout = "2006-01-02"

// AttendancesHandler exposes session attendance endpoints.
type AttendancesHandler struct {
	attendances *service.AttendanceService
}

// NewAttendancesHandler constructs handler.
func NewAttendancesHandler(attendances *service.AttendanceService) *AttendancesHandler {
	return &AttendancesHandler{attendances: attendances}
}

// List handles GET /api/v1/attendances.
func (h *AttendancesHandler) List(c *fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	var filter repository.AttendanceFilter
	if groupID := c.Query("group_id"); groupID != "" {
		filter.GroupID = &groupID
	}
	if mentorID := c.Query("mentor_id"); mentorID != "" {
		filter.MentorID = &mentorID
	}
	if dateStr := c.Query("date"); dateStr != "" {
		date, parseErr := time.Parse(attendanceDateLayout, dateStr)
		if parseErr != nil {
			return apperrors.NewValidationError("invalid date", map[string]any{"date": dateStr})
		}
		filter.Date = &date
	}
	page := parseIntQuery(c, "page", 1)
	pageSize := parseIntQuery(c, "page_size", 50)
	filter.Offset = (page - 1) * pageSize
	filter.Limit = pageSize

	result, err := h.attendances.List(c.UserContext(), actor, filter)
	if err != nil {
		return err
	}
	items := make([]dto.AttendanceResponse, 0, len(result.Items))
	for i := range result.Items {
		items = append(items, dto.NewAttendanceResponse(&result.Items[i]))
	}
	return c.JSON(fiber.Map{"data": dto.AttendanceListResponse{
		Items:       items,
		Total:       result.Total,
		HasNextPage: result.HasNextPage,
	}})
}

// Get handles GET /api/v1/attendances/:id.
func (h *AttendancesHandler) Get(c *fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	attendance, err := h.attendances.GetByID(c.UserContext(), actor, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewAttendanceResponse(attendance)})
}

// Create handles POST /api/v1/attendances.
func (h *AttendancesHandler) Create(c *fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	var req dto.CreateAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	date, err := time.Parse(attendanceDateLayout, req.Date)
	if err != nil {
		return apperrors.NewValidationError("invalid date", map[string]any{"date": req.Date})
	}

	attendance, err := h.attendances.Create(c.UserContext(), actor, req.GroupID, date, req.MentorID, req.Participants)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.NewAttendanceResponse(attendance)})
}

// Update handles PUT /api/v1/attendances/:id.
func (h *AttendancesHandler) Update(c *fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	var req dto.UpdateAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	var date *time.Time
	if req.Date != nil {
		parsed, parseErr := time.Parse(attendanceDateLayout, *req.Date)
		if parseErr != nil {
			return apperrors.NewValidationError("invalid date", map[string]any{"date": *req.Date})
		}
		date = &parsed
	}

	attendance, err := h.attendances.Update(c.UserContext(), actor, c.Params("id"), date, req.Participants)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewAttendanceResponse(attendance)})
}

// Delete handles DELETE /api/v1/attendances/:id.
func (h *AttendancesHandler) Delete(c *fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	if err := h.attendances.Delete(c.UserContext(), actor, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"status": "deleted"}})
}
