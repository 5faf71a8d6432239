package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/edupanel/center-service/internal/api/dto"
	"github.com/edupanel/center-service/internal/repository"
	"github.com/edupanel/center-service/internal/service"
	apperrors "github.com/edupanel/center-service/pkg/util"
)

// StudentsHandler exposes student management endpoints.
type StudentsHandler struct {
	students *service.StudentService
}

// NewStudentsHandler constructs handler.
func NewStudentsHandler(students *service.StudentService) *StudentsHandler {
	return &StudentsHandler{students: students}
}

// List handles GET /api/v1/students.
func (h *StudentsHandler) List(c *fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	var filter repository.StudentFilter
	if groupID := c.Query("group_id"); groupID != "" {
		filter.GroupID = &groupID
	}
	if active := c.Query("active"); active != "" {
		if val, parseErr := strconv.ParseBool(active); parseErr == nil {
			filter.Active = &val
		}
	}
	filter.Search = c.Query("search")
	page := parseIntQuery(c, "page", 1)
	pageSize := parseIntQuery(c, "page_size", 50)
	filter.Offset = (page - 1) * pageSize
	filter.Limit = pageSize

	list, err := h.students.List(c.UserContext(), actor, filter)
	if err != nil {
		return err
	}
	resp := make([]dto.StudentResponse, 0, len(list))
	for i := range list {
		resp = append(resp, dto.NewStudentResponse(&list[i]))
	}
	return c.JSON(fiber.Map{"data": resp})
}

// Create handles POST /api/v1/students.
func (h *StudentsHandler) Create(c *fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	var req dto.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	student, err := h.students.Create(c.UserContext(), actor, req.Email, req.FullName, req.Phone, req.GroupID)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.NewStudentResponse(student)})
}

// Get handles GET /api/v1/students/:id.
func (h *StudentsHandler) Get(c *fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	student, err := h.students.GetByID(c.UserContext(), actor, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewStudentResponse(student)})
}

// Update handles PUT /api/v1/students/:id.
func (h *StudentsHandler) Update(c *fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	var req dto.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	student, err := h.students.Update(c.UserContext(), actor, c.Params("id"), service.StudentUpdate{
		FullName:   req.FullName,
		Phone:      req.Phone,
		GroupID:    req.GroupID,
		ClearGroup: req.ClearGroup,
		Active:     req.Active,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewStudentResponse(student)})
}

// Delete handles DELETE /api/v1/students/:id.
func (h *StudentsHandler) Delete(c *fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	if err := h.students.Delete(c.UserContext(), actor, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"status": "deleted"}})
}
