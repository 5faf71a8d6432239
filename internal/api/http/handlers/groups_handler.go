package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/edupanel/center-service/internal/api/dto"
	"github.com/edupanel/center-service/internal/domain"
	"github.com/edupanel/center-service/internal/repository"
	"github.com/edupanel/center-service/internal/service"
	apperrors "github.com/edupanel/center-service/pkg/util"
)

// GroupsHandler exposes training group endpoints.
type GroupsHandler struct {
	groups *service.GroupService
}

// NewGroupsHandler constructs handler.
func NewGroupsHandler(groups *service.GroupService) *GroupsHandler {
	return &GroupsHandler{groups: groups}
}

// List handles GET /api/v1/groups. Mentors only see their own groups.
func (h *GroupsHandler) List(c *fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	var filter repository.GroupFilter
	if mentorID := c.Query("mentor_id"); mentorID != "" {
		filter.MentorID = &mentorID
	}
	if active := c.Query("active"); active != "" {
		if val, parseErr := strconv.ParseBool(active); parseErr == nil {
			filter.Active = &val
		}
	}

	list, err := h.groups.List(c.UserContext(), actor, filter)
	if err != nil {
		return err
	}
	resp := make([]dto.GroupResponse, 0, len(list))
	for i := range list {
		resp = append(resp, dto.NewGroupResponse(&list[i]))
	}
	return c.JSON(fiber.Map{"data": resp})
}

// Get handles GET /api/v1/groups/:id.
func (h *GroupsHandler) Get(c *fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	group, err := h.groups.GetByID(c.UserContext(), actor, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewGroupResponse(group)})
}

// Create handles POST /api/v1/groups.
func (h *GroupsHandler) Create(c *fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	var req dto.CreateGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	group, err := h.groups.Create(c.UserContext(), actor, &domain.Group{
		Specialty:    req.Specialty,
		ScheduleDays: req.ScheduleDays,
		TimeOfDay:    req.TimeOfDay,
		StartDate:    req.StartDate,
		Seats:        req.Seats,
		Price:        req.Price,
		MentorID:     req.MentorID,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.NewGroupResponse(group)})
}

// Update handles PUT /api/v1/groups/:id.
func (h *GroupsHandler) Update(c *fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	var req dto.UpdateGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	group, err := h.groups.Update(c.UserContext(), actor, c.Params("id"), service.GroupUpdate{
		Specialty:    req.Specialty,
		ScheduleDays: req.ScheduleDays,
		TimeOfDay:    req.TimeOfDay,
		StartDate:    req.StartDate,
		Seats:        req.Seats,
		Price:        req.Price,
		MentorID:     req.MentorID,
		ClearMentor:  req.ClearMentor,
		Active:       req.Active,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewGroupResponse(group)})
}

// Delete handles DELETE /api/v1/groups/:id.
func (h *GroupsHandler) Delete(c *fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	if err := h.groups.Delete(c.UserContext(), actor, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"status": "deleted"}})
}
