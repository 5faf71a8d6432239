package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/edupanel/center-service/internal/api/dto"
	"github.com/edupanel/center-service/internal/auth"
	"github.com/edupanel/center-service/internal/domain"
	"github.com/edupanel/center-service/internal/service"
	apperrors "github.com/edupanel/center-service/pkg/util"
)

// EmployeesHandler exposes employee management endpoints.
type EmployeesHandler struct {
	employees *service.EmployeeService
}

// NewEmployeesHandler constructs handler.
func NewEmployeesHandler(employees *service.EmployeeService) *EmployeesHandler {
	return &EmployeesHandler{employees: employees}
}

// List handles GET /api/v1/employees.
func (h *EmployeesHandler) List(c *fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	var filters service.EmployeeListFilters
	if roleStr := c.Query("role"); roleStr != "" {
		role := domain.Role(roleStr)
		filters.Role = &role
	}
	if active := c.Query("active"); active != "" {
		if val, parseErr := strconv.ParseBool(active); parseErr == nil {
			filters.Active = &val
		}
	}
	filters.Search = c.Query("search")
	page := parseIntQuery(c, "page", 1)
	pageSize := parseIntQuery(c, "page_size", 50)
	filters.Offset = (page - 1) * pageSize
	filters.Limit = pageSize

	list, err := h.employees.List(c.UserContext(), actor, filters)
	if err != nil {
		return err
	}
	resp := make([]dto.EmployeeResponse, 0, len(list))
	for i := range list {
		resp = append(resp, dto.NewEmployeeResponse(&list[i]))
	}
	return c.JSON(fiber.Map{"data": resp})
}

// Create handles POST /api/v1/employees.
func (h *EmployeesHandler) Create(c *fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	var req dto.CreateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	employee, err := h.employees.Create(c.UserContext(), actor, req.Email, req.FullName, req.Password, domain.Role(req.Role), req.Specialization)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.NewEmployeeResponse(employee)})
}

// Get handles GET /api/v1/employees/:id.
func (h *EmployeesHandler) Get(c *fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	employee, err := h.employees.GetByID(c.UserContext(), actor, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewEmployeeResponse(employee)})
}

// Update handles PUT /api/v1/employees/:id.
func (h *EmployeesHandler) Update(c *fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	var req dto.UpdateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	update := service.EmployeeUpdate{
		FullName:       req.FullName,
		Specialization: req.Specialization,
		AvatarURL:      req.AvatarURL,
		Active:         req.Active,
	}
	if req.Role != nil {
		role := domain.Role(*req.Role)
		update.Role = &role
	}

	employee, err := h.employees.Update(c.UserContext(), actor, c.Params("id"), update)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewEmployeeResponse(employee)})
}

// Delete handles DELETE /api/v1/employees/:id.
func (h *EmployeesHandler) Delete(c *fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	if err := h.employees.Delete(c.UserContext(), actor, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"status": "deleted"}})
}

// AssignableRoles handles GET /api/v1/employees/roles/assignable.
func (h *EmployeesHandler) AssignableRoles(c *fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	roles := h.employees.AssignableRoles(actor)
	resp := make([]string, 0, len(roles))
	for _, role := range roles {
		resp = append(resp, string(role))
	}
	return c.JSON(fiber.Map{"data": resp})
}

func requireActor(c *fiber.Ctx) (*domain.Employee, error) {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.Employee == nil {
		return nil, apperrors.NewUnauthorized("authentication required")
	}
	return principal.Employee, nil
}

func parseIntQuery(c *fiber.Ctx, key string, defaultVal int) int {
	if val := c.Query(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
			return parsed
		}
	}
	return defaultVal
}
