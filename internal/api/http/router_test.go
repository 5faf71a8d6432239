package http

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/edupanel/center-service/internal/api/http/handlers"
	"github.com/edupanel/center-service/internal/auth"
	"github.com/edupanel/center-service/internal/domain"
	"github.com/edupanel/center-service/internal/observability"
	"github.com/edupanel/center-service/internal/repository"
)

// stubEmployeeRepo backs the auth middleware with one employee per role,
// keyed by role name.
type stubEmployeeRepo struct{}

func (stubEmployeeRepo) Create(context.Context, *domain.Employee) error { return nil }
func (stubEmployeeRepo) Update(context.Context, *domain.Employee) error { return nil }
func (stubEmployeeRepo) Delete(context.Context, string) error           { return nil }

func (stubEmployeeRepo) GetByID(_ context.Context, id string) (*domain.Employee, error) {
	for _, role := range domain.AllRoles {
		if string(role) == id {
			return &domain.Employee{ID: id, Role: role, Active: true}, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (stubEmployeeRepo) GetByEmail(context.Context, string) (*domain.Employee, error) {
	return nil, pgx.ErrNoRows
}

func (stubEmployeeRepo) List(context.Context, repository.EmployeeFilter) ([]domain.Employee, error) {
	return nil, nil
}

// The handlers behind the gates are nil; a request that clears the auth
// and permission middlewares panics inside the handler and surfaces as a
// 500 from the recovery middleware. That is enough to distinguish
// "routed through" from a 401/403 rejection.
func newGatingTestApp(t *testing.T) (*fiber.App, *auth.TokenManager) {
	t.Helper()
	tokens := auth.NewTokenManager("route-test-secret", time.Hour)
	app := fiber.New()
	RegisterMiddlewares(app, zap.NewNop(), observability.NewMetrics(), time.Second)
	RegisterRoutes(app, RouteConfig{
		Health:         &handlers.HealthHandler{},
		AuthMiddleware: auth.NewAuthMiddleware(tokens, stubEmployeeRepo{}),
	})
	return app, tokens
}

func TestRouteGating(t *testing.T) {
	app, tokens := newGatingTestApp(t)

	cases := []struct {
		name      string
		method    string
		path      string
		role      domain.Role
		forbidden bool
	}{
		{"students read open to mentor", "GET", "/api/v1/students", domain.RoleMentor, false},
		{"students read open to accountant", "GET", "/api/v1/students", domain.RoleAccountant, false},
		{"students create needs manage", "POST", "/api/v1/students", domain.RoleMentor, true},
		{"students create by administrator", "POST", "/api/v1/students", domain.RoleAdministrator, false},
		{"students delete needs manage", "DELETE", "/api/v1/students/s1", domain.RoleDirector, true},
		{"invoices read open to sales agent", "GET", "/api/v1/invoices", domain.RoleSalesAgent, false},
		{"attendance read open to accountant", "GET", "/api/v1/attendances", domain.RoleAccountant, false},
		{"attendance create needs role", "POST", "/api/v1/attendances", domain.RoleAccountant, true},
		{"attendance create by mentor", "POST", "/api/v1/attendances", domain.RoleMentor, false},
		{"attendance update needs role", "PUT", "/api/v1/attendances/a1", domain.RoleSalesAgent, true},
		{"employees listing gated", "GET", "/api/v1/employees", domain.RoleMentor, true},
		{"employees listing by administrator", "GET", "/api/v1/employees", domain.RoleAdministrator, false},
		{"groups create gated", "POST", "/api/v1/groups", domain.RoleMentor, true},
		{"groups read open to mentor", "GET", "/api/v1/groups", domain.RoleMentor, false},
		{"monthly report gated", "GET", "/api/v1/reports/monthly?month=2024-03", domain.RoleMentor, true},
		{"monthly report by accountant", "GET", "/api/v1/reports/monthly?month=2024-03", domain.RoleAccountant, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			token, _, err := tokens.GenerateToken(string(tc.role), tc.role)
			if err != nil {
				t.Fatalf("GenerateToken() error = %v", err)
			}
			req := httptest.NewRequest(tc.method, tc.path, nil)
			req.Header.Set("Authorization", "Bearer "+token)
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test() error = %v", err)
			}
			defer resp.Body.Close()

			if tc.forbidden && resp.StatusCode != fiber.StatusForbidden {
				t.Errorf("%s %s as %s: status = %d, want 403", tc.method, tc.path, tc.role, resp.StatusCode)
			}
			if !tc.forbidden && (resp.StatusCode == fiber.StatusForbidden || resp.StatusCode == fiber.StatusUnauthorized) {
				t.Errorf("%s %s as %s: status = %d, want routed through", tc.method, tc.path, tc.role, resp.StatusCode)
			}
		})
	}
}

func TestRouteGatingRequiresToken(t *testing.T) {
	app, _ := newGatingTestApp(t)

	req := httptest.NewRequest("GET", "/api/v1/students", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
}
