package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/edupanel/center-service/internal/api/http/handlers"
	"github.com/edupanel/center-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Employees      *handlers.EmployeesHandler
	Students       *handlers.StudentsHandler
	Groups         *handlers.GroupsHandler
	Invoices       *handlers.InvoicesHandler
	Attendances    *handlers.AttendancesHandler
	Reports        *handlers.ReportsHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/metrics", cfg.Health.Metrics)

	api := app.Group("/api/v1")

	authGroup := api.Group("/auth")
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/refresh", cfg.Auth.Refresh)
	authGroup.Post("/logout", cfg.Auth.Logout)
	authGroup.Post("/password/change", cfg.AuthMiddleware.Handle, auth.RequireAuthenticated(), cfg.Auth.ChangePassword)
	authGroup.Get("/me", cfg.AuthMiddleware.Handle, auth.RequireAuthenticated(), cfg.Auth.Me)

	protected := api.Group("", cfg.AuthMiddleware.Handle, auth.RequireAuthenticated())

	employees := protected.Group("/employees", auth.RequireFullAccess())
	employees.Get("/", cfg.Employees.List)
	employees.Post("/", cfg.Employees.Create)
	employees.Get("/roles/assignable", cfg.Employees.AssignableRoles)
	employees.Get("/:id", cfg.Employees.Get)
	employees.Put("/:id", cfg.Employees.Update)
	employees.Delete("/:id", cfg.Employees.Delete)

	// Listings stay open to any authenticated employee; only the
	// mutations carry the page permission.
	students := protected.Group("/students")
	students.Get("/", cfg.Students.List)
	students.Post("/", auth.RequirePermission(auth.CanManageStudents), cfg.Students.Create)
	students.Get("/:id", cfg.Students.Get)
	students.Put("/:id", auth.RequirePermission(auth.CanManageStudents), cfg.Students.Update)
	students.Delete("/:id", auth.RequirePermission(auth.CanManageStudents), cfg.Students.Delete)

	groups := protected.Group("/groups")
	groups.Get("/", cfg.Groups.List)
	groups.Get("/:id", cfg.Groups.Get)
	groups.Post("/", auth.RequirePermission(auth.CanManageGroups), cfg.Groups.Create)
	groups.Put("/:id", auth.RequirePermission(auth.CanManageGroups), cfg.Groups.Update)
	groups.Delete("/:id", auth.RequirePermission(auth.CanManageGroups), cfg.Groups.Delete)

	invoices := protected.Group("/invoices")
	invoices.Get("/", cfg.Invoices.List)
	invoices.Get("/:id", cfg.Invoices.Get)

	attendances := protected.Group("/attendances")
	attendances.Get("/", cfg.Attendances.List)
	attendances.Post("/", auth.RequirePermission(auth.CanRecordAttendance), cfg.Attendances.Create)
	attendances.Get("/:id", cfg.Attendances.Get)
	attendances.Put("/:id", auth.RequirePermission(auth.CanRecordAttendance), cfg.Attendances.Update)
	attendances.Delete("/:id", auth.RequirePermission(auth.CanRecordAttendance), cfg.Attendances.Delete)

	reports := protected.Group("/reports")
	reports.Get("/monthly", auth.RequirePermission(auth.CanViewReports), cfg.Reports.Monthly)
	reports.Post("/salaries", auth.RequirePermission(auth.CanManageSalaries), cfg.Reports.RecordSalary)
	reports.Post("/salaries/paid", auth.RequirePermission(auth.CanManageSalaries), cfg.Reports.SetSalaryPaid)
	reports.Post("/mentor-payments/paid", auth.RequirePermission(auth.CanManageSalaries), cfg.Reports.SetMentorPaid)
}
