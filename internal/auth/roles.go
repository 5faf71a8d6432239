package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/edupanel/center-service/internal/domain"
	apperrors "github.com/edupanel/center-service/pkg/util"
)

// RequireAuthenticated ensures a caller is logged in.
func RequireAuthenticated() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := PrincipalFromContext(c); !ok {
			return apperrors.NewUnauthorized("authentication required")
		}
		return c.Next()
	}
}

// RequireFullAccess gates a route to administrator-tier roles and above.
func RequireFullAccess() fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok || !HasFullAccess(principal.Role()) {
			return apperrors.NewForbidden("insufficient role")
		}
		return c.Next()
	}
}

// RequirePermission gates a route by one of the page-level permission
// predicates, e.g. CanManageGroups or CanViewReports.
func RequirePermission(allowed func(domain.Role) bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok || !allowed(principal.Role()) {
			return apperrors.NewForbidden("insufficient role")
		}
		return c.Next()
	}
}
