package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/mitienda/catalog-api/internal/core/domain"
)

// RBAC gates a route to the given roles. It reads the role injected by Auth,
// so it must run after it; a missing or unknown role surfaces as
// domain.ErrForbidden through the central error handler.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if _, ok := allowed[role]; !ok {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
