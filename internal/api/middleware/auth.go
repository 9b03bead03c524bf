package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/mitienda/catalog-api/internal/core/domain"
	"github.com/mitienda/catalog-api/internal/core/ports"
)

// Auth validates the bearer token and injects the caller identity into both
// the echo context and the request context.
func Auth(tokens ports.TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			identity := domain.Identity{
				UserID: claims.UserID(),
				Name:   claims.Name,
				Email:  claims.Email,
				Role:   claims.Role,
			}

			c.Set("user_id", identity.UserID)
			c.Set("name", identity.Name)
			c.Set("email", identity.Email)
			c.Set("role", identity.Role)
			c.SetRequest(c.Request().WithContext(domain.WithIdentity(c.Request().Context(), identity)))

			return next(c)
		}
	}
}
