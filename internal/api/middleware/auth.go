package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// Auth requires a bearer credential on every request and injects the acting
// principal id into context. The credential is the client's principal id and
// is deliberately not verified: the API fronts a mock identity scheme where
// the client owns authentication. A production deployment would swap this
// for validation of an opaque, server-issued session token.
func Auth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			c.Set("principal_id", parts[1])

			return next(c)
		}
	}
}

// PrincipalID returns the acting principal id injected by Auth, or "".
func PrincipalID(c echo.Context) string {
	id, _ := c.Get("principal_id").(string)
	return id
}
