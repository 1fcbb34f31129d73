package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// RequireRole rejects requests whose identity lacks role. It is a no-op when
// authentication is bypassed.
func RequireRole(role string, allowNoAuth bool) echo.MiddlewareFunc {
	msg := fmt.Sprintf("%s role missing in token", capitalize(role))

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if allowNoAuth {
				return next(c)
			}
			id, ok := IdentityFrom(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
			}
			if !id.HasRole(role) {
				return echo.NewHTTPError(http.StatusForbidden, msg)
			}
			return next(c)
		}
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
