package middleware

import (
	"net/http"
	"strings"

	"github.com/Eursukkul/partywknd/internal/auth"
	"github.com/labstack/echo/v4"
)

const identityKey = "identity"

// Authenticate resolves the request identity from a Bearer token.
//
// With allowNoAuth, requests without an Authorization header run as
// auth.DevIdentity. A header that is present must still verify when a
// secret is configured.
func Authenticate(issuer *auth.Issuer, allowNoAuth bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)

			if allowNoAuth && (header == "" || !issuer.Enabled()) {
				setIdentity(c, auth.DevIdentity)
				return next(c)
			}

			raw, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || strings.TrimSpace(raw) == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
			}

			id, err := issuer.Parse(strings.TrimSpace(raw))
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}
			setIdentity(c, id)
			return next(c)
		}
	}
}

// IdentityFrom returns the identity attached by Authenticate.
func IdentityFrom(c echo.Context) (auth.Identity, bool) {
	id, ok := c.Get(identityKey).(auth.Identity)
	return id, ok
}

func setIdentity(c echo.Context, id auth.Identity) {
	c.Set(identityKey, id)
}
