package handler

import (
	"net/http"

	"github.com/Eursukkul/partywknd/internal/auth"
	"github.com/Eursukkul/partywknd/internal/middleware"
	"github.com/Eursukkul/partywknd/internal/service"
	"github.com/labstack/echo/v4"
)

type Services struct {
	Catalog  service.CatalogService
	Packages service.PackageService
	Bookings service.BookingService
	Messages service.MessageService
	Admin    service.AdminService
}

type RouteConfig struct {
	Prefix      string
	Issuer      *auth.Issuer
	AllowNoAuth bool
	// RateLimit wraps every API route when non-nil. /health is never limited.
	RateLimit echo.MiddlewareFunc
}

// RegisterRoutes mounts the API under cfg.Prefix. Login is public, /admin
// requires the admin role and everything else requires an identity.
func RegisterRoutes(e *echo.Echo, cfg RouteConfig, svc Services) {
	e.GET("/health", Health)

	var common []echo.MiddlewareFunc
	if cfg.RateLimit != nil {
		common = append(common, cfg.RateLimit)
	}
	public := e.Group(cfg.Prefix, common...)
	api := e.Group(cfg.Prefix, append(common, middleware.Authenticate(cfg.Issuer, cfg.AllowNoAuth))...)
	admin := api.Group("/admin", middleware.RequireRole("admin", cfg.AllowNoAuth))

	NewCatalogHandler(svc.Catalog).RegisterRoutes(api, admin)
	NewPackageHandler(svc.Packages).RegisterRoutes(api)
	NewBookingHandler(svc.Bookings).RegisterRoutes(api)
	NewMessageHandler(svc.Messages).RegisterRoutes(api)
	NewAdminHandler(svc.Admin).RegisterRoutes(public, admin)
}

func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
