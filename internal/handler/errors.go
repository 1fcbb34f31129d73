package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/Eursukkul/partywknd/internal/auth"
	"github.com/Eursukkul/partywknd/internal/service"
	"github.com/labstack/echo/v4"
)

// httpError maps service errors onto status codes. Unclassified errors are
// logged and hidden behind a generic 500.
func httpError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrInvalidInput):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrIntegrityViolation), errors.Is(err, service.ErrInvalidTransition):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, auth.ErrInvalidCredentials), errors.Is(err, auth.ErrUnauthorized):
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	default:
		log.Printf("[Handler] unexpected error: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}

func badRequest(msg string) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusBadRequest, msg)
}
