package handler

import (
	"net/http"

	"github.com/Eursukkul/partywknd/internal/dto"
	"github.com/Eursukkul/partywknd/internal/models"
	"github.com/Eursukkul/partywknd/internal/repository"
	"github.com/Eursukkul/partywknd/internal/service"
	"github.com/labstack/echo/v4"
)

type BookingHandler struct {
	svc service.BookingService
}

func NewBookingHandler(svc service.BookingService) *BookingHandler {
	return &BookingHandler{svc: svc}
}

func (h *BookingHandler) RegisterRoutes(api *echo.Group) {
	bookings := api.Group("/bookings")
	bookings.POST("", h.CreateBooking)
	bookings.GET("", h.ListBookings)
	bookings.GET("/:id", h.GetBooking)
	bookings.POST("/:id/cancel", h.CancelBooking)
}

func (h *BookingHandler) CreateBooking(c echo.Context) error {
	var req dto.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body")
	}
	if req.PackageID == "" {
		return badRequest("package_id is required")
	}
	if req.UserID == "" {
		return badRequest("user_id is required")
	}
	if req.PaymentToken == "" {
		return badRequest("payment_token is required")
	}

	booking, err := h.svc.CreateBooking(c.Request().Context(), req.PackageID, req.UserID, req.PaymentToken)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) CancelBooking(c echo.Context) error {
	res, err := h.svc.CancelBooking(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *BookingHandler) GetBooking(c echo.Context) error {
	booking, err := h.svc.GetBooking(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) ListBookings(c echo.Context) error {
	filter := repository.BookingFilter{
		UserID:    c.QueryParam("user_id"),
		PackageID: c.QueryParam("package_id"),
	}
	if s := c.QueryParam("status"); s != "" {
		bs := models.BookingStatus(s)
		filter.Status = &bs
	}

	bookings, err := h.svc.ListBookings(c.Request().Context(), filter)
	if err != nil {
		return httpError(err)
	}

	resp := make([]dto.BookingResponse, len(bookings))
	for i := range bookings {
		resp[i] = dto.ToBookingResponse(&bookings[i])
	}
	return c.JSON(http.StatusOK, resp)
}
