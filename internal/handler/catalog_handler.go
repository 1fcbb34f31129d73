package handler

import (
	"net/http"

	"github.com/Eursukkul/partywknd/internal/dto"
	"github.com/Eursukkul/partywknd/internal/service"
	"github.com/labstack/echo/v4"
)

type CatalogHandler struct {
	svc service.CatalogService
}

func NewCatalogHandler(svc service.CatalogService) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

func (h *CatalogHandler) RegisterRoutes(api, admin *echo.Group) {
	api.GET("/events", h.ListEvents)
	api.GET("/events/:id", h.GetEvent)
	api.GET("/lodgings", h.ListLodgings)
	api.GET("/lodgings/:id", h.GetLodging)

	admin.POST("/events", h.UpsertEvent)
	admin.POST("/lodgings", h.UpsertLodging)
}

func (h *CatalogHandler) UpsertEvent(c echo.Context) error {
	var req dto.UpsertEventRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body")
	}
	if req.Title == "" || req.City == "" || req.Venue == "" {
		return badRequest("title, city and venue are required")
	}
	event, err := req.ToEventModel()
	if err != nil {
		return badRequest("date must be formatted as YYYY-MM-DD")
	}

	stored, err := h.svc.UpsertEvent(c.Request().Context(), event)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, dto.ToEventResponse(stored))
}

func (h *CatalogHandler) GetEvent(c echo.Context) error {
	event, err := h.svc.GetEvent(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *CatalogHandler) ListEvents(c echo.Context) error {
	events, err := h.svc.ListEvents(c.Request().Context(), c.QueryParam("city"))
	if err != nil {
		return httpError(err)
	}

	resp := make([]dto.EventResponse, len(events))
	for i := range events {
		resp[i] = dto.ToEventResponse(&events[i])
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *CatalogHandler) UpsertLodging(c echo.Context) error {
	var req dto.UpsertLodgingRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body")
	}
	if req.Name == "" || req.Location == "" {
		return badRequest("name and location are required")
	}

	stored, err := h.svc.UpsertLodging(c.Request().Context(), req.ToLodgingModel())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, dto.ToLodgingResponse(stored))
}

func (h *CatalogHandler) GetLodging(c echo.Context) error {
	lodging, err := h.svc.GetLodging(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, dto.ToLodgingResponse(lodging))
}

func (h *CatalogHandler) ListLodgings(c echo.Context) error {
	lodgings, err := h.svc.ListLodgings(c.Request().Context(), c.QueryParam("location"))
	if err != nil {
		return httpError(err)
	}

	resp := make([]dto.LodgingResponse, len(lodgings))
	for i := range lodgings {
		resp[i] = dto.ToLodgingResponse(&lodgings[i])
	}
	return c.JSON(http.StatusOK, resp)
}
