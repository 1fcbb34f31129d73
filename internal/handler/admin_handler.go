package handler

import (
	"net/http"

	"github.com/Eursukkul/partywknd/internal/dto"
	"github.com/Eursukkul/partywknd/internal/models"
	"github.com/Eursukkul/partywknd/internal/service"
	"github.com/labstack/echo/v4"
)

type AdminHandler struct {
	svc service.AdminService
}

func NewAdminHandler(svc service.AdminService) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) RegisterRoutes(public, admin *echo.Group) {
	public.POST("/auth/admin/login", h.Login)

	admin.POST("/users", h.CreateUser)
	admin.POST("/agents", h.CreateAgent)
	admin.GET("/agents/:id", h.GetAgent)
	admin.POST("/admins", h.CreateAdmin)
}

func (h *AdminHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body")
	}
	if req.Email == "" || req.Password == "" {
		return badRequest("email and password are required")
	}

	tok, err := h.svc.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, tok)
}

func (h *AdminHandler) CreateUser(c echo.Context) error {
	var req dto.CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body")
	}

	user, err := h.svc.CreateUser(c.Request().Context(), &models.User{ID: req.ID, Name: req.Name, Email: req.Email})
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *AdminHandler) CreateAgent(c echo.Context) error {
	var req dto.CreateAgentRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body")
	}

	agent, err := h.svc.CreateAgent(c.Request().Context(), &models.Agent{
		ID:          req.ID,
		UserID:      req.UserID,
		DisplayName: req.DisplayName,
	})
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, dto.ToAgentResponse(agent))
}

func (h *AdminHandler) GetAgent(c echo.Context) error {
	agent, err := h.svc.GetAgent(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, dto.ToAgentResponse(agent))
}

func (h *AdminHandler) CreateAdmin(c echo.Context) error {
	var req dto.CreateAdminRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body")
	}

	admin, err := h.svc.CreateAdmin(c.Request().Context(), req.Email, req.Password, req.Role)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, dto.ToAdminUserResponse(admin))
}
