package handler

import (
	"net/http"

	"github.com/Eursukkul/partywknd/internal/dto"
	"github.com/Eursukkul/partywknd/internal/models"
	"github.com/Eursukkul/partywknd/internal/service"
	"github.com/labstack/echo/v4"
)

type PackageHandler struct {
	svc service.PackageService
}

func NewPackageHandler(svc service.PackageService) *PackageHandler {
	return &PackageHandler{svc: svc}
}

func (h *PackageHandler) RegisterRoutes(api *echo.Group) {
	packages := api.Group("/packages")
	packages.GET("", h.ListPackages)
	packages.GET("/:id", h.GetPackage)
	packages.PUT("/:id", h.UpdatePackage)
	packages.POST("/:id/status", h.ChangeStatus)
	packages.POST("/:id/change-request", h.RequestChange)
}

// UpdatePackage applies the body as the package's complete target state.
// An empty body only makes sure the package exists.
func (h *PackageHandler) UpdatePackage(c echo.Context) error {
	var update *service.PackageUpdate
	if c.Request().ContentLength != 0 {
		var req dto.UpdatePackageRequest
		if err := c.Bind(&req); err != nil {
			return badRequest("invalid request body")
		}
		if req.EventIDs == nil {
			return badRequest("event_ids is required")
		}
		update = &service.PackageUpdate{
			LodgingID: req.LodgingID,
			EventIDs:  req.EventIDs,
			Addons:    req.Addons,
		}
	}

	pkg, err := h.svc.UpdatePackage(c.Request().Context(), c.Param("id"), update)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, dto.ToPackageResponse(pkg))
}

func (h *PackageHandler) GetPackage(c echo.Context) error {
	pkg, err := h.svc.GetPackage(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, dto.ToPackageResponse(pkg))
}

func (h *PackageHandler) ListPackages(c echo.Context) error {
	var status *models.PackageStatus
	if s := c.QueryParam("status"); s != "" {
		ps := models.PackageStatus(s)
		status = &ps
	}

	pkgs, err := h.svc.ListPackages(c.Request().Context(), status)
	if err != nil {
		return httpError(err)
	}

	resp := make([]dto.PackageResponse, len(pkgs))
	for i := range pkgs {
		resp[i] = dto.ToPackageResponse(&pkgs[i])
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *PackageHandler) ChangeStatus(c echo.Context) error {
	var req dto.PackageStatusRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body")
	}
	if req.Status == "" {
		return badRequest("status is required")
	}

	pkg, err := h.svc.ChangeStatus(c.Request().Context(), c.Param("id"), models.PackageStatus(req.Status))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, dto.ToPackageResponse(pkg))
}

func (h *PackageHandler) RequestChange(c echo.Context) error {
	var req dto.ChangeRequestRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body")
	}
	if req.Notes == nil {
		return badRequest("notes is required")
	}

	res, err := h.svc.RequestChange(c.Request().Context(), c.Param("id"), *req.Notes)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, res)
}
