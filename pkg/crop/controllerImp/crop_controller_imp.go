package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"farmmate/pkg/apperr"
	"farmmate/pkg/crop/controller"
	"farmmate/pkg/crop/service"
	"farmmate/pkg/middleware"
)

type CropCtrl struct{ svc service.CropService }

func New(svc service.CropService) controller.CropController { return &CropCtrl{svc} }

func (h *CropCtrl) List(c echo.Context) error {
	out, err := h.svc.List(c.Request().Context(), middleware.UserID(c), c.QueryParam("search"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch crops"})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CropCtrl) Create(c echo.Context) error {
	var in service.CropInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid crop data"})
	}
	out, err := h.svc.Create(c.Request().Context(), middleware.UserID(c), in)
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *CropCtrl) Update(c echo.Context) error {
	var p service.CropPatch
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid crop data"})
	}
	out, err := h.svc.Update(c.Request().Context(), middleware.UserID(c), c.Param("id"), p)
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CropCtrl) Delete(c echo.Context) error {
	if err := h.svc.Delete(c.Request().Context(), middleware.UserID(c), c.Param("id")); err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
