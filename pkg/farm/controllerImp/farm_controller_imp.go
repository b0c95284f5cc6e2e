package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"farmmate/pkg/apperr"
	"farmmate/pkg/farm/controller"
	"farmmate/pkg/farm/service"
	"farmmate/pkg/middleware"
)

type FarmCtrl struct{ svc service.FarmService }

func New(svc service.FarmService) controller.FarmController { return &FarmCtrl{svc} }

func (h *FarmCtrl) List(c echo.Context) error {
	out, err := h.svc.List(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch farms"})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *FarmCtrl) Create(c echo.Context) error {
	var in service.FarmInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid farm data"})
	}
	f, err := h.svc.Create(c.Request().Context(), middleware.UserID(c), in)
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusCreated, f)
}

func (h *FarmCtrl) Update(c echo.Context) error {
	var p service.FarmPatch
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid farm data"})
	}
	f, err := h.svc.Update(c.Request().Context(), middleware.UserID(c), c.Param("id"), p)
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, f)
}

func (h *FarmCtrl) Delete(c echo.Context) error {
	if err := h.svc.Delete(c.Request().Context(), middleware.UserID(c), c.Param("id")); err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
