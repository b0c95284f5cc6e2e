package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"farmmate/pkg/apperr"
	"farmmate/pkg/middleware"
	"farmmate/pkg/schedule/controller"
	"farmmate/pkg/schedule/service"
	taskctrl "farmmate/pkg/task/controllerImp"
)

type SchedCtrl struct{ svc service.ScheduleService }

func New(svc service.ScheduleService) controller.ScheduleController { return &SchedCtrl{svc} }

func (h *SchedCtrl) Intervals(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.Intervals())
}

func (h *SchedCtrl) Preview(c echo.Context) error {
	var in service.PreviewInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	out, err := h.svc.Preview(c.Request().Context(), middleware.UserID(c), in)
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *SchedCtrl) Submit(c echo.Context) error {
	var in service.SubmitInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	res, err := h.svc.Submit(c.Request().Context(), middleware.UserID(c), in)
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(taskctrl.BulkStatus(res), res)
}

func (h *SchedCtrl) Month(c echo.Context) error {
	view, err := h.svc.Month(c.Request().Context(), middleware.UserID(c), c.QueryParam("date"))
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, view)
}

func (h *SchedCtrl) Window(c echo.Context) error {
	days := 0
	if v := c.QueryParam("days"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "days must be an integer"})
		}
		days = n
	}
	view, err := h.svc.Window(c.Request().Context(), middleware.UserID(c), c.QueryParam("start"), days)
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, view)
}
