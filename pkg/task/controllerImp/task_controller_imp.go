package controllerImp

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"farmmate/pkg/apperr"
	"farmmate/pkg/middleware"
	"farmmate/pkg/task/controller"
	repo "farmmate/pkg/task/repository"
	"farmmate/pkg/task/service"
	"farmmate/pkg/task/serviceImp"
)

type TaskCtrl struct{ svc service.TaskService }

func New(svc service.TaskService) controller.TaskController { return &TaskCtrl{svc} }

func filterFrom(c echo.Context) repo.Filter {
	return repo.Filter{
		Date: c.QueryParam("date"),
		From: c.QueryParam("from"),
		To:   c.QueryParam("to"),
	}
}

func (h *TaskCtrl) List(c echo.Context) error {
	out, err := h.svc.List(c.Request().Context(), middleware.UserID(c), filterFrom(c))
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *TaskCtrl) Create(c echo.Context) error {
	var in service.TaskInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid task data"})
	}
	t, err := h.svc.Create(c.Request().Context(), middleware.UserID(c), in)
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusCreated, t)
}

func (h *TaskCtrl) Update(c echo.Context) error {
	var p service.TaskPatch
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid task data"})
	}
	t, err := h.svc.Update(c.Request().Context(), middleware.UserID(c), c.Param("id"), p)
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, t)
}

func (h *TaskCtrl) Delete(c echo.Context) error {
	if err := h.svc.Delete(c.Request().Context(), middleware.UserID(c), c.Param("id")); err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

func (h *TaskCtrl) Complete(c echo.Context) error {
	t, err := h.svc.Complete(c.Request().Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, t)
}

func (h *TaskCtrl) CreateBatch(c echo.Context) error {
	var in service.BatchInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid batch data"})
	}
	res, err := h.svc.CreateBatch(c.Request().Context(), middleware.UserID(c), in)
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(BulkStatus(res), res)
}

func (h *TaskCtrl) CreateRange(c echo.Context) error {
	var in service.RangeInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid range data"})
	}
	res, err := h.svc.CreateRange(c.Request().Context(), middleware.UserID(c), in)
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(BulkStatus(res), res)
}

func (h *TaskCtrl) Export(c echo.Context) error {
	f := filterFrom(c)
	tasks, err := h.svc.List(c.Request().Context(), middleware.UserID(c), f)
	if err != nil {
		return apperr.JSON(c, err)
	}
	x, err := serviceImp.ExportWorkbook(tasks)
	if err != nil {
		return apperr.JSON(c, err)
	}
	defer x.Close()

	name := "tasks.xlsx"
	if f.From != "" || f.To != "" {
		name = fmt.Sprintf("tasks_%s_%s.xlsx", f.From, f.To)
	}
	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	res.Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", name))
	res.WriteHeader(http.StatusOK)
	return x.Write(res)
}

// BulkStatus is 201 when every item was created, 207 when only some
// were, and 422 when none were.
func BulkStatus(r service.BulkResult) int {
	switch {
	case r.Failed == 0:
		return http.StatusCreated
	case r.Created > 0:
		return http.StatusMultiStatus
	default:
		return http.StatusUnprocessableEntity
	}
}
