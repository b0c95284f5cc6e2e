package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"farmmate/pkg/apperr"
	"farmmate/pkg/middleware"
	"farmmate/pkg/recommendation/controller"
	"farmmate/pkg/recommendation/service"
)

type RecCtrl struct{ svc service.RecommendationService }

func New(svc service.RecommendationService) controller.RecommendationController {
	return &RecCtrl{svc}
}

func (h *RecCtrl) List(c echo.Context) error {
	out, err := h.svc.List(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch recommendations"})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *RecCtrl) Create(c echo.Context) error {
	var in service.RecommendationInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid recommendation data"})
	}
	out, err := h.svc.Create(c.Request().Context(), middleware.UserID(c), in)
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}
