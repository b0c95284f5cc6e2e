package controllerImp

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"farmmate/pkg/auth/controller"
	"farmmate/pkg/middleware"
)

type authCtrl struct {
	defaultUID string
}

func NewAuthController(defaultUID string) controller.AuthController {
	return &authCtrl{defaultUID: defaultUID}
}

// DevLogin pins ?uid= (or the default user) in the identity cookie.
func (h *authCtrl) DevLogin(c echo.Context) error {
	uid := strings.TrimSpace(c.QueryParam("uid"))
	if uid == "" {
		uid = h.defaultUID
	}
	if uid == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "uid is required"})
	}
	c.SetCookie(&http.Cookie{Name: middleware.CookieUserID, Value: uid, Path: "/", HttpOnly: true})
	return c.JSON(http.StatusOK, echo.Map{"uid": uid})
}

func (h *authCtrl) WhoAmI(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"uid": middleware.UserID(c)})
}
