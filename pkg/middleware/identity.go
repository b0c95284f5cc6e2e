package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

const (
	HeaderUserID = "X-User-Id"
	CookieUserID = "FARM_UID"
	ctxUserID    = "uid"
)

// Identity resolves the calling user for every request: X-User-Id header,
// then the FARM_UID cookie, then ?uid= (which is remembered in the
// cookie). Without any of them the request runs as defaultUID, or gets a
// 401 when required is set.
func Identity(defaultUID string, required bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			uid := strings.TrimSpace(c.Request().Header.Get(HeaderUserID))
			if uid == "" {
				if ck, err := c.Cookie(CookieUserID); err == nil {
					uid = strings.TrimSpace(ck.Value)
				}
			}
			if uid == "" {
				if q := strings.TrimSpace(c.QueryParam("uid")); q != "" {
					c.SetCookie(&http.Cookie{Name: CookieUserID, Value: q, Path: "/"})
					uid = q
				}
			}
			if uid == "" {
				if required || defaultUID == "" {
					return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing user id"})
				}
				uid = defaultUID
			}
			c.Set(ctxUserID, uid)
			return next(c)
		}
	}
}

// UserID returns the identity set by Identity, or "" outside it.
func UserID(c echo.Context) string {
	uid, _ := c.Get(ctxUserID).(string)
	return uid
}
