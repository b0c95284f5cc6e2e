package controllerImp

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farmmate/pkg/middleware"
)

func TestDevLoginSetsCookie(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/devlogin?uid=kim", nil), rec)

	require.NoError(t, NewAuthController("user-1").DevLogin(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"uid":"kim"}`, rec.Body.String())

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, middleware.CookieUserID, cookies[0].Name)
	assert.Equal(t, "kim", cookies[0].Value)
}

func TestDevLoginDefaultsUser(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/devlogin", nil), rec)

	require.NoError(t, NewAuthController("user-1").DevLogin(c))
	assert.JSONEq(t, `{"uid":"user-1"}`, rec.Body.String())
}

func TestWhoAmIThroughIdentity(t *testing.T) {
	e := echo.New()
	e.GET("/api/whoami", NewAuthController("user-1").WhoAmI, middleware.Identity("user-1", false))

	req := httptest.NewRequest(http.MethodGet, "/api/whoami", nil)
	req.Header.Set(middleware.HeaderUserID, "lee")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"uid":"lee"}`, rec.Body.String())
}
