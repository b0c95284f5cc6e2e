package controller

import "github.com/labstack/echo/v4"

type ScheduleController interface {
	Intervals(c echo.Context) error
	Preview(c echo.Context) error
	Submit(c echo.Context) error
	Month(c echo.Context) error
	Window(c echo.Context) error
}
