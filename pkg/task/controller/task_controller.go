package controller

import "github.com/labstack/echo/v4"

type TaskController interface {
	List(c echo.Context) error
	Create(c echo.Context) error
	Update(c echo.Context) error
	Delete(c echo.Context) error
	Complete(c echo.Context) error
	CreateBatch(c echo.Context) error
	CreateRange(c echo.Context) error
	Export(c echo.Context) error
}
