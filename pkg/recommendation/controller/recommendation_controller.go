package controller

import "github.com/labstack/echo/v4"

type RecommendationController interface {
	List(c echo.Context) error
	Create(c echo.Context) error
}
