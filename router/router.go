package router

import (
	"math"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"farmmate/pkg/apperr"
	authctrl "farmmate/pkg/auth/controller"
	cropctrl "farmmate/pkg/crop/controller"
	farmctrl "farmmate/pkg/farm/controller"
	"farmmate/pkg/logx"
	"farmmate/pkg/middleware"
	recctrl "farmmate/pkg/recommendation/controller"
	schedctrl "farmmate/pkg/schedule/controller"
	taskctrl "farmmate/pkg/task/controller"
)

type Controllers struct {
	Farm           farmctrl.FarmController
	Crop           cropctrl.CropController
	Task           taskctrl.TaskController
	Schedule       schedctrl.ScheduleController
	Recommendation recctrl.RecommendationController
	Auth           authctrl.AuthController
	Health         interface {
		Health(echo.Context) error
		Ready(echo.Context) error
	}
}

type Options struct {
	DefaultUserID string
	RequireUser   bool
	// RateLimitRPS <= 0 disables per-client limiting.
	RateLimitRPS float64
	Log          logx.Logger
}

func New(e *echo.Echo, ctl Controllers, opt Options) *echo.Echo {
	e.HTTPErrorHandler = apperr.HTTPErrorHandler
	e.Use(echoMiddleware.Recover())
	e.Use(middleware.RequestLog(opt.Log))

	e.GET("/health", ctl.Health.Health)
	e.GET("/ready", ctl.Health.Ready)

	api := e.Group("/api")
	if opt.RateLimitRPS > 0 {
		api.Use(echoMiddleware.RateLimiter(rateLimitStore(opt.RateLimitRPS)))
	}
	api.Use(middleware.Identity(opt.DefaultUserID, opt.RequireUser))

	api.GET("/whoami", ctl.Auth.WhoAmI)
	api.GET("/devlogin", ctl.Auth.DevLogin)

	api.GET("/farms", ctl.Farm.List)
	api.POST("/farms", ctl.Farm.Create)
	api.PUT("/farms/:id", ctl.Farm.Update)
	api.DELETE("/farms/:id", ctl.Farm.Delete)

	api.GET("/crops", ctl.Crop.List)
	api.POST("/crops", ctl.Crop.Create)
	api.PUT("/crops/:id", ctl.Crop.Update)
	api.DELETE("/crops/:id", ctl.Crop.Delete)

	api.GET("/tasks", ctl.Task.List)
	api.GET("/tasks/export", ctl.Task.Export)
	api.POST("/tasks", ctl.Task.Create)
	api.POST("/tasks/batch", ctl.Task.CreateBatch)
	api.POST("/tasks/range", ctl.Task.CreateRange)
	api.PUT("/tasks/:id", ctl.Task.Update)
	api.DELETE("/tasks/:id", ctl.Task.Delete)
	api.POST("/tasks/:id/complete", ctl.Task.Complete)

	api.GET("/schedule/intervals", ctl.Schedule.Intervals)
	api.POST("/schedule/preview", ctl.Schedule.Preview)
	api.POST("/schedule/submit", ctl.Schedule.Submit)
	api.GET("/calendar/month", ctl.Schedule.Month)
	api.GET("/calendar/window", ctl.Schedule.Window)

	api.GET("/recommendations", ctl.Recommendation.List)
	api.POST("/recommendations", ctl.Recommendation.Create)
	return e
}

// rateLimitStore keeps a burst of at least one request so that rates
// below 1/s still admit a first call per client.
func rateLimitStore(rps float64) echoMiddleware.RateLimiterStore {
	return echoMiddleware.NewRateLimiterMemoryStoreWithConfig(echoMiddleware.RateLimiterMemoryStoreConfig{
		Rate:  rate.Limit(rps),
		Burst: max(1, int(math.Ceil(rps))),
	})
}
