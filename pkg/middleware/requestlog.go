package middleware

import (
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"farmmate/pkg/logx"
)

// RequestLog logs one line per /api request with status and latency.
func RequestLog(log logx.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}
			path := c.Request().URL.Path
			if !strings.HasPrefix(path, "/api") {
				return nil
			}
			fields := []logx.Field{
				logx.String("method", c.Request().Method),
				logx.String("path", path),
				logx.Int("status", c.Response().Status),
				logx.Duration("latency", time.Since(start)),
				logx.String("uid", UserID(c)),
			}
			if c.Response().Status >= 500 {
				log.Error("request", append(fields, logx.Err(err))...)
			} else {
				log.Info("request", fields...)
			}
			return nil
		}
	}
}
