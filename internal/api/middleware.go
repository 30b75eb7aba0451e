package api

import (
	"time"

	"github.com/labstack/echo/v4"
)

// loggingMiddleware logs each request with method, path, status and latency.
func (c *Controller) loggingMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			start := time.Now()

			if err := next(ctx); err != nil {
				// Commit the error response here so the logged status is
				// the one actually sent.
				ctx.Error(err)
			}

			c.apiLogger.Info("Request handled",
				"method", ctx.Request().Method,
				"path", ctx.Request().URL.Path,
				"status", ctx.Response().Status,
				"latency_ms", time.Since(start).Milliseconds(),
				"remote_ip", ctx.RealIP())

			return nil
		}
	}
}
