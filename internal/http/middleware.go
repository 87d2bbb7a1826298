package http

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/wqy7711/e-novel-api/internal/logger"
)

// RequestLoggerMiddleware logs HTTP requests through the structured logger.
func RequestLoggerMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()
			latency := time.Since(start)

			result := "ok"
			if res.Status >= 400 {
				result = "failed"
			}

			args := []any{
				"module", "http",
				"action", "request",
				"resource", "http",
				"result", result,
				"method", req.Method,
				"path", req.URL.Path,
				"status_code", res.Status,
				"duration_ms", latency.Milliseconds(),
				"remote_ip", c.RealIP(),
			}

			switch {
			case res.Status >= 500:
				logger.Error("http request", args...)
			case res.Status >= 400:
				logger.Warn("http request", args...)
			default:
				logger.Info("http request", args...)
			}
			return nil
		}
	}
}
