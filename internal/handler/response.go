package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wqy7711/e-novel-api/internal/logger"
	"github.com/wqy7711/e-novel-api/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

// writeServiceError maps service errors onto HTTP responses. Validation
// errors carry their message through (they describe the client's mistake);
// everything else gets a fixed message with the root cause logged only.
func writeServiceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrInvalid):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrNotFound):
		return c.JSON(http.StatusNotFound, errorResponse{Error: "novel not found"})
	case errors.Is(err, service.ErrTranslate):
		return c.JSON(http.StatusBadGateway, errorResponse{Error: "translation service unavailable"})
	default:
		logger.Error("request failed", "module", "handler", "action", "request", "resource", "http", "result", "failed",
			"path", c.Request().URL.Path, "error", err)
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}
