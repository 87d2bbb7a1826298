package http

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/wqy7711/e-novel-api/docs"
	"github.com/wqy7711/e-novel-api/internal/handler"
)

func NewRouter(
	novelHandler *handler.NovelHandler,
	translateHandler *handler.TranslateHandler,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(RequestLoggerMiddleware())

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")
	novelHandler.RegisterRoutes(api)
	translateHandler.RegisterRoutes(api)

	return e
}
