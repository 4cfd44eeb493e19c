package router

import (
	"userdir/internal/users/handler"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func RegisterRoutes(e *echo.Echo, h *handler.UserHandler) {
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{echo.GET, echo.POST, echo.DELETE, echo.OPTIONS},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	// Health Check
	e.GET("/health", handler.HealthCheck)

	v1 := e.Group("/api/v1")
	v1.Use(handler.RequestIDMiddleware)

	v1.POST("/users", h.PostUser)
	v1.POST("/users/bulk", h.PostUsersBulk)
	v1.GET("/users/:id", h.GetUser)
	v1.GET("/users", h.GetUsers)
	v1.DELETE("/users/:id", h.DeleteUser)
	v1.POST("/users/import", h.PostImport)
}
