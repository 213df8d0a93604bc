package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type IndexHandler struct{}

func NewIndexHandler() *IndexHandler {
	return &IndexHandler{}
}

func (h *IndexHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.index)
	e.GET("/health", h.health)
}

func (h *IndexHandler) index(c echo.Context) error {
	return ok(c, map[string]string{"message": "Hello, World!"})
}

func (h *IndexHandler) health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "healthy"})
}
