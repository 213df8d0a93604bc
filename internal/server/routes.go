package server

import (
	"github.com/inventory-backend/stockroom/internal/handler"
	appmw "github.com/inventory-backend/stockroom/internal/middleware"

	"github.com/labstack/echo/v4"
)

type Handlers struct {
	Index    *handler.IndexHandler
	Supplier *handler.SupplierHandler
	Product  *handler.ProductHandler
	Email    *handler.EmailHandler
}

func RegisterRoutes(e *echo.Echo, h Handlers, emailLimiter echo.MiddlewareFunc) {
	e.GET("/metrics", appmw.PrometheusHandler())

	h.Index.RegisterRoutes(e)
	h.Supplier.RegisterRoutes(e)
	h.Product.RegisterRoutes(e)
	h.Email.RegisterRoutes(e, emailLimiter)
}
