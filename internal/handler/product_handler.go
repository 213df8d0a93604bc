package handler

import (
	"github.com/inventory-backend/stockroom/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// 作成時の入力。nameだけ必須で他は0扱い
type ProductCreateRequest struct {
	Name            *string         `json:"name" validate:"required"`
	Description     string          `json:"description"`
	Price           decimal.Decimal `json:"price"`
	QuantityInStock int64           `json:"quantity_in_stock"`
	QuantitySold    int64           `json:"quantity_sold"`
	Revenue         decimal.Decimal `json:"revenue"`
}

// 更新時の入力。supplied_byは変更不可
type ProductUpdateRequest struct {
	Name            *string          `json:"name" validate:"required"`
	Price           *decimal.Decimal `json:"price" validate:"required"`
	QuantitySold    *int64           `json:"quantity_sold" validate:"required"`
	QuantityInStock *int64           `json:"quantity_in_stock" validate:"required"`
}

// /product
type ProductHandler struct {
	uc *usecase.ProductUsecase
}

// DI
func NewProductHandler(uc *usecase.ProductUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

func (h *ProductHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/product/:supplier_id", h.create)
	e.GET("/product", h.list)
	e.GET("/product/:id", h.get)
	e.PUT("/product/:id", h.update)
	e.DELETE("/product/:id", h.delete)
}

func (h *ProductHandler) create(c echo.Context) error {
	supplierID, err := parseID(c, "supplier_id")
	if err != nil {
		return writeError(c, err)
	}

	var req ProductCreateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return writeError(c, err)
	}

	p, err := h.uc.CreateProduct(c.Request().Context(), supplierID, usecase.CreateProductInput{
		Name:            *req.Name,
		Description:     req.Description,
		Price:           req.Price,
		QuantityInStock: req.QuantityInStock,
		QuantitySold:    req.QuantitySold,
		Revenue:         req.Revenue,
	})
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, toProductResponse(p))
}

func (h *ProductHandler) list(c echo.Context) error {
	products, err := h.uc.ListProducts(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return ok(c, out)
}

func (h *ProductHandler) get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return writeError(c, err)
	}

	p, err := h.uc.GetProduct(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, toProductResponse(p))
}

func (h *ProductHandler) update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return writeError(c, err)
	}

	var req ProductUpdateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return writeError(c, err)
	}

	p, err := h.uc.UpdateProduct(c.Request().Context(), id, usecase.UpdateProductInput{
		Name:            *req.Name,
		Price:           *req.Price,
		QuantitySold:    *req.QuantitySold,
		QuantityInStock: *req.QuantityInStock,
	})
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, toProductResponse(p))
}

func (h *ProductHandler) delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return writeError(c, err)
	}

	if err := h.uc.DeleteProduct(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return ok(c, nil)
}
