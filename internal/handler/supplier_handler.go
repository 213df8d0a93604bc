package handler

import (
	"github.com/inventory-backend/stockroom/internal/repository"
	"github.com/inventory-backend/stockroom/internal/usecase"

	"github.com/labstack/echo/v4"
)

// 作成時は全項目必須
type SupplierCreateRequest struct {
	Name        *string `json:"name" validate:"required"`
	Company     *string `json:"company" validate:"required"`
	Address     *string `json:"address" validate:"required"`
	PhoneNumber *string `json:"phone_number" validate:"required"`
	Email       *string `json:"email" validate:"required"`
}

// 更新は送られた項目だけ
type SupplierUpdateRequest struct {
	Name        *string `json:"name"`
	Company     *string `json:"company"`
	Address     *string `json:"address"`
	PhoneNumber *string `json:"phone_number"`
	Email       *string `json:"email"`
}

// /supplier
type SupplierHandler struct {
	uc *usecase.SupplierUsecase
}

// DI
func NewSupplierHandler(uc *usecase.SupplierUsecase) *SupplierHandler {
	return &SupplierHandler{uc: uc}
}

func (h *SupplierHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/supplier", h.create)
	e.GET("/supplier", h.list)
	e.GET("/supplier/:id", h.get)
	e.PUT("/supplier/:id", h.update)
	e.DELETE("/supplier/:id", h.delete)
}

func (h *SupplierHandler) create(c echo.Context) error {
	var req SupplierCreateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return writeError(c, err)
	}

	s, err := h.uc.CreateSupplier(c.Request().Context(), usecase.SupplierInput{
		Name:        *req.Name,
		Company:     *req.Company,
		Address:     *req.Address,
		PhoneNumber: *req.PhoneNumber,
		Email:       *req.Email,
	})
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, toSupplierResponse(s))
}

func (h *SupplierHandler) list(c echo.Context) error {
	suppliers, err := h.uc.ListSuppliers(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	out := make([]SupplierResponse, 0, len(suppliers))
	for _, s := range suppliers {
		out = append(out, toSupplierResponse(s))
	}
	return ok(c, out)
}

func (h *SupplierHandler) get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return writeError(c, err)
	}

	s, err := h.uc.GetSupplier(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, toSupplierResponse(s))
}

func (h *SupplierHandler) update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return writeError(c, err)
	}

	var req SupplierUpdateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return writeError(c, err)
	}

	s, err := h.uc.UpdateSupplier(c.Request().Context(), id, repository.SupplierPatch{
		Name:        req.Name,
		Company:     req.Company,
		Address:     req.Address,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
	})
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, toSupplierResponse(s))
}

func (h *SupplierHandler) delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return writeError(c, err)
	}

	if err := h.uc.DeleteSupplier(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return ok(c, nil)
}
