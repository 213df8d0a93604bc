package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/inventory-backend/stockroom/internal/domain/model"
	"github.com/inventory-backend/stockroom/internal/usecase"
	"github.com/inventory-backend/stockroom/internal/validator"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// 成功時は必ず {status, data}
type Envelope struct {
	Status string      `json:"status"`
	Data   interface{} `json:"data,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ok(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, Envelope{Status: "ok", Data: data})
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	var re *requestError
	if errors.As(err, &re) {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: re.message})
	}
	if fe, ok := validator.AsFieldError(err); ok {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: fe.Error()})
	}
	if ue, ok := usecase.AsError(err); ok {
		switch {
		case errors.Is(ue, usecase.ErrValidation):
			return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: ue.Message})
		case errors.Is(ue, usecase.ErrNotFound):
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: ue.Message})
		default:
			//ErrStore / ErrDelivery
			return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: ue.Message})
		}
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

// リクエストの形式エラー（422）
type requestError struct {
	message string
}

func (e *requestError) Error() string { return e.message }

// パスのidを数値に変換
func parseID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, &requestError{message: "invalid " + name}
	}
	return id, nil
}

// bind + validate
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return &requestError{message: "invalid body"}
	}
	return c.Validate(req)
}

// 金額は小数2桁の数値で返す
func money(d decimal.Decimal) json.Number {
	return json.Number(d.StringFixed(2))
}

type SupplierResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Company     string    `json:"company"`
	Address     string    `json:"address"`
	PhoneNumber string    `json:"phone_number"`
	Email       string    `json:"email"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toSupplierResponse(s model.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:          s.ID,
		Name:        s.Name,
		Company:     s.Company,
		Address:     s.Address,
		PhoneNumber: s.PhoneNumber,
		Email:       s.Email,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

type ProductResponse struct {
	ID              int64       `json:"id"`
	Name            string      `json:"name"`
	QuantityInStock int64       `json:"quantity_in_stock"`
	QuantitySold    int64       `json:"quantity_sold"`
	Price           json.Number `json:"price"`
	Revenue         json.Number `json:"revenue"`
	SuppliedBy      int64       `json:"supplied_by"`
	Description     string      `json:"description"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

func toProductResponse(p model.Product) ProductResponse {
	return ProductResponse{
		ID:              p.ID,
		Name:            p.Name,
		QuantityInStock: p.QuantityInStock,
		QuantitySold:    p.QuantitySold,
		Price:           money(p.Price),
		Revenue:         money(p.Revenue),
		SuppliedBy:      p.SuppliedByID,
		Description:     p.Description,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}
