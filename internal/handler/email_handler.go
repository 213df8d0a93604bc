package handler

import (
	"github.com/inventory-backend/stockroom/internal/usecase"

	"github.com/labstack/echo/v4"
)

type EmailContentRequest struct {
	Subject *string `json:"subject" validate:"required"`
	Body    *string `json:"body" validate:"required"`
}

// /email/{product_id}
type EmailHandler struct {
	uc *usecase.NotificationUsecase
}

func NewEmailHandler(uc *usecase.NotificationUsecase) *EmailHandler {
	return &EmailHandler{uc: uc}
}

// SMTPを守るためにroute単位のmiddleware（rate limit）を受け取る
func (h *EmailHandler) RegisterRoutes(e *echo.Echo, m ...echo.MiddlewareFunc) {
	e.POST("/email/:product_id", h.send, m...)
}

func (h *EmailHandler) send(c echo.Context) error {
	productID, err := parseID(c, "product_id")
	if err != nil {
		return writeError(c, err)
	}

	var req EmailContentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return writeError(c, err)
	}

	if err := h.uc.SendNotification(c.Request().Context(), productID, *req.Subject, *req.Body); err != nil {
		return writeError(c, err)
	}
	return ok(c, nil)
}
