package handler

import (
	"net/http"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/delivery/http/response"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// cancelOrderRequest identifies the placed order to revert.
type cancelOrderRequest struct {
	OrderID uint `json:"id"`
}

// OrderHandler holds dependencies for buyer-side order handlers.
type OrderHandler struct {
	uc usecase.OrderUsecase
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// ListOrders returns the caller's placed orders with their totals.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrAuthenticationRequired)
	}

	orders, err := h.uc.ListOrders(c.Request().Context(), identity.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOrderViews(orders), "")
}

// Checkout places the caller's basket as an order.
func (h *OrderHandler) Checkout(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrAuthenticationRequired)
	}

	var input usecase.CheckoutInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid checkout payload")
	}

	if err := h.uc.Checkout(c.Request().Context(), identity.UserID, input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, nil, "Order placed")
}

// Cancel reverts a placed order back to the basket state.
func (h *OrderHandler) Cancel(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrAuthenticationRequired)
	}

	var req cancelOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cancel payload")
	}

	if err := h.uc.Cancel(c.Request().Context(), identity.UserID, req.OrderID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Order cancelled")
}
