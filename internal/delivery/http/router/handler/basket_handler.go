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

// basketItemsRequest is the payload shared by the basket mutations.
type basketItemsRequest struct {
	Items []usecase.BasketItemInput `json:"items"`
}

// BasketHandler holds dependencies for basket-related handlers.
type BasketHandler struct {
	uc usecase.BasketUsecase
}

// NewBasketHandler is the constructor for BasketHandler, injected by Fx.
func NewBasketHandler(uc usecase.BasketUsecase) *BasketHandler {
	return &BasketHandler{uc: uc}
}

// GetBasket returns the caller's basket with its computed total.
func (h *BasketHandler) GetBasket(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrAuthenticationRequired)
	}

	baskets, err := h.uc.GetBasket(c.Request().Context(), identity.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOrderViews(baskets), "")
}

// AddItems appends the given lines to the caller's basket.
func (h *BasketHandler) AddItems(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrAuthenticationRequired)
	}

	var req basketItemsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid basket items payload")
	}

	created, err := h.uc.AddItems(c.Request().Context(), identity.UserID, req.Items)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]int{"created": created}, "Items added to basket")
}

// UpdateItems overwrites quantities of matching basket lines.
func (h *BasketHandler) UpdateItems(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrAuthenticationRequired)
	}

	var req basketItemsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid basket items payload")
	}

	updated, err := h.uc.UpdateItems(c.Request().Context(), identity.UserID, req.Items)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int{"updated": updated}, "Basket updated")
}

// RemoveItems deletes matching basket lines.
func (h *BasketHandler) RemoveItems(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrAuthenticationRequired)
	}

	var req basketItemsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid basket items payload")
	}

	deleted, err := h.uc.RemoveItems(c.Request().Context(), identity.UserID, req.Items)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int{"deleted": deleted}, "Items removed from basket")
}
