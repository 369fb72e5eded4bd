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

// importFeedRequest carries the URL of the catalog document to import.
type importFeedRequest struct {
	URL string `json:"url"`
}

// setStateRequest carries the raw accepting-orders flag.
type setStateRequest struct {
	State string `json:"state"`
}

// PartnerHandler holds dependencies for shop-side handlers. The router only
// reaches it through the shop role gate.
type PartnerHandler struct {
	uc usecase.PartnerUsecase
}

// NewPartnerHandler is the constructor for PartnerHandler, injected by Fx.
func NewPartnerHandler(uc usecase.PartnerUsecase) *PartnerHandler {
	return &PartnerHandler{uc: uc}
}

// ImportGoods replaces the caller's shop catalog with the document at the
// given URL.
func (h *PartnerHandler) ImportGoods(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrAuthenticationRequired)
	}

	var req importFeedRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid import payload")
	}

	output, err := h.uc.ImportFeed(c.Request().Context(), identity.UserID, req.URL)
	if err != nil {
		return errors.WithStack(err)
	}

	data := map[string]any{
		"shop":     toShopView(output.Shop),
		"listings": output.Listings,
	}

	return response.Success(c, http.StatusOK, data, "Catalog imported")
}

// GetState returns the caller's shop including the accepting-orders flag.
func (h *PartnerHandler) GetState(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrAuthenticationRequired)
	}

	shop, err := h.uc.GetState(c.Request().Context(), identity.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toShopView(shop), "")
}

// SetState flips the caller's accepting-orders flag.
func (h *PartnerHandler) SetState(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrAuthenticationRequired)
	}

	var req setStateRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid state payload")
	}

	if err := h.uc.SetState(c.Request().Context(), identity.UserID, req.State); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Shop state updated")
}

// ListOrders returns placed orders containing lines fulfilled by the
// caller's shop.
func (h *PartnerHandler) ListOrders(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrAuthenticationRequired)
	}

	orders, err := h.uc.ListShopOrders(c.Request().Context(), identity.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOrderViews(orders), "")
}
